package nbt

/*
decode.go implements the Binding Decoder of spec §4.3: a thin layer
that drives a Parser to populate a statically declared Go value,
translating the parser's event stream into the visitor-style requests
of §4.3 (scalar, sequence, mapping, optional, any, ignored,
identifier) via reflection rather than a hand-written visitor per
target type, the same strategy the teacher's runtime.go takes for
Marshal/Unmarshal.

Decoder is stateless beyond a pointer to the Parser it borrows, per
§5: it may not be used concurrently with any other access to that
Parser.
*/

import (
	"io"
	"reflect"
)

/*
Decoder drives a Parser to populate Go values. Construct one with
NewDecoder, which performs the pre-advance sequence §4.3 mandates:
skip the root tag's name, then enter the root compound, leaving the
Decoder addressing the root compound's body directly.
*/
type Decoder struct {
	p *Parser
}

/*
NewDecoder wraps p, already positioned at its initial ExpectingTag
state, and pre-advances it twice: once past the root tag's name,
once into the root compound. Constructing a Decoder over a Parser
that has already been advanced produces undefined results.
*/
func NewDecoder(p *Parser) (*Decoder, error) {
	if err := p.Advance(); err != nil {
		return nil, err
	}
	if err := p.Advance(); err != nil {
		return nil, err
	}
	if p.CurrentKind() != EventMapBegin {
		return nil, invalidTagTypef("root tag is not a compound")
	}
	return &Decoder{p: p}, nil
}

/*
Decode populates v, which must be a non-nil pointer to a struct, from
the root compound's body. The pointer's pointee is decoded the same
way decodeStruct treats any nested compound-typed field; see
decode_reflect.go.
*/
func (d *Decoder) Decode(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return invalidTagTypef("Decode requires a non-nil pointer")
	}
	return d.decodeStruct(rv.Elem())
}

/*
DecodeFromSource is the convenience entry point of spec §6:
constructs a Parser around source, performs the pre-advance sequence,
and decodes directly into a freshly allocated T.
*/
func DecodeFromSource[T any](source io.Reader, opts ...Option) (T, error) {
	var zero T
	p := Construct(source, opts...)
	dec, err := NewDecoder(p)
	if err != nil {
		return zero, err
	}
	var out T
	rv := reflect.ValueOf(&out).Elem()
	if err := dec.decodeStruct(rv); err != nil {
		return zero, err
	}
	return out, nil
}
