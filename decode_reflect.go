package nbt

/*
decode_reflect.go contains the reflection-driven value decoders
backing Decoder.Decode: one function per shape named in spec §4.3
(scalar, sequence, mapping/record, optional, any, ignored,
identifier).

Calling convention shared by every decodeX(rv) function in this file,
mirroring the parser's own pull style: on entry, the parser is already
positioned on the value's first observable event (EventI8...EventString
for a scalar, EventSeqBegin for a list or typed array, EventMapBegin
for a compound). On a successful return, the parser has been advanced
past the value entirely and is positioned on whatever follows it --
the next sibling's tag header, or the enclosing container's own end
marker. decodeStruct's top-level call (from Decoder.Decode or
DecodeFromSource) is the one exception on return: the Advance past the
root compound's MapEnd runs into the end of the source, which it
treats as a clean finish, so the parser is left failed with nothing
further to read.
*/

import (
	"reflect"
)

const structTagKey = "nbt"

func (d *Decoder) decodeValue(rv reflect.Value) error {
	if fn, ok := lookupAdapter(rv.Type()); ok {
		v, err := fn(d.p)
		if err != nil {
			return err
		}
		rv.Set(v)
		return nil
	}
	switch rv.Kind() {
	case reflect.Ptr:
		return d.decodeOptional(rv)
	case reflect.Interface:
		return d.decodeAny(rv)
	case reflect.Struct:
		return d.decodeStruct(rv)
	case reflect.Slice, reflect.Array:
		return d.decodeSequence(rv)
	case reflect.Bool:
		return d.decodeBool(rv)
	case reflect.Int8:
		return d.decodeScalar(rv, EventI8)
	case reflect.Uint8:
		return d.decodeByte(rv)
	case reflect.Int16:
		return d.decodeScalar(rv, EventI16)
	case reflect.Int32:
		return d.decodeScalar(rv, EventI32)
	case reflect.Int64, reflect.Int:
		return d.decodeScalar(rv, EventI64)
	case reflect.Float32:
		return d.decodeScalar(rv, EventF32)
	case reflect.Float64:
		return d.decodeScalar(rv, EventF64)
	case reflect.String:
		return d.decodeScalar(rv, EventString)
	default:
		return invalidTagTypef("unsupported Go type ", rv.Type().String())
	}
}

/*
decodeBool serves the one host-side convenience the Unsupported
clause of §4.3 calls out explicitly: NBT has no boolean tag, but
TAG_Byte is conventionally used to carry one, so a bool-typed field
reads the current I8 and treats any nonzero value as true.
*/
func (d *Decoder) decodeBool(rv reflect.Value) error {
	if d.p.CurrentKind() != EventI8 {
		return invalidTagTypef("bool field requires a TAG_Byte value")
	}
	v, err := d.p.GetI8()
	if err != nil {
		return err
	}
	if err := d.p.Advance(); err != nil {
		return err
	}
	rv.SetBool(v != 0)
	return nil
}

/*
decodeByte serves Go's byte (uint8) type, the natural element type
for a TAG_Byte_Array-backed []byte field: NBT's I8 payload is signed
on the wire, but []byte fields want the raw bit pattern rather than
Go's signed/unsigned conversion rules applied.
*/
func (d *Decoder) decodeByte(rv reflect.Value) error {
	if d.p.CurrentKind() != EventI8 {
		return invalidTagTypef("byte field requires a TAG_Byte value")
	}
	v, err := d.p.GetI8()
	if err != nil {
		return err
	}
	if err := d.p.Advance(); err != nil {
		return err
	}
	rv.SetUint(uint64(byte(v)))
	return nil
}

func (d *Decoder) decodeScalar(rv reflect.Value, want EventKind) error {
	if d.p.CurrentKind() != want {
		return invalidTagTypef("field ", rv.Type().String(), " does not match the tag's value kind")
	}
	switch want {
	case EventI8:
		v, err := d.p.GetI8()
		if err != nil {
			return err
		}
		if err := d.p.Advance(); err != nil {
			return err
		}
		rv.SetInt(int64(v))
	case EventI16:
		v, err := d.p.GetI16()
		if err != nil {
			return err
		}
		if err := d.p.Advance(); err != nil {
			return err
		}
		rv.SetInt(int64(v))
	case EventI32:
		v, err := d.p.GetI32()
		if err != nil {
			return err
		}
		if err := d.p.Advance(); err != nil {
			return err
		}
		rv.SetInt(int64(v))
	case EventI64:
		v, err := d.p.GetI64()
		if err != nil {
			return err
		}
		if err := d.p.Advance(); err != nil {
			return err
		}
		rv.SetInt(v)
	case EventF32:
		v, err := d.p.GetF32()
		if err != nil {
			return err
		}
		if err := d.p.Advance(); err != nil {
			return err
		}
		rv.SetFloat(float64(v))
	case EventF64:
		v, err := d.p.GetF64()
		if err != nil {
			return err
		}
		if err := d.p.Advance(); err != nil {
			return err
		}
		rv.SetFloat(v)
	case EventString:
		v, err := d.p.GetString()
		if err != nil {
			return err
		}
		if err := d.p.Advance(); err != nil {
			return err
		}
		rv.SetString(v)
	}
	return nil
}

/*
decodeSequence serves both TAG_List and the three typed array kinds:
both surface identically as a SeqBegin/SeqEnd bracketed run of events
(spec §3), so the same loop drives a slice or fixed-size array field
regardless of which wire kind produced it.
*/
func (d *Decoder) decodeSequence(rv reflect.Value) error {
	if d.p.CurrentKind() != EventSeqBegin {
		return invalidTagTypef("field ", rv.Type().String(), " requires a sequence value")
	}
	isArray := rv.Kind() == reflect.Array
	elemType := rv.Type().Elem()

	if err := d.p.Advance(); err != nil {
		return err
	}

	var out reflect.Value
	if !isArray {
		out = reflect.MakeSlice(rv.Type(), 0, 0)
	}

	i := 0
	for d.p.CurrentKind() != EventSeqEnd {
		elem := reflect.New(elemType).Elem()
		if err := d.decodeValue(elem); err != nil {
			return err
		}
		if isArray {
			if i < rv.Len() {
				rv.Index(i).Set(elem)
			}
		} else {
			out = reflect.Append(out, elem)
		}
		i++
	}
	if isArray && i != rv.Len() {
		return invalidTagTypef("sequence length does not match fixed-size array field")
	}
	if err := d.p.Advance(); err != nil {
		return err
	}
	if !isArray {
		rv.Set(out)
	}
	return nil
}

/*
decodeOptional implements the Optional request of §4.3. It is only
ever invoked for a key that did appear in the enclosing compound --
omission is handled entirely by decodeStruct simply never calling it
for a key that never showed up, leaving the field at its zero value.
*/
func (d *Decoder) decodeOptional(rv reflect.Value) error {
	elem := reflect.New(rv.Type().Elem())
	if err := d.decodeValue(elem.Elem()); err != nil {
		return err
	}
	rv.Set(elem)
	return nil
}

/*
decodeStruct implements the Mapping/record request of §4.3. On entry
the parser is positioned on MapBegin; decodeStruct advances into the
compound body and reads (key, value) pairs until MapEnd, resolving
each key against rv's exported fields (matched by an `nbt:"name"`
struct tag if present, falling back to a case-insensitive match
against the Go field name) and recursing into decodeValue for the
matched field, or discarding the value as an Ignored request if no
field matches.
*/
func (d *Decoder) decodeStruct(rv reflect.Value) error {
	if d.p.CurrentKind() != EventMapBegin {
		return invalidTagTypef("value requires a compound")
	}
	if err := d.p.Advance(); err != nil {
		return err
	}
	fields := structFieldIndex(rv.Type())

	for {
		if d.p.CurrentKind() == EventMapEnd {
			if err := d.p.Advance(); err != nil {
				if _, eof := err.(*ErrEof); eof && len(d.p.stack) == 0 {
					// End-of-input in mapping (spec §4.3): the root compound's
					// close is immediately followed by end of source. Treat as
					// a clean, completed mapping rather than propagating.
					return nil
				}
				return err
			}
			return nil
		}
		key, err := d.p.GetString()
		if err != nil {
			return err
		}
		if err := d.p.Advance(); err != nil {
			return err
		}
		fi, ok := fields[lc(key)]
		if !ok {
			if err := d.skipValue(); err != nil {
				return err
			}
			continue
		}
		if err := d.decodeValue(rv.Field(fi)); err != nil {
			return err
		}
	}
}

/*
decodeAny implements the Any (dynamic) request of §4.3: it consults
the parser's current event kind and produces the natively-shaped Go
value for it -- a scalar, a []any for any sequence, or a
map[string]any for a compound -- without any host-declared shape to
guide it. Fields typed as any, and skipValue, use this path.
*/
func (d *Decoder) decodeAny(rv reflect.Value) error {
	v, err := d.decodeAnyValue()
	if err != nil {
		return err
	}
	rv.Set(reflect.ValueOf(v))
	return nil
}

func (d *Decoder) decodeAnyValue() (any, error) {
	switch d.p.CurrentKind() {
	case EventI8:
		v, err := d.p.GetI8()
		if err != nil {
			return nil, err
		}
		return v, d.p.Advance()
	case EventI16:
		v, err := d.p.GetI16()
		if err != nil {
			return nil, err
		}
		return v, d.p.Advance()
	case EventI32:
		v, err := d.p.GetI32()
		if err != nil {
			return nil, err
		}
		return v, d.p.Advance()
	case EventI64:
		v, err := d.p.GetI64()
		if err != nil {
			return nil, err
		}
		return v, d.p.Advance()
	case EventF32:
		v, err := d.p.GetF32()
		if err != nil {
			return nil, err
		}
		return v, d.p.Advance()
	case EventF64:
		v, err := d.p.GetF64()
		if err != nil {
			return nil, err
		}
		return v, d.p.Advance()
	case EventString:
		v, err := d.p.GetString()
		if err != nil {
			return nil, err
		}
		return v, d.p.Advance()
	case EventSeqBegin:
		return d.decodeAnySeq()
	case EventMapBegin:
		return d.decodeAnyMap()
	default:
		return nil, invalidTagTypef("any request against an unexpected event kind")
	}
}

func (d *Decoder) decodeAnySeq() (any, error) {
	if err := d.p.Advance(); err != nil {
		return nil, err
	}
	out := []any{}
	for d.p.CurrentKind() != EventSeqEnd {
		v, err := d.decodeAnyValue()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, d.p.Advance()
}

func (d *Decoder) decodeAnyMap() (any, error) {
	if err := d.p.Advance(); err != nil {
		return nil, err
	}
	out := map[string]any{}
	for {
		if d.p.CurrentKind() == EventMapEnd {
			if err := d.p.Advance(); err != nil {
				if _, eof := err.(*ErrEof); eof && len(d.p.stack) == 0 {
					return out, nil
				}
				return nil, err
			}
			return out, nil
		}
		key, err := d.p.GetString()
		if err != nil {
			return nil, err
		}
		if err := d.p.Advance(); err != nil {
			return nil, err
		}
		v, err := d.decodeAnyValue()
		if err != nil {
			return nil, err
		}
		out[key] = v
	}
}

/*
skipValue implements the Ignored request of §4.3: decode and discard,
behaving exactly like Any but throwing the result away.
*/
func (d *Decoder) skipValue() error {
	_, err := d.decodeAnyValue()
	return err
}

/*
structFieldIndex maps the lowercased NBT key a compound member would
carry to the index of the Go struct field that should receive it.
An `nbt:"-"` tag excludes a field entirely.
*/
func structFieldIndex(t reflect.Type) map[string]int {
	out := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue
		}
		tag := f.Tag.Get(structTagKey)
		if tag == "-" {
			continue
		}
		name := f.Name
		if tag != "" {
			name = tag
		}
		out[lc(name)] = i
	}
	return out
}
