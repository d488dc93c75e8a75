package nbt

/*
parser.go implements the streaming pull-parser of spec §3 and §4: a
single-pass, recursion-free state machine that surfaces one
Event at a time from Advance, with nesting depth bounded by an
explicit return stack living on the heap rather than by the Go call
stack.

The style is carried over from the teacher's Packet/TLV pull-accessor
pattern in the asn1plus lineage this module grew out of: a struct that
owns a cursor into an underlying byte source, a handful of typed
accessors that are only legal to call in specific states, and an
internal dispatcher that advances the cursor one decision at a time.
*/

import (
	"io"

	"golang.org/x/exp/constraints"
)

/*
DefaultMaxDepth bounds the return stack's length, and therefore the
nesting depth a single Parser will tolerate before failing with
ErrInvalidParserState instead of growing without limit against
adversarial input. Construct a Parser with WithMaxDepth to override it.
*/
const DefaultMaxDepth = 512

/*
Parser is a streaming, pull-style reader of one NBT-encoded byte
stream. The zero value is not usable; obtain one with Construct.

A Parser is not safe for concurrent use. Once Advance returns an
error the Parser is permanently failed: every subsequent call fails
with ErrInvalidParserState.
*/
type Parser struct {
	src *byteSource

	state    stateKind
	tagKind  TagKind
	arrKind  TagKind
	elemKind TagKind

	remaining int32

	i8  int8
	i16 int16
	i32 int32
	i64 int64
	f32 float32
	f64 float64
	str string

	stack    []returnFrame
	maxDepth int

	err error
}

/*
Option configures a Parser at construction time.
*/
type Option func(*Parser)

/*
WithMaxDepth overrides DefaultMaxDepth. A depth of 0 disables nested
containers entirely (only top-level scalars parse).
*/
func WithMaxDepth(n int) Option {
	return func(p *Parser) { p.maxDepth = n }
}

/*
Construct returns a Parser reading from r, positioned so that the
first call to Advance begins reading the stream's leading tag header.
*/
func Construct(r io.Reader, opts ...Option) *Parser {
	p := &Parser{
		src:      newByteSource(r),
		state:    stExpectingTag,
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

/*
CurrentKind reports the EventKind the parser is currently positioned
on. Its result is meaningful only after at least one successful call
to Advance.
*/
func (p *Parser) CurrentKind() EventKind {
	return p.currentKind()
}

/*
Advance drives the parser forward to the next event, returning any
error classified per spec §7. Once Advance has returned a non-nil
error, every subsequent call returns ErrInvalidParserState without
touching the underlying source again.
*/
func (p *Parser) Advance() error {
	if p.err != nil {
		return invalidParserStatef("advance called from invalid state")
	}
	debugEnter("Parser.Advance")
	for {
		observable, err := p.step()
		if err != nil {
			p.err = err
			p.state = stInvalid
			debugExit("Parser.Advance", err)
			return err
		}
		if observable {
			debugExit("Parser.Advance", nil)
			return nil
		}
	}
}

/*
step performs exactly one internal transition of the state machine.
It returns observable=true once p.state names a state a caller may
legitimately inspect via CurrentKind/the typed accessors; it returns
observable=false when the transition landed on a transient
pass-through state (stExpectingTag or stListResume) that must be
stepped through again before Advance returns.
*/
func (p *Parser) step() (observable bool, err error) {
	switch p.state {
	case stExpectingTag:
		return p.stepExpectingTag()
	case stTagHeader:
		return p.stepTagHeader()
	case stCompound:
		return p.stepExpectingTag()
	case stTagEnd, stListEnd, stArrayEnd:
		return p.stepPopAndContinue()
	case stListBegin:
		return p.stepListBegin()
	case stListResume:
		return p.stepListResume()
	case stArrayBegin:
		return p.stepArrayBegin()
	case stArrayValueI8, stArrayValueI32, stArrayValueI64:
		return p.stepArrayValue()
	case stListValueI8, stListValueI16, stListValueI32, stListValueI64, stListValueF32, stListValueF64, stListValueString:
		return p.stepListValue()
	case stTagValueI8, stTagValueI16, stTagValueI32, stTagValueI64, stTagValueF32, stTagValueF64, stTagValueString:
		// A scalar tag value was already fully read in stepTagHeader; the
		// next Advance call after observing one returns to reading a
		// sibling tag header, exactly like the top of a compound does.
		p.state = stExpectingTag
		return false, nil
	default:
		return false, invalidParserStatef("advance called from invalid state")
	}
}

/*
stepExpectingTag reads one tag header: the kind byte, and -- unless
the kind is TagEnd -- the name that follows it. It is the entry point
both for the very first tag in a document and for every sibling tag
inside a compound.
*/
func (p *Parser) stepExpectingTag() (bool, error) {
	kb, err := p.src.readByte()
	if err != nil {
		return false, err
	}
	kind := TagKind(kb)
	if kind == TagEnd {
		p.state = stTagEnd
		return true, nil
	}
	if !kind.Valid() {
		return false, invalidTagTypef("unrecognized tag id ", itoa(int(kb)))
	}
	name, err := p.src.readName()
	if err != nil {
		return false, err
	}
	p.tagKind = kind
	p.str = name
	p.state = stTagHeader
	return true, nil
}

/*
stepTagHeader dispatches on the tag kind captured by stepExpectingTag,
reading that tag's payload (for scalars) or entering the appropriate
container regime (for compounds, lists and typed arrays).
*/
func (p *Parser) stepTagHeader() (bool, error) {
	switch p.tagKind {
	case TagI8:
		v, err := p.src.readI8()
		if err != nil {
			return false, err
		}
		p.i8 = v
		p.state = stTagValueI8
		return true, nil
	case TagI16:
		v, err := p.src.readI16()
		if err != nil {
			return false, err
		}
		p.i16 = v
		p.state = stTagValueI16
		return true, nil
	case TagI32:
		v, err := p.src.readI32()
		if err != nil {
			return false, err
		}
		p.i32 = v
		p.state = stTagValueI32
		return true, nil
	case TagI64:
		v, err := p.src.readI64()
		if err != nil {
			return false, err
		}
		p.i64 = v
		p.state = stTagValueI64
		return true, nil
	case TagF32:
		v, err := p.src.readF32()
		if err != nil {
			return false, err
		}
		p.f32 = v
		p.state = stTagValueF32
		return true, nil
	case TagF64:
		v, err := p.src.readF64()
		if err != nil {
			return false, err
		}
		p.f64 = v
		p.state = stTagValueF64
		return true, nil
	case TagString:
		s, err := p.src.readName()
		if err != nil {
			return false, err
		}
		p.str = s
		p.state = stTagValueString
		return true, nil
	case TagCompound:
		if err := p.pushExpectingTag(); err != nil {
			return false, err
		}
		p.state = stCompound
		return true, nil
	case TagList:
		if err := p.pushExpectingTag(); err != nil {
			return false, err
		}
		return p.enterList()
	case TagI8Array, TagI32Array, TagI64Array:
		if err := p.pushExpectingTag(); err != nil {
			return false, err
		}
		return p.enterArray(p.tagKind)
	default:
		return false, invalidTagTypef("unreachable tag kind in dispatch")
	}
}

func (p *Parser) pushExpectingTag() error {
	if len(p.stack) >= p.maxDepth {
		return invalidParserStatef("maximum nesting depth exceeded")
	}
	p.stack = append(p.stack, returnFrame{kind: frameExpectingTag})
	return nil
}

func (p *Parser) pushListResume(remaining int32, elemKind TagKind) error {
	if len(p.stack) >= p.maxDepth {
		return invalidParserStatef("maximum nesting depth exceeded")
	}
	p.stack = append(p.stack, returnFrame{kind: frameListResume, remaining: remaining, elemKind: elemKind})
	return nil
}

/*
stepPopAndContinue implements the single pop-and-continue action every
End-state funnels through (spec §4.2): pop one return frame, install
it as the current state, and let the surrounding Advance loop step
through it again. An empty stack here means an End tag, list, or array
closed something that was never opened -- a framing violation -- with
one exception: at the very end of a well-formed document the
resumed stExpectingTag state's own read will hit ErrEof naturally,
which is not special-cased here at all since it flows through the
ordinary stepExpectingTag error path on the next loop iteration.
*/
func (p *Parser) stepPopAndContinue() (bool, error) {
	if len(p.stack) == 0 {
		return false, invalidParserStatef("pop requested against empty return stack")
	}
	n := len(p.stack) - 1
	fr := p.stack[n]
	p.stack = p.stack[:n]
	switch fr.kind {
	case frameExpectingTag:
		p.state = stExpectingTag
	case frameListResume:
		p.remaining = fr.remaining
		p.elemKind = fr.elemKind
		p.state = stListResume
	default:
		return false, invalidParserStatef("corrupt return frame")
	}
	return false, nil
}

/*
checkLength validates a length-prefixed count read off the wire
against NBT's protocol ceiling (spec §3), working for any of the
signed integer widths the format uses for length fields.
*/
func checkLength[T constraints.Integer](n T, what string) (int32, error) {
	if n < 0 {
		return 0, invalidParserStatef(what, " has negative length")
	}
	if int64(n) > int64(MaxListLength) {
		return 0, invalidParserStatef(what, " exceeds maximum length")
	}
	return int32(n), nil
}
