package nbt

/*
state.go contains the parser's internal state representation: a
single enumerated "current state" plus the stack of deferred return
states described in spec §3 and §4.2.

Rather than a separate "current scalar" register, the state variant
itself carries the decoded scalar (see spec §9, "Scalar-visited state
carries the value"): once parsed, a TagValue's payload lives in the
Parser struct's scalar fields and is only meaningful while `state`
names the matching variant. This makes the accessor/state invariant
enforceable with one guard per accessor rather than a parallel
bookkeeping structure.
*/

type stateKind uint8

const (
	stInvalid stateKind = iota
	stExpectingTag
	stTagHeader
	stTagEnd
	stTagValueI8
	stTagValueI16
	stTagValueI32
	stTagValueI64
	stTagValueF32
	stTagValueF64
	stTagValueString
	stCompound

	stArrayBegin
	stArrayValueI8
	stArrayValueI32
	stArrayValueI64
	stArrayEnd

	stListBegin  // just entered: emits SeqBegin, dispatches on next advance
	stListResume // returned from a nested container: transient, never observed externally
	stListValueI8
	stListValueI16
	stListValueI32
	stListValueI64
	stListValueF32
	stListValueF64
	stListValueString
	stListEnd
)

/*
currentKind maps the receiver's state to the externally visible
EventKind, per the table in spec §3. stExpectingTag and stInvalid both
map to EventInvalid: a caller driving the parser (the Binding Decoder
or any other consumer) must never observe stExpectingTag directly --
reaching it only ever triggers another internal transition before
advance() returns.
*/
func (p *Parser) currentKind() EventKind {
	switch p.state {
	case stTagHeader, stTagValueString, stListValueString:
		return EventString
	case stTagValueI8, stArrayValueI8, stListValueI8:
		return EventI8
	case stTagValueI16, stListValueI16:
		return EventI16
	case stTagValueI32, stArrayValueI32, stListValueI32:
		return EventI32
	case stTagValueI64, stArrayValueI64, stListValueI64:
		return EventI64
	case stTagValueF32, stListValueF32:
		return EventF32
	case stTagValueF64, stListValueF64:
		return EventF64
	case stCompound, stListBegin, stArrayBegin:
		// Open Questions (spec §9): SeqBegin is mandated uniformly for
		// every <Kind>ArrayBegin state, same as stListBegin for lists.
		if p.state == stCompound {
			return EventMapBegin
		}
		return EventSeqBegin
	case stTagEnd:
		return EventMapEnd
	case stListEnd, stArrayEnd:
		return EventSeqEnd
	default:
		return EventInvalid
	}
}

/*
frameKind distinguishes the two shapes of deferred return state named
in spec §3's invariants: a plain resumption of tag-header reading, and
a resumption of an in-progress list whose element was itself a
container.
*/
type frameKind uint8

const (
	frameExpectingTag frameKind = iota
	frameListResume
)

type returnFrame struct {
	kind      frameKind
	remaining int32
	elemKind  TagKind
}
