package nbt

/*
errors.go contains the error taxonomy of spec §7: Eof, IoError,
InvalidParserState, InvalidTagType and FromUtf8. Each is a distinct
sentinel type so callers can discriminate with errors.As/errors.Is
(via github.com/pkg/errors, which this package uses at every I/O
boundary so a failure deep in a nested compound still carries the
call chain that led to it) while every constructor still funnels
through the same interned-message cache the teacher repo uses for its
own error constructors.
*/

import (
	"sync"

	"github.com/pkg/errors"
)

/*
ErrEof reports that the byte source was exhausted. It is returned
wherever a read runs out of input: at a tag-header boundary, such as
just after the root compound's close, or part-way through a value.
Only the Decoder treats it as a clean termination, and only after the
root compound's close.
*/
type ErrEof struct{ cause error }

func (e *ErrEof) Error() string { return "nbt: unexpected end of input" }
func (e *ErrEof) Unwrap() error { return e.cause }

/*
ErrIoError wraps a failure returned by the underlying byte source
that is not itself an end-of-file condition.
*/
type ErrIoError struct{ cause error }

func (e *ErrIoError) Error() string { return "nbt: i/o error: " + errCauseMsg(e.cause) }
func (e *ErrIoError) Unwrap() error { return e.cause }

/*
ErrInvalidParserState reports a framing violation: a negative or
oversize length, an End tag encountered outside a compound's tag
position, a pop attempted against an empty return stack, or an
advance() call issued after the parser has already failed.
*/
type ErrInvalidParserState struct{ msg string }

func (e *ErrInvalidParserState) Error() string { return "nbt: invalid parser state: " + e.msg }

/*
ErrInvalidTagType reports that a typed accessor was invoked against a
parser state that does not carry that type, or that a tag byte did
not correspond to one of the thirteen defined tag kinds.
*/
type ErrInvalidTagType struct{ msg string }

func (e *ErrInvalidTagType) Error() string { return "nbt: invalid tag type: " + e.msg }

/*
ErrFromUtf8 reports that a string field's bytes were not valid
Modified UTF-8 (decoded here, per the conformance gap noted in spec
§9, as standard UTF-8).
*/
type ErrFromUtf8 struct{ bytes []byte }

func (e *ErrFromUtf8) Error() string { return "nbt: invalid utf-8 string payload" }

func errCauseMsg(err error) string {
	if err == nil {
		return "unknown"
	}
	return err.Error()
}

func newEofError(cause error) error {
	return &ErrEof{cause: cause}
}

func newIoError(cause error) error {
	return &ErrIoError{cause: errors.WithStack(cause)}
}

func newInvalidParserState(msg string) error {
	return &ErrInvalidParserState{msg: msg}
}

func newInvalidTagType(msg string) error {
	return &ErrInvalidTagType{msg: msg}
}

func newFromUtf8Error(b []byte) error {
	cp := append([]byte(nil), b...)
	return &ErrFromUtf8{bytes: cp}
}

/*
errCache interns the formatted ErrInvalidParserState / ErrInvalidTagType
messages that recur across many parses of similarly-shaped malformed
input (the same bad length offset, the same bad tag id), the same
caching idiom the teacher applies to its own mkerrf.
*/
var errCache sync.Map

func mkerrf(parts ...string) string {
	if len(parts) == 1 {
		if v, hit := errCache.Load(parts[0]); hit {
			return v.(string)
		}
		return parts[0]
	}
	b := newStrBuilder()
	for _, p := range parts {
		b.WriteString(p)
	}
	msg := b.String()
	if v, hit := errCache.Load(msg); hit {
		return v.(string)
	}
	errCache.Store(msg, msg)
	return msg
}

func invalidParserStatef(parts ...string) error {
	return newInvalidParserState(mkerrf(parts...))
}

func invalidTagTypef(parts ...string) error {
	return newInvalidTagType(mkerrf(parts...))
}

/*
classifyReadError maps a raw error returned by the byte source into
the taxonomy of spec §7: io.EOF and io.ErrUnexpectedEOF become ErrEof,
anything else becomes ErrIoError.
*/
func classifyReadError(err error) error {
	if err == nil {
		return nil
	}
	if isEOF(err) {
		return newEofError(err)
	}
	return newIoError(err)
}
