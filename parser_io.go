package nbt

/*
parser_io.go contains the byte-level primitives the parser's regimes
build on: reading fixed-width big-endian scalars and length-prefixed
byte runs from the underlying io.Reader, with every failure classified
into the spec §7 taxonomy at the point of occurrence.
*/

import (
	"encoding/binary"
	"io"
)

type byteSource struct {
	r   io.Reader
	pos int64
}

func newByteSource(r io.Reader) *byteSource {
	return &byteSource{r: r}
}

/*
readFull reads exactly len(buf) bytes, classifying a short read the
same way a zero-byte read at the boundary is classified: as ErrEof.
Per the Open Question decision recorded in DESIGN.md, this module does
not distinguish an exhausted source encountered mid-value from one
encountered exactly on a tag-header boundary; both surface as ErrEof,
and it is the caller's state-machine position (tracked via the return
stack) that determines whether a clean end was expected there.
*/
func (s *byteSource) readFull(buf []byte) error {
	n, err := io.ReadFull(s.r, buf)
	s.pos += int64(n)
	if err != nil {
		return classifyReadError(err)
	}
	return nil
}

func (s *byteSource) readByte() (byte, error) {
	var b [1]byte
	if err := s.readFull(b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

func (s *byteSource) readI8() (int8, error) {
	b, err := s.readByte()
	return int8(b), err
}

func (s *byteSource) readI16() (int16, error) {
	var b [2]byte
	if err := s.readFull(b[:]); err != nil {
		return 0, err
	}
	return int16(binary.BigEndian.Uint16(b[:])), nil
}

func (s *byteSource) readI32() (int32, error) {
	var b [4]byte
	if err := s.readFull(b[:]); err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(b[:])), nil
}

func (s *byteSource) readI64() (int64, error) {
	var b [8]byte
	if err := s.readFull(b[:]); err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(b[:])), nil
}

func (s *byteSource) readF32() (float32, error) {
	v, err := s.readI32()
	if err != nil {
		return 0, err
	}
	return int32ToFloat32(v), nil
}

func (s *byteSource) readF64() (float64, error) {
	v, err := s.readI64()
	if err != nil {
		return 0, err
	}
	return int64ToFloat64(v), nil
}

/*
readName reads a TAG_String-shaped name field: an unsigned 16-bit
length prefix followed by that many bytes of (nominally Modified)
UTF-8. Used both for compound member names and for standalone
TAG_String payloads -- the wire shape is identical, only the NBT
semantics attached to it differ.
*/
func (s *byteSource) readName() (string, error) {
	var lb [2]byte
	if err := s.readFull(lb[:]); err != nil {
		return "", err
	}
	n := int(binary.BigEndian.Uint16(lb[:]))
	if n == 0 {
		return "", nil
	}
	buf := make([]byte, n)
	if err := s.readFull(buf); err != nil {
		return "", err
	}
	return decodeModifiedUTF8(buf)
}
