package nbt

import (
	"bytes"
	"testing"
)

func mustAdvance(t *testing.T, p *Parser) {
	t.Helper()
	if err := p.Advance(); err != nil {
		t.Fatalf("Advance: unexpected error: %v", err)
	}
}

func TestScalarI8(t *testing.T) {
	// 01 00 00 11 -> TAG_Byte "" = 0x11
	buf := []byte{0x01, 0x00, 0x00, 0x11}
	p := Construct(bytes.NewReader(buf))

	mustAdvance(t, p)
	if p.CurrentKind() != EventString {
		t.Fatalf("want EventString, got %v", p.CurrentKind())
	}
	if name, err := p.GetString(); err != nil || name != "" {
		t.Fatalf("name = %q, %v", name, err)
	}

	mustAdvance(t, p)
	if p.CurrentKind() != EventI8 {
		t.Fatalf("want EventI8, got %v", p.CurrentKind())
	}
	v, err := p.GetI8()
	if err != nil || v != 0x11 {
		t.Fatalf("GetI8() = %v, %v", v, err)
	}

	if err := p.Advance(); err == nil {
		t.Fatal("expected Eof on final advance")
	} else if _, ok := err.(*ErrEof); !ok {
		t.Fatalf("expected *ErrEof, got %T: %v", err, err)
	}
}

func TestScalarI64(t *testing.T) {
	buf := []byte{0x04, 0x00, 0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88}
	p := Construct(bytes.NewReader(buf))

	mustAdvance(t, p)
	mustAdvance(t, p)
	if p.CurrentKind() != EventI64 {
		t.Fatalf("want EventI64, got %v", p.CurrentKind())
	}
	v, err := p.GetI64()
	if err != nil {
		t.Fatal(err)
	}
	if want := int64(0x1122334455667788); v != want {
		t.Fatalf("GetI64() = %#x, want %#x", v, want)
	}
}

func TestStringTag(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteByte(0x08)
	buf.Write([]byte{0x00, 0x08})
	buf.WriteString("tag name")
	buf.Write([]byte{0x00, 0x0D})
	buf.WriteString("Hello, World!")

	p := Construct(bytes.NewReader(buf.Bytes()))
	mustAdvance(t, p)
	if s, _ := p.GetString(); s != "tag name" {
		t.Fatalf("name = %q", s)
	}
	mustAdvance(t, p)
	if p.CurrentKind() != EventString {
		t.Fatalf("want EventString, got %v", p.CurrentKind())
	}
	if s, _ := p.GetString(); s != "Hello, World!" {
		t.Fatalf("value = %q", s)
	}
}

func TestEmptyCompound(t *testing.T) {
	buf := []byte{0x0A, 0x00, 0x00, 0x00}
	p := Construct(bytes.NewReader(buf))

	mustAdvance(t, p) // String ""
	if p.CurrentKind() != EventString {
		t.Fatalf("want EventString, got %v", p.CurrentKind())
	}
	mustAdvance(t, p) // MapBegin
	if p.CurrentKind() != EventMapBegin {
		t.Fatalf("want EventMapBegin, got %v", p.CurrentKind())
	}
	mustAdvance(t, p) // MapEnd
	if p.CurrentKind() != EventMapEnd {
		t.Fatalf("want EventMapEnd, got %v", p.CurrentKind())
	}
}

func TestTripleNestedCompound(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteByte(0x0A)
	buf.Write([]byte{0x00, 0x05})
	buf.WriteString("outer")
	buf.WriteByte(0x0A)
	buf.Write([]byte{0x00, 0x03})
	buf.WriteString("mid")
	buf.WriteByte(0x0A)
	buf.Write([]byte{0x00, 0x05})
	buf.WriteString("inner")
	buf.Write([]byte{0x00, 0x00, 0x00})

	p := Construct(bytes.NewReader(buf.Bytes()))
	want := []EventKind{
		EventString, EventMapBegin,
		EventString, EventMapBegin,
		EventString, EventMapBegin,
		EventMapEnd, EventMapEnd, EventMapEnd,
	}
	for i, ek := range want {
		mustAdvance(t, p)
		if p.CurrentKind() != ek {
			t.Fatalf("event %d: want %v, got %v", i, ek, p.CurrentKind())
		}
	}
	if err := p.Advance(); err == nil {
		t.Fatal("expected Eof after final MapEnd")
	} else if _, ok := err.(*ErrEof); !ok {
		t.Fatalf("expected *ErrEof, got %T", err)
	}
}

func TestEmptyI8Array(t *testing.T) {
	buf := []byte{0x07, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	p := Construct(bytes.NewReader(buf))

	mustAdvance(t, p)
	mustAdvance(t, p)
	if p.CurrentKind() != EventSeqBegin {
		t.Fatalf("want EventSeqBegin, got %v", p.CurrentKind())
	}
	mustAdvance(t, p)
	if p.CurrentKind() != EventSeqEnd {
		t.Fatalf("want EventSeqEnd, got %v", p.CurrentKind())
	}
}

func TestEmptyListOfI8(t *testing.T) {
	buf := []byte{0x09, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00}
	p := Construct(bytes.NewReader(buf))

	mustAdvance(t, p)
	mustAdvance(t, p)
	if p.CurrentKind() != EventSeqBegin {
		t.Fatalf("want EventSeqBegin, got %v", p.CurrentKind())
	}
	mustAdvance(t, p)
	if p.CurrentKind() != EventSeqEnd {
		t.Fatalf("want EventSeqEnd, got %v", p.CurrentKind())
	}
}

func TestNonEmptyListOfI32(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteByte(0x09)
	buf.Write([]byte{0x00, 0x00}) // name ""
	buf.WriteByte(0x03)           // elem kind: I32
	buf.Write([]byte{0x00, 0x00, 0x00, 0x02})
	buf.Write([]byte{0x00, 0x00, 0x00, 0x07})
	buf.Write([]byte{0x00, 0x00, 0x00, 0x09})

	p := Construct(bytes.NewReader(buf.Bytes()))
	mustAdvance(t, p) // name
	mustAdvance(t, p) // SeqBegin
	if p.CurrentKind() != EventSeqBegin {
		t.Fatalf("want SeqBegin, got %v", p.CurrentKind())
	}
	mustAdvance(t, p)
	if p.CurrentKind() != EventI32 {
		t.Fatalf("want I32, got %v", p.CurrentKind())
	}
	if v, _ := p.GetI32(); v != 7 {
		t.Fatalf("elem 0 = %d", v)
	}
	mustAdvance(t, p)
	if v, _ := p.GetI32(); v != 9 {
		t.Fatalf("elem 1 = %d", v)
	}
	mustAdvance(t, p)
	if p.CurrentKind() != EventSeqEnd {
		t.Fatalf("want SeqEnd, got %v", p.CurrentKind())
	}
}

func TestListOfCompounds(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteByte(0x09)
	buf.Write([]byte{0x00, 0x00}) // name ""
	buf.WriteByte(0x0A)           // elem kind: Compound
	buf.Write([]byte{0x00, 0x00, 0x00, 0x02})
	// element 0: empty compound
	buf.WriteByte(0x00)
	// element 1: compound with one byte member "x"
	buf.WriteByte(0x01)
	buf.Write([]byte{0x00, 0x01})
	buf.WriteString("x")
	buf.WriteByte(0x05)
	buf.WriteByte(0x00)

	p := Construct(bytes.NewReader(buf.Bytes()))
	seq := []EventKind{
		EventString,  // name
		EventSeqBegin,
		EventMapBegin, EventMapEnd, // element 0
		EventMapBegin, EventString, EventI8, EventMapEnd, // element 1
		EventSeqEnd,
	}
	for i, ek := range seq {
		mustAdvance(t, p)
		if p.CurrentKind() != ek {
			t.Fatalf("event %d: want %v, got %v", i, ek, p.CurrentKind())
		}
	}
}

func TestMalformedTagID(t *testing.T) {
	buf := []byte{0xFF, 0x00, 0x00}
	p := Construct(bytes.NewReader(buf))
	err := p.Advance()
	if _, ok := err.(*ErrInvalidTagType); !ok {
		t.Fatalf("expected *ErrInvalidTagType, got %T: %v", err, err)
	}
	// Parser stays failed.
	if err2 := p.Advance(); err2 == nil {
		t.Fatal("expected advance after failure to fail")
	} else if _, ok := err2.(*ErrInvalidParserState); !ok {
		t.Fatalf("expected *ErrInvalidParserState after failure, got %T: %v", err2, err2)
	}
}

func TestNegativeListLength(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteByte(0x09)
	buf.Write([]byte{0x00, 0x00})
	buf.WriteByte(0x01)
	buf.Write([]byte{0xFF, 0xFF, 0xFF, 0xFF}) // -1
	p := Construct(bytes.NewReader(buf.Bytes()))
	mustAdvance(t, p)
	if err := p.Advance(); err == nil {
		t.Fatal("expected error")
	} else if _, ok := err.(*ErrInvalidParserState); !ok {
		t.Fatalf("expected *ErrInvalidParserState, got %T: %v", err, err)
	}
}

func TestMaxDepthExceeded(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteByte(0x0A)
	buf.Write([]byte{0x00, 0x00})
	for i := 0; i < 5; i++ {
		buf.WriteByte(0x0A)
		buf.Write([]byte{0x00, 0x00})
	}
	p := Construct(bytes.NewReader(buf.Bytes()), WithMaxDepth(2))
	var lastErr error
	for i := 0; i < 10; i++ {
		if lastErr = p.Advance(); lastErr != nil {
			break
		}
	}
	if _, ok := lastErr.(*ErrInvalidParserState); !ok {
		t.Fatalf("expected *ErrInvalidParserState, got %T: %v", lastErr, lastErr)
	}
}
