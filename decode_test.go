package nbt_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/google/uuid"
	"github.com/landru27/gonbt"
)

type simpleRecord struct {
	Name   string  `nbt:"name"`
	Age    int32   `nbt:"age"`
	Score  float64 `nbt:"score"`
	Active bool    `nbt:"active"`
}

func encodeCompound(t *testing.T, body func(*bytes.Buffer)) []byte {
	t.Helper()
	var buf bytes.Buffer
	buf.WriteByte(0x0A)
	buf.Write([]byte{0x00, 0x00}) // root name ""
	body(&buf)
	buf.WriteByte(0x00) // End
	return buf.Bytes()
}

func writeNamedTag(buf *bytes.Buffer, kind byte, name string) {
	buf.WriteByte(kind)
	buf.WriteByte(byte(len(name) >> 8))
	buf.WriteByte(byte(len(name)))
	buf.WriteString(name)
}

func TestDecodeSimpleRecord(t *testing.T) {
	data := encodeCompound(t, func(buf *bytes.Buffer) {
		writeNamedTag(buf, 0x08, "name")
		buf.Write([]byte{0x00, 0x05})
		buf.WriteString("Steve")

		writeNamedTag(buf, 0x03, "age")
		buf.Write([]byte{0x00, 0x00, 0x00, 0x1E})

		writeNamedTag(buf, 0x06, "score")
		buf.Write([]byte{0x40, 0x45, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}) // 42.0

		writeNamedTag(buf, 0x01, "active")
		buf.WriteByte(0x01)
	})

	rec, err := nbt.DecodeFromSource[simpleRecord](bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, "Steve", rec.Name)
	require.EqualValues(t, 30, rec.Age)
	require.InDelta(t, 42.0, rec.Score, 0.0001)
	require.True(t, rec.Active)
}

func TestDecodeUnknownFieldIsIgnored(t *testing.T) {
	data := encodeCompound(t, func(buf *bytes.Buffer) {
		writeNamedTag(buf, 0x08, "name")
		buf.Write([]byte{0x00, 0x03})
		buf.WriteString("Alex")

		writeNamedTag(buf, 0x03, "unknownField")
		buf.Write([]byte{0x00, 0x00, 0x00, 0x01})
	})

	rec, err := nbt.DecodeFromSource[simpleRecord](bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, "Alex", rec.Name)
}

func TestDecodeMissingFieldStaysZero(t *testing.T) {
	data := encodeCompound(t, func(buf *bytes.Buffer) {
		writeNamedTag(buf, 0x08, "name")
		buf.Write([]byte{0x00, 0x03})
		buf.WriteString("Zed")
	})

	rec, err := nbt.DecodeFromSource[simpleRecord](bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, "Zed", rec.Name)
	require.EqualValues(t, 0, rec.Age)
}

type withList struct {
	Items []int32 `nbt:"items"`
}

func TestDecodeListField(t *testing.T) {
	data := encodeCompound(t, func(buf *bytes.Buffer) {
		writeNamedTag(buf, 0x09, "items")
		buf.WriteByte(0x03)
		buf.Write([]byte{0x00, 0x00, 0x00, 0x03})
		buf.Write([]byte{0x00, 0x00, 0x00, 0x01})
		buf.Write([]byte{0x00, 0x00, 0x00, 0x02})
		buf.Write([]byte{0x00, 0x00, 0x00, 0x03})
	})

	rec, err := nbt.DecodeFromSource[withList](bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, []int32{1, 2, 3}, rec.Items)
}

type withByteArray struct {
	Raw []byte `nbt:"raw"`
}

func TestDecodeByteArrayField(t *testing.T) {
	data := encodeCompound(t, func(buf *bytes.Buffer) {
		writeNamedTag(buf, 0x07, "raw")
		buf.Write([]byte{0x00, 0x00, 0x00, 0x03})
		buf.Write([]byte{0x01, 0xFF, 0x7F})
	})

	rec, err := nbt.DecodeFromSource[withByteArray](bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0xFF, 0x7F}, rec.Raw)
}

type withUUID struct {
	UUID uuid.UUID `nbt:"UUID"`
}

func TestDecodeUUIDAdapter(t *testing.T) {
	id := uuid.New()
	b := id[:]

	data := encodeCompound(t, func(buf *bytes.Buffer) {
		writeNamedTag(buf, 0x0B, "UUID")
		buf.Write([]byte{0x00, 0x00, 0x00, 0x04})
		buf.Write(b[0:4])
		buf.Write(b[4:8])
		buf.Write(b[8:12])
		buf.Write(b[12:16])
	})

	rec, err := nbt.DecodeFromSource[withUUID](bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, id, rec.UUID)
}

type withOptional struct {
	Nickname *string `nbt:"nickname"`
}

func TestDecodeOptionalPresentAndAbsent(t *testing.T) {
	present := encodeCompound(t, func(buf *bytes.Buffer) {
		writeNamedTag(buf, 0x08, "nickname")
		buf.Write([]byte{0x00, 0x02})
		buf.WriteString("ez")
	})
	rec, err := nbt.DecodeFromSource[withOptional](bytes.NewReader(present))
	require.NoError(t, err)
	require.NotNil(t, rec.Nickname)
	require.Equal(t, "ez", *rec.Nickname)

	absent := encodeCompound(t, func(buf *bytes.Buffer) {})
	rec2, err := nbt.DecodeFromSource[withOptional](bytes.NewReader(absent))
	require.NoError(t, err)
	require.Nil(t, rec2.Nickname)
}

type withAny struct {
	Payload any `nbt:"payload"`
}

func TestDecodeAnyRequest(t *testing.T) {
	data := encodeCompound(t, func(buf *bytes.Buffer) {
		writeNamedTag(buf, 0x0A, "payload")
		writeNamedTag(buf, 0x03, "x")
		buf.Write([]byte{0x00, 0x00, 0x00, 0x05})
		buf.WriteByte(0x00)
	})

	rec, err := nbt.DecodeFromSource[withAny](bytes.NewReader(data))
	require.NoError(t, err)
	m, ok := rec.Payload.(map[string]any)
	require.True(t, ok)
	require.EqualValues(t, int32(5), m["x"])
}
