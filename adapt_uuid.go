package nbt

/*
adapt_uuid.go registers the built-in adapter for uuid.UUID
(github.com/google/uuid), grounded on the same four-int encoding
Minecraft's player.dat and other region-format files use for UUID
fields: a TAG_Int_Array of exactly four elements, most significant 32
bits first, the same split Java's UUID.getMostSignificantBits /
getLeastSignificantBits performs.
*/

import (
	"encoding/binary"
	"reflect"

	"github.com/google/uuid"
)

var uuidType = reflect.TypeOf(uuid.UUID{})

func init() {
	RegisterAdapter(uuidType, decodeUUID)
}

func decodeUUID(p *Parser) (reflect.Value, error) {
	if p.CurrentKind() != EventSeqBegin || p.state != stArrayBegin || p.ElementKind() != TagI32Array {
		return reflect.Value{}, invalidTagTypef("uuid adapter requires a TAG_Int_Array value")
	}
	var parts [4]int32
	n := 0
	for {
		if err := p.Advance(); err != nil {
			return reflect.Value{}, err
		}
		if p.CurrentKind() == EventSeqEnd {
			break
		}
		v, err := p.GetI32()
		if err != nil {
			return reflect.Value{}, err
		}
		if n >= 4 {
			return reflect.Value{}, invalidTagTypef("uuid adapter requires exactly four TAG_Int elements")
		}
		parts[n] = v
		n++
	}
	if n != 4 {
		return reflect.Value{}, invalidTagTypef("uuid adapter requires exactly four TAG_Int elements")
	}

	var raw [16]byte
	binary.BigEndian.PutUint32(raw[0:4], uint32(parts[0]))
	binary.BigEndian.PutUint32(raw[4:8], uint32(parts[1]))
	binary.BigEndian.PutUint32(raw[8:12], uint32(parts[2]))
	binary.BigEndian.PutUint32(raw[12:16], uint32(parts[3]))

	id, err := uuid.FromBytes(raw[:])
	if err != nil {
		return reflect.Value{}, invalidTagTypef("uuid adapter: ", err.Error())
	}
	if err := p.Advance(); err != nil {
		return reflect.Value{}, err
	}
	return reflect.ValueOf(id), nil
}
