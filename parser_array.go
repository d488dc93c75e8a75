package nbt

/*
parser_array.go implements the typed-array regime of spec §4.2:
TAG_Byte_Array, TAG_Int_Array and TAG_Long_Array all share one shape
-- a 32-bit element count followed by that many fixed-width scalars,
with no per-element tag byte -- differing only in element width.
*/

func (p *Parser) enterArray(kind TagKind) (bool, error) {
	n, err := p.src.readI32()
	if err != nil {
		return false, err
	}
	length, err := checkLength(n, kind.String())
	if err != nil {
		return false, err
	}
	p.arrKind = kind
	p.remaining = length
	p.state = stArrayBegin
	return true, nil
}

/*
stepArrayBegin is the Begin{length} state of spec §3: it is itself
observable once (as EventSeqBegin), and the following Advance call
decides whether the array is empty or whether to read its first
element.
*/
func (p *Parser) stepArrayBegin() (bool, error) {
	if p.remaining == 0 {
		p.state = stArrayEnd
		return true, nil
	}
	return p.readArrayElement()
}

func (p *Parser) stepArrayValue() (bool, error) {
	p.remaining--
	if p.remaining == 0 {
		p.state = stArrayEnd
		return true, nil
	}
	return p.readArrayElement()
}

func (p *Parser) readArrayElement() (bool, error) {
	switch p.arrKind {
	case TagI8Array:
		v, err := p.src.readI8()
		if err != nil {
			return false, err
		}
		p.i8 = v
		p.state = stArrayValueI8
	case TagI32Array:
		v, err := p.src.readI32()
		if err != nil {
			return false, err
		}
		p.i32 = v
		p.state = stArrayValueI32
	case TagI64Array:
		v, err := p.src.readI64()
		if err != nil {
			return false, err
		}
		p.i64 = v
		p.state = stArrayValueI64
	default:
		return false, invalidTagTypef("not a typed array kind")
	}
	return true, nil
}
