package nbt

/*
parser_list.go implements the TAG_List regime of spec §4.2: an
element-kind byte, a 32-bit element count, then that many unnamed
payloads of that kind with no per-element tag byte. Unlike the typed
arrays, a list's element kind can itself be a container (TagList or
TagCompound), which is why lists -- alone among NBT's container kinds
-- need the frameListResume shape of return frame: closing a nested
container element must resume counting down the enclosing list rather
than simply falling back to reading a sibling tag.
*/

func (p *Parser) enterList() (bool, error) {
	kb, err := p.src.readByte()
	if err != nil {
		return false, err
	}
	elemKind := TagKind(kb)
	if elemKind != TagEnd && !elemKind.Valid() {
		return false, invalidTagTypef("list element kind ", itoa(int(kb)), " is not a recognized tag id")
	}
	n, err := p.src.readI32()
	if err != nil {
		return false, err
	}
	length, err := checkLength(n, "TAG_List")
	if err != nil {
		return false, err
	}
	p.elemKind = elemKind
	p.remaining = length
	p.state = stListBegin
	return true, nil
}

/*
stepListBegin mirrors stepArrayBegin: observable once as SeqBegin,
then decides on the next Advance whether the list is empty or begins
reading its first element.
*/
func (p *Parser) stepListBegin() (bool, error) {
	if p.remaining == 0 {
		p.state = stListEnd
		return true, nil
	}
	return p.beginListElement()
}

/*
stepListResume is reached only via stepPopAndContinue, after a nested
container element of a list has fully closed. It is never itself
observable: it immediately decides, same as stepListBegin, whether the
list is now exhausted or has another element to read.
*/
func (p *Parser) stepListResume() (bool, error) {
	if p.remaining == 0 {
		p.state = stListEnd
		return true, nil
	}
	return p.beginListElement()
}

/*
stepListValue handles every scalar list element kind: it decrements
the remaining count left over from reading the just-observed element,
then either closes the list or reads the next element in place,
exactly like a typed array's element chain.
*/
func (p *Parser) stepListValue() (bool, error) {
	p.remaining--
	if p.remaining == 0 {
		p.state = stListEnd
		return true, nil
	}
	return p.beginListElement()
}

/*
beginListElement reads (or, for container element kinds, begins
reading) the next element. For scalar kinds the full element is read
here and lands in a ListValue<K> state. For container kinds, reading
is deferred to the container's own regime: a frameListResume frame is
pushed recording how many elements remain after this one, and control
jumps directly into Compound, List, or a typed array's Begin state --
skipping tag-header reading entirely, since list elements carry no
name or per-element tag byte.
*/
func (p *Parser) beginListElement() (bool, error) {
	switch p.elemKind {
	case TagI8:
		v, err := p.src.readI8()
		if err != nil {
			return false, err
		}
		p.i8 = v
		p.state = stListValueI8
	case TagI16:
		v, err := p.src.readI16()
		if err != nil {
			return false, err
		}
		p.i16 = v
		p.state = stListValueI16
	case TagI32:
		v, err := p.src.readI32()
		if err != nil {
			return false, err
		}
		p.i32 = v
		p.state = stListValueI32
	case TagI64:
		v, err := p.src.readI64()
		if err != nil {
			return false, err
		}
		p.i64 = v
		p.state = stListValueI64
	case TagF32:
		v, err := p.src.readF32()
		if err != nil {
			return false, err
		}
		p.f32 = v
		p.state = stListValueF32
	case TagF64:
		v, err := p.src.readF64()
		if err != nil {
			return false, err
		}
		p.f64 = v
		p.state = stListValueF64
	case TagString:
		s, err := p.src.readName()
		if err != nil {
			return false, err
		}
		p.str = s
		p.state = stListValueString
	case TagCompound:
		if err := p.pushListResume(p.remaining-1, p.elemKind); err != nil {
			return false, err
		}
		p.state = stCompound
	case TagList:
		if err := p.pushListResume(p.remaining-1, p.elemKind); err != nil {
			return false, err
		}
		return p.enterList()
	case TagI8Array, TagI32Array, TagI64Array:
		if err := p.pushListResume(p.remaining-1, p.elemKind); err != nil {
			return false, err
		}
		return p.enterArray(p.elemKind)
	case TagEnd:
		// An empty list declares its element kind as TAG_End; this is
		// only reachable here if remaining was nonzero with that kind,
		// which is itself a malformed document.
		return false, invalidTagTypef("TAG_End is not a valid non-empty list element kind")
	default:
		return false, invalidTagTypef("unrecognized list element kind")
	}
	return true, nil
}
