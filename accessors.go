package nbt

/*
accessors.go contains the Parser's typed accessors. Each is legal to
call only while the parser's current state carries a value of that
type; calling the wrong accessor for the current EventKind returns
ErrInvalidTagType rather than an arbitrary zero value, so a binding
decoder driven off CurrentKind can never silently read garbage.
*/

/*
CurrentTagKind reports the wire tag kind of the value the parser is
currently positioned on or inside -- the kind read from the most
recent tag header, whether or not its payload has been fully consumed
yet.
*/
func (p *Parser) CurrentTagKind() TagKind { return p.tagKind }

func (p *Parser) GetI8() (int8, error) {
	switch p.state {
	case stTagValueI8, stArrayValueI8, stListValueI8:
		return p.i8, nil
	}
	return 0, invalidTagTypef("GetI8 called while not positioned on an I8 value")
}

func (p *Parser) GetI16() (int16, error) {
	switch p.state {
	case stTagValueI16, stListValueI16:
		return p.i16, nil
	}
	return 0, invalidTagTypef("GetI16 called while not positioned on an I16 value")
}

func (p *Parser) GetI32() (int32, error) {
	switch p.state {
	case stTagValueI32, stArrayValueI32, stListValueI32:
		return p.i32, nil
	}
	return 0, invalidTagTypef("GetI32 called while not positioned on an I32 value")
}

func (p *Parser) GetI64() (int64, error) {
	switch p.state {
	case stTagValueI64, stArrayValueI64, stListValueI64:
		return p.i64, nil
	}
	return 0, invalidTagTypef("GetI64 called while not positioned on an I64 value")
}

func (p *Parser) GetF32() (float32, error) {
	switch p.state {
	case stTagValueF32, stListValueF32:
		return p.f32, nil
	}
	return 0, invalidTagTypef("GetF32 called while not positioned on an F32 value")
}

func (p *Parser) GetF64() (float64, error) {
	switch p.state {
	case stTagValueF64, stListValueF64:
		return p.f64, nil
	}
	return 0, invalidTagTypef("GetF64 called while not positioned on an F64 value")
}

/*
GetString returns the string carried by the current state: a
compound member's name while positioned on a TagHeader, or a string
value while positioned on a TAG_String payload or a list-of-String
element.
*/
func (p *Parser) GetString() (string, error) {
	switch p.state {
	case stTagHeader, stTagValueString, stListValueString:
		return p.str, nil
	}
	return "", invalidTagTypef("GetString called while not positioned on a string")
}

/*
ElementKind reports the declared element kind of the sequence the
parser is currently positioned at the start or inside of: a list's
element tag kind, or one of the three typed array kinds. It is only
meaningful while CurrentKind reports EventSeqBegin, or while
positioned on one of that sequence's elements.
*/
func (p *Parser) ElementKind() TagKind {
	switch p.state {
	case stArrayBegin, stArrayValueI8, stArrayValueI32, stArrayValueI64, stArrayEnd:
		return p.arrKind
	case stListBegin, stListValueI8, stListValueI16, stListValueI32, stListValueI64,
		stListValueF32, stListValueF64, stListValueString:
		return p.elemKind
	}
	return TagEnd
}
