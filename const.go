package nbt

/*
const.go contains the on-wire tag identifiers and the protocol-level
limits that every other component in this package is built around.
No behavior lives here, only the vocabulary of the format (spec §4.1).
*/

/*
TagKind identifies one of the thirteen on-wire NBT tag types by its
single unsigned byte. A document's root tag is always TagCompound.
*/
type TagKind byte

const (
	TagEnd       TagKind = 0
	TagI8        TagKind = 1
	TagI16       TagKind = 2
	TagI32       TagKind = 3
	TagI64       TagKind = 4
	TagF32       TagKind = 5
	TagF64       TagKind = 6
	TagI8Array   TagKind = 7
	TagString    TagKind = 8
	TagList      TagKind = 9
	TagCompound  TagKind = 10
	TagI32Array  TagKind = 11
	TagI64Array  TagKind = 12
	tagKindCount         = 13
)

var tagKindNames = map[TagKind]string{
	TagEnd:      "TAG_End",
	TagI8:       "TAG_Byte",
	TagI16:      "TAG_Short",
	TagI32:      "TAG_Int",
	TagI64:      "TAG_Long",
	TagF32:      "TAG_Float",
	TagF64:      "TAG_Double",
	TagI8Array:  "TAG_Byte_Array",
	TagString:   "TAG_String",
	TagList:     "TAG_List",
	TagCompound: "TAG_Compound",
	TagI32Array: "TAG_Int_Array",
	TagI64Array: "TAG_Long_Array",
}

/*
String returns the canonical Minecraft wiki name of the receiver, or
"TAG_Unknown" if the receiver does not correspond to any defined tag.
*/
func (k TagKind) String() string {
	if n, ok := tagKindNames[k]; ok {
		return n
	}
	return "TAG_Unknown"
}

/*
Valid returns true if the receiver is one of the thirteen defined tag
identifiers.
*/
func (k TagKind) Valid() bool {
	return k <= TagI64Array
}

/*
isContainer returns true for the two tag kinds whose payload itself
contains nested tags, TagCompound and TagList; the three typed array
kinds are deliberately excluded since their elements are scalars, not
tags.
*/
func (k TagKind) isContainer() bool {
	return k == TagCompound || k == TagList
}

func (k TagKind) isTypedArray() bool {
	return k == TagI8Array || k == TagI32Array || k == TagI64Array
}

/*
MaxListLength is the protocol-level ceiling on any length-prefixed
run of elements: a TAG_List element count or a typed array's element
count. Values outside [0, MaxListLength] are malformed (spec §3).
*/
const MaxListLength int32 = 2147483639
