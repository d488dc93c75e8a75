/*
Package nbt implements a streaming parser and a reflection-driven
binding decoder for Minecraft's Named Binary Tag format: the
big-endian, self-describing binary encoding used to persist player,
world, and entity state.

The Parser type is a single-pass, recursion-free pull parser: it owns
a byte source and exposes Advance, CurrentKind, and a family of typed
accessors (GetI8 through GetString). Nesting depth is bounded by an
explicit heap-allocated return stack rather than the host call stack,
so a maliciously deep document fails cleanly instead of overflowing.

The Decoder type drives a Parser to populate a statically declared Go
struct, translating the event stream into struct field assignments by
reflection. RegisterAdapter extends that translation to Go types with
no natural NBT shape, such as github.com/google/uuid.UUID.

This package produces no NBT output and does not validate the
semantic constraints of any particular Minecraft version; it is
concerned purely with the wire format.
*/
package nbt
