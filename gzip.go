package nbt

/*
gzip.go implements the transparent-decompression wrapper spec §6
assigns to a layer above the byte source rather than the parser
itself: Minecraft's on-disk NBT files (player.dat, level.dat, chunk
region entries) are gzip- or zlib-compressed, and the parser's
contract never sees the compressed bytes.

Decompression favors github.com/klauspost/compress/gzip, a drop-in,
measurably faster reimplementation of compress/gzip; stdlib
compress/zlib remains for the zlib-wrapped variant region files use,
since klauspost does not ship a zlib package.
*/

import (
	"bufio"
	"compress/zlib"
	"io"

	kgzip "github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

/*
OpenCompressed sniffs r's leading bytes for a gzip or zlib header and
returns a reader that transparently decompresses it. If neither magic
matches, it returns a buffered reader yielding r's bytes unchanged, on
the assumption the caller is
already holding an uncompressed NBT stream (the "network" variant of
the format, as used by some server protocols, is never compressed).
*/
func OpenCompressed(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(2)
	if err != nil {
		if isEOF(err) {
			return br, nil
		}
		return nil, errors.Wrap(err, "nbt: sniffing compression header")
	}
	switch {
	case head[0] == 0x1f && head[1] == 0x8b:
		gz, err := kgzip.NewReader(br)
		if err != nil {
			return nil, errors.Wrap(err, "nbt: opening gzip stream")
		}
		return gz, nil
	case head[0] == 0x78 && (head[1] == 0x01 || head[1] == 0x9c || head[1] == 0xda):
		zr, err := zlib.NewReader(br)
		if err != nil {
			return nil, errors.Wrap(err, "nbt: opening zlib stream")
		}
		return zr, nil
	default:
		return br, nil
	}
}
