// Command nbtdump drives the streaming parser directly and
// pretty-prints the event tree of an NBT document, indenting one
// level per open compound or list. It is the "print tree" collaborator
// of spec §6: a demonstration of the low-level Parser contract rather
// than part of the library surface.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/peterbourgon/ff/v3"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/landru27/gonbt"
)

func main() {
	log := logrus.New()

	fs := flag.NewFlagSet("nbtdump", flag.ExitOnError)
	var (
		path     = fs.String("file", "", "path to an NBT document (gzip or zlib compressed, or raw)")
		maxDepth = fs.Int("max-depth", nbt.DefaultMaxDepth, "maximum container nesting depth")
		verbose  = fs.Bool("verbose", false, "enable nbt_debug trace output (requires building with -tags nbt_debug)")
	)
	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVarPrefix("NBTDUMP")); err != nil {
		log.WithError(err).Fatal("parsing flags")
	}
	if *verbose {
		nbt.EnableDebug()
	}
	if *path == "" {
		log.Fatal("-file is required")
	}

	if err := run(*path, *maxDepth, log); err != nil {
		log.WithError(err).Fatal("dumping document")
	}
}

func run(path string, maxDepth int, log *logrus.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "opening document")
	}
	defer f.Close()

	src, err := nbt.OpenCompressed(f)
	if err != nil {
		return errors.Wrap(err, "sniffing compression")
	}

	p := nbt.Construct(src, nbt.WithMaxDepth(maxDepth))
	depth := 0
	for {
		if err := p.Advance(); err != nil {
			if _, ok := err.(*nbt.ErrEof); ok {
				return nil
			}
			return errors.Wrap(err, "advancing parser")
		}
		printEvent(p, &depth)
	}
}

func printEvent(p *nbt.Parser, depth *int) {
	indent := func() {
		for i := 0; i < *depth; i++ {
			fmt.Print("  ")
		}
	}
	switch p.CurrentKind() {
	case nbt.EventMapEnd, nbt.EventSeqEnd:
		*depth--
		indent()
		fmt.Println(p.CurrentKind())
	case nbt.EventMapBegin, nbt.EventSeqBegin:
		indent()
		fmt.Println(p.CurrentKind())
		*depth++
	case nbt.EventString:
		s, _ := p.GetString()
		indent()
		fmt.Printf("String %q\n", s)
	case nbt.EventI8:
		v, _ := p.GetI8()
		indent()
		fmt.Printf("I8 %d\n", v)
	case nbt.EventI16:
		v, _ := p.GetI16()
		indent()
		fmt.Printf("I16 %d\n", v)
	case nbt.EventI32:
		v, _ := p.GetI32()
		indent()
		fmt.Printf("I32 %d\n", v)
	case nbt.EventI64:
		v, _ := p.GetI64()
		indent()
		fmt.Printf("I64 %d\n", v)
	case nbt.EventF32:
		v, _ := p.GetF32()
		indent()
		fmt.Printf("F32 %v\n", v)
	case nbt.EventF64:
		v, _ := p.GetF64()
		indent()
		fmt.Printf("F64 %v\n", v)
	}
}
