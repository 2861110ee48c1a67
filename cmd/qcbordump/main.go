// Package main provides a command-line utility to dump CBOR-encoded
// files as an indented diagnostic listing, one line per decoded item.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/scigolib/qcbor"
	"github.com/scigolib/qcbor/internal/pool"
)

func main() {
	mode := flag.String("mode", "normal", "map label mode: normal, strings-only, map-as-array")
	maxDepth := flag.Int("max-depth", 0, "maximum nesting depth (0 uses the decoder default)")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Println("Usage: qcbordump [flags] <file.cbor>")
		fmt.Println("Flags:")
		flag.PrintDefaults()
		return
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		log.Fatalf("failed to read file: %v", err)
	}

	opts := []qcbor.DecoderOption{qcbor.WithStringPool(pool.NewMallocPool())}
	switch *mode {
	case "strings-only":
		opts = append(opts, qcbor.WithMode(qcbor.ModeMapStringsOnly))
	case "map-as-array":
		opts = append(opts, qcbor.WithMode(qcbor.ModeMapAsArray))
	case "normal":
	default:
		log.Fatalf("unknown -mode %q", *mode)
	}
	if *maxDepth > 0 {
		opts = append(opts, qcbor.WithDecoderMaxNestingDepth(*maxDepth))
	}

	d := qcbor.NewDecoder(data, opts...)
	if err := qcbor.Diagnostic(os.Stderr, d); err != nil {
		log.Fatalf("decode failed: %v", err)
	}
}
