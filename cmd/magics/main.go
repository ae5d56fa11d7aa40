package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"chess-core/bitmg"
)

func main() {
	seed := flag.Uint64("seed", bitmg.DefaultSeed, "Xorshift seed for the candidate generator")
	out := flag.String("out", "", "Write the Go source to this file instead of stdout")
	quiet := flag.Bool("quiet", false, "Do not report progress on stderr")
	flag.Parse()

	start := time.Now()
	var total int
	progress := func(r bitmg.DiscoveryReport) {
		total += r.Attempts
		if !*quiet {
			fmt.Fprintf(os.Stderr, "%v %c %#016x after %d attempts\n", r.Square, r.Piece.Letter(), r.Magic, r.Attempts)
		}
	}
	rook, bishop := bitmg.DiscoverMagics(bitmg.NewXorshift(*seed), progress)

	// never ship constants that do not build
	if _, err := bitmg.BuildTables(rook, bishop); err != nil {
		fmt.Fprintf(os.Stderr, "discovered constants rejected: %v\n", err)
		os.Exit(1)
	}

	var w io.Writer = os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating %s: %v\n", *out, err)
			os.Exit(2)
		}
		defer f.Close()
		w = f
	}
	if err := writeMagics(w, *seed, rook, bishop); err != nil {
		fmt.Fprintf(os.Stderr, "writing magics: %v\n", err)
		os.Exit(1)
	}
	if !*quiet {
		fmt.Fprintf(os.Stderr, "found 128 constants in %s (%d candidates)\n", time.Since(start), total)
	}
}

func writeMagics(w io.Writer, seed uint64, rook, bishop [64]uint64) error {
	if _, err := fmt.Fprintf(w, "package bitmg\n\n// Shipped magic constants, indexed by square. cmd/magics regenerates them.\n// Seed %d.\n", seed); err != nil {
		return err
	}
	if err := writeTable(w, "rookMagics", "rook occupancy into RookBits-wide tables", rook); err != nil {
		return err
	}
	return writeTable(w, "bishopMagics", "bishop occupancy into BishopBits-wide tables", bishop)
}

func writeTable(w io.Writer, name, doc string, magics [64]uint64) error {
	if _, err := fmt.Fprintf(w, "\n// %s hashes %s.\nvar %s = [64]uint64{\n", name, doc, name); err != nil {
		return err
	}
	for i := 0; i < 64; i += 4 {
		if _, err := fmt.Fprintf(w, "\t%#016x, %#016x, %#016x, %#016x,\n", magics[i], magics[i+1], magics[i+2], magics[i+3]); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}
