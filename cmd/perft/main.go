package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"chess-core/bitmg"
	"chess-core/crosscheck"
	"chess-core/suite"
)

func main() {
	fen := flag.String("fen", bitmg.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	moves := flag.String("moves", "", "Space separated moves to play from the FEN before counting")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	verify := flag.String("verify", "", "Compare divide counts with a reference generator (dragontooth, goose or all)")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	memProf := flag.String("memprofile", "", "Write heap profile to file after run")
	suitePath := flag.String("suite", "", "Run an EPD perft suite (file path, or \"standard\" for the built-in one)")
	maxDepth := flag.Int("maxdepth", 0, "Skip suite counts deeper than this (0 = no limit)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags]\n       %s <depth> <fen> [moves]\n", os.Args[0], os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	// perftree calls us as: perft <depth> <fen> [moves]
	if flag.NArg() >= 2 {
		d, err := strconv.Atoi(flag.Arg(0))
		if err != nil || d <= 0 {
			fmt.Fprintf(os.Stderr, "invalid depth %q\n", flag.Arg(0))
			os.Exit(2)
		}
		p := loadPosition(flag.Arg(1), strings.Join(flag.Args()[2:], " "))
		printPerftree(p, d)
		return
	}

	if *suitePath != "" {
		os.Exit(runSuite(*suitePath, *maxDepth))
	}

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	p := loadPosition(*fen, *moves)

	if *verify != "" {
		os.Exit(runVerify(p, *depth, *verify))
	}

	// Optional divide output
	if *divide {
		div := bitmg.PerftDivide(p, *depth)
		byText := make(map[string]uint64, len(div))
		var sum uint64
		for m, n := range div {
			byText[m.String()] = n
			sum += n
		}
		keys := maps.Keys(byText)
		slices.Sort(keys)
		for _, k := range keys {
			fmt.Printf("%s: %d\n", k, byText[k])
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	// Optional CPU profiling
	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating cpuprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "start cpu profile: %v\n", err)
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	// build the tables outside the timed loop
	bitmg.DefaultTables()

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += bitmg.Perft(p, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)

	// Optional heap profile after run
	if *memProf != "" {
		f, err := os.Create(*memProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating memprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "write heap profile: %v\n", err)
			os.Exit(2)
		}
		_ = f.Close()
	}
}

func loadPosition(fen, moves string) bitmg.Position {
	p, err := bitmg.ParseFEN(fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}
	if moves = strings.TrimSpace(moves); moves != "" {
		p, err = bitmg.ApplyMoveList(p, strings.Fields(moves))
		if err != nil {
			fmt.Fprintf(os.Stderr, "moves: %v\n", err)
			os.Exit(2)
		}
	}
	return p
}

// printPerftree writes "move count" lines, a blank line and the total.
func printPerftree(p bitmg.Position, depth int) {
	div := crosscheck.Divide(p, depth)
	keys := maps.Keys(div)
	slices.Sort(keys)
	var total uint64
	for _, k := range keys {
		fmt.Printf("%s %d\n", k, div[k])
		total += div[k]
	}
	fmt.Println()
	fmt.Println(total)
}

func runVerify(p bitmg.Position, depth int, name string) int {
	refs := crosscheck.References()
	if name != "all" {
		ref, err := crosscheck.ByName(name)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 2
		}
		refs = []crosscheck.Reference{ref}
	}
	status := 0
	for _, ref := range refs {
		line, r, err := crosscheck.Bisect(p, depth, ref)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", ref.Name(), err)
			status = 1
			continue
		}
		if r == nil {
			fmt.Printf("%s: agree at depth %d\n", ref.Name(), depth)
			continue
		}
		status = 1
		fmt.Printf("%s: disagree after [%s]\n", ref.Name(), strings.Join(line, " "))
		fmt.Printf("  fen %s depth %d: ours %d reference %d\n", r.FEN, r.Depth, r.Ours, r.Theirs)
		for _, m := range r.Mismatches {
			fmt.Printf("  %v\n", m)
		}
	}
	return status
}

func runSuite(path string, maxDepth int) int {
	var entries []suite.Entry
	if path == "standard" {
		entries = suite.Standard()
	} else {
		var err error
		if entries, err = suite.Load(path); err != nil {
			fmt.Fprintf(os.Stderr, "suite: %v\n", err)
			return 2
		}
	}
	bitmg.DefaultTables()
	start := time.Now()
	failed := suite.Run(entries, maxDepth, func(r suite.Result) {
		fmt.Println(r)
	})
	fmt.Printf("%d positions, %d failed, %s\n", len(entries), failed, time.Since(start))
	if failed > 0 {
		return 1
	}
	return 0
}
