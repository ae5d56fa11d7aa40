// Package suite reads perft suites in EPD form and runs them against bitmg.
//
// Each line holds a position followed by expected node counts:
//
//	<fen fields> ;D1 20 ;D2 400 ;D3 8902
package suite

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"chess-core/bitmg"
)

//go:embed standard.epd
var standardEPD string

// Entry is one suite position.
type Entry struct {
	FEN    string
	Line   int
	Counts map[int]uint64 // depth -> expected nodes
}

// Depths returns the depths with an expected count, ascending.
func (e *Entry) Depths() []int {
	d := maps.Keys(e.Counts)
	slices.Sort(d)
	return d
}

// Standard returns the built-in suite of well known positions.
func Standard() []Entry {
	entries, err := Parse(strings.NewReader(standardEPD))
	if err != nil {
		panic(err)
	}
	return entries
}

// Load reads a suite file.
func Load(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads suite lines. Blank lines and lines starting with '#' are skipped.
func Parse(r io.Reader) ([]Entry, error) {
	var entries []Entry
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Split(line, ";")
		e := Entry{FEN: strings.TrimSpace(parts[0]), Line: lineNo, Counts: make(map[int]uint64)}
		if _, err := bitmg.ParseFEN(e.FEN); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		for _, op := range parts[1:] {
			fields := strings.Fields(op)
			if len(fields) != 2 || len(fields[0]) < 2 || fields[0][0] != 'D' {
				return nil, fmt.Errorf("line %d: malformed count %q", lineNo, strings.TrimSpace(op))
			}
			depth, err := strconv.Atoi(fields[0][1:])
			if err != nil || depth <= 0 {
				return nil, fmt.Errorf("line %d: bad depth %q", lineNo, fields[0])
			}
			n, err := strconv.ParseUint(fields[1], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad count %q", lineNo, fields[1])
			}
			e.Counts[depth] = n
		}
		entries = append(entries, e)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// Result is the outcome of one (position, depth) pair.
type Result struct {
	FEN     string
	Line    int
	Depth   int
	Want    uint64
	Got     uint64
	Elapsed time.Duration
}

func (r Result) OK() bool { return r.Want == r.Got }

func (r Result) String() string {
	status := "ok"
	if !r.OK() {
		status = "FAIL"
	}
	return fmt.Sprintf("%-4s line %d depth %d: %d (want %d) %s", status, r.Line, r.Depth, r.Got, r.Want, r.Elapsed)
}

// Run checks every entry up to maxDepth (0 means no limit) and calls report,
// when non-nil, after each count. It returns the number of failed counts.
func Run(entries []Entry, maxDepth int, report func(Result)) int {
	failed := 0
	for i := range entries {
		e := &entries[i]
		p := bitmg.MustParseFEN(e.FEN)
		for _, d := range e.Depths() {
			if maxDepth > 0 && d > maxDepth {
				break
			}
			start := time.Now()
			r := Result{FEN: e.FEN, Line: e.Line, Depth: d, Want: e.Counts[d], Got: bitmg.Perft(p, d)}
			r.Elapsed = time.Since(start)
			if !r.OK() {
				failed++
			}
			if report != nil {
				report(r)
			}
		}
	}
	return failed
}
