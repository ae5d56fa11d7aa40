// Package crosscheck compares bitmg divide counts with independent move
// generators and narrows a disagreement down to a single position.
package crosscheck

import (
	"fmt"

	"github.com/Oliverans/GooseEngineMG/goosemg"
	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"chess-core/bitmg"
)

// Reference is an external move generator able to produce divide counts.
type Reference interface {
	Name() string
	Divide(fen string, depth int) (map[string]uint64, error)
}

// References returns every built-in reference generator.
func References() []Reference {
	return []Reference{Dragontooth{}, Goose{}}
}

// ByName looks a reference up by its Name.
func ByName(name string) (Reference, error) {
	for _, r := range References() {
		if r.Name() == name {
			return r, nil
		}
	}
	return nil, fmt.Errorf("crosscheck: unknown reference %q", name)
}

// Dragontooth drives github.com/dylhunn/dragontoothmg.
type Dragontooth struct{}

func (Dragontooth) Name() string { return "dragontooth" }

func (Dragontooth) Divide(fen string, depth int) (out map[string]uint64, err error) {
	// ParseFen has no error return and panics on bad input
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("dragontooth: %v", r)
		}
	}()
	out = make(map[string]uint64)
	if depth <= 0 {
		return out, nil
	}
	b := dragontoothmg.ParseFen(fen)
	for _, m := range b.GenerateLegalMoves() {
		unapply := b.Apply(m)
		out[m.String()] = dragontoothPerft(&b, depth-1)
		unapply()
	}
	return out, nil
}

func dragontoothPerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += dragontoothPerft(b, depth-1)
		unapply()
	}
	return nodes
}

// Goose drives github.com/Oliverans/GooseEngineMG.
type Goose struct{}

func (Goose) Name() string { return "goose" }

func (Goose) Divide(fen string, depth int) (map[string]uint64, error) {
	b, err := goosemg.ParseFEN(fen)
	if err != nil {
		return nil, fmt.Errorf("goose: %w", err)
	}
	out := make(map[string]uint64)
	for m, n := range goosemg.PerftDivide(b, depth) {
		out[m.String()] = n
	}
	return out, nil
}

// Divide is bitmg's own divide keyed by coordinate text.
func Divide(p bitmg.Position, depth int) map[string]uint64 {
	out := make(map[string]uint64)
	for m, n := range bitmg.PerftDivide(p, depth) {
		out[m.String()] = n
	}
	return out
}

// Mismatch is one root move whose counts differ. A move missing on one side
// has Missing set to the side that lacks it.
type Mismatch struct {
	Move    string
	Ours    uint64
	Theirs  uint64
	Missing string // "", "ours" or "theirs"
}

func (m Mismatch) String() string {
	switch m.Missing {
	case "ours":
		return fmt.Sprintf("%s: not generated (reference %d)", m.Move, m.Theirs)
	case "theirs":
		return fmt.Sprintf("%s: illegal per reference (ours %d)", m.Move, m.Ours)
	}
	return fmt.Sprintf("%s: ours %d reference %d", m.Move, m.Ours, m.Theirs)
}

// Report is the outcome of one comparison.
type Report struct {
	Reference  string
	FEN        string
	Depth      int
	Ours       uint64
	Theirs     uint64
	Mismatches []Mismatch // sorted by move text
}

// OK reports whether both sides agree on every root move.
func (r *Report) OK() bool { return len(r.Mismatches) == 0 }

// Compare runs divide on both sides and lists every disagreeing root move.
func Compare(p bitmg.Position, depth int, ref Reference) (*Report, error) {
	fen := p.FEN()
	theirs, err := ref.Divide(fen, depth)
	if err != nil {
		return nil, err
	}
	ours := Divide(p, depth)
	r := &Report{Reference: ref.Name(), FEN: fen, Depth: depth}

	all := maps.Keys(ours)
	for mv := range theirs {
		if _, ok := ours[mv]; !ok {
			all = append(all, mv)
		}
	}
	slices.Sort(all)
	for _, mv := range all {
		o, inOurs := ours[mv]
		t, inTheirs := theirs[mv]
		r.Ours += o
		r.Theirs += t
		switch {
		case !inOurs:
			r.Mismatches = append(r.Mismatches, Mismatch{Move: mv, Theirs: t, Missing: "ours"})
		case !inTheirs:
			r.Mismatches = append(r.Mismatches, Mismatch{Move: mv, Ours: o, Missing: "theirs"})
		case o != t:
			r.Mismatches = append(r.Mismatches, Mismatch{Move: mv, Ours: o, Theirs: t})
		}
	}
	return r, nil
}

// Bisect follows the first disagreeing root move down the tree until the
// disagreement shows up at depth 1, where the move lists themselves differ.
// It returns the moves played to reach that position and the final report,
// or a nil report if both sides agree.
func Bisect(p bitmg.Position, depth int, ref Reference) ([]string, *Report, error) {
	var line []string
	for {
		r, err := Compare(p, depth, ref)
		if err != nil {
			return line, nil, err
		}
		if r.OK() {
			if len(line) == 0 {
				return nil, nil, nil
			}
			return line, r, fmt.Errorf("crosscheck: subtree after %v agrees although its parent did not", line)
		}
		var next *Mismatch
		for i := range r.Mismatches {
			if r.Mismatches[i].Missing == "" {
				next = &r.Mismatches[i]
				break
			}
		}
		if depth == 1 || next == nil {
			return line, r, nil
		}
		np, err := bitmg.ApplyMoveList(p, []string{next.Move})
		if err != nil {
			return line, r, err
		}
		p = np
		line = append(line, next.Move)
		depth--
	}
}
