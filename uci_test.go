package main

import (
	"bytes"
	"strings"
	"testing"
)

func runUCI(t *testing.T, script string) []string {
	t.Helper()
	var out bytes.Buffer
	uciLoop(strings.NewReader(script), &out)
	return strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
}

func contains(lines []string, want string) bool {
	for _, l := range lines {
		if l == want {
			return true
		}
	}
	return false
}

func TestUCIHandshake(t *testing.T) {
	lines := runUCI(t, "uci\nisready\nquit\nisready\n")
	if !contains(lines, "uciok") || !contains(lines, "readyok") {
		t.Fatalf("handshake output %q", lines)
	}
	n := 0
	for _, l := range lines {
		if l == "readyok" {
			n++
		}
	}
	if n != 1 {
		t.Fatalf("commands after quit were processed: %q", lines)
	}
}

func TestUCIGoPerft(t *testing.T) {
	lines := runUCI(t, "position startpos moves e2e4\ngo perft 2\n")
	if !contains(lines, "Nodes searched: 600") {
		t.Fatalf("perft 2 after e2e4: %q", lines)
	}
	if !contains(lines, "e7e5: 29") {
		t.Fatalf("missing divide line: %q", lines)
	}
}

func TestUCIPositionFen(t *testing.T) {
	lines := runUCI(t, "position fen k7/8/8/3pP3/8/8/8/7K w - d6 0 2\ngo perft 1\nd\n")
	if !contains(lines, "Nodes searched: 5") || !contains(lines, "e5d6: 1") {
		t.Fatalf("ep position: %q", lines)
	}
	if !contains(lines, "Fen: k7/8/8/3pP3/8/8/8/7K w - d6 0 1") {
		t.Fatalf("board dump: %q", lines)
	}
}

func TestUCIBadMoveKeepsPosition(t *testing.T) {
	lines := runUCI(t, "position startpos moves e2e4\nposition startpos moves e2e5\nd\n")
	found := false
	for _, l := range lines {
		if strings.HasPrefix(l, "info string") && strings.Contains(l, "e2e5") {
			found = true
		}
	}
	if !found {
		t.Fatalf("illegal move not reported: %q", lines)
	}
	if !contains(lines, "Fen: rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1") {
		t.Fatalf("position should be unchanged after a bad command: %q", lines)
	}
}

func TestUCIPlainGo(t *testing.T) {
	lines := runUCI(t, "go depth 5\n")
	if len(lines) != 1 || !strings.HasPrefix(lines[0], "info string") {
		t.Fatalf("plain go: %q", lines)
	}
}
