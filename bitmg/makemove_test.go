package bitmg_test

import (
	"testing"

	"chess-core/bitmg"
)

func mustApply(t *testing.T, p bitmg.Position, text string) bitmg.Position {
	t.Helper()
	m, ok := p.FindMove(text)
	if !ok {
		t.Fatalf("move %s not generated in %s", text, p.FEN())
	}
	next, ok := p.Apply(m)
	if !ok {
		t.Fatalf("move %s rejected in %s", text, p.FEN())
	}
	if err := next.Validate(); err != nil {
		t.Fatalf("after %s: %v", text, err)
	}
	return next
}

func TestApplyLeavesInputUntouched(t *testing.T) {
	p := bitmg.NewPosition()
	before := p.FEN()
	next := mustApply(t, p, "e2e4")
	if p.FEN() != before {
		t.Fatalf("input position changed to %s", p.FEN())
	}
	if want := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"; next.FEN() != want {
		t.Fatalf("got %s want %s", next.FEN(), want)
	}
}

func TestApplyRejectsPinnedPiece(t *testing.T) {
	p := bitmg.MustParseFEN("4r2k/8/8/8/8/8/4N3/4K3 w - - 0 1")
	m, ok := p.FindMove("e2c3")
	if !ok {
		t.Fatalf("pinned knight moves are pseudo-legal and should be generated")
	}
	if _, ok := p.Apply(m); ok {
		t.Fatalf("moving the pinned knight must be rejected")
	}
	// king moves out of the pin line are fine
	mustApply(t, p, "e1d1")
}

func TestApplyRejectsKingIntoCheck(t *testing.T) {
	p := bitmg.MustParseFEN("3r3k/8/8/8/8/8/8/4K3 w - - 0 1")
	m, ok := p.FindMove("e1d2")
	if !ok {
		t.Fatalf("e1d2 not generated")
	}
	if _, ok := p.Apply(m); ok {
		t.Fatalf("king stepped onto an attacked file")
	}
}

func TestEnPassantTargetLifetime(t *testing.T) {
	p := bitmg.NewPosition()
	p = mustApply(t, p, "e2e4")
	if p.EnPassant().String() != "e3" {
		t.Fatalf("ep after e2e4: %v", p.EnPassant())
	}
	p = mustApply(t, p, "g8f6")
	if p.EnPassant() != bitmg.NoSquare {
		t.Fatalf("ep should clear after a non-double move, got %v", p.EnPassant())
	}
	p = mustApply(t, p, "e4e5")
	p = mustApply(t, p, "d7d5")
	if p.EnPassant().String() != "d6" {
		t.Fatalf("ep after d7d5: %v", p.EnPassant())
	}
	p = mustApply(t, p, "e5d6")
	if _, _, ok := p.PieceAt(sq(t, "d5")); ok {
		t.Fatalf("en passant left the captured pawn on d5")
	}
	if pt, c, ok := p.PieceAt(sq(t, "d6")); !ok || pt != bitmg.Pawn || c != bitmg.White {
		t.Fatalf("capturing pawn not on d6")
	}
	if p.Colors(bitmg.Black).Count() != 15 {
		t.Fatalf("black should have 15 pieces, has %d", p.Colors(bitmg.Black).Count())
	}
}

func TestBlackEnPassant(t *testing.T) {
	p := bitmg.MustParseFEN("4k3/8/8/8/3p4/8/4P3/4K3 w - - 0 1")
	p = mustApply(t, p, "e2e4")
	p = mustApply(t, p, "d4e3")
	if want := "4k3/8/8/8/8/4p3/8/4K3 w - - 0 1"; p.FEN() != want {
		t.Fatalf("got %s want %s", p.FEN(), want)
	}
}

func TestEnPassantDiscoveredCheckRejected(t *testing.T) {
	// both pawns leave rank 5 and expose the king to the rook
	p := bitmg.MustParseFEN("8/8/8/KPp4r/8/8/8/7k w - c6 0 1")
	m, ok := p.FindMove("b5c6")
	if !ok {
		t.Fatalf("b5c6 not generated")
	}
	if _, ok := p.Apply(m); ok {
		t.Fatalf("en passant exposing the king must be rejected")
	}
}

func TestCastlingMovesRook(t *testing.T) {
	p := bitmg.MustParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	short := mustApply(t, p, "e1g1")
	if want := "r3k2r/8/8/8/8/8/8/R4RK1 b kq - 0 1"; short.FEN() != want {
		t.Fatalf("got %s want %s", short.FEN(), want)
	}
	long := mustApply(t, p, "e1c1")
	if want := "r3k2r/8/8/8/8/8/8/2KR3R b kq - 0 1"; long.FEN() != want {
		t.Fatalf("got %s want %s", long.FEN(), want)
	}
	black := mustApply(t, short, "e8c8")
	if want := "2kr3r/8/8/8/8/8/8/R4RK1 w - - 0 1"; black.FEN() != want {
		t.Fatalf("got %s want %s", black.FEN(), want)
	}
}

func TestCastlingClearsRookDestination(t *testing.T) {
	// f1 is occupied, so this castle is never generated; applying it anyway
	// must still leave a consistent board.
	p := bitmg.MustParseFEN("4k3/8/8/8/8/8/8/4Kn1R w K - 0 1")
	next, ok := p.Apply(bitmg.NewMove(bitmg.E1, bitmg.G1, bitmg.Castle))
	if !ok {
		t.Fatalf("castle rejected")
	}
	if want := "4k3/8/8/8/8/8/8/5RK1 b - - 0 1"; next.FEN() != want {
		t.Fatalf("got %s want %s", next.FEN(), want)
	}
	if err := next.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestCastlingRightsUpdates(t *testing.T) {
	p := bitmg.MustParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	tests := []struct {
		move string
		want string
	}{
		{"a1a2", "Kkq"},
		{"h1h2", "Qkq"},
		{"e1f1", "kq"},
		{"a1a8", "Kk"},  // captures the a8 rook
		{"h1h8", "Qq"},  // captures the h8 rook
		{"e1d2", "kq"},
	}
	for _, tt := range tests {
		next := mustApply(t, p, tt.move)
		if got := next.CastlingRights().String(); got != tt.want {
			t.Fatalf("%s: rights %s want %s", tt.move, got, tt.want)
		}
	}
}

func TestPromotionReplacesPawn(t *testing.T) {
	p := bitmg.MustParseFEN("1n5k/P7/8/8/8/8/8/7K w - - 0 1")
	for text, want := range map[string]bitmg.PieceType{
		"a7a8q": bitmg.Queen, "a7a8r": bitmg.Rook, "a7b8n": bitmg.Knight, "a7b8b": bitmg.Bishop,
	} {
		next := mustApply(t, p, text)
		to := sq(t, text[2:4])
		if pt, c, ok := next.PieceAt(to); !ok || pt != want || c != bitmg.White {
			t.Fatalf("%s: got %v on %v", text, pt, to)
		}
		if next.Pieces(bitmg.Pawn) != 0 {
			t.Fatalf("%s: pawn survived promotion", text)
		}
		if next.Colors(bitmg.Black).Count() != 1+boolInt(text[2:4] == "a8") {
			t.Fatalf("%s: wrong black material", text)
		}
	}
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Walk every legal line a few plies deep and check the board invariants and
// the en-passant rule after each move.
func TestInvariantsAlongLegalLines(t *testing.T) {
	fens := []string{
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}
	depth := 3
	if testing.Short() {
		depth = 2
	}
	for _, fen := range fens {
		walkLegal(t, bitmg.MustParseFEN(fen), depth)
	}
}

func walkLegal(t *testing.T, p bitmg.Position, depth int) {
	if depth == 0 {
		return
	}
	for _, m := range p.GenerateMoves() {
		next, ok := p.Apply(m)
		if !ok {
			continue
		}
		if err := next.Validate(); err != nil {
			t.Fatalf("%s after %v: %v", p.FEN(), m, err)
		}
		if (next.EnPassant() != bitmg.NoSquare) != (m.Kind() == bitmg.PawnDoublePush) {
			t.Fatalf("%s after %v: ep %v", p.FEN(), m, next.EnPassant())
		}
		if next.SideToMove() == p.SideToMove() {
			t.Fatalf("side to move did not flip after %v", m)
		}
		// the mover's king is never left attacked
		if next.IsSquareAttacked(next.KingSquare(p.SideToMove()), next.SideToMove()) {
			t.Fatalf("%s after %v: mover left in check", p.FEN(), m)
		}
		walkLegal(t, next, depth-1)
	}
}
