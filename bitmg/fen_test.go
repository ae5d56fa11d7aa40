package bitmg_test

import (
	"errors"
	"testing"

	"chess-core/bitmg"
)

func TestParseFENStartpos(t *testing.T) {
	p, err := bitmg.ParseFEN(bitmg.FENStartPos)
	if err != nil {
		t.Fatalf("ParseFEN failed for initial position: %v", err)
	}
	if p != bitmg.NewPosition() {
		t.Fatalf("parsed start position differs from NewPosition")
	}
	if got := p.FEN(); got != bitmg.FENStartPos {
		t.Fatalf("FEN: got %q want %q", got, bitmg.FENStartPos)
	}
	if pt, c, ok := p.PieceAt(bitmg.E1); !ok || pt != bitmg.King || c != bitmg.White {
		t.Fatalf("e1 should hold the white king")
	}
	if pt, c, ok := p.PieceAt(bitmg.D8); !ok || pt != bitmg.Queen || c != bitmg.Black {
		t.Fatalf("d8 should hold the black queen")
	}
	if p.Occupied().Count() != 32 || p.CastlingRights() != bitmg.CastlingAll || p.EnPassant() != bitmg.NoSquare {
		t.Fatalf("unexpected start state")
	}
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"k7/8/8/3pP3/8/8/8/7K w - d6 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R b Kq - 0 1",
	}
	for _, fen := range fens {
		p, err := bitmg.ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		if err := p.Validate(); err != nil {
			t.Fatalf("Validate(%q): %v", fen, err)
		}
		if got := p.FEN(); got != fen {
			t.Fatalf("round trip: got %q want %q", got, fen)
		}
	}
}

func TestParseFENFourFields(t *testing.T) {
	p, err := bitmg.ParseFEN("8/8/8/8/4P3/8/8/K6k b - e3")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if p.SideToMove() != bitmg.Black {
		t.Fatalf("side: got %v", p.SideToMove())
	}
	if p.EnPassant().String() != "e3" {
		t.Fatalf("ep: got %v", p.EnPassant())
	}
}

func TestLoadPositionErrors(t *testing.T) {
	tests := []struct {
		name                  string
		pieces, color, castle string
		ep                    string
		field                 string
	}{
		{"seven ranks", "8/8/8/8/8/8/8", "w", "-", "-", "pieces"},
		{"short rank", "8/8/8/8/8/8/8/7", "w", "-", "-", "pieces"},
		{"long rank", "8/8/8/8/8/8/8/8p", "w", "-", "-", "pieces"},
		{"bad letter", "8/8/8/8/8/8/8/7x", "w", "-", "-", "pieces"},
		{"bad color", "8/8/8/8/8/8/8/8", "x", "-", "-", "color"},
		{"bad castle", "8/8/8/8/8/8/8/8", "w", "KZ", "-", "castling"},
		{"bad ep", "8/8/8/8/8/8/8/8", "w", "-", "z9", "en passant"},
		{"ep rank", "8/8/8/8/8/8/8/8", "w", "-", "e4", "en passant"},
		{"ep behind own pawns", "4k3/8/8/8/8/8/3PP3/4K3", "w", "-", "e3", "en passant"},
		{"ep for black on rank 6", "4k3/8/8/3pP3/8/8/8/4K3", "b", "-", "d6", "en passant"},
		{"ep without pawn", "4k3/8/8/8/8/8/8/4K3", "w", "-", "d6", "en passant"},
		{"ep own pawn in front", "4k3/8/8/3P4/8/8/8/4K3", "w", "-", "d6", "en passant"},
		{"ep origin occupied", "4k3/3p4/8/3pP3/8/8/8/4K3", "w", "-", "d6", "en passant"},
	}
	for _, tt := range tests {
		p, err := bitmg.LoadPosition(tt.pieces, tt.color, tt.castle, tt.ep)
		var fe *bitmg.FormatError
		if !errors.As(err, &fe) {
			t.Fatalf("%s: want *FormatError, got %v", tt.name, err)
		}
		if fe.Field != tt.field {
			t.Fatalf("%s: field %q want %q", tt.name, fe.Field, tt.field)
		}
		if p != bitmg.NewPosition() {
			t.Fatalf("%s: malformed input should fall back to the start position", tt.name)
		}
	}
}

func TestParseFENTooFewFields(t *testing.T) {
	_, err := bitmg.ParseFEN("8/8/8/8/8/8/8/8 w -")
	var fe *bitmg.FormatError
	if !errors.As(err, &fe) || fe.Field != "fen" {
		t.Fatalf("want fen FormatError, got %v", err)
	}
}

func TestMustParseFENPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("MustParseFEN did not panic")
		}
	}()
	bitmg.MustParseFEN("not a fen")
}
