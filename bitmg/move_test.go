package bitmg_test

import (
	"testing"

	"chess-core/bitmg"
)

func TestMoveEncoding(t *testing.T) {
	for kind := bitmg.PromoQueen; kind <= bitmg.QueenMove; kind++ {
		for _, sq := range [][2]bitmg.Square{{0, 63}, {63, 0}, {12, 28}, {52, 60}} {
			m := bitmg.NewMove(sq[0], sq[1], kind)
			if m.From() != sq[0] || m.To() != sq[1] || m.Kind() != kind {
				t.Fatalf("decode(%v,%v,%v) = (%v,%v,%v)", sq[0], sq[1], kind, m.From(), m.To(), m.Kind())
			}
		}
	}
}

func TestMoveString(t *testing.T) {
	e2, _ := bitmg.ParseSquare("e2")
	e4, _ := bitmg.ParseSquare("e4")
	e7, _ := bitmg.ParseSquare("e7")
	tests := []struct {
		m    bitmg.Move
		want string
	}{
		{bitmg.NewMove(e2, e4, bitmg.PawnDoublePush), "e2e4"},
		{bitmg.NewMove(bitmg.E1, bitmg.G1, bitmg.Castle), "e1g1"},
		{bitmg.NewMove(e7, bitmg.E8, bitmg.PromoQueen), "e7e8q"},
		{bitmg.NewMove(e7, bitmg.E8, bitmg.PromoRook), "e7e8r"},
		{bitmg.NewMove(e7, bitmg.E8, bitmg.PromoKnight), "e7e8n"},
		{bitmg.NewMove(e7, bitmg.E8, bitmg.PromoBishop), "e7e8b"},
		{bitmg.NewMove(bitmg.A1, bitmg.H8, bitmg.BishopMove), "a1h8"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Fatalf("got %q want %q", got, tt.want)
		}
	}
}

func TestMoveKindPieces(t *testing.T) {
	if bitmg.Castle.Piece() != bitmg.King || bitmg.EnPassant.Piece() != bitmg.Pawn || bitmg.KnightMove.Piece() != bitmg.Knight {
		t.Fatalf("unexpected moved piece mapping")
	}
	if !bitmg.PromoBishop.IsPromotion() || bitmg.EnPassant.IsPromotion() {
		t.Fatalf("IsPromotion boundary is wrong")
	}
	if bitmg.PromoKnight.PromotionPiece() != bitmg.Knight || bitmg.RookMove.PromotionPiece() != bitmg.NoPieceType {
		t.Fatalf("PromotionPiece mapping is wrong")
	}
}
