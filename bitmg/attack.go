package bitmg

// attackProbe pairs the pieces that attack along a pattern with the lookup
// that produces the pattern from the target square.
type attackProbe struct {
	attackers []PieceType
	pattern   func(t *Tables, sq Square, by Color, occ Bitboard) Bitboard
}

// Attacks are symmetric: a piece of type X on a attacks b exactly when an X
// on b would attack a. Pawns are the exception and use the opposite color's
// capture pattern.
var attackProbes = [...]attackProbe{
	{[]PieceType{Knight}, func(t *Tables, sq Square, _ Color, _ Bitboard) Bitboard { return t.knight[sq] }},
	{[]PieceType{King}, func(t *Tables, sq Square, _ Color, _ Bitboard) Bitboard { return t.king[sq] }},
	{[]PieceType{Pawn}, func(t *Tables, sq Square, by Color, _ Bitboard) Bitboard { return t.pawnCapture[by.Opposite()][sq] }},
	{[]PieceType{Bishop, Queen}, func(t *Tables, sq Square, _ Color, occ Bitboard) Bitboard { return t.BishopAttacks(sq, occ) }},
	{[]PieceType{Rook, Queen}, func(t *Tables, sq Square, _ Color, occ Bitboard) Bitboard { return t.RookAttacks(sq, occ) }},
}

// IsSquareAttacked reports whether any piece of side by attacks sq. Squares
// off the board, such as NoSquare, are never attacked.
func (p *Position) IsSquareAttacked(sq Square, by Color) bool {
	if sq < A1 || sq > H8 {
		return false
	}
	return p.isAttacked(DefaultTables(), sq, by)
}

func (p *Position) isAttacked(t *Tables, sq Square, by Color) bool {
	occ := p.Occupied()
	them := p.colors[by]
	for i := range attackProbes {
		probe := &attackProbes[i]
		var attackers Bitboard
		for _, pt := range probe.attackers {
			attackers |= p.pieces[pt]
		}
		attackers &= them
		if attackers == 0 {
			continue
		}
		if probe.pattern(t, sq, by, occ)&attackers != 0 {
			return true
		}
	}
	return false
}

// InCheck reports whether the side to move has its king attacked. A side
// without a king is never in check.
func (p *Position) InCheck() bool {
	return p.kingAttacked(DefaultTables(), p.side)
}

func (p *Position) kingAttacked(t *Tables, c Color) bool {
	ksq := p.KingSquare(c)
	if ksq == NoSquare {
		return false
	}
	return p.isAttacked(t, ksq, c.Opposite())
}
