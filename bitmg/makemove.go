package bitmg

// castleSurvive[sq] holds the rights that remain after a move touches sq,
// either as origin or destination.
var castleSurvive = func() (tbl [64]CastlingRights) {
	for i := range tbl {
		tbl[i] = CastlingAll
	}
	tbl[A1] &^= CastlingWhiteQ
	tbl[H1] &^= CastlingWhiteK
	tbl[E1] &^= CastlingWhiteK | CastlingWhiteQ
	tbl[A8] &^= CastlingBlackQ
	tbl[H8] &^= CastlingBlackK
	tbl[E8] &^= CastlingBlackK | CastlingBlackQ
	return tbl
}()

// Apply plays m on a copy of p. It returns the new position and true, or the
// zero Position and false if the move leaves the mover's king attacked. p is
// never modified. m must come from p's move generator.
func (p Position) Apply(m Move) (Position, bool) {
	return p.apply(DefaultTables(), m)
}

func (p Position) apply(t *Tables, m Move) (Position, bool) {
	us, them := p.side, p.side.Opposite()
	from, to, kind := m.From(), m.To(), m.Kind()
	fromBB, toBB := from.Bitboard(), to.Bitboard()

	p.colors[us] ^= fromBB | toBB
	p.colors[them] &^= toBB
	p.castling &= castleSurvive[from] & castleSurvive[to]
	p.epSquare = NoSquare

	// whatever stood on to is gone; the mover is re-added below
	for pt := range p.pieces {
		p.pieces[pt] &^= toBB
	}

	switch kind {
	case PawnMove:
		p.pieces[Pawn] ^= fromBB | toBB
	case PawnDoublePush:
		p.pieces[Pawn] ^= fromBB | toBB
		p.epSquare = (from + to) / 2
	case EnPassant:
		p.pieces[Pawn] ^= fromBB | toBB
		victim := to - 8
		if us == Black {
			victim = to + 8
		}
		p.pieces[Pawn] &^= victim.Bitboard()
		p.colors[them] &^= victim.Bitboard()
	case PromoQueen, PromoRook, PromoKnight, PromoBishop:
		p.pieces[Pawn] &^= fromBB
		p.pieces[kind.PromotionPiece()] |= toBB
	case Castle:
		p.pieces[King] ^= fromBB | toBB
		if r := castleRuleFor(us, to); r != nil {
			rookFrom, rookTo := r.rook.Bitboard(), r.rookTo.Bitboard()
			for pt := range p.pieces {
				p.pieces[pt] &^= rookTo
			}
			p.colors[them] &^= rookTo
			p.pieces[Rook] = p.pieces[Rook]&^rookFrom | rookTo
			p.colors[us] = p.colors[us]&^rookFrom | rookTo
		}
	default:
		p.pieces[kind.Piece()] ^= fromBB | toBB
	}

	if p.kingAttacked(t, us) {
		return Position{}, false
	}
	p.side = them
	return p, true
}
