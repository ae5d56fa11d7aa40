package bitmg

// castleRule describes one castling option.
type castleRule struct {
	right   CastlingRights
	color   Color
	king    Square
	rook    Square
	kingTo  Square
	rookTo  Square
	between Bitboard // must be empty
	path    Bitboard // must not be attacked (pass-through and destination)
}

var castleRules = [4]castleRule{
	{CastlingWhiteK, White, E1, H1, G1, F1, F1.Bitboard() | G1.Bitboard(), F1.Bitboard() | G1.Bitboard()},
	{CastlingWhiteQ, White, E1, A1, C1, D1, B1.Bitboard() | C1.Bitboard() | D1.Bitboard(), D1.Bitboard() | C1.Bitboard()},
	{CastlingBlackK, Black, E8, H8, G8, F8, F8.Bitboard() | G8.Bitboard(), F8.Bitboard() | G8.Bitboard()},
	{CastlingBlackQ, Black, E8, A8, C8, D8, B8.Bitboard() | C8.Bitboard() | D8.Bitboard(), D8.Bitboard() | C8.Bitboard()},
}

// castleRuleFor returns the rule whose king destination is to, or nil.
func castleRuleFor(c Color, to Square) *castleRule {
	for i := range castleRules {
		if r := &castleRules[i]; r.color == c && r.kingTo == to {
			return r
		}
	}
	return nil
}

// GenerateMoves returns all pseudo-legal moves for the side to move.
func (p *Position) GenerateMoves() []Move { return p.GenerateMovesInto(make([]Move, 0, 128)) }

// GenerateMovesInto appends pseudo-legal moves to dst and returns it. Moves
// come out by piece type, then ascending origin, then ascending target.
// Castling moves are emitted only when fully legal.
func (p *Position) GenerateMovesInto(dst []Move) []Move {
	return p.generateInto(DefaultTables(), dst)
}

func (p *Position) generateInto(t *Tables, dst []Move) []Move {
	us := p.side
	own := p.colors[us]
	enemy := p.colors[us.Opposite()]
	occ := own | enemy

	dst = p.genPawns(t, dst, own&p.pieces[Pawn], enemy, occ)

	for pt := Knight; pt <= King; pt++ {
		kind := pieceKinds[pt]
		for from := own & p.pieces[pt]; from != 0; {
			sq := from.PopLSB()
			var targets Bitboard
			switch pt {
			case Knight:
				targets = t.knight[sq]
			case Bishop:
				targets = t.BishopAttacks(sq, occ)
			case Rook:
				targets = t.RookAttacks(sq, occ)
			case Queen:
				targets = t.QueenAttacks(sq, occ)
			case King:
				targets = t.king[sq]
			}
			for targets &^= own; targets != 0; {
				dst = append(dst, NewMove(sq, targets.PopLSB(), kind))
			}
		}
	}

	return p.genCastles(t, dst, occ)
}

func (p *Position) genPawns(t *Tables, dst []Move, pawns, enemy, occ Bitboard) []Move {
	us := p.side
	lastRank := WallUp
	if us == Black {
		lastRank = WallDown
	}
	var epBB Bitboard
	if p.epSquare != NoSquare {
		epBB = p.epSquare.Bitboard()
	}

	for pawns != 0 {
		from := pawns.PopLSB()
		if push := t.pawnPush[us][from] &^ occ; push != 0 {
			dst = appendPawnMove(dst, from, push.LSB(), lastRank)
			if double := t.pawnDouble[us][from] &^ occ; double != 0 {
				dst = append(dst, NewMove(from, double.LSB(), PawnDoublePush))
			}
		}
		for caps := t.pawnCapture[us][from] & enemy; caps != 0; {
			dst = appendPawnMove(dst, from, caps.PopLSB(), lastRank)
		}
		if t.pawnCapture[us][from]&epBB != 0 {
			dst = append(dst, NewMove(from, p.epSquare, EnPassant))
		}
	}
	return dst
}

func (p *Position) genCastles(t *Tables, dst []Move, occ Bitboard) []Move {
	us := p.side
	if p.castling == 0 {
		return dst
	}
	kings := p.PiecesOf(us, King)
	rooks := p.PiecesOf(us, Rook)
	them := us.Opposite()
	checked := false
	for i := range castleRules {
		r := &castleRules[i]
		if r.color != us || p.castling&r.right == 0 {
			continue
		}
		if !kings.Has(r.king) || !rooks.Has(r.rook) || occ&r.between != 0 {
			continue
		}
		if !checked {
			if p.isAttacked(t, r.king, them) {
				return dst
			}
			checked = true
		}
		safe := true
		for path := r.path; path != 0; {
			if p.isAttacked(t, path.PopLSB(), them) {
				safe = false
				break
			}
		}
		if safe {
			dst = append(dst, NewMove(r.king, r.kingTo, Castle))
		}
	}
	return dst
}

// appendPawnMove expands a move onto the last rank into the four promotions.
func appendPawnMove(dst []Move, from, to Square, lastRank Bitboard) []Move {
	if lastRank.Has(to) {
		for _, k := range promoKinds {
			dst = append(dst, NewMove(from, to, k))
		}
		return dst
	}
	return append(dst, NewMove(from, to, PawnMove))
}
