package bitmg

// Zobrist keys for pieces, castling, en passant, and side to move.
type zobristKeys struct {
	piece     [2][6][64]uint64
	castle    [16]uint64
	enPassant [8]uint64 // by file
	side      uint64    // black to move
}

const zobristSeed = 0xC0DE

var zobrist = func() (z zobristKeys) {
	rng := NewXorshift(zobristSeed)
	for c := range z.piece {
		for pt := range z.piece[c] {
			for sq := range z.piece[c][pt] {
				z.piece[c][pt][sq] = rng.Uint64()
			}
		}
	}
	for i := range z.castle {
		z.castle[i] = rng.Uint64()
	}
	for i := range z.enPassant {
		z.enPassant[i] = rng.Uint64()
	}
	z.side = rng.Uint64()
	return z
}()

// Hash returns the Zobrist key of the position. Positions that are equal in
// every modeled field hash equal.
func (p *Position) Hash() uint64 {
	var key uint64
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			for b := p.pieces[pt] & p.colors[c]; b != 0; {
				key ^= zobrist.piece[c][pt][b.PopLSB()]
			}
		}
	}
	if p.side == Black {
		key ^= zobrist.side
	}
	key ^= zobrist.castle[p.castling&CastlingAll]
	if p.epSquare != NoSquare {
		key ^= zobrist.enPassant[p.epSquare.File()]
	}
	return key
}
