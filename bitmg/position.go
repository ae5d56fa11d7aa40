package bitmg

import "fmt"

// Position is the complete state the move generator needs. It is a small
// value type: copying it is how a move is tried without touching the original.
type Position struct {
	// Occupancy per side (index 0 = white, 1 = black). Disjoint.
	colors [2]Bitboard

	// Occupancy per piece type, both sides together.
	pieces [6]Bitboard

	// Side to move
	side Color

	// Castling rights (bitmask using CastlingRights flags)
	castling CastlingRights

	// En passant target square, NoSquare unless the last move was a double push
	epSquare Square
}

var startPosition = func() Position {
	var p Position
	back := [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for f := 0; f < 8; f++ {
		p.put(SquareOf(f, 0), White, back[f])
		p.put(SquareOf(f, 1), White, Pawn)
		p.put(SquareOf(f, 6), Black, Pawn)
		p.put(SquareOf(f, 7), Black, back[f])
	}
	p.side = White
	p.castling = CastlingAll
	p.epSquare = NoSquare
	return p
}()

// NewPosition returns the standard starting position.
func NewPosition() Position { return startPosition }

// put places a piece on an empty square.
func (p *Position) put(sq Square, c Color, pt PieceType) {
	b := sq.Bitboard()
	p.colors[c] |= b
	p.pieces[pt] |= b
}

// clear removes whatever occupies sq.
func (p *Position) clear(sq Square) {
	mask := ^sq.Bitboard()
	p.colors[White] &= mask
	p.colors[Black] &= mask
	for pt := range p.pieces {
		p.pieces[pt] &= mask
	}
}

// SideToMove reports which side is to play.
func (p *Position) SideToMove() Color { return p.side }

// CastlingRights returns the remaining castling rights.
func (p *Position) CastlingRights() CastlingRights { return p.castling }

// EnPassant returns the en-passant target square or NoSquare.
func (p *Position) EnPassant() Square { return p.epSquare }

// Pieces returns the squares holding pieces of type pt, both colors.
func (p *Position) Pieces(pt PieceType) Bitboard { return p.pieces[pt] }

// Colors returns the squares occupied by side c.
func (p *Position) Colors(c Color) Bitboard { return p.colors[c] }

// PiecesOf returns the squares holding c's pieces of type pt.
func (p *Position) PiecesOf(c Color, pt PieceType) Bitboard { return p.pieces[pt] & p.colors[c] }

// Occupied returns every occupied square.
func (p *Position) Occupied() Bitboard { return p.colors[White] | p.colors[Black] }

// PieceAt returns the piece on sq. ok is false for an empty square.
func (p *Position) PieceAt(sq Square) (pt PieceType, c Color, ok bool) {
	b := sq.Bitboard()
	if p.Occupied()&b == 0 {
		return NoPieceType, White, false
	}
	c = White
	if p.colors[Black]&b != 0 {
		c = Black
	}
	for t := Pawn; t <= King; t++ {
		if p.pieces[t]&b != 0 {
			return t, c, true
		}
	}
	return NoPieceType, c, false
}

// KingSquare returns c's king square, or NoSquare if c has no king.
func (p *Position) KingSquare(c Color) Square {
	return (p.pieces[King] & p.colors[c]).LSB()
}

// Validate checks the occupancy invariants: the color boards are disjoint,
// the piece-type boards are pairwise disjoint, and both cover the same squares.
func (p *Position) Validate() error {
	if p.colors[White]&p.colors[Black] != 0 {
		return fmt.Errorf("bitmg: color boards overlap on %#x", uint64(p.colors[White]&p.colors[Black]))
	}
	var union Bitboard
	for pt, b := range p.pieces {
		if union&b != 0 {
			return fmt.Errorf("bitmg: %c board overlaps another piece type on %#x", PieceType(pt).Letter(), uint64(union&b))
		}
		union |= b
	}
	if occ := p.Occupied(); union != occ {
		return fmt.Errorf("bitmg: piece boards %#x do not match color boards %#x", uint64(union), uint64(occ))
	}
	if p.epSquare != NoSquare && (p.epSquare < 0 || p.epSquare > 63) {
		return fmt.Errorf("bitmg: en passant square %d out of range", p.epSquare)
	}
	return nil
}

// String draws the board with rank 8 on top, for debugging.
func (p *Position) String() string {
	buf := make([]byte, 0, 72)
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			pt, c, ok := p.PieceAt(SquareOf(file, rank))
			switch {
			case !ok:
				buf = append(buf, '.')
			case c == White:
				buf = append(buf, pt.Letter()-'a'+'A')
			default:
				buf = append(buf, pt.Letter())
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
