package bitmg

import "math/bits"

// Bitboard is a set of squares; bit i set means square i is a member.
type Bitboard uint64

// Walls used by the directional shifts.
const (
	WallRight Bitboard = 0x8080808080808080 // file h
	WallLeft  Bitboard = 0x0101010101010101 // file a
	WallUp    Bitboard = 0xff00000000000000 // rank 8
	WallDown  Bitboard = 0x00000000000000ff // rank 1
)

// Square is a board index 0-63 with a1=0, h1=7, a8=56, h8=63.
type Square int

const NoSquare Square = -1

// Named squares used by castling and tests.
const (
	A1 Square = 0
	B1 Square = 1
	C1 Square = 2
	D1 Square = 3
	E1 Square = 4
	F1 Square = 5
	G1 Square = 6
	H1 Square = 7
	A8 Square = 56
	B8 Square = 57
	C8 Square = 58
	D8 Square = 59
	E8 Square = 60
	F8 Square = 61
	G8 Square = 62
	H8 Square = 63
)

// File returns the file index 0 (a) through 7 (h).
func (sq Square) File() int { return int(sq) % 8 }

// Rank returns the rank index 0 (rank 1) through 7 (rank 8).
func (sq Square) Rank() int { return int(sq) / 8 }

// Bitboard returns the singleton set holding sq.
func (sq Square) Bitboard() Bitboard { return 1 << uint(sq) }

// String renders the square in coordinate notation, e.g. "e4".
func (sq Square) String() string {
	if sq < 0 || sq > 63 {
		return "-"
	}
	return string([]byte{'a' + byte(sq.File()), '1' + byte(sq.Rank())})
}

// SquareOf returns the square at the given file and rank.
func SquareOf(file, rank int) Square { return Square(rank*8 + file) }

// ParseSquare converts coordinate notation ("a1".."h8") to a Square.
func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 {
		return NoSquare, false
	}
	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, false
	}
	return SquareOf(int(file-'a'), int(rank-'1')), true
}

// Has reports whether sq is a member of b.
func (b Bitboard) Has(sq Square) bool { return b&sq.Bitboard() != 0 }

// Count returns the number of members.
func (b Bitboard) Count() int { return bits.OnesCount64(uint64(b)) }

// LSB returns the lowest member, or NoSquare for the empty set.
func (b Bitboard) LSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLSB removes and returns the lowest member. The set must be non-empty.
func (b *Bitboard) PopLSB() Square {
	sq := Square(bits.TrailingZeros64(uint64(*b)))
	*b &= *b - 1
	return sq
}

// Squares lists the members in ascending order.
func (b Bitboard) Squares() []Square {
	out := make([]Square, 0, b.Count())
	for b != 0 {
		out = append(out, b.PopLSB())
	}
	return out
}

// ShiftVertical moves every member n ranks up (n > 0) or down (n < 0).
// Members that would leave the board are dropped instead of wrapping.
func (b Bitboard) ShiftVertical(n int) Bitboard {
	for ; n > 0; n-- {
		b = (b &^ WallUp) << 8
	}
	for ; n < 0; n++ {
		b = (b &^ WallDown) >> 8
	}
	return b
}

// ShiftHorizontal moves every member n files right (n > 0) or left (n < 0).
// Members that would leave the board are dropped instead of wrapping.
func (b Bitboard) ShiftHorizontal(n int) Bitboard {
	for ; n > 0; n-- {
		b = (b &^ WallRight) << 1
	}
	for ; n < 0; n++ {
		b = (b &^ WallLeft) >> 1
	}
	return b
}

// Shift translates every member by (df files, dr ranks).
func (b Bitboard) Shift(df, dr int) Bitboard {
	return b.ShiftHorizontal(df).ShiftVertical(dr)
}

// Translate moves a pattern drawn around center so that it is drawn around target.
func (b Bitboard) Translate(center, target Square) Bitboard {
	return b.Shift(target.File()-center.File(), target.Rank()-center.Rank())
}

// pdep deposits the low bits of x onto the set bits of mask in ascending order.
func pdep(x uint64, mask Bitboard) Bitboard {
	var res Bitboard
	var idx uint
	for m := mask; m != 0; idx++ {
		sq := m.PopLSB()
		if (x>>idx)&1 != 0 {
			res |= sq.Bitboard()
		}
	}
	return res
}
