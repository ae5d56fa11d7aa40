package bitmg

// Color is the side owning a piece.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Opposite returns the other side.
func (c Color) Opposite() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceType is a colorless piece kind. The values index Position.pieces directly.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// NoPieceType is returned by lookups on empty squares.
const NoPieceType PieceType = 255

var pieceLetters = [6]byte{'p', 'n', 'b', 'r', 'q', 'k'}

// Letter returns the lowercase FEN letter of the piece type.
func (pt PieceType) Letter() byte {
	if pt > King {
		return '?'
	}
	return pieceLetters[pt]
}

// CastlingRights bit flags.
type CastlingRights uint8

const (
	// White king-side (short) castling
	CastlingWhiteK CastlingRights = 1 << iota
	// White queen-side (long) castling
	CastlingWhiteQ
	// Black king-side castling
	CastlingBlackK
	// Black queen-side castling
	CastlingBlackQ

	CastlingAll = CastlingWhiteK | CastlingWhiteQ | CastlingBlackK | CastlingBlackQ
)

func (cr CastlingRights) String() string {
	if cr&CastlingAll == 0 {
		return "-"
	}
	out := make([]byte, 0, 4)
	for i, ch := range []byte("KQkq") {
		if cr&(1<<uint(i)) != 0 {
			out = append(out, ch)
		}
	}
	return string(out)
}
