package bitmg

import (
	"strings"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// pieceFromChar converts a FEN letter to its piece type and color.
func pieceFromChar(ch byte) (PieceType, Color, bool) {
	c := White
	if ch >= 'a' && ch <= 'z' {
		c = Black
		ch -= 'a' - 'A'
	}
	switch ch {
	case 'P':
		return Pawn, c, true
	case 'N':
		return Knight, c, true
	case 'B':
		return Bishop, c, true
	case 'R':
		return Rook, c, true
	case 'Q':
		return Queen, c, true
	case 'K':
		return King, c, true
	}
	return NoPieceType, c, false
}

// ParseFEN parses the first four fields of a FEN string. Clock fields are
// accepted and ignored. On error the starting position is returned along
// with a *FormatError.
func ParseFEN(fen string) (Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return NewPosition(), &FormatError{Field: "fen", Value: fen, Reason: "need at least 4 fields"}
	}
	return LoadPosition(fields[0], fields[1], fields[2], fields[3])
}

// MustParseFEN is ParseFEN that panics on invalid input.
func MustParseFEN(fen string) Position {
	p, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return p
}

// LoadPosition builds a position from the placement, active color, castling
// and en-passant fields of a FEN string. Malformed input yields the starting
// position and a *FormatError; the caller decides whether that is fatal.
func LoadPosition(pieceField, colorField, castleField, epField string) (Position, error) {
	var p Position
	if err := p.loadPlacement(pieceField); err != nil {
		return NewPosition(), err
	}

	switch colorField {
	case "w":
		p.side = White
	case "b":
		p.side = Black
	default:
		return NewPosition(), &FormatError{Field: "color", Value: colorField, Reason: "side to move must be 'w' or 'b'"}
	}

	if castleField != "-" {
		for i := 0; i < len(castleField); i++ {
			switch castleField[i] {
			case 'K':
				p.castling |= CastlingWhiteK
			case 'Q':
				p.castling |= CastlingWhiteQ
			case 'k':
				p.castling |= CastlingBlackK
			case 'q':
				p.castling |= CastlingBlackQ
			default:
				return NewPosition(), &FormatError{Field: "castling", Value: castleField, Reason: "unexpected character"}
			}
		}
	}

	p.epSquare = NoSquare
	if epField != "-" {
		sq, ok := ParseSquare(epField)
		if !ok {
			return NewPosition(), &FormatError{Field: "en passant", Value: epField, Reason: "not a square"}
		}
		if sq.Rank() != 2 && sq.Rank() != 5 {
			return NewPosition(), &FormatError{Field: "en passant", Value: epField, Reason: "must be on rank 3 or 6"}
		}
		// the pawn that just double-pushed sits in front of the target, seen
		// from the side to move, and both squares it crossed are empty
		rank, victim, origin := 5, sq-8, sq+8
		if p.side == Black {
			rank, victim, origin = 2, sq+8, sq-8
		}
		if sq.Rank() != rank {
			return NewPosition(), &FormatError{Field: "en passant", Value: epField, Reason: "wrong rank for the side to move"}
		}
		if !p.PiecesOf(p.side.Opposite(), Pawn).Has(victim) || p.Occupied()&(sq.Bitboard()|origin.Bitboard()) != 0 {
			return NewPosition(), &FormatError{Field: "en passant", Value: epField, Reason: "no pawn has just double-pushed past this square"}
		}
		p.epSquare = sq
	}
	return p, nil
}

// loadPlacement reads ranks 8 down to 1, files a to h, into the a1=0 index space.
func (p *Position) loadPlacement(field string) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return &FormatError{Field: "pieces", Value: field, Reason: "need 8 ranks"}
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(rankStr); j++ {
			ch := rankStr[j]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			pt, c, ok := pieceFromChar(ch)
			if !ok {
				return &FormatError{Field: "pieces", Value: field, Reason: "unrecognized piece character " + string(ch)}
			}
			if file >= 8 {
				return &FormatError{Field: "pieces", Value: field, Reason: "too many squares in rank " + string(byte('1'+rank))}
			}
			p.put(SquareOf(file, rank), c, pt)
			file++
		}
		if file != 8 {
			return &FormatError{Field: "pieces", Value: field, Reason: "rank " + string(byte('1'+rank)) + " does not have 8 files"}
		}
	}
	return nil
}

// FEN serializes the position. Clocks are not modeled and are written as "0 1".
func (p *Position) FEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			pt, c, ok := p.PieceAt(SquareOf(file, rank))
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			ch := pt.Letter()
			if c == White {
				ch -= 'a' - 'A'
			}
			sb.WriteByte(ch)
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	if p.side == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}
	sb.WriteString(p.castling.String())
	sb.WriteByte(' ')
	sb.WriteString(p.epSquare.String())
	sb.WriteString(" 0 1")
	return sb.String()
}
