package bitmg

// Move packs a move into 16 bits.
//
//	bits  0-5   from square
//	bits  6-11  to square
//	bits 12-15  MoveKind
type Move uint16

const (
	moveFromShift = 0
	moveToShift   = 6
	moveKindShift = 12
)

// MoveKind tags what moved and which special handling applies.
type MoveKind uint8

const (
	PromoQueen MoveKind = iota
	PromoRook
	PromoKnight
	PromoBishop
	EnPassant
	Castle
	PawnMove
	PawnDoublePush
	BishopMove
	KnightMove
	RookMove
	KingMove
	QueenMove
)

// pieceKinds maps a non-pawn piece type to its plain-move kind.
var pieceKinds = [6]MoveKind{
	Pawn:   PawnMove,
	Knight: KnightMove,
	Bishop: BishopMove,
	Rook:   RookMove,
	Queen:  QueenMove,
	King:   KingMove,
}

// promoKinds lists promotions in the order they are generated.
var promoKinds = [4]MoveKind{PromoQueen, PromoRook, PromoKnight, PromoBishop}

// IsPromotion reports whether k is one of the four promotion kinds.
func (k MoveKind) IsPromotion() bool { return k <= PromoBishop }

// PromotionPiece returns the piece a promotion kind creates, or NoPieceType.
func (k MoveKind) PromotionPiece() PieceType {
	switch k {
	case PromoQueen:
		return Queen
	case PromoRook:
		return Rook
	case PromoKnight:
		return Knight
	case PromoBishop:
		return Bishop
	}
	return NoPieceType
}

// Piece returns the type of the piece that moves.
func (k MoveKind) Piece() PieceType {
	switch k {
	case BishopMove:
		return Bishop
	case KnightMove:
		return Knight
	case RookMove:
		return Rook
	case QueenMove:
		return Queen
	case KingMove, Castle:
		return King
	}
	return Pawn
}

var kindNames = [...]string{
	"promo-queen", "promo-rook", "promo-knight", "promo-bishop",
	"en-passant", "castle", "pawn", "pawn-double",
	"bishop", "knight", "rook", "king", "queen",
}

func (k MoveKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}

// NewMove encodes a move. Nothing is validated here.
func NewMove(from, to Square, kind MoveKind) Move {
	return Move(uint16(from&0x3F)<<moveFromShift |
		uint16(to&0x3F)<<moveToShift |
		uint16(kind&0xF)<<moveKindShift)
}

// From returns the source square of the move.
func (m Move) From() Square { return Square((m >> moveFromShift) & 0x3F) }

// To returns the destination square of the move.
func (m Move) To() Square { return Square((m >> moveToShift) & 0x3F) }

// Kind returns the move-kind tag.
func (m Move) Kind() MoveKind { return MoveKind((m >> moveKindShift) & 0xF) }

// String renders coordinate notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	from, to := m.From(), m.To()
	buf := make([]byte, 4, 5)
	buf[0] = 'a' + byte(from.File())
	buf[1] = '1' + byte(from.Rank())
	buf[2] = 'a' + byte(to.File())
	buf[3] = '1' + byte(to.Rank())
	if k := m.Kind(); k.IsPromotion() {
		buf = append(buf, k.PromotionPiece().Letter())
	}
	return string(buf)
}
