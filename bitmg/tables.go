package bitmg

import (
	"fmt"
	"sync"
)

// Hash widths. Every square of a slider uses the same width, so tables are
// oversized for squares whose relevant mask has fewer bits.
const (
	RookBits   = 12
	BishopBits = 9
)

// Leaper templates and the squares they are drawn around.
const (
	knightTemplate Bitboard = 0xa1100110a // drawn around c3
	knightCenter   Square   = 18
	kingTemplate   Bitboard = 0x70507 // drawn around b2
	kingCenter     Square   = 9
)

// slider describes the rays of a sliding piece and its hash width.
type slider struct {
	name   string
	deltas [][2]int // (file, rank) unit steps
	bits   uint
}

var (
	rookSlider   = slider{name: "rook", deltas: [][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}, bits: RookBits}
	bishopSlider = slider{name: "bishop", deltas: [][2]int{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}}, bits: BishopBits}
)

// magicEntry is the per-square perfect hash for one slider.
type magicEntry struct {
	mask    Bitboard
	magic   uint64
	attacks []Bitboard
}

// Tables holds every precomputed lookup used by generation and attack queries.
// A Tables value is never written after construction.
type Tables struct {
	knight      [64]Bitboard
	king        [64]Bitboard
	pawnPush    [2][64]Bitboard
	pawnDouble  [2][64]Bitboard
	pawnCapture [2][64]Bitboard

	rook   [64]magicEntry
	bishop [64]magicEntry
}

var defaultTables = sync.OnceValue(func() *Tables {
	t, err := buildTables(rookMagics, bishopMagics, NewXorshift(DefaultSeed))
	if err != nil {
		// unreachable: rediscovery always terminates with a valid constant
		panic(err)
	}
	return t
})

// DefaultTables returns the process-wide tables built from the shipped
// constants. The first call builds them; later calls return the same value.
func DefaultTables() *Tables { return defaultTables() }

// BuildTables builds tables from caller-supplied magic constants. It fails if
// any constant does not hash its square's occupancy subsets without collision.
func BuildTables(rookMagics, bishopMagics [64]uint64) (*Tables, error) {
	return buildTables(rookMagics, bishopMagics, nil)
}

// buildTables fills all tables. When rng is non-nil a failing constant is
// replaced by a freshly discovered one instead of returning an error.
func buildTables(rookMagics, bishopMagics [64]uint64, rng *Xorshift) (*Tables, error) {
	t := &Tables{}
	t.initLeapers()
	for sq := Square(0); sq < 64; sq++ {
		var err error
		if t.rook[sq], err = newMagicEntry(sq, rookSlider, rookMagics[sq], rng); err != nil {
			return nil, err
		}
		if t.bishop[sq], err = newMagicEntry(sq, bishopSlider, bishopMagics[sq], rng); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *Tables) initLeapers() {
	for sq := Square(0); sq < 64; sq++ {
		bb := sq.Bitboard()
		t.knight[sq] = knightTemplate.Translate(knightCenter, sq)
		t.king[sq] = kingTemplate.Translate(kingCenter, sq)

		t.pawnPush[White][sq] = bb.ShiftVertical(1)
		t.pawnPush[Black][sq] = bb.ShiftVertical(-1)
		if sq.Rank() == 1 {
			t.pawnDouble[White][sq] = bb.ShiftVertical(2)
		}
		if sq.Rank() == 6 {
			t.pawnDouble[Black][sq] = bb.ShiftVertical(-2)
		}
		t.pawnCapture[White][sq] = bb.Shift(1, 1) | bb.Shift(-1, 1)
		t.pawnCapture[Black][sq] = bb.Shift(1, -1) | bb.Shift(-1, -1)
	}
}

// slidingAttacks casts rays from sq, stopping at (and including) the first
// occupied square or at the board edge.
func slidingAttacks(sq Square, occ Bitboard, deltas [][2]int) Bitboard {
	var attacks Bitboard
	for _, d := range deltas {
		for b := sq.Bitboard(); ; {
			b = b.Shift(d[0], d[1])
			if b == 0 {
				break
			}
			attacks |= b
			if b&occ != 0 {
				break
			}
		}
	}
	return attacks
}

// relevantMask is the empty-board ray set minus the last square of each ray.
func relevantMask(sq Square, deltas [][2]int) Bitboard {
	var mask Bitboard
	for _, d := range deltas {
		for b := sq.Bitboard(); ; {
			b = b.Shift(d[0], d[1])
			if b == 0 || b.Shift(d[0], d[1]) == 0 {
				break
			}
			mask |= b
		}
	}
	return mask
}

func magicIndex(subset Bitboard, magic uint64, bits uint) uint64 {
	return (uint64(subset) * magic) >> (64 - bits)
}

func newMagicEntry(sq Square, s slider, magic uint64, rng *Xorshift) (magicEntry, error) {
	mask := relevantMask(sq, s.deltas)
	e, ok := fillMagic(sq, s, mask, magic)
	if ok {
		return e, nil
	}
	if rng == nil {
		return magicEntry{}, fmt.Errorf("bitmg: %s magic %#x collides on %v", s.name, magic, sq)
	}
	magic, _ = FindMagic(mask, s.bits, rng)
	e, _ = fillMagic(sq, s, mask, magic)
	return e, nil
}

// fillMagic enumerates every subset of mask and stores its ray-cast attack set
// at the hashed index. It reports false if two subsets share an index.
func fillMagic(sq Square, s slider, mask Bitboard, magic uint64) (magicEntry, bool) {
	e := magicEntry{mask: mask, magic: magic, attacks: make([]Bitboard, 1<<s.bits)}
	used := make([]bool, 1<<s.bits)
	n := uint64(1) << uint(mask.Count())
	for idx := uint64(0); idx < n; idx++ {
		subset := pdep(idx, mask)
		i := magicIndex(subset, magic, s.bits)
		if used[i] {
			return magicEntry{}, false
		}
		used[i] = true
		e.attacks[i] = slidingAttacks(sq, subset, s.deltas)
	}
	return e, true
}

// KnightAttacks returns the knight pattern from sq.
func (t *Tables) KnightAttacks(sq Square) Bitboard { return t.knight[sq] }

// KingAttacks returns the king pattern from sq (castling excluded).
func (t *Tables) KingAttacks(sq Square) Bitboard { return t.king[sq] }

// PawnAttacks returns the diagonal capture pattern of a c pawn on sq.
func (t *Tables) PawnAttacks(c Color, sq Square) Bitboard { return t.pawnCapture[c][sq] }

// RookAttacks returns rook reachability from sq given all occupied squares.
func (t *Tables) RookAttacks(sq Square, occ Bitboard) Bitboard {
	e := &t.rook[sq]
	return e.attacks[magicIndex(occ&e.mask, e.magic, RookBits)]
}

// BishopAttacks returns bishop reachability from sq given all occupied squares.
func (t *Tables) BishopAttacks(sq Square, occ Bitboard) Bitboard {
	e := &t.bishop[sq]
	return e.attacks[magicIndex(occ&e.mask, e.magic, BishopBits)]
}

// QueenAttacks is the union of the rook and bishop lookups.
func (t *Tables) QueenAttacks(sq Square, occ Bitboard) Bitboard {
	return t.RookAttacks(sq, occ) | t.BishopAttacks(sq, occ)
}

// RookMask and BishopMask expose the relevant-occupancy masks.
func (t *Tables) RookMask(sq Square) Bitboard   { return t.rook[sq].mask }
func (t *Tables) BishopMask(sq Square) Bitboard { return t.bishop[sq].mask }

// RookMagic and BishopMagic expose the constants the tables were built with.
func (t *Tables) RookMagic(sq Square) uint64   { return t.rook[sq].magic }
func (t *Tables) BishopMagic(sq Square) uint64 { return t.bishop[sq].magic }
