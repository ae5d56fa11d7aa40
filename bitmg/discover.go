package bitmg

// DefaultSeed is the seed the shipped constants were searched with.
const DefaultSeed uint64 = 123

// Xorshift is a 64-bit xorshift* generator. It carries its own state so
// searches can be reproduced and run side by side.
type Xorshift struct {
	state uint64
}

// NewXorshift returns a generator seeded with seed. The state must be
// nonzero, so a zero seed is replaced by DefaultSeed.
func NewXorshift(seed uint64) *Xorshift {
	if seed == 0 {
		seed = DefaultSeed
	}
	return &Xorshift{state: seed}
}

// Uint64 advances the generator and returns the next value.
func (x *Xorshift) Uint64() uint64 {
	x.state ^= x.state >> 12
	x.state ^= x.state << 25
	x.state ^= x.state >> 27
	return x.state * 0x2545F4914F6CDD1D
}

// Sparse returns the AND of three draws. Few set bits hash better.
func (x *Xorshift) Sparse() uint64 {
	return x.Uint64() & x.Uint64() & x.Uint64()
}

// CheckMagic reports whether magic maps every subset of mask to a distinct
// index of a 1<<bits table.
func CheckMagic(mask Bitboard, magic uint64, bits uint) bool {
	used := make([]bool, 1<<bits)
	n := uint64(1) << uint(mask.Count())
	for idx := uint64(0); idx < n; idx++ {
		i := magicIndex(pdep(idx, mask), magic, bits)
		if used[i] {
			return false
		}
		used[i] = true
	}
	return true
}

// FindMagic draws sparse candidates until one passes CheckMagic and returns
// it with the number of candidates tried. The search has no upper bound and
// belongs in offline tooling only.
func FindMagic(mask Bitboard, bits uint, rng *Xorshift) (uint64, int) {
	for attempts := 1; ; attempts++ {
		candidate := rng.Sparse()
		if CheckMagic(mask, candidate, bits) {
			return candidate, attempts
		}
	}
}

// DiscoveryReport describes one square of a DiscoverMagics run.
type DiscoveryReport struct {
	Square   Square
	Piece    PieceType
	Magic    uint64
	Attempts int
}

// DiscoverMagics searches new rook and bishop constants for every square,
// rook first then bishop for each square in ascending order. progress, when
// non-nil, is called after each constant is found.
func DiscoverMagics(rng *Xorshift, progress func(DiscoveryReport)) (rook, bishop [64]uint64) {
	for sq := Square(0); sq < 64; sq++ {
		var n int
		rook[sq], n = FindMagic(relevantMask(sq, rookSlider.deltas), RookBits, rng)
		if progress != nil {
			progress(DiscoveryReport{Square: sq, Piece: Rook, Magic: rook[sq], Attempts: n})
		}
		bishop[sq], n = FindMagic(relevantMask(sq, bishopSlider.deltas), BishopBits, rng)
		if progress != nil {
			progress(DiscoveryReport{Square: sq, Piece: Bishop, Magic: bishop[sq], Attempts: n})
		}
	}
	return rook, bishop
}
