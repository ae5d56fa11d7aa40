package bitmg

// Perft counts the leaf nodes of the legal move tree to the given depth.
// Depth 0 counts the position itself.
func Perft(p Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	pc := perftCtx{tables: DefaultTables(), bufs: make([][]Move, depth+1)}
	return pc.perft(&p, depth)
}

// perftCtx keeps one move buffer per depth so the recursion does not allocate.
type perftCtx struct {
	tables *Tables
	bufs   [][]Move
}

func (pc *perftCtx) bufFor(depth int) []Move {
	if pc.bufs[depth] == nil {
		pc.bufs[depth] = make([]Move, 0, 256)
	}
	return pc.bufs[depth][:0]
}

func (pc *perftCtx) perft(p *Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := p.generateInto(pc.tables, pc.bufFor(depth))
	pc.bufs[depth] = moves
	var nodes uint64
	for _, m := range moves {
		next, ok := p.apply(pc.tables, m)
		if !ok {
			continue
		}
		if depth == 1 {
			nodes++
			continue
		}
		nodes += pc.perft(&next, depth-1)
	}
	return nodes
}

// PerftDivide returns a map from each legal root move to the number of leaf nodes
// reachable from that move at the given depth. Useful for debugging.
func PerftDivide(p Position, depth int) map[Move]uint64 {
	result := make(map[Move]uint64)
	if depth <= 0 {
		return result
	}
	for _, m := range p.GenerateMoves() {
		if next, ok := p.Apply(m); ok {
			result[m] = Perft(next, depth-1)
		}
	}
	return result
}
