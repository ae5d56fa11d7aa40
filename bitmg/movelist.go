package bitmg

// FindMove returns the generated move whose coordinate text equals text.
func (p *Position) FindMove(text string) (Move, bool) {
	var buf [256]Move
	for _, m := range p.GenerateMovesInto(buf[:0]) {
		if m.String() == text {
			return m, true
		}
	}
	return 0, false
}

// ApplyMoveList plays each coordinate-notation move in order. It stops at the
// first token that matches no generated move or whose move is rejected, and
// returns the position reached before that token with an *IllegalMoveError.
func ApplyMoveList(p Position, texts []string) (Position, error) {
	for i, text := range texts {
		m, ok := p.FindMove(text)
		if !ok {
			return p, &IllegalMoveError{Index: i, Text: text, Err: ErrNoMatchingMove}
		}
		next, ok := p.Apply(m)
		if !ok {
			return p, &IllegalMoveError{Index: i, Text: text, Err: ErrMoveRejected}
		}
		p = next
	}
	return p, nil
}
