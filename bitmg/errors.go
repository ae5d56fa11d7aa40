package bitmg

import (
	"errors"
	"fmt"
)

// Sentinels wrapped by IllegalMoveError.
var (
	ErrNoMatchingMove = errors.New("no generated move matches")
	ErrMoveRejected   = errors.New("move leaves the king in check")
)

// FormatError reports a malformed position string field.
type FormatError struct {
	Field  string // "pieces", "color", "castling", "en passant" or "fen"
	Value  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid FEN %s %q: %s", e.Field, e.Value, e.Reason)
}

// IllegalMoveError reports the first move text ApplyMoveList could not play.
type IllegalMoveError struct {
	Index int    // position of the token in the list
	Text  string // the token as given
	Err   error  // ErrNoMatchingMove or ErrMoveRejected
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("move %d %q: %v", e.Index+1, e.Text, e.Err)
}

func (e *IllegalMoveError) Unwrap() error { return e.Err }
