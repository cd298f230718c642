package board

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds       = errors.New("square out of bounds")
	ErrNoPiece           = errors.New("no piece on source square")
	ErrWrongTurn         = errors.New("piece does not belong to the side to move")
	ErrUnreachable       = errors.New("piece cannot reach destination")
	ErrBadPromotion      = errors.New("invalid promotion piece")
	ErrLeavesKingInCheck = errors.New("move leaves own king in check")
)

// IllegalMoveError is returned by Apply for moves the rules reject. The board
// is left unmodified.
type IllegalMoveError struct {
	Move Move
	Err  error
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move %v: %v", e.Move, e.Err)
}

func (e *IllegalMoveError) Unwrap() error { return e.Err }

// MalformedStateError reports a board that violates its own invariants:
// a missing or duplicated king, or a piece whose position disagrees with the
// grid. It indicates caller misuse, not a game outcome.
type MalformedStateError struct {
	Reason string
}

func (e *MalformedStateError) Error() string {
	return "malformed board state: " + e.Reason
}

func malformed(format string, args ...interface{}) *MalformedStateError {
	return &MalformedStateError{Reason: fmt.Sprintf(format, args...)}
}
