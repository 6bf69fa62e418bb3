package game

import "errors"

var (
	ErrBadPlacement  = errors.New("malformed placement string")
	ErrGameOver      = errors.New("game is over - no moves allowed")
	ErrIllegalMove   = errors.New("illegal move")
	ErrNothingToUndo = errors.New("no more history to undo")
)
