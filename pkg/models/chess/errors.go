package chess

import "errors"

var (
	ErrInvalidFormat = errors.New("invalid move format")
	ErrNotAdjacent   = errors.New("dots are not adjacent")
	ErrAlreadyDrawn  = errors.New("dots are already connected")
	ErrBoardSize     = errors.New("board size out of range")
)
