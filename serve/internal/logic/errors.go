package logic

import "errors"

var (
	BoardSizeOutOfRangeErr = errors.New("board size out of range")
	GameNotFoundErr        = errors.New("game not found")
	InvalidGameUidErr      = errors.New("invalid game id")
	GameOverErr            = errors.New("game is over")
	NotYourTurnErr         = errors.New("it is the computer's turn")
	UnknownPlayerErr       = errors.New("unknown player kind")
	UnknownFirstPlayerErr  = errors.New("first player must be A or B")
)
