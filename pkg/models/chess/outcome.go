package chess

import (
	"errors"
	"fmt"
)

type OutcomeKind int8

const (
	NoScore OutcomeKind = iota
	Scored
	InvalidFormat
	NotAdjacent
	AlreadyDrawn
)

func (k OutcomeKind) String() string {
	switch k {
	case NoScore:
		return "NoScore"
	case Scored:
		return "Scored"
	case InvalidFormat:
		return "InvalidFormat"
	case NotAdjacent:
		return "NotAdjacent"
	case AlreadyDrawn:
		return "AlreadyDrawn"
	}
	return fmt.Sprintf("OutcomeKind(%d)", int8(k))
}

// Outcome is what the driving loop learns from one move request.
type Outcome struct {
	Kind  OutcomeKind `json:"kind"`
	Boxes int         `json:"boxes"`
}

// Rejected reports whether the request left the board untouched.
func (o Outcome) Rejected() bool {
	return o.Kind != NoScore && o.Kind != Scored
}

func (o Outcome) String() string {
	if o.Kind == Scored {
		return fmt.Sprintf("Scored(%d)", o.Boxes)
	}
	return o.Kind.String()
}

// Err returns the sentinel error matching a rejected outcome.
func (o Outcome) Err() error {
	switch o.Kind {
	case InvalidFormat:
		return ErrInvalidFormat
	case NotAdjacent:
		return ErrNotAdjacent
	case AlreadyDrawn:
		return ErrAlreadyDrawn
	}
	return nil
}

func OutcomeOf(err error) Outcome {
	switch {
	case errors.Is(err, ErrInvalidFormat):
		return Outcome{Kind: InvalidFormat}
	case errors.Is(err, ErrNotAdjacent):
		return Outcome{Kind: NotAdjacent}
	case errors.Is(err, ErrAlreadyDrawn):
		return Outcome{Kind: AlreadyDrawn}
	}
	return Outcome{Kind: NoScore}
}
