package game

import (
	"errors"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrDuplicateLetter = errors.New("duplicate letter")
	ErrGameOver        = errors.New("game over")
	ErrCorruptState    = errors.New("corrupt saved state")
)

// Reason explains why a guess was rejected.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonGameOver
	ReasonInvalidInput
	ReasonDuplicateLetter
)

func (r Reason) String() string {
	if err := r.Err(); err != nil {
		return err.Error()
	}
	return ""
}

// Err maps the reason to its sentinel error, nil for ReasonNone.
func (r Reason) Err() error {
	switch r {
	case ReasonGameOver:
		return ErrGameOver
	case ReasonInvalidInput:
		return ErrInvalidInput
	case ReasonDuplicateLetter:
		return ErrDuplicateLetter
	default:
		return nil
	}
}
