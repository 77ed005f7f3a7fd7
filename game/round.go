package game

import (
	"strings"

	"github.com/google/uuid"

	"github.com/wfunc/hangman/state"
	"github.com/wfunc/hangman/words"
)

// Slot is one position of the secret word.
type Slot struct {
	Character rune
	Revealed  bool
}

// Round is one playthrough, from word selection to win or loss.
type Round struct {
	id         string
	secretWord string
	slots      []Slot
	guessed    []rune // every accepted letter, in guess order
	wrong      []rune // accepted letters with no slot in the word
}

// NewRound starts a round for word with every slot hidden.
func NewRound(word string) *Round {
	word = words.Normalize(word)
	slots := make([]Slot, 0, len(word))
	for _, r := range word {
		slots = append(slots, Slot{Character: r})
	}
	return &Round{
		id:         uuid.New().String(),
		secretWord: word,
		slots:      slots,
	}
}

func (r *Round) ID() string         { return r.id }
func (r *Round) SecretWord() string { return r.secretWord }

// Slots returns a copy of the slots in word order.
func (r *Round) Slots() []Slot {
	return append([]Slot(nil), r.slots...)
}

// GuessedLetters returns every accepted letter in the order it was guessed.
func (r *Round) GuessedLetters() string { return string(r.guessed) }

// WrongLetters returns the misses in the order they were guessed.
func (r *Round) WrongLetters() string { return string(r.wrong) }

func (r *Round) WrongCount() int { return len(r.wrong) }

func (r *Round) hasGuessed(letter rune) bool {
	for _, g := range r.guessed {
		if g == letter {
			return true
		}
	}
	return false
}

// reveal uncovers every hidden slot holding letter and reports how many.
func (r *Round) reveal(letter rune) int {
	n := 0
	for i := range r.slots {
		if r.slots[i].Character == letter && !r.slots[i].Revealed {
			r.slots[i].Revealed = true
			n++
		}
	}
	return n
}

// IsWon reports whether every slot is revealed. A word without letters is won.
func (r *Round) IsWon() bool {
	for _, s := range r.slots {
		if !s.Revealed {
			return false
		}
	}
	return true
}

// IsLost reports whether the misses used up chanceLimit without a win.
func (r *Round) IsLost(chanceLimit int) bool {
	return !r.IsWon() && len(r.wrong) >= chanceLimit
}

// Status derives the round status for the given chance limit.
func (r *Round) Status(chanceLimit int) state.Status {
	switch {
	case r.IsWon():
		return state.Won
	case r.IsLost(chanceLimit):
		return state.Lost
	default:
		return state.InProgress
	}
}

// DisplayWord masks hidden slots with an underscore and separates positions
// with single spaces, e.g. "_ _ _ Z Z _".
func (r *Round) DisplayWord() string {
	var b strings.Builder
	for i, s := range r.slots {
		if i > 0 {
			b.WriteByte(' ')
		}
		if s.Revealed {
			b.WriteRune(s.Character)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}
