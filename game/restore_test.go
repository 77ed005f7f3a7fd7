package game

import (
	"errors"
	"testing"
)

func slotsFor(word, revealed string) []Slot {
	out := make([]Slot, 0, len(word))
	for _, r := range word {
		s := Slot{Character: r}
		for _, v := range revealed {
			if v == r {
				s.Revealed = true
			}
		}
		out = append(out, s)
	}
	return out
}

func TestRestoreRound_Valid(t *testing.T) {
	r, err := RestoreRound("id-1", "JAZZED", slotsFor("JAZZED", "Z"), "QZ", "Q")
	if err != nil {
		t.Fatalf("RestoreRound failed: %v", err)
	}
	if r.ID() != "id-1" || r.DisplayWord() != "_ _ _ Z Z _" {
		t.Errorf("Unexpected round: id %q display %q", r.ID(), r.DisplayWord())
	}
	if r.GuessedLetters() != "QZ" || r.WrongLetters() != "Q" {
		t.Errorf("Guess order not kept: %q / %q", r.GuessedLetters(), r.WrongLetters())
	}
}

func TestRestoreRound_EmptyWord(t *testing.T) {
	r, err := RestoreRound("", "", nil, "", "")
	if err != nil {
		t.Fatalf("An empty round should restore, got: %v", err)
	}
	if !r.IsWon() {
		t.Error("An empty round should be won")
	}
}

func TestRestoreRound_Corrupt(t *testing.T) {
	tests := []struct {
		name    string
		word    string
		slots   []Slot
		guessed string
		wrong   string
	}{
		{"lowercase word", "crane", slotsFor("crane", ""), "", ""},
		{"digits in word", "CR4NE", slotsFor("CR4NE", ""), "", ""},
		{"slot count", "CRANE", slotsFor("CRAN", ""), "", ""},
		{"slot character", "CRANE", slotsFor("CRONE", ""), "", ""},
		{"revealed but not guessed", "CRANE", slotsFor("CRANE", "C"), "", ""},
		{"guessed but hidden", "CRANE", slotsFor("CRANE", ""), "C", ""},
		{"wrong not guessed", "CRANE", slotsFor("CRANE", ""), "", "Q"},
		{"wrong in word", "CRANE", slotsFor("CRANE", "C"), "C", "C"},
		{"miss not recorded", "CRANE", slotsFor("CRANE", ""), "Q", ""},
		{"duplicate guess", "CRANE", slotsFor("CRANE", ""), "QQ", "Q"},
		{"lowercase guess", "CRANE", slotsFor("CRANE", ""), "q", "q"},
		{"symbol guess", "CRANE", slotsFor("CRANE", ""), "!", "!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := RestoreRound("id", tt.word, tt.slots, tt.guessed, tt.wrong)
			if !errors.Is(err, ErrCorruptState) {
				t.Fatalf("Expected ErrCorruptState, got %v", err)
			}
			if r != nil {
				t.Error("No round should be returned on error")
			}
		})
	}
}
