// Package codec converts rounds to and from their saved form.
package codec

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/wfunc/hangman/game"
	"github.com/wfunc/hangman/models"
)

// Serialize encodes r as JSON.
func Serialize(r *game.Round) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("serialize: nil round")
	}
	return json.Marshal(ToSaved(r))
}

// Deserialize decodes data produced by Serialize. Any malformed input fails
// with an error wrapping game.ErrCorruptState.
func Deserialize(data []byte) (*game.Round, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", game.ErrCorruptState, err)
	}
	for _, key := range requiredFields {
		if _, ok := fields[key]; !ok {
			return nil, fmt.Errorf("%w: missing %q", game.ErrCorruptState, key)
		}
	}

	var saved models.SavedRound
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, fmt.Errorf("%w: %v", game.ErrCorruptState, err)
	}
	return FromSaved(saved)
}

// requiredFields are the keys Serialize always writes.
var requiredFields = []string{"id", "secretWord", "letters", "overallLettersChosen", "wrongLettersChosen"}

// ToSaved copies r into the persisted record shape.
func ToSaved(r *game.Round) models.SavedRound {
	slots := r.Slots()
	letters := make([]models.SavedLetter, len(slots))
	for i, s := range slots {
		letters[i] = models.SavedLetter{Character: string(s.Character), Revealed: s.Revealed}
	}
	return models.SavedRound{
		ID:                   r.ID(),
		SecretWord:           r.SecretWord(),
		Letters:              letters,
		OverallLettersChosen: r.GuessedLetters(),
		WrongLettersChosen:   r.WrongLetters(),
	}
}

// FromSaved validates saved and rebuilds the round it describes.
func FromSaved(saved models.SavedRound) (*game.Round, error) {
	if saved.ID == "" {
		return nil, fmt.Errorf("%w: round has no id", game.ErrCorruptState)
	}
	slots := make([]game.Slot, len(saved.Letters))
	for i, l := range saved.Letters {
		if utf8.RuneCountInString(l.Character) != 1 {
			return nil, fmt.Errorf("%w: letter %d is %q", game.ErrCorruptState, i, l.Character)
		}
		r, _ := utf8.DecodeRuneInString(l.Character)
		slots[i] = game.Slot{Character: r, Revealed: l.Revealed}
	}
	return game.RestoreRound(saved.ID, saved.SecretWord, slots, saved.OverallLettersChosen, saved.WrongLettersChosen)
}
