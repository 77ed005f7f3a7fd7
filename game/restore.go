package game

import (
	"fmt"
	"strings"

	"github.com/wfunc/hangman/words"
)

// RestoreRound rebuilds a round from saved fields and checks that they
// describe a round this package could have produced. Any inconsistency
// yields an error wrapping ErrCorruptState and no round.
func RestoreRound(id, secretWord string, slots []Slot, guessed, wrong string) (*Round, error) {
	if secretWord != "" && !words.IsWord(secretWord) {
		return nil, corrupt("secret word %q is not made of letters", secretWord)
	}
	if secretWord != strings.ToUpper(secretWord) {
		return nil, corrupt("secret word %q is not uppercase", secretWord)
	}

	wordRunes := []rune(secretWord)
	if len(slots) != len(wordRunes) {
		return nil, corrupt("%d letters saved for a %d-letter word", len(slots), len(wordRunes))
	}

	guessedRunes, err := letterSet("overall letters", guessed)
	if err != nil {
		return nil, err
	}
	wrongRunes, err := letterSet("wrong letters", wrong)
	if err != nil {
		return nil, err
	}

	inGuessed := make(map[rune]bool, len(guessedRunes))
	for _, g := range guessedRunes {
		inGuessed[g] = true
	}
	inWord := make(map[rune]bool, len(wordRunes))
	for _, c := range wordRunes {
		inWord[c] = true
	}

	for _, w := range wrongRunes {
		if !inGuessed[w] {
			return nil, corrupt("wrong letter %c was never guessed", w)
		}
		if inWord[w] {
			return nil, corrupt("wrong letter %c is in the word", w)
		}
	}
	misses := 0
	for _, g := range guessedRunes {
		if !inWord[g] {
			misses++
		}
	}
	if misses != len(wrongRunes) {
		return nil, corrupt("%d guessed letters miss the word but %d are recorded as wrong", misses, len(wrongRunes))
	}

	restored := make([]Slot, len(slots))
	for i, s := range slots {
		if s.Character != wordRunes[i] {
			return nil, corrupt("letter %d is %q, word has %q", i, s.Character, wordRunes[i])
		}
		if s.Revealed != inGuessed[s.Character] {
			return nil, corrupt("letter %d revealed=%v disagrees with the guessed letters", i, s.Revealed)
		}
		restored[i] = s
	}

	return &Round{
		id:         id,
		secretWord: secretWord,
		slots:      restored,
		guessed:    guessedRunes,
		wrong:      wrongRunes,
	}, nil
}

func letterSet(field, s string) ([]rune, error) {
	seen := make(map[rune]bool, len(s))
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if !words.IsLetter(r) || r != toUpper(r) {
			return nil, corrupt("%s contain %q", field, r)
		}
		if seen[r] {
			return nil, corrupt("%s repeat %c", field, r)
		}
		seen[r] = true
		out = append(out, r)
	}
	return out, nil
}

func corrupt(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrCorruptState}, args...)...)
}
