// Package words supplies secret words to the game engine.
package words

import (
	"bufio"
	"errors"
	"io"
	"math/rand/v2"
	"os"
	"strings"
	"unicode"

	"github.com/wfunc/hangman/logger"
)

// FallbackWord is played when the dictionary cannot supply a word.
const FallbackWord = "JAZZED"

const (
	DefaultMinWordSize = 5
	DefaultMaxWordSize = 12
)

// Source hands out secret words. SelectWord never fails: implementations
// degrade to FallbackWord instead.
type Source interface {
	SelectWord() string
}

// Dictionary picks words from a newline-separated file. The file is read on
// every call so edits are picked up between rounds.
type Dictionary struct {
	Path    string
	MinSize int
	MaxSize int

	rng *rand.Rand
}

func NewDictionary(path string, minSize, maxSize int) *Dictionary {
	return &Dictionary{Path: path, MinSize: minSize, MaxSize: maxSize}
}

// WithRand makes selection deterministic.
func (d *Dictionary) WithRand(rng *rand.Rand) *Dictionary {
	d.rng = rng
	return d
}

// SelectWord returns an uppercase word whose length is within
// [MinSize, MaxSize], chosen uniformly among the qualifying entries.
func (d *Dictionary) SelectWord() string {
	candidates, err := d.load()
	if err != nil {
		logger.Log.Warnf("Dictionary %s is unavailable (%v), using default word %s", d.Path, err, FallbackWord)
		return FallbackWord
	}
	if len(candidates) == 0 {
		logger.Log.Warnf("Dictionary %s has no words of %d to %d letters, using default word %s",
			d.Path, d.MinSize, d.MaxSize, FallbackWord)
		return FallbackWord
	}

	var i int
	if d.rng != nil {
		i = d.rng.IntN(len(candidates))
	} else {
		i = rand.IntN(len(candidates))
	}
	return candidates[i]
}

func (d *Dictionary) load() ([]string, error) {
	f, err := os.Open(d.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// Lines of any length are read; oversized ones fail the size filter.
	var out []string
	br := bufio.NewReader(f)
	for {
		line, err := br.ReadString('\n')
		if w := Normalize(line); w != "" {
			if n := len(w); n >= d.MinSize && n <= d.MaxSize && IsWord(w) {
				out = append(out, w)
			}
		}
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// Normalize trims surrounding space and uppercases w.
func Normalize(w string) string {
	return strings.ToUpper(strings.TrimSpace(w))
}

// IsWord reports whether w is non-empty and made only of ASCII letters.
func IsWord(w string) bool {
	if w == "" {
		return false
	}
	for _, r := range w {
		if !IsLetter(r) {
			return false
		}
	}
	return true
}

// IsLetter reports whether r is an ASCII letter of either case.
func IsLetter(r rune) bool {
	return r <= unicode.MaxASCII && unicode.IsLetter(r)
}

// Static always returns the same word. Used for the --word flag and tests.
type Static string

func (s Static) SelectWord() string {
	return Normalize(string(s))
}
