// Package game implements the hangman round and the engine that drives it.
//
// The engine does no I/O. Words come from a words.Source, persistence goes
// through the codec package, and rendering is left to the caller.
package game

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/wfunc/hangman/state"
	"github.com/wfunc/hangman/words"
)

const (
	DefaultChanceLimit    = 7
	DefaultDictionaryPath = "google-10000-english-no-swears.txt"
)

type Config struct {
	MinWordSize    int
	MaxWordSize    int
	ChanceLimit    int
	DictionaryPath string
}

func DefaultConfig() Config {
	return Config{
		MinWordSize:    words.DefaultMinWordSize,
		MaxWordSize:    words.DefaultMaxWordSize,
		ChanceLimit:    DefaultChanceLimit,
		DictionaryPath: DefaultDictionaryPath,
	}
}

// GuessOutcome describes the result of one Guess call.
type GuessOutcome struct {
	Letter           rune
	Accepted         bool
	Reason           Reason
	Correct          bool
	DisplayWord      string
	RemainingChances int
	Status           state.Status
	SecretWord       string // only set once the round is lost
}

// Err returns the sentinel error for a rejected guess, nil otherwise.
func (o GuessOutcome) Err() error {
	return o.Reason.Err()
}

// Engine owns the current round.
type Engine struct {
	cfg     Config
	source  words.Source
	round   *Round
	machine *state.Machine
}

// NewEngine builds an engine and starts its first round. A nil source reads
// from cfg.DictionaryPath.
func NewEngine(cfg Config, source words.Source) *Engine {
	if source == nil {
		source = words.NewDictionary(cfg.DictionaryPath, cfg.MinWordSize, cfg.MaxWordSize)
	}
	e := &Engine{
		cfg:     cfg,
		source:  source,
		machine: state.NewMachine(),
	}
	e.Restart()
	return e
}

func (e *Engine) Config() Config { return e.cfg }

// OnStatusChange registers fn to run whenever the round status changes.
func (e *Engine) OnStatusChange(fn state.Listener) {
	e.machine.OnEnter(fn)
}

// Restart discards the current round and starts a new one.
func (e *Engine) Restart() {
	e.round = NewRound(e.source.SelectWord())
	e.machine.Reset(e.round.Status(e.cfg.ChanceLimit))
}

// Load replaces the current round with r, typically one read back by the
// codec. The round must fit this engine's chance limit.
func (e *Engine) Load(r *Round) error {
	if r == nil {
		return fmt.Errorf("%w: no round", ErrCorruptState)
	}
	if r.WrongCount() > e.cfg.ChanceLimit {
		return fmt.Errorf("%w: %d wrong letters exceed the limit of %d", ErrCorruptState, r.WrongCount(), e.cfg.ChanceLimit)
	}
	e.round = r
	e.machine.Reset(r.Status(e.cfg.ChanceLimit))
	return nil
}

// Guess validates input and applies it to the round. Rejected guesses leave
// the round untouched.
func (e *Engine) Guess(input string) GuessOutcome {
	if e.IsOver() {
		return e.rejected(0, ReasonGameOver)
	}

	letter, ok := parseLetter(input)
	if !ok {
		return e.rejected(0, ReasonInvalidInput)
	}
	if e.round.hasGuessed(letter) {
		return e.rejected(letter, ReasonDuplicateLetter)
	}

	revealed := e.round.reveal(letter)
	e.round.guessed = append(e.round.guessed, letter)
	if revealed == 0 {
		e.round.wrong = append(e.round.wrong, letter)
	}

	// InProgress may move to any status, so this cannot fail.
	_ = e.machine.ChangeState(e.round.Status(e.cfg.ChanceLimit))

	out := e.outcome(letter)
	out.Accepted = true
	out.Correct = revealed > 0
	return out
}

func (e *Engine) rejected(letter rune, reason Reason) GuessOutcome {
	out := e.outcome(letter)
	out.Reason = reason
	return out
}

func (e *Engine) outcome(letter rune) GuessOutcome {
	out := GuessOutcome{
		Letter:           letter,
		DisplayWord:      e.round.DisplayWord(),
		RemainingChances: e.RemainingChances(),
		Status:           e.Status(),
	}
	if out.Status == state.Lost {
		out.SecretWord = e.round.SecretWord()
	}
	return out
}

// parseLetter accepts exactly one ASCII letter and returns it uppercased.
func parseLetter(input string) (rune, bool) {
	if utf8.RuneCountInString(input) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(input)
	if !words.IsLetter(r) {
		return 0, false
	}
	return toUpper(r), true
}

func toUpper(r rune) rune {
	return unicode.ToUpper(r)
}

func (e *Engine) Round() *Round          { return e.round }
func (e *Engine) DisplayWord() string    { return e.round.DisplayWord() }
func (e *Engine) SecretWord() string     { return e.round.SecretWord() }
func (e *Engine) GuessedLetters() string { return e.round.GuessedLetters() }
func (e *Engine) WrongLetters() string   { return e.round.WrongLetters() }
func (e *Engine) Status() state.Status   { return e.round.Status(e.cfg.ChanceLimit) }
func (e *Engine) IsWon() bool            { return e.round.IsWon() }
func (e *Engine) IsLost() bool           { return e.round.IsLost(e.cfg.ChanceLimit) }
func (e *Engine) IsOver() bool           { return e.IsWon() || e.IsLost() }

// RemainingChances is how many more misses the round tolerates.
func (e *Engine) RemainingChances() int {
	if n := e.cfg.ChanceLimit - e.round.WrongCount(); n > 0 {
		return n
	}
	return 0
}
