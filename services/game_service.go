package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wfunc/hangman/codec"
	"github.com/wfunc/hangman/game"
	"github.com/wfunc/hangman/logger"
	"github.com/wfunc/hangman/models"
	"github.com/wfunc/hangman/monitor"
	"github.com/wfunc/hangman/persistence"
	"github.com/wfunc/hangman/state"
)

// DefaultSlot is used when SAVE or LOAD is given no slot name.
const DefaultSlot = "default"

// Guess results reported to the monitor.
const (
	ResultCorrect  = "correct"
	ResultWrong    = "wrong"
	ResultRejected = "rejected"
)

// GameService runs the engine against a store and records metrics.
type GameService struct {
	engine  *game.Engine
	store   persistence.Store
	monitor *monitor.Monitor
}

func NewGameService(engine *game.Engine, store persistence.Store, mon *monitor.Monitor) *GameService {
	s := &GameService{engine: engine, store: store, monitor: mon}

	engine.OnStatusChange(func(from, to state.Status) {
		logger.Log.Infof("Round %s: %s -> %s", engine.Round().ID(), from, to)
	})
	// NewEngine has already drawn the first round.
	s.roundStarted()
	return s
}

func (s *GameService) Engine() *game.Engine {
	return s.engine
}

func (s *GameService) Restart() {
	s.engine.Restart()
	s.roundStarted()
}

func (s *GameService) roundStarted() {
	s.monitor.IncRoundsStarted()
	logger.Log.Infof("Round %s started with a %d-letter word", s.engine.Round().ID(), len(s.engine.SecretWord()))
}

// Guess forwards input to the engine. When the guess ends the round the
// result is written to the store; a failed write is logged and does not
// affect the outcome.
func (s *GameService) Guess(ctx context.Context, input string) game.GuessOutcome {
	out := s.engine.Guess(input)

	switch {
	case !out.Accepted:
		s.monitor.IncGuess(ResultRejected)
		logger.Log.Debugf("Guess %q rejected: %s", input, out.Reason)
		return out
	case out.Correct:
		s.monitor.IncGuess(ResultCorrect)
	default:
		s.monitor.IncGuess(ResultWrong)
	}

	if out.Status.Terminal() {
		s.recordFinished(ctx, out.Status)
	}
	return out
}

func (s *GameService) recordFinished(ctx context.Context, status state.Status) {
	r := s.engine.Round()
	outcome := models.OutcomeWin
	if status == state.Lost {
		outcome = models.OutcomeLose
	}
	s.monitor.ObserveRoundFinished(outcome, r.WrongCount())

	record := models.GameRecord{
		RoundID:      r.ID(),
		SecretWord:   r.SecretWord(),
		Outcome:      outcome,
		WrongGuesses: r.WrongCount(),
		TotalGuesses: len(r.GuessedLetters()),
		CreatedAt:    time.Now(),
	}
	if err := s.store.SaveGameRecord(ctx, record); err != nil {
		logger.Log.Errorf("Failed to record round %s: %v", r.ID(), err)
	}
}

// Save writes the current round under slot.
func (s *GameService) Save(ctx context.Context, slot string) error {
	data, err := codec.Serialize(s.engine.Round())
	if err != nil {
		return err
	}
	if err := s.store.SaveRound(ctx, slot, data); err != nil {
		return err
	}
	logger.Log.Infof("Round %s saved to slot %q", s.engine.Round().ID(), slot)
	return nil
}

// Load replaces the current round with the one saved under slot. On any
// error the current round is kept.
func (s *GameService) Load(ctx context.Context, slot string) error {
	data, err := s.store.LoadRound(ctx, slot)
	if err != nil {
		return err
	}

	round, err := codec.Deserialize(data)
	if err == nil {
		err = s.engine.Load(round)
	}
	if err != nil {
		if errors.Is(err, game.ErrCorruptState) {
			s.monitor.IncCodecFailures()
		}
		logger.Log.Warnf("Refusing to load slot %q: %v", slot, err)
		return fmt.Errorf("load slot %q: %w", slot, err)
	}

	logger.Log.Infof("Round %s loaded from slot %q", round.ID(), slot)
	return nil
}

func (s *GameService) Stats(ctx context.Context) (models.Stats, error) {
	return s.store.Stats(ctx)
}
