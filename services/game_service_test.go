package services

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/wfunc/hangman/game"
	"github.com/wfunc/hangman/models"
	"github.com/wfunc/hangman/monitor"
	"github.com/wfunc/hangman/persistence"
	"github.com/wfunc/hangman/words"
)

// failingStore rejects every write.
type failingStore struct {
	*persistence.MemoryStore
}

func (failingStore) SaveGameRecord(ctx context.Context, record models.GameRecord) error {
	return errors.New("disk full")
}

func newTestService(word string, store persistence.Store) (*GameService, *monitor.Monitor) {
	mon := monitor.NewMonitor("test")
	engine := game.NewEngine(game.DefaultConfig(), words.Static(word))
	return NewGameService(engine, store, mon), mon
}

func play(s *GameService, letters string) game.GuessOutcome {
	var out game.GuessOutcome
	for _, l := range letters {
		out = s.Guess(context.Background(), string(l))
	}
	return out
}

func TestGameService_RecordsFinishedRounds(t *testing.T) {
	store := persistence.NewMemoryStore()
	s, mon := newTestService("CRANE", store)

	play(s, "XCRANE")
	s.Guess(context.Background(), "Q") // rejected, must not record again
	s.Restart()
	play(s, "BDFGHIJ")

	stats, err := s.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats != (models.Stats{TotalGames: 2, Wins: 1, Losses: 1}) {
		t.Errorf("Unexpected stats %+v", stats)
	}

	m := mon.Metrics()
	if got := testutil.ToFloat64(m.RoundsStarted); got != 2 {
		t.Errorf("Expected 2 rounds started, got %v", got)
	}
	if got := testutil.ToFloat64(m.Guesses.WithLabelValues(ResultCorrect)); got != 5 {
		t.Errorf("Expected 5 correct guesses, got %v", got)
	}
	if got := testutil.ToFloat64(m.Guesses.WithLabelValues(ResultWrong)); got != 8 {
		t.Errorf("Expected 8 wrong guesses, got %v", got)
	}
	if got := testutil.ToFloat64(m.Guesses.WithLabelValues(ResultRejected)); got != 1 {
		t.Errorf("Expected 1 rejected guess, got %v", got)
	}
	if got := testutil.ToFloat64(m.RoundsFinished.WithLabelValues(models.OutcomeLose)); got != 1 {
		t.Errorf("Expected 1 lost round, got %v", got)
	}
}

func TestGameService_RecordFailureDoesNotBreakGuess(t *testing.T) {
	s, _ := newTestService("CRANE", failingStore{persistence.NewMemoryStore()})

	out := play(s, "CRANE")
	if !out.Accepted || !s.Engine().IsWon() {
		t.Errorf("Expected the winning guess to go through, got %+v", out)
	}
}

func TestGameService_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	store := persistence.NewMemoryStore()

	s, _ := newTestService("JAZZED", store)
	play(s, "ZQ")
	if err := s.Save(ctx, DefaultSlot); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	other, _ := newTestService("CRANE", store)
	if err := other.Load(ctx, DefaultSlot); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	e := other.Engine()
	if e.SecretWord() != "JAZZED" || e.DisplayWord() != "_ _ _ Z Z _" || e.RemainingChances() != 6 {
		t.Errorf("Unexpected loaded round %q %q %d", e.SecretWord(), e.DisplayWord(), e.RemainingChances())
	}
}

func TestGameService_LoadMissingSlot(t *testing.T) {
	s, _ := newTestService("CRANE", persistence.NewMemoryStore())
	if err := s.Load(context.Background(), "nope"); !errors.Is(err, persistence.ErrRecordNotFound) {
		t.Errorf("Expected ErrRecordNotFound, got %v", err)
	}
}

func TestGameService_LoadCorrupt(t *testing.T) {
	ctx := context.Background()
	store := persistence.NewMemoryStore()
	_ = store.SaveRound(ctx, "bad", []byte(`{"secretWord":"CRANE","letters":[]}`))

	s, mon := newTestService("BRAVE", store)
	play(s, "B")

	err := s.Load(ctx, "bad")
	if !errors.Is(err, game.ErrCorruptState) {
		t.Fatalf("Expected ErrCorruptState, got %v", err)
	}
	if s.Engine().SecretWord() != "BRAVE" || s.Engine().GuessedLetters() != "B" {
		t.Error("A corrupt load must keep the current round")
	}
	if got := testutil.ToFloat64(mon.Metrics().CodecFailures); got != 1 {
		t.Errorf("Expected 1 codec failure, got %v", got)
	}
}

func TestGameService_LoadTooManyMisses(t *testing.T) {
	ctx := context.Background()
	store := persistence.NewMemoryStore()

	lenient := game.DefaultConfig()
	lenient.ChanceLimit = 10
	src := NewGameService(game.NewEngine(lenient, words.Static("CRANE")), store, monitor.NewMonitor("a"))
	play(src, "BDFGHIJK")
	if err := src.Save(ctx, DefaultSlot); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	strict, _ := newTestService("BRAVE", store)
	if err := strict.Load(ctx, DefaultSlot); !errors.Is(err, game.ErrCorruptState) {
		t.Errorf("Expected ErrCorruptState for 8 misses against 7 chances, got %v", err)
	}
}
