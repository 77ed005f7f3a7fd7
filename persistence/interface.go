// persistence/interface.go
package persistence

import (
	"context"
	"errors"

	"github.com/wfunc/hangman/models"
)

// Store keeps saved rounds by slot name and the history of finished rounds.
type Store interface {
	// SaveRound creates or replaces the round saved under slot.
	SaveRound(ctx context.Context, slot string, data []byte) error
	// LoadRound returns ErrRecordNotFound when slot was never saved.
	LoadRound(ctx context.Context, slot string) ([]byte, error)
	// SaveGameRecord stores a finished round. Recording the same round twice
	// keeps the first record.
	SaveGameRecord(ctx context.Context, record models.GameRecord) error
	Stats(ctx context.Context) (models.Stats, error)
	Close() error
}

var (
	ErrRecordNotFound = errors.New("record not found")
)
