// models/models.go
package models

import (
	"time"
)

// SavedLetter is one slot of a saved round.
type SavedLetter struct {
	Character string `json:"character"`
	Revealed  bool   `json:"revealed"`
}

// SavedRound is the persisted form of an in-progress or finished round.
type SavedRound struct {
	ID                   string        `json:"id"`
	SecretWord           string        `json:"secretWord"`
	Letters              []SavedLetter `json:"letters"`
	OverallLettersChosen string        `json:"overallLettersChosen"`
	WrongLettersChosen   string        `json:"wrongLettersChosen"`
}

// Outcomes recorded in GameRecord.
const (
	OutcomeWin  = "win"
	OutcomeLose = "lose"
)

// GameRecord is written once per finished round.
type GameRecord struct {
	RoundID      string    `json:"round_id"`
	SecretWord   string    `json:"secret_word"`
	Outcome      string    `json:"outcome"`
	WrongGuesses int       `json:"wrong_guesses"`
	TotalGuesses int       `json:"total_guesses"`
	CreatedAt    time.Time `json:"created_at"`
}

// Stats totals the recorded games.
type Stats struct {
	TotalGames int `json:"total_games"`
	Wins       int `json:"wins"`
	Losses     int `json:"losses"`
}
