package console

import (
	"fmt"
	"strings"

	"github.com/wfunc/hangman/game"
	"github.com/wfunc/hangman/models"
	"github.com/wfunc/hangman/state"
)

const helpText = `Guess the secret word one letter at a time.

  <letter>        guess a letter
  PRINT           show the board
  RESTART         start a new word
  SAVE [slot]     save the current round
  LOAD [slot]     resume a saved round
  STATS           show wins and losses
  HELP            show this help
  QUIT, EXIT      leave the game
`

// Board renders the state of the engine's current round.
func Board(e *game.Engine) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Word:    %s\n", e.DisplayWord())
	fmt.Fprintf(&b, "Guessed: %s\n", spaced(e.GuessedLetters()))
	fmt.Fprintf(&b, "Wrong:   %s (%d chances left)\n", spaced(e.WrongLetters()), e.RemainingChances())
	if line := ending(e.Status(), e.SecretWord()); line != "" {
		b.WriteString(line)
	}
	return b.String()
}

// Outcome renders the reply to a single guess.
func Outcome(out game.GuessOutcome) string {
	if !out.Accepted {
		switch out.Reason {
		case game.ReasonDuplicateLetter:
			return fmt.Sprintf("You already guessed %c.\n", out.Letter)
		case game.ReasonGameOver:
			return "This round is over. Type RESTART to play again.\n"
		default:
			return "Please enter a single letter, or HELP for commands.\n"
		}
	}

	var b strings.Builder
	if out.Correct {
		fmt.Fprintf(&b, "Yes, %c is in the word.\n", out.Letter)
	} else {
		fmt.Fprintf(&b, "No %c. %d chances left.\n", out.Letter, out.RemainingChances)
	}
	fmt.Fprintf(&b, "%s\n", out.DisplayWord)
	b.WriteString(ending(out.Status, out.SecretWord))
	return b.String()
}

func Stats(s models.Stats) string {
	return fmt.Sprintf("Played %d, won %d, lost %d.\n", s.TotalGames, s.Wins, s.Losses)
}

func ending(status state.Status, secret string) string {
	switch status {
	case state.Won:
		return "You won! Type RESTART to play again.\n"
	case state.Lost:
		return fmt.Sprintf("You lost. The word was %s. Type RESTART to play again.\n", secret)
	default:
		return ""
	}
}

func spaced(letters string) string {
	if letters == "" {
		return "-"
	}
	return strings.Join(strings.Split(letters, ""), " ")
}
