// internal/game/types.go
//
// Core type definitions for a single hangman round.
// Defines:
//   - Outcome: how a finished round ended.
//   - Round: mutable guessing state for the active round.

package game

// MaxWrong is the number of wrong guesses that ends a round in a loss.
const MaxWrong = 10

// Outcome is the result of a round.
type Outcome string

const (
	OutcomePlaying Outcome = "playing"
	OutcomeWon     Outcome = "won"
	OutcomeLost    Outcome = "lost"
)

// Round holds the state of one round. The zero value is an empty round
// waiting for Start.
type Round struct {
	Word     string // secret word, lowercase
	Guessed  []rune // every accepted guess, in order
	Correct  []rune // guesses found in Word
	Wrong    []rune // guesses not found in Word
	Err      error  // pending input error, shown once on the next draw
	Finished bool
	Won      bool
}
