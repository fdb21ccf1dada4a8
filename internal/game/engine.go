// internal/game/engine.go
//
// Round engine.
// Responsibilities:
//   - Validate a guess line (single latin letter, not already used).
//   - Partition accepted guesses into correct and wrong letters.
//   - Track state transitions: playing → won/lost.
//   - Reset so the same Round can host the next game.
//
// Guesses and the secret word are compared in lowercase.

package game

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// Input errors. They never change round state.
var (
	ErrNotSingleChar  = errors.New("Only input one letter at a time.")
	ErrNotLatinLetter = errors.New("Only letters from the latin alphabet are allowed.")
	ErrAlreadyGuessed = errors.New("You already used that letter.")
	ErrRoundFinished  = errors.New("round finished")
)

// Start begins a round for word, discarding any previous state.
func (r *Round) Start(word string) {
	r.Reset()
	r.Word = strings.ToLower(word)
}

// Guess evaluates one line of player input and reports whether the letter was
// in the word. On an input error the error is also kept in r.Err for display.
func (r *Round) Guess(line string) (bool, error) {
	if r.Finished {
		return false, ErrRoundFinished
	}
	c, err := parseGuess(line)
	if err != nil {
		r.Err = err
		return false, err
	}
	if containsRune(r.Guessed, c) {
		r.Err = ErrAlreadyGuessed
		return false, ErrAlreadyGuessed
	}

	r.Guessed = append(r.Guessed, c)
	hit := strings.ContainsRune(r.Word, c)
	if hit {
		r.Correct = append(r.Correct, c)
	} else {
		r.Wrong = append(r.Wrong, c)
	}
	r.checkEnd()
	return hit, nil
}

// parseGuess accepts exactly one latin letter and lowercases it.
func parseGuess(line string) (rune, error) {
	if utf8.RuneCountInString(line) != 1 {
		return 0, ErrNotSingleChar
	}
	c, _ := utf8.DecodeRuneInString(line)
	switch {
	case c >= 'a' && c <= 'z':
		return c, nil
	case c >= 'A' && c <= 'Z':
		return c + ('a' - 'A'), nil
	}
	return 0, ErrNotLatinLetter
}

// checkEnd decides the outcome. Loss is checked first.
func (r *Round) checkEnd() {
	if len(r.Wrong) >= MaxWrong {
		r.Finished = true
		return
	}
	if r.Revealed() {
		r.Finished, r.Won = true, true
	}
}

// Revealed reports whether every letter of the word has been guessed.
func (r *Round) Revealed() bool {
	for _, c := range r.Word {
		if isLetter(c) && !containsRune(r.Correct, c) {
			return false
		}
	}
	return r.Word != ""
}

// Outcome reports the coarse state of the round.
func (r *Round) Outcome() Outcome {
	if r.Finished {
		if r.Won {
			return OutcomeWon
		}
		return OutcomeLost
	}
	return OutcomePlaying
}

// Masked returns the word with unguessed letters replaced by '_',
// characters separated by single spaces ("c _ t").
func (r *Round) Masked() string {
	parts := make([]string, 0, len(r.Word))
	for _, c := range r.Word {
		if isLetter(c) && !containsRune(r.Correct, c) {
			parts = append(parts, "_")
			continue
		}
		parts = append(parts, string(c))
	}
	return strings.Join(parts, " ")
}

// WrongList returns the wrong letters joined by ", ".
func (r *Round) WrongList() string {
	parts := make([]string, len(r.Wrong))
	for i, c := range r.Wrong {
		parts[i] = string(c)
	}
	return strings.Join(parts, ", ")
}

// TakeErr returns the pending input error and clears it.
func (r *Round) TakeErr() error {
	err := r.Err
	r.Err = nil
	return err
}

// Reset clears all round-local state.
func (r *Round) Reset() {
	*r = Round{}
}

func isLetter(c rune) bool { return c >= 'a' && c <= 'z' }

func containsRune(set []rune, c rune) bool {
	for _, x := range set {
		if x == c {
			return true
		}
	}
	return false
}
