// internal/words/difficulty.go
//
// Difficulty tiers. Each tier owns its own pool of words in a Bank.

package words

import "strings"

// Difficulty selects which tier of the word list a round draws from.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Extreme
)

// Difficulties lists every tier in menu order.
var Difficulties = []Difficulty{Easy, Medium, Hard, Extreme}

// String returns the display name of the tier.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	case Extreme:
		return "Extreme"
	default:
		return "Unknown"
	}
}

// Valid reports whether d is one of the four tiers.
func (d Difficulty) Valid() bool {
	return d >= Easy && d <= Extreme
}

// marker is the tier-open line used in word list files ("#easy", ...).
func (d Difficulty) marker() string {
	return "#" + strings.ToLower(d.String())
}

// ParseDifficulty converts a name such as "hard" (case-insensitive) to a Difficulty.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, true
	case "medium":
		return Medium, true
	case "hard":
		return Hard, true
	case "extreme":
		return Extreme, true
	default:
		return Medium, false
	}
}
