package menu

import (
	"time"

	"github.com/IamInsane0xd/akasztofa/internal/console"
)

const (
	mainStart = iota + 1
	mainDifficulty
	mainExit
)

// Main is the home menu: start a round, change difficulty or exit.
type Main struct {
	Hooks
	display  *console.Display
	farewell time.Duration
}

// NewMain returns the main menu. farewell is how long the goodbye message stays up.
func NewMain(d *console.Display, farewell time.Duration) *Main {
	return &Main{display: d, farewell: farewell}
}

func (m *Main) Title() string { return "Main Menu" }

func (m *Main) Options() []string {
	return []string{"Start", "Change Difficulty", "Exit"}
}

func (m *Main) HandleSelection(selected int) Action {
	switch selected {
	case mainStart:
		return ActionStartRound
	case mainDifficulty:
		return ActionDifficulty
	case mainExit:
		m.display.Clear()
		m.display.Colored(console.DarkGreen, "Goodbye!")
		m.display.Println()
		m.display.Pause(m.farewell)
		m.display.Clear()
		return ActionExit
	}
	return ActionNone
}
