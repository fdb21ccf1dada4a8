package menu

import (
	"github.com/IamInsane0xd/akasztofa/internal/console"
	"github.com/IamInsane0xd/akasztofa/internal/words"
)

// DifficultySetting reads and changes the difficulty used for new rounds.
type DifficultySetting interface {
	Difficulty() words.Difficulty
	SetDifficulty(words.Difficulty)
}

// TierColor is the color used to show a difficulty.
func TierColor(d words.Difficulty) console.Color {
	switch d {
	case words.Easy:
		return console.Green
	case words.Medium:
		return console.Yellow
	case words.Hard:
		return console.Red
	default:
		return console.Magenta
	}
}

// Difficulty lets the player pick a tier. The last option goes back.
type Difficulty struct {
	Hooks
	setting DifficultySetting
}

func NewDifficulty(s DifficultySetting) *Difficulty {
	return &Difficulty{setting: s}
}

func (m *Difficulty) Title() string { return "Select Difficulty" }

func (m *Difficulty) Options() []string {
	opts := make([]string, 0, len(words.Difficulties)+1)
	for _, d := range words.Difficulties {
		opts = append(opts, d.String())
	}
	return append(opts, "Back")
}

// BeforeRender shows the current difficulty in its tier color.
func (m *Difficulty) BeforeRender(d *console.Display) {
	cur := m.setting.Difficulty()
	d.Print("Current difficulty: ")
	d.Colored(TierColor(cur), cur.String())
	d.Print("\n\n")
}

func (m *Difficulty) HandleSelection(selected int) Action {
	if selected >= 1 && selected <= len(words.Difficulties) {
		m.setting.SetDifficulty(words.Difficulties[selected-1])
		return ActionRedraw
	}
	if selected == len(words.Difficulties)+1 {
		return ActionBack
	}
	return ActionNone
}
