// internal/menu/menu.go
//
// Numbered option menus.
//
// Layout:
//   {BeforeRender}
//   ====  Title  ====
//   1. option
//   2. option
//   ====  -----  ====
//
//   {AfterRender}
//   ? <input>
//
// Run redraws the menu until the player enters a number in [1, len(options)],
// then hands the selection to the menu's HandleSelection.

package menu

import (
	"strconv"
	"strings"

	"github.com/IamInsane0xd/akasztofa/internal/console"
)

// Action tells the controller what to do after a menu selection.
type Action int

const (
	ActionNone       Action = iota
	ActionStartRound        // play a round, then return to the main menu
	ActionDifficulty        // open the difficulty menu
	ActionRedraw            // show the same menu again
	ActionBack              // go back to the previous state
	ActionExit              // leave the program
)

func (a Action) String() string {
	switch a {
	case ActionStartRound:
		return "start_round"
	case ActionDifficulty:
		return "difficulty"
	case ActionRedraw:
		return "redraw"
	case ActionBack:
		return "back"
	case ActionExit:
		return "exit"
	default:
		return "none"
	}
}

// Menu is a titled list of options with optional extra content around it.
type Menu interface {
	Title() string
	Options() []string
	// BeforeRender draws content above the title.
	BeforeRender(d *console.Display)
	// AfterRender draws content between the option list and the prompt.
	AfterRender(d *console.Display)
	// HandleSelection interprets a 1-based option index.
	HandleSelection(selected int) Action
}

// Hooks provides no-op render hooks for menus that need none.
type Hooks struct{}

func (Hooks) BeforeRender(*console.Display) {}
func (Hooks) AfterRender(*console.Display)  {}

// Run draws m and reads input until a valid option is chosen, then dispatches it.
// It only returns an error when input cannot be read.
func Run(m Menu, d *console.Display, in *console.Input) (Action, error) {
	opts := m.Options()
	title := m.Title()
	for attempt := 0; ; attempt++ {
		d.Clear()
		m.BeforeRender(d)

		d.Printf("====  %s  ====\n", title)
		for i, o := range opts {
			d.Printf("%d. %s\n", i+1, o)
		}
		d.Printf("====  %s  ====\n\n", strings.Repeat("-", len(title)))

		m.AfterRender(d)
		if attempt > 0 {
			d.Println("Error!")
		}
		d.Print("? ")

		line, err := in.ReadLine()
		if err != nil {
			return ActionNone, err
		}
		if n, ok := parseSelection(line, len(opts)); ok {
			return m.HandleSelection(n), nil
		}
	}
}

func parseSelection(line string, count int) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || n < 1 || n > count {
		return 0, false
	}
	return n, true
}
