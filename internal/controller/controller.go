// internal/controller/controller.go
//
// Game controller: navigation state machine and the round loop.
//
// States: MainMenu, DifficultyMenu, InRound (plus None before Run).
// Run drives an explicit loop; every iteration renders the current state and
// turns the result into the next state. Finished rounds and Back both funnel to
// the main menu, which is the only home state. Exit from the main menu ends Run.

package controller

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/IamInsane0xd/akasztofa/internal/console"
	"github.com/IamInsane0xd/akasztofa/internal/game"
	"github.com/IamInsane0xd/akasztofa/internal/menu"
	"github.com/IamInsane0xd/akasztofa/internal/store"
	"github.com/IamInsane0xd/akasztofa/internal/words"
)

// State is a navigation state of the controller.
type State int

const (
	StateNone State = iota
	StateMainMenu
	StateDifficultyMenu
	StateInRound
)

func (s State) String() string {
	switch s {
	case StateMainMenu:
		return "main_menu"
	case StateDifficultyMenu:
		return "difficulty_menu"
	case StateInRound:
		return "in_round"
	default:
		return "none"
	}
}

// WordSource supplies the secret word of a round.
type WordSource interface {
	RandomWord(d words.Difficulty) (string, error)
}

var errExit = errors.New("exit requested")

// Controller owns the navigation state, the selected difficulty and the active round.
type Controller struct {
	words   WordSource
	display *console.Display
	input   *console.Input
	journal store.Journal
	logger  zerolog.Logger
	now     func() time.Time

	menus      map[State]menu.Menu
	current    State
	previous   *State
	difficulty words.Difficulty
	round      game.Round

	guessPause    time.Duration
	bannerPause   time.Duration
	farewellPause time.Duration
}

// Option configures a Controller.
type Option func(*Controller)

func WithJournal(j store.Journal) Option {
	return func(c *Controller) { c.journal = j }
}

func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithDifficulty sets the difficulty of the first round. Medium otherwise.
func WithDifficulty(d words.Difficulty) Option {
	return func(c *Controller) { c.difficulty = d }
}

// WithPauses sets how long the last guess stays on screen, how long the
// win/loss banner is shown and how long the farewell is shown.
func WithPauses(guess, banner, farewell time.Duration) Option {
	return func(c *Controller) {
		c.guessPause, c.bannerPause, c.farewellPause = guess, banner, farewell
	}
}

// WithClock replaces time.Now for journal timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// New builds a controller. It does nothing until Run is called.
func New(ws WordSource, d *console.Display, in *console.Input, opts ...Option) *Controller {
	c := &Controller{
		words:         ws,
		display:       d,
		input:         in,
		journal:       store.Discard,
		logger:        zerolog.Nop(),
		now:           time.Now,
		difficulty:    words.Medium,
		guessPause:    time.Second,
		bannerPause:   3 * time.Second,
		farewellPause: 2 * time.Second,
	}
	for _, o := range opts {
		o(c)
	}
	c.menus = map[State]menu.Menu{
		StateMainMenu:       menu.NewMain(d, c.farewellPause),
		StateDifficultyMenu: menu.NewDifficulty(c),
	}
	return c
}

func (c *Controller) Difficulty() words.Difficulty { return c.difficulty }

func (c *Controller) SetDifficulty(d words.Difficulty) {
	c.logger.Debug().Stringer("difficulty", d).Msg("difficulty changed")
	c.difficulty = d
}

// State returns the current state.
func (c *Controller) State() State { return c.current }

// Previous returns the state before the last change, if any.
func (c *Controller) Previous() (State, bool) {
	if c.previous == nil {
		return StateNone, false
	}
	return *c.previous, true
}

// ChangeState records a transition. The previous state only moves when the
// target differs from the current state.
func (c *Controller) ChangeState(target State) {
	if target != c.current {
		prev := c.current
		c.previous = &prev
	}
	c.logger.Debug().Stringer("from", c.current).Stringer("to", target).Msg("change state")
	c.current = target
}

// Run shows the main menu and loops until the player exits, input ends
// (the read error is returned) or ctx is cancelled.
func (c *Controller) Run(ctx context.Context) error {
	c.ChangeState(StateMainMenu)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		next, err := c.step(ctx)
		if errors.Is(err, errExit) {
			c.logger.Info().Msg("player exited")
			return nil
		}
		if err != nil {
			return err
		}
		c.ChangeState(next)
	}
}

// step renders the current state and returns the state to move to.
func (c *Controller) step(ctx context.Context) (State, error) {
	if c.current == StateInRound {
		if _, err := c.RunRound(ctx); err != nil {
			return StateNone, err
		}
		return StateMainMenu, nil
	}

	m, ok := c.menus[c.current]
	if !ok {
		return StateNone, fmt.Errorf("controller: no menu for state %s", c.current)
	}
	a, err := menu.Run(m, c.display, c.input)
	if err != nil {
		return StateNone, err
	}
	c.logger.Debug().Stringer("state", c.current).Stringer("action", a).Msg("menu selection")

	switch a {
	case menu.ActionStartRound:
		return StateInRound, nil
	case menu.ActionDifficulty:
		return StateDifficultyMenu, nil
	case menu.ActionRedraw:
		return c.current, nil
	case menu.ActionBack:
		if prev, ok := c.Previous(); ok && prev != StateNone {
			return prev, nil
		}
		return StateMainMenu, nil
	case menu.ActionExit:
		return StateNone, errExit
	default:
		return StateMainMenu, nil
	}
}
