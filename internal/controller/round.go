package controller

import (
	"context"
	"strings"

	"github.com/IamInsane0xd/akasztofa/internal/console"
	"github.com/IamInsane0xd/akasztofa/internal/game"
	"github.com/IamInsane0xd/akasztofa/internal/store"
)

// RunRound plays one round at the current difficulty and returns its outcome.
// Round state is reset before returning, also when input fails.
func (c *Controller) RunRound(ctx context.Context) (game.Outcome, error) {
	word, err := c.words.RandomWord(c.difficulty)
	if err != nil {
		return game.OutcomePlaying, err
	}
	defer c.round.Reset()

	c.round.Start(word)
	started := c.now()
	c.logger.Info().Stringer("difficulty", c.difficulty).Int("length", len(word)).Msg("round started")

	for !c.round.Finished {
		c.drawRound()
		line, err := c.input.ReadLine()
		if err != nil {
			return game.OutcomePlaying, err
		}
		if _, err := c.round.Guess(line); err != nil {
			c.logger.Debug().Err(err).Str("input", line).Msg("guess rejected")
		}
	}

	outcome := c.round.Outcome()
	c.drawGameOver()

	res := store.Result{
		ID:         store.NewID(),
		Difficulty: c.difficulty.String(),
		Word:       c.round.Word,
		Won:        c.round.Won,
		Wrong:      len(c.round.Wrong),
		Guesses:    len(c.round.Guessed),
		StartedAt:  started,
		FinishedAt: c.now(),
	}
	if err := c.journal.Record(ctx, res); err != nil {
		c.logger.Warn().Err(err).Str("round", res.ID).Msg("record round")
	}
	c.logger.Info().Str("round", res.ID).Str("outcome", string(outcome)).Int("wrong", res.Wrong).Msg("round finished")
	return outcome, nil
}

// drawRound renders the gallows, the wrong letters, the masked word and any
// pending input error, then prompts for a guess.
func (c *Controller) drawRound() {
	d := c.display
	d.Clear()
	d.Print("\n\n")

	for i, row := range game.Frame(len(c.round.Wrong)) {
		var b strings.Builder
		b.WriteString("\t")
		b.WriteString(row)
		switch i {
		case 2:
			b.WriteString("\talready guessed but wrong: ")
			b.WriteString(c.round.WrongList())
		case 5:
			b.WriteString("\tyour word: ")
			b.WriteString(c.round.Masked())
		}
		d.Println(b.String())
	}

	if err := c.round.TakeErr(); err != nil {
		d.Printf("\n\terror: %s\n", err)
	}
	d.Print("\n\n\t\tguess: ")
}

// drawGameOver shows the win/loss banner between the two pacing pauses.
func (c *Controller) drawGameOver() {
	d := c.display
	d.Pause(c.guessPause)
	d.Clear()
	d.Println("---  GAME OVER  ---")
	d.Print("\n\n\t")
	if c.round.Won {
		d.Colored(console.DarkGreen, "YOU WIN!")
		d.Println()
	} else {
		d.Colored(console.DarkRed, "YOU LOSE!")
		d.Println()
		d.Printf("\n\nThe word was: %s\n", c.round.Word)
	}
	d.Pause(c.bannerPause)
}
