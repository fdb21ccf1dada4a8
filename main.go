// main.go
//
// Entry point: configuration, logging, word bank, round journal and the
// game controller, wired together and run on stdin/stdout.

package main

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/IamInsane0xd/akasztofa/internal/config"
	"github.com/IamInsane0xd/akasztofa/internal/console"
	"github.com/IamInsane0xd/akasztofa/internal/controller"
	"github.com/IamInsane0xd/akasztofa/internal/store"
	"github.com/IamInsane0xd/akasztofa/internal/words"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	closeLog := setupLogging(cfg)
	defer closeLog()

	ctx := context.Background()

	bank, err := loadWords(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}
	if err := bank.Validate(); err != nil {
		log.Fatal().Err(err).Msg("word list cannot serve every difficulty")
	}
	stats := bank.Stats()
	log.Debug().
		Int("easy", stats[words.Easy]).
		Int("medium", stats[words.Medium]).
		Int("hard", stats[words.Hard]).
		Int("extreme", stats[words.Extreme]).
		Msg("word list loaded")

	journal := store.Discard
	if cfg.HistoryDB != "" {
		j, err := store.OpenSQLite(ctx, cfg.HistoryDB)
		if err != nil {
			log.Fatal().Err(err).Str("dsn", cfg.HistoryDB).Msg("failed to open history database")
		}
		defer j.Close()
		if recent, err := j.Recent(ctx, 1); err == nil && len(recent) > 0 {
			log.Debug().Str("round", recent[0].ID).Time("finished", recent[0].FinishedAt).Msg("last recorded round")
		}
		journal = j
	}

	c := controller.New(bank,
		console.NewDisplay(os.Stdout),
		console.NewInput(os.Stdin),
		controller.WithJournal(journal),
		controller.WithLogger(log.Logger),
		controller.WithDifficulty(cfg.Difficulty),
		controller.WithPauses(cfg.GuessPause, cfg.BannerPause, cfg.FarewellPause),
	)

	switch err := c.Run(ctx); {
	case err == nil:
	case errors.Is(err, io.EOF):
		log.Info().Msg("input closed")
	default:
		log.Fatal().Err(err).Msg("game stopped")
	}
}

// loadWords reads HANGMAN_WORDS_FILE when set, the embedded list otherwise.
func loadWords(cfg config.Config) (*words.Bank, error) {
	src := words.WithSource(words.NewSource(cfg.Seed))
	if cfg.WordsFile != "" {
		return words.Load(cfg.WordsFile, src)
	}
	return words.LoadDefault(src)
}

// setupLogging points the global logger at LOG_FILE (JSON) or stderr (console format).
// stdout belongs to the game screen.
func setupLogging(cfg config.Config) func() {
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.LogFile == "" {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		return func() {}
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.LogFile).Msg("failed to open log file")
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return func() { _ = f.Close() }
}
