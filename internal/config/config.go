// internal/config/config.go
//
// Process configuration from the environment, optionally seeded from a .env file.
//
// Environment variables:
//   HANGMAN_WORDS_FILE=/path/to/words.txt   (default: embedded list)
//   HANGMAN_DIFFICULTY=easy|medium|hard|extreme (default: medium)
//   HANGMAN_SEED=42                          (default: 0, time based)
//   HANGMAN_HISTORY_DB=./data/history.db     (default: no journal)
//   HANGMAN_GUESS_PAUSE=1s
//   HANGMAN_BANNER_PAUSE=3s
//   HANGMAN_FAREWELL_PAUSE=2s
//   LOG_LEVEL=warn
//   LOG_FILE=/path/to/hangman.log            (default: stderr)

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/IamInsane0xd/akasztofa/internal/words"
)

// Config holds everything main needs to wire the game.
type Config struct {
	WordsFile     string
	Difficulty    words.Difficulty
	Seed          uint64
	HistoryDB     string
	GuessPause    time.Duration
	BannerPause   time.Duration
	FarewellPause time.Duration
	LogLevel      string
	LogFile       string
}

// Load reads .env files (missing files are ignored) and then the environment.
func Load(envFiles ...string) (Config, error) {
	_ = godotenv.Load(envFiles...)
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from lookup, applying defaults for unset keys.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	get := func(k, def string) string {
		if v, ok := lookup(k); ok && v != "" {
			return v
		}
		return def
	}

	cfg := Config{
		WordsFile: get("HANGMAN_WORDS_FILE", ""),
		HistoryDB: get("HANGMAN_HISTORY_DB", ""),
		LogLevel:  get("LOG_LEVEL", "warn"),
		LogFile:   get("LOG_FILE", ""),
	}

	d, ok := words.ParseDifficulty(get("HANGMAN_DIFFICULTY", "medium"))
	if !ok {
		return cfg, fmt.Errorf("config: HANGMAN_DIFFICULTY: unknown difficulty %q", get("HANGMAN_DIFFICULTY", ""))
	}
	cfg.Difficulty = d

	seed, err := strconv.ParseUint(get("HANGMAN_SEED", "0"), 10, 64)
	if err != nil {
		return cfg, fmt.Errorf("config: HANGMAN_SEED: %w", err)
	}
	cfg.Seed = seed

	durations := []struct {
		key string
		def string
		dst *time.Duration
	}{
		{"HANGMAN_GUESS_PAUSE", "1s", &cfg.GuessPause},
		{"HANGMAN_BANNER_PAUSE", "3s", &cfg.BannerPause},
		{"HANGMAN_FAREWELL_PAUSE", "2s", &cfg.FarewellPause},
	}
	for _, dur := range durations {
		v, err := time.ParseDuration(get(dur.key, dur.def))
		if err != nil {
			return cfg, fmt.Errorf("config: %s: %w", dur.key, err)
		}
		if v < 0 {
			return cfg, fmt.Errorf("config: %s: negative duration %s", dur.key, v)
		}
		*dur.dst = v
	}
	return cfg, nil
}
