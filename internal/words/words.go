// internal/words/words.go
//
// Word bank for the game.
//
// Responsibilities:
//   - Parse a tiered word list (one word per line, tiers delimited by markers).
//   - Keep the words of each Difficulty in file order, lowercased.
//   - Supply a uniformly random word for a tier through an injected Source.
//
// Word list format:
//   // comment
//   #easy
//   cat
//   dog
//   #end
//
// Notes:
//   - Only one tier may be open at a time; a tier marker seen while another
//     tier is open is ignored, as is an #end with no open tier.
//   - Blank lines and lines outside any tier are dropped.
//   - A Bank is read-only after construction.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/IamInsane0xd/akasztofa/assets"
)

const (
	commentPrefix = "//"
	endMarker     = "#end"
)

// ErrInvalidWord is wrapped by a LoadError when a word holds characters a player cannot guess.
var ErrInvalidWord = errors.New("word contains characters other than latin letters")

// LoadError reports an unreadable or malformed word list.
type LoadError struct {
	Path string // "" when parsed from a plain reader
	Line int    // 0 when not tied to a line
	Err  error
}

func (e *LoadError) Error() string {
	src := e.Path
	if src == "" {
		src = "word list"
	}
	if e.Line > 0 {
		return fmt.Sprintf("words: %s:%d: %v", src, e.Line, e.Err)
	}
	return fmt.Sprintf("words: %s: %v", src, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// EmptyTierError is returned when a word is requested from a tier that has none.
type EmptyTierError struct {
	Difficulty Difficulty
}

func (e *EmptyTierError) Error() string {
	return fmt.Sprintf("words: no words for difficulty %s", e.Difficulty)
}

// Bank maps each Difficulty to its words.
type Bank struct {
	tiers map[Difficulty][]string
	src   Source
}

// Option configures a Bank.
type Option func(*Bank)

// WithSource sets the random source used by RandomWord.
func WithSource(src Source) Option {
	return func(b *Bank) { b.src = src }
}

// Load reads and parses the word list at path.
func Load(path string, opts ...Option) (*Bank, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	b, err := Parse(f, opts...)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
		}
		return nil, err
	}
	return b, nil
}

// LoadDefault parses the word list embedded in the binary.
func LoadDefault(opts ...Option) (*Bank, error) {
	f, err := assets.OpenWords()
	if err != nil {
		return nil, &LoadError{Path: assets.WordsFile, Err: err}
	}
	defer f.Close()

	b, err := Parse(f, opts...)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = assets.WordsFile
		}
		return nil, err
	}
	return b, nil
}

// Parse builds a Bank from a word list in a single pass.
func Parse(r io.Reader, opts ...Option) (*Bank, error) {
	b := &Bank{tiers: make(map[Difficulty][]string, len(Difficulties))}
	for _, o := range opts {
		o(b)
	}
	if b.src == nil {
		b.src = NewSource(0)
	}

	var (
		open   *Difficulty
		lineNo int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}
		if d, ok := tierMarker(line); ok {
			if open == nil {
				open = &d
			}
			continue
		}
		if line == endMarker {
			open = nil
			continue
		}
		if open == nil {
			continue
		}
		w := strings.ToLower(line)
		if !isWord(w) {
			return nil, &LoadError{Line: lineNo, Err: fmt.Errorf("%w: %q", ErrInvalidWord, line)}
		}
		b.tiers[*open] = append(b.tiers[*open], w)
	}
	if err := sc.Err(); err != nil {
		return nil, &LoadError{Line: lineNo, Err: err}
	}
	return b, nil
}

// tierMarker reports which tier a marker line opens.
func tierMarker(line string) (Difficulty, bool) {
	for _, d := range Difficulties {
		if line == d.marker() {
			return d, true
		}
	}
	return 0, false
}

// isWord accepts lowercase latin letters with optional inner spaces,
// hyphens and apostrophes, and requires at least one letter.
func isWord(s string) bool {
	letters := 0
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			letters++
		case r == ' ' || r == '-' || r == '\'':
		default:
			return false
		}
	}
	return letters > 0
}

// RandomWord returns a uniformly chosen word of difficulty d.
func (b *Bank) RandomWord(d Difficulty) (string, error) {
	list := b.tiers[d]
	if len(list) == 0 {
		return "", &EmptyTierError{Difficulty: d}
	}
	return list[b.src.IntN(len(list))], nil
}

// Validate checks that every tier can supply a word.
func (b *Bank) Validate() error {
	for _, d := range Difficulties {
		if len(b.tiers[d]) == 0 {
			return &EmptyTierError{Difficulty: d}
		}
	}
	return nil
}

// Words returns a copy of the words loaded for d.
func (b *Bank) Words(d Difficulty) []string {
	return append([]string(nil), b.tiers[d]...)
}

// Stats returns the number of words per tier.
func (b *Bank) Stats() map[Difficulty]int {
	out := make(map[Difficulty]int, len(Difficulties))
	for _, d := range Difficulties {
		out[d] = len(b.tiers[d])
	}
	return out
}
