package menu

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/IamInsane0xd/akasztofa/internal/console"
	"github.com/IamInsane0xd/akasztofa/internal/words"
)

type fakeSetting struct {
	d words.Difficulty
}

func (f *fakeSetting) Difficulty() words.Difficulty     { return f.d }
func (f *fakeSetting) SetDifficulty(d words.Difficulty) { f.d = d }

func newTestDisplay(buf *bytes.Buffer) *console.Display {
	return console.NewDisplay(buf, console.WithoutClear(), console.WithSleep(func(time.Duration) {}))
}

func TestRunLayout(t *testing.T) {
	var buf bytes.Buffer
	d := newTestDisplay(&buf)
	m := NewMain(d, 0)

	a, err := Run(m, d, console.NewInput(strings.NewReader("1\n")))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if a != ActionStartRound {
		t.Errorf("Expected %s, got %s", ActionStartRound, a)
	}

	want := "====  Main Menu  ====\n" +
		"1. Start\n" +
		"2. Change Difficulty\n" +
		"3. Exit\n" +
		"====  ---------  ====\n\n" +
		"? "
	if buf.String() != want {
		t.Errorf("unexpected layout:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestRunRejectsInvalidSelections(t *testing.T) {
	var buf bytes.Buffer
	d := newTestDisplay(&buf)
	m := NewMain(d, 0)

	a, err := Run(m, d, console.NewInput(strings.NewReader("abc\n0\n4\n\n2\n")))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if a != ActionDifficulty {
		t.Errorf("Expected %s, got %s", ActionDifficulty, a)
	}
	if got := strings.Count(buf.String(), "Error!"); got != 4 {
		t.Errorf("Expected 4 error notices, got %d", got)
	}
	if got := strings.Count(buf.String(), "====  Main Menu  ===="); got != 5 {
		t.Errorf("Expected 5 renders, got %d", got)
	}
}

func TestRunFirstAttemptHasNoError(t *testing.T) {
	var buf bytes.Buffer
	d := newTestDisplay(&buf)
	if _, err := Run(NewMain(d, 0), d, console.NewInput(strings.NewReader(" 2 \n"))); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "Error!") {
		t.Error("valid first input should not print an error")
	}
}

func TestRunEOF(t *testing.T) {
	d := newTestDisplay(&bytes.Buffer{})
	_, err := Run(NewMain(d, 0), d, console.NewInput(strings.NewReader("9\n")))
	if !errors.Is(err, io.EOF) {
		t.Errorf("Expected io.EOF, got %v", err)
	}
}

func TestMainExit(t *testing.T) {
	var buf bytes.Buffer
	var slept time.Duration
	d := console.NewDisplay(&buf, console.WithoutClear(), console.WithSleep(func(dur time.Duration) { slept += dur }))
	m := NewMain(d, 2*time.Second)

	if a := m.HandleSelection(3); a != ActionExit {
		t.Errorf("Expected %s, got %s", ActionExit, a)
	}
	if !strings.Contains(buf.String(), "Goodbye!") {
		t.Errorf("Expected farewell, got %q", buf.String())
	}
	if slept != 2*time.Second {
		t.Errorf("Expected 2s pause, got %v", slept)
	}
}

func TestDifficultySelection(t *testing.T) {
	cases := []struct {
		selected int
		want     words.Difficulty
	}{
		{1, words.Easy},
		{2, words.Medium},
		{3, words.Hard},
		{4, words.Extreme},
	}
	for _, tc := range cases {
		t.Run(tc.want.String(), func(t *testing.T) {
			s := &fakeSetting{d: words.Medium}
			m := NewDifficulty(s)
			if a := m.HandleSelection(tc.selected); a != ActionRedraw {
				t.Errorf("Expected %s, got %s", ActionRedraw, a)
			}
			if s.d != tc.want {
				t.Errorf("Expected %s, got %s", tc.want, s.d)
			}
		})
	}
}

func TestDifficultyBack(t *testing.T) {
	s := &fakeSetting{d: words.Hard}
	m := NewDifficulty(s)
	if a := m.HandleSelection(5); a != ActionBack {
		t.Errorf("Expected %s, got %s", ActionBack, a)
	}
	if s.d != words.Hard {
		t.Errorf("Back must not change difficulty, got %s", s.d)
	}
}

func TestDifficultyShowsCurrent(t *testing.T) {
	var buf bytes.Buffer
	d := newTestDisplay(&buf)
	m := NewDifficulty(&fakeSetting{d: words.Extreme})

	if _, err := Run(m, d, console.NewInput(strings.NewReader("5\n"))); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "Current difficulty: ") || !strings.Contains(out, "Extreme") {
		t.Errorf("current difficulty missing: %q", out)
	}
	if strings.Index(out, "Current difficulty") > strings.Index(out, "====  Select Difficulty  ====") {
		t.Error("current difficulty should be drawn before the title")
	}
	if !strings.Contains(out, "5. Back\n") {
		t.Errorf("Back option missing: %q", out)
	}
}

func TestTierColor(t *testing.T) {
	seen := map[console.Color]bool{}
	for _, d := range words.Difficulties {
		seen[TierColor(d)] = true
	}
	if len(seen) != len(words.Difficulties) {
		t.Errorf("Expected a distinct color per tier, got %v", seen)
	}
}
