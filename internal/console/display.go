// internal/console/display.go
//
// Full-screen-redraw text output for the terminal.
// Colored segments are rendered with lipgloss and always end with the
// default color restored.

package console

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Color is an ANSI palette index understood by lipgloss.
type Color string

const (
	Green     Color = "10"
	Yellow    Color = "11"
	Red       Color = "9"
	Magenta   Color = "13"
	DarkGreen Color = "2"
	DarkRed   Color = "1"
)

const clearSeq = "\x1b[H\x1b[2J"

// Display writes to a single terminal. It is not safe for concurrent use.
type Display struct {
	w        io.Writer
	renderer *lipgloss.Renderer
	sleep    func(time.Duration)
	noClear  bool
}

// DisplayOption configures a Display.
type DisplayOption func(*Display)

// WithSleep replaces time.Sleep for pauses.
func WithSleep(fn func(time.Duration)) DisplayOption {
	return func(d *Display) { d.sleep = fn }
}

// WithoutClear turns Clear into a no-op, for transcripts and tests.
func WithoutClear() DisplayOption {
	return func(d *Display) { d.noClear = true }
}

// NewDisplay returns a Display writing to w.
func NewDisplay(w io.Writer, opts ...DisplayOption) *Display {
	d := &Display{
		w:        w,
		renderer: lipgloss.NewRenderer(w),
		sleep:    time.Sleep,
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

// Clear erases the screen and moves the cursor home.
func (d *Display) Clear() {
	if d.noClear {
		return
	}
	_, _ = io.WriteString(d.w, clearSeq)
}

func (d *Display) Print(a ...any) {
	_, _ = fmt.Fprint(d.w, a...)
}

func (d *Display) Println(a ...any) {
	_, _ = fmt.Fprintln(d.w, a...)
}

func (d *Display) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(d.w, format, a...)
}

// Colored writes a single line of text in color c. Keep text free of tabs
// and newlines; lipgloss expands and pads those.
func (d *Display) Colored(c Color, text string) {
	style := d.renderer.NewStyle().Foreground(lipgloss.Color(string(c)))
	_, _ = io.WriteString(d.w, style.Render(text))
}

// Pause blocks for dur.
func (d *Display) Pause(dur time.Duration) {
	if dur <= 0 {
		return
	}
	d.sleep(dur)
}
