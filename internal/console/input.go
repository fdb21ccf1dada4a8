package console

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Input reads one line per prompt.
type Input struct {
	r *bufio.Reader
}

func NewInput(r io.Reader) *Input {
	return &Input{r: bufio.NewReader(r)}
}

// ReadLine returns the next line without its line terminator. A final line
// without a newline is returned before io.EOF.
func (in *Input) ReadLine() (string, error) {
	line, err := in.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
