package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"src.3code.sh/pkg/strutil"
)

// A line editor that only reads lines, optionally showing a prompt before
// each.
type minEditor struct {
	in     *bufio.Reader
	out    io.Writer
	prompt string
}

func newMinEditor(in *os.File, out io.Writer, prompt string) *minEditor {
	return &minEditor{bufio.NewReader(in), out, prompt}
}

// ReadCode reads a line without its line ending. At the end of input, it
// returns any incomplete last line along with io.EOF.
func (ed *minEditor) ReadCode() (string, error) {
	if ed.prompt != "" {
		fmt.Fprint(ed.out, ed.prompt)
	}
	line, err := ed.in.ReadString('\n')
	return strutil.ChopLineEnding(line), err
}
