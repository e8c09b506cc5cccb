package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"src.3code.sh/pkg/diag"
	"src.3code.sh/pkg/eval"
	"src.3code.sh/pkg/parse"
	"src.3code.sh/pkg/store/storedefs"
	"src.3code.sh/pkg/sys"
)

// InteractConfig keeps configuration for the interactive mode.
type InteractConfig struct {
	// RC is the path of the RC file. If empty, no RC file is evaluated.
	RC string
	// Prompt and Banner are only shown when the input is a terminal.
	Prompt string
	Banner string
	// History records each line entered. If nil, nothing is recorded.
	History storedefs.Store
}

// Interact runs an interactive session, reading lines from fds[0] until the
// end of input. Each line is evaluated as a unit; errors are shown on fds[2]
// and the session goes on.
func Interact(fds [3]*os.File, ev *eval.Evaler, cfg *InteractConfig) {
	isTTY := sys.IsATTY(fds[0])
	prompt := ""
	if isTTY {
		if cfg.Banner != "" {
			fmt.Fprintln(fds[2], cfg.Banner)
		}
		prompt = cfg.Prompt
	}

	if cfg.RC != "" {
		for _, err := range sourceRC(fds, ev, cfg.RC) {
			diag.ShowError(fds[2], err)
		}
	}

	ed := newMinEditor(fds[0], fds[2], prompt)
	for lineNum := 1; ; lineNum++ {
		line, err := ed.ReadCode()
		if err != nil && err != io.EOF {
			fmt.Fprintln(fds[2], "cannot read input:", err)
			return
		}
		if strings.TrimSpace(line) != "" {
			if cfg.History != nil {
				if _, err := cfg.History.Add(line); err != nil {
					logger.Println("cannot add to history:", err)
				}
			}
			src := parse.Source{Name: fmt.Sprintf("[tty %v]", lineNum), Code: line}
			if err := ev.Eval(src, eval.EvalCfg{Out: fds[1]}); err != nil {
				diag.ShowError(fds[2], err)
			}
		}
		if err == io.EOF {
			if isTTY {
				fmt.Fprintln(fds[2])
			}
			return
		}
	}
}

// Evaluates the RC file line by line. A missing RC file is not an error.
func sourceRC(fds [3]*os.File, ev *eval.Evaler, rcPath string) []error {
	absPath, err := filepath.Abs(rcPath)
	if err != nil {
		return []error{fmt.Errorf("cannot get full path of RC file: %w", err)}
	}
	code, err := readFileUTF8(absPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Println("no RC file at", absPath)
			return nil
		}
		return []error{fmt.Errorf("cannot read RC file: %w", err)}
	}
	return ev.EvalLines(parse.Source{Name: absPath, Code: code}, eval.EvalCfg{Out: fds[1]})
}
