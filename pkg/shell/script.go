package shell

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"src.3code.sh/pkg/diag"
	"src.3code.sh/pkg/eval"
	"src.3code.sh/pkg/parse"
)

// ScriptConfig keeps configuration for the script mode.
type ScriptConfig struct {
	// Cmd is true when the argument is code rather than the path of a script.
	Cmd bool
	// CompileOnly is true when the code should only be checked for errors.
	CompileOnly bool
	// JSON is true when errors found with CompileOnly should be written to
	// stdout in JSON. Warnings are not included.
	JSON bool
}

// Script evaluates a script, or with cfg.Cmd, code given in arg. Each line is a
// unit of its own: an error is shown and aborts its line, and evaluation goes
// on with the next line. It returns the exit status, which is 2 if any line
// failed.
func Script(fds [3]*os.File, arg string, ev *eval.Evaler, cfg *ScriptConfig) int {
	var name, code string
	if cfg.Cmd {
		name = "code from -c"
		code = arg
	} else {
		var err error
		name, err = filepath.Abs(arg)
		if err != nil {
			fmt.Fprintf(fds[2],
				"cannot get full path of script %q: %v\n", arg, err)
			return 2
		}
		code, err = readFileUTF8(name)
		if err != nil {
			fmt.Fprintf(fds[2], "cannot read script %q: %v\n", name, err)
			return 2
		}
	}

	src := parse.Source{Name: name, Code: code}
	if cfg.CompileOnly {
		report := eval.CheckLines(&src)
		if cfg.JSON {
			fmt.Fprintf(fds[1], "%s\n", errorsToJSON(report.Errors))
		} else {
			for _, err := range report.Errors {
				diag.ShowError(fds[2], err)
			}
			for _, warning := range report.Warnings {
				diag.ShowError(fds[2], warning)
			}
		}
		if len(report.Errors) > 0 {
			return 2
		}
		return 0
	}

	failed := ev.EvalLines(src, eval.EvalCfg{Out: fds[1]})
	for _, err := range failed {
		diag.ShowError(fds[2], err)
	}
	if len(failed) > 0 {
		return 2
	}
	return 0
}

var errSourceNotUTF8 = errors.New("source is not UTF-8")

func readFileUTF8(fname string) (string, error) {
	bytes, err := os.ReadFile(fname)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(bytes) {
		return "", errSourceNotUTF8
	}
	return string(bytes), nil
}

// An auxiliary struct for converting errors with diagnostics information to JSON.
type errorInJSON struct {
	FileName string `json:"fileName"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Message  string `json:"message"`
}

// Converts errors found by eval.Check to JSON.
func errorsToJSON(errs []*diag.Error) []byte {
	converted := []errorInJSON{}
	for _, e := range errs {
		converted = append(converted,
			errorInJSON{e.Context.Name, e.Context.From, e.Context.To, e.Message})
	}
	jsonError, errMarshal := json.Marshal(converted)
	if errMarshal != nil {
		return []byte(`[{"message":"Unable to convert the errors to JSON"}]`)
	}
	return jsonError
}
