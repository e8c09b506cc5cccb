// Package shell is the entry point for running 3code code, either from a
// script, from the command line or interactively.
package shell

import (
	"fmt"
	"os"

	"src.3code.sh/pkg/eval"
	"src.3code.sh/pkg/logutil"
	"src.3code.sh/pkg/prog"
	"src.3code.sh/pkg/sys"
)

var logger = logutil.GetLogger("[shell] ")

// Program is the shell subprogram. It always runs.
type Program struct {
	codeInArg   bool
	compileOnly bool
	noRC        bool
	showHistory bool
	rc          string
	db          string
	encoding    string

	json   *bool
	config *string
}

func (p *Program) RegisterFlags(fs *prog.FlagSet) {
	fs.BoolVar(&p.codeInArg, "c", false, "take first argument as code to execute")
	fs.BoolVar(&p.compileOnly, "compileonly", false, "check the code for errors but do not execute it")
	fs.BoolVar(&p.noRC, "norc", false, "don't read the RC file in interactive mode")
	fs.BoolVar(&p.showHistory, "history", false, "print the interactive history and quit")
	fs.StringVar(&p.rc, "rc", "", "path to the RC file; defaults to $XDG_CONFIG_HOME/3code/rc.3c")
	fs.StringVar(&p.db, "db", "", "path to the history database; defaults to $XDG_STATE_HOME/3code/history.db")
	fs.StringVar(&p.encoding, "encoding", "", "output encoding of the write function, like utf-8 or latin1")
	p.json = fs.JSON()
	p.config = fs.Config()
}

func (p *Program) Run(fds [3]*os.File, args []string) error {
	cfg, err := p.loadConfig()
	if err != nil {
		return err
	}
	enc, err := eval.LookupEncoding(cfg.Encoding)
	if err != nil {
		return err
	}
	ev := eval.NewEvaler()
	ev.SetEncoding(enc)
	ev.SetOutput(fds[1])

	if p.showHistory {
		return showHistory(fds, cfg.DB)
	}

	switch {
	case len(args) > 1:
		return prog.BadUsage("at most one script can be given")
	case len(args) == 1:
		return prog.Exit(Script(fds, args[0], ev, &ScriptConfig{
			Cmd: p.codeInArg, CompileOnly: p.compileOnly, JSON: *p.json}))
	case p.codeInArg:
		return prog.BadUsage("-c requires an argument")
	case p.compileOnly:
		return prog.BadUsage("-compileonly requires a script or -c")
	}

	icfg := &InteractConfig{Prompt: cfg.Prompt, Banner: cfg.Banner}
	if !p.noRC {
		icfg.RC = p.rc
		if icfg.RC == "" {
			icfg.RC, err = RCPath()
			if err != nil {
				logger.Println("cannot determine RC path:", err)
			}
		}
	}
	// Only lines typed at a terminal are recorded.
	if cfg.History && sys.IsATTY(fds[0]) {
		st, err := openHistory(cfg.DB)
		if err != nil {
			fmt.Fprintln(fds[2], "Warning: cannot open history database:", err)
			fmt.Fprintln(fds[2], "Continuing without history.")
		} else {
			defer st.Close()
			icfg.History = st
		}
	}
	Interact(fds, ev, icfg)
	return nil
}

// Loads the configuration file and applies the overrides from flags.
func (p *Program) loadConfig() (*Config, error) {
	path := *p.config
	if path == "" {
		var err error
		path, err = ConfigPath()
		if err != nil {
			logger.Println("cannot determine config path:", err)
		}
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if p.db != "" {
		cfg.DB = p.db
	}
	if p.encoding != "" {
		cfg.Encoding = p.encoding
	}
	return cfg, nil
}
