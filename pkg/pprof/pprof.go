// Package pprof lets 3code write runtime profiles of the interpreter, for
// finding out where a slow script spends its time.
package pprof

import (
	"fmt"
	"io"
	"os"
	"runtime/pprof"

	"src.3code.sh/pkg/prog"
)

// A profile that can be requested with a flag naming the file to write it to.
type profile struct {
	flag string
	what string
	// Called when the subprogram starts. If nil, nothing is done.
	start func(io.Writer) error
	// Called after the subprogram has finished.
	stop func(io.Writer) error
}

var profiles = []profile{
	{
		flag:  "cpuprofile",
		what:  "CPU profile",
		start: pprof.StartCPUProfile,
		stop: func(io.Writer) error {
			pprof.StopCPUProfile()
			return nil
		},
	},
	{
		flag: "allocsprofile",
		what: "memory allocation profile",
		stop: func(w io.Writer) error { return pprof.Lookup("allocs").WriteTo(w, 0) },
	},
}

// Program writes the profiles requested with -cpuprofile and -allocsprofile
// while the subprograms after it run. It never runs by itself.
type Program struct {
	paths []string
}

func (p *Program) RegisterFlags(fs *prog.FlagSet) {
	p.paths = make([]string, len(profiles))
	for i, pr := range profiles {
		fs.StringVar(&p.paths[i], pr.flag, "", "write "+pr.what+" to file")
	}
}

func (p *Program) Run(fds [3]*os.File, _ []string) error {
	var cleanups []func([3]*os.File)
	for i, path := range p.paths {
		if path == "" {
			continue
		}
		if cleanup, err := begin(profiles[i], path); err != nil {
			fmt.Fprintf(fds[2], "Warning: cannot start %s: %v\n", profiles[i].what, err)
			fmt.Fprintf(fds[2], "Continuing without %s.\n", profiles[i].what)
		} else {
			cleanups = append(cleanups, cleanup)
		}
	}
	return prog.NextProgram(cleanups...)
}

// Creates the file of a profile and starts it. The returned function finishes
// the profile and closes the file.
func begin(pr profile, path string) (func([3]*os.File), error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if pr.start != nil {
		if err := pr.start(f); err != nil {
			f.Close()
			return nil, err
		}
	}
	return func(fds [3]*os.File) {
		if err := pr.stop(f); err != nil {
			fmt.Fprintf(fds[2], "Warning: cannot write %s: %v\n", pr.what, err)
		}
		f.Close()
	}, nil
}
