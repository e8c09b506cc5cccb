package shell

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"src.3code.sh/pkg/must"
	. "src.3code.sh/pkg/prog/progtest"
	"src.3code.sh/pkg/testutil"
)

func TestLoadConfig(t *testing.T) {
	testutil.InTempDir(t)
	must.WriteFile("full.yaml", testutil.Dedent(`
		prompt: "3c> "
		banner: hi
		history: false
		db: /tmp/h.db
		encoding: ibm866
		`))
	must.WriteFile("partial.yaml", "prompt: '> '\n")
	must.WriteFile("empty.yaml", "")
	must.WriteFile("unknown.yaml", "colour: red\n")
	must.WriteFile("bad.yaml", "prompt: [\n")

	for _, test := range []struct {
		name    string
		path    string
		want    *Config
		wantErr string
	}{
		{"no path", "", DefaultConfig(), ""},
		{"missing file", "missing.yaml", DefaultConfig(), ""},
		{"empty file", "empty.yaml", DefaultConfig(), ""},
		{
			"full file", "full.yaml",
			&Config{Prompt: "3c> ", Banner: "hi", History: false, DB: "/tmp/h.db", Encoding: "ibm866"},
			"",
		},
		{
			"partial file", "partial.yaml",
			&Config{Prompt: "> ", Banner: "Welcome to 3code.", History: true, Encoding: "utf-8"},
			"",
		},
		{"unknown key", "unknown.yaml", nil, "field colour not found"},
		{"bad syntax", "bad.yaml", nil, "cannot parse config file bad.yaml"},
	} {
		t.Run(test.name, func(t *testing.T) {
			cfg, err := LoadConfig(test.path)
			if diff := cmp.Diff(test.want, cfg); diff != "" {
				t.Errorf("config (-want +got):\n%s", diff)
			}
			if test.wantErr == "" {
				if err != nil {
					t.Errorf("got error %v", err)
				}
			} else if err == nil || !strings.Contains(err.Error(), test.wantErr) {
				t.Errorf("got error %v, want one containing %q", err, test.wantErr)
			}
		})
	}
}

func TestProgram_Config(t *testing.T) {
	home := testutil.TempHome(t)
	testutil.InTempDir(t)
	must.WriteFile("latin1.yaml", "encoding: latin1\n")
	must.WriteFile("unknown.yaml", "colour: red\n")

	Test(t, &Program{},
		ThatProgram("-config", "latin1.yaml", "-c", "write [ 233 ]").WritesStdout("\xe9"),
		// Flags override the config file.
		ThatProgram("-config", "latin1.yaml", "-encoding", "utf-8", "-c", "write [ 233 ]").
			WritesStdout("é"),
		ThatProgram("-config", "unknown.yaml", "-c", "nl [ ]").
			ExitsWith(2).
			WritesStderrContaining("field colour not found"),
	)

	// The default config file is used when -config is not given.
	must.OK(os.MkdirAll(filepath.Join(home, ".config", "3code"), 0700))
	must.WriteFile(filepath.Join(home, ".config", "3code", "config.yaml"), "encoding: latin1\n")
	Test(t, &Program{},
		ThatProgram("-c", "write [ 233 ]").WritesStdout("\xe9"),
	)
}

func TestPaths(t *testing.T) {
	home := testutil.TempHome(t)
	for _, test := range []struct {
		name string
		f    func() (string, error)
		want string
	}{
		{"RCPath", RCPath, filepath.Join(home, ".config", "3code", "rc.3c")},
		{"ConfigPath", ConfigPath, filepath.Join(home, ".config", "3code", "config.yaml")},
		{"DBPath", DBPath, filepath.Join(home, ".local", "state", "3code", "history.db")},
	} {
		if got := must.OK1(test.f()); got != test.want {
			t.Errorf("%s() -> %q, want %q", test.name, got, test.want)
		}
	}

	testutil.Unsetenv(t, "XDG_CONFIG_HOME")
	testutil.Unsetenv(t, "XDG_STATE_HOME")
	if got, want := must.OK1(RCPath()), filepath.Join(home, ".config", "3code", "rc.3c"); got != want {
		t.Errorf("RCPath() without XDG_CONFIG_HOME -> %q, want %q", got, want)
	}
	if got, want := must.OK1(DBPath()), filepath.Join(home, ".local", "state", "3code", "history.db"); got != want {
		t.Errorf("DBPath() without XDG_STATE_HOME -> %q, want %q", got, want)
	}
}
