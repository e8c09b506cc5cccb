package store

import (
	"path/filepath"

	"src.3code.sh/pkg/must"
	"src.3code.sh/pkg/testutil"
)

// MustTempStore returns a Store backed by a file in a temporary directory.
// The Store is closed when the test finishes.
func MustTempStore(c testutil.TempDirer) DBStore {
	st := must.OK1(NewStore(filepath.Join(c.TempDir(), "history.db")))
	c.Cleanup(func() { st.Close() })
	return st
}
