package shell

import (
	"fmt"
	"os"
	"path/filepath"

	"src.3code.sh/pkg/store"
)

// Opens the history database at path, or DBPath if path is empty, creating
// its directory if needed.
func openHistory(path string) (store.DBStore, error) {
	if path == "" {
		var err error
		path, err = DBPath()
		if err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, err
	}
	logger.Println("opening history database", path)
	return store.NewStore(path)
}

// Writes all history entries, one per line as "SEQ\tTEXT".
func showHistory(fds [3]*os.File, path string) error {
	st, err := openHistory(path)
	if err != nil {
		return fmt.Errorf("cannot open history database: %w", err)
	}
	defer st.Close()
	next, err := st.NextSeq()
	if err != nil {
		return err
	}
	entries, err := st.Entries(0, next)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		fmt.Fprintf(fds[1], "%d\t%s\n", entry.Seq, entry.Text)
	}
	return nil
}
