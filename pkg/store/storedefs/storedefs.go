// Package storedefs contains definitions of the history store API.
//
// It is a separate package so that packages that only depend on the store API
// do not need to depend on the concrete implementation.
package storedefs

// Store is an interface satisfied by the history store.
type Store interface {
	NextSeq() (int, error)
	Add(text string) (int, error)
	Entries(from, upto int) ([]Entry, error)
}

// Entry is an entry in the history: a line of 3code entered interactively.
type Entry struct {
	Text string
	Seq  int
}
