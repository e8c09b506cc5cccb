package diag

import (
	"testing"

	"src.3code.sh/pkg/testutil"
)

func setCulpritMarkers(t *testing.T, start, end string) {
	testutil.Set(t, &culpritStart, start)
	testutil.Set(t, &culpritEnd, end)
}

func setMessageMarkers(t *testing.T, start, end string) {
	testutil.Set(t, &messageStart, start)
	testutil.Set(t, &messageEnd, end)
}

// Returns a Context whose range is the first occurrence of culprit in source.
func contextOf(name, source, culprit string) *Context {
	from := indexOf(source, culprit)
	return NewContext(name, source, Ranging{from, from + len(culprit)})
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}
