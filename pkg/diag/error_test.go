package diag

import (
	"errors"
	"testing"
)

var errCause = errors.New("cause")

func TestError(t *testing.T) {
	setCulpritMarkers(t, "<", ">")
	setMessageMarkers(t, "{", "}")

	err := &Error{
		Type:    "some error",
		Message: "bad token",
		Context: *contextOf("[test]", "print [ ?? ]", "??"),
		Cause:   errCause,
	}

	wantErrorString := "some error: [test]:1:9: bad token"
	if got := err.Error(); got != wantErrorString {
		t.Errorf("Error() -> %q, want %q", got, wantErrorString)
	}

	wantRanging := Ranging{From: 8, To: 10}
	if got := err.Range(); got != wantRanging {
		t.Errorf("Range() -> %v, want %v", got, wantRanging)
	}

	wantShow := "Some error: {bad token}\n  [test]:1:9: print [ <??> ]"
	if got := err.Show(""); got != wantShow {
		t.Errorf("Show() -> %q, want %q", got, wantShow)
	}

	if !errors.Is(err, errCause) {
		t.Errorf("errors.Is(err, cause) = false, want true")
	}
}
