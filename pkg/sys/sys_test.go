package sys

import (
	"testing"

	"src.3code.sh/pkg/must"
)

func TestIsATTY_Pipe(t *testing.T) {
	r, w := must.Pipe()
	defer r.Close()
	defer w.Close()
	if IsATTY(r) || IsATTY(w) {
		t.Errorf("IsATTY returns true for a pipe")
	}
}
