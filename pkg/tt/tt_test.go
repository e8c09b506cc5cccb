package tt

import (
	"fmt"
	"strings"
	"testing"
)

// testT implements the T interface and records errors.
type testT []string

func (t *testT) Helper() {}

func (t *testT) Errorf(format string, args ...any) {
	*t = append(*t, fmt.Sprintf(format, args...))
}

func addsub(x int, y int) (int, int) {
	return x + y, x - y
}

func isNil(err error) bool { return err == nil }

func TestPass(t *testing.T) {
	var testT testT
	Test(&testT, "addsub", addsub, Table{
		Args(1, 10).Rets(11, -9),
	})
	if len(testT) > 0 {
		t.Errorf("Test errors when test should pass: %v", testT)
	}
}

func TestFail(t *testing.T) {
	var testT testT
	Test(&testT, "addsub", addsub, Table{
		Args(1, 10).Rets(11, -90),
	})
	if len(testT) != 1 {
		t.Fatalf("got %d errors, want 1", len(testT))
	}
	if want := "addsub(1, 10) returns (-want +got):\n"; !strings.HasPrefix(testT[0], want) {
		t.Errorf("got error %q, want prefix %q", testT[0], want)
	}
}

func TestNilArgument(t *testing.T) {
	var testT testT
	Test(&testT, "isNil", isNil, Table{
		Args(nil).Rets(true),
	})
	if len(testT) > 0 {
		t.Errorf("Test errors when test should pass: %v", testT)
	}
}
