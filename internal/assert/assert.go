package assert

import (
	"math"
	"strings"
	"testing"
)

func Equal[T comparable](t *testing.T, actual, expected T) {
	t.Helper()

	if actual != expected {
		t.Errorf("got: %v; want %v", actual, expected)
	}
}

func NilError(t *testing.T, actual error) {
	t.Helper()

	if actual != nil {
		t.Errorf("got: %v; expected: nil", actual)
	}
}

func StringContains(t *testing.T, actual, expectedSubstring string) {
	t.Helper()

	if !strings.Contains(actual, expectedSubstring) {
		t.Errorf("got: %q; expected to contain: %q", actual, expectedSubstring)
	}
}

// FloatClose passes when actual is within tolerance of expected.
func FloatClose(t *testing.T, actual, expected, tolerance float64) {
	t.Helper()

	if math.Abs(actual-expected) > tolerance {
		t.Errorf("got: %v; want %v (±%v)", actual, expected, tolerance)
	}
}
