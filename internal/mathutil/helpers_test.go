package mathutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, Epsilon)

func assertTuple(t *testing.T, want, got Tuple) {
	t.Helper()
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("tuple mismatch (-want +got):\n%s", diff)
	}
}

func assertMatrix(t *testing.T, want, got Matrix) {
	t.Helper()
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("matrix mismatch (-want +got):\n%s", diff)
	}
}
