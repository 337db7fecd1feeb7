package vmtest

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// DiffState fails the test when want and got differ, reporting the difference
// as a go-cmp diff. Options are passed through, for ignoring fields or
// comparing unexported ones.
func DiffState[S any](t *testing.T, want, got S, opts ...cmp.Option) {
	t.Helper()
	if diff := cmp.Diff(want, got, opts...); diff != "" {
		t.Errorf("state mismatch (-want +got):\n%s", diff)
	}
}
