package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-datefield/pkg/render"
)

func TestMergeMessages(t *testing.T) {
	merged := render.MergeMessages([]string{" First ", "Second"}, "Second", "third", "  ")
	want := []string{"First", "Second", "third"}

	if diff := cmp.Diff(want, merged); diff != "" {
		t.Fatalf("merged messages mismatch (-want +got):\n%s", diff)
	}

	if got := render.MergeMessages(nil, " ", ""); got != nil {
		t.Fatalf("expected nil for blank messages, got %v", got)
	}
}
