package rangeinput_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-datefield/pkg/rangeinput"
)

func TestBackspace(t *testing.T) {
	const value = "01/01/2023 - 10/01/2023"

	edit, ok := rangeinput.Backspace(value, 13, 13)
	if !ok {
		t.Fatalf("expected backspace after separator to be handled")
	}
	want := rangeinput.Edit{Value: "01/01/202310/01/2023", Cursor: 10}
	if diff := cmp.Diff(want, edit); diff != "" {
		t.Fatalf("edit mismatch (-want +got):\n%s", diff)
	}

	for _, sel := range [][2]int{{12, 12}, {14, 14}, {10, 13}, {2, 2}, {40, 40}} {
		if _, ok := rangeinput.Backspace(value, sel[0], sel[1]); ok {
			t.Fatalf("selection %v should fall through", sel)
		}
	}
}

func TestSanitizePaste(t *testing.T) {
	got, ok := rangeinput.SanitizePaste("01/01/2023 - 10/01/2023")
	if !ok || got != "0101202310012023" {
		t.Fatalf("sanitize range: %q %v", got, ok)
	}
	if _, ok := rangeinput.SanitizePaste("hello - world"); ok {
		t.Fatalf("expected paste without digits to be cancelled")
	}
}

func TestInsert(t *testing.T) {
	tests := []struct {
		value            string
		selStart, selEnd int
		text             string
		want             rangeinput.Edit
	}{
		{"01/__/____", 3, 3, "12", rangeinput.Edit{Value: "01/12__/____", Cursor: 5}},
		{"01/02/2023", 0, 10, "15", rangeinput.Edit{Value: "15", Cursor: 2}},
		{"", 5, 9, "1", rangeinput.Edit{Value: "1", Cursor: 1}},
	}
	for _, tt := range tests {
		got := rangeinput.Insert(tt.value, tt.selStart, tt.selEnd, tt.text)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Fatalf("insert into %q mismatch (-want +got):\n%s", tt.value, diff)
		}
	}
}
