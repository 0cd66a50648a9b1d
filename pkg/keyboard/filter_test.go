package keyboard_test

import (
	"regexp"
	"testing"

	"github.com/goliatone/go-datefield/pkg/keyboard"
)

func TestFilterAllow(t *testing.T) {
	f := keyboard.NewFilter()

	cases := []struct {
		name string
		key  keyboard.Key
		want bool
	}{
		{"digit", keyboard.Key{Name: "7"}, true},
		{"letter", keyboard.Key{Name: "a"}, false},
		{"slash", keyboard.Key{Name: "/"}, false},
		{"backspace", keyboard.Key{Name: keyboard.Backspace}, true},
		{"arrow", keyboard.Key{Name: keyboard.ArrowLeft}, true},
		{"tab", keyboard.Key{Name: keyboard.Tab}, true},
		{"modifier alone", keyboard.Key{Name: keyboard.Shift, Shift: true}, true},
		{"paste chord", keyboard.Key{Name: "v", Ctrl: true}, true},
		{"mac copy", keyboard.Key{Name: "c", Meta: true}, true},
		{"alt letter", keyboard.Key{Name: "a", Alt: true}, false},
		{"function key", keyboard.Key{Name: "F5"}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := f.Allow(c.key); got != c.want {
				t.Fatalf("Allow(%+v) = %v, want %v", c.key, got, c.want)
			}
		})
	}
}

func TestFilterAllowedPattern(t *testing.T) {
	f := keyboard.NewFilter(keyboard.WithAllowedPattern(regexp.MustCompile(`^[0-9/]$`)))

	if !f.Allow(keyboard.Key{Name: "/"}) {
		t.Fatalf("expected pattern to admit the separator")
	}
	if f.Allow(keyboard.Key{Name: "-"}) {
		t.Fatalf("expected pattern to reject other characters")
	}
	if !f.Allow(keyboard.Key{Name: keyboard.Delete}) {
		t.Fatalf("control keys must pass regardless of pattern")
	}
}

func TestCaretSkip(t *testing.T) {
	right := keyboard.Key{Name: keyboard.ArrowRight}
	left := keyboard.Key{Name: keyboard.ArrowLeft}

	cases := []struct {
		name   string
		value  string
		pos    int
		key    keyboard.Key
		want   int
		wantOK bool
	}{
		{"right over slash", "01/02/2023", 2, right, 4, true},
		{"left over slash", "01/02/2023", 3, left, 1, true},
		{"right inside group", "01/02/2023", 0, right, 0, false},
		{"left at start", "01/02/2023", 0, left, 0, false},
		{"right at end", "01/02/2023", 10, right, 10, false},
		{"right over range separator", "01/01/2023 - 10/01/2023", 10, right, 14, true},
		{"left over range separator", "01/01/2023 - 10/01/2023", 13, left, 9, true},
		{"right over trailing separator", "01/01/2023 - ", 10, right, 13, true},
		{"shift selects", "01/02/2023", 2, keyboard.Key{Name: keyboard.ArrowRight, Shift: true}, 2, false},
		{"other key", "01/02/2023", 2, keyboard.Key{Name: keyboard.Home}, 2, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := keyboard.CaretSkip(c.value, c.pos, c.key)
			if got != c.want || ok != c.wantOK {
				t.Fatalf("CaretSkip(%q, %d) = (%d, %v), want (%d, %v)", c.value, c.pos, got, ok, c.want, c.wantOK)
			}
		})
	}
}
