package interactive

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/goliatone/go-datefield/pkg/keyboard"
)

var keyNames = map[tea.KeyType]string{
	tea.KeyBackspace: keyboard.Backspace,
	tea.KeyDelete:    keyboard.Delete,
	tea.KeyLeft:      keyboard.ArrowLeft,
	tea.KeyRight:     keyboard.ArrowRight,
	tea.KeyUp:        keyboard.ArrowUp,
	tea.KeyDown:      keyboard.ArrowDown,
	tea.KeyHome:      keyboard.Home,
	tea.KeyEnd:       keyboard.End,
	tea.KeyTab:       keyboard.Tab,
	tea.KeyEsc:       keyboard.Escape,
	tea.KeyEnter:     keyboard.Enter,
}

// keyFromMsg translates a bubbletea key event into DOM key naming.
func keyFromMsg(msg tea.KeyMsg) keyboard.Key {
	switch msg.Type {
	case tea.KeyRunes:
		return keyboard.Key{Name: string(msg.Runes), Alt: msg.Alt}
	case tea.KeySpace:
		return keyboard.Key{Name: " ", Alt: msg.Alt}
	case tea.KeyShiftLeft:
		return keyboard.Key{Name: keyboard.ArrowLeft, Shift: true}
	case tea.KeyShiftRight:
		return keyboard.Key{Name: keyboard.ArrowRight, Shift: true}
	}
	if name, ok := keyNames[msg.Type]; ok {
		return keyboard.Key{Name: name, Alt: msg.Alt}
	}
	if rest, ok := strings.CutPrefix(msg.String(), "ctrl+"); ok {
		return keyboard.Key{Name: rest, Ctrl: true}
	}
	return keyboard.Key{Name: msg.String(), Alt: msg.Alt}
}
