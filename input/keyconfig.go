package input

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that are awkward as bare characters in a config value
var runeAliases = map[string]rune{
	"space": ' ',
}

// Special key names accepted in bindings
var specialKeys = map[string]tcell.Key{
	"esc":    tcell.KeyEscape,
	"tab":    tcell.KeyTab,
	"enter":  tcell.KeyEnter,
	"up":     tcell.KeyUp,
	"down":   tcell.KeyDown,
	"left":   tcell.KeyLeft,
	"right":  tcell.KeyRight,
	"home":   tcell.KeyHome,
	"end":    tcell.KeyEnd,
	"pgup":   tcell.KeyPgUp,
	"pgdn":   tcell.KeyPgDn,
	"ctrl+c": tcell.KeyCtrlC,
	"ctrl+q": tcell.KeyCtrlQ,
	"ctrl+s": tcell.KeyCtrlS,
	"ctrl+r": tcell.KeyCtrlR,
}

// LoadKeyBindings parses "key action" lines into a sparse override KeyTable
// Returns error on unknown action names or invalid key names
func LoadKeyBindings(bindings []string) (*KeyTable, error) {
	kt := &KeyTable{
		Keys:  make(map[tcell.Key]Intent),
		Runes: make(map[rune]Intent),
	}
	for _, line := range bindings {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("key binding %q: want \"key action\"", line)
		}
		keyName, actionName := fields[0], strings.ToLower(fields[1])

		intent, ok := actionRegistry[actionName]
		if !ok {
			return nil, fmt.Errorf("key binding %q: unknown action %q", line, actionName)
		}

		if k, ok := specialKeys[strings.ToLower(keyName)]; ok {
			kt.Keys[k] = intent
			continue
		}
		if r, ok := runeAliases[strings.ToLower(keyName)]; ok {
			kt.Runes[r] = intent
			continue
		}
		if utf8.RuneCountInString(keyName) == 1 {
			r, _ := utf8.DecodeRuneInString(keyName)
			kt.Runes[r] = intent
			continue
		}
		return nil, fmt.Errorf("key binding %q: unknown key %q", line, keyName)
	}
	return kt, nil
}

// BuildKeyTable returns the defaults with bindings applied
func BuildKeyTable(bindings []string) (*KeyTable, error) {
	override, err := LoadKeyBindings(bindings)
	if err != nil {
		return nil, err
	}
	kt := DefaultKeyTable()
	kt.Merge(override)
	return kt, nil
}
