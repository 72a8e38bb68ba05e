package input

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Tab, Esc)
	Keys map[tcell.Key]Intent

	// Printable rune bindings
	Runes map[rune]Intent
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]Intent{
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyEscape: IntentEscape,
			tcell.KeyLeft:   IntentPanLeft,
			tcell.KeyRight:  IntentPanRight,
			tcell.KeyUp:     IntentPanUp,
			tcell.KeyDown:   IntentPanDown,
			tcell.KeyHome:   IntentResetView,
			tcell.KeyTab:    IntentNextOrbit,
		},
		Runes: map[rune]Intent{
			'q': IntentQuit,
			's': IntentToggleMute,
			'?': IntentToggleHelp,

			' ': IntentTogglePause,
			'R': IntentReset,
			'+': IntentGravityUp,
			'=': IntentGravityUp,
			'-': IntentGravityDown,
			'i': IntentInvertGravity,
			'm': IntentToggleMerge,
			'r': IntentToggleRepel,
			'b': IntentCycleBounds,
			'z': IntentToggleZoomBounds,
			'g': IntentToggleForceMethod,
			'>': IntentSpeedUp,
			'<': IntentSlowDown,
			'x': IntentBlackHole,

			'h': IntentPanLeft,
			'l': IntentPanRight,
			'k': IntentPanUp,
			'j': IntentPanDown,
			']': IntentZoomIn,
			'[': IntentZoomOut,
			'0': IntentResetView,
			'f': IntentFollow,
			'T': IntentToggleTrails,
			'O': IntentToggleOrbitPaths,

			'o': IntentOrbitTool,
			'c': IntentOrbitDirection,
			'e': IntentEccentricityUp,
			'E': IntentEccentricityDown,
			'n': IntentNextOrbit,
			't': IntentTrackOrbit,
			'I': IntentOrbitInfo,
			'd': IntentDeleteOrbit,
		},
	}
}

// Lookup resolves a key event, IntentNone when unbound
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Intent {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.Keys[ev.Key()]
}

// Merge applies override bindings on top of kt; binding to "none" unbinds
func (kt *KeyTable) Merge(override *KeyTable) {
	if override == nil {
		return
	}
	for k, intent := range override.Keys {
		if intent == IntentNone {
			delete(kt.Keys, k)
			continue
		}
		kt.Keys[k] = intent
	}
	for r, intent := range override.Runes {
		if intent == IntentNone {
			delete(kt.Runes, r)
			continue
		}
		kt.Runes[r] = intent
	}
}

// HelpLines lists each bound intent with its keys, in intent order
func (kt *KeyTable) HelpLines() []string {
	keys := make(map[Intent][]string)
	for k, intent := range kt.Keys {
		keys[intent] = append(keys[intent], specialKeyName(k))
	}
	for r, intent := range kt.Runes {
		keys[intent] = append(keys[intent], runeName(r))
	}

	lines := make([]string, 0, len(keys))
	for intent := IntentNone + 1; intent < intentCount; intent++ {
		names, ok := keys[intent]
		if !ok {
			continue
		}
		sort.Strings(names)
		lines = append(lines, fmt.Sprintf("%-14s %s", strings.Join(names, " "), intent))
	}
	return lines
}

func runeName(r rune) string {
	for name, alias := range runeAliases {
		if alias == r {
			return name
		}
	}
	return string(r)
}

func specialKeyName(k tcell.Key) string {
	for name, key := range specialKeys {
		if key == k {
			return name
		}
	}
	return fmt.Sprintf("key(%d)", k)
}
