package app

import (
	"github.com/gdamore/tcell/v2"
)

// Action is a navigation intent decoded from a key press
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionNextTab
	ActionPrevTab
	ActionRowDown
	ActionRowUp
	ActionTop
	ActionBottom
)

func (a Action) String() string {
	switch a {
	case ActionQuit:
		return "quit"
	case ActionNextTab:
		return "next-tab"
	case ActionPrevTab:
		return "prev-tab"
	case ActionRowDown:
		return "row-down"
	case ActionRowUp:
		return "row-up"
	case ActionTop:
		return "top"
	case ActionBottom:
		return "bottom"
	default:
		return "none"
	}
}

var keyActions = map[tcell.Key]Action{
	tcell.KeyEscape:  ActionQuit,
	tcell.KeyCtrlC:   ActionQuit,
	tcell.KeyTab:     ActionNextTab,
	tcell.KeyRight:   ActionNextTab,
	tcell.KeyBacktab: ActionPrevTab,
	tcell.KeyLeft:    ActionPrevTab,
	tcell.KeyDown:    ActionRowDown,
	tcell.KeyUp:      ActionRowUp,
	tcell.KeyHome:    ActionTop,
	tcell.KeyEnd:     ActionBottom,
}

var runeActions = map[rune]Action{
	'q': ActionQuit,
	'l': ActionNextTab,
	'h': ActionPrevTab,
	'j': ActionRowDown,
	'k': ActionRowUp,
	'g': ActionTop,
	'G': ActionBottom,
}

// KeyAction maps a key press to its action. Unbound keys map to ActionNone.
func KeyAction(event *tcell.EventKey) Action {
	if event == nil {
		return ActionNone
	}
	if event.Key() == tcell.KeyRune {
		return runeActions[event.Rune()]
	}
	return keyActions[event.Key()]
}
