package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyAction represents an action triggered by a key press.
type KeyAction int

const (
	ActionNone KeyAction = iota
	ActionQuit
	ActionNext
	ActionPrevious
	ActionFirst
	ActionLast
	ActionGoTo
	ActionExitFullscreen
	ActionToggleFullscreen
	ActionToggleHelp
	ActionToggleAuto
	ActionToggleNotes
	ActionOpenSearch
	ActionFocusNextCard
	ActionFocusPrevCard
	ActionExpandCard
	ActionCloseCard
	ActionScrollDown
	ActionScrollUp
	ActionCopySlide
)

// KeyMap holds the presenter key bindings.
type KeyMap struct {
	Next           key.Binding
	Previous       key.Binding
	First          key.Binding
	Last           key.Binding
	GoTo           key.Binding
	ExitFullscreen key.Binding
	Fullscreen     key.Binding
	Help           key.Binding
	Auto           key.Binding
	Notes          key.Binding
	Search         key.Binding
	FocusNext      key.Binding
	FocusPrev      key.Binding
	Expand         key.Binding
	CloseCard      key.Binding
	ScrollDown     key.Binding
	ScrollUp       key.Binding
	Copy           key.Binding
	Quit           key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next:           key.NewBinding(key.WithKeys("right", " ", "pgdown"), key.WithHelp("→/space", "next slide")),
		Previous:       key.NewBinding(key.WithKeys("left", "pgup"), key.WithHelp("←", "previous slide")),
		First:          key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first slide")),
		Last:           key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("end", "last slide")),
		GoTo:           key.NewBinding(key.WithKeys("g"), key.WithHelp("[n]g", "go to slide n")),
		ExitFullscreen: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "exit fullscreen")),
		Fullscreen:     key.NewBinding(key.WithKeys("f5"), key.WithHelp("f5", "toggle fullscreen")),
		Help:           key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Auto:           key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "auto-advance")),
		Notes:          key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "speaker notes")),
		Search:         key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		FocusNext:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next card")),
		FocusPrev:      key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous card")),
		Expand:         key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "expand card")),
		CloseCard:      key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "close card")),
		ScrollDown:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "scroll down")),
		ScrollUp:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "scroll up")),
		Copy:           key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy slide text")),
		Quit:           key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Previous, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Previous, k.First, k.Last, k.GoTo},
		{k.Fullscreen, k.ExitFullscreen, k.Auto, k.Notes, k.Search},
		{k.FocusNext, k.FocusPrev, k.Expand, k.CloseCard, k.Copy},
		{k.ScrollDown, k.ScrollUp, k.Help, k.Quit},
	}
}

// KeyHandler handles key input and maintains the slide number buffer.
type KeyHandler struct {
	keys      KeyMap
	keyBuffer string
}

// NewKeyHandler creates a new key handler.
func NewKeyHandler(keys KeyMap) *KeyHandler {
	return &KeyHandler{keys: keys}
}

// Handle processes a key message and returns the action. For ActionGoTo
// the int is the 1-based slide number typed before g.
func (k *KeyHandler) Handle(msg tea.KeyMsg) (KeyAction, int) {
	pressed := msg.String()

	// Numeric keys build up the buffer
	if isNumericKey(pressed) {
		k.keyBuffer += pressed
		return ActionNone, 0
	}

	n := 0
	if k.keyBuffer != "" {
		if v, err := strconv.Atoi(k.keyBuffer); err == nil {
			n = v
		}
	}
	k.keyBuffer = ""

	action := k.keyToAction(msg)
	if action == ActionGoTo && n == 0 {
		return ActionFirst, 0
	}
	return action, n
}

// KeyBuffer returns the current key buffer.
func (k *KeyHandler) KeyBuffer() string {
	return k.keyBuffer
}

// ClearBuffer clears the key buffer.
func (k *KeyHandler) ClearBuffer() {
	k.keyBuffer = ""
}

func (k *KeyHandler) keyToAction(msg tea.KeyMsg) KeyAction {
	switch {
	case key.Matches(msg, k.keys.Quit):
		return ActionQuit
	case key.Matches(msg, k.keys.Next):
		return ActionNext
	case key.Matches(msg, k.keys.Previous):
		return ActionPrevious
	case key.Matches(msg, k.keys.First):
		return ActionFirst
	case key.Matches(msg, k.keys.Last):
		return ActionLast
	case key.Matches(msg, k.keys.GoTo):
		return ActionGoTo
	case key.Matches(msg, k.keys.ExitFullscreen):
		return ActionExitFullscreen
	case key.Matches(msg, k.keys.Fullscreen):
		return ActionToggleFullscreen
	case key.Matches(msg, k.keys.Help):
		return ActionToggleHelp
	case key.Matches(msg, k.keys.Auto):
		return ActionToggleAuto
	case key.Matches(msg, k.keys.Notes):
		return ActionToggleNotes
	case key.Matches(msg, k.keys.Search):
		return ActionOpenSearch
	case key.Matches(msg, k.keys.FocusNext):
		return ActionFocusNextCard
	case key.Matches(msg, k.keys.FocusPrev):
		return ActionFocusPrevCard
	case key.Matches(msg, k.keys.Expand):
		return ActionExpandCard
	case key.Matches(msg, k.keys.CloseCard):
		return ActionCloseCard
	case key.Matches(msg, k.keys.ScrollDown):
		return ActionScrollDown
	case key.Matches(msg, k.keys.ScrollUp):
		return ActionScrollUp
	case key.Matches(msg, k.keys.Copy):
		return ActionCopySlide
	default:
		return ActionNone
	}
}

func isNumericKey(s string) bool {
	return len(s) == 1 && s >= "0" && s <= "9"
}
