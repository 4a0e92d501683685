package state

// Action is the semantic navigation action a key press resolves to.
type Action int

const (
	ActionNone Action = iota
	ActionClose
	ActionCloseSelect
	ActionFirst
	ActionLast
	ActionNext
	ActionOpen
	ActionPageDown
	ActionPageUp
	ActionPrevious
	ActionType
)

var actionNames = map[Action]string{
	ActionNone:        "none",
	ActionClose:       "close",
	ActionCloseSelect: "close-select",
	ActionFirst:       "first",
	ActionLast:        "last",
	ActionNext:        "next",
	ActionOpen:        "open",
	ActionPageDown:    "page-down",
	ActionPageUp:      "page-up",
	ActionPrevious:    "previous",
	ActionType:        "type",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// Key names understood by ActionFromKey. Printable characters are passed as
// the character itself; KeySpace is a single space.
const (
	KeyArrowDown = "ArrowDown"
	KeyArrowUp   = "ArrowUp"
	KeyEnter     = "Enter"
	KeySpace     = " "
	KeyHome      = "Home"
	KeyEnd       = "End"
	KeyPageUp    = "PageUp"
	KeyPageDown  = "PageDown"
	KeyEscape    = "Escape"
	KeyBackspace = "Backspace"
	KeyClear     = "Clear"
)

// Key is a keyboard input with its modifier state.
type Key struct {
	Name string
	Alt  bool
	Ctrl bool
	Meta bool
}

// Printable reports whether the key is a single character typed without a
// command modifier. A bare space is not printable here: it opens and commits.
func (k Key) Printable() bool {
	if k.Alt || k.Ctrl || k.Meta || k.Name == KeySpace {
		return false
	}
	return len([]rune(k.Name)) == 1
}

// ActionFromKey maps a key press to an action given whether the menu is open.
// ActionNone means the key is not ours and must pass through untouched.
func ActionFromKey(key Key, open bool) Action {
	switch {
	case !open && isOpenKey(key.Name):
		return ActionOpen
	case key.Name == KeyHome:
		return ActionFirst
	case key.Name == KeyEnd:
		return ActionLast
	case key.Name == KeyBackspace || key.Name == KeyClear || key.Printable():
		return ActionType
	}
	if !open {
		return ActionNone
	}
	switch key.Name {
	case KeyArrowUp:
		if key.Alt {
			return ActionCloseSelect
		}
		return ActionPrevious
	case KeyArrowDown:
		if key.Alt {
			return ActionNone
		}
		return ActionNext
	case KeyPageUp:
		return ActionPageUp
	case KeyPageDown:
		return ActionPageDown
	case KeyEscape:
		return ActionClose
	case KeyEnter, KeySpace:
		return ActionCloseSelect
	}
	return ActionNone
}

func isOpenKey(name string) bool {
	switch name {
	case KeyArrowDown, KeyArrowUp, KeyEnter, KeySpace:
		return true
	}
	return false
}
