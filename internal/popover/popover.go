// Package popover owns the visual lifecycle of a popup: open and close
// animations expressed as Bubble Tea commands, and placement of the popup
// relative to its trigger.
package popover

import (
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/tmux-popup-select/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Placement names where the popup sits relative to its trigger.
type Placement string

const (
	PlacementBottomStart Placement = "bottom-start"
	PlacementBottom      Placement = "bottom"
	PlacementBottomEnd   Placement = "bottom-end"
	PlacementTopStart    Placement = "top-start"
	PlacementTop         Placement = "top"
	PlacementTopEnd      Placement = "top-end"
)

// Strategy selects the box the popup is aligned against: the trigger
// (absolute) or the whole window (fixed).
type Strategy string

const (
	StrategyAbsolute Strategy = "absolute"
	StrategyFixed    Strategy = "fixed"
)

// DefaultWindowPadding keeps a fixed popup off the window edges.
const DefaultWindowPadding = 1

// ParsePlacement validates a placement name.
func ParsePlacement(s string) (Placement, error) {
	switch p := Placement(strings.TrimSpace(s)); p {
	case PlacementBottomStart, PlacementBottom, PlacementBottomEnd,
		PlacementTopStart, PlacementTop, PlacementTopEnd:
		return p, nil
	case "":
		return PlacementBottomStart, nil
	}
	return "", fmt.Errorf("unknown placement %q", s)
}

// ParseStrategy validates a strategy name.
func ParseStrategy(s string) (Strategy, error) {
	switch st := Strategy(strings.TrimSpace(s)); st {
	case StrategyAbsolute, StrategyFixed:
		return st, nil
	case "":
		return StrategyAbsolute, nil
	}
	return "", fmt.Errorf("unknown align strategy %q", s)
}

// Config describes positioning and animation timing.
type Config struct {
	Placement     Placement
	Strategy      Strategy
	Offset        int
	WindowPadding int
	OpenDuration  time.Duration
	CloseDuration time.Duration
	// Quick zeroes both durations.
	Quick bool
}

// Durations returns the effective open and close durations.
func (c Config) Durations() (time.Duration, time.Duration) {
	if c.Quick {
		return 0, 0
	}
	return max(c.OpenDuration, 0), max(c.CloseDuration, 0)
}

// Phase is the animation state of a popup.
type Phase int

const (
	PhaseClosed Phase = iota
	PhaseOpening
	PhaseOpen
	PhaseClosing
)

func (p Phase) String() string {
	switch p {
	case PhaseOpening:
		return "opening"
	case PhaseOpen:
		return "open"
	case PhaseClosing:
		return "closing"
	}
	return "closed"
}

// Visible reports whether the popup should be drawn.
func (p Phase) Visible() bool {
	return p != PhaseClosed
}

// SettledMsg is delivered when an open or close animation completes.
type SettledMsg struct {
	ID      string
	Seq     int
	Opening bool
}

// Lifecycle is the collaborator a menu drives to animate its popup.
type Lifecycle interface {
	// AnimateOpen starts the open animation; the returned command yields a
	// SettledMsg when it completes.
	AnimateOpen() tea.Cmd
	// AnimateClose starts the close animation.
	AnimateClose() tea.Cmd
	// Settle applies a SettledMsg and reports whether it belongs to the
	// latest animation of this popup.
	Settle(SettledMsg) bool
	Phase() Phase
	Config() Config
}

// Controller is the default Lifecycle.
type Controller struct {
	id     string
	config func() Config
	seq    int
	phase  Phase
}

// New returns a controller whose configuration is read lazily on every
// animation so option changes apply to the next transition.
func New(id string, config func() Config) *Controller {
	if config == nil {
		config = func() Config { return Config{} }
	}
	return &Controller{id: id, config: config}
}

// ID returns the popup identifier carried in SettledMsg.
func (c *Controller) ID() string {
	return c.id
}

func (c *Controller) Config() Config {
	return c.config()
}

func (c *Controller) Phase() Phase {
	return c.phase
}

func (c *Controller) AnimateOpen() tea.Cmd {
	open, _ := c.config().Durations()
	c.phase = PhaseOpening
	return c.animate(true, open)
}

func (c *Controller) AnimateClose() tea.Cmd {
	_, closing := c.config().Durations()
	c.phase = PhaseClosing
	return c.animate(false, closing)
}

func (c *Controller) Settle(msg SettledMsg) bool {
	if msg.ID != c.id || msg.Seq != c.seq {
		events.Popover.Settled(c.id, msg.Opening, true)
		return false
	}
	if msg.Opening {
		c.phase = PhaseOpen
	} else {
		c.phase = PhaseClosed
	}
	events.Popover.Settled(c.id, msg.Opening, false)
	return true
}

func (c *Controller) animate(opening bool, d time.Duration) tea.Cmd {
	c.seq++
	msg := SettledMsg{ID: c.id, Seq: c.seq, Opening: opening}
	events.Popover.Animate(c.id, opening, d)
	if d <= 0 {
		return func() tea.Msg { return msg }
	}
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

// Place composes the trigger and popup according to cfg. width is the
// window width used by the fixed strategy; zero falls back to the trigger.
func Place(trigger, popup string, cfg Config, width int) string {
	if popup == "" {
		return trigger
	}
	placement := cfg.Placement
	if placement == "" {
		placement = PlacementBottomStart
	}
	hpos := lipgloss.Left
	switch placement {
	case PlacementBottom, PlacementTop:
		hpos = lipgloss.Center
	case PlacementBottomEnd, PlacementTopEnd:
		hpos = lipgloss.Right
	}

	box := lipgloss.Width(trigger)
	if cfg.Strategy == StrategyFixed && width > 0 {
		pad := cfg.WindowPadding
		if pad < 0 {
			pad = 0
		}
		box = max(width-2*pad, 0)
		popup = lipgloss.NewStyle().MarginLeft(pad).Render(
			lipgloss.PlaceHorizontal(box, hpos, popup),
		)
	} else if w := lipgloss.Width(popup); w < box {
		popup = lipgloss.PlaceHorizontal(box, hpos, popup)
	} else if hpos != lipgloss.Left {
		trigger = lipgloss.PlaceHorizontal(w, hpos, trigger)
	}

	parts := []string{trigger, popup}
	if strings.HasPrefix(string(placement), "top") {
		parts = []string{popup, trigger}
	}
	if cfg.Offset > 0 {
		// an empty string renders as one blank row
		gap := strings.Repeat("\n", cfg.Offset-1)
		parts = []string{parts[0], gap, parts[1]}
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
