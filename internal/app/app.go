package app

import (
	"errors"
	"time"

	"github.com/atomicstack/tmux-popup-select/internal/backend"
	"github.com/atomicstack/tmux-popup-select/internal/data/dispatcher"
	"github.com/atomicstack/tmux-popup-select/internal/menu"
	"github.com/atomicstack/tmux-popup-select/internal/state"
	"github.com/atomicstack/tmux-popup-select/internal/ui"
	"github.com/atomicstack/tmux-popup-select/internal/ui/selector"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Entries   []menu.Entry
	ItemsPath string
	// Load reads ItemsPath when watching for changes.
	Load          backend.Loader `json:"-"`
	Label         string
	Value         string
	Index         int
	Filter        string
	Watch         bool
	WatchInterval time.Duration
	ReloadGap     time.Duration
	Width         int
	Height        int
	ShowFooter    bool
	Select        selector.Options
}

// Run bootstraps and executes the Bubble Tea program and reports what the
// user chose.
func Run(cfg Config) (ui.Result, error) {
	store := state.NewOptionStore(menu.AlignDescriptions(cfg.Entries))
	store.SetFilter(cfg.Filter)

	opts := ui.Options{
		Store:        store,
		Select:       cfg.Select,
		Label:        cfg.Label,
		Value:        cfg.Value,
		Index:        cfg.Index,
		Width:        cfg.Width,
		Height:       cfg.Height,
		ShowFooter:   cfg.ShowFooter,
		StayOnSelect: cfg.Select.Menu.KeepOpenOnItemClick,
	}
	if cfg.Watch && cfg.ItemsPath != "" && cfg.Load != nil {
		watcher := backend.NewWatcher(cfg.ItemsPath, cfg.WatchInterval, cfg.ReloadGap, cfg.Load)
		defer watcher.Stop()
		opts.Watcher = watcher
		opts.Dispatcher = dispatcher.New(store, menu.AlignDescriptions)
	}

	model := ui.NewModel(opts)
	defer model.Close()
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return model.Result(), nil
	}
	return model.Result(), err
}
