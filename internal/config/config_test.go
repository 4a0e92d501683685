package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/atomicstack/tmux-popup-select/internal/backend"
	"github.com/atomicstack/tmux-popup-select/internal/menu"
	"github.com/atomicstack/tmux-popup-select/internal/popover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs([]string{"a=Apple", "*b=Banana"}, nil)
	require.NoError(t, err)

	assert.Equal(t, []menu.Entry{
		{Value: "a", Label: "Apple"},
		{Value: "b", Label: "Banana", Selected: true},
	}, cfg.App.Entries)
	assert.Equal(t, -1, cfg.App.Index)
	opts := cfg.App.Select.Menu
	assert.Equal(t, popover.PlacementBottomStart, opts.Popover.Placement)
	assert.Equal(t, popover.StrategyAbsolute, opts.Popover.Strategy)
	assert.Equal(t, 10, opts.Height)
	assert.Equal(t, 500*time.Millisecond, opts.TypeaheadWindow)
	assert.False(t, opts.Wrap)
	assert.False(t, cfg.Logging.Trace)
	require.NoError(t, Validate(cfg))
}

func TestLoadArgsFlagsOverrideEnv(t *testing.T) {
	env := []string{
		"TMUX_POPUP_SELECT_QUICK=true",
		"TMUX_POPUP_SELECT_ALIGN=top-end",
		"TMUX_POPUP_SELECT_WRAP=1",
		"TMUX_POPUP_SELECT_TYPEAHEAD_WINDOW=1s",
		"TMUX_POPUP_SELECT_TRACE=yes-please",
	}
	cfg, err := LoadArgs([]string{"--align", "bottom-end", "--offset", "2", "--keep-open-click-item", "x"}, env)
	require.NoError(t, err)

	opts := cfg.App.Select.Menu
	assert.True(t, opts.Popover.Quick)
	assert.True(t, opts.Wrap)
	assert.True(t, opts.KeepOpenOnItemClick)
	assert.Equal(t, popover.PlacementBottomEnd, opts.Popover.Placement)
	assert.Equal(t, 2, opts.Popover.Offset)
	assert.Equal(t, time.Second, opts.TypeaheadWindow)
	assert.False(t, cfg.Logging.Trace, "unparseable env falls back to the default")
}

func TestLoadArgsRejectsInvalidValues(t *testing.T) {
	for _, args := range [][]string{
		{"--width", "-1"},
		{"--height", "-3"},
		{"--max-items", "-1"},
		{"--align", "left"},
		{"--align-strategy", "sticky"},
		{"--unknown"},
	} {
		_, err := LoadArgs(args, nil)
		assert.Error(t, err, "args %v", args)
	}
}

func TestValidate(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	require.NoError(t, err)
	assert.Error(t, Validate(cfg), "no options")

	cfg, err = LoadArgs([]string{"--watch", "a"}, nil)
	require.NoError(t, err)
	assert.Error(t, Validate(cfg), "watch without items file")
}

func TestReloadGap(t *testing.T) {
	cfg, err := LoadArgs([]string{"a"}, nil)
	require.NoError(t, err)
	assert.Equal(t, backend.DefaultReloadGap, cfg.App.ReloadGap)

	cfg, err = LoadArgs([]string{"a"}, []string{"TMUX_POPUP_SELECT_RELOAD_GAP=1s"})
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.App.ReloadGap)
	assert.Equal(t, "1s", cfg.Flags["reloadGap"])

	cfg, err = LoadArgs([]string{"--reload-gap", "-1s", "a"}, nil)
	require.NoError(t, err)
	assert.Error(t, Validate(cfg))
}

func TestLoadArgsReadsItemsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fruit.toml")
	doc := "[[items]]\nvalue = \"a\"\nlabel = \"Apple\"\n\n[[items]]\nvalue = \"b\"\nlabel = \"Banana\"\ndisabled = true\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := LoadArgs([]string{"--items", path, "z=Zucchini"}, nil)
	require.NoError(t, err)
	require.Len(t, cfg.App.Entries, 3)
	assert.Equal(t, "z", cfg.App.Entries[0].Value)
	assert.Equal(t, "Apple", cfg.App.Entries[1].Label)
	assert.True(t, cfg.App.Entries[2].Disabled)
}

func TestLoadArgsMissingItemsFile(t *testing.T) {
	_, err := LoadArgs([]string{"--items", filepath.Join(t.TempDir(), "nope.txt")}, nil)
	assert.Error(t, err)
}
