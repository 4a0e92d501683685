package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/tmux-popup-select/internal/app"
	"github.com/atomicstack/tmux-popup-select/internal/backend"
	"github.com/atomicstack/tmux-popup-select/internal/menu"
	"github.com/atomicstack/tmux-popup-select/internal/popover"
	"github.com/atomicstack/tmux-popup-select/internal/ui/popup"
	"github.com/atomicstack/tmux-popup-select/internal/ui/selector"
	"github.com/atomicstack/tmux-popup-select/internal/ui/state"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const envPrefix = "TMUX_POPUP_SELECT_"

const (
	envItems             = envPrefix + "ITEMS"
	envValue             = envPrefix + "VALUE"
	envIndex             = envPrefix + "INDEX"
	envLabel             = envPrefix + "LABEL"
	envDisplayText       = envPrefix + "DISPLAY_TEXT"
	envName              = envPrefix + "NAME"
	envRequired          = envPrefix + "REQUIRED"
	envDisabled          = envPrefix + "DISABLED"
	envQuick             = envPrefix + "QUICK"
	envOffset            = envPrefix + "OFFSET"
	envAlign             = envPrefix + "ALIGN"
	envAlignStrategy     = envPrefix + "ALIGN_STRATEGY"
	envOpenDuration      = envPrefix + "OPEN_DURATION"
	envCloseDuration     = envPrefix + "CLOSE_DURATION"
	envKeepOpenBlur      = envPrefix + "KEEP_OPEN_BLUR"
	envKeepOpenClickItem = envPrefix + "KEEP_OPEN_CLICK_ITEM"
	envKeepOpenClickAway = envPrefix + "KEEP_OPEN_CLICK_AWAY"
	envNoListControl     = envPrefix + "NO_LIST_CONTROL"
	envNoFocusControl    = envPrefix + "NO_FOCUS_CONTROL"
	envWrap              = envPrefix + "WRAP"
	envTypeaheadWindow   = envPrefix + "TYPEAHEAD_WINDOW"
	envSingleCharSearch  = envPrefix + "SINGLE_CHAR_SEARCH"
	envMaxItems          = envPrefix + "MAX_ITEMS"
	envFilter            = envPrefix + "FILTER"
	envWatch             = envPrefix + "WATCH"
	envWatchInterval     = envPrefix + "WATCH_INTERVAL"
	envReloadGap         = envPrefix + "RELOAD_GAP"
	envWidth             = envPrefix + "WIDTH"
	envHeight            = envPrefix + "HEIGHT"
	envShowFooter        = envPrefix + "FOOTER"
	envTrace             = envPrefix + "TRACE"
	envLogFile           = envPrefix + "LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("tmux-popup-select", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	items := fs.String("items", envOrDefault(env, envItems, ""), "file to read options from (.toml, .yaml, or one option per line)")
	value := fs.String("value", envOrDefault(env, envValue, ""), "value to select initially")
	index := fs.Int("index", envOrInt(env, envIndex, -1), "index to select initially (-1 leaves the selection alone)")
	label := fs.String("label", envOrDefault(env, envLabel, ""), "label shown before the field")
	displayText := fs.String("display-text", envOrDefault(env, envDisplayText, ""), "text shown in the field until options load")
	name := fs.String("name", envOrDefault(env, envName, ""), "print name=value instead of the bare value")
	required := fs.Bool("required", envOrBool(env, envRequired, false), "refuse to submit without a value")
	disabled := fs.Bool("disabled", envOrBool(env, envDisabled, false), "render the field read-only")
	quick := fs.Bool("quick", envOrBool(env, envQuick, false), "skip open and close animations")
	offset := fs.Int("offset", envOrInt(env, envOffset, 0), "rows between the field and the menu")
	align := fs.String("align", envOrDefault(env, envAlign, string(popover.PlacementBottomStart)), "menu placement relative to the field")
	alignStrategy := fs.String("align-strategy", envOrDefault(env, envAlignStrategy, string(popover.StrategyAbsolute)), "align against the field (absolute) or the window (fixed)")
	openDuration := fs.Duration("open-duration", envOrDuration(env, envOpenDuration, 120*time.Millisecond), "menu open animation duration")
	closeDuration := fs.Duration("close-duration", envOrDuration(env, envCloseDuration, 80*time.Millisecond), "menu close animation duration")
	keepOpenBlur := fs.Bool("keep-open-blur", envOrBool(env, envKeepOpenBlur, false), "keep the menu open when focus leaves it")
	keepOpenClickItem := fs.Bool("keep-open-click-item", envOrBool(env, envKeepOpenClickItem, false), "keep the menu open after choosing an item")
	keepOpenClickAway := fs.Bool("keep-open-click-away", envOrBool(env, envKeepOpenClickAway, false), "keep the menu open after clicking outside it")
	noListControl := fs.Bool("no-list-control", envOrBool(env, envNoListControl, false), "disable keyboard navigation inside the menu")
	noFocusControl := fs.Bool("no-focus-control", envOrBool(env, envNoFocusControl, false), "do not move focus when the menu opens or closes")
	wrap := fs.Bool("wrap", envOrBool(env, envWrap, false), "wrap around at the ends of the list")
	typeaheadWindow := fs.Duration("typeahead-window", envOrDuration(env, envTypeaheadWindow, state.DefaultTypeaheadWindow), "pause that ends a typeahead search")
	singleChar := fs.Bool("single-char-search", envOrBool(env, envSingleCharSearch, false), "match typeahead on the last key only")
	maxItems := fs.Int("max-items", envOrInt(env, envMaxItems, 10), "menu rows before scrolling (0 shows all)")
	filter := fs.String("filter", envOrDefault(env, envFilter, ""), "fuzzy filter applied to the options")
	watch := fs.Bool("watch", envOrBool(env, envWatch, false), "reload the items file when it changes")
	watchInterval := fs.Duration("watch-interval", envOrDuration(env, envWatchInterval, time.Second), "items file poll interval")
	reloadGap := fs.Duration("reload-gap", envOrDuration(env, envReloadGap, backend.DefaultReloadGap), "minimum time between two reloads of the items file")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *maxItems < 0 {
		return Config{}, fmt.Errorf("max-items must be >= 0 (got %d)", *maxItems)
	}
	placement, err := popover.ParsePlacement(*align)
	if err != nil {
		return Config{}, err
	}
	strategy, err := popover.ParseStrategy(*alignStrategy)
	if err != nil {
		return Config{}, err
	}

	entries := make([]menu.Entry, 0, fs.NArg())
	for _, arg := range fs.Args() {
		if strings.TrimSpace(arg) == "" {
			continue
		}
		entries = append(entries, menu.ParseEntry(arg))
	}
	if *items != "" {
		loaded, err := LoadEntries(*items)
		if err != nil {
			return Config{}, err
		}
		entries = append(entries, loaded...)
	}

	cfg := Config{
		App: app.Config{
			Entries:       entries,
			ItemsPath:     *items,
			Load:          LoadEntries,
			Label:         *label,
			Value:         *value,
			Index:         *index,
			Filter:        *filter,
			Watch:         *watch,
			WatchInterval: *watchInterval,
			ReloadGap:     *reloadGap,
			Width:         *width,
			Height:        *height,
			ShowFooter:    *footer,
			Select: selector.Options{
				Name:        *name,
				Required:    *required,
				Disabled:    *disabled,
				DisplayText: *displayText,
				Menu: popup.Options{
					KeepOpenOnBlur:      *keepOpenBlur,
					KeepOpenOnItemClick: *keepOpenClickItem,
					KeepOpenOnClickAway: *keepOpenClickAway,
					NoListControl:       *noListControl,
					NoFocusControl:      *noFocusControl,
					Wrap:                *wrap,
					Height:              *maxItems,
					TypeaheadWindow:     *typeaheadWindow,
					SingleCharSearch:    *singleChar,
					Popover: popover.Config{
						Placement:     placement,
						Strategy:      strategy,
						Offset:        *offset,
						WindowPadding: popover.DefaultWindowPadding,
						OpenDuration:  *openDuration,
						CloseDuration: *closeDuration,
						Quick:         *quick,
					},
				},
			},
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"items":         *items,
			"value":         *value,
			"index":         strconv.Itoa(*index),
			"align":         string(placement),
			"alignStrategy": string(strategy),
			"quick":         strconv.FormatBool(*quick),
			"wrap":          strconv.FormatBool(*wrap),
			"filter":        *filter,
			"watch":         strconv.FormatBool(*watch),
			"reloadGap":     reloadGap.String(),
			"width":         strconv.Itoa(*width),
			"height":        strconv.Itoa(*height),
			"footer":        strconv.FormatBool(*footer),
			"trace":         strconv.FormatBool(*trace),
			"logFile":       *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if len(cfg.App.Entries) == 0 && cfg.App.ItemsPath == "" {
		return fmt.Errorf("no options given: pass value=label arguments or --items")
	}
	if cfg.App.Watch && cfg.App.ItemsPath == "" {
		return fmt.Errorf("--watch requires --items")
	}
	if cfg.App.Watch && cfg.App.WatchInterval <= 0 {
		return fmt.Errorf("watch-interval must be > 0 (got %s)", cfg.App.WatchInterval)
	}
	if cfg.App.ReloadGap < 0 {
		return fmt.Errorf("reload-gap must be >= 0 (got %s)", cfg.App.ReloadGap)
	}
	return nil
}
