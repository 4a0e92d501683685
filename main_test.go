package main

import (
	"testing"

	"github.com/atomicstack/tmux-popup-select/internal/app"
	"github.com/atomicstack/tmux-popup-select/internal/config"
	"github.com/atomicstack/tmux-popup-select/internal/ui"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			ItemsPath:  "items.toml",
			Width:      80,
			Height:     24,
			ShowFooter: true,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"items":  "items.toml",
			"width":  "80",
			"height": "24",
			"footer": "true",
			"wrap":   "true",
		},
		Args: []string{"--items", "items.toml", "--wrap"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["items"] != "items.toml" {
		t.Fatalf("expected items flag %q, got %v", "items.toml", flagsValue["items"])
	}
	if flagsValue["width"] != "80" {
		t.Fatalf("expected width 80, got %v", flagsValue["width"])
	}
	if flagsValue["height"] != "24" {
		t.Fatalf("expected height 24, got %v", flagsValue["height"])
	}
	if flagsValue["footer"] != "true" {
		t.Fatalf("expected footer flag true, got %v", flagsValue["footer"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["wrap"] != "true" {
		t.Fatalf("expected wrap flag true, got %v", flagsValue["wrap"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}

	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App.ItemsPath != cfg.App.ItemsPath {
		t.Fatalf("expected items path %q, got %q", cfg.App.ItemsPath, cfgValue.App.ItemsPath)
	}
}

func TestFormatResult(t *testing.T) {
	if got := formatResult(ui.Result{Value: "b", Committed: true}); got != "b" {
		t.Fatalf("expected bare value, got %q", got)
	}
	if got := formatResult(ui.Result{Name: "fruit", Value: "b", Committed: true}); got != "fruit=b" {
		t.Fatalf("expected name=value, got %q", got)
	}
}
