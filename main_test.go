package main

import (
	"reflect"
	"testing"

	"github.com/atomicstack/segmented-pager/internal/app"
	"github.com/atomicstack/segmented-pager/internal/config"
	"github.com/atomicstack/segmented-pager/internal/pager"
	"github.com/atomicstack/segmented-pager/internal/ui"
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
			Width:      80,
			Height:     24,
			ShowFooter: true,
			Sync:       pager.SyncContinuous,
			Pages:      ui.DemoPages(),
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		File: "pager.toml",
		Flags: map[string]string{
			"width":  "80",
			"height": "24",
			"footer": "true",
			"sync":   "continuous",
		},
		Args: []string{"-sync", "continuous", "-config", "pager.toml"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["width"] != "80" || flagsValue["height"] != "24" {
		t.Fatalf("expected 80x24, got %v x %v", flagsValue["width"], flagsValue["height"])
	}
	if flagsValue["sync"] != "continuous" {
		t.Fatalf("expected sync flag continuous, got %v", flagsValue["sync"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}
	if payload["configFile"] != "pager.toml" {
		t.Fatalf("expected config file in payload, got %v", payload["configFile"])
	}
	labels, ok := payload["segments"].([]string)
	if !ok || !reflect.DeepEqual(labels, []string{"First", "Second", "Third", "Last", "Last"}) {
		t.Fatalf("expected segment labels, got %v", payload["segments"])
	}

	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if !reflect.DeepEqual(cfgValue.App, cfg.App) {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}
