package main

import (
	"flag"
	"testing"
	"time"

	"github.com/urfave/cli"

	"kitchentimer/internal/core/timer"
	"kitchentimer/internal/platform"
	"kitchentimer/internal/ui/preferences"
)

func TestEngineConfig(t *testing.T) {
	settings := preferences.DefaultSettings()
	config := engineConfig(settings)
	if config.TickInterval != timer.DefaultTickInterval {
		t.Errorf("tick %v, want %v", config.TickInterval, timer.DefaultTickInterval)
	}
	if config.StorageKey != "kitchen-timer-state" {
		t.Errorf("storage key %q", config.StorageKey)
	}

	settings.TickInterval = 500 * time.Millisecond
	if got := engineConfig(settings).TickInterval; got != 500*time.Millisecond {
		t.Errorf("tick %v", got)
	}
}

func TestApplyFlagsOverridesOnlySetFlags(t *testing.T) {
	set := flag.NewFlagSet("kitchen-timer", flag.ContinueOnError)
	for _, f := range appFlags {
		f.Apply(set)
	}
	if err := set.Parse([]string{"--backend", "sqlite", "--tick", "100ms"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	ctx := cli.NewContext(nil, set, nil)

	settings := preferences.DefaultSettings()
	settings.MQTTBroker = "tcp://saved:1883"
	got := applyFlags(ctx, settings)

	if got.Backend != "sqlite" {
		t.Errorf("backend %q", got.Backend)
	}
	if got.TickInterval != 100*time.Millisecond {
		t.Errorf("tick %v", got.TickInterval)
	}
	if got.MQTTBroker != "tcp://saved:1883" {
		t.Errorf("unset flag overrode broker: %q", got.MQTTBroker)
	}
}

func TestAutostartArgumentIsAcceptedFlag(t *testing.T) {
	set := flag.NewFlagSet("kitchen-timer", flag.ContinueOnError)
	for _, f := range appFlags {
		f.Apply(set)
	}
	backgroundFlag = false
	defer func() { backgroundFlag = false }()

	if err := set.Parse([]string{platform.BackgroundArg}); err != nil {
		t.Fatalf("parse %s: %v", platform.BackgroundArg, err)
	}
	if !backgroundFlag {
		t.Error("autostart argument should select background start")
	}
}
