package main

import (
	"time"

	"github.com/urfave/cli"

	"kitchentimer/internal/core/timer"
	"kitchentimer/internal/ui/preferences"
)

var (
	backendFlag    string
	statePathFlag  string
	tickFlag       time.Duration
	mqttBrokerFlag string
	printStateFlag bool
	backgroundFlag bool
)

var appFlags = []cli.Flag{
	cli.StringFlag{
		Name:        "backend, b",
		Usage:       "state store backend: preferences, file, sqlite or memory",
		Destination: &backendFlag,
		EnvVar:      "KITCHEN_TIMER_BACKEND",
	},
	cli.StringFlag{
		Name:        "state-path",
		Usage:       "state file or database path for the file and sqlite backends",
		Destination: &statePathFlag,
	},
	cli.DurationFlag{
		Name:        "tick",
		Usage:       "display refresh interval (default: 250ms)",
		Destination: &tickFlag,
	},
	cli.StringFlag{
		Name:        "mqtt-broker",
		Usage:       "publish countdown completions to this broker, e.g. tcp://localhost:1883",
		Destination: &mqttBrokerFlag,
		EnvVar:      "KITCHEN_TIMER_MQTT_BROKER",
	},
	cli.BoolFlag{
		Name:        "background",
		Usage:       "start in the system tray without opening the window",
		Destination: &backgroundFlag,
	},
	cli.BoolFlag{
		Name:        "print-state",
		Usage:       "print the stored timer state and exit",
		Destination: &printStateFlag,
	},
}

// applyFlags overrides settings with explicitly set flags.
func applyFlags(ctx *cli.Context, settings preferences.Settings) preferences.Settings {
	if ctx.IsSet("backend") {
		settings.Backend = backendFlag
	}
	if ctx.IsSet("state-path") {
		settings.StatePath = statePathFlag
	}
	if ctx.IsSet("tick") && tickFlag > 0 {
		settings.TickInterval = tickFlag
	}
	if ctx.IsSet("mqtt-broker") {
		settings.MQTTBroker = mqttBrokerFlag
	}
	return settings
}

// engineConfig converts settings to the engine configuration.
func engineConfig(settings preferences.Settings) timer.Config {
	return timer.Config{
		TickInterval: settings.TickInterval,
		StorageKey:   timer.DefaultStorageKey,
	}
}
