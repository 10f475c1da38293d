package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/spf13/afero"
	"github.com/urfave/cli"

	"kitchentimer/internal/alert"
	"kitchentimer/internal/core/model"
	"kitchentimer/internal/core/timer"
	"kitchentimer/internal/logger"
	"kitchentimer/internal/mqtt"
	"kitchentimer/internal/platform"
	"kitchentimer/internal/storage"
	"kitchentimer/internal/ui/preferences"
	"kitchentimer/internal/ui/timerwindow"
	"kitchentimer/internal/ui/tray"
	"kitchentimer/resources"
)

const (
	appName = "kitchen-timer"
	appID   = "com.kitchentimer.app"
)

func main() {
	cliApp := cli.App{
		Name:      appName,
		HelpName:  appName,
		Usage:     "A countdown timer that keeps counting after zero.",
		UsageText: appName + " [options]",
		Flags:     appFlags,
		Action:    run,
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(ctx *cli.Context) error {
	configDir, err := platform.NewService().AppDir(appName)
	if err != nil {
		return err
	}

	settings, err := storage.LoadSettings(afero.NewOsFs(), configDir)
	if err != nil {
		log.Printf("load settings: %v (using defaults)", err)
	}
	settings = applyFlags(ctx, settings)

	if printStateFlag {
		return printState(configDir, settings)
	}

	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return nil
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID(appID)
	fyneApp.SetIcon(resources.AppIcon())

	store, closeStore, err := storage.Open(storage.OpenConfig{
		Backend:     settings.Backend,
		Path:        settings.StatePath,
		Dir:         configDir,
		Preferences: fyneApp.Preferences(),
	})
	if err != nil {
		return fmt.Errorf("open state store: %w", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Printf("close state store: %v", err)
		}
	}()

	baseLogger := logger.NewStandardLogger(log.Default(), "")

	var publisher mqtt.Publisher
	if settings.MQTTBroker != "" {
		realPublisher, err := mqtt.NewRealPublisher(settings.MQTTBroker)
		if err != nil {
			log.Printf("mqtt disabled: %v", err)
		} else {
			publisher = realPublisher
			defer func() {
				_ = realPublisher.Close()
			}()
		}
	}

	desktopApp, hasTray := fyneApp.(desktop.App)
	if !hasTray {
		log.Printf("system tray unsupported on this platform")
	}

	// The tray exists before the engine so the alert pattern can pulse its icon.
	var engine *timer.Engine
	var timerWindow *timerwindow.Window
	var prefsWindow *preferences.Window
	var trayApp desktop.App
	if hasTray {
		trayApp = desktopApp
	}
	trayManager := tray.New(trayApp, settings.Presets, tray.Callbacks{
		OnOpen:          func() { timerWindow.Show() },
		OnPauseOrResume: func() { engine.PauseOrResume() },
		OnReset:         func() { engine.Reset() },
		OnPreset: func(minutes int) {
			timerWindow.SetMinutesText(fmt.Sprint(minutes))
			engine.ApplyPreset(minutes)
			engine.Start(0)
		},
		OnPreferences: func() { prefsWindow.Show() },
		OnQuit:        func() { fyneApp.Quit() },
	})

	notifier := alert.NewFyneNotifier(fyneApp, settings.Notifications)
	dispatcher := alert.NewDispatcher(alert.Options{
		Sound:     alert.NewBeepPlayer(alert.DefaultTone(), baseLogger.Named("sound")),
		Vibrator:  alert.NewPatternVibrator(trayManager.SetPulse),
		Notifier:  notifier,
		Publisher: publisher,
		Logger:    baseLogger.Named("alert"),
	})

	engine, err = timer.New(timer.Options{
		Config:  engineConfig(settings),
		Store:   store,
		Alerter: dispatcher,
		Logger:  baseLogger.Named("timer"),
	})
	if err != nil {
		if errors.Is(err, timer.ErrMissingCollaborator) {
			log.Fatalf("create timer: %v", err)
		}
		return err
	}

	timerWindow = timerwindow.New(fyneApp, settings.Presets, timerwindow.Callbacks{
		OnStart:         engine.StartInput,
		OnPauseOrResume: engine.PauseOrResume,
		OnReset:         engine.Reset,
		OnPreset:        engine.ApplyPreset,
		OnNotify:        engine.SetNotifyPreference,
	})
	if settings.DefaultMinutes > 0 {
		timerWindow.SetMinutesText(fmt.Sprint(settings.DefaultMinutes))
	}

	prefsWindow = preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		settings.Presets = updated.Presets
		settings.DefaultMinutes = updated.DefaultMinutes
		settings.Notifications = updated.Notifications
		settings.MQTTBroker = updated.MQTTBroker
		if updated.Autostart != settings.Autostart {
			settings.Autostart = updated.Autostart
			applyAutostart(settings.Autostart)
		}
		if err := storage.SaveSettings(afero.NewOsFs(), configDir, settings); err != nil {
			log.Printf("save settings: %v", err)
		}
		notifier.SetEnabled(settings.Notifications)
		timerWindow.SetPresets(settings.Presets)
		trayManager.SetPresets(settings.Presets)
	})

	guard.OnActivate(func() {
		fyne.Do(timerWindow.Show)
	})

	timerWindow.Follow(engine.Subscribe(8))
	trayEvents := engine.Subscribe(8)
	go func() {
		for event := range trayEvents {
			snapshot := event.Snapshot
			fyne.Do(func() {
				trayManager.Render(snapshot)
			})
		}
	}()

	fyneApp.Lifecycle().SetOnStopped(func() {
		if err := engine.Close(); err != nil {
			log.Printf("save timer state: %v", err)
		}
		dispatcher.Wait()
	})

	initial := engine.Snapshot()
	timerWindow.Render(initial)
	trayManager.Render(initial)
	engine.StartTicking()

	if !backgroundFlag || !hasTray {
		timerWindow.Show()
	}
	fyneApp.Run()
	return nil
}

func applyAutostart(enabled bool) {
	execPath, err := os.Executable()
	if err != nil {
		log.Printf("autostart: %v", err)
		return
	}
	if err := platform.NewAutostart(appName).Apply(enabled, execPath); err != nil {
		log.Printf("autostart: %v", err)
	}
}

// printState shows the persisted state without starting the UI or the tick loop.
func printState(configDir string, settings preferences.Settings) error {
	fyneApp := app.NewWithID(appID)
	store, closeStore, err := storage.Open(storage.OpenConfig{
		Backend:     settings.Backend,
		Path:        settings.StatePath,
		Dir:         configDir,
		Preferences: fyneApp.Preferences(),
	})
	if err != nil {
		return fmt.Errorf("open state store: %w", err)
	}
	defer func() {
		_ = closeStore()
	}()

	engine, err := timer.New(timer.Options{
		Config: engineConfig(settings),
		Store:  store,
		Logger: logger.NewStandardLogger(log.Default(), "timer"),
	})
	if err != nil {
		return err
	}

	raw, err := model.EncodeState(engine.State())
	if err != nil {
		return err
	}
	fmt.Println(engine.Display())
	fmt.Println(raw)
	return nil
}
