//go:build windows

package platform

import (
	"errors"
	"strings"
	"testing"
)

func TestAutostartRegistryCommands(t *testing.T) {
	autostart := newTestAutostart("kitchen-timer")
	registered := false
	var commands []string
	autostart.run = func(name string, args ...string) ([]byte, error) {
		commands = append(commands, strings.Join(args, " "))
		switch args[0] {
		case "add":
			registered = true
		case "delete":
			registered = false
		case "query":
			if !registered {
				return nil, errors.New("exit status 1")
			}
		}
		return nil, nil
	}

	if err := autostart.Apply(true, `C:\Apps\kitchen-timer.exe`); err != nil {
		t.Fatalf("enable: %v", err)
	}
	if !strings.Contains(commands[0], `"C:\Apps\kitchen-timer.exe" --background`) {
		t.Errorf("unexpected add command %q", commands[0])
	}
	if enabled, _ := autostart.Enabled(); !enabled {
		t.Error("expected enabled")
	}
	if err := autostart.Apply(false, ""); err != nil {
		t.Fatalf("disable: %v", err)
	}
	if err := autostart.Apply(false, ""); err != nil {
		t.Errorf("disabling twice should succeed: %v", err)
	}
}
