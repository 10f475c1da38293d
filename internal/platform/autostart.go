package platform

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/afero"
)

// ErrAutostartUnsupported indicates the OS has no login item mechanism here.
var ErrAutostartUnsupported = errors.New("autostart unsupported on this platform")

// BackgroundArg is passed to autostarted instances so they open in the tray only.
const BackgroundArg = "--background"

// Autostart registers the application as a login item.
type Autostart struct {
	appName string
	fs      afero.Fs
	service *platformService
	run     func(name string, args ...string) ([]byte, error)
}

// NewAutostart returns an Autostart for appName on the real filesystem.
func NewAutostart(appName string) *Autostart {
	return &Autostart{
		appName: appName,
		fs:      afero.NewOsFs(),
		service: NewService().(*platformService),
		run: func(name string, args ...string) ([]byte, error) {
			return exec.Command(name, args...).CombinedOutput()
		},
	}
}

// Apply enables or disables the login item. Enabling registers execPath
// with BackgroundArg.
func (autostart *Autostart) Apply(enabled bool, execPath string) error {
	if autostart.appName == "" {
		return fmt.Errorf("autostart: app name is empty")
	}
	if !enabled {
		return autostart.disable()
	}
	if execPath == "" {
		return fmt.Errorf("enable autostart: exec path is empty")
	}
	return autostart.enable(execPath)
}

// Enabled reports whether the login item is registered.
func (autostart *Autostart) Enabled() (bool, error) {
	if autostart.appName == "" {
		return false, fmt.Errorf("autostart: app name is empty")
	}
	return autostart.enabled()
}

func (autostart *Autostart) fileExists(path string) (bool, error) {
	_, err := autostart.fs.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("check autostart entry: %w", err)
}

func (autostart *Autostart) removeFile(path string) error {
	if err := autostart.fs.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("disable autostart: remove %s: %w", path, err)
	}
	return nil
}

func entryName(appName string) string {
	name := strings.ToLower(strings.TrimSpace(appName))
	return strings.ReplaceAll(name, " ", "-")
}
