//go:build linux

package platform

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

func (autostart *Autostart) entryPath() (string, error) {
	configDir, err := autostart.service.GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "autostart", entryName(autostart.appName)+".desktop"), nil
}

func (autostart *Autostart) enable(execPath string) error {
	path, err := autostart.entryPath()
	if err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}
	if err := autostart.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("enable autostart: create autostart dir: %w", err)
	}
	if err := afero.WriteFile(autostart.fs, path, []byte(desktopEntry(autostart.appName, execPath)), 0o644); err != nil {
		return fmt.Errorf("enable autostart: write desktop entry: %w", err)
	}
	return nil
}

func (autostart *Autostart) disable() error {
	path, err := autostart.entryPath()
	if err != nil {
		return fmt.Errorf("disable autostart: %w", err)
	}
	return autostart.removeFile(path)
}

func (autostart *Autostart) enabled() (bool, error) {
	path, err := autostart.entryPath()
	if err != nil {
		return false, err
	}
	return autostart.fileExists(path)
}

func desktopEntry(appName, execPath string) string {
	if strings.Contains(execPath, " ") && !strings.HasPrefix(execPath, `"`) {
		execPath = `"` + execPath + `"`
	}
	return fmt.Sprintf(`[Desktop Entry]
Type=Application
Name=%s
Exec=%s %s
X-GNOME-Autostart-enabled=true
Terminal=false
`, appName, execPath, BackgroundArg)
}
