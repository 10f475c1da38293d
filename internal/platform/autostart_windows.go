//go:build windows

package platform

import (
	"fmt"
	"strings"
)

const registryRunKey = `HKCU\Software\Microsoft\Windows\CurrentVersion\Run`

func (autostart *Autostart) enable(execPath string) error {
	command := fmt.Sprintf(`"%s" %s`, strings.Trim(execPath, `"`), BackgroundArg)
	output, err := autostart.run("reg", "add", registryRunKey, "/v", autostart.appName, "/t", "REG_SZ", "/d", command, "/f")
	if err != nil {
		return fmt.Errorf("enable autostart: reg add failed: %w: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}

func (autostart *Autostart) disable() error {
	enabled, err := autostart.enabled()
	if err != nil || !enabled {
		return err
	}
	output, err := autostart.run("reg", "delete", registryRunKey, "/v", autostart.appName, "/f")
	if err != nil {
		return fmt.Errorf("disable autostart: reg delete failed: %w: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}

// enabled treats a failed query as absent, since reg exits non-zero for a missing value.
func (autostart *Autostart) enabled() (bool, error) {
	_, err := autostart.run("reg", "query", registryRunKey, "/v", autostart.appName)
	return err == nil, nil
}
