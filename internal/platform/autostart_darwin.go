//go:build darwin

package platform

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

func (autostart *Autostart) entryPath() (string, error) {
	homeDir, err := autostart.service.userHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, "Library", "LaunchAgents", launchAgentLabel(autostart.appName)+".plist"), nil
}

func (autostart *Autostart) enable(execPath string) error {
	path, err := autostart.entryPath()
	if err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}
	if err := autostart.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("enable autostart: create LaunchAgents dir: %w", err)
	}
	content := launchAgentPlist(launchAgentLabel(autostart.appName), execPath)
	if err := afero.WriteFile(autostart.fs, path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("enable autostart: write plist: %w", err)
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

func launchAgentLabel(appName string) string {
	return "com.kitchentimer." + entryName(appName)
}

func launchAgentPlist(label, execPath string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>Label</key>
	<string>%s</string>
	<key>ProgramArguments</key>
	<array>
		<string>%s</string>
		<string>%s</string>
	</array>
	<key>RunAtLoad</key>
	<true/>
</dict>
</plist>
`, xmlEscape(label), xmlEscape(execPath), BackgroundArg)
}

func xmlEscape(value string) string {
	return strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	).Replace(value)
}
