//go:build !linux && !darwin && !windows

package platform

func (autostart *Autostart) enable(string) error {
	return ErrAutostartUnsupported
}

func (autostart *Autostart) disable() error {
	return nil
}

func (autostart *Autostart) enabled() (bool, error) {
	return false, nil
}
