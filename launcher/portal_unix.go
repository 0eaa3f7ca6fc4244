//go:build !windows && !darwin

package launcher

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

const (
	portalDest   = "org.freedesktop.portal.Desktop"
	portalPath   = "/org/freedesktop/portal/desktop"
	portalMethod = "org.freedesktop.portal.OpenURI.OpenURI"
)

// PortalOpener asks the XDG desktop portal to open rawURL. It works from
// inside sandboxes where xdg-open is unavailable.
func PortalOpener(rawURL string) error {
	conn, err := dbus.SessionBus()
	if err != nil {
		return fmt.Errorf("dbus.SessionBus: %w", err)
	}
	var handle dbus.ObjectPath
	err = conn.Object(portalDest, portalPath).
		Call(portalMethod, 0, "", rawURL, map[string]dbus.Variant{}).
		Store(&handle)
	if err != nil {
		return fmt.Errorf("%s: %w", portalMethod, err)
	}
	return nil
}
