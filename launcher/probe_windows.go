//go:build windows

package launcher

import (
	"context"

	"golang.org/x/sys/windows/registry"
	"jonwillia.ms/navlinks/navapp"
)

// probe checks for a registered URL protocol handler.
func probe(_ context.Context, app navapp.App) bool {
	k, err := registry.OpenKey(registry.CLASSES_ROOT, schemeName(app), registry.QUERY_VALUE)
	if err != nil {
		return false
	}
	defer k.Close()
	_, _, err = k.GetStringValue("URL Protocol")
	return err == nil
}
