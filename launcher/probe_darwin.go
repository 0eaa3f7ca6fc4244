//go:build darwin

package launcher

import (
	"context"
	"os/exec"

	"jonwillia.ms/navlinks/navapp"
)

var bundleNames = map[navapp.App]string{
	navapp.AppleMaps:  "Maps",
	navapp.GoogleMaps: "Google Maps",
	navapp.Navigon:    "Navigon",
	navapp.TomTom:     "TomTom GO",
	navapp.Waze:       "Waze",
}

// probe looks the application up in LaunchServices without launching it.
func probe(ctx context.Context, app navapp.App) bool {
	name, ok := bundleNames[app]
	if !ok {
		return false
	}
	return exec.CommandContext(ctx, "open", "-Ra", name).Run() == nil
}
