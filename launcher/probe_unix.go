//go:build !windows && !darwin

package launcher

import (
	"context"
	"os/exec"
	"strings"

	"jonwillia.ms/navlinks/navapp"
)

// probe asks the desktop which handler owns the scheme.
func probe(ctx context.Context, app navapp.App) bool {
	out, err := exec.CommandContext(ctx, "xdg-mime", "query", "default", "x-scheme-handler/"+schemeName(app)).Output()
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(out)) != ""
}
