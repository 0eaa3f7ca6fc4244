//go:build windows || darwin

package launcher

import "fmt"

func PortalOpener(rawURL string) error {
	return fmt.Errorf("desktop portal: %w", ErrUnsupported)
}
