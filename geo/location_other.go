//go:build windows || darwin

package geo

import "context"

func Location(desktopID string) LocationFunc {
	return func(ctx context.Context) (<-chan LocationInfo, error) {
		return nil, ErrUnsupported
	}
}
