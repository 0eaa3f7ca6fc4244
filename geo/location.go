package geo

import (
	"context"
	"errors"
	"time"

	"jonwillia.ms/navlinks/navapp"
)

var ErrUnsupported = errors.New("location services not supported on this platform")

type LocationInfo struct {
	Description string
	Lat, Lon    float64
	Error       error
}

func (li LocationInfo) Coordinate() navapp.Coordinate {
	return navapp.Coordinate{Lat: li.Lat, Lon: li.Lon}
}

type LocationFunc func(ctx context.Context) (<-chan LocationInfo, error)

// RateLimit forwards a fix once it moved more than thresholdMeters from the
// last forwarded one, or once minimumRate elapsed. Errors always pass.
func RateLimit(f LocationFunc, thresholdMeters float64, minimumRate time.Duration) LocationFunc {
	return func(ctx context.Context) (<-chan LocationInfo, error) {
		c, err := f(ctx)
		if err != nil {
			return c, err
		}
		output := make(chan LocationInfo, 1)

		go func() {
			defer close(output)
			var (
				current    LocationInfo
				lastUpdate time.Time
			)
			for {
				var nextLoc LocationInfo
				var ok bool
				select {
				case <-ctx.Done():
					return
				case nextLoc, ok = <-c:
					if !ok {
						return
					}
				}
				if nextLoc.Error == nil && !lastUpdate.IsZero() {
					moved, _ := Distance(current.Coordinate(), nextLoc.Coordinate())
					if moved <= thresholdMeters && time.Since(lastUpdate) <= minimumRate {
						continue
					}
				}
				if nextLoc.Error == nil {
					current = nextLoc
					lastUpdate = time.Now()
				}
				select {
				case output <- nextLoc:
				case <-ctx.Done():
					return
				}
			}
		}()
		return output, nil
	}
}
