//go:build !windows && !darwin

package geo

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/maltegrosse/go-geoclue2"
)

// Location streams fixes from GeoClue. desktopID must be allowed in
// geoclue.conf.
func Location(desktopID string) LocationFunc {
	return func(ctx context.Context) (<-chan LocationInfo, error) {
		output := make(chan LocationInfo, 1)

		gcm, err := geoclue2.NewGeoclueManager()
		if err != nil {
			return nil, fmt.Errorf("geoclue2.NewGeoclueManager: %w", err)
		}

		client, err := gcm.GetClient()
		if err != nil {
			return nil, fmt.Errorf("gcm.GetClient: %w", err)
		}

		err = client.SetDesktopId(desktopID)
		if err != nil {
			return nil, fmt.Errorf("client.SetDesktopId: %w", err)
		}

		err = client.SetRequestedAccuracyLevel(geoclue2.GClueAccuracyLevelExact)
		if err != nil {
			return nil, fmt.Errorf("client.SetRequestedAccuracyLevel: %w", err)
		}

		// client must be started before requesting the location
		err = client.Start()
		if err != nil {
			return nil, fmt.Errorf("client.Start: %w", err)
		}

		send := func(li LocationInfo) bool {
			select {
			case <-ctx.Done():
				return false
			case output <- li:
				return true
			}
		}

		go func() {
			defer close(output)
			defer func() {
				if err := client.Stop(); err != nil {
					log.Println("client.Stop", err)
				}
			}()

			for {
				location, err := client.GetLocation()
				if err == nil {
					if !send(newLocationInfo(location)) {
						return
					}
					break
				}
				log.Println("GetLocation", err)
				if !send(LocationInfo{Error: err}) {
					return
				}
				select {
				case <-ctx.Done():
					return
				case <-time.After(time.Second):
				}
			}

			updates := client.SubscribeLocationUpdated()
			for {
				select {
				case <-ctx.Done():
					return
				case v, ok := <-updates:
					if !ok {
						return
					}
					_, location, err := client.ParseLocationUpdated(v)
					if err != nil {
						log.Println("client.ParseLocationUpdated", err)
						continue
					}
					if !send(newLocationInfo(location)) {
						return
					}
				}
			}
		}()
		return output, nil
	}
}

func newLocationInfo(loc geoclue2.GeoclueLocation) (li LocationInfo) {
	lat, err := loc.GetLatitude()
	if err != nil {
		log.Println("GetLatitude", err)
		li.Error = err
		return
	}
	li.Lat = lat

	lon, err := loc.GetLongitude()
	if err != nil {
		log.Println("GetLongitude", err)
		li.Error = err
		return
	}
	li.Lon = lon

	desc, err := loc.GetDescription()
	if err != nil {
		log.Println("GetDescription", err)
	}
	li.Description = desc
	return
}
