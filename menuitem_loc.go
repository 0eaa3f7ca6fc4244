package main

import (
	"context"
	"fmt"
	"log"
	"runtime"

	"github.com/getlantern/systray"
	"github.com/skratchdot/open-golang/open"
	"jonwillia.ms/navlinks/config"
	"jonwillia.ms/navlinks/geo"
)

// MenuItemLocation shows where we are and how far the nearest place is, and
// keeps the place menus labelled with distance and direction. Clicking it
// relabels from the last fix, or on macOS opens the location settings when
// there is no fix.
func MenuItemLocation(ctx context.Context, mi *systray.MenuItem, geoMgr *geo.Manager, cfg config.Config, menus []placeMenu) {
	relabel := func(loc geo.LocationInfo) {
		for _, m := range menus {
			m.item.SetTitle(placeTitle(m.place, loc))
		}
		mi.SetTitle(locationTitle(cfg, loc))
		mi.SetTooltip(fmt.Sprintf("%.5f, %.5f", loc.Lat, loc.Lon))
	}

	go func() {
		c := geoMgr.Subscribe(true)
		defer geoMgr.Unsubscribe(c)
		var lastErr error
		for {
			select {
			case <-ctx.Done():
				return
			case <-mi.ClickedCh:
				if loc, ok := geoMgr.CurrentLocation(); ok {
					log.Println("relabel from", loc.Description, loc.Lat, loc.Lon)
					relabel(loc)
				} else if lastErr != nil && runtime.GOOS == "darwin" {
					openLocSettingsDarwin()
				}
			case loc := <-c:
				if loc.Error != nil {
					lastErr = loc.Error
					if _, ok := geoMgr.CurrentLocation(); !ok {
						mi.SetTitle("⚠️ No location, distances unavailable")
						mi.SetTooltip(loc.Error.Error())
					}
					continue
				}
				lastErr = nil
				relabel(loc)
			}
		}
	}()
}

func placeTitle(p config.Place, loc geo.LocationInfo) string {
	meters, bearing := geo.Distance(loc.Coordinate(), p.Coordinate())
	return fmt.Sprintf("%s (%s %s)", p.Name, geo.FormatDistance(meters), geo.Direction(bearing))
}

func locationTitle(cfg config.Config, loc geo.LocationInfo) string {
	here := loc.Description
	if here == "" {
		here = fmt.Sprintf("%.4f, %.4f", loc.Lat, loc.Lon)
	}
	p, meters, bearing, ok := cfg.Nearest(loc.Coordinate())
	if !ok {
		return "📍 " + here
	}
	return fmt.Sprintf("📍 %s · %s %s %s", here, p.Name, geo.FormatDistance(meters), geo.Direction(bearing))
}

func openLocSettingsDarwin() {
	err := open.Start("x-apple.systempreferences:com.apple.preference.security?Privacy_LocationServices")
	if err != nil {
		log.Println("problem opening location settings", err)
	}
}
