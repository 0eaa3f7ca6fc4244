// Package navapp builds directions deep links for third-party navigation apps.
package navapp

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// App is a navigation application that can be handed a destination.
type App int

const (
	AppleMaps App = iota
	GoogleMaps
	Navigon
	TomTom
	Waze
)

// DefaultName is used when a destination has no name.
const DefaultName = "Destination"

var (
	ErrUnparseableURL = errors.New("unparseable directions url")
	ErrUnknownApp     = errors.New("unknown navigation app")
)

// Coordinate is a WGS84 position in degrees. It is not validated.
type Coordinate struct {
	Lat, Lon float64
}

type descriptor struct {
	name   string
	scheme string
	// format receives already formatted (and possibly escaped) fields.
	format func(scheme, lat, lon, name string) string
}

var registry = [...]descriptor{
	AppleMaps: {"Apple Maps", "maps.apple.com://", func(s, lat, lon, _ string) string {
		return s + "?q=" + lat + "," + lon + "=d&t=h"
	}},
	GoogleMaps: {"Google Maps", "comgooglemaps://", func(s, lat, lon, _ string) string {
		return s + "?saddr=&daddr=" + lat + "," + lon + "&directionsmode=driving"
	}},
	Navigon: {"Navigon", "navigon://", func(s, lat, lon, name string) string {
		return s + "coordinate/" + name + "/" + lon + "/" + lat
	}},
	TomTom: {"TomTom", "tomtomhome://", func(s, lat, lon, name string) string {
		return s + "geo:action=navigateto&lat=" + lat + "&long=" + lon + "&name=" + name
	}},
	Waze: {"Waze", "waze://", func(s, lat, lon, _ string) string {
		return s + "?ll=" + lat + "," + lon + "&navigate=yes"
	}},
}

// All returns every known app in display order.
func All() []App {
	return []App{AppleMaps, GoogleMaps, Navigon, TomTom, Waze}
}

func (a App) valid() bool {
	return a >= 0 && int(a) < len(registry)
}

func (a App) desc() descriptor {
	if !a.valid() {
		panic(fmt.Sprintf("navapp: invalid app %d", int(a)))
	}
	return registry[a]
}

// Name is the human readable label of the app.
func (a App) Name() string { return a.desc().name }

// Scheme is the URL prefix the host routes to the app, e.g. "waze://".
func (a App) Scheme() string { return a.desc().scheme }

func (a App) String() string {
	if !a.valid() {
		return "App(" + strconv.Itoa(int(a)) + ")"
	}
	return a.Name()
}

// DirectionsURLString returns the deep link with the whole string escaped.
func (a App) DirectionsURLString(c Coordinate, name string) string {
	return Builder{}.DirectionsURLString(a, c, name)
}

// DirectionsURL is DirectionsURLString parsed into a URL.
func (a App) DirectionsURL(c Coordinate, name string) (*url.URL, error) {
	return Builder{}.DirectionsURL(a, c, name)
}

// Parse resolves an app from a display name or a slug such as
// "google-maps" or "googlemaps".
func Parse(s string) (App, error) {
	key := slug(s)
	for _, a := range All() {
		if key == slug(a.Name()) || key == strings.TrimSuffix(a.Scheme(), "://") {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownApp, s)
}

func slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
}

func formatDegrees(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
