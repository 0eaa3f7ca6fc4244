package navapp

import (
	"fmt"
	"net/url"
	"strings"
)

// Escaping selects which part of a directions link is percent-encoded.
type Escaping int

const (
	// EscapeAll encodes the entire composed link, separators included.
	// This is the historical behavior and the default.
	EscapeAll Escaping = iota
	// EscapeFields encodes only the substituted coordinate and name.
	EscapeFields
	// EscapeNone applies the templates verbatim.
	EscapeNone
)

func (e Escaping) String() string {
	switch e {
	case EscapeAll:
		return "all"
	case EscapeFields:
		return "fields"
	case EscapeNone:
		return "none"
	}
	return fmt.Sprintf("Escaping(%d)", int(e))
}

// ParseEscaping accepts "all", "fields" or "none". Empty means all.
func ParseEscaping(s string) (Escaping, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return EscapeAll, nil
	case "fields":
		return EscapeFields, nil
	case "none", "raw":
		return EscapeNone, nil
	}
	return 0, fmt.Errorf("no escaping mode %s found", s)
}

// Builder formats directions links. The zero value uses EscapeAll.
type Builder struct {
	Escaping Escaping
}

// DirectionsURLString applies the app's template to c and name.
func (b Builder) DirectionsURLString(a App, c Coordinate, name string) string {
	if name == "" {
		name = DefaultName
	}
	d := a.desc()
	lat, lon := formatDegrees(c.Lat), formatDegrees(c.Lon)
	switch b.Escaping {
	case EscapeFields:
		return d.format(d.scheme, Escape(lat), Escape(lon), Escape(name))
	case EscapeNone:
		return d.format(d.scheme, lat, lon, name)
	}
	return Escape(d.format(d.scheme, lat, lon, name))
}

// DirectionsURL parses the formatted link. The returned error wraps
// ErrUnparseableURL.
func (b Builder) DirectionsURL(a App, c Coordinate, name string) (*url.URL, error) {
	s := b.DirectionsURLString(a, c, name)
	u, err := url.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnparseableURL, a, err)
	}
	return u, nil
}

// Escape percent-encodes every byte outside letters, digits and "-_.~".
// It is not idempotent: escaping twice encodes the '%' signs again.
func Escape(s string) string {
	// QueryEscape uses the same unreserved set but writes spaces as '+';
	// a literal '+' is always encoded, so any left over came from a space.
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
