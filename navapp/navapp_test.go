package navapp

import (
	"errors"
	"net/url"
	"strings"
	"testing"
)

var london = Coordinate{Lat: 51.5074, Lon: -0.1278}

func TestAll(t *testing.T) {
	want := []App{AppleMaps, GoogleMaps, Navigon, TomTom, Waze}
	got := All()
	if len(got) != len(want) {
		t.Fatalf("len(All()) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("All()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	got[0] = Waze
	if All()[0] != AppleMaps {
		t.Error("All() shares its backing array")
	}
}

func TestNameAndScheme(t *testing.T) {
	tests := []struct {
		app    App
		name   string
		scheme string
	}{
		{AppleMaps, "Apple Maps", "maps.apple.com://"},
		{GoogleMaps, "Google Maps", "comgooglemaps://"},
		{Navigon, "Navigon", "navigon://"},
		{TomTom, "TomTom", "tomtomhome://"},
		{Waze, "Waze", "waze://"},
	}
	for _, tt := range tests {
		if got := tt.app.Name(); got != tt.name {
			t.Errorf("%d.Name() = %q, want %q", int(tt.app), got, tt.name)
		}
		if got := tt.app.Scheme(); got != tt.scheme {
			t.Errorf("%v.Scheme() = %q, want %q", tt.app, got, tt.scheme)
		}
	}
}

func TestDirectionsURLStringUnescaped(t *testing.T) {
	tests := []struct {
		app  App
		c    Coordinate
		name string
		want string
	}{
		{AppleMaps, london, "", "maps.apple.com://?q=51.5074,-0.1278=d&t=h"},
		{GoogleMaps, london, "", "comgooglemaps://?saddr=&daddr=51.5074,-0.1278&directionsmode=driving"},
		{Navigon, london, "", "navigon://coordinate/Destination/-0.1278/51.5074"},
		{TomTom, Coordinate{Lat: 40.7128, Lon: -74.0060}, "Office", "tomtomhome://geo:action=navigateto&lat=40.7128&long=-74.006&name=Office"},
		{Waze, london, DefaultName, "waze://?ll=51.5074,-0.1278&navigate=yes"},
	}
	for _, tt := range tests {
		t.Run(tt.app.Name(), func(t *testing.T) {
			got := tt.app.DirectionsURLString(tt.c, tt.name)
			unescaped, err := url.PathUnescape(got)
			if err != nil {
				t.Fatalf("PathUnescape(%q): %v", got, err)
			}
			if unescaped != tt.want {
				t.Errorf("unescaped = %q, want %q", unescaped, tt.want)
			}

			raw := Builder{Escaping: EscapeNone}.DirectionsURLString(tt.app, tt.c, tt.name)
			if raw != tt.want {
				t.Errorf("EscapeNone = %q, want %q", raw, tt.want)
			}
		})
	}
}

func TestDirectionsURLStringEscapesEverything(t *testing.T) {
	got := Waze.DirectionsURLString(london, "")
	want := "waze%3A%2F%2F%3Fll%3D51.5074%2C-0.1278%26navigate%3Dyes"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	for _, r := range got {
		if !strings.ContainsRune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-_.~%", r) {
			t.Errorf("unescaped rune %q in %q", r, got)
		}
	}
}

func TestEscapeSpace(t *testing.T) {
	if got, want := Escape("Home Office+1"), "Home%20Office%2B1"; got != want {
		t.Errorf("Escape = %q, want %q", got, want)
	}
}

func TestEscapeIsNotIdempotent(t *testing.T) {
	for _, app := range All() {
		once := app.DirectionsURLString(london, "")
		if twice := Escape(once); twice == once {
			t.Errorf("%v: escaping twice left %q unchanged", app, once)
		}
	}
}

func TestDirectionsURLStringDeterministic(t *testing.T) {
	coords := []Coordinate{london, {0, 0}, {-90, 180}, {12.3456789, -98.7654321}, {1e-7, 1e7}}
	for _, app := range All() {
		for _, c := range coords {
			a := app.DirectionsURLString(c, "Somewhere")
			b := app.DirectionsURLString(c, "Somewhere")
			if a != b {
				t.Errorf("%v %v: %q != %q", app, c, a, b)
			}
		}
	}
}

func TestCoordinateOrder(t *testing.T) {
	c := Coordinate{Lat: 11.25, Lon: 22.5}
	b := Builder{Escaping: EscapeNone}
	for _, app := range All() {
		s := b.DirectionsURLString(app, c, "")
		lat, lon := strings.Index(s, "11.25"), strings.Index(s, "22.5")
		if lat < 0 || lon < 0 {
			t.Fatalf("%v: coordinate missing from %q", app, s)
		}
		lonFirst := lon < lat
		if lonFirst != (app == Navigon) {
			t.Errorf("%v: lat at %d, lon at %d in %q", app, lat, lon, s)
		}
	}
}

func TestFieldEscaping(t *testing.T) {
	b := Builder{Escaping: EscapeFields}
	got := b.DirectionsURLString(Navigon, london, "Home Office")
	want := "navigon://coordinate/Home%20Office/-0.1278/51.5074"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	u, err := b.DirectionsURL(Navigon, london, "Home Office")
	if err != nil {
		t.Fatalf("DirectionsURL: %v", err)
	}
	if u.Scheme != "navigon" || u.Host != "coordinate" {
		t.Errorf("scheme %q host %q", u.Scheme, u.Host)
	}
}

func TestDirectionsURL(t *testing.T) {
	for _, app := range All() {
		u, err := app.DirectionsURL(london, "Big Ben")
		if err != nil {
			t.Errorf("%v: %v", app, err)
			continue
		}
		if got, want := u.String(), app.DirectionsURLString(london, "Big Ben"); got != want {
			t.Errorf("%v: String() = %q, want %q", app, got, want)
		}
	}
}

func TestDirectionsURLUnparseable(t *testing.T) {
	b := Builder{Escaping: EscapeNone}
	_, err := b.DirectionsURL(Navigon, london, "50%off")
	if !errors.Is(err, ErrUnparseableURL) {
		t.Errorf("err = %v, want ErrUnparseableURL", err)
	}

	if _, err := Navigon.DirectionsURL(london, "50%off"); err != nil {
		t.Errorf("escaped link should parse: %v", err)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want App
	}{
		{"waze", Waze},
		{"Google Maps", GoogleMaps},
		{"google-maps", GoogleMaps},
		{"comgooglemaps", GoogleMaps},
		{"apple_maps", AppleMaps},
		{" TOMTOM ", TomTom},
		{"tomtomhome", TomTom},
		{"navigon", Navigon},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := Parse("here-wego"); !errors.Is(err, ErrUnknownApp) {
		t.Errorf("Parse(unknown) err = %v", err)
	}
}

func TestParseEscaping(t *testing.T) {
	for in, want := range map[string]Escaping{"": EscapeAll, "all": EscapeAll, "Fields": EscapeFields, "none": EscapeNone} {
		got, err := ParseEscaping(in)
		if err != nil || got != want {
			t.Errorf("ParseEscaping(%q) = %v, %v", in, got, err)
		}
		if in != "" && !strings.EqualFold(got.String(), in) {
			t.Errorf("%v.String() = %q", got, got.String())
		}
	}
	if _, err := ParseEscaping("some"); err == nil {
		t.Error("ParseEscaping(some) succeeded")
	}
}
