package geo

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"jonwillia.ms/navlinks/navapp"
)

func TestDirection(t *testing.T) {
	tests := []struct {
		bearing float64
		want    string
	}{
		{0, "N"},
		{22, "N"},
		{23, "NE"},
		{90, "E"},
		{180, "S"},
		{-180, "S"},
		{-90, "W"},
		{-45, "NW"},
		{350, "N"},
		{720, "N"},
	}
	for _, tt := range tests {
		if got := Direction(tt.bearing); got != tt.want {
			t.Errorf("Direction(%v) = %q, want %q", tt.bearing, got, tt.want)
		}
	}
}

func TestDistance(t *testing.T) {
	london := navapp.Coordinate{Lat: 51.5074, Lon: -0.1278}
	paris := navapp.Coordinate{Lat: 48.8566, Lon: 2.3522}
	d, bearing := Distance(london, paris)
	if math.Abs(d-343500) > 2000 {
		t.Errorf("London-Paris = %.0fm", d)
	}
	if got := Direction(bearing); got != "SE" {
		t.Errorf("bearing %.1f = %s, want SE", bearing, got)
	}
}

func TestFormatDistance(t *testing.T) {
	for meters, want := range map[float64]string{0: "0m", 950.4: "950m", 10000: "10000m", 12345: "12.3km"} {
		if got := FormatDistance(meters); got != want {
			t.Errorf("FormatDistance(%v) = %q, want %q", meters, got, want)
		}
	}
}

func recv(t *testing.T, c <-chan LocationInfo) LocationInfo {
	t.Helper()
	select {
	case li := <-c:
		return li
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for location")
	}
	return LocationInfo{}
}

func TestManager(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	src := make(chan LocationInfo)
	m := NewManager(ctx, src)

	if _, ok := m.CurrentLocation(); ok {
		t.Fatal("location before any fix")
	}

	good := m.Subscribe(false)
	all := m.Subscribe(true)

	src <- LocationInfo{Description: "home", Lat: 1, Lon: 2}
	if li := recv(t, good); li.Description != "home" {
		t.Errorf("good got %+v", li)
	}
	if li := recv(t, all); li.Description != "home" {
		t.Errorf("all got %+v", li)
	}

	src <- LocationInfo{Error: errors.New("no fix")}
	if li := recv(t, all); li.Error == nil {
		t.Errorf("all got %+v, want error", li)
	}
	select {
	case li := <-good:
		t.Errorf("error delivered to good: %+v", li)
	case <-time.After(50 * time.Millisecond):
	}

	cur, ok := m.CurrentLocation()
	if !ok || cur.Description != "home" {
		t.Errorf("CurrentLocation = %+v, %v", cur, ok)
	}

	late := m.Subscribe(false)
	if li := recv(t, late); li.Lat != 1 || li.Lon != 2 {
		t.Errorf("late subscriber primed with %+v", li)
	}
	m.Unsubscribe(late)
	m.Unsubscribe(all)
}

func TestManagerKeepsNewest(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	src := make(chan LocationInfo)
	m := NewManager(ctx, src)
	c := m.Subscribe(false)

	for i := 1; i <= 3; i++ {
		src <- LocationInfo{Lat: float64(i)}
	}
	// the next send proves the third was published
	src <- LocationInfo{Lat: 4}
	deadline := time.After(time.Second)
	for {
		select {
		case li := <-c:
			if li.Lat == 4 {
				return
			}
		case <-deadline:
			t.Fatal("newest fix never arrived")
		}
	}
}

func TestRateLimit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	src := make(chan LocationInfo)
	f := RateLimit(func(context.Context) (<-chan LocationInfo, error) { return src, nil }, 100, time.Hour)
	out, err := f(ctx)
	if err != nil {
		t.Fatal(err)
	}

	src <- LocationInfo{Description: "first", Lat: 51.5, Lon: 0}
	if li := recv(t, out); li.Description != "first" {
		t.Fatalf("got %+v", li)
	}
	// about 11m away
	src <- LocationInfo{Description: "jitter", Lat: 51.5001, Lon: 0}
	src <- LocationInfo{Error: errors.New("lost")}
	if li := recv(t, out); li.Error == nil {
		t.Fatalf("got %+v, want error", li)
	}
	// about 1.1km away
	src <- LocationInfo{Description: "moved", Lat: 51.51, Lon: 0}
	if li := recv(t, out); li.Description != "moved" {
		t.Fatalf("got %+v", li)
	}

	close(src)
	if _, ok := <-out; ok {
		t.Error("output not closed")
	}
}

func TestRateLimitError(t *testing.T) {
	f := RateLimit(func(context.Context) (<-chan LocationInfo, error) { return nil, ErrUnsupported }, 100, time.Minute)
	if _, err := f(context.Background()); !errors.Is(err, ErrUnsupported) {
		t.Errorf("err = %v", err)
	}
}
