// Package config loads destinations and launch preferences.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"golang.org/x/exp/slices"
	"jonwillia.ms/navlinks/chooser"
	"jonwillia.ms/navlinks/geo"
	"jonwillia.ms/navlinks/navapp"
)

const (
	DefaultFile      = "navlinks.toml"
	DefaultDesktopID = "navlinks"
)

var openers = []string{"default", "portal"}

// Place is a named destination.
type Place struct {
	Name string  `toml:"name"`
	Lat  float64 `toml:"lat"`
	Lon  float64 `toml:"lon"`
	Note string  `toml:"note"` // shown with the chooser title
}

func (p Place) Coordinate() navapp.Coordinate {
	return navapp.Coordinate{Lat: p.Lat, Lon: p.Lon}
}

// Config holds the application configuration
type Config struct {
	Title     string   `toml:"title"`
	Cancel    string   `toml:"cancel"`
	Escaping  string   `toml:"escaping"`
	Opener    string   `toml:"opener"`
	DesktopID string   `toml:"desktop_id"`
	AppNames  []string `toml:"apps"`
	Places    []Place  `toml:"place"`

	escaping navapp.Escaping
	apps     []navapp.App
}

func defaults() Config {
	return Config{
		Title:     chooser.DefaultTitle,
		Cancel:    chooser.DefaultCancelLabel,
		Escaping:  navapp.EscapeAll.String(),
		Opener:    "default",
		DesktopID: DefaultDesktopID,
	}
}

// Load reads the TOML file at path. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := defaults()
	if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("error decoding config file %s: %w", path, err)
	}
	return cfg, cfg.validate()
}

// LoadEnv reads an optional .env file, then loads the file named by
// NAVLINKS_CONFIG (or fallback) and applies NAVLINKS_ESCAPING and
// NAVLINKS_OPENER on top.
func LoadEnv(fallback string) (Config, error) {
	_ = godotenv.Load()

	cfg, err := Load(getEnvDefault("NAVLINKS_CONFIG", fallback))
	if err != nil {
		return Config{}, err
	}
	cfg.Escaping = getEnvDefault("NAVLINKS_ESCAPING", cfg.Escaping)
	cfg.Opener = getEnvDefault("NAVLINKS_OPENER", cfg.Opener)
	return cfg, cfg.validate()
}

func getEnvDefault(env, def string) string {
	res := os.Getenv(env)
	if res == "" {
		return def
	}
	return res
}

func (c *Config) validate() error {
	var err error
	c.escaping, err = navapp.ParseEscaping(c.Escaping)
	if err != nil {
		return err
	}
	if !slices.Contains(openers, strings.ToLower(c.Opener)) {
		return fmt.Errorf("no opener %s found", c.Opener)
	}
	c.apps = nil
	for _, name := range c.AppNames {
		app, err := navapp.Parse(name)
		if err != nil {
			return fmt.Errorf("apps: %w", err)
		}
		if !slices.Contains(c.apps, app) {
			c.apps = append(c.apps, app)
		}
	}
	for i, p := range c.Places {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("place %d has no name", i+1)
		}
	}
	return nil
}

func (c Config) Builder() navapp.Builder {
	return navapp.Builder{Escaping: c.escaping}
}

// Apps is the configured allow-list, nil when every app may be offered.
func (c Config) Apps() []navapp.App {
	return c.apps
}

// Place finds a destination by case-insensitive name.
func (c Config) Place(name string) (Place, bool) {
	i := slices.IndexFunc(c.Places, func(p Place) bool { return strings.EqualFold(p.Name, name) })
	if i < 0 {
		return Place{}, false
	}
	return c.Places[i], true
}

// Nearest returns the place closest to from with its distance in meters and
// the bearing towards it.
func (c Config) Nearest(from navapp.Coordinate) (Place, float64, float64, bool) {
	var (
		best             Place
		bestM, bestAngle float64
		found            bool
	)
	for _, p := range c.Places {
		meters, bearing := geo.Distance(from, p.Coordinate())
		if !found || meters < bestM {
			best, bestM, bestAngle, found = p, meters, bearing, true
		}
	}
	return best, bestM, bestAngle, found
}

// Request prepares a chooser request for p.
func (c Config) Request(p Place) chooser.Request {
	return chooser.Request{
		Coordinate:  p.Coordinate(),
		Name:        p.Name,
		Title:       c.Title,
		Message:     p.Note,
		CancelLabel: c.Cancel,
		Builder:     c.Builder(),
		Apps:        c.apps,
	}
}
