package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"jonwillia.ms/navlinks/chooser"
	"jonwillia.ms/navlinks/config"
	"jonwillia.ms/navlinks/launcher"
	"jonwillia.ms/navlinks/navapp"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("navlink: ")

	var (
		configPath = flag.String("config", config.DefaultFile, "config file")
		list       = flag.Bool("list", false, "list navigation apps and exit")
		appName    = flag.String("app", "", "navigation app, e.g. waze or google-maps; omit to choose")
		lat        = flag.Float64("lat", math.NaN(), "destination latitude")
		lon        = flag.Float64("lon", math.NaN(), "destination longitude")
		name       = flag.String("name", navapp.DefaultName, "destination name")
		place      = flag.String("place", "", "destination from the config file")
		escape     = flag.String("escape", "", "escaping mode: all, fields or none")
		doOpen     = flag.Bool("open", false, "launch the link instead of printing it")
	)
	flag.Parse()

	cfg, err := config.LoadEnv(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	b := cfg.Builder()
	if *escape != "" {
		b.Escaping, err = navapp.ParseEscaping(*escape)
		if err != nil {
			log.Fatal(err)
		}
	}
	opener, err := launcher.Opener(cfg.Opener)
	if err != nil {
		log.Fatal(err)
	}
	host := launcher.New(launcher.WithOpener(opener))

	if *list {
		if err := host.Warm(context.Background()); err != nil {
			log.Println("probe", err)
		}
		for _, app := range navapp.All() {
			fmt.Printf("%-12s %-18s installed=%v\n", app.Name(), app.Scheme(), host.Installed(app))
		}
		return
	}

	dest := config.Place{Name: *name, Lat: *lat, Lon: *lon}
	if *place != "" {
		p, ok := cfg.Place(*place)
		if !ok {
			log.Fatalf("no place %s in %s", *place, *configPath)
		}
		dest = p
	}
	if math.IsNaN(dest.Lat) || math.IsNaN(dest.Lon) {
		log.Fatal("-lat and -lon, or -place, are required")
	}

	if *appName == "" {
		req := cfg.Request(dest)
		req.Builder = b
		ok := false
		chooser.Present(host, chooser.Prompt{In: os.Stdin, Out: os.Stdout}, req, func(success bool) { ok = success })
		if !ok {
			os.Exit(1)
		}
		return
	}

	app, err := navapp.Parse(*appName)
	if err != nil {
		log.Fatal(err)
	}
	if !*doOpen {
		fmt.Println(b.DirectionsURLString(app, dest.Coordinate(), dest.Name))
		return
	}
	ok := false
	chooser.OpenWithDirections(host, b, app, dest.Coordinate(), dest.Name, func(success bool) { ok = success })
	if !ok {
		os.Exit(1)
	}
}
