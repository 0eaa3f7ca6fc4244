package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/getlantern/systray"
	"github.com/getlantern/systray/example/icon"
	"jonwillia.ms/navlinks/chooser"
	"jonwillia.ms/navlinks/config"
	"jonwillia.ms/navlinks/geo"
	"jonwillia.ms/navlinks/launcher"
)

const (
	relabelMeters   = 50
	relabelInterval = time.Minute
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	systray.Run(func() { onReady(ctx) }, func() { onExit(ctx, cancel) })
}

type placeMenu struct {
	place   config.Place
	item    *systray.MenuItem
	chooser *menuChooser
}

func onReady(ctx context.Context) {
	configPath := flag.String("config", config.DefaultFile, "config file")
	flag.Parse()

	cfg, err := config.LoadEnv(*configPath)
	if err != nil {
		log.Fatalf("config.LoadEnv: %v", err)
	}
	opener, err := launcher.Opener(cfg.Opener)
	if err != nil {
		log.Fatalf("launcher.Opener: %v", err)
	}
	host := launcher.New(launcher.WithOpener(opener))

	systray.SetTitle("NavLinks")
	statusMenu := systray.AddMenuItem("Looking for navigation apps...", "")
	statusMenu.Disable()
	statusMenu.SetIcon(icon.Data)

	locChan, err := geo.RateLimit(geo.Location(cfg.DesktopID), relabelMeters, relabelInterval)(ctx)
	if err != nil {
		log.Println("geo.Location", err)
		c := make(chan geo.LocationInfo, 1)
		c <- geo.LocationInfo{Error: err}
		locChan = c
	}
	geoMgr := geo.NewManager(ctx, locChan)
	mLocation := systray.AddMenuItem("🌎 Getting location", "")
	systray.AddSeparator()

	menus := make([]placeMenu, 0, len(cfg.Places))
	for _, p := range cfg.Places {
		mi := systray.AddMenuItem(p.Name, "")
		menus = append(menus, placeMenu{place: p, item: mi, chooser: newMenuChooser(ctx, mi)})
	}
	MenuItemLocation(ctx, mLocation, geoMgr, cfg, menus)

	systray.AddSeparator()
	mRefresh := systray.AddMenuItem("Refresh apps", "Look for installed navigation apps again")
	mQuit := systray.AddMenuItem("Quit", "Quit the whole app")
	go func() {
		<-mQuit.ClickedCh
		systray.Quit()
	}()

	present := func() {
		if err := host.Warm(ctx); err != nil {
			log.Println("host.Warm", err)
		}
		switch n := len(chooser.Available(host)); {
		case len(menus) == 0:
			statusMenu.SetTitle(fmt.Sprintf("No places in %s", *configPath))
		case n == 0:
			statusMenu.SetTitle("No navigation apps installed")
		default:
			statusMenu.SetTitle(fmt.Sprintf("%d navigation apps installed", n))
		}
		for _, m := range menus {
			m := m
			chooser.Present(host, m.chooser, cfg.Request(m.place), func(ok bool) {
				log.Println("directions to", m.place.Name, ok)
			})
		}
	}
	present()

	for {
		select {
		case <-ctx.Done():
			return
		case <-mRefresh.ClickedCh:
			host.Forget()
			present()
		}
	}
}

func onExit(ctx context.Context, cancel func()) {
	defer cancel()
}
