// Package launcher hands directions links to navigation apps installed on
// this machine.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/skratchdot/open-golang/open"
	"golang.org/x/sync/errgroup"
	"jonwillia.ms/navlinks/navapp"
)

const probeTimeout = 5 * time.Second

var ErrUnsupported = errors.New("not supported on this platform")

// ProbeFunc reports whether the host can route app's scheme.
type ProbeFunc func(ctx context.Context, app navapp.App) bool

// OpenFunc hands a URL to the host.
type OpenFunc func(rawURL string) error

// DefaultOpener runs the platform's URL handler and waits for it.
func DefaultOpener(rawURL string) error {
	return open.Run(rawURL)
}

// Opener resolves an opener by name: "default" or "portal".
func Opener(name string) (OpenFunc, error) {
	switch strings.ToLower(name) {
	case "", "default":
		return DefaultOpener, nil
	case "portal":
		return PortalOpener, nil
	}
	return nil, fmt.Errorf("no opener %s found", name)
}

// Host probes and opens deep links. Probe results are cached until Forget.
type Host struct {
	probe  ProbeFunc
	opener OpenFunc

	mutex     sync.Mutex
	installed map[navapp.App]bool
}

type Option func(*Host)

func WithProbe(f ProbeFunc) Option { return func(h *Host) { h.probe = f } }
func WithOpener(f OpenFunc) Option { return func(h *Host) { h.opener = f } }

func New(opts ...Option) *Host {
	h := &Host{
		probe:     probe,
		opener:    DefaultOpener,
		installed: make(map[navapp.App]bool),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Host) Installed(app navapp.App) bool {
	h.mutex.Lock()
	ok, cached := h.installed[app]
	h.mutex.Unlock()
	if cached {
		return ok
	}
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()
	return h.check(ctx, app)
}

func (h *Host) check(ctx context.Context, app navapp.App) bool {
	ok := h.probe(ctx, app)
	h.mutex.Lock()
	h.installed[app] = ok
	h.mutex.Unlock()
	return ok
}

// Warm probes every app concurrently and fills the cache. It fails when ctx
// ends or the probes outlive probeTimeout.
func (h *Host) Warm(ctx context.Context) error {
	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	g, probeCtx := errgroup.WithContext(probeCtx)
	for _, app := range navapp.All() {
		app := app
		g.Go(func() error {
			ok := h.check(probeCtx, app)
			if err := probeCtx.Err(); err != nil {
				return fmt.Errorf("probe %v: %w", app, err)
			}
			log.Println("probe", app, ok)
			return nil
		})
	}
	return g.Wait()
}

// Forget drops cached probe results.
func (h *Host) Forget() {
	h.mutex.Lock()
	h.installed = make(map[navapp.App]bool)
	h.mutex.Unlock()
}

// Open hands rawURL to the host in the background. The channel receives
// exactly one value.
func (h *Host) Open(rawURL string) <-chan bool {
	c := make(chan bool, 1)
	go func() {
		err := h.opener(rawURL)
		if err != nil {
			log.Printf("open %s: %v", rawURL, err)
		} else {
			log.Printf("open %s: true", rawURL)
		}
		c <- err == nil
	}()
	return c
}

func schemeName(app navapp.App) string {
	return strings.TrimSuffix(app.Scheme(), "://")
}
