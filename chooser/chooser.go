// Package chooser offers the installed navigation apps for a destination
// and launches the one picked.
package chooser

import (
	"log"

	"golang.org/x/exp/slices"
	"jonwillia.ms/navlinks/navapp"
)

const (
	DefaultTitle       = "Directions Using"
	DefaultCancelLabel = "Dismiss"
)

// Launcher is the host capability to probe and open deep links.
type Launcher interface {
	Installed(app navapp.App) bool
	// Open delivers exactly one value: whether the host accepted the URL.
	Open(rawURL string) <-chan bool
}

// Option is one selectable entry of a choice.
type Option struct {
	Label  string
	Select func()
}

// Presenter shows options to the user. Exactly one of the options' Select
// or cancel is expected to be called, at most once.
type Presenter interface {
	// message may be empty.
	Present(title, message string, options []Option, cancelLabel string, cancel func())
}

// Request describes a destination to present.
type Request struct {
	Coordinate  navapp.Coordinate
	Name        string
	Title       string
	Message     string
	CancelLabel string
	Builder     navapp.Builder
	// Apps restricts the offered apps. Nil offers every installed app.
	Apps []navapp.App
}

// Available returns the installed apps in display order.
func Available(l Launcher) []navapp.App {
	var apps []navapp.App
	for _, app := range navapp.All() {
		if l.Installed(app) {
			apps = append(apps, app)
		}
	}
	return apps
}

// OpenWithDirections launches app with directions to c and reports the
// outcome to done, which may be nil.
func OpenWithDirections(l Launcher, b navapp.Builder, app navapp.App, c navapp.Coordinate, name string, done func(bool)) {
	if done == nil {
		done = func(bool) {}
	}
	// url.URL.String drops the empty authority of "waze://?ll=...", so the
	// parse only gates and the formatted string is what gets opened.
	if _, err := b.DirectionsURL(app, c, name); err != nil {
		log.Println("cannot launch", app, err)
		done(false)
		return
	}
	done(<-l.Open(b.DirectionsURLString(app, c, name)))
}

// Present offers every available app for req through p. Selecting an app
// launches it and reports the result to done; cancelling reports false.
func Present(l Launcher, p Presenter, req Request, done func(bool)) {
	if done == nil {
		done = func(bool) {}
	}
	title := req.Title
	if title == "" {
		title = DefaultTitle
	}
	cancelLabel := req.CancelLabel
	if cancelLabel == "" {
		cancelLabel = DefaultCancelLabel
	}

	options := []Option{}
	for _, app := range Available(l) {
		if !req.allows(app) {
			continue
		}
		app := app
		options = append(options, Option{
			Label: app.Name(),
			Select: func() {
				OpenWithDirections(l, req.Builder, app, req.Coordinate, req.Name, done)
			},
		})
	}
	p.Present(title, req.Message, options, cancelLabel, func() { done(false) })
}

func (r Request) allows(app navapp.App) bool {
	return r.Apps == nil || slices.Contains(r.Apps, app)
}
