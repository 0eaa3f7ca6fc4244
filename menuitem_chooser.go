package main

import (
	"context"
	"sync"

	"github.com/getlantern/systray"
	"jonwillia.ms/navlinks/chooser"
	"jonwillia.ms/navlinks/navapp"
)

// menuChooser presents a choice as the sub items of a tray menu. Items are
// created once and hidden when unused, systray cannot remove them.
type menuChooser struct {
	parent  *systray.MenuItem
	items   []*systray.MenuItem
	dismiss *systray.MenuItem

	mutex   sync.Mutex
	options []chooser.Option
	cancel  func()
}

func newMenuChooser(ctx context.Context, parent *systray.MenuItem) *menuChooser {
	mc := &menuChooser{parent: parent}
	for range navapp.All() {
		item := parent.AddSubMenuItem("", "")
		item.Hide()
		mc.items = append(mc.items, item)
	}
	mc.dismiss = parent.AddSubMenuItem(chooser.DefaultCancelLabel, "")

	for i, item := range mc.items {
		i := i
		go watch(ctx, item.ClickedCh, func() { mc.choose(i) })
	}
	go watch(ctx, mc.dismiss.ClickedCh, func() { mc.choose(-1) })
	return mc
}

func watch(ctx context.Context, c <-chan struct{}, f func()) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-c:
			f()
		}
	}
}

func (mc *menuChooser) Present(title, message string, options []chooser.Option, cancelLabel string, cancel func()) {
	mc.mutex.Lock()
	defer mc.mutex.Unlock()
	mc.options, mc.cancel = options, cancel

	if message != "" {
		title += ": " + message
	}
	mc.parent.SetTooltip(title)
	for i, item := range mc.items {
		if i >= len(options) {
			item.Hide()
			continue
		}
		item.SetTitle(options[i].Label)
		item.Show()
	}
	mc.dismiss.SetTitle(cancelLabel)
}

// choose runs option i, or cancel when i is negative.
func (mc *menuChooser) choose(i int) {
	mc.mutex.Lock()
	f := mc.cancel
	if i >= 0 && i < len(mc.options) {
		f = mc.options[i].Select
	}
	mc.mutex.Unlock()
	if f != nil {
		f()
	}
}
