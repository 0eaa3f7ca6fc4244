package geo

import (
	"context"
	"log"
	"sync"
)

type subscription struct {
	c             chan LocationInfo
	includeErrors bool
}

// Manager fans one location stream out to any number of subscribers. A slow
// subscriber only ever sees the newest fix.
type Manager struct {
	c       <-chan LocationInfo
	hasLoc  bool
	lastLoc LocationInfo
	mutex   sync.Mutex
	dests   map[<-chan LocationInfo]subscription
}

func NewManager(ctx context.Context, c <-chan LocationInfo) *Manager {
	m := &Manager{
		c:     c,
		dests: make(map[<-chan LocationInfo]subscription),
	}
	go m.run(ctx)
	return m
}

func (m *Manager) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case loc, ok := <-m.c:
			if !ok {
				log.Println("geoMgr read on closed channel, exiting")
				return
			}
			m.publish(loc)
		}
	}
}

func (m *Manager) publish(loc LocationInfo) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if loc.Error == nil {
		m.lastLoc = loc
		m.hasLoc = true
	}
	for _, sub := range m.dests {
		if loc.Error != nil && !sub.includeErrors {
			continue
		}
		// replace a stale unread value
		select {
		case <-sub.c:
		default:
		}
		sub.c <- loc
	}
}

// Subscribe returns a channel of fixes, primed with the last good one.
func (m *Manager) Subscribe(includeErrors bool) <-chan LocationInfo {
	c := make(chan LocationInfo, 1)
	m.mutex.Lock()
	m.dests[c] = subscription{c: c, includeErrors: includeErrors}
	if m.hasLoc {
		c <- m.lastLoc
	}
	m.mutex.Unlock()
	return c
}

func (m *Manager) Unsubscribe(c <-chan LocationInfo) {
	m.mutex.Lock()
	delete(m.dests, c)
	m.mutex.Unlock()
}

func (m *Manager) CurrentLocation() (LocationInfo, bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.lastLoc, m.hasLoc
}
