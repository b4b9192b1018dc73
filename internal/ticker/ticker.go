// Package ticker animates the dashboard in demo mode: every interval
// it advances one served order to paid, the same transition a cashier
// would trigger. Not part of the durable business logic.
package ticker

import (
	"sync"
	"time"

	"github.com/tavola-pos/dashboard/internal/domain"
)

// DefaultInterval between advances.
const DefaultInterval = 12 * time.Second

// Advancer is satisfied by *store.Store.
type Advancer interface {
	AdvanceServedOrder() (domain.Order, bool)
}

// Ticker periodically advances one served order. Stop is idempotent
// and guarantees no advance fires after it returns.
type Ticker struct {
	store    Advancer
	interval time.Duration

	stopOnce sync.Once
	started  bool
	stop     chan struct{}
	done     chan struct{}
}

// New creates a Ticker. A non-positive interval falls back to
// DefaultInterval.
func New(store Advancer, interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Ticker{
		store:    store,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the tick loop in its own goroutine. Call at most
// once.
func (t *Ticker) Start() {
	t.started = true
	go t.run()
}

func (t *Ticker) run() {
	defer close(t.done)

	tick := time.NewTicker(t.interval)
	defer tick.Stop()

	for {
		select {
		case <-tick.C:
			t.store.AdvanceServedOrder()
		case <-t.stop:
			return
		}
	}
}

// Stop releases the timer and waits for the loop to exit, so a torn
// down application can never receive a late tick.
func (t *Ticker) Stop() {
	t.stopOnce.Do(func() {
		close(t.stop)
	})
	if t.started {
		<-t.done
	}
}
