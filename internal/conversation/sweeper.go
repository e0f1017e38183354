package conversation

import (
	"context"
	"log"
	"time"
)

// Sweeper periodically drops expired conversations so idle ones do not
// accumulate between lookups. Lazy eviction already keeps reads correct;
// the sweeper only bounds memory.
type Sweeper struct {
	store    Store
	interval time.Duration
	stop     chan struct{}
}

func NewSweeper(store Store, interval time.Duration) *Sweeper {
	return &Sweeper{
		store:    store,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// Start runs the sweep loop until Stop is called. Run it in a goroutine.
func (w *Sweeper) Start() {
	log.Printf("[Sweeper] Started (interval: %s)", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			removed, err := w.store.ClearExpired(context.Background(), time.Now())
			if err != nil {
				log.Printf("[Sweeper] Sweep failed: %v", err)
				continue
			}
			if removed > 0 {
				log.Printf("[Sweeper] Evicted %d expired conversations", removed)
			}
		case <-w.stop:
			log.Printf("[Sweeper] Stopped")
			return
		}
	}
}

// Stop terminates the sweep loop.
func (w *Sweeper) Stop() {
	close(w.stop)
}
