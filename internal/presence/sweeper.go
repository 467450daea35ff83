package presence

import (
	"context"
	"log"
	"time"

	"github.com/devhub-dev/devhub/internal/models"
	"github.com/devhub-dev/devhub/internal/store"
)

// Sweeper marks users offline when their last-seen timestamp goes stale.
// Logout flips the flag eagerly; this catches clients that vanish without
// one.
type Sweeper struct {
	store    store.Store
	interval time.Duration
	timeout  time.Duration
	ctx      context.Context
	cancel   context.CancelFunc
}

func NewSweeper(s store.Store, interval, timeout time.Duration) *Sweeper {
	ctx, cancel := context.WithCancel(context.Background())
	return &Sweeper{
		store:    s,
		interval: interval,
		timeout:  timeout,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start begins sweeping in the background.
func (s *Sweeper) Start() {
	log.Println("Starting presence sweeper...")

	go s.run()
}

// Stop cancels the sweep loop.
func (s *Sweeper) Stop() {
	log.Println("Stopping presence sweeper...")
	s.cancel()
}

func (s *Sweeper) run() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *Sweeper) sweep() {
	snapshot, err := s.store.Load()

	if err != nil {
		log.Printf("Presence sweep failed to load snapshot: %v", err)
		return
	}

	cutoff := time.Now().Add(-s.timeout)
	stale := 0

	for i := range snapshot.Users {
		if snapshot.Users[i].IsOnline && snapshot.Users[i].LastSeen.Before(cutoff) {
			stale++
		}
	}

	if stale == 0 {
		return
	}

	err = s.store.Mutate(func(snapshot *models.Snapshot) error {
		for i := range snapshot.Users {
			if snapshot.Users[i].IsOnline && snapshot.Users[i].LastSeen.Before(cutoff) {
				snapshot.Users[i].IsOnline = false
			}
		}
		return nil
	})

	if err != nil {
		log.Printf("Presence sweep failed: %v", err)
		return
	}

	log.Printf("Presence sweep marked %d users offline", stale)
}
