package cache

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Warmer re-primes caches on a fixed schedule so the public pages rarely
// pay the store round trip after a TTL expiry.
type Warmer struct {
	schedule string
	jobs     []func(ctx context.Context) error
	cron     *cron.Cron
}

func NewWarmer(schedule string, jobs ...func(ctx context.Context) error) *Warmer {
	return &Warmer{schedule: schedule, jobs: jobs}
}

// Start initializes the cron schedule. Failures inside a job are logged
// and do not stop the schedule.
func (w *Warmer) Start() error {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc(w.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		for _, job := range w.jobs {
			if err := job(ctx); err != nil {
				log.Printf("cache warmer: %v", err)
			}
		}
	})
	if err != nil {
		return err
	}

	log.Printf("Cache warmer started (schedule %q)", w.schedule)
	w.cron = c
	c.Start()
	return nil
}

// Stop halts the schedule; running jobs finish on their own context.
func (w *Warmer) Stop() {
	if w.cron != nil {
		w.cron.Stop()
	}
}
