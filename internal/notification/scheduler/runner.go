package scheduler

import (
	"log"
	"time"

	"todo-backend/internal/notification/usecase"
)

// Runner drives the notification dispatcher on a fixed interval
type Runner struct {
	dispatcher *usecase.Dispatcher
	interval   time.Duration
	stopChan   chan struct{}
}

// NewRunner creates a new Runner
func NewRunner(dispatcher *usecase.Dispatcher, interval time.Duration) *Runner {
	return &Runner{
		dispatcher: dispatcher,
		interval:   interval,
		stopChan:   make(chan struct{}),
	}
}

// Start begins the dispatch loop
func (r *Runner) Start() {
	log.Printf("[DispatchRunner] Starting notification dispatch loop (interval: %s)", r.interval)

	go func() {
		// Run immediately on start
		r.runOnce()

		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				r.runOnce()
			case <-r.stopChan:
				log.Println("[DispatchRunner] Dispatch loop stopped")
				return
			}
		}
	}()
}

// Stop gracefully stops the dispatch loop
func (r *Runner) Stop() {
	close(r.stopChan)
}

func (r *Runner) runOnce() {
	if err := r.dispatcher.Run(); err != nil {
		log.Printf("[DispatchRunner] Dispatch run failed: %v", err)
	}
}
