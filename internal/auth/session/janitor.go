package session

import (
	"context"
	"log"
	"time"

	"social-backend/internal/auth/repository"
)

// Janitor periodically purges expired sessions. Resolve already ignores
// expired rows; this only keeps the table small.
type Janitor struct {
	repo     repository.SessionRepository
	interval time.Duration
	stopChan chan struct{}
	doneChan chan struct{}
}

func NewJanitor(repo repository.SessionRepository, interval time.Duration) *Janitor {
	return &Janitor{
		repo:     repo,
		interval: interval,
		stopChan: make(chan struct{}),
		doneChan: make(chan struct{}),
	}
}

// Start begins the cleanup loop
func (j *Janitor) Start() {
	log.Printf("[Session] Starting session janitor (interval: %s)", j.interval)

	go func() {
		defer close(j.doneChan)

		ticker := time.NewTicker(j.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				j.sweep()
			case <-j.stopChan:
				log.Println("[Session] Janitor stopped")
				return
			}
		}
	}()
}

// Stop stops the loop and waits for it to exit
func (j *Janitor) Stop() {
	close(j.stopChan)
	<-j.doneChan
}

func (j *Janitor) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	removed, err := j.repo.DeleteExpired(ctx, time.Now())
	if err != nil {
		log.Printf("[Session] Error purging expired sessions: %v", err)
		return
	}
	if removed > 0 {
		log.Printf("[Session] Purged %d expired sessions", removed)
	}
}
