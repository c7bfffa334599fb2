// SPDX-License-Identifier: MIT
package backup

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"
)

// Scheduler snapshots the catalog database on an interval and prunes old snapshots
type Scheduler struct {
	Manager   *BackupManager
	Interval  time.Duration
	Retention int // snapshots kept after each run, 0 keeps all

	mu      sync.Mutex
	lastRun time.Time
	lastErr error
}

// NewScheduler creates a daily scheduler keeping ten snapshots
func NewScheduler(manager *BackupManager) *Scheduler {
	return &Scheduler{
		Manager:   manager,
		Interval:  24 * time.Hour,
		Retention: 10,
	}
}

// Start snapshots once immediately, then every Interval until ctx is done.
// The returned channel is closed once the loop has exited.
func (s *Scheduler) Start(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})

	go func() {
		defer close(done)

		ticker := time.NewTicker(s.Interval)
		defer ticker.Stop()

		s.tick()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.tick()
			}
		}
	}()

	return done
}

// LastRun reports when the scheduler last ran and what went wrong, if anything
func (s *Scheduler) LastRun() (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastRun, s.lastErr
}

func (s *Scheduler) tick() {
	err := s.runBackup()
	if err != nil {
		log.Printf("scheduled backup failed: %v", err)
	}

	s.mu.Lock()
	s.lastRun, s.lastErr = time.Now(), err
	s.mu.Unlock()
}

func (s *Scheduler) runBackup() error {
	meta, err := s.Manager.CreateBackup()
	if err != nil {
		return fmt.Errorf("backup creation failed: %w", err)
	}
	log.Printf("backup created: %s (%d bytes)", meta.Filename, meta.Size)

	removed, err := s.Manager.Prune(s.Retention)
	if err != nil {
		return fmt.Errorf("backup pruning failed: %w", err)
	}
	if len(removed) > 0 {
		log.Printf("pruned %d old backups", len(removed))
	}
	return nil
}
