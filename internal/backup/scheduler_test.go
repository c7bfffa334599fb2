package backup

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestNewScheduler(t *testing.T) {
	manager := NewBackupManager("/tmp/backups", "/tmp/chromabags.db")
	scheduler := NewScheduler(manager)
	if scheduler.Manager != manager {
		t.Fatal("scheduler manager not set correctly")
	}
	if scheduler.Interval != 24*time.Hour || scheduler.Retention != 10 {
		t.Errorf("unexpected defaults: %v, %d", scheduler.Interval, scheduler.Retention)
	}
	if last, _ := scheduler.LastRun(); !last.IsZero() {
		t.Error("new scheduler should not have run")
	}
}

func TestSchedulerRunsInitialBackup(t *testing.T) {
	manager := newTestManager(t)
	scheduler := NewScheduler(manager)

	ctx, cancel := context.WithCancel(context.Background())
	done := scheduler.Start(ctx)
	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("scheduler did not stop within timeout")
	}

	backups, _ := manager.ListBackups()
	if len(backups) != 1 {
		t.Errorf("expected initial backup, got %d", len(backups))
	}
	if last, err := scheduler.LastRun(); last.IsZero() || err != nil {
		t.Errorf("expected a successful run, got %v, %v", last, err)
	}
}

func TestSchedulerRetention(t *testing.T) {
	manager := newTestManager(t)
	scheduler := NewScheduler(manager)
	scheduler.Interval = 20 * time.Millisecond
	scheduler.Retention = 2

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()
	<-scheduler.Start(ctx)

	backups, _ := manager.ListBackups()
	if len(backups) != 2 {
		t.Errorf("expected retention to keep 2 backups, got %d", len(backups))
	}
}

func TestSchedulerRecordsFailure(t *testing.T) {
	manager := newTestManager(t)
	if err := os.Remove(manager.DatabasePath); err != nil {
		t.Fatalf("failed to remove database: %v", err)
	}

	scheduler := NewScheduler(manager)
	scheduler.tick()
	if _, err := scheduler.LastRun(); err == nil {
		t.Error("expected the missing database to be reported")
	}
}
