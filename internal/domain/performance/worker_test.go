package performance

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestWorkerStopJoinsLoopAndFlushes(t *testing.T) {
	rec, repo, mr := newTestRecorder(t)
	campaignID := uuid.New()

	w := NewWorker(rec, time.Hour)
	w.Start()

	if err := rec.TrackView(context.Background(), campaignID); err != nil {
		t.Fatalf("track view: %v", err)
	}

	// Stop waits for the loop goroutine to exit before the final flush,
	// so by the time it returns the pending counter is persisted exactly once.
	w.Stop()

	if len(repo.added) != 1 {
		t.Fatalf("expected 1 flushed row after stop, got %d", len(repo.added))
	}
	if repo.added[0].views != 1 {
		t.Fatalf("expected 1 view, got %d", repo.added[0].views)
	}
	if len(mr.Keys()) != 0 {
		t.Fatal("expected counters drained on shutdown")
	}
}
