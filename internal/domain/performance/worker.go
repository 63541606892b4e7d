package performance

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// Worker periodically flushes the Redis counters into PostgreSQL
type Worker struct {
	recorder *Recorder
	interval time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewWorker creates a counter flush worker
func NewWorker(recorder *Recorder, interval time.Duration) *Worker {
	if interval == 0 {
		interval = time.Minute
	}
	return &Worker{
		recorder: recorder,
		interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background worker
func (w *Worker) Start() {
	log.Info().Dur("interval", w.interval).Msg("Starting performance flush worker")
	go w.loop()
}

// Stop gracefully stops the background worker, flushing one last time.
// The loop is joined first so the final flush never races a ticker flush.
func (w *Worker) Stop() {
	log.Info().Msg("Stopping performance flush worker")
	close(w.stopCh)
	<-w.doneCh
	w.flush()
}

func (w *Worker) loop() {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.flush()
		case <-w.stopCh:
			return
		}
	}
}

func (w *Worker) flush() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := w.recorder.Flush(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to flush performance counters")
		return
	}
	if count > 0 {
		log.Debug().Int("rows", count).Msg("Flushed performance counters")
	}
}
