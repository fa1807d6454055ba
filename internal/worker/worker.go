package worker

import (
	"context"
	"time"

	"github.com/falliso3/capstone-fraud-rpa/internal/metrics"
	"github.com/falliso3/capstone-fraud-rpa/internal/models"
	"github.com/sirupsen/logrus"
)

// ClaimQueue defines the interface for the lease protocol over
// transactions needing enrichment.
type ClaimQueue interface {
	ClaimOne(ctx context.Context, leaseDuration time.Duration) (*models.Transaction, error)
	ReleaseFailure(ctx context.Context, id string, message string) error
}

// Enricher processes one claimed transaction end to end.
type Enricher interface {
	Enrich(ctx context.Context, tx *models.Transaction) error
}

// Worker polls the queue, claims eligible transactions one at a time and
// runs them through enrichment. Several worker processes may run against
// the same store; the claim is atomic, so each transaction has at most
// one active processor.
type Worker struct {
	ID            string
	Queue         ClaimQueue
	Enricher      Enricher
	PollInterval  time.Duration
	LeaseDuration time.Duration
	ErrorBackoff  time.Duration
}

func New(id string, queue ClaimQueue, enricher Enricher, pollInterval, leaseDuration, errorBackoff time.Duration) *Worker {
	return &Worker{
		ID:            id,
		Queue:         queue,
		Enricher:      enricher,
		PollInterval:  pollInterval,
		LeaseDuration: leaseDuration,
		ErrorBackoff:  errorBackoff,
	}
}

// Run loops until the context is cancelled. Claim errors back off and
// continue; they are expected during storage hiccups.
func (w *Worker) Run(ctx context.Context) {
	logrus.Infof("Worker %s started (poll=%s lease=%s)", w.ID, w.PollInterval, w.LeaseDuration)

	for {
		if ctx.Err() != nil {
			logrus.Infof("Worker %s stopped", w.ID)
			return
		}

		tx, err := w.Queue.ClaimOne(ctx, w.LeaseDuration)
		if err != nil {
			logrus.Errorf("Worker %s claim failed: %s", w.ID, err.Error())
			if !w.sleep(ctx, w.ErrorBackoff) {
				return
			}
			continue
		}

		if tx == nil {
			if !w.sleep(ctx, w.PollInterval) {
				return
			}
			continue
		}

		w.process(ctx, tx)
	}
}

func (w *Worker) process(ctx context.Context, tx *models.Transaction) {
	eventType := "unknown_event"
	if tx.LastEventType != nil {
		eventType = *tx.LastEventType
	}
	logrus.Infof("Worker %s claimed tx %s (%s)", w.ID, tx.ID, eventType)

	start := time.Now()
	err := w.Enricher.Enrich(ctx, tx)
	metrics.ClaimLatency.Observe(time.Since(start).Seconds())

	if err != nil {
		logrus.Errorf("Worker %s enrichment failed for %s: %s", w.ID, tx.ID, err.Error())
		metrics.EnrichmentsTotal.WithLabelValues("failure").Inc()

		if releaseErr := w.Queue.ReleaseFailure(ctx, tx.ID, err.Error()); releaseErr != nil {
			// The lease expires on its own; the failure is re-claimed
			// after the lease duration.
			logrus.Errorf("Worker %s release failed for %s: %s", w.ID, tx.ID, releaseErr.Error())
		}
		w.sleep(ctx, w.ErrorBackoff)
		return
	}

	metrics.EnrichmentsTotal.WithLabelValues("success").Inc()
	logrus.Infof("Worker %s enriched tx %s", w.ID, tx.ID)
}

// sleep waits for d or until cancellation; returns false when cancelled.
func (w *Worker) sleep(ctx context.Context, d time.Duration) bool {
	select {
	case <-time.After(d):
		return true
	case <-ctx.Done():
		return false
	}
}
