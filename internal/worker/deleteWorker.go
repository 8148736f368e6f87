// Package worker batches link deletions in the background.
package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/atinyakov/useful-links/internal/models"
)

const (
	defaultBatchSize = 25
	defaultInterval  = 10 * time.Second
	flushTimeout     = 3 * time.Second
)

type Repo interface {
	DeleteBatch(context.Context, []models.UsefulLink) error
}

// DeleteWorker collects deletion requests and hands them to the repository
// in batches, once more than batchSize are pending or every interval.
type DeleteWorker struct {
	in        chan models.UsefulLink
	done      chan struct{}
	logger    *zap.Logger
	repo      Repo
	batchSize int
	interval  time.Duration
}

type Option func(*DeleteWorker)

// WithInterval overrides how often pending deletions are flushed.
func WithInterval(d time.Duration) Option {
	return func(w *DeleteWorker) { w.interval = d }
}

// WithBatchSize overrides the pending count that triggers an early flush.
func WithBatchSize(n int) Option {
	return func(w *DeleteWorker) { w.batchSize = n }
}

func NewDeleteWorker(logger *zap.Logger, repo Repo, opts ...Option) *DeleteWorker {
	w := &DeleteWorker{
		in:        make(chan models.UsefulLink),
		done:      make(chan struct{}),
		logger:    logger,
		repo:      repo,
		batchSize: defaultBatchSize,
		interval:  defaultInterval,
	}
	for _, o := range opts {
		o(w)
	}
	return w
}

// Enqueue hands l to the worker. It blocks until the worker accepts it, the
// worker stops or ctx is done.
func (w *DeleteWorker) Enqueue(ctx context.Context, l models.UsefulLink) bool {
	select {
	case w.in <- l:
		return true
	case <-w.done:
		return false
	case <-ctx.Done():
		return false
	}
}

// Run processes deletions until ctx is cancelled, then flushes what is left.
func (w *DeleteWorker) Run(ctx context.Context) {
	defer close(w.done)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	var pending []models.UsefulLink

	flush := func() {
		if len(pending) == 0 {
			return
		}
		w.logger.Info("flushing deletions", zap.Int("count", len(pending)))

		// контекст Run уже может быть отменён, удаляем с отдельным таймаутом
		fctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
		defer cancel()

		if err := w.repo.DeleteBatch(fctx, pending); err != nil {
			w.logger.Error("cannot delete links", zap.Error(err))
		}
		pending = pending[:0]
	}

	for {
		select {
		case l := <-w.in:
			pending = append(pending, l)
			if len(pending) > w.batchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-ctx.Done():
			flush()
			w.logger.Info("delete worker stopped")
			return
		}
	}
}

// Done is closed once Run has returned.
func (w *DeleteWorker) Done() <-chan struct{} {
	return w.done
}
