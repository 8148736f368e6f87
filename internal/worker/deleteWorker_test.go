package worker_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/atinyakov/useful-links/internal/models"
	"github.com/atinyakov/useful-links/internal/worker"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type mockRepo struct {
	mu     sync.Mutex
	calls  [][]models.UsefulLink
	failOn int
}

func (m *mockRepo) DeleteBatch(_ context.Context, ls []models.UsefulLink) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	batch := make([]models.UsefulLink, len(ls))
	copy(batch, ls)
	m.calls = append(m.calls, batch)

	if len(m.calls) == m.failOn {
		return errors.New("forced failure")
	}
	return nil
}

func (m *mockRepo) snapshot() [][]models.UsefulLink {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([][]models.UsefulLink(nil), m.calls...)
}

func start(t *testing.T, w *worker.DeleteWorker) context.CancelFunc {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		w.Run(ctx)
	}()

	stop := func() {
		cancel()
		wg.Wait()
	}
	t.Cleanup(stop)
	return stop
}

func TestRun_BatchTrigger(t *testing.T) {
	repo := &mockRepo{}
	w := worker.NewDeleteWorker(zap.NewNop(), repo, worker.WithInterval(time.Hour))
	start(t, w)

	for i := 0; i < 26; i++ {
		require.True(t, w.Enqueue(context.Background(), models.UsefulLink{ID: "id", AuthorID: "user"}))
	}

	require.Eventually(t, func() bool { return len(repo.snapshot()) == 1 }, time.Second, 10*time.Millisecond)
	assert.Len(t, repo.snapshot()[0], 26)
}

func TestRun_TimerTrigger(t *testing.T) {
	repo := &mockRepo{}
	w := worker.NewDeleteWorker(zap.NewNop(), repo, worker.WithInterval(50*time.Millisecond))
	start(t, w)

	w.Enqueue(context.Background(), models.UsefulLink{ID: "a", AuthorID: "user"})
	w.Enqueue(context.Background(), models.UsefulLink{ID: "b", AuthorID: "user"})

	require.Eventually(t, func() bool { return len(repo.snapshot()) == 1 }, time.Second, 10*time.Millisecond)
	assert.Len(t, repo.snapshot()[0], 2)
}

func TestRun_ErrorClearsBuffer(t *testing.T) {
	repo := &mockRepo{failOn: 1}
	w := worker.NewDeleteWorker(zap.NewNop(), repo, worker.WithInterval(time.Hour), worker.WithBatchSize(2))
	start(t, w)

	for i := 0; i < 6; i++ {
		w.Enqueue(context.Background(), models.UsefulLink{ID: "id", AuthorID: "user"})
	}

	require.Eventually(t, func() bool { return len(repo.snapshot()) == 2 }, time.Second, 10*time.Millisecond)
	for _, call := range repo.snapshot() {
		assert.Len(t, call, 3)
	}
}

func TestRun_FlushOnStop(t *testing.T) {
	repo := &mockRepo{}
	w := worker.NewDeleteWorker(zap.NewNop(), repo, worker.WithInterval(time.Hour))
	stop := start(t, w)

	w.Enqueue(context.Background(), models.UsefulLink{ID: "a", AuthorID: "user"})
	stop()

	calls := repo.snapshot()
	require.Len(t, calls, 1)
	assert.Equal(t, "a", calls[0][0].ID)

	assert.False(t, w.Enqueue(context.Background(), models.UsefulLink{ID: "late"}), "stopped worker must not accept work")
}
