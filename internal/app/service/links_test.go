package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/atinyakov/useful-links/internal/loading"
	"github.com/atinyakov/useful-links/internal/models"
	"github.com/atinyakov/useful-links/internal/storage"
	"github.com/atinyakov/useful-links/internal/worker"
)

var fixedNow = time.Date(2024, 1, 1, 12, 0, 0, 0, time.FixedZone("CET", 3600))

func newTestService(t *testing.T, repo Storage) *LinkService {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	s := NewLinks(ctx, repo, loading.NewState(), zap.NewNop(), worker.WithInterval(20*time.Millisecond))
	s.now = func() time.Time { return fixedNow }
	return s
}

func TestLinkService_CreateLink(t *testing.T) {
	mem, _ := storage.CreateMemoryStorage()
	s := newTestService(t, mem)
	s.newID = func() string { return "generated" }

	res, err := s.CreateLink(context.Background(), models.LinkRequest{
		Title:    "Docs",
		URL:      "https://example.com",
		Category: "reference",
	}, "u1")

	require.NoError(t, err)
	assert.Equal(t, "generated", res.ID)
	assert.Equal(t, "u1", res.AuthorID)
	assert.Equal(t, "2024-01-01T11:00:00Z", res.CreatedAt)
	assert.Nil(t, res.Description)

	stored, err := mem.FindByID(context.Background(), "generated")
	require.NoError(t, err)
	assert.Equal(t, *res, *stored)
}

func TestLinkService_CreateLink_KeepsClientID(t *testing.T) {
	mem, _ := storage.CreateMemoryStorage()
	s := newTestService(t, mem)

	res, err := s.CreateLink(context.Background(), models.LinkRequest{
		ID: "client-id", Title: "Docs", URL: "https://example.com", Category: "reference",
	}, "u1")

	require.NoError(t, err)
	assert.Equal(t, "client-id", res.ID)
}

func TestLinkService_CreateLink_Invalid(t *testing.T) {
	mem, _ := storage.CreateMemoryStorage()
	s := newTestService(t, mem)

	_, err := s.CreateLink(context.Background(), models.LinkRequest{Title: "Docs", URL: "nope"}, "u1")

	var verr *models.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Errors, "url")
	assert.Contains(t, verr.Errors, "category")
}

func TestLinkService_CreateLink_Conflict(t *testing.T) {
	mem, _ := storage.CreateMemoryStorage()
	s := newTestService(t, mem)
	req := models.LinkRequest{Title: "Docs", URL: "https://example.com", Category: "reference"}

	first, err := s.CreateLink(context.Background(), req, "u1")
	require.NoError(t, err)

	existing, err := s.CreateLink(context.Background(), req, "u2")
	assert.ErrorIs(t, err, storage.ErrConflict)
	require.NotNil(t, existing)
	assert.Equal(t, first.ID, existing.ID)
}

func TestLinkService_CreateLinks(t *testing.T) {
	mem, _ := storage.CreateMemoryStorage()
	s := newTestService(t, mem)

	res, err := s.CreateLinks(context.Background(), []models.LinkRequest{
		{ID: "a", Title: "A", URL: "https://a.com", Category: "x"},
		{ID: "b", Title: "B", URL: "https://b.com", Category: "y"},
	}, "u1")
	require.NoError(t, err)
	assert.Len(t, res, 2)
	assert.False(t, s.Loading().Store.Get(), "store flag is released after the batch")

	empty, err := s.CreateLinks(context.Background(), nil, "u1")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestLinkService_CreateLinks_RejectsWholeBatch(t *testing.T) {
	mem, _ := storage.CreateMemoryStorage()
	s := newTestService(t, mem)

	_, err := s.CreateLinks(context.Background(), []models.LinkRequest{
		{ID: "a", Title: "A", URL: "https://a.com", Category: "x"},
		{ID: "b", Title: "", URL: "https://b.com", Category: "y"},
	}, "u1")
	require.Error(t, err)

	all, err := mem.Read(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

// blockingStorage parks reads until released so flag state can be observed.
type blockingStorage struct {
	*storage.MemoryStorage
	entered chan struct{}
	release chan struct{}
}

func (b *blockingStorage) wait() {
	b.entered <- struct{}{}
	<-b.release
}

func (b *blockingStorage) Read(ctx context.Context) ([]models.UsefulLink, error) {
	b.wait()
	return b.MemoryStorage.Read(ctx)
}

func (b *blockingStorage) FindByCategory(ctx context.Context, c string) ([]models.UsefulLink, error) {
	b.wait()
	return b.MemoryStorage.FindByCategory(ctx, c)
}

func (b *blockingStorage) FindByAuthor(ctx context.Context, a string) ([]models.UsefulLink, error) {
	b.wait()
	return b.MemoryStorage.FindByAuthor(ctx, a)
}

func TestLinkService_FlagsFollowOperations(t *testing.T) {
	tests := []struct {
		name string
		call func(*LinkService) error
		flag func(*loading.State) *loading.Flag
	}{
		{"list all drives store", func(s *LinkService) error {
			_, err := s.ListLinks(context.Background(), "")
			return err
		}, func(st *loading.State) *loading.Flag { return st.Store }},
		{"list category drives level", func(s *LinkService) error {
			_, err := s.ListLinks(context.Background(), "docs")
			return err
		}, func(st *loading.State) *loading.Flag { return st.Level }},
		{"author listing drives user", func(s *LinkService) error {
			_, err := s.GetLinksByAuthor(context.Background(), "u1")
			return err
		}, func(st *loading.State) *loading.Flag { return st.User }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem, _ := storage.CreateMemoryStorage()
			repo := &blockingStorage{MemoryStorage: mem, entered: make(chan struct{}), release: make(chan struct{})}
			s := newTestService(t, repo)
			flag := tt.flag(s.Loading())

			var wg sync.WaitGroup
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.NoError(t, tt.call(s))
			}()

			<-repo.entered
			assert.True(t, flag.Get())

			close(repo.release)
			wg.Wait()
			assert.False(t, flag.Get())
		})
	}
}

func TestLinkService_DeleteLinks(t *testing.T) {
	mem, _ := storage.CreateMemoryStorage()
	s := newTestService(t, mem)
	ctx := context.Background()

	_, err := s.CreateLinks(ctx, []models.LinkRequest{
		{ID: "mine", Title: "A", URL: "https://a.com", Category: "x"},
	}, "u1")
	require.NoError(t, err)
	_, err = s.CreateLinks(ctx, []models.LinkRequest{
		{ID: "theirs", Title: "B", URL: "https://b.com", Category: "x"},
	}, "u2")
	require.NoError(t, err)

	s.DeleteLinks(ctx, []string{"mine", "theirs"}, "u1")

	require.Eventually(t, func() bool {
		_, err := mem.FindByID(ctx, "mine")
		return errors.Is(err, storage.ErrNotFound)
	}, time.Second, 10*time.Millisecond)

	_, err = mem.FindByID(ctx, "theirs")
	assert.NoError(t, err)
}

func TestLinkService_GetLinkStatsPing(t *testing.T) {
	mem, _ := storage.CreateMemoryStorage()
	s := newTestService(t, mem)
	ctx := context.Background()

	created, err := s.CreateLink(ctx, models.LinkRequest{Title: "A", URL: "https://a.com", Category: "x"}, "u1")
	require.NoError(t, err)

	got, err := s.GetLink(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.URL, got.URL)

	_, err = s.GetLink(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	stats, err := s.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, &storage.Stats{Links: 1, Authors: 1}, stats)

	err = s.PingContext(ctx)
	assert.ErrorIs(t, err, errors.ErrUnsupported)
}

func TestLinkService_WaitFlushesPendingDeletes(t *testing.T) {
	mem, _ := storage.CreateMemoryStorage()
	_, err := mem.Write(context.Background(), models.UsefulLink{
		ID: "a", Title: "A", URL: "https://a.example", Category: "c", AuthorID: "u1", CreatedAt: "2024-01-01T00:00:00Z",
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	s := NewLinks(ctx, mem, loading.NewState(), zap.NewNop(), worker.WithInterval(time.Hour))

	s.DeleteLinks(context.Background(), []string{"a"}, "u1")
	cancel()
	s.Wait()

	_, err = mem.FindByID(context.Background(), "a")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestLinkService_ExternalFlagOutlivesListing(t *testing.T) {
	mem, _ := storage.CreateMemoryStorage()
	s := newTestService(t, mem)

	s.Loading().Store.Set(true)

	_, err := s.ListLinks(context.Background(), "")
	require.NoError(t, err)
	_, err = s.CreateLinks(context.Background(), []models.LinkRequest{
		{Title: "Docs", URL: "https://example.com", Category: "reference"},
	}, "u1")
	require.NoError(t, err)

	assert.True(t, s.Loading().Store.Get())
}
