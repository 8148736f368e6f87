package storage_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atinyakov/useful-links/internal/models"
	"github.com/atinyakov/useful-links/internal/storage"
)

func link(id, url, category, author, created string) models.UsefulLink {
	return models.UsefulLink{
		ID:        id,
		Title:     "title " + id,
		URL:       url,
		Category:  category,
		AuthorID:  author,
		CreatedAt: created,
	}
}

func TestMemoryStorage_WriteAndFind(t *testing.T) {
	mem, _ := storage.CreateMemoryStorage()
	ctx := context.Background()

	l := link("1", "https://example.com", "reference", "u1", "2024-01-01T00:00:00Z")

	res, err := mem.Write(ctx, l)
	require.NoError(t, err)
	assert.Equal(t, l, *res)

	found, err := mem.FindByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", found.URL)

	_, err = mem.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestMemoryStorage_WriteConflict(t *testing.T) {
	mem, _ := storage.CreateMemoryStorage()
	ctx := context.Background()

	first := link("1", "https://example.com", "reference", "u1", "2024-01-01T00:00:00Z")
	_, err := mem.Write(ctx, first)
	require.NoError(t, err)

	t.Run("same id", func(t *testing.T) {
		existing, err := mem.Write(ctx, link("1", "https://other.com", "x", "u2", "2024-01-02T00:00:00Z"))
		assert.ErrorIs(t, err, storage.ErrConflict)
		require.NotNil(t, existing)
		assert.Equal(t, first, *existing)
	})

	t.Run("same url", func(t *testing.T) {
		existing, err := mem.Write(ctx, link("2", "https://example.com", "x", "u2", "2024-01-02T00:00:00Z"))
		assert.ErrorIs(t, err, storage.ErrConflict)
		require.NotNil(t, existing)
		assert.Equal(t, "1", existing.ID)
	})
}

func TestMemoryStorage_WriteAllIsAtomic(t *testing.T) {
	mem, _ := storage.CreateMemoryStorage()
	ctx := context.Background()

	_, err := mem.Write(ctx, link("1", "https://1.com", "a", "u1", "2024-01-01T00:00:00Z"))
	require.NoError(t, err)

	err = mem.WriteAll(ctx, []models.UsefulLink{
		link("2", "https://2.com", "a", "u1", "2024-01-01T00:00:00Z"),
		link("3", "https://1.com", "a", "u1", "2024-01-01T00:00:00Z"),
	})
	assert.ErrorIs(t, err, storage.ErrConflict)

	_, err = mem.FindByID(ctx, "2")
	assert.ErrorIs(t, err, storage.ErrNotFound, "no link of a rejected batch may be stored")

	err = mem.WriteAll(ctx, []models.UsefulLink{
		link("4", "https://4.com", "a", "u1", "2024-01-01T00:00:00Z"),
		link("4", "https://5.com", "a", "u1", "2024-01-01T00:00:00Z"),
	})
	assert.ErrorIs(t, err, storage.ErrConflict, "duplicates inside a batch conflict")

	err = mem.WriteAll(ctx, []models.UsefulLink{
		link("6", "https://6.com", "a", "u1", "2024-01-01T00:00:00Z"),
		link("7", "https://7.com", "a", "u1", "2024-01-01T00:00:00Z"),
	})
	require.NoError(t, err)

	all, err := mem.Read(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestMemoryStorage_Filters(t *testing.T) {
	mem, _ := storage.CreateMemoryStorage()
	ctx := context.Background()

	require.NoError(t, mem.WriteAll(ctx, []models.UsefulLink{
		link("b", "https://b.com", "tools", "u1", "2024-01-02T00:00:00Z"),
		link("a", "https://a.com", "docs", "u1", "2024-01-01T00:00:00Z"),
		link("c", "https://c.com", "docs", "u2", "2024-01-03T00:00:00Z"),
	}))

	byAuthor, err := mem.FindByAuthor(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, byAuthor, 2)
	assert.Equal(t, "a", byAuthor[0].ID, "results are ordered by creation time")

	byCategory, err := mem.FindByCategory(ctx, "docs")
	require.NoError(t, err)
	require.Len(t, byCategory, 2)
	assert.Equal(t, []string{"a", "c"}, []string{byCategory[0].ID, byCategory[1].ID})

	none, err := mem.FindByAuthor(ctx, "unknown")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemoryStorage_DeleteBatchOnlyOwnLinks(t *testing.T) {
	mem, _ := storage.CreateMemoryStorage()
	ctx := context.Background()

	require.NoError(t, mem.WriteAll(ctx, []models.UsefulLink{
		link("1", "https://1.com", "a", "u1", "2024-01-01T00:00:00Z"),
		link("2", "https://2.com", "a", "u2", "2024-01-01T00:00:00Z"),
	}))

	err := mem.DeleteBatch(ctx, []models.UsefulLink{
		{ID: "1", AuthorID: "u1"},
		{ID: "2", AuthorID: "u1"},
	})
	require.NoError(t, err)

	_, err = mem.FindByID(ctx, "1")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = mem.FindByID(ctx, "2")
	assert.NoError(t, err)

	// the url of a deleted link is free again
	_, err = mem.Write(ctx, link("3", "https://1.com", "a", "u1", "2024-01-01T00:00:00Z"))
	assert.NoError(t, err)
}

func TestMemoryStorage_GetStats(t *testing.T) {
	mem, _ := storage.CreateMemoryStorage()
	ctx := context.Background()

	require.NoError(t, mem.WriteAll(ctx, []models.UsefulLink{
		link("1", "https://1.com", "a", "u1", "2024-01-01T00:00:00Z"),
		link("2", "https://2.com", "a", "u1", "2024-01-01T00:00:00Z"),
		link("3", "https://3.com", "a", "u2", "2024-01-01T00:00:00Z"),
	}))

	stats, err := mem.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Links)
	assert.Equal(t, 2, stats.Authors)
}

func TestMemoryStorage_PingContext(t *testing.T) {
	mem, _ := storage.CreateMemoryStorage()

	err := mem.PingContext(context.Background())
	assert.True(t, errors.Is(err, errors.ErrUnsupported))
}
