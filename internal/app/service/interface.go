package service

import (
	"context"

	"github.com/atinyakov/useful-links/internal/loading"
	"github.com/atinyakov/useful-links/internal/models"
	"github.com/atinyakov/useful-links/internal/storage"
)

//go:generate mockgen -destination=../../mocks/service_mock.go -package=mocks . LinkServiceIface,AuthIface

// Storage is implemented by storage.MemoryStorage, storage.FileStorage and
// repository.LinkRepository.
type Storage interface {
	Write(context.Context, models.UsefulLink) (*models.UsefulLink, error)
	WriteAll(context.Context, []models.UsefulLink) error
	Read(context.Context) ([]models.UsefulLink, error)
	FindByID(context.Context, string) (*models.UsefulLink, error)
	FindByAuthor(context.Context, string) ([]models.UsefulLink, error)
	FindByCategory(context.Context, string) ([]models.UsefulLink, error)
	DeleteBatch(context.Context, []models.UsefulLink) error
	GetStats(context.Context) (*storage.Stats, error)
	PingContext(context.Context) error
}

// LinkServiceIface is what the HTTP and gRPC transports need from the service.
type LinkServiceIface interface {
	CreateLink(ctx context.Context, req models.LinkRequest, authorID string) (*models.UsefulLink, error)
	CreateLinks(ctx context.Context, reqs []models.LinkRequest, authorID string) ([]models.UsefulLink, error)
	GetLink(ctx context.Context, id string) (*models.UsefulLink, error)
	ListLinks(ctx context.Context, category string) ([]models.UsefulLink, error)
	GetLinksByAuthor(ctx context.Context, authorID string) ([]models.UsefulLink, error)
	DeleteLinks(ctx context.Context, ids []string, authorID string)
	GetStats(ctx context.Context) (*storage.Stats, error)
	PingContext(ctx context.Context) error
	Loading() *loading.State
}
