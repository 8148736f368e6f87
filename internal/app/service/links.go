// Package service implements the useful-links business logic and the JWT
// authentication used by both transports.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/atinyakov/useful-links/internal/loading"
	"github.com/atinyakov/useful-links/internal/models"
	"github.com/atinyakov/useful-links/internal/storage"
	"github.com/atinyakov/useful-links/internal/worker"
)

type LinkService struct {
	repository Storage
	flags      *loading.State
	validator  *models.Validator
	deleter    *worker.DeleteWorker
	logger     *zap.Logger

	now   func() time.Time
	newID func() string
}

// NewLinks builds the service and starts its delete worker. The worker stops
// when ctx is cancelled.
func NewLinks(ctx context.Context, repo Storage, flags *loading.State, logger *zap.Logger, opts ...worker.Option) *LinkService {
	w := worker.NewDeleteWorker(logger, repo, opts...)
	go w.Run(ctx)

	return &LinkService{
		repository: repo,
		flags:      flags,
		validator:  models.NewValidator(),
		deleter:    w,
		logger:     logger,
		now:        time.Now,
		newID:      func() string { return uuid.New().String() },
	}
}

func (s *LinkService) Loading() *loading.State {
	return s.flags
}

func (s *LinkService) PingContext(ctx context.Context) error {
	return s.repository.PingContext(ctx)
}

// CreateLink stores a new link authored by authorID. On conflict the stored
// link is returned together with storage.ErrConflict.
func (s *LinkService) CreateLink(ctx context.Context, req models.LinkRequest, authorID string) (*models.UsefulLink, error) {
	l := s.build(req, authorID)
	if err := s.validator.Link(l); err != nil {
		return nil, err
	}

	return s.repository.Write(ctx, l)
}

// CreateLinks stores every request or none of them.
func (s *LinkService) CreateLinks(ctx context.Context, reqs []models.LinkRequest, authorID string) ([]models.UsefulLink, error) {
	res := make([]models.UsefulLink, 0, len(reqs))
	if len(reqs) == 0 {
		return res, nil
	}

	for _, req := range reqs {
		l := s.build(req, authorID)
		if err := s.validator.Link(l); err != nil {
			return nil, err
		}
		res = append(res, l)
	}

	defer s.flags.Store.Begin()()

	if err := s.repository.WriteAll(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *LinkService) GetLink(ctx context.Context, id string) (*models.UsefulLink, error) {
	return s.repository.FindByID(ctx, id)
}

// ListLinks returns every link, or the links of one category when category
// is not empty.
func (s *LinkService) ListLinks(ctx context.Context, category string) ([]models.UsefulLink, error) {
	if category == "" {
		defer s.flags.Store.Begin()()
		return s.repository.Read(ctx)
	}

	defer s.flags.Level.Begin()()
	return s.repository.FindByCategory(ctx, category)
}

func (s *LinkService) GetLinksByAuthor(ctx context.Context, authorID string) ([]models.UsefulLink, error) {
	defer s.flags.User.Begin()()
	return s.repository.FindByAuthor(ctx, authorID)
}

// DeleteLinks queues the deletion of the given links. Links owned by another
// author are left in place.
func (s *LinkService) DeleteLinks(ctx context.Context, ids []string, authorID string) {
	s.logger.Info("queueing deletions", zap.Int("count", len(ids)), zap.String("author", authorID))

	for _, id := range ids {
		if !s.deleter.Enqueue(ctx, models.UsefulLink{ID: id, AuthorID: authorID}) {
			s.logger.Warn("deletion dropped", zap.String("id", id))
			return
		}
	}
}

// Wait blocks until the delete worker has flushed and stopped, which happens
// after the context given to NewLinks is cancelled.
func (s *LinkService) Wait() {
	<-s.deleter.Done()
}

func (s *LinkService) GetStats(ctx context.Context) (*storage.Stats, error) {
	return s.repository.GetStats(ctx)
}

func (s *LinkService) build(req models.LinkRequest, authorID string) models.UsefulLink {
	id := req.ID
	if id == "" {
		id = s.newID()
	}

	return models.UsefulLink{
		ID:          id,
		Title:       req.Title,
		URL:         req.URL,
		Description: req.Description,
		Category:    req.Category,
		AuthorID:    authorID,
		CreatedAt:   s.now().UTC().Format(time.RFC3339),
	}
}
