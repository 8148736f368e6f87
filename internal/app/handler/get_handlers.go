package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/atinyakov/useful-links/internal/app/service"
	"github.com/atinyakov/useful-links/internal/loading"
	"github.com/atinyakov/useful-links/internal/middleware"
	"github.com/atinyakov/useful-links/internal/models"
	"github.com/atinyakov/useful-links/internal/storage"
)

const requestTimeout = 3 * time.Second

type GetHandler struct {
	service service.LinkServiceIface
	logger  *zap.Logger
}

func NewGet(s service.LinkServiceIface, l *zap.Logger) *GetHandler {
	return &GetHandler{
		service: s,
		logger:  l,
	}
}

// ByID serves a single link.
func (h *GetHandler) ByID(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	id := chi.URLParam(req, "id")

	l, err := h.service.GetLink(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		http.Error(res, "link not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("get link", zap.String("id", id), zap.Error(err))
		http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeJSON(res, http.StatusOK, l, h.logger)
}

// List serves all links, filtered by the optional category query parameter.
func (h *GetHandler) List(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	links, err := h.service.ListLinks(ctx, req.URL.Query().Get("category"))
	h.writeLinks(res, links, err)
}

// ByAuthor serves the links created by the requesting user.
func (h *GetHandler) ByAuthor(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := middleware.UserID(req.Context())
	if !ok {
		http.Error(res, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	links, err := h.service.GetLinksByAuthor(ctx, userID)
	h.writeLinks(res, links, err)
}

func (h *GetHandler) PingDB(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	if err := h.service.PingContext(ctx); err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}

	res.WriteHeader(http.StatusOK)
}

// Stats serves link and author totals. The route is guarded by the trusted
// subnet middleware.
func (h *GetHandler) Stats(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	stats, err := h.service.GetStats(ctx)
	if err != nil {
		h.logger.Error("get stats", zap.Error(err))
		http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeJSON(res, http.StatusOK, models.StatsResponse{Links: stats.Links, Authors: stats.Authors}, h.logger)
}

// LoadingAll serves every loading flag.
func (h *GetHandler) LoadingAll(res http.ResponseWriter, req *http.Request) {
	writeJSON(res, http.StatusOK, h.service.Loading().Snapshot(), h.logger)
}

// Loading serves the flag named by the domain URL parameter.
func (h *GetHandler) Loading(res http.ResponseWriter, req *http.Request) {
	flag, err := h.service.Loading().Lookup(chi.URLParam(req, "domain"))
	if errors.Is(err, loading.ErrUnknownDomain) {
		http.Error(res, err.Error(), http.StatusNotFound)
		return
	}

	writeJSON(res, http.StatusOK, models.LoadingResponse{Loading: flag.Get()}, h.logger)
}

func (h *GetHandler) writeLinks(res http.ResponseWriter, links []models.UsefulLink, err error) {
	if err != nil {
		h.logger.Error("list links", zap.Error(err))
		http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if len(links) == 0 {
		res.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(res, http.StatusOK, links, h.logger)
}
