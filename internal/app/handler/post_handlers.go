package handler

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/atinyakov/useful-links/internal/app/service"
	"github.com/atinyakov/useful-links/internal/middleware"
	"github.com/atinyakov/useful-links/internal/models"
	"github.com/atinyakov/useful-links/internal/storage"
)

type PostHandler struct {
	service service.LinkServiceIface
	logger  *zap.Logger
}

func NewPost(s service.LinkServiceIface, l *zap.Logger) *PostHandler {
	return &PostHandler{
		service: s,
		logger:  l,
	}
}

// Link creates one link authored by the requesting user.
func (h *PostHandler) Link(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := middleware.UserID(req.Context())
	if !ok {
		http.Error(res, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request models.LinkRequest
	if err := decodeJSONBody(res, req, &request); err != nil {
		writeDecodeError(res, err, h.logger)
		return
	}

	l, err := h.service.CreateLink(ctx, request, userID)
	if err != nil {
		h.writeCreateError(res, l, err)
		return
	}

	writeJSON(res, http.StatusCreated, l, h.logger)
}

// Batch creates every link of the request or none of them.
func (h *PostHandler) Batch(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := middleware.UserID(req.Context())
	if !ok {
		http.Error(res, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request []models.LinkRequest
	if err := decodeJSONBody(res, req, &request); err != nil {
		writeDecodeError(res, err, h.logger)
		return
	}

	links, err := h.service.CreateLinks(ctx, request, userID)
	if err != nil {
		h.writeCreateError(res, nil, err)
		return
	}

	writeJSON(res, http.StatusCreated, links, h.logger)
}

func (h *PostHandler) writeCreateError(res http.ResponseWriter, existing *models.UsefulLink, err error) {
	var verr *models.ValidationError

	switch {
	case errors.As(err, &verr):
		writeJSON(res, http.StatusBadRequest, verr, h.logger)
	case errors.Is(err, storage.ErrConflict):
		h.logger.Info("link already exists", zap.Error(err))
		if existing == nil {
			res.WriteHeader(http.StatusConflict)
			return
		}
		writeJSON(res, http.StatusConflict, models.ConflictResponse{Existing: existing}, h.logger)
	default:
		h.logger.Error("unable to store link", zap.Error(err))
		res.WriteHeader(http.StatusInternalServerError)
	}
}
