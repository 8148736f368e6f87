package handler

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/atinyakov/useful-links/internal/app/service"
	"github.com/atinyakov/useful-links/internal/middleware"
)

type DeleteHandler struct {
	service service.LinkServiceIface
	logger  *zap.Logger
}

func NewDelete(s service.LinkServiceIface, l *zap.Logger) *DeleteHandler {
	return &DeleteHandler{
		service: s,
		logger:  l,
	}
}

// DeleteBatch accepts a JSON array of link ids and deletes the ones owned by
// the requesting user in the background.
func (h *DeleteHandler) DeleteBatch(res http.ResponseWriter, req *http.Request) {
	userID, ok := middleware.UserID(req.Context())
	if !ok {
		http.Error(res, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var ids []string
	if err := decodeJSONBody(res, req, &ids); err != nil {
		writeDecodeError(res, err, h.logger)
		return
	}

	go h.service.DeleteLinks(context.WithoutCancel(req.Context()), ids, userID)

	res.WriteHeader(http.StatusAccepted)
}
