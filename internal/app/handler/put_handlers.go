package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/atinyakov/useful-links/internal/app/service"
	"github.com/atinyakov/useful-links/internal/loading"
	"github.com/atinyakov/useful-links/internal/models"
)

type PutHandler struct {
	service service.LinkServiceIface
	logger  *zap.Logger
}

func NewPut(s service.LinkServiceIface, l *zap.Logger) *PutHandler {
	return &PutHandler{
		service: s,
		logger:  l,
	}
}

// Loading sets the flag named by the domain URL parameter.
func (h *PutHandler) Loading(res http.ResponseWriter, req *http.Request) {
	domain := chi.URLParam(req, "domain")

	flag, err := h.service.Loading().Lookup(domain)
	if errors.Is(err, loading.ErrUnknownDomain) {
		http.Error(res, err.Error(), http.StatusNotFound)
		return
	}

	var request models.LoadingRequest
	if err := decodeJSONBody(res, req, &request); err != nil {
		writeDecodeError(res, err, h.logger)
		return
	}
	if request.Loading == nil {
		http.Error(res, "loading is required", http.StatusBadRequest)
		return
	}

	flag.Set(*request.Loading)
	h.logger.Info("loading flag set", zap.String("domain", domain), zap.Bool("loading", *request.Loading))

	res.WriteHeader(http.StatusNoContent)
}
