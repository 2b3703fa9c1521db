package service

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/chainsafe/social-verifier/pkg/agent"
	apperrors "github.com/chainsafe/social-verifier/pkg/app/errors"
	apphttp "github.com/chainsafe/social-verifier/pkg/app/http"
)

const (
	maxBodySize          = 1 << 20
	actionFailedMessage  = "Failed to process agent action"
	invalidActionMessage = "invalid JSON"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers HTTP endpoints for the agent service on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Get("/api/flow/agent", h.errorEnvelope(h.status))
	r.Post("/api/flow/agent", h.errorEnvelope(h.act))
}

// status handles GET /api/flow/agent
func (h *HTTP) status(w http.ResponseWriter, r *http.Request) error {
	resp, err := h.service.Status(r.Context())
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

// act handles POST /api/flow/agent
func (h *HTTP) act(w http.ResponseWriter, r *http.Request) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return apperrors.BadRequestError(err, "failed to read request")
	}

	var req agent.ActionRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return apperrors.BadRequestError(err, invalidActionMessage)
	}

	result, err := h.service.Act(r.Context(), &req)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, &agent.ActionResponse{Success: true, Data: result})
	return nil
}

// errorEnvelope renders handler errors in the {success:false, error} shape
// the agent endpoints use instead of the default error body.
func (h *HTTP) errorEnvelope(fn apphttp.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)
		if err == nil {
			return
		}

		var svcErr *apperrors.ServiceError
		if !errors.As(err, &svcErr) || apperrors.IsInternalError(err) {
			h.logger.Error("Agent request failed",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.Error(err),
			)
			apphttp.WriteJSON(w, http.StatusInternalServerError, &agent.ActionResponse{Error: actionFailedMessage})
			return
		}

		apphttp.WriteJSON(w, svcErr.StatusCode(), &agent.ActionResponse{Error: svcErr.Message})
	}
}
