package service

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/social-verifier/pkg/app/errors"
	apphttp "github.com/chainsafe/social-verifier/pkg/app/http"
	"github.com/chainsafe/social-verifier/pkg/verification"
)

const maxBodySize = 1 << 20

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers HTTP endpoints for the verification service on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Post("/api/verify-flare", apphttp.HandleError(logger, h.verify))
	r.Get("/api/verify-flare", apphttp.HandleError(logger, h.status))
}

// verify handles POST /api/verify-flare?mock&success&demo
func (h *HTTP) verify(w http.ResponseWriter, r *http.Request) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return apperrors.BadRequestError(err, "failed to read request")
	}

	var req verification.VerifyRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return apperrors.BadRequestError(err, "invalid JSON")
	}

	resp, err := h.service.Verify(r.Context(), &req, parseOptions(r))
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

// status handles GET /api/verify-flare?wallet
func (h *HTTP) status(w http.ResponseWriter, r *http.Request) error {
	rec, err := h.service.GetStatus(r.Context(), r.URL.Query().Get("wallet"))
	if apperrors.Is(err, apperrors.CategoryResourceNotFound) {
		apphttp.WriteJSON(w, http.StatusOK, &verification.NotVerified{
			Verified: false,
			Message:  "No Flare verification found for this wallet address",
		})
		return nil
	}
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, rec)
	return nil
}

// parseOptions reads the query flags. mock is on unless explicitly "false";
// success and demo must be explicitly "true".
func parseOptions(r *http.Request) verification.Options {
	q := r.URL.Query()
	return verification.Options{
		Mock:         q.Get("mock") != "false",
		ForceSuccess: q.Get("success") == "true",
		Demo:         q.Get("demo") == "true",
	}
}
