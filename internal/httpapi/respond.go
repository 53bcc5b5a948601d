package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"atelier-be/internal/cart"
	"atelier-be/internal/catalog"
	"atelier-be/internal/checkout"
	"atelier-be/internal/logger"
	"atelier-be/internal/wishlist"

	"go.uber.org/zap"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.L().Error("failed to encode response", zap.Error(err))
		}
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{Error: message, Code: code})
}

// respondServiceError translates engine errors to HTTP statuses. Validation
// failures are the caller's problem; flow conflicts are 409; a gateway
// failure is the upstream's.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, cart.ErrSizeRequired),
		errors.Is(err, cart.ErrSizeNotOffered),
		errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, checkout.ErrUnknownShippingMethod),
		errors.Is(err, checkout.ErrUnknownPaymentMethod):
		respondError(w, http.StatusBadRequest, "validation", err.Error())

	case errors.Is(err, cart.ErrSessionRequired),
		errors.Is(err, wishlist.ErrSessionRequired),
		errors.Is(err, checkout.ErrSessionRequired):
		respondError(w, http.StatusUnauthorized, "unauthorized", "session required")

	case errors.Is(err, cart.ErrProductNotFound),
		errors.Is(err, wishlist.ErrProductNotFound),
		errors.Is(err, catalog.ErrProductNotFound):
		respondError(w, http.StatusNotFound, "not_found", err.Error())

	case errors.Is(err, checkout.ErrNoCheckout):
		respondError(w, http.StatusNotFound, "no_checkout", err.Error())

	case errors.Is(err, checkout.ErrWrongStage),
		errors.Is(err, checkout.ErrPaymentInProgress):
		respondError(w, http.StatusConflict, "conflict", err.Error())

	case errors.Is(err, checkout.ErrPaymentFailed):
		respondError(w, http.StatusBadGateway, "payment_failed", err.Error())

	default:
		logger.L().Error("unhandled service error", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal", "internal error")
	}
}
