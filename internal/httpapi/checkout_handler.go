package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"atelier-be/internal/checkout"
)

type CheckoutHandler struct {
	checkouts checkout.Service
}

func NewCheckoutHandler(checkouts checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{checkouts: checkouts}
}

type MethodRequestDTO struct {
	Method string `json:"method"`
}

func (h *CheckoutHandler) Begin(w http.ResponseWriter, r *http.Request) {
	sid, ok := requireSession(w, r)
	if !ok {
		return
	}

	st, err := h.checkouts.Begin(r.Context(), sid)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, st)
}

func (h *CheckoutHandler) Get(w http.ResponseWriter, r *http.Request) {
	sid, ok := requireSession(w, r)
	if !ok {
		return
	}

	st, err := h.checkouts.Get(r.Context(), sid)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, st)
}

func (h *CheckoutHandler) Continue(w http.ResponseWriter, r *http.Request) {
	h.step(w, r, h.checkouts.Continue)
}

func (h *CheckoutHandler) Back(w http.ResponseWriter, r *http.Request) {
	h.step(w, r, h.checkouts.Back)
}

func (h *CheckoutHandler) SetShipping(w http.ResponseWriter, r *http.Request) {
	sid, ok := requireSession(w, r)
	if !ok {
		return
	}

	var info checkout.ShippingInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	st, err := h.checkouts.SetShipping(r.Context(), sid, info)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, st)
}

func (h *CheckoutHandler) SetShippingMethod(w http.ResponseWriter, r *http.Request) {
	h.setMethod(w, r, h.checkouts.SetShippingMethod)
}

func (h *CheckoutHandler) SetPaymentMethod(w http.ResponseWriter, r *http.Request) {
	h.setMethod(w, r, h.checkouts.SetPaymentMethod)
}

func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	sid, ok := requireSession(w, r)
	if !ok {
		return
	}

	st, err := h.checkouts.Submit(r.Context(), sid)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, st)
}

func (h *CheckoutHandler) Reset(w http.ResponseWriter, r *http.Request) {
	sid, ok := requireSession(w, r)
	if !ok {
		return
	}

	if err := h.checkouts.Reset(r.Context(), sid); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CheckoutHandler) step(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, sessionID string) (*checkout.State, error),
) {
	sid, ok := requireSession(w, r)
	if !ok {
		return
	}

	st, err := op(r.Context(), sid)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, st)
}

func (h *CheckoutHandler) setMethod(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, sessionID, method string) (*checkout.State, error),
) {
	sid, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req MethodRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	st, err := op(r.Context(), sid, req.Method)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, st)
}
