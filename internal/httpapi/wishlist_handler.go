package httpapi

import (
	"encoding/json"
	"net/http"

	"atelier-be/internal/wishlist"
)

type WishlistHandler struct {
	wishlists wishlist.Service
}

func NewWishlistHandler(wishlists wishlist.Service) *WishlistHandler {
	return &WishlistHandler{wishlists: wishlists}
}

type ToggleRequestDTO struct {
	ProductID int `json:"product_id"`
}

type ToggleResponseDTO struct {
	ProductID int  `json:"product_id"`
	Saved     bool `json:"saved"`
}

func (h *WishlistHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	sid, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req ToggleRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	saved, err := h.wishlists.Toggle(r.Context(), sid, req.ProductID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, ToggleResponseDTO{ProductID: req.ProductID, Saved: saved})
}

func (h *WishlistHandler) List(w http.ResponseWriter, r *http.Request) {
	sid, ok := requireSession(w, r)
	if !ok {
		return
	}

	products, err := h.wishlists.List(r.Context(), sid)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, ProductListResponseDTO{Products: products, Count: len(products)})
}
