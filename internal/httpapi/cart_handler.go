package httpapi

import (
	"encoding/json"
	"net/http"

	"atelier-be/internal/cart"
)

type CartHandler struct {
	carts cart.Service
}

func NewCartHandler(carts cart.Service) *CartHandler {
	return &CartHandler{carts: carts}
}

type AddItemRequestDTO struct {
	ProductID int    `json:"product_id"`
	Size      string `json:"size"`
	Qty       int    `json:"qty"`
}

type UpdateQtyRequestDTO struct {
	ProductID int    `json:"product_id"`
	Size      string `json:"size"`
	Delta     int    `json:"delta"`
}

type RemoveItemRequestDTO struct {
	ProductID int    `json:"product_id"`
	Size      string `json:"size"`
}

type CartLineDTO struct {
	ProductID int    `json:"product_id"`
	Name      string `json:"name"`
	Size      string `json:"size"`
	Qty       int    `json:"qty"`
	Price     int64  `json:"price"`
	Subtotal  int64  `json:"subtotal"`
}

type CartResponseDTO struct {
	Lines []CartLineDTO `json:"lines"`
	Total int64         `json:"total"`
	Count int           `json:"count"`
}

func toCartDTO(c *cart.Cart) CartResponseDTO {
	lines := make([]CartLineDTO, 0, len(c.Lines))
	for i := range c.Lines {
		l := &c.Lines[i]
		lines = append(lines, CartLineDTO{
			ProductID: l.Product.ID,
			Name:      l.Product.Name,
			Size:      l.Size,
			Qty:       l.Qty,
			Price:     l.Product.Price,
			Subtotal:  l.Subtotal(),
		})
	}
	return CartResponseDTO{Lines: lines, Total: c.Total(), Count: c.Count()}
}

func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	sid, ok := requireSession(w, r)
	if !ok {
		return
	}

	c, err := h.carts.Get(r.Context(), sid)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toCartDTO(c))
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	sid, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Qty == 0 {
		req.Qty = 1
	}

	c, err := h.carts.Add(r.Context(), cart.AddParams{
		SessionID: sid,
		ProductID: req.ProductID,
		Size:      req.Size,
		Qty:       req.Qty,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toCartDTO(c))
}

func (h *CartHandler) UpdateQty(w http.ResponseWriter, r *http.Request) {
	sid, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req UpdateQtyRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	c, err := h.carts.UpdateQty(r.Context(), sid, req.ProductID, req.Size, req.Delta)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toCartDTO(c))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sid, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req RemoveItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	c, err := h.carts.Remove(r.Context(), sid, req.ProductID, req.Size)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toCartDTO(c))
}

func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	sid, ok := requireSession(w, r)
	if !ok {
		return
	}

	if err := h.carts.Clear(r.Context(), sid); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
