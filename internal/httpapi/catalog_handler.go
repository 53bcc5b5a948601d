package httpapi

import (
	"net/http"
	"strconv"

	"atelier-be/internal/catalog"

	"github.com/go-chi/chi/v5"
)

type CatalogHandler struct {
	products catalog.Service
}

func NewCatalogHandler(products catalog.Service) *CatalogHandler {
	return &CatalogHandler{products: products}
}

type ProductListResponseDTO struct {
	Products []catalog.Product `json:"products"`
	Count    int               `json:"count"`
}

// List serves the filtered catalog view. Query params: category (a label,
// "All", or a marketing alias), max_price (inclusive, minor units), search.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	criteria := catalog.Criteria{
		Category: catalog.ResolveCategory(q.Get("category")),
		Search:   q.Get("search"),
	}

	if raw := q.Get("max_price"); raw != "" {
		maxPrice, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || maxPrice < 0 {
			respondError(w, http.StatusBadRequest, "invalid_max_price", "max_price must be a non-negative integer")
			return
		}
		criteria.MaxPrice = maxPrice
	}

	products := h.products.List(r.Context(), criteria)
	respondJSON(w, http.StatusOK, ProductListResponseDTO{Products: products, Count: len(products)})
}

func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_id", "product id must be an integer")
		return
	}

	p, err := h.products.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

func (h *CatalogHandler) Categories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string][]string{"categories": catalog.Categories()})
}
