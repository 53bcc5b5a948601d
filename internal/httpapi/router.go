package httpapi

import (
	"net/http"
	"time"

	"atelier-be/internal/cart"
	"atelier-be/internal/catalog"
	"atelier-be/internal/checkout"
	mw "atelier-be/internal/middleware"
	"atelier-be/internal/session"
	"atelier-be/internal/view"
	"atelier-be/internal/wishlist"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type Deps struct {
	Sessions  *session.Manager
	Catalog   catalog.Service
	Carts     cart.Service
	Wishlists wishlist.Service
	Checkouts checkout.Service
	Intents   *view.Bus
}

// NewRouter wires every storefront endpoint behind the shared middleware
// chain.
func NewRouter(d Deps) http.Handler {
	sessionH := NewSessionHandler(d.Sessions)
	catalogH := NewCatalogHandler(d.Catalog)
	cartH := NewCartHandler(d.Carts)
	wishlistH := NewWishlistHandler(d.Wishlists)
	checkoutH := NewCheckoutHandler(d.Checkouts)

	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(60 * time.Second))
	r.Use(mw.RequestIDMiddleware)
	r.Use(mw.SessionMiddleware(d.Sessions))
	r.Use(mw.RateLimitMiddleware)
	r.Use(mw.LoggingMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Post("/session", sessionH.Create)

	r.Get("/products", catalogH.List)
	r.Get("/products/{id}", catalogH.Get)
	r.Get("/categories", catalogH.Categories)

	r.Route("/cart", func(r chi.Router) {
		r.Get("/", cartH.Get)
		r.Delete("/", cartH.Clear)
		r.Post("/items", cartH.AddItem)
		r.Patch("/items", cartH.UpdateQty)
		r.Delete("/items", cartH.RemoveItem)
	})

	r.Route("/wishlist", func(r chi.Router) {
		r.Get("/", wishlistH.List)
		r.Post("/toggle", wishlistH.Toggle)
	})

	r.Route("/checkout", func(r chi.Router) {
		r.Post("/", checkoutH.Begin)
		r.Get("/", checkoutH.Get)
		r.Post("/continue", checkoutH.Continue)
		r.Post("/back", checkoutH.Back)
		r.Put("/shipping", checkoutH.SetShipping)
		r.Put("/shipping-method", checkoutH.SetShippingMethod)
		r.Put("/payment-method", checkoutH.SetPaymentMethod)
		r.Post("/submit", checkoutH.Submit)
		r.Post("/reset", checkoutH.Reset)
	})

	if d.Intents != nil {
		r.Get("/intents", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]interface{}{"intents": d.Intents.Recent()})
		})
	}

	return r
}
