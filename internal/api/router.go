package api

import (
	"net/http"

	"github.com/fastprodman/itemmart/internal/auth"
	"github.com/fastprodman/itemmart/internal/services/market"
	"github.com/fastprodman/itemmart/internal/services/users"
	"github.com/go-chi/chi/v5"
)

// NewRouter registers all API endpoints. Everything below the auth group
// resolves the caller's account id from the bearer token.
func NewRouter(marketSvc *market.MarketService, userSvc *users.UserService, tokens *auth.Manager) http.Handler {
	h := NewHandler(marketSvc, userSvc, tokens)
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Post("/register", h.RegisterHandler)
	r.Post("/login", h.LoginHandler)

	r.Group(func(r chi.Router) {
		r.Use(RequireAuth(tokens))

		r.Get("/me", h.MeHandler)
		r.Post("/items", h.ListItemHandler)
		r.Get("/items/market", h.MarketItemsHandler)
		r.Get("/items/{itemId}", h.GetItemHandler)
		r.Delete("/items/{itemId}/market", h.UnlistItemHandler)
		r.Post("/purchase", h.PurchaseHandler)
	})

	return r
}
