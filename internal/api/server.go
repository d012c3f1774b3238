package api

import (
	"net/http"
	"time"

	"github.com/fastprodman/itemmart/internal/auth"
	"github.com/fastprodman/itemmart/internal/services/market"
	"github.com/fastprodman/itemmart/internal/services/users"
)

// NewServer creates and returns a configured *http.Server for the market API.
func NewServer(addr string, marketSvc *market.MarketService, userSvc *users.UserService, tokens *auth.Manager) *http.Server {
	mux := NewRouter(marketSvc, userSvc, tokens)

	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
