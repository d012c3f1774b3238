package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/fastprodman/itemmart/internal/auth"
	"github.com/fastprodman/itemmart/internal/repos/accounts"
	"github.com/fastprodman/itemmart/internal/repos/items"
	"github.com/fastprodman/itemmart/internal/services/market"
	"github.com/fastprodman/itemmart/internal/services/users"
	"github.com/go-chi/chi/v5"
)

// HandlerProvider wraps the market and user services and exposes HTTP handlers.
type HandlerProvider struct {
	market *market.MarketService
	users  *users.UserService
	tokens *auth.Manager
}

// NewHandler returns a new Handler provider.
func NewHandler(marketSvc *market.MarketService, userSvc *users.UserService, tokens *auth.Manager) *HandlerProvider {
	return &HandlerProvider{market: marketSvc, users: userSvc, tokens: tokens}
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("failed to encode JSON response", "error", err)

		http.Error(w, `{"error":"internal json encode failure"}`, http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// decodeBody decodes a size-capped JSON body into dst. Unknown fields are
// rejected the same way for every endpoint.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB cap
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err != nil {
		if errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, "empty body")
			return false
		}

		writeError(w, http.StatusBadRequest, "invalid JSON")
		return false
	}

	return true
}

type accountResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Balance  int64  `json:"balance"`
}

type itemResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	SellerID string `json:"sellerId"`
	BuyerID  string `json:"buyerId,omitempty"`
	Listed   bool   `json:"listed"`
}

func toItemResponse(item items.Item) itemResponse {
	return itemResponse{
		ID:       item.ID,
		Name:     item.Name,
		Price:    item.Price,
		SellerID: item.SellerID,
		BuyerID:  item.BuyerID,
		Listed:   item.Listed,
	}
}

// --- Handlers ---

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Balance  int64  `json:"balance"`
}

// RegisterHandler handles POST /register
func (h *HandlerProvider) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	acc, err := h.users.Register(r.Context(), req.Username, req.Password, req.Balance)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrMissingUsername),
			errors.Is(err, users.ErrMissingPassword),
			errors.Is(err, users.ErrNegativeBalance):
			writeError(w, http.StatusBadRequest, err.Error())
			return
		case errors.Is(err, accounts.ErrDuplicateUsername):
			writeError(w, http.StatusConflict, "username already taken")
			return
		default:
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
	}

	writeJSON(w, http.StatusCreated, accountResponse{
		ID:       acc.ID,
		Username: acc.Username,
		Balance:  acc.Balance,
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginHandler handles POST /login
func (h *HandlerProvider) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	acc, err := h.users.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, users.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}

		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	token, err := h.tokens.Issue(acc.ID)
	if err != nil {
		slog.Error("failed to issue token", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// MeHandler handles GET /me and returns the caller's own account.
func (h *HandlerProvider) MeHandler(w http.ResponseWriter, r *http.Request) {
	accountID, ok := accountIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	acc, err := h.users.GetAccount(r.Context(), accountID)
	if err != nil {
		if errors.Is(err, accounts.ErrAccountNotFound) {
			writeError(w, http.StatusNotFound, "account not found")
			return
		}

		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, accountResponse{
		ID:       acc.ID,
		Username: acc.Username,
		Balance:  acc.Balance,
	})
}

type listItemRequest struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// ListItemHandler handles POST /items. The seller is the authenticated caller.
func (h *HandlerProvider) ListItemHandler(w http.ResponseWriter, r *http.Request) {
	sellerID, ok := accountIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	var req listItemRequest
	if !decodeBody(w, r, &req) {
		return
	}

	item, err := h.market.List(r.Context(), sellerID, req.Name, req.Price)
	if err != nil {
		switch {
		case errors.Is(err, market.ErrMissingItemName),
			errors.Is(err, market.ErrInvalidPrice):
			writeError(w, http.StatusBadRequest, err.Error())
			return
		case errors.Is(err, accounts.ErrAccountNotFound):
			writeError(w, http.StatusNotFound, "seller not found")
			return
		default:
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
	}

	writeJSON(w, http.StatusCreated, toItemResponse(item))
}

// MarketItemsHandler handles GET /items/market
func (h *HandlerProvider) MarketItemsHandler(w http.ResponseWriter, r *http.Request) {
	listed, err := h.market.MarketItems(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	resp := make([]itemResponse, 0, len(listed))
	for _, item := range listed {
		resp = append(resp, toItemResponse(item))
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetItemHandler handles GET /items/{itemId}
func (h *HandlerProvider) GetItemHandler(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemId")
	if itemID == "" {
		writeError(w, http.StatusBadRequest, "missing itemId in path")
		return
	}

	item, err := h.market.GetItem(r.Context(), itemID)
	if err != nil {
		if errors.Is(err, items.ErrItemNotFound) {
			writeError(w, http.StatusNotFound, "item not found")
			return
		}

		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toItemResponse(item))
}

// UnlistItemHandler handles DELETE /items/{itemId}/market
func (h *HandlerProvider) UnlistItemHandler(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemId")
	if itemID == "" {
		writeError(w, http.StatusBadRequest, "missing itemId in path")
		return
	}

	item, err := h.market.Unlist(r.Context(), itemID)
	if err != nil {
		switch {
		case errors.Is(err, items.ErrItemNotFound):
			writeError(w, http.StatusNotFound, "item not found")
			return
		case errors.Is(err, items.ErrItemNotListed):
			writeError(w, http.StatusConflict, "item not listed")
			return
		default:
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
	}

	writeJSON(w, http.StatusOK, toItemResponse(item))
}

type purchaseRequest struct {
	ItemID string `json:"itemId"`
}

// PurchaseHandler handles POST /purchase. The buyer is the authenticated
// caller; the item id is the only field taken from the body.
func (h *HandlerProvider) PurchaseHandler(w http.ResponseWriter, r *http.Request) {
	buyerID, ok := accountIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	var req purchaseRequest
	if !decodeBody(w, r, &req) {
		return
	}

	receipt, err := h.market.Purchase(r.Context(), buyerID, req.ItemID)
	if err != nil {
		switch {
		case errors.Is(err, market.ErrMissingItemID):
			writeError(w, http.StatusBadRequest, "itemId required")
			return
		case errors.Is(err, accounts.ErrInsufficientFunds):
			writeError(w, http.StatusBadRequest, "insufficient funds")
			return
		case errors.Is(err, items.ErrItemNotListed):
			writeError(w, http.StatusConflict, "item already sold")
			return
		case errors.Is(err, items.ErrItemNotFound):
			writeError(w, http.StatusNotFound, "item not found")
			return
		case errors.Is(err, accounts.ErrAccountNotFound):
			writeError(w, http.StatusNotFound, "buyer not found")
			return
		default:
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": receipt.Message,
		"itemId":  receipt.ItemID,
	})
}
