package handlers

import (
	"errors"
	"net/http"

	"hoolicoin/internal/economy"
	"hoolicoin/internal/store"
	"hoolicoin/internal/websocket"
)

func (h *Handler) ListShop(w http.ResponseWriter, r *http.Request) {
	items, err := h.engine.ListShop(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to load shop")
		return
	}
	if items == nil {
		items = []store.ShopItem{}
	}
	respondJSON(w, http.StatusOK, map[string]any{"shop": items})
}

func (h *Handler) Rotate(w http.ResponseWriter, r *http.Request) {
	if err := h.engine.RotateCatalog(r.Context()); err != nil {
		if errors.Is(err, economy.ErrEmptyPool) {
			respondError(w, http.StatusConflict, "empty_item_pool")
			return
		}
		respondError(w, http.StatusInternalServerError, "rotation_failed")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "rotated"})
}

func (h *Handler) WSBalances(w http.ResponseWriter, r *http.Request) {
	accountID := r.URL.Query().Get("account_id")
	if accountID == "" {
		respondError(w, http.StatusBadRequest, "account_id is required")
		return
	}
	websocket.ServeWS(w, r, h.hub, accountID)
}
