package handlers

import (
	"net/http"

	"hoolicoin/internal/coins"
	"hoolicoin/internal/validator"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) GetBalance(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")
	if err := validator.ValidateAccountID(accountID); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_account_id")
		return
	}
	balance, err := h.engine.GetBalance(r.Context(), accountID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to load balance")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"account_id": accountID,
		"balance":    balance,
		"formatted":  coins.Format(balance),
	})
}

func (h *Handler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_limit")
		return
	}
	rows, err := h.engine.Leaderboard(r.Context(), limit)
	if err != nil {
		respondLeaderboardError(w, err)
		return
	}
	entries := make([]map[string]any, 0, len(rows))
	for rank, row := range rows {
		entries = append(entries, map[string]any{
			"rank":       rank + 1,
			"account_id": row.AccountID,
			"balance":    row.Balance,
			"formatted":  coins.Format(row.Balance),
		})
	}
	respondJSON(w, http.StatusOK, map[string]any{"leaderboard": entries})
}
