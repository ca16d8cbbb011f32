package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"hoolicoin/internal/coins"
	"hoolicoin/internal/economy"
	"hoolicoin/internal/validator"
)

type purchaseRequest struct {
	AccountID string `json:"account_id"`
	ItemName  string `json:"item_name"`
}

func (h *Handler) Purchase(w http.ResponseWriter, r *http.Request) {
	var req purchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := validator.ValidateAccountID(req.AccountID); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_account_id")
		return
	}
	if err := validator.ValidateItemName(req.ItemName); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_item_name")
		return
	}
	receipt, err := h.engine.Purchase(r.Context(), req.AccountID, req.ItemName)
	if err != nil {
		respondPurchaseError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"receipt_id": receipt.ID,
		"account_id": receipt.AccountID,
		"item_name":  receipt.ItemName,
		"price":      receipt.Price,
		"balance":    receipt.Balance,
		"formatted":  coins.Format(receipt.Balance),
	})
}

type creditRequest struct {
	AccountID string `json:"account_id"`
	Amount    int64  `json:"amount"`
}

func (h *Handler) Credit(w http.ResponseWriter, r *http.Request) {
	var req creditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := validator.ValidateAccountID(req.AccountID); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_account_id")
		return
	}
	balance, err := h.engine.Credit(r.Context(), req.AccountID, req.Amount)
	if err != nil {
		if errors.Is(err, economy.ErrInvalidAmount) {
			respondError(w, http.StatusBadRequest, "invalid_amount")
			return
		}
		respondError(w, http.StatusInternalServerError, "credit failed")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"account_id": req.AccountID,
		"balance":    balance,
		"formatted":  coins.Format(balance),
	})
}

func respondPurchaseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, economy.ErrItemNotFound):
		respondError(w, http.StatusNotFound, "item_not_found")
	case errors.Is(err, economy.ErrInsufficientFunds):
		respondError(w, http.StatusBadRequest, "insufficient_funds")
	default:
		respondError(w, http.StatusInternalServerError, "purchase failed")
	}
}
