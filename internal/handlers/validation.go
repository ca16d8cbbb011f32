package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"hoolicoin/internal/economy"
)

var errInvalidLimit = errors.New("invalid limit")

const defaultLeaderboardLimit = 10

func parseLimit(raw string) (int, error) {
	if raw == "" {
		return defaultLeaderboardLimit, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errInvalidLimit
	}
	return limit, nil
}

func respondLeaderboardError(w http.ResponseWriter, err error) {
	if errors.Is(err, economy.ErrInvalidLimit) {
		respondError(w, http.StatusBadRequest, "limit_out_of_range")
		return
	}
	respondError(w, http.StatusInternalServerError, "unable to load leaderboard")
}
