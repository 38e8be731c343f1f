package http

import (
	"net/http"

	"github.com/mzhakenov/go-goal-keeper/internal/utils"
)

type healthResponse struct {
	Status string `json:"status"`
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, healthResponse{Status: "ok"}, http.StatusOK) //nolint:errcheck
}
