package http

import (
	"encoding/json"
	"net/http"

	"github.com/mzhakenov/go-goal-keeper/internal/logger"
	"github.com/mzhakenov/go-goal-keeper/internal/service"
	"github.com/mzhakenov/go-goal-keeper/internal/utils"
	"github.com/mzhakenov/go-goal-keeper/models"
)

func (h *Handler) recordProgress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		writeError(w, service.ErrTokenIsExpiredOrInvalid)
		return
	}

	var req models.RecordProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, ErrInvalidJSON)
		return
	}

	result, err := h.services.ProgressService.Record(ctx, userID, req.ActionID, req.Count)
	if err != nil {
		log.Err(err).Int64("actionID", req.ActionID).Int("count", req.Count).Msg("recording progress failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusCreated) //nolint:errcheck
}

func (h *Handler) decrementProgress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		writeError(w, service.ErrTokenIsExpiredOrInvalid)
		return
	}

	var req models.DecrementProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, ErrInvalidJSON)
		return
	}

	result, err := h.services.ProgressService.Decrement(ctx, userID, req.ActionID)
	if err != nil {
		log.Err(err).Int64("actionID", req.ActionID).Msg("decrementing progress failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusCreated) //nolint:errcheck
}
