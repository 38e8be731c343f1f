package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mzhakenov/go-goal-keeper/internal/logger"
	"github.com/mzhakenov/go-goal-keeper/internal/service"
	"github.com/mzhakenov/go-goal-keeper/internal/utils"
	"github.com/mzhakenov/go-goal-keeper/models"
)

func (h *Handler) listActions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		writeError(w, service.ErrTokenIsExpiredOrInvalid)
		return
	}

	actions, err := h.services.ActionService.ListActions(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("listing actions failed")
		writeError(w, err)
		return
	}

	if actions == nil {
		actions = []models.Action{}
	}
	utils.WriteJSON(w, actions, http.StatusOK) //nolint:errcheck
}

func (h *Handler) createAction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		writeError(w, service.ErrTokenIsExpiredOrInvalid)
		return
	}

	var req models.CreateActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, ErrInvalidJSON)
		return
	}

	created, err := h.services.ActionService.CreateAction(ctx, userID, req)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("action creation failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated) //nolint:errcheck
}

func (h *Handler) updateAction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		writeError(w, service.ErrTokenIsExpiredOrInvalid)
		return
	}

	id, err := actionIDFromURL(r)
	if err != nil {
		log.Err(err).Str("id", chi.URLParam(r, "id")).Msg("invalid action id")
		writeError(w, err)
		return
	}

	var patch models.UpdateActionRequest
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, ErrInvalidJSON)
		return
	}

	updated, err := h.services.ActionService.UpdateAction(ctx, id, userID, patch)
	if err != nil {
		log.Err(err).Int64("id", id).Int64("userID", userID).Msg("action update failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK) //nolint:errcheck
}

func (h *Handler) deleteAction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		writeError(w, service.ErrTokenIsExpiredOrInvalid)
		return
	}

	id, err := actionIDFromURL(r)
	if err != nil {
		log.Err(err).Str("id", chi.URLParam(r, "id")).Msg("invalid action id")
		writeError(w, err)
		return
	}

	if err := h.services.ActionService.DeleteAction(ctx, id, userID); err != nil {
		log.Err(err).Int64("id", id).Int64("userID", userID).Msg("action deletion failed")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// actionIDFromURL parses the {id} chi URL parameter.
func actionIDFromURL(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, ErrInvalidURLParameter
	}
	return id, nil
}
