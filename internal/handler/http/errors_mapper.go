package http

import (
	"errors"
	"net/http"

	"github.com/mzhakenov/go-goal-keeper/internal/service"
	"github.com/mzhakenov/go-goal-keeper/internal/store"
	"github.com/mzhakenov/go-goal-keeper/internal/utils"
	"github.com/mzhakenov/go-goal-keeper/models"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:         http.StatusBadRequest,
	ErrInvalidURLParameter: http.StatusBadRequest,

	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusUnauthorized,
	store.ErrActionNotFound:     http.StatusNotFound,
	store.ErrActionCompleted:    http.StatusBadRequest,
	store.ErrAlreadyAtMaximum:   http.StatusBadRequest,
	store.ErrAlreadyAtMinimum:   http.StatusBadRequest,

	store.ErrBuildingSQLQuery:      http.StatusInternalServerError,
	store.ErrExecutingQuery:        http.StatusInternalServerError,
	store.ErrBeginningTransaction:  http.StatusInternalServerError,
	store.ErrCommittingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:           http.StatusInternalServerError,
	store.ErrScanningRows:          http.StatusInternalServerError,
}

// errorMessageMap holds the stable response bodies. REST clients map these
// values back to sentinel errors, so changing a string here is a breaking
// change of the API contract.
var errorMessageMap = map[error]string{
	ErrInvalidJSON:         "invalid JSON was passed",
	ErrInvalidURLParameter: "invalid URL parameter",

	service.ErrInvalidDataProvided:     "invalid data provided",
	service.ErrWrongPassword:           "invalid email or password",
	service.ErrTokenIsExpiredOrInvalid: "token is expired or invalid",

	store.ErrEmailAlreadyExists: "email already exists",
	store.ErrNoUserWasFound:     "invalid email or password",
	store.ErrActionNotFound:     "action not found",
	store.ErrActionCompleted:    "completed action rejects further progress",
	store.ErrAlreadyAtMaximum:   "action is already at maximum progress",
	store.ErrAlreadyAtMinimum:   "action is already at minimum progress",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return http.StatusText(http.StatusInternalServerError)
}

// writeError renders err as the API's JSON error body with the mapped status.
func writeError(w http.ResponseWriter, err error) {
	utils.WriteJSON(w, errorBody(messageFromError(err)), statusFromError(err)) //nolint:errcheck
}

func errorBody(message string) models.ErrorResponse {
	return models.ErrorResponse{Error: message}
}
