// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Madi Zhakenov

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mzhakenov/go-goal-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient создаёт httpActionClient, направленный на тестовый сервер
func newTestClient(t *testing.T, serverURL string) *httpActionClient {
	t.Helper()
	c := NewHTTPActionClient(HTTPClientConfig{BaseURL: serverURL})
	return c.(*httpActionClient)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

// ── Signup / Login ───────────────────────────────────────────────────────────

func TestSignup_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/signup", r.URL.Path)

		var user models.User
		require.NoError(t, json.NewDecoder(r.Body).Decode(&user))
		assert.Equal(t, "madi@example.com", user.Email)

		w.Header().Set("Authorization", "Bearer test-token")
		writeJSON(t, w, http.StatusCreated, models.User{Email: user.Email, Name: user.Name})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	created, err := c.Signup(context.Background(), models.User{Email: "madi@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "madi@example.com", created.Email)
	assert.Equal(t, "test-token", c.Token(), "the bearer token is stored for subsequent requests")
}

func TestSignup_EmailTaken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusConflict, models.ErrorResponse{Error: "email already exists"})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Signup(context.Background(), models.User{Email: "madi@example.com", Password: "secret"})

	require.ErrorIs(t, err, ErrRemote)
	assert.Empty(t, c.Token())
}

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		w.Header().Set("Authorization", "Bearer login-token")
		writeJSON(t, w, http.StatusOK, models.User{Email: "madi@example.com"})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	token, err := c.Login(context.Background(), models.User{Email: "madi@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "login-token", token.SignedString)
	assert.Equal(t, "login-token", c.Token())
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Error: "invalid email or password"})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Login(context.Background(), models.User{Email: "madi@example.com", Password: "wrong"})

	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestLogin_MissingBearerHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.User{Email: "madi@example.com"})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Login(context.Background(), models.User{Email: "madi@example.com", Password: "secret"})

	require.ErrorIs(t, err, ErrInvalidResponse)
}

// ── Actions ──────────────────────────────────────────────────────────────────

func TestListActions_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/actions", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		writeJSON(t, w, http.StatusOK, []models.Action{{ID: 1, Title: "read"}})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.SetToken("test-token")

	actions, err := c.ListActions(context.Background())
	require.NoError(t, err)
	require.Len(t, actions, 1)
	assert.Equal(t, int64(1), actions[0].ID)
}

func TestCreateAction_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/actions", r.URL.Path)

		var req models.CreateActionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		writeJSON(t, w, http.StatusCreated, models.Action{ID: 10, Title: req.Title, TargetCount: req.TargetCount})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	created, err := c.CreateAction(context.Background(), models.CreateActionRequest{Title: "read", TargetCount: 30})

	require.NoError(t, err)
	assert.Equal(t, int64(10), created.ID)
}

func TestCreateAction_MissingServerID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 2xx, но тело без пригодного id
		writeJSON(t, w, http.StatusCreated, map[string]string{"status": "ok"})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.CreateAction(context.Background(), models.CreateActionRequest{Title: "read"})

	require.ErrorIs(t, err, ErrInvalidResponse)
}

func TestUpdateAction_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/actions/5", r.URL.Path)
		writeJSON(t, w, http.StatusNotFound, models.ErrorResponse{Error: "action not found"})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	title := "read"
	_, err := c.UpdateAction(context.Background(), 5, models.UpdateActionRequest{Title: &title})

	require.ErrorIs(t, err, ErrActionNotFound)
}

func TestUpdateAction_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	title := "read"
	_, err := c.UpdateAction(context.Background(), 5, models.UpdateActionRequest{Title: &title})

	require.ErrorIs(t, err, ErrInvalidResponse)
}

func TestDeleteAction_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/actions/5", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	require.NoError(t, c.DeleteAction(context.Background(), 5))
}

func TestDeleteAction_NotFoundIsIdempotent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, models.ErrorResponse{Error: "action not found"})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	// Повторное удаление и удаление временного id для сервера неотличимы
	// от удаления несуществующей записи: это успех, а не ошибка.
	require.NoError(t, c.DeleteAction(context.Background(), 404))
}

func TestDeleteAction_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	require.ErrorIs(t, c.DeleteAction(context.Background(), 5), ErrUnauthorized)
}

// ── Progress ─────────────────────────────────────────────────────────────────

func TestRecordProgress_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/progress", r.URL.Path)

		var req models.RecordProgressRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(5), req.ActionID)
		assert.Equal(t, 3, req.Count)

		writeJSON(t, w, http.StatusCreated, models.ProgressResult{
			Progress: models.Progress{ID: 1, ActionID: 5, Count: 3},
			Action:   models.Action{ID: 5, CurrentCount: 13, TargetCount: 30},
		})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	result, err := c.RecordProgress(context.Background(), 5, 3)

	require.NoError(t, err)
	assert.Equal(t, 3, result.Progress.Count)
	assert.Equal(t, 13, result.Action.CurrentCount)
}

func TestRecordProgress_DomainRuleErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{"completed action", "completed action rejects further progress", ErrActionCompleted},
		{"already at maximum", "action is already at maximum progress", ErrAlreadyAtMaximum},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeJSON(t, w, http.StatusBadRequest, models.ErrorResponse{Error: tt.body})
			}))
			defer srv.Close()

			c := newTestClient(t, srv.URL)
			_, err := c.RecordProgress(context.Background(), 5, 1)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDecrementProgress_AtMinimum(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/progress/decrement", r.URL.Path)
		writeJSON(t, w, http.StatusBadRequest, models.ErrorResponse{Error: "action is already at minimum progress"})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.DecrementProgress(context.Background(), 5)

	require.ErrorIs(t, err, ErrAlreadyAtMinimum)
}

// ── Helpers ──────────────────────────────────────────────────────────────────

func TestMapHTTPError_PlainTextBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.ListActions(context.Background())

	require.ErrorIs(t, err, ErrRemote)
	assert.Contains(t, err.Error(), "boom")
}

func TestSetToken_TrimsWhitespace(t *testing.T) {
	c := NewHTTPActionClient(HTTPClientConfig{}).(*httpActionClient)
	c.SetToken("  token  ")
	assert.Equal(t, "token", c.Token())
}
