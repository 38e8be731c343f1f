package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mzhakenov/go-goal-keeper/models"
)

// HTTPClientConfig holds the settings of the REST implementation of
// [ActionClient].
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpActionClient struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPActionClient constructs an [ActionClient] that talks to the
// goal-keeper REST API via resty. Empty config fields fall back to
// http://localhost:8080 and a 15 second timeout.
func NewHTTPActionClient(cfg HTTPClientConfig) ActionClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpActionClient{client: cli}
}

func (h *httpActionClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpActionClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpActionClient) Signup(ctx context.Context, user models.User) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/signup")
	if err != nil {
		return models.User{}, fmt.Errorf("signup request: %w: %w", ErrRemote, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("signup parse bearer token: %w: %w", ErrInvalidResponse, err)
	}

	var created models.User
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.User{}, fmt.Errorf("decode signup response: %w: %w", ErrInvalidResponse, err)
	}

	h.SetToken(token)
	return created, nil
}

func (h *httpActionClient) Login(ctx context.Context, user models.User) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/login")
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w: %w", ErrRemote, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	token, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse bearer token: %w: %w", ErrInvalidResponse, err)
	}

	h.SetToken(token)
	return models.Token{SignedString: token}, nil
}

func (h *httpActionClient) ListActions(ctx context.Context) ([]models.Action, error) {
	resp, err := h.authedRequest(ctx).Get("/api/actions")
	if err != nil {
		return nil, fmt.Errorf("list actions request: %w: %w", ErrRemote, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var actions []models.Action
	if err = json.Unmarshal(resp.Body(), &actions); err != nil {
		return nil, fmt.Errorf("decode actions list: %w: %w", ErrInvalidResponse, err)
	}

	return actions, nil
}

func (h *httpActionClient) CreateAction(ctx context.Context, payload models.CreateActionRequest) (models.Action, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post("/api/actions")
	if err != nil {
		return models.Action{}, fmt.Errorf("create action request: %w: %w", ErrRemote, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Action{}, err
	}

	var created models.Action
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.Action{}, fmt.Errorf("decode created action: %w: %w", ErrInvalidResponse, err)
	}
	if created.ID <= 0 {
		return models.Action{}, fmt.Errorf("created action has no server id: %w", ErrInvalidResponse)
	}

	return created, nil
}

func (h *httpActionClient) UpdateAction(ctx context.Context, id int64, payload models.UpdateActionRequest) (models.Action, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Patch(fmt.Sprintf("/api/actions/%d", id))
	if err != nil {
		return models.Action{}, fmt.Errorf("update action request: %w: %w", ErrRemote, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Action{}, err
	}

	var updated models.Action
	if err = json.Unmarshal(resp.Body(), &updated); err != nil {
		return models.Action{}, fmt.Errorf("decode updated action: %w: %w", ErrInvalidResponse, err)
	}
	if updated.ID <= 0 {
		return models.Action{}, fmt.Errorf("updated action has no server id: %w", ErrInvalidResponse)
	}

	return updated, nil
}

func (h *httpActionClient) DeleteAction(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).Delete(fmt.Sprintf("/api/actions/%d", id))
	if err != nil {
		return fmt.Errorf("delete action request: %w: %w", ErrRemote, err)
	}

	// Idempotent: the target may have been removed already, or may carry a
	// temporary id the server never knew.
	if resp.StatusCode() == http.StatusNotFound {
		return nil
	}

	return mapHTTPError(resp)
}

func (h *httpActionClient) RecordProgress(ctx context.Context, actionID int64, count int) (models.ProgressResult, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.RecordProgressRequest{ActionID: actionID, Count: count}).
		Post("/api/progress")
	if err != nil {
		return models.ProgressResult{}, fmt.Errorf("record progress request: %w: %w", ErrRemote, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ProgressResult{}, err
	}

	var result models.ProgressResult
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.ProgressResult{}, fmt.Errorf("decode progress response: %w: %w", ErrInvalidResponse, err)
	}

	return result, nil
}

func (h *httpActionClient) DecrementProgress(ctx context.Context, actionID int64) (models.ProgressResult, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.DecrementProgressRequest{ActionID: actionID}).
		Post("/api/progress/decrement")
	if err != nil {
		return models.ProgressResult{}, fmt.Errorf("decrement progress request: %w: %w", ErrRemote, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ProgressResult{}, err
	}

	var result models.ProgressResult
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.ProgressResult{}, fmt.Errorf("decode decrement response: %w: %w", ErrInvalidResponse, err)
	}

	return result, nil
}

func (h *httpActionClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// mapHTTPError translates a non-2xx response into one of the package's
// sentinel errors. Domain-rule rejections arrive as 400s whose body carries a
// stable error string; everything else degrades to a wrapped [ErrRemote].
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	var er models.ErrorResponse
	if jsonErr := json.Unmarshal(resp.Body(), &er); jsonErr == nil && er.Error != "" {
		body = er.Error
	}
	bodyLower := strings.ToLower(body)

	switch {
	case resp.StatusCode() == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode() == http.StatusNotFound:
		return ErrActionNotFound
	case strings.Contains(bodyLower, "completed action"):
		return ErrActionCompleted
	case strings.Contains(bodyLower, "maximum progress"):
		return ErrAlreadyAtMaximum
	case strings.Contains(bodyLower, "minimum progress"):
		return ErrAlreadyAtMinimum
	}

	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("%w: http %d: %s", ErrRemote, resp.StatusCode(), body)
}

func parseBearerToken(value string) (string, error) {
	parts := strings.Split(strings.TrimSpace(value), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", fmt.Errorf("invalid authorization header")
	}
	return parts[1], nil
}
