package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nmorozs/quizadmin/internal/client/models"
	"github.com/nmorozs/quizadmin/internal/common"
	"github.com/nmorozs/quizadmin/internal/logging"
)

// RESTClient talks HTTP/JSON to the platform backend. It attaches the bearer
// token from its TokenSource and a fresh X-Request-Id to every call, and
// maps response statuses onto the shared error set. It never retries.
type RESTClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	logger  logging.Logger
}

// NewRESTClient builds a RESTClient for the given base URL, e.g.
// "http://127.0.0.1:3000/api". The timeout bounds each whole request.
func NewRESTClient(baseURL string, timeout time.Duration, tokens TokenSource, logger logging.Logger) *RESTClient {
	return &RESTClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		logger:  logger,
	}
}

// do executes one request and returns the raw response body. Transport
// failures and unexpected statuses come back as common.ErrUnavailable;
// 401/403 as common.ErrUnauthorized; 404 as common.ErrNotFound.
func (c *RESTClient) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error(ctx, "backend request failed",
			"method", method, "path", path, "error", err.Error())
		return nil, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", common.ErrUnavailable, err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return data, nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, common.ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return nil, common.ErrNotFound
	default:
		c.logger.Error(ctx, "backend returned error status",
			"method", method, "path", path, "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: unexpected status %d", common.ErrUnavailable, resp.StatusCode)
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (c *RESTClient) Login(ctx context.Context, email, password string) (string, error) {
	body, err := c.do(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password})
	if err != nil {
		return "", err
	}
	resp, err := decodeObject[loginResponse](body)
	if err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", common.ErrEmptyResponse
	}
	return resp.Token, nil
}

func (c *RESTClient) GetUser(ctx context.Context) (*models.User, error) {
	body, err := c.do(ctx, http.MethodGet, "/auth/get-user", nil)
	if err != nil {
		return nil, err
	}
	return decodeObject[models.User](body)
}

type calculateLevelRequest struct {
	XP int `json:"xp"`
}

func (c *RESTClient) CalculateLevel(ctx context.Context, xp int) (*models.LevelInfo, error) {
	body, err := c.do(ctx, http.MethodPost, "/admin/level-system/calculate", calculateLevelRequest{XP: xp})
	if err != nil {
		return nil, err
	}
	return decodeObject[models.LevelInfo](body)
}

func (c *RESTClient) GetProgression(ctx context.Context, userID string) (*models.Progression, error) {
	body, err := c.do(ctx, http.MethodGet, "/admin/users/"+url.PathEscape(userID)+"/progression", nil)
	if err != nil {
		return nil, err
	}
	return decodeObject[models.Progression](body)
}

func (c *RESTClient) UpdateProgression(ctx context.Context, userID string, upd models.ProgressionUpdate) (*models.Progression, error) {
	body, err := c.do(ctx, http.MethodPut, "/admin/users/"+url.PathEscape(userID)+"/progression", upd)
	if err != nil {
		return nil, err
	}
	return decodeObject[models.Progression](body)
}

func (c *RESTClient) ListGameModeConfigs(ctx context.Context) ([]models.GameModeConfig, error) {
	body, err := c.do(ctx, http.MethodGet, "/admin/game-modes/config", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.GameModeConfig](body)
}

func (c *RESTClient) UpdateGameModeConfig(ctx context.Context, mode string, upd models.GameModeConfigUpdate) (*models.GameModeConfig, error) {
	body, err := c.do(ctx, http.MethodPut, "/admin/game-modes/"+url.PathEscape(mode)+"/config", upd)
	if err != nil {
		return nil, err
	}
	return decodeObject[models.GameModeConfig](body)
}

type bulkUpdateRequest struct {
	Configurations []models.GameModeConfig `json:"configurations"`
}

func (c *RESTClient) BulkUpdateGameModeConfigs(ctx context.Context, configs []models.GameModeConfig) error {
	_, err := c.do(ctx, http.MethodPut, "/admin/game-modes/config/bulk", bulkUpdateRequest{Configurations: configs})
	return err
}

func (c *RESTClient) ResetGameModeConfigs(ctx context.Context) ([]models.GameModeConfig, error) {
	body, err := c.do(ctx, http.MethodPost, "/admin/game-modes/config", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.GameModeConfig](body)
}

func (c *RESTClient) ListUsers(ctx context.Context) ([]models.User, error) {
	body, err := c.do(ctx, http.MethodGet, "/admin/users", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.User](body)
}

var _ Client = (*RESTClient)(nil)
