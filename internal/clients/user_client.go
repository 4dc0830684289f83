package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/JoseSC30/superburguer-miniapp/internal/apperrors"
	"github.com/JoseSC30/superburguer-miniapp/internal/config"
	"github.com/JoseSC30/superburguer-miniapp/internal/models"
)

// UserClient resolves platform identities to internal user records.
type UserClient interface {
	GetUserByTelegramID(ctx context.Context, telegramID string) (*models.User, error)
}

// HTTPUserClient implements UserClient over HTTP.
type HTTPUserClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewHTTPUserClient(cfg config.ServiceConfig, logger *slog.Logger) *HTTPUserClient {
	return &HTTPUserClient{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// GetUserByTelegramID resolves a Telegram id to an internal user. The user
// service answers with either a single object or a one-element array
// depending on its version, so both shapes are accepted.
func (c *HTTPUserClient) GetUserByTelegramID(ctx context.Context, telegramID string) (*models.User, error) {
	url := fmt.Sprintf("%s/users/telegram/%s", c.baseURL, telegramID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("failed to fetch user", "telegram_id", telegramID, "error", err)
		return nil, apperrors.NewUpstreamError("user-service", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, apperrors.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewUpstreamError("user-service",
			fmt.Errorf("user service returned status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewUpstreamError("user-service", err)
	}

	user, err := decodeUser(body)
	if err != nil {
		return nil, apperrors.NewUpstreamError("user-service", err)
	}
	if user == nil {
		return nil, apperrors.ErrNotFound
	}

	c.logger.Debug("user resolved", "telegram_id", telegramID, "user_id", user.ID)
	return user, nil
}

func decodeUser(body []byte) (*models.User, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var users []models.User
		if err := json.Unmarshal(trimmed, &users); err != nil {
			return nil, err
		}
		if len(users) == 0 {
			return nil, nil
		}
		return &users[0], nil
	}

	var user models.User
	if err := json.Unmarshal(trimmed, &user); err != nil {
		return nil, err
	}
	if user.ID == "" {
		return nil, nil
	}
	return &user, nil
}
