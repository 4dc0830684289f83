package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/JoseSC30/superburguer-miniapp/internal/apperrors"
	"github.com/JoseSC30/superburguer-miniapp/internal/config"
	"github.com/JoseSC30/superburguer-miniapp/internal/models"
)

// CatalogClient fetches the product/menu catalog from its owning service.
type CatalogClient interface {
	GetProducts(ctx context.Context) ([]models.Product, error)
}

// HTTPCatalogClient implements CatalogClient over HTTP.
type HTTPCatalogClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewHTTPCatalogClient(cfg config.ServiceConfig, logger *slog.Logger) *HTTPCatalogClient {
	return &HTTPCatalogClient{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// GetProducts retrieves the full catalog. Filtering inactive products is the
// caller's concern; the catalog service owns the data.
func (c *HTTPCatalogClient) GetProducts(ctx context.Context) ([]models.Product, error) {
	url := fmt.Sprintf("%s/products", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("failed to fetch products", "error", err)
		return nil, apperrors.NewUpstreamError("catalog", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewUpstreamError("catalog",
			fmt.Errorf("catalog service returned status %d", resp.StatusCode))
	}

	var products []models.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, apperrors.NewUpstreamError("catalog", err)
	}

	c.logger.Debug("products fetched", "count", len(products))
	return products, nil
}

func setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
}
