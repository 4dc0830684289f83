package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JoseSC30/superburguer-miniapp/internal/apperrors"
	"github.com/JoseSC30/superburguer-miniapp/internal/clients"
	"github.com/JoseSC30/superburguer-miniapp/internal/config"
	"github.com/JoseSC30/superburguer-miniapp/internal/service"
)

// Handlers holds all HTTP handlers for the service.
type Handlers struct {
	orderService   *service.OrderService
	catalogService *service.CatalogService
	userClient     clients.UserClient
	config         *config.Config
	logger         *slog.Logger
}

// NewHandlers creates a new handlers instance.
func NewHandlers(
	orderService *service.OrderService,
	catalogService *service.CatalogService,
	userClient clients.UserClient,
	cfg *config.Config,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		orderService:   orderService,
		catalogService: catalogService,
		userClient:     userClient,
		config:         cfg,
		logger:         logger,
	}
}

func handleError(c *gin.Context, err error) {
	if errors.Is(err, apperrors.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	var validation *apperrors.ValidationError
	if errors.As(err, &validation) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": validation.Message,
			"field": validation.Field,
		})
		return
	}

	var upstream *apperrors.UpstreamError
	if errors.As(err, &upstream) {
		c.JSON(http.StatusBadGateway, gin.H{"error": "upstream service unavailable"})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
