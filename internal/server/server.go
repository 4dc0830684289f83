package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JoseSC30/superburguer-miniapp/internal/config"
	"github.com/JoseSC30/superburguer-miniapp/internal/handlers"
	"github.com/JoseSC30/superburguer-miniapp/internal/metrics"
)

// Server wraps the gin router in an http.Server with graceful shutdown.
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
}

func New(h *handlers.Handlers, m *metrics.ServerMetrics, cfg *config.Config) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestID())
	if m != nil {
		router.Use(Metrics(m))
	}

	setupRoutes(router, h)

	return &Server{
		router: router,
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
			Handler:      router,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
	}
}

func setupRoutes(router *gin.Engine, h *handlers.Handlers) {
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	router.POST("/orders", h.CreateOrder)
	router.GET("/orders", h.ListOrders)
	router.GET("/orders/:id", h.GetOrder)
	router.PATCH("/orders/:id/status", h.UpdateOrderStatus)

	router.GET("/products", h.GetProducts)
	router.GET("/users/telegram/:telegramId", h.GetUserByTelegramID)
}

func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Router exposes the underlying engine for handler tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
