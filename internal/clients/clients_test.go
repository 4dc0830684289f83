package clients

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/JoseSC30/superburguer-miniapp/internal/apperrors"
	"github.com/JoseSC30/superburguer-miniapp/internal/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func serviceConfig(url string) config.ServiceConfig {
	return config.ServiceConfig{BaseURL: url, Timeout: 2 * time.Second}
}

func TestGetProducts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":"p1","name":"Classic","price":25,"active":true},
			{"id":"p2","name":"Veggie","price":30,"active":false}
		]`))
	}))
	defer srv.Close()

	c := NewHTTPCatalogClient(serviceConfig(srv.URL), testLogger())
	products, err := c.GetProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	require.Equal(t, "Classic", products[0].Name)
	require.False(t, products[1].Active)
}

func TestGetProductsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewHTTPCatalogClient(serviceConfig(srv.URL), testLogger())
	_, err := c.GetProducts(context.Background())

	var upstream *apperrors.UpstreamError
	require.True(t, errors.As(err, &upstream))
	require.Equal(t, "catalog", upstream.Service)
}

func TestGetUserByTelegramIDObjectShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/telegram/5869516446", r.URL.Path)
		w.Write([]byte(`{"id":"u-1","telegramId":"5869516446","name":"Jose"}`))
	}))
	defer srv.Close()

	c := NewHTTPUserClient(serviceConfig(srv.URL), testLogger())
	user, err := c.GetUserByTelegramID(context.Background(), "5869516446")
	require.NoError(t, err)
	require.Equal(t, "u-1", user.ID)
}

func TestGetUserByTelegramIDArrayShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"u-2","telegramId":"99"}]`))
	}))
	defer srv.Close()

	c := NewHTTPUserClient(serviceConfig(srv.URL), testLogger())
	user, err := c.GetUserByTelegramID(context.Background(), "99")
	require.NoError(t, err)
	require.Equal(t, "u-2", user.ID)
}

func TestGetUserByTelegramIDNotFound(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"status 404", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}},
		{"empty array", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[]`))
		}},
		{"empty object", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			c := NewHTTPUserClient(serviceConfig(srv.URL), testLogger())
			_, err := c.GetUserByTelegramID(context.Background(), "1")
			require.True(t, errors.Is(err, apperrors.ErrNotFound))
		})
	}
}
