package netx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPProber_IsOnline(t *testing.T) {
	t.Run("healthy endpoint", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		prober := NewHTTPProber(server.URL + "/healthz")
		assert.True(t, prober.IsOnline(context.Background()))
	})

	t.Run("server error means offline", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		prober := NewHTTPProber(server.URL + "/healthz")
		assert.False(t, prober.IsOnline(context.Background()))
	})

	t.Run("unreachable server means offline", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		server.Close()

		prober := NewHTTPProber(server.URL + "/healthz")
		assert.False(t, prober.IsOnline(context.Background()))
	})
}
