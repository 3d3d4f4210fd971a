package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func Test_originAllowed(t *testing.T) {
	allowed := []string{
		"http://localhost:3000",
		"http://localhost:8787",
		"capacitor://localhost",
		"https://gokkan-keeper.pages.dev",
		"https://preview-abc123.gokkan-keeper.pages.dev",
		"https://gokkan-keeper.yetimates.com",
	}
	for _, origin := range allowed {
		require.True(t, originAllowed(origin), origin)
	}

	denied := []string{
		"https://localhost:3000",
		"http://evil.com",
		"https://gokkan-keeper.yetimates.com.evil.com",
		"https://pages.dev.evil.com",
		"http://gokkan-keeper.yetimates.com",
	}
	for _, origin := range denied {
		require.False(t, originAllowed(origin), origin)
	}
}

func Test_authMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	serve := func(handler ApiHandler, secret string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/status", nil)
		if secret != "" {
			req.Header.Set(apiSecretHeader, secret)
		}
		w := httptest.NewRecorder()
		handler.InitializeRouterEngine().ServeHTTP(w, req)
		return w
	}

	t.Run("missing server secret is a config fault", func(t *testing.T) {
		w := serve(ApiHandler{}, "anything")
		require.Equal(t, 500, w.Code)
	})

	t.Run("missing header is unauthorized", func(t *testing.T) {
		w := serve(ApiHandler{ApiSecret: "s3cret"}, "")
		require.Equal(t, 401, w.Code)
		require.Contains(t, w.Body.String(), "Unauthorized")
	})

	t.Run("wrong secret is unauthorized", func(t *testing.T) {
		w := serve(ApiHandler{ApiSecret: "s3cret"}, "wrong")
		require.Equal(t, 401, w.Code)
	})
}

func Test_healthRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	ApiHandler{}.InitializeRouterEngine().ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	require.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
