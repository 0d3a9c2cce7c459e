package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shueibka/Daily-Islamic-Wisdom/internal/apperr"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "config", err: apperr.NewConfigError("GROQ_API_KEY"), code: http.StatusServiceUnavailable},
		{name: "status", err: apperr.NewStatusError("hadith", 500, nil), code: http.StatusBadGateway},
		{name: "transport", err: apperr.NewTransportError("hadith", errors.New("dial")), code: http.StatusBadGateway},
		{name: "parse", err: apperr.NewParseError("hadith", errors.New("shape")), code: http.StatusBadGateway},
		{name: "other", err: errors.New("boom"), code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, FromError("[test]", tt.err).Code)
		})
	}
}

func TestMountGroupResolvesEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	MountGroup(r, GroupConfig{Prefix: "/api"}, ModuleFunc(func(c *Controller) {
		c.GET("/ok", func(ctx *gin.Context) (any, *APIError) {
			return gin.H{"hello": "world"}, nil
		})
		c.POST("/fail", func(ctx *gin.Context) (any, *APIError) {
			return nil, BadRequest("nope")
		})
	}))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/ok", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"hello":"world"}`, w.Body.String())

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodPost, "/api/fail", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "nope", body["error"])
}
