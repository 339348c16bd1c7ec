package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NestAway/go-utm/internal/adapters/http/dto"
	"github.com/NestAway/go-utm/internal/platform/logging"
)

// withLogger places a JSON logger writing to buf in the request context.
func withLogger(buf *bytes.Buffer) gin.HandlerFunc {
	logger := slog.New(slog.NewJSONHandler(buf, nil))

	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(logging.WithContext(c.Request.Context(), logger))
		c.Next()
	}
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		incoming string
	}{
		{name: "generated"},
		{name: "propagated", incoming: "req-123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var fromGin, fromCtx string

			router := gin.New()
			router.Use(RequestID())
			router.GET("/", func(c *gin.Context) {
				fromGin = GetRequestID(c)
				fromCtx = RequestIDFromContext(c.Request.Context())
				c.Status(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(HeaderRequestID, tt.incoming)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			id := w.Header().Get(HeaderRequestID)
			require.NotEmpty(t, id)
			assert.Equal(t, id, fromGin)
			assert.Equal(t, id, fromCtx)

			if tt.incoming != "" {
				assert.Equal(t, tt.incoming, id)
			} else {
				_, err := uuid.Parse(id)
				assert.NoError(t, err)
			}
		})
	}
}

func TestRequestIDFromContext_Nil(t *testing.T) {
	t.Parallel()

	assert.Empty(t, RequestIDFromContext(nil)) //nolint:staticcheck // Testing nil guard intentionally
}

func TestLogging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	router := gin.New()
	router.Use(withLogger(&buf), Logging(), Attribution(testOptions()))
	router.GET("/landing", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/landing?utm_source=google&utm_medium=cpc", nil))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "request completed", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "/landing", entry["path"])
	assert.EqualValues(t, http.StatusOK, entry["status"])
	assert.Equal(t, "google", entry["utm_source"])
	assert.Equal(t, "cpc", entry["utm_medium"])
	assert.Equal(t, "Direct", entry["utm_from"])
}

func TestLogging_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		want   string
	}{
		{http.StatusOK, "INFO"},
		{http.StatusNotFound, "WARN"},
		{http.StatusBadGateway, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			router := gin.New()
			router.Use(withLogger(&buf), Logging())
			router.GET("/x", func(c *gin.Context) {
				c.Status(tt.status)
			})

			router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.want, entry["level"])
			assert.NotContains(t, entry, "utm_source")
		})
	}
}

func TestLogging_SkipsHealthPaths(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	router := gin.New()
	router.Use(withLogger(&buf), Logging())
	router.GET("/-/live", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/-/live", nil))

	assert.Zero(t, buf.Len())
}

func TestRecovery(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	router := gin.New()
	router.Use(withLogger(&buf), Recovery())
	router.GET("/panic", func(*gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrorCodeInternal, resp.Error.Code)
	assert.NotContains(t, w.Body.String(), "boom")

	assert.Contains(t, buf.String(), "panic recovered")
	assert.Contains(t, buf.String(), "boom")
}

func TestRecovery_AfterWrite(t *testing.T) {
	t.Parallel()

	router := gin.New()
	router.Use(Recovery())
	router.GET("/partial", func(c *gin.Context) {
		c.String(http.StatusAccepted, "partial")
		panic("late")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/partial", nil))

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "partial", w.Body.String())
}
