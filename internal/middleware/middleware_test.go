package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() { gin.SetMode(gin.TestMode) }

func TestRequestID_GeneraYReutiliza(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(RequestIDKey)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	_, err := uuid.Parse(w.Body.String())
	require.NoError(t, err)
	assert.Equal(t, w.Body.String(), w.Header().Get("X-Request-ID"))

	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", id)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, id, w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "no-es-uuid")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.NotEqual(t, "no-es-uuid", w.Body.String())
}

func TestRecovery_Responde500(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), Recovery())
	r.GET("/", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "boom")
}

func TestErrorHandler_SoloSiNoHayRespuesta(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/silencioso", func(c *gin.Context) { _ = c.Error(assert.AnError) })
	r.GET("/escrito", func(c *gin.Context) {
		_ = c.Error(assert.AnError)
		c.String(http.StatusTeapot, "ya respondido")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/silencioso", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/escrito", nil))
	assert.Equal(t, http.StatusTeapot, w.Code)
}

func TestLimitador_VentanaPorIP(t *testing.T) {
	l := newLimitador(2, time.Minute)
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return base }

	ok, _ := l.permitir("10.0.0.1")
	assert.True(t, ok)
	ok, _ = l.permitir("10.0.0.1")
	assert.True(t, ok)
	ok, espera := l.permitir("10.0.0.1")
	assert.False(t, ok)
	assert.Equal(t, time.Minute, espera)

	ok, _ = l.permitir("10.0.0.2")
	assert.True(t, ok, "other IPs have their own window")

	l.now = func() time.Time { return base.Add(61 * time.Second) }
	ok, _ = l.permitir("10.0.0.1")
	assert.True(t, ok, "window reset")
}

func TestRateLimiter_Responde429(t *testing.T) {
	r := gin.New()
	r.Use(RateLimiter(1, time.Minute))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}
