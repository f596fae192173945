package security

import (
	"mindset_backend/internal/config"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestCORSUsesConfiguredHeaders(t *testing.T) {
	r := gin.New()
	r.Use(CORS(config.CORSConfig{
		AllowedOrigins: []string{"http://app.local"},
		AllowedHeaders: []string{"If-Match", "Authorization"},
		ExposedHeaders: []string{"ETag"},
		MaxAgeSeconds:  60,
	}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "http://app.local")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "If-Match, Authorization", w.Header().Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "ETag", w.Header().Get("Access-Control-Expose-Headers"))
	assert.Equal(t, "60", w.Header().Get("Access-Control-Max-Age"))
}

func TestRateLimiter(t *testing.T) {
	assert.Nil(t, NewRateLimiter(config.RateLimitConfig{}))

	l := NewRateLimiter(config.RateLimitConfig{MaxRequests: 2, WindowMinutes: 1})
	require.NotNil(t, l)
	now := time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC)
	l.Now = func() time.Time { return now }

	assert.True(t, l.Allow("a"))
	assert.True(t, l.Allow("a"))
	assert.False(t, l.Allow("a"))
	assert.True(t, l.Allow("b"))

	// 半个窗口补充一个令牌
	now = now.Add(30 * time.Second)
	assert.True(t, l.Allow("a"))

	assert.Equal(t, 0, l.Sweep())
	now = now.Add(4 * time.Minute)
	assert.Equal(t, 2, l.Sweep())
}

func TestRateLimiterMiddleware(t *testing.T) {
	l := NewRateLimiter(config.RateLimitConfig{MaxRequests: 1, WindowMinutes: 1})
	r := gin.New()
	r.Use(l.Middleware())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		codes = append(codes, w.Code)
		if w.Code == http.StatusTooManyRequests {
			assert.Equal(t, "60", w.Header().Get("Retry-After"))
		}
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests}, codes)
}
