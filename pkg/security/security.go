package security

import (
	"context"
	"mindset_backend/internal/config"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// 客户端依赖 ETag 读取 revision，并通过 If-Match 提交前置条件
var (
	DefaultAllowedHeaders = []string{"Content-Type", "Content-Length", "Authorization", "Accept", "Origin", "Cache-Control", "X-Requested-With", "If-Match"}
	DefaultExposedHeaders = []string{"ETag", "Content-Disposition", "Retry-After"}
	DefaultAllowedMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
)

func orDefault(values, def []string) string {
	if len(values) == 0 {
		values = def
	}
	return strings.Join(values, ", ")
}

// CORS 仅允许白名单中的 Origin，预检请求直接返回 204
func CORS(cfg config.CORSConfig) gin.HandlerFunc {
	originSet := make(map[string]bool, len(cfg.AllowedOrigins))
	for _, o := range cfg.AllowedOrigins {
		originSet[o] = true
	}
	allowHeaders := orDefault(cfg.AllowedHeaders, DefaultAllowedHeaders)
	exposeHeaders := orDefault(cfg.ExposedHeaders, DefaultExposedHeaders)
	allowMethods := orDefault(cfg.AllowedMethods, DefaultAllowedMethods)
	maxAge := ""
	if cfg.MaxAgeSeconds > 0 {
		maxAge = strconv.Itoa(cfg.MaxAgeSeconds)
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		h := c.Writer.Header()

		if origin != "" && originSet[origin] {
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Set("Access-Control-Expose-Headers", exposeHeaders)
			h.Add("Vary", "Origin")
		}

		if c.Request.Method == http.MethodOptions {
			h.Set("Access-Control-Allow-Headers", allowHeaders)
			h.Set("Access-Control-Allow-Methods", allowMethods)
			if maxAge != "" {
				h.Set("Access-Control-Max-Age", maxAge)
			}
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// Secure 常用安全响应头
func Secure() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "no-referrer")
		if c.Request.TLS != nil {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}
		c.Next()
	}
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter 按客户端 IP 的令牌桶限流，过期条目由 Run 定期清理
type RateLimiter struct {
	Now func() time.Time

	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	window   time.Duration
	expiry   time.Duration
}

// NewRateLimiter 未配置时返回 nil
func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	window := time.Duration(cfg.WindowMinutes) * time.Minute
	if cfg.MaxRequests <= 0 || window <= 0 {
		return nil
	}
	expiry := window * 3
	if expiry < time.Minute {
		expiry = time.Minute
	}
	return &RateLimiter{
		Now:      time.Now,
		visitors: make(map[string]*visitor),
		limit:    rate.Every(window / time.Duration(cfg.MaxRequests)),
		burst:    cfg.MaxRequests,
		window:   window,
		expiry:   expiry,
	}
}

// Allow 消耗 key 的一个令牌
func (l *RateLimiter) Allow(key string) bool {
	now := l.Now()
	l.mu.Lock()
	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[key] = v
	}
	v.lastSeen = now
	l.mu.Unlock()
	return v.limiter.AllowN(now, 1)
}

// Sweep 删除长时间未活跃的条目，返回删除数量
func (l *RateLimiter) Sweep() int {
	now := l.Now()
	l.mu.Lock()
	defer l.mu.Unlock()
	removed := 0
	for key, v := range l.visitors {
		if now.Sub(v.lastSeen) > l.expiry {
			delete(l.visitors, key)
			removed++
		}
	}
	return removed
}

// Run 每分钟清理一次，ctx 取消时返回
func (l *RateLimiter) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.Sweep()
		case <-ctx.Done():
			return
		}
	}
}

func (l *RateLimiter) Middleware() gin.HandlerFunc {
	retryAfter := strconv.Itoa(int(l.window / time.Duration(l.burst) / time.Second))
	if retryAfter == "0" {
		retryAfter = "1"
	}
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			c.Header("Retry-After", retryAfter)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"code":    http.StatusTooManyRequests,
				"message": "Too many requests",
			})
			return
		}
		c.Next()
	}
}
