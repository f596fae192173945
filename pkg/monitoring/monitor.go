package monitoring

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2},
		},
		[]string{"method", "endpoint"},
	)

	StateSaveFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "state_save_failures_total",
			Help: "Number of failed state writes",
		},
	)

	StateLoadFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "state_load_failures_total",
			Help: "Number of state reads that fell back to defaults",
		},
	)

	DayCompletions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "journey_day_completions_total",
			Help: "Lesson days completed",
		},
		[]string{"module"},
	)

	WizardSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "wizard_sessions_open",
			Help: "Open day wizard sessions",
		},
	)

	NotificationsSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_sent_total",
			Help: "Notifications delivered per channel",
		},
		[]string{"channel", "result"},
	)

	PushClients = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "notification_push_clients",
			Help: "Connected websocket notification clients",
		},
	)
)

var initOnce sync.Once

func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(
			RequestCounter,
			RequestDuration,
			StateSaveFailures,
			StateLoadFailures,
			DayCompletions,
			WizardSessions,
			NotificationsSent,
			PushClients,
		)
	})
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
