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
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	PredictionsGenerated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "predictions_generated_total",
			Help: "Number of prediction rows written, by prediction type",
		},
		[]string{"type"},
	)

	AtRiskAlerts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "at_risk_alerts_total",
			Help: "Number of at-risk alerts created, by severity",
		},
		[]string{"severity"},
	)

	PredictionBatchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "prediction_batch_duration_seconds",
			Help:    "Duration of a prediction generation run",
			Buckets: []float64{0.05, 0.25, 1, 5, 15, 60},
		},
		[]string{"result"},
	)

	AlertWSConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "alert_ws_connections",
			Help: "Number of staff websocket connections receiving alerts",
		},
	)
)

var registerOnce sync.Once

func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			RequestCounter,
			RequestDuration,
			PredictionsGenerated,
			AtRiskAlerts,
			PredictionBatchDuration,
			AlertWSConnections,
		)
	})
}

// ObserveBatch 记录一次批量预测耗时
func ObserveBatch(start time.Time, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	PredictionBatchDuration.WithLabelValues(result).Observe(time.Since(start).Seconds())
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
