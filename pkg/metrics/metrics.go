package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	captchaGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "captcha_generated_total",
			Help: "Total captchas rendered by colour mode and output format",
		},
		[]string{"mode", "format"},
	)

	captchaGenerateDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "captcha_generate_duration_seconds",
			Help:    "Time spent rendering and encoding one captcha",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
		},
	)

	captchaVerify = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "captcha_verify_total",
			Help: "Verification attempts by outcome",
		},
		[]string{"outcome"},
	)

	httpReqTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "captcha_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"path", "method", "status"},
	)

	httpPanics = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "captcha_http_panics_total",
			Help: "Handler panics caught by the recovery middleware",
		},
		[]string{"path"},
	)
)

// ObserveGenerate records one rendered captcha.
func ObserveGenerate(dark bool, format string, started time.Time) {
	mode := "light"
	if dark {
		mode = "dark"
	}
	captchaGenerated.WithLabelValues(mode, format).Inc()
	captchaGenerateDuration.Observe(time.Since(started).Seconds())
}

// ObserveVerify records a verification outcome ("valid", "invalid", "undecodable").
func ObserveVerify(outcome string) {
	captchaVerify.WithLabelValues(outcome).Inc()
}

// ObserveHTTP 记录 HTTP 请求计数，path 应为路由模板而非原始 URL
func ObserveHTTP(path, method string, status int) {
	if path == "" {
		path = "unmatched"
	}
	httpReqTotal.WithLabelValues(path, method, strconv.Itoa(status)).Inc()
}

// ObservePanic counts one recovered panic; path is the route template.
func ObservePanic(path string) {
	if path == "" {
		path = "unmatched"
	}
	httpPanics.WithLabelValues(path).Inc()
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
