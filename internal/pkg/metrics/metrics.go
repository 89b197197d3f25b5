package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "perumahan",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests processed",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "perumahan",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	}, []string{"method", "path"})

	// GeoJSONFeatures - размер последней отданной FeatureCollection
	GeoJSONFeatures = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "perumahan",
		Subsystem: "geojson",
		Name:      "features",
		Help:      "Number of features in the last served FeatureCollection",
	})

	// ListingWrites - операции записи через админку
	ListingWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "perumahan",
		Subsystem: "admin",
		Name:      "writes_total",
		Help:      "Total listing writes through the admin API",
	}, []string{"operation"})

	EventPublishErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "perumahan",
		Subsystem: "events",
		Name:      "publish_errors_total",
		Help:      "Listing events that could not be published",
	})
)

// Middleware records request metrics.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		path := c.Route().Path
		if path == "" {
			path = c.Path()
		}
		method := c.Method()

		httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(c.Response().StatusCode())).Inc()
		httpRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())

		return err
	}
}

// Handler returns a Fiber handler serving Prometheus /metrics endpoint.
func Handler() fiber.Handler {
	handler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
	return func(c *fiber.Ctx) error {
		handler(c.Context())
		return nil
	}
}
