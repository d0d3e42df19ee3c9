// Package metrics exposes Prometheus metrics for ledger operations.
package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/bahtledger/backend/pkg/models"
	"github.com/prometheus/client_golang/prometheus"
)

// Result labels
const (
	ResultOK       = "ok"
	ResultInvalid  = "invalid"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

var (
	// Registry holds all ledger metrics. It is separate from the default
	// registry so that tests can create routers repeatedly.
	Registry = prometheus.NewRegistry()

	operations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ledger",
		Name:      "operations_total",
		Help:      "Number of ledger operations by operation and result.",
	}, []string{"operation", "result"})

	accountsImported = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "ledger",
		Name:      "accounts_imported_total",
		Help:      "Number of accounts inserted by bulk imports.",
	})

	requestCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ledger",
		Name:      "http_requests_total",
		Help:      "How many HTTP requests processed, partitioned by status code, HTTP method and route.",
	}, []string{"code", "method", "route"})

	requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ledger",
		Name:      "http_request_duration_seconds",
		Help:      "The HTTP request latencies in seconds.",
	}, []string{"code", "method", "route"})
)

func init() {
	Registry.MustRegister(operations, accountsImported, requestCount, requestDuration)
}

// Observe records the outcome of a ledger operation.
func Observe(operation string, err error) {
	operations.WithLabelValues(operation, result(err)).Inc()
}

// AccountsImported adds n to the number of imported accounts.
func AccountsImported(n int) {
	accountsImported.Add(float64(n))
}

// ObserveRequest records a processed HTTP request.
//
// route must be the route template, not the request path, to keep
// the cardinality of the labels low.
func ObserveRequest(code int, method, route string, elapsed time.Duration) {
	status := strconv.Itoa(code)
	requestDuration.WithLabelValues(status, method, route).Observe(elapsed.Seconds())
	requestCount.WithLabelValues(status, method, route).Inc()
}

func result(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, models.ErrResourceNotFound):
		return ResultNotFound
	case errors.Is(err, models.ErrValidation), errors.Is(err, models.ErrConstraint):
		return ResultInvalid
	default:
		return ResultError
	}
}
