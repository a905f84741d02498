package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics exposes counters/histograms for buyer lead flows. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	mutations         *prometheus.CounterVec
	validationErrors  *prometheus.CounterVec
	auditEntries      *prometheus.CounterVec
	importRows        *prometheus.CounterVec
	httpLatency       *prometheus.HistogramVec
	rateLimitRejected prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "buyer_leads",
			Subsystem: "buyers",
			Name:      "mutations_total",
			Help:      "Total buyer create/update/delete attempts",
		}, []string{"action", "status"}),
		validationErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "buyer_leads",
			Subsystem: "buyers",
			Name:      "validation_errors_total",
			Help:      "Validation failures by top-level field",
		}, []string{"field"}),
		auditEntries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "buyer_leads",
			Subsystem: "history",
			Name:      "entries_total",
			Help:      "Audit entries written",
		}, []string{"action"}),
		importRows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "buyer_leads",
			Subsystem: "import",
			Name:      "rows_total",
			Help:      "Imported spreadsheet rows by outcome",
		}, []string{"valid"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "buyer_leads",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Latency of HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "code"}),
		rateLimitRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "buyer_leads",
			Subsystem: "http",
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the rate limiter",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.mutations, m.validationErrors, m.auditEntries, m.importRows, m.httpLatency, m.rateLimitRejected)
	return m
}

func (m *Metrics) ObserveMutation(action, status string) {
	if m == nil {
		return
	}
	m.mutations.WithLabelValues(action, status).Inc()
}

func (m *Metrics) ObserveValidationError(field string) {
	if m == nil {
		return
	}
	m.validationErrors.WithLabelValues(field).Inc()
}

func (m *Metrics) ObserveAudit(action string, entries int) {
	if m == nil || entries <= 0 {
		return
	}
	m.auditEntries.WithLabelValues(action).Add(float64(entries))
}

func (m *Metrics) ObserveImportRow(valid bool) {
	if m == nil {
		return
	}
	m.importRows.WithLabelValues(strconv.FormatBool(valid)).Inc()
}

func (m *Metrics) ObserveRequest(method, route string, code int, seconds float64) {
	if m == nil {
		return
	}
	m.httpLatency.WithLabelValues(method, route, strconv.Itoa(code)).Observe(seconds)
}

func (m *Metrics) ObserveRateLimited() {
	if m == nil {
		return
	}
	m.rateLimitRejected.Inc()
}

// Handler serves the registry the metrics were registered with.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
