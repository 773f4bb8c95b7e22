package metrics

import (
	"net/http"
	"time"

	"github.com/IT-Nick/burncheckbot/internal/domain/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "burncheck"

// Metrics счётчики бота в собственном реестре
type Metrics struct {
	registry *prometheus.Registry

	testsStarted      prometheus.Counter
	selections        *prometheus.CounterVec
	testsCompleted    *prometheus.CounterVec
	certificates      *prometheus.CounterVec
	membershipLookups *prometheus.CounterVec
	ledgerWriteErrors prometheus.Counter
	sessionsSwept     prometheus.Counter
	updatesHandled    *prometheus.CounterVec
	updateDuration    *prometheus.HistogramVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		testsStarted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tests_started_total",
			Help:      "Number of /start and restart actions",
		}),
		selections: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "test_selections_total",
			Help:      "Test scope selections",
		}, []string{"scope"}),
		testsCompleted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tests_completed_total",
			Help:      "Completed tests by overall level",
		}, []string{"level"}),
		certificates: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "certificates_total",
			Help:      "Certificate renders by status",
		}, []string{"status"}),
		membershipLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "membership_checks_total",
			Help:      "Channel subscription checks by outcome",
		}, []string{"outcome"}),
		ledgerWriteErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stats_write_errors_total",
			Help:      "Failed writes of the statistics file",
		}),
		sessionsSwept: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_expired_total",
			Help:      "Abandoned sessions removed by the sweeper",
		}),
		updatesHandled: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "updates_total",
			Help:      "Telegram updates by kind and status",
		}, []string{"kind", "status"}),
		updateDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "update_duration_seconds",
			Help:      "Time spent handling a Telegram update",
			Buckets:   prometheus.DefBuckets,
		}, []string{"kind"}),
	}
}

// Registry реестр для тестов и дополнительных коллекторов
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler отдаёт метрики в формате Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) TestStarted() {
	m.testsStarted.Inc()
}

func (m *Metrics) SelectionMade(fullTest bool) {
	scope := "phase"
	if fullTest {
		scope = "full"
	}
	m.selections.WithLabelValues(scope).Inc()
}

func (m *Metrics) TestCompleted(level model.Level) {
	m.testsCompleted.WithLabelValues(level.Key()).Inc()
}

func (m *Metrics) CertificateRendered(err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.certificates.WithLabelValues(status).Inc()
}

func (m *Metrics) MembershipChecked(outcome string) {
	m.membershipLookups.WithLabelValues(outcome).Inc()
}

// LedgerWriteFailed подходит как hook для stats.WithPersistErrorHook
func (m *Metrics) LedgerWriteFailed(error) {
	m.ledgerWriteErrors.Inc()
}

func (m *Metrics) SessionsSwept(n int) {
	m.sessionsSwept.Add(float64(n))
}

// ObserveUpdate учитывает одно обработанное обновление
func (m *Metrics) ObserveUpdate(kind string, started time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.updatesHandled.WithLabelValues(kind, status).Inc()
	m.updateDuration.WithLabelValues(kind).Observe(time.Since(started).Seconds())
}
