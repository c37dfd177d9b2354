package metrics

import (
	"io"
	"strconv"
	"time"

	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/store"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

const namespace = "storefront"

// Metricsはストアとクライアントのカウンタ
type Metrics struct {
	StoreActions *prometheus.CounterVec
	APIRequests  *prometheus.CounterVec
	APIDuration  *prometheus.HistogramVec
	Checkouts    *prometheus.CounterVec
}

// DI
func New(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		StoreActions: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "store_actions_total",
				Help:      "Dispatched actions by kind",
			},
			[]string{"kind", "changed"},
		),
		APIRequests: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "api_requests_total",
				Help:      "REST API requests by method and response status (0 = no response)",
			},
			[]string{"method", "status"},
		),
		APIDuration: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "api_request_duration_seconds",
				Help:      "REST API request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method"},
		),
		Checkouts: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "checkouts_total",
				Help:      "Checkout submissions by result",
			},
			[]string{"result"}, // success/error/invalid
		),
	}
}

// store.WithDispatchHook に渡す
func (m *Metrics) DispatchHook() store.DispatchHook {
	return func(a store.Action, changed bool) {
		m.StoreActions.WithLabelValues(string(a.Kind()), strconv.FormatBool(changed)).Inc()
	}
}

// api.WithRequestObserver に渡す
func (m *Metrics) RequestObserver() func(method string, status int, elapsed time.Duration) {
	return func(method string, status int, elapsed time.Duration) {
		m.APIRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
		m.APIDuration.WithLabelValues(method).Observe(elapsed.Seconds())
	}
}

func (m *Metrics) CheckoutResult(result string) {
	m.Checkouts.WithLabelValues(result).Inc()
}

// Writeは集めたメトリクスをテキスト形式で書き出す
func Write(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return errors.Wrap(err, "gather metrics")
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return errors.Wrap(err, "write metrics")
		}
	}
	return nil
}
