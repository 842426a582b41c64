package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager owns the storefront's Prometheus registry and collectors.
type Manager struct {
	Registry *prometheus.Registry

	HTTPRequestLatency *prometheus.HistogramVec
	HTTPErrorsTotal    *prometheus.CounterVec
	CatalogQueries     prometheus.Counter
	CatalogResults     prometheus.Histogram
	LeadsCreated       prometheus.Counter
	OrdersCreated      *prometheus.CounterVec
	TransfersCreated   prometheus.Counter
	MessagesReceived   prometheus.Counter
	ListingsImported   prometheus.Counter
}

func NewManager(namespace string) *Manager {
	registry := prometheus.NewRegistry()

	m := &Manager{
		Registry: registry,
		HTTPRequestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latency of HTTP requests by route and method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		HTTPErrorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_errors_total",
			Help:      "Total number of HTTP responses with status >= 400 by route and status.",
		}, []string{"route", "status"}),
		CatalogQueries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_queries_total",
			Help:      "Total number of catalog filter/sort evaluations.",
		}),
		CatalogResults: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "catalog_results",
			Help:      "Number of listings returned per catalog query.",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000},
		}),
		LeadsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "leads_created_total",
			Help:      "Total number of offers submitted.",
		}),
		OrdersCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_created_total",
			Help:      "Total number of orders created by source.",
		}, []string{"source"}),
		TransfersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transfer_requests_total",
			Help:      "Total number of transfer purchase requests submitted.",
		}),
		MessagesReceived: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contact_messages_total",
			Help:      "Total number of contact form messages received.",
		}),
		ListingsImported: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "listings_imported_total",
			Help:      "Total number of listings added by bulk import.",
		}),
	}

	registry.MustRegister(
		m.HTTPRequestLatency,
		m.HTTPErrorsTotal,
		m.CatalogQueries,
		m.CatalogResults,
		m.LeadsCreated,
		m.OrdersCreated,
		m.TransfersCreated,
		m.MessagesReceived,
		m.ListingsImported,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// Server exposes /metrics on its own port.
type Server struct {
	srv *http.Server
	log logger.Logger
}

func NewServer(port string, m *Manager, log logger.Logger) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	return &Server{
		srv: &http.Server{
			Addr:              ":" + port,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		log: log,
	}
}

func (s *Server) Start() error {
	s.log.Infof("Prometheus metrics server listening on %s/metrics", s.srv.Addr)
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
