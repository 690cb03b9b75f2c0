package exporter

import (
	"context"
	stderrors "errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rileyhilliard/bwmon/internal/errors"
	"github.com/rileyhilliard/bwmon/internal/logger"
)

// MetricsPath is where the handler is mounted.
const MetricsPath = "/metrics"

// Handler returns an HTTP handler serving m plus the Go runtime collectors
// from a private registry.
func Handler(m *Metrics) http.Handler {
	r := prometheus.NewRegistry()
	r.MustRegister(m, collectors.NewGoCollector())

	return promhttp.InstrumentMetricHandler(
		r, promhttp.HandlerFor(r, promhttp.HandlerOpts{
			ErrorHandling:     promhttp.ContinueOnError,
			Registry:          r,
			EnableOpenMetrics: true,
		}),
	)
}

// Serve listens on addr and serves the metrics until ctx is done. It returns
// the bound address once the listener is up; serving continues in the
// background.
func Serve(ctx context.Context, addr string, m *Metrics, l logger.Logger) (net.Addr, error) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Cannot listen on %s for metrics", addr),
			"Pick a free address with --metrics-addr, or leave it empty to disable the exporter.")
	}

	mux := http.NewServeMux()
	mux.Handle(MetricsPath, Handler(m))

	s := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ErrorLog:          log.Default(),
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		l.Info("serving metrics on http://%s%s", lis.Addr(), MetricsPath)
		if err := s.Serve(lis); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			l.Error("metrics server: %v", err)
		}
	}()

	go func() {
		<-ctx.Done()
		shutdown(s, l) //nolint:contextcheck // ctx is already done
	}()

	return lis.Addr(), nil
}

// shutdownTimeout bounds how long open scrapes get to finish on exit.
const shutdownTimeout = time.Second

type shutdowner interface {
	Shutdown(ctx context.Context) error
}

// shutdown stops s on a fresh context, since the serving one is already done.
func shutdown(s shutdowner, l logger.Logger) {
	stopCtx, stopCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer stopCancel()

	if err := s.Shutdown(stopCtx); err != nil {
		l.Debug("metrics server shutdown: %v", err)
		return
	}
	l.Debug("metrics server stopped")
}
