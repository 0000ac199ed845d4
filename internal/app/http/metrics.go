package http

import (
	"time"

	echo "github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

const (
	outcomeServed = "served"
	outcomeFault  = "fault"
)

var (
	solverCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gamesman_solver_calls_total",
		Help: "Solver invocations by subcommand and outcome.",
	}, []string{"op", "outcome"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gamesman_http_request_duration_seconds",
		Help:    "HTTP request latency by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})
)

func observeSolverCall(op, outcome string) {
	solverCalls.WithLabelValues(op, outcome).Inc()
}

func requestLogger(log *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			elapsed := time.Since(start)
			requestDuration.WithLabelValues(c.Path()).Observe(elapsed.Seconds())
			log.Debug("request",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", c.Response().Status),
				zap.Duration("elapsed", elapsed))
			return err
		}
	}
}
