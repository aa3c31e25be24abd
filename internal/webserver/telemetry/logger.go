// Package telemetry logs served requests and exposes application metrics.
package telemetry

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"
)

var (
	httpRequestsDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "wanderlist",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "The latency of the HTTP requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"api"})

	httpRequestsCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "wanderlist",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Number of the HTTP requests.",
	}, []string{"api", "path", "method", "code"})
)

type LoggerConfig struct {
	Name          string
	UserGetter    func(c *fiber.Ctx) string
	DoMetrics     bool
	LogErrorsOnly bool
}

// NewFiberLogger returns a middleware which logs every request once it has been answered
func NewFiberLogger(conf *LoggerConfig) fiber.Handler {
	if conf == nil {
		conf = &LoggerConfig{Name: "http"}
	}

	logger := logrus.WithField("logger", conf.Name)

	return func(c *fiber.Ctx) error {
		start := time.Now()
		chainErr := c.Next()

		// Render the error now so the logged status is the one sent to the client
		if chainErr != nil {
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		wt := time.Since(start)

		if conf.DoMetrics {
			metrics(conf.Name, c, wt)
		}

		status := c.Response().StatusCode()
		msg := fmt.Sprintf("%d %s %s %s", status, c.Method(), c.Path(), c.Request().URI().QueryArgs().String())

		fields := logrus.Fields{
			"client": c.IP() + ":" + c.Port(),
			"status": status,
			"ms":     wt.Milliseconds(),
		}
		if conf.UserGetter != nil {
			fields["user"] = conf.UserGetter(c)
		}

		l := logger.WithFields(fields)
		if chainErr != nil {
			l = l.WithError(chainErr)
		}

		if conf.LogErrorsOnly {
			switch {
			case status < 300:
				l.Debug(msg)
			case status < 400:
				l.Info(msg)
			default:
				l.Warn(msg)
			}
		} else {
			l.Info(msg)
		}

		return nil
	}
}

func metrics(api string, ctx *fiber.Ctx, t time.Duration) {
	httpRequestsDuration.With(prometheus.Labels{"api": api}).Observe(t.Seconds())

	httpRequestsCount.With(prometheus.Labels{
		"api":    api,
		"path":   ctx.Route().Path,
		"method": ctx.Method(),
		"code":   strconv.Itoa(ctx.Response().StatusCode()),
	}).Inc()
}
