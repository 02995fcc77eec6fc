package handler

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"travelbooking-service/pkg/logger"
	"travelbooking-service/pkg/metrics"
)

// Metrics returns a middleware recording request counts, latencies and the
// two rejection classes the service distinguishes.
func Metrics(m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		m.RequestsTotal.WithLabelValues(c.Method(), c.Route().Path, strconv.Itoa(status)).Inc()
		m.RequestDuration.Observe(time.Since(start).Seconds())
		switch status {
		case fiber.StatusBadRequest:
			m.ValidationFailures.Inc()
		case fiber.StatusConflict:
			m.KeyConflicts.Inc()
		}
		return err
	}
}

// RequestLogger returns a middleware logging one line per handled request
func RequestLogger(log logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		log.Info("Handled request",
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"duration", time.Since(start).String(),
		)
		return err
	}
}
