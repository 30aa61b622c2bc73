package middleware

import (
	"SignBridge/pkg/response"
	"context"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/semaphore"
)

var (
	ErrServerBusy = response.NewError(http.StatusServiceUnavailable, "server busy, try again later")
)

// inflightLimiter bounds the number of model-backed requests running at once
// across all clients.
type inflightLimiter struct {
	sem  *semaphore.Weighted
	wait time.Duration
}

func newInflightLimiter(limit int64, wait time.Duration) *inflightLimiter {
	return &inflightLimiter{
		sem:  semaphore.NewWeighted(limit),
		wait: wait,
	}
}

func (l *inflightLimiter) acquire(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, l.wait)
	defer cancel()
	return l.sem.Acquire(ctx, 1) == nil
}

func (l *inflightLimiter) release() {
	l.sem.Release(1)
}

func (m *middleware) NewInflightLimiter(ctx *fiber.Ctx) error {
	if !m.inflight.acquire(ctx.UserContext()) {
		m.log.WithField("path", ctx.Path()).Warn("in-flight model request limit reached")
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": ErrServerBusy.Error(),
		})
	}
	defer m.inflight.release()

	return ctx.Next()
}
