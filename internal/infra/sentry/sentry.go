// File: internal/infra/sentry/sentry.go
package sentryutil

import (
	"log"
	"time"

	"github.com/getsentry/sentry-go"

	"mnogo-rolly-bot/internal/config"
)

// Init configures error tracking. An empty DSN disables it; Init never fails
// the process.
func Init(cfg config.SentryConfig) {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
	})
	if err != nil {
		log.Printf("sentry init (non-blocking): %s", err)
	}
}

func Flush() { sentry.Flush(2 * time.Second) }

// CaptureError reports err with the given tags. Nil errors are ignored, as
// are all calls when no DSN is configured (the SDK no-ops).
func CaptureError(err error, tags map[string]string) {
	if err == nil {
		return
	}
	sentry.WithScope(func(scope *sentry.Scope) {
		for k, v := range tags {
			scope.SetTag(k, v)
		}
		sentry.CaptureException(err)
	})
}
