package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns the CLI's stderr logger. Timestamps read "15:04:05.00"
// so that repeated layout runs in one terminal stay easy to tell apart.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress times one pipeline stage of a command ("layout", "render").
// Every line it writes carries the stage name and the elapsed time, so
// verbose runs show where a slow document spends its time.
type progress struct {
	logger *log.Logger
	start  time.Time
	last   time.Time
}

func newProgress(l *log.Logger, stage string) *progress {
	now := time.Now()
	return &progress{logger: l.With("stage", stage), start: now, last: now}
}

// lap logs an intermediate step at debug level with the time since the
// previous lap.
func (p *progress) lap(msg string, keyvals ...any) {
	now := time.Now()
	p.logger.Debug(msg, append(keyvals, "took", now.Sub(p.last).Round(time.Millisecond))...)
	p.last = now
}

// done logs msg at info level with the total time since the stage began.
//
//	INFO Laid out stage=layout boxes=12 took=3ms
func (p *progress) done(msg string, keyvals ...any) {
	p.logger.Info(msg, append(keyvals, "took", time.Since(p.start).Round(time.Millisecond))...)
}

type loggerKey struct{}

// withLogger attaches l to ctx for the subcommands run under it.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the logger attached by the root command, or
// log.Default() when a command runs without one (as in tests).
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
