package tray

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/username/calendario/internal/calendar"
)

const refreshInterval = time.Minute

// Indicator keeps a Status current as the date rolls over
type Indicator struct {
	holidays calendar.Holidays
	now      func() time.Time
	apply    func(Status)
	logger   *zap.Logger
	current  Status
}

// NewIndicator creates an indicator. apply receives every new Status; a nil clock means time.Now.
func NewIndicator(holidays calendar.Holidays, now func() time.Time, apply func(Status), logger *zap.Logger) *Indicator {
	if now == nil {
		now = time.Now
	}
	return &Indicator{
		holidays: holidays,
		now:      now,
		apply:    apply,
		logger:   logger,
	}
}

// Refresh recomputes the status and applies it when the day has changed.
// It reports whether the status was applied.
func (ind *Indicator) Refresh() bool {
	status := Summary(ind.now(), ind.holidays)
	if status == ind.current {
		return false
	}

	ind.logger.Info("Tray status updated",
		zap.String("date", status.Date),
		zap.String("title", status.Title))
	ind.current = status
	if ind.apply != nil {
		ind.apply(status)
	}
	return true
}

// Current returns the last applied status
func (ind *Indicator) Current() Status {
	return ind.current
}

// Loop refreshes once a minute until ctx is done or SIGINT/SIGTERM arrives
func (ind *Indicator) Loop(ctx context.Context) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	ind.Refresh()

	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			ind.logger.Info("Tray loop stopped")
			return

		case sig := <-sigChan:
			ind.logger.Info("Received signal, shutting down",
				zap.String("signal", sig.String()))
			return

		case <-ticker.C:
			ind.Refresh()
		}
	}
}
