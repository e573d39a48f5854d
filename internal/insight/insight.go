// Package insight fetches the monthly reflection shown next to the calendar.
package insight

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// MonthlyInsight is the structured reflection for one month
type MonthlyInsight struct {
	Quote          string `json:"quote" yaml:"quote"`
	Focus          string `json:"focus" yaml:"focus"`
	HistoricalNote string `json:"historicalNote" yaml:"historicalNote"`
}

// Provider produces an insight for a month, or an error
type Provider interface {
	Insight(ctx context.Context, monthName string, year int) (MonthlyInsight, error)
}

// ProviderFunc adapts a function to the Provider interface
type ProviderFunc func(ctx context.Context, monthName string, year int) (MonthlyInsight, error)

// Insight calls f
func (f ProviderFunc) Insight(ctx context.Context, monthName string, year int) (MonthlyInsight, error) {
	return f(ctx, monthName, year)
}

// Fallback returns the static insight used whenever the provider fails
func Fallback(monthName string) MonthlyInsight {
	return MonthlyInsight{
		Quote:          "La eficiencia es hacer las cosas bien; la efectividad es hacer las cosas correctas.",
		Focus:          "Planificación Estratégica y Ejecución",
		HistoricalNote: fmt.Sprintf("%s marca una transición importante en el ciclo trimestral.", monthName),
	}
}

// Fetcher turns any provider failure into the static fallback
type Fetcher struct {
	provider Provider
	timeout  time.Duration
	logger   *zap.Logger
}

// NewFetcher creates a Fetcher. A nil provider always yields the fallback;
// a zero timeout leaves deadlines to the caller's context and the transport.
func NewFetcher(provider Provider, timeout time.Duration, logger *zap.Logger) *Fetcher {
	return &Fetcher{
		provider: provider,
		timeout:  timeout,
		logger:   logger,
	}
}

// Fetch returns the provider's insight or the fallback; it never fails
func (f *Fetcher) Fetch(ctx context.Context, monthName string, year int) MonthlyInsight {
	if f.provider == nil {
		f.logger.Info("Insight provider not configured, using fallback",
			zap.String("month", monthName),
			zap.Int("year", year))
		return Fallback(monthName)
	}

	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	start := time.Now()
	result, err := f.provider.Insight(ctx, monthName, year)
	if err != nil {
		f.logger.Error("Error fetching monthly insight",
			zap.String("month", monthName),
			zap.Int("year", year),
			zap.Error(err))
		return Fallback(monthName)
	}

	f.logger.Info("Monthly insight fetched",
		zap.String("month", monthName),
		zap.Int("year", year),
		zap.Duration("took", time.Since(start)))

	return result
}
