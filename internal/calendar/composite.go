package calendar

import (
	"fmt"
	"sort"
	"time"

	"github.com/username/calendario/pkg/dateutil"
	"go.uber.org/zap"
)

// CompositeHolidays implements Holidays with fallback strategy
// Primary: FileHolidays (local override)
// Fallback: StaticHolidays (built-in table)
type CompositeHolidays struct {
	primary  Holidays
	fallback Holidays
	logger   *zap.Logger
}

// NewCompositeHolidays creates a new CompositeHolidays
func NewCompositeHolidays(primary, fallback Holidays, logger *zap.Logger) *CompositeHolidays {
	return &CompositeHolidays{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

// Lookup checks the primary table first and the fallback second
func (ch *CompositeHolidays) Lookup(date time.Time) (string, bool) {
	if name, ok := ch.primary.Lookup(date); ok {
		return name, true
	}

	name, ok := ch.fallback.Lookup(date)
	if ok {
		ch.logger.Debug("Holiday resolved from fallback table",
			zap.String("date", dateutil.DateKey(date)),
			zap.String("name", name))
	}
	return name, ok
}

// List merges both tables; primary names win on the same date
func (ch *CompositeHolidays) List() []Holiday {
	byKey := make(map[string]Holiday)
	for _, h := range ch.fallback.List() {
		byKey[dateutil.DateKey(h.Date)] = h
	}
	for _, h := range ch.primary.List() {
		byKey[dateutil.DateKey(h.Date)] = h
	}

	out := make([]Holiday, 0, len(byKey))
	for _, h := range byKey {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// LoadPrimary loads the primary table (if FileHolidays)
func (ch *CompositeHolidays) LoadPrimary() error {
	if fh, ok := ch.primary.(*FileHolidays); ok {
		if err := fh.Load(); err != nil {
			return fmt.Errorf("failed to load holiday override: %w", err)
		}
		ch.logger.Info("Holiday override loaded successfully")
	}
	return nil
}
