package calendar

import (
	"sort"
	"time"

	"github.com/username/calendario/pkg/dateutil"
)

// colombia2026 lists the observed Colombian public holidays for 2026.
// Movable feasts and "Ley Emiliani" Monday shifts are already applied.
var colombia2026 = map[string]string{
	"2026-01-01": "Año Nuevo",
	"2026-01-12": "Reyes Magos",
	"2026-03-23": "San José",
	"2026-04-02": "Jueves Santo",
	"2026-04-03": "Viernes Santo",
	"2026-05-01": "Día del Trabajo",
	"2026-05-18": "Ascensión del Señor",
	"2026-06-08": "Corpus Christi",
	"2026-06-15": "Sagrado Corazón",
	"2026-06-29": "San Pedro y San Pablo",
	"2026-07-20": "Día de la Independencia",
	"2026-08-07": "Batalla de Boyacá",
	"2026-08-17": "Asunción de la Virgen",
	"2026-10-12": "Día de la Raza",
	"2026-11-02": "Todos los Santos",
	"2026-11-16": "Independencia de Cartagena",
	"2026-12-08": "Inmaculada Concepción",
	"2026-12-25": "Navidad",
}

// StaticHolidays is an immutable holiday table keyed by YYYY-MM-DD
type StaticHolidays struct {
	names  map[string]string
	sorted []Holiday
}

// NewStaticHolidays builds a table from date-key → name pairs.
// Keys that do not parse as YYYY-MM-DD are still matched on lookup but left out of List.
func NewStaticHolidays(entries map[string]string) *StaticHolidays {
	names := make(map[string]string, len(entries))
	sorted := make([]Holiday, 0, len(entries))

	for key, name := range entries {
		names[key] = name
		if date, err := dateutil.ParseDate(key); err == nil {
			sorted = append(sorted, Holiday{Date: date, Name: name})
		}
	}

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	return &StaticHolidays{names: names, sorted: sorted}
}

// DefaultHolidays returns the built-in Colombian 2026 table
func DefaultHolidays() *StaticHolidays {
	return NewStaticHolidays(colombia2026)
}

// Lookup returns the holiday name for the exact calendar date
func (h *StaticHolidays) Lookup(date time.Time) (string, bool) {
	name, ok := h.names[dateutil.DateKey(date)]
	return name, ok
}

// List returns every holiday in ascending date order
func (h *StaticHolidays) List() []Holiday {
	out := make([]Holiday, len(h.sorted))
	copy(out, h.sorted)
	return out
}

// Len returns the number of entries in the table
func (h *StaticHolidays) Len() int {
	return len(h.names)
}
