// Package view holds the calendar's navigation state.
//
// State is a value: every transition returns a new State, so the
// displayed screen is fully derivable from (Mode, Displayed, HolidaysOpen).
package view

import (
	"fmt"
	"time"

	"github.com/username/calendario/internal/calendar"
	"github.com/username/calendario/pkg/dateutil"
)

// Mode selects between the single-month and full-year layouts
type Mode int

const (
	ModeMonth Mode = iota
	ModeYear
)

// String returns MONTH or YEAR
func (m Mode) String() string {
	switch m {
	case ModeMonth:
		return "MONTH"
	case ModeYear:
		return "YEAR"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// State is the application's navigation state
type State struct {
	Mode         Mode
	Displayed    time.Time // first day of the displayed month; day component ignored
	HolidaysOpen bool
}

// New returns the initial state: month view of January of the reference year
func New() State {
	return State{
		Mode:      ModeMonth,
		Displayed: firstOfMonth(calendar.ReferenceYear, time.January),
	}
}

func firstOfMonth(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
}

// Year returns the displayed year
func (s State) Year() int { return s.Displayed.Year() }

// Month returns the displayed month
func (s State) Month() time.Month { return s.Displayed.Month() }

// Prev moves one month back in month view, one year back (to January) in year view
func (s State) Prev() State {
	if s.Mode == ModeMonth {
		s.Displayed = firstOfMonth(s.Year(), s.Month()-1)
	} else {
		s.Displayed = firstOfMonth(s.Year()-1, time.January)
	}
	return s
}

// Next moves one month forward in month view, one year forward (to January) in year view
func (s State) Next() State {
	if s.Mode == ModeMonth {
		s.Displayed = firstOfMonth(s.Year(), s.Month()+1)
	} else {
		s.Displayed = firstOfMonth(s.Year()+1, time.January)
	}
	return s
}

// Today jumps to the current month and forces month view
func (s State) Today(now time.Time) State {
	s.Displayed = dateutil.StartOfMonth(now)
	s.Mode = ModeMonth
	return s
}

// Toggle switches between month and year view
func (s State) Toggle() State {
	if s.Mode == ModeMonth {
		s.Mode = ModeYear
	} else {
		s.Mode = ModeMonth
	}
	return s
}

// SetMode switches to the given view without moving the displayed date
func (s State) SetMode(m Mode) State {
	s.Mode = m
	return s
}

// SelectMonth opens the given month of the displayed year in month view
func (s State) SelectMonth(month time.Month) State {
	s.Displayed = firstOfMonth(s.Year(), month)
	s.Mode = ModeMonth
	return s
}

// OpenHolidays shows the holiday list
func (s State) OpenHolidays() State {
	s.HolidaysOpen = true
	return s
}

// CloseHolidays hides the holiday list
func (s State) CloseHolidays() State {
	s.HolidaysOpen = false
	return s
}

// Title is the header text, e.g. "Enero 2026" or "Año Completo 2026"
func (s State) Title() string {
	if s.Mode == ModeYear {
		return fmt.Sprintf("Año Completo %d", s.Year())
	}
	return fmt.Sprintf("%s %d", calendar.MonthName(s.Month()), s.Year())
}
