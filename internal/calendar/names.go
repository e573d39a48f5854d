package calendar

import (
	"time"

	"github.com/username/calendario/pkg/dateutil"
)

var monthNames = [12]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// WeekdayLabels are the short day names, Monday first
var WeekdayLabels = [7]string{"Lun", "Mar", "Mié", "Jue", "Vie", "Sáb", "Dom"}

// MonthName returns the Spanish month name; out-of-range months wrap around
func MonthName(month time.Month) string {
	idx := (int(month) - 1) % 12
	if idx < 0 {
		idx += 12
	}
	return monthNames[idx]
}

// ShortMonthName returns the first three letters of the Spanish month name
func ShortMonthName(month time.Month) string {
	return string([]rune(MonthName(month))[:3])
}

// WeekdayLabel returns the short Spanish label for the weekday
func WeekdayLabel(weekday time.Weekday) string {
	return WeekdayLabels[dateutil.MondayIndex(weekday)]
}
