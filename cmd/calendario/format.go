package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/username/calendario/internal/calendar"
	"github.com/username/calendario/internal/insight"
	"github.com/username/calendario/pkg/dateutil"
)

const holidayFeedName = "Festivos Colombia 2026"

// holidayRecord is the serialized form of a holiday for json and yaml output
type holidayRecord struct {
	Date    string `json:"date" yaml:"date"`
	Weekday string `json:"weekday" yaml:"weekday"`
	Name    string `json:"name" yaml:"name"`
}

func holidayRecords(holidays []calendar.Holiday) []holidayRecord {
	records := make([]holidayRecord, len(holidays))
	for i, h := range holidays {
		records[i] = holidayRecord{
			Date:    dateutil.DateKey(h.Date),
			Weekday: calendar.WeekdayLabel(h.Date.Weekday()),
			Name:    h.Name,
		}
	}
	return records
}

// writeMonth prints the grid: * marks holidays, [] marks today, adjacent-month days are dotted
func writeMonth(w io.Writer, year int, month time.Month, grid []calendar.Day) {
	fmt.Fprintf(w, "%s %d\n", calendar.MonthName(month), year)
	fmt.Fprintln(w, strings.Repeat("═", 7*6))

	for _, label := range calendar.WeekdayLabels {
		fmt.Fprintf(w, " %-4s ", label)
	}
	fmt.Fprintln(w)

	for week := 0; week < calendar.GridSize/7; week++ {
		for _, day := range grid[week*7 : week*7+7] {
			fmt.Fprintf(w, " %-4s ", dayLabel(day))
		}
		fmt.Fprintln(w)
	}

	var named []calendar.Day
	for _, day := range grid {
		if day.IsCurrentMonth && day.HolidayName != "" {
			named = append(named, day)
		}
	}
	if len(named) > 0 {
		fmt.Fprintln(w)
		for _, day := range named {
			fmt.Fprintf(w, "  %2d  %s\n", day.Date.Day(), day.HolidayName)
		}
	}

	fmt.Fprintf(w, "\nPatrón día 1: %d\n", calendar.PatternValue(time.Date(year, month, 1, 0, 0, 0, 0, time.Local)))
}

func dayLabel(day calendar.Day) string {
	if !day.IsCurrentMonth {
		return " ·"
	}
	label := fmt.Sprintf("%2d", day.Date.Day())
	if day.IsToday {
		label = "[" + strings.TrimSpace(label) + "]"
	}
	if day.IsHoliday {
		label += "*"
	}
	return label
}

func writeHolidays(w io.Writer, format string, holidays []calendar.Holiday) error {
	switch normalizeFormat(format) {
	case "", "text":
		fmt.Fprintln(w, holidayFeedName)
		fmt.Fprintln(w, strings.Repeat("═", len([]rune(holidayFeedName))))
		for _, h := range holidays {
			fmt.Fprintf(w, "  %2d %s  %-3s  %s\n",
				h.Date.Day(),
				strings.ToUpper(calendar.ShortMonthName(h.Date.Month())),
				calendar.WeekdayLabel(h.Date.Weekday()),
				h.Name)
		}
		return nil

	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(holidayRecords(holidays)); err != nil {
			return fmt.Errorf("failed to encode holidays: %w", err)
		}
		return nil

	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		if err := enc.Encode(holidayRecords(holidays)); err != nil {
			return fmt.Errorf("failed to encode holidays: %w", err)
		}
		return nil

	case "ics":
		return calendar.WriteICS(w, holidayFeedName, holidays)

	default:
		return fmt.Errorf("unknown format '%s', want text, json, yaml or ics", format)
	}
}

func writeInsight(w io.Writer, format string, month time.Month, result insight.MonthlyInsight) error {
	switch normalizeFormat(format) {
	case "", "text":
		fmt.Fprintf(w, "Estrategia Mensual · %s\n\n", calendar.MonthName(month))
		fmt.Fprintf(w, "\"%s\"\n\n", result.Quote)
		fmt.Fprintf(w, "Enfoque del Mes: %s\n", result.Focus)
		fmt.Fprintf(w, "Dato Histórico:  %s\n", result.HistoricalNote)
		return nil

	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("failed to encode insight: %w", err)
		}
		return nil

	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("failed to encode insight: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("unknown format '%s', want text, json or yaml", format)
	}
}
