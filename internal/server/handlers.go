package server

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/username/calendario/internal/calendar"
	"github.com/username/calendario/pkg/dateutil"
)

const icsCalendarName = "Festivos Colombia 2026"

type dayResponse struct {
	calendar.Day
	Pattern int `json:"pattern"`
}

type monthResponse struct {
	Year        int           `json:"year"`
	Month       int           `json:"month"`
	Name        string        `json:"name"`
	DaysInMonth int           `json:"daysInMonth"`
	Days        []dayResponse `json:"days"`
}

func newMonthResponse(year int, month time.Month, grid []calendar.Day) monthResponse {
	days := make([]dayResponse, len(grid))
	for i, day := range grid {
		days[i] = dayResponse{Day: day, Pattern: calendar.PatternValue(day.Date)}
	}
	return monthResponse{
		Year:        year,
		Month:       int(month),
		Name:        calendar.MonthName(month),
		DaysInMonth: dateutil.DaysInMonth(year, month),
		Days:        days,
	}
}

func (s *Server) handleMonth(c *gin.Context) {
	year, ok := queryYear(c)
	if !ok {
		return
	}
	month, ok := queryMonth(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, newMonthResponse(year, month, s.builder.MonthGrid(year, month)))
}

func (s *Server) handleYear(c *gin.Context) {
	year, ok := queryYear(c)
	if !ok {
		return
	}

	grids := s.builder.YearGrids(year)
	months := make([]monthResponse, len(grids))
	for i, grid := range grids {
		months[i] = newMonthResponse(year, time.Month(i+1), grid)
	}

	c.JSON(http.StatusOK, gin.H{
		"year":   year,
		"months": months,
	})
}

func (s *Server) handleHolidays(c *gin.Context) {
	holidays := s.builder.Holidays().List()
	c.JSON(http.StatusOK, gin.H{
		"holidays": holidays,
		"count":    len(holidays),
	})
}

func (s *Server) handleHolidaysICS(c *gin.Context) {
	var buf bytes.Buffer
	if err := calendar.WriteICS(&buf, icsCalendarName, s.builder.Holidays().List()); err != nil {
		s.logger.Error("Failed to render holiday feed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render calendar"})
		return
	}

	c.Header("Content-Disposition", `inline; filename="festivos-2026.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", buf.Bytes())
}

func (s *Server) handlePattern(c *gin.Context) {
	raw := c.Query("date")
	if raw == "" {
		badRequest(c, "date parameter required")
		return
	}
	date, err := dateutil.ParseDate(raw)
	if err != nil {
		badRequest(c, fmt.Sprintf("invalid date '%s'", raw))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":    dateutil.DateKey(date),
		"pattern": calendar.PatternValue(date),
	})
}

// handleInsight always answers 200; provider failures surface as the fallback insight
func (s *Server) handleInsight(c *gin.Context) {
	year, ok := queryYear(c)
	if !ok {
		return
	}
	month, ok := queryMonth(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, s.fetcher.Fetch(c.Request.Context(), calendar.MonthName(month), year))
}

func queryYear(c *gin.Context) (int, bool) {
	raw := c.DefaultQuery("year", strconv.Itoa(calendar.ReferenceYear))
	year, err := strconv.Atoi(raw)
	if err != nil || year < 1 || year > 9999 {
		badRequest(c, fmt.Sprintf("invalid year '%s'", raw))
		return 0, false
	}
	return year, true
}

func queryMonth(c *gin.Context) (time.Month, bool) {
	raw := c.DefaultQuery("month", "1")
	month, err := strconv.Atoi(raw)
	if err != nil || month < 1 || month > 12 {
		badRequest(c, fmt.Sprintf("invalid month '%s', want 1-12", raw))
		return 0, false
	}
	return time.Month(month), true
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}
