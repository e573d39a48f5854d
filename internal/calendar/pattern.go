package calendar

import (
	"time"

	"github.com/username/calendario/pkg/dateutil"
)

// Pattern values alternate daily starting from the anchor date
const (
	PatternEven = 29
	PatternOdd  = 60
)

// PatternAnchor is the first day of the reference year
var PatternAnchor = time.Date(ReferenceYear, time.January, 1, 0, 0, 0, 0, time.Local)

// PatternValue returns 29 when the day offset from the anchor is even, 60 when odd
func PatternValue(date time.Time) int {
	offset := dateutil.DaysBetween(PatternAnchor, date)
	if offset < 0 {
		offset = -offset
	}
	if offset%2 == 0 {
		return PatternEven
	}
	return PatternOdd
}
