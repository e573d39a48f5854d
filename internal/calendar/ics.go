package calendar

import (
	"fmt"
	"io"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/username/calendario/pkg/dateutil"
)

const (
	icsProductID = "-//Nova Intelligence Systems//Calendario 2026//ES"
	icsTimezone  = "America/Bogota"
)

// WriteICS writes the holidays as an iCalendar feed of all-day events
func WriteICS(w io.Writer, name string, holidays []Holiday) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(icsProductID)
	cal.SetXWRCalName(name)
	cal.SetXWRTimezone(icsTimezone)

	stamp := time.Now().UTC()
	for _, h := range holidays {
		key := dateutil.DateKey(h.Date)
		event := cal.AddEvent(fmt.Sprintf("%s@calendario.nova", key))
		event.SetDtStampTime(stamp)
		event.SetAllDayStartAt(h.Date)
		event.SetAllDayEndAt(h.Date.AddDate(0, 0, 1))
		event.SetSummary(h.Name)
		event.SetProperty(ics.ComponentPropertyCategories, "Festivo")
	}

	if _, err := io.WriteString(w, cal.Serialize()); err != nil {
		return fmt.Errorf("failed to write calendar: %w", err)
	}
	return nil
}
