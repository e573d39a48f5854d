package calendar

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestDefaultHolidays(t *testing.T) {
	h := DefaultHolidays()

	if h.Len() != 18 {
		t.Errorf("Len() = %d, want 18", h.Len())
	}

	tests := []struct {
		date     time.Time
		wantName string
		wantOK   bool
	}{
		{time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local), "Año Nuevo", true},
		{time.Date(2026, 4, 3, 15, 0, 0, 0, time.Local), "Viernes Santo", true},
		{time.Date(2026, 12, 25, 0, 0, 0, 0, time.Local), "Navidad", true},
		{time.Date(2026, 12, 24, 0, 0, 0, 0, time.Local), "", false},
		{time.Date(2027, 1, 1, 0, 0, 0, 0, time.Local), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.date.Format("2006-01-02"), func(t *testing.T) {
			name, ok := h.Lookup(tt.date)
			if ok != tt.wantOK || name != tt.wantName {
				t.Errorf("Lookup() = (%q, %v), want (%q, %v)", name, ok, tt.wantName, tt.wantOK)
			}
		})
	}
}

func TestStaticHolidays_ListSorted(t *testing.T) {
	list := DefaultHolidays().List()

	if len(list) != 18 {
		t.Fatalf("List() len = %d, want 18", len(list))
	}
	for i := 1; i < len(list); i++ {
		if !list[i-1].Date.Before(list[i].Date) {
			t.Errorf("List() not ascending at %d: %v >= %v", i, list[i-1].Date, list[i].Date)
		}
	}
	if list[0].Name != "Año Nuevo" || list[len(list)-1].Name != "Navidad" {
		t.Errorf("List() bounds = %q..%q", list[0].Name, list[len(list)-1].Name)
	}

	// Mutating the copy must not affect the table
	list[0].Name = "changed"
	if DefaultHolidays().List()[0].Name != "Año Nuevo" {
		t.Error("List() returned shared backing storage")
	}
}

func writeHolidaysFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "holidays.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write holidays file: %v", err)
	}
	return path
}

func TestFileHolidays_Load(t *testing.T) {
	path := writeHolidaysFile(t, `# override table
2026-02-14 Día del Amor
not-a-date Something
2026-03-09

2026-12-31 Fin de Año
`)

	fh := NewFileHolidays(path, zap.NewNop())
	if err := fh.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	list := fh.List()
	if len(list) != 2 {
		t.Fatalf("List() len = %d, want 2 (bad lines skipped)", len(list))
	}

	name, ok := fh.Lookup(time.Date(2026, 2, 14, 0, 0, 0, 0, time.Local))
	if !ok || name != "Día del Amor" {
		t.Errorf("Lookup(2026-02-14) = (%q, %v)", name, ok)
	}
	if _, ok := fh.Lookup(time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local)); ok {
		t.Error("line without a name should be skipped")
	}
}

func TestFileHolidays_MissingFile(t *testing.T) {
	fh := NewFileHolidays(filepath.Join(t.TempDir(), "missing.txt"), zap.NewNop())
	if err := fh.Load(); err == nil {
		t.Error("Load() expected error for missing file")
	}
	if len(fh.List()) != 0 {
		t.Error("unloaded table should be empty")
	}
}

func TestCompositeHolidays(t *testing.T) {
	path := writeHolidaysFile(t, "2026-01-01 Primero de Enero\n2026-02-14 Día del Amor\n")

	primary := NewFileHolidays(path, zap.NewNop())
	ch := NewCompositeHolidays(primary, DefaultHolidays(), zap.NewNop())
	if err := ch.LoadPrimary(); err != nil {
		t.Fatalf("LoadPrimary() error = %v", err)
	}

	tests := []struct {
		name     string
		date     time.Time
		wantName string
		wantOK   bool
	}{
		{"primary overrides fallback", time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local), "Primero de Enero", true},
		{"primary only", time.Date(2026, 2, 14, 0, 0, 0, 0, time.Local), "Día del Amor", true},
		{"fallback only", time.Date(2026, 12, 25, 0, 0, 0, 0, time.Local), "Navidad", true},
		{"neither", time.Date(2026, 2, 15, 0, 0, 0, 0, time.Local), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, ok := ch.Lookup(tt.date)
			if ok != tt.wantOK || name != tt.wantName {
				t.Errorf("Lookup() = (%q, %v), want (%q, %v)", name, ok, tt.wantName, tt.wantOK)
			}
		})
	}

	list := ch.List()
	if len(list) != 19 {
		t.Errorf("List() len = %d, want 19", len(list))
	}
	if list[0].Name != "Primero de Enero" {
		t.Errorf("List()[0] = %q, want primary name", list[0].Name)
	}
}

func TestMonthNames(t *testing.T) {
	tests := []struct {
		month time.Month
		want  string
		short string
	}{
		{time.January, "Enero", "Ene"},
		{time.September, "Septiembre", "Sep"},
		{time.December, "Diciembre", "Dic"},
		{13, "Enero", "Ene"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := MonthName(tt.month); got != tt.want {
				t.Errorf("MonthName(%d) = %q, want %q", tt.month, got, tt.want)
			}
			if got := ShortMonthName(tt.month); got != tt.short {
				t.Errorf("ShortMonthName(%d) = %q, want %q", tt.month, got, tt.short)
			}
		})
	}

	if got := WeekdayLabel(time.Sunday); got != "Dom" {
		t.Errorf("WeekdayLabel(Sunday) = %q, want Dom", got)
	}
	if got := WeekdayLabel(time.Monday); got != "Lun" {
		t.Errorf("WeekdayLabel(Monday) = %q, want Lun", got)
	}
}

func TestWriteICS(t *testing.T) {
	var buf bytes.Buffer
	holidays := DefaultHolidays().List()

	if err := WriteICS(&buf, "Festivos Colombia 2026", holidays); err != nil {
		t.Fatalf("WriteICS() error = %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "BEGIN:VCALENDAR") {
		t.Errorf("feed does not start with VCALENDAR: %q", out[:40])
	}
	if got := strings.Count(out, "BEGIN:VEVENT"); got != len(holidays) {
		t.Errorf("VEVENT count = %d, want %d", got, len(holidays))
	}
	for _, want := range []string{"20260101", "Navidad", "2026-12-25@calendario.nova"} {
		if !strings.Contains(out, want) {
			t.Errorf("feed missing %q", want)
		}
	}
}
