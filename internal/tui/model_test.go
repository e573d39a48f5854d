package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/username/calendario/internal/calendar"
	"github.com/username/calendario/internal/insight"
	"github.com/username/calendario/internal/view"
)

func runeKey(r string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(r)}
}

func newTestModel(now time.Time, provider insight.Provider) *Model {
	builder := calendar.NewBuilder(calendar.DefaultHolidays(), func() time.Time { return now })
	logger := zap.NewNop()
	return New(builder, insight.NewFetcher(provider, 0, logger), logger)
}

func press(m *Model, keys ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(k)
	}
	return cmd
}

func TestModel_Navigation(t *testing.T) {
	tests := []struct {
		name      string
		keys      []tea.KeyMsg
		wantTitle string
		wantMode  view.Mode
	}{
		{"initial", nil, "Enero 2026", view.ModeMonth},
		{"next with arrow", []tea.KeyMsg{{Type: tea.KeyRight}}, "Febrero 2026", view.ModeMonth},
		{"prev with h", []tea.KeyMsg{runeKey("h")}, "Diciembre 2025", view.ModeMonth},
		{"tab toggles to year", []tea.KeyMsg{{Type: tea.KeyTab}}, "Año Completo 2026", view.ModeYear},
		{"year next resets to january", []tea.KeyMsg{runeKey("l"), runeKey("l"), runeKey("y"), runeKey("l")}, "Año Completo 2027", view.ModeYear},
		{"year then month keeps month", []tea.KeyMsg{runeKey("l"), runeKey("y"), runeKey("m")}, "Febrero 2026", view.ModeMonth},
		{"year prev", []tea.KeyMsg{runeKey("y"), {Type: tea.KeyLeft}}, "Año Completo 2025", view.ModeYear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(time.Date(2026, 1, 1, 9, 0, 0, 0, time.Local), nil)
			press(m, tt.keys...)

			if got := m.State().Title(); got != tt.wantTitle {
				t.Errorf("Title() = %q, want %q", got, tt.wantTitle)
			}
			if got := m.State().Mode; got != tt.wantMode {
				t.Errorf("Mode = %v, want %v", got, tt.wantMode)
			}
		})
	}
}

func TestModel_Today(t *testing.T) {
	m := newTestModel(time.Date(2026, 10, 14, 9, 0, 0, 0, time.Local), nil)
	press(m, runeKey("y"), runeKey("l"), runeKey("t"))

	if got := m.State().Title(); got != "Octubre 2026" {
		t.Errorf("Title() = %q, want %q", got, "Octubre 2026")
	}
	if m.State().Mode != view.ModeMonth {
		t.Errorf("Mode = %v, want MONTH", m.State().Mode)
	}
}

func TestModel_YearCursor(t *testing.T) {
	m := newTestModel(time.Date(2026, 1, 1, 9, 0, 0, 0, time.Local), nil)
	press(m, runeKey("y"), runeKey("j"), runeKey("j"), tea.KeyMsg{Type: tea.KeyEnter})

	if got := m.State().Title(); got != "Marzo 2026" {
		t.Errorf("Title() = %q, want %q", got, "Marzo 2026")
	}

	press(m, runeKey("y"), runeKey("k"), runeKey("k"), runeKey("k"), tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.State().Title(); got != "Diciembre 2026" {
		t.Errorf("cursor wrap: Title() = %q, want %q", got, "Diciembre 2026")
	}
}

func TestModel_HolidayModal(t *testing.T) {
	m := newTestModel(time.Date(2026, 1, 1, 9, 0, 0, 0, time.Local), nil)
	press(m, runeKey("f"))

	if !m.State().HolidaysOpen {
		t.Fatal("HolidaysOpen = false after f")
	}
	out := m.View()
	for _, want := range []string{"Festivos Colombia 2026", "Año Nuevo", "San José", "Navidad", "Cerrar Ventana", "MAR"} {
		if !strings.Contains(out, want) {
			t.Errorf("modal missing %q", want)
		}
	}

	press(m, runeKey("l"))
	if got := m.State().Title(); got != "Enero 2026" {
		t.Errorf("navigation while modal open: Title() = %q", got)
	}

	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.State().HolidaysOpen {
		t.Error("HolidaysOpen = true after esc")
	}
}

func TestModel_Insight(t *testing.T) {
	var gotMonth string
	provider := insight.ProviderFunc(func(ctx context.Context, monthName string, year int) (insight.MonthlyInsight, error) {
		gotMonth = monthName
		return insight.MonthlyInsight{
			Quote:          "La constancia vence lo que la dicha no alcanza.",
			Focus:          "Planear el trimestre.",
			HistoricalNote: "Nota histórica de prueba.",
		}, nil
	})

	m := newTestModel(time.Date(2026, 1, 1, 9, 0, 0, 0, time.Local), provider)
	press(m, runeKey("l"))
	cmd := press(m, runeKey("i"))
	if cmd == nil {
		t.Fatal("expected a fetch command")
	}
	if !m.Loading() {
		t.Error("Loading() = false while fetch is outstanding")
	}
	if !strings.Contains(m.View(), "Cargando") {
		t.Error("view missing loading placeholder")
	}

	m.Update(cmd())

	if gotMonth != "Febrero" {
		t.Errorf("provider month = %q, want Febrero", gotMonth)
	}
	if m.Loading() {
		t.Error("Loading() = true after result")
	}
	out := m.View()
	for _, want := range []string{"La constancia vence", "Enfoque del Mes", "Planear el trimestre.", "Dato Histórico"} {
		if !strings.Contains(out, want) {
			t.Errorf("insight card missing %q", want)
		}
	}
}

func TestModel_InsightFallback(t *testing.T) {
	provider := insight.ProviderFunc(func(ctx context.Context, monthName string, year int) (insight.MonthlyInsight, error) {
		return insight.MonthlyInsight{}, errors.New("unavailable")
	})

	m := newTestModel(time.Date(2026, 1, 1, 9, 0, 0, 0, time.Local), provider)
	cmd := press(m, runeKey("i"))
	m.Update(cmd())

	if !strings.Contains(m.View(), insight.Fallback("Enero").Quote) {
		t.Error("view missing fallback quote")
	}
}

func TestModel_IndependentInsightRequests(t *testing.T) {
	m := newTestModel(time.Date(2026, 1, 1, 9, 0, 0, 0, time.Local), nil)
	first := press(m, runeKey("i"))
	second := press(m, runeKey("i"))

	m.Update(first())
	if !m.Loading() {
		t.Error("Loading() = false with one request still outstanding")
	}
	m.Update(second())
	if m.Loading() {
		t.Error("Loading() = true after both requests finished")
	}
}

func TestModel_Quit(t *testing.T) {
	for _, k := range []tea.KeyMsg{runeKey("q"), {Type: tea.KeyCtrlC}} {
		t.Run(k.String(), func(t *testing.T) {
			m := newTestModel(time.Now(), nil)
			cmd := press(m, k)
			if cmd == nil {
				t.Fatal("expected quit command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Errorf("cmd() = %T, want tea.QuitMsg", cmd())
			}
		})
	}
}

func TestView_Month(t *testing.T) {
	m := newTestModel(time.Date(2026, 1, 1, 9, 0, 0, 0, time.Local), nil)
	out := m.View()

	for _, want := range []string{"Enero", "2026", "LUN", "DOM", "Año Nuevo", "Reyes Mag…", "29", "60",
		"Nova Intelligence Systems © 2026", "Colombia Standard Time"} {
		if !strings.Contains(out, want) {
			t.Errorf("month view missing %q", want)
		}
	}
}

func TestView_Year(t *testing.T) {
	m := newTestModel(time.Date(2026, 1, 1, 9, 0, 0, 0, time.Local), nil)
	press(m, runeKey("y"))
	out := m.View()

	for _, want := range []string{"Año Completo 2026", "ENERO", "JUNIO", "DICIEMBRE"} {
		if !strings.Contains(out, want) {
			t.Errorf("year view missing %q", want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"Navidad", 10, "Navidad"},
		{"Independencia de Cartagena", 10, "Independe…"},
		{"Día", 1, "D"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := truncate(tt.input, tt.width); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
			}
		})
	}
}
