package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Prev        key.Binding
	Next        key.Binding
	Today       key.Binding
	MonthView   key.Binding
	YearView    key.Binding
	Toggle      key.Binding
	Holidays    key.Binding
	Close       key.Binding
	Insight     key.Binding
	CursorNext  key.Binding
	CursorPrev  key.Binding
	SelectMonth key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "anterior"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "siguiente"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "hoy"),
		),
		MonthView: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mes"),
		),
		YearView: key.NewBinding(
			key.WithKeys("y", "a"),
			key.WithHelp("y", "año"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "mes/año"),
		),
		Holidays: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "festivos"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "enter", "f"),
			key.WithHelp("esc", "cerrar"),
		),
		Insight: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "reflexión"),
		),
		CursorNext: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j", "mes sig."),
		),
		CursorPrev: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k", "mes ant."),
		),
		SelectMonth: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "abrir mes"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "salir"),
		),
	}
}

func (k keyMap) monthHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Today, k.Toggle, k.Holidays, k.Insight, k.Quit}
}

func (k keyMap) yearHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.CursorPrev, k.CursorNext, k.SelectMonth, k.Today, k.Toggle, k.Holidays, k.Quit}
}
