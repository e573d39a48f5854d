// Package tray shows today's pattern value and holiday in the system tray.
package tray

import (
	"context"

	"fyne.io/systray"
	"go.uber.org/zap"

	"github.com/username/calendario/internal/calendar"
)

// App represents the system tray application
type App struct {
	holidays calendar.Holidays
	logger   *zap.Logger
}

// NewApp creates the tray application
func NewApp(holidays calendar.Holidays, logger *zap.Logger) *App {
	return &App{holidays: holidays, logger: logger}
}

// Run starts the tray (blocks until Salir is clicked, ctx ends or a signal arrives)
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	systray.Run(func() { a.onReady(ctx, cancel) }, a.onExit)
}

func (a *App) onReady(ctx context.Context, cancel context.CancelFunc) {
	icon, err := calendarIcon()
	if err != nil {
		a.logger.Warn("Failed to render tray icon", zap.Error(err))
	} else {
		systray.SetIcon(icon)
	}
	systray.SetTitle("Calendario")
	systray.SetTooltip("Calendario 2026")

	mSummary := systray.AddMenuItem("", "")
	mSummary.Disable()
	systray.AddSeparator()
	mQuit := systray.AddMenuItem("Salir", "Cerrar el calendario")

	indicator := NewIndicator(a.holidays, nil, func(s Status) {
		systray.SetTitle(s.Title)
		systray.SetTooltip(s.Tooltip)
		mSummary.SetTitle(s.Title)
	}, a.logger)

	go func() {
		indicator.Loop(ctx)
		systray.Quit()
	}()

	go func() {
		select {
		case <-mQuit.ClickedCh:
			a.logger.Info("Quit clicked from tray")
			cancel()
		case <-ctx.Done():
		}
	}()
}

func (a *App) onExit() {
	a.logger.Info("System tray exited")
}
