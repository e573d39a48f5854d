package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/username/calendario/internal/calendar"
	"github.com/username/calendario/internal/server"
	"github.com/username/calendario/internal/tray"
	"github.com/username/calendario/internal/tui"
	"github.com/username/calendario/pkg/dateutil"
)

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "tui",
		Short:       "Open the interactive calendar (default)",
		Annotations: map[string]string{annotationFileLog: "true"},
		RunE:        runTUI,
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	builder := initializeBuilder(cfg)
	fetcher := initializeFetcher(cmd.Context(), cfg)

	logger.Info("Starting interactive calendar")
	program := tea.NewProgram(tui.New(builder, fetcher, logger), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("calendar UI failed: %w", err)
	}
	return nil
}

func monthCmd() *cobra.Command {
	var year, month int

	cmd := &cobra.Command{
		Use:   "month",
		Short: "Print one month grid with holidays and pattern values",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateMonth(month); err != nil {
				return err
			}
			builder := initializeBuilder(cfg)
			grid := builder.MonthGrid(year, time.Month(month))
			writeMonth(cmd.OutOrStdout(), year, time.Month(month), grid)
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", calendar.ReferenceYear, "Year")
	cmd.Flags().IntVar(&month, "month", 1, "Month (1-12)")

	return cmd
}

func holidaysCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "holidays",
		Short: "List the holiday table",
		RunE: func(cmd *cobra.Command, args []string) error {
			holidays := initializeHolidays(cfg).List()
			return writeHolidays(cmd.OutOrStdout(), format, holidays)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, json, yaml or ics")

	return cmd
}

func patternCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pattern [date]",
		Short: "Print the 29/60 pattern value for a date (default today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := dateutil.Today()
			if len(args) == 1 {
				parsed, err := dateutil.ParseDate(args[0])
				if err != nil {
					return err
				}
				date = parsed
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d\n", dateutil.DateKey(date), calendar.PatternValue(date))
			return nil
		},
	}
}

func insightCmd() *cobra.Command {
	var year, month int
	var format string

	cmd := &cobra.Command{
		Use:   "insight",
		Short: "Fetch the monthly insight",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateMonth(month); err != nil {
				return err
			}
			fetcher := initializeFetcher(cmd.Context(), cfg)
			result := fetcher.Fetch(cmd.Context(), calendar.MonthName(time.Month(month)), year)
			return writeInsight(cmd.OutOrStdout(), format, time.Month(month), result)
		},
	}

	cmd.Flags().IntVar(&year, "year", calendar.ReferenceYear, "Year")
	cmd.Flags().IntVar(&month, "month", 1, "Month (1-12)")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, json or yaml")

	return cmd
}

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calendar HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = cfg.Server.Addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := server.NewServer(initializeBuilder(cfg), initializeFetcher(ctx, cfg), logger)
			return srv.Run(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from server.addr)")

	return cmd
}

func trayCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "tray",
		Short:       "Show today's pattern value and holiday in the system tray",
		Annotations: map[string]string{annotationFileLog: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.Info("Initializing system tray")
			tray.NewApp(initializeHolidays(cfg), logger).Run(cmd.Context())
			return nil
		},
	}
}

func validateMonth(month int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("month must be between 1 and 12, got %d", month)
	}
	return nil
}

func normalizeFormat(format string) string {
	return strings.ToLower(strings.TrimSpace(format))
}
