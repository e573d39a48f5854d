package calendar

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/username/calendario/pkg/dateutil"
	"go.uber.org/zap"
)

// FileHolidays implements Holidays using a local text file
type FileHolidays struct {
	filePath string
	logger   *zap.Logger
	table    *StaticHolidays
}

// NewFileHolidays creates a new FileHolidays instance
func NewFileHolidays(filePath string, logger *zap.Logger) *FileHolidays {
	return &FileHolidays{
		filePath: filePath,
		logger:   logger,
		table:    NewStaticHolidays(nil),
	}
}

// Load loads holiday data from file
func (fh *FileHolidays) Load() error {
	file, err := os.Open(fh.filePath)
	if err != nil {
		return fmt.Errorf("failed to open holidays file: %w", err)
	}
	defer file.Close()

	entries := make(map[string]string)
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Format: YYYY-MM-DD name
		// Example: 2026-01-01 Año Nuevo
		parts := strings.SplitN(line, " ", 2)
		if len(parts) < 2 || strings.TrimSpace(parts[1]) == "" {
			fh.logger.Warn("Invalid line format", zap.String("line", line))
			continue
		}

		date, err := dateutil.ParseDate(parts[0])
		if err != nil {
			fh.logger.Warn("Failed to parse date", zap.String("date", parts[0]), zap.Error(err))
			continue
		}

		entries[dateutil.DateKey(date)] = strings.TrimSpace(parts[1])
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading holidays file: %w", err)
	}

	fh.table = NewStaticHolidays(entries)

	fh.logger.Info("Holidays file loaded",
		zap.String("file", fh.filePath),
		zap.Int("holidays", fh.table.Len()))

	return nil
}

// Lookup returns the holiday name for the exact calendar date
func (fh *FileHolidays) Lookup(date time.Time) (string, bool) {
	return fh.table.Lookup(date)
}

// List returns every holiday in ascending date order
func (fh *FileHolidays) List() []Holiday {
	return fh.table.List()
}
