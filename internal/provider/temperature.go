package provider

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jamesprial/i3bar-info/internal/section"
	"github.com/jamesprial/i3bar-info/internal/system"
)

const (
	// temperatureReadLimit bounds the millidegree read.
	temperatureReadLimit = 8

	tempWarnCelsius     = 70
	tempCriticalCelsius = 75
)

// Temperature renders a thermal zone reading in whole degrees Celsius.
type Temperature struct {
	path string
}

// NewTemperature returns a Temperature reading the millidegree file at path.
func NewTemperature(path string) *Temperature {
	return &Temperature{path: path}
}

func (t *Temperature) Name() string { return "cpu_temp" }

func (t *Temperature) Produce(_ context.Context, rec *section.Record) error {
	raw, err := system.ReadBounded(t.path, temperatureReadLimit)
	if err != nil {
		return err
	}

	milli, err := parseLeadingInt(raw)
	if err != nil {
		return fmt.Errorf("temperature %s: %w", t.path, err)
	}
	// Zero is what a thermal zone reports before its first sample.
	if milli == 0 {
		return fmt.Errorf("temperature %s: %w", t.path, ErrSensorNotReady)
	}
	celsius := milli / 1000

	rec.Name = t.Name()
	rec.FullText = strconv.FormatInt(celsius, 10) + "°C"
	switch {
	case celsius > tempCriticalCelsius:
		rec.Color = ColorCritical
	case celsius > tempWarnCelsius:
		rec.Color = ColorWarning
	}
	return nil
}

func (t *Temperature) Release(rec *section.Record) { releaseText(rec) }

// parseLeadingInt parses an optionally signed decimal integer at the start of
// b, after any leading whitespace, ignoring whatever follows the digits. Input
// without leading digits parses as zero. A value outside the int64 range is
// reported as ErrSensorNotReady.
func parseLeadingInt(b []byte) (int64, error) {
	i := 0
	for i < len(b) && isSpace(b[i]) {
		i++
	}
	start := i
	if i < len(b) && (b[i] == '+' || b[i] == '-') {
		i++
	}
	digits := i
	for i < len(b) && b[i] >= '0' && b[i] <= '9' {
		i++
	}
	if i == digits {
		return 0, nil
	}

	v, err := strconv.ParseInt(string(b[start:i]), 10, 64)
	if err != nil {
		return 0, ErrSensorNotReady
	}
	return v, nil
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
