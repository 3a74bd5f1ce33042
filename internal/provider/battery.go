package provider

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jamesprial/i3bar-info/internal/section"
	"github.com/jamesprial/i3bar-info/internal/system"
)

// batteryReadLimit bounds the capacity read; "100\n" is the longest valid
// value.
const batteryReadLimit = 5

// Battery renders the charge percentage from a power_supply capacity file.
type Battery struct {
	path string
}

// NewBattery returns a Battery reading the capacity file at path.
func NewBattery(path string) *Battery {
	return &Battery{path: path}
}

func (b *Battery) Name() string { return "battery" }

func (b *Battery) Produce(_ context.Context, rec *section.Record) error {
	raw, err := system.ReadBounded(b.path, batteryReadLimit)
	if err != nil {
		return err
	}
	if len(raw) < 1 {
		return fmt.Errorf("battery %s: empty: %w", b.path, ErrMalformed)
	}
	nl := bytes.IndexByte(raw, '\n')
	if nl < 0 {
		return fmt.Errorf("battery %s: no newline: %w", b.path, ErrMalformed)
	}

	rec.Name = b.Name()
	rec.FullText = string(raw[:nl]) + "%"
	return nil
}

func (b *Battery) Release(rec *section.Record) { releaseText(rec) }
