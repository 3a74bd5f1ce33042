// Package provider implements the metric providers that fill one status-line
// block per tick.
package provider

import (
	"context"
	"errors"

	"github.com/jamesprial/i3bar-info/internal/section"
)

// Colors used for threshold escalation.
const (
	ColorWarning  = "#ffff00"
	ColorCritical = "#ff0000"
)

var (
	// ErrNoAddress is returned when no interface qualifies as primary.
	ErrNoAddress = errors.New("no running non-loopback IPv4 interface")

	// ErrSensorNotReady is returned when a sensor reports a sentinel value.
	ErrSensorNotReady = errors.New("sensor not ready")

	// ErrMalformed is returned when a pseudo-file's content cannot be used.
	ErrMalformed = errors.New("malformed value")
)

// Provider produces one section record per tick from a single data source.
//
// Produce fills rec, which the caller has reset to section.NewRecord. A
// non-nil error means the provider contributes nothing this tick. Release is
// called exactly once per tick after Produce, whatever the outcome, and must
// tolerate a record Produce left untouched or half filled.
type Provider interface {
	Name() string
	Produce(ctx context.Context, rec *section.Record) error
	Release(rec *section.Record)
}

// releaseText clears the fields the built-in providers populate.
func releaseText(rec *section.Record) {
	rec.Name = ""
	rec.FullText = ""
	rec.Color = ""
}
