package provider

import (
	"context"
	"errors"
	"time"

	"github.com/jamesprial/i3bar-info/internal/section"
)

const dateTimeLayout = "2006-01-02 15:04:05"

// Clock renders the local wall-clock time.
type Clock struct {
	now func() time.Time
	loc *time.Location
}

// NewClock returns a Clock rendering in loc. A nil loc uses time.Local. The
// location is fixed for the life of the Clock.
func NewClock(loc *time.Location) *Clock {
	if loc == nil {
		loc = time.Local
	}
	return &Clock{now: time.Now, loc: loc}
}

func (c *Clock) Name() string { return "datetime" }

func (c *Clock) Produce(_ context.Context, rec *section.Record) error {
	t := c.now()
	// time.Now never returns the zero time; a substituted source may.
	if t.IsZero() {
		return errors.New("clock: no time available")
	}
	rec.Name = c.Name()
	rec.FullText = t.In(c.loc).Format(dateTimeLayout)
	return nil
}

func (c *Clock) Release(rec *section.Record) { releaseText(rec) }
