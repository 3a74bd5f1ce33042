// Package bar composes provider output into the i3bar streaming protocol.
package bar

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jamesprial/i3bar-info/internal/provider"
	"github.com/jamesprial/i3bar-info/internal/section"
)

// Composer runs a fixed provider sequence once per tick and writes the
// surviving records as the comma-separated body of one JSON array.
type Composer struct {
	providers []provider.Provider
	logger    *slog.Logger
}

// NewComposer returns a Composer over providers, which run in slice order. A
// nil logger discards provider diagnostics.
func NewComposer(providers []provider.Provider, logger *slog.Logger) *Composer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Composer{providers: providers, logger: logger}
}

// Compose writes the elements of one tick's array to w, without the enclosing
// brackets, and returns how many records were written. Provider failures are
// not errors; only a failure to write to w is returned.
func (c *Composer) Compose(ctx context.Context, w io.Writer) (int, error) {
	written := 0
	for _, p := range c.providers {
		ok, err := c.emit(ctx, w, p, written > 0)
		if err != nil {
			return written, err
		}
		if ok {
			written++
		}
	}
	return written, nil
}

// emit runs one provider and writes its record if it produced a visible one.
// Release runs whatever happens.
func (c *Composer) emit(ctx context.Context, w io.Writer, p provider.Provider, comma bool) (bool, error) {
	rec := section.NewRecord()
	defer p.Release(&rec)

	if err := p.Produce(ctx, &rec); err != nil {
		c.logger.Debug("provider produced nothing", "provider", p.Name(), "error", err)
		return false, nil
	}
	if !rec.Present() {
		return false, nil
	}

	data, err := section.Marshal(&rec)
	if err != nil {
		c.logger.Debug("provider record not encodable", "provider", p.Name(), "error", err)
		return false, nil
	}
	if comma {
		data = append([]byte{','}, data...)
	}
	if _, err := w.Write(data); err != nil {
		return false, fmt.Errorf("write %s block: %w", p.Name(), err)
	}
	return true, nil
}
