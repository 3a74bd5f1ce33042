package bar

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"
)

// Header is the protocol handshake written once before the first tick.
const Header = `{"version":1}`

// DefaultInterval is the pause between ticks.
const DefaultInterval = time.Second

// Stream writes the endless outer JSON array: a header, "[", then one inner
// array per tick separated by commas. The outer array is never closed.
type Stream struct {
	w        *bufio.Writer
	composer *Composer
	interval time.Duration
	sleep    func(ctx context.Context, d time.Duration)
	started  bool
}

// NewStream returns a Stream writing to w.
func NewStream(w io.Writer, composer *Composer) *Stream {
	return &Stream{
		w:        bufio.NewWriter(w),
		composer: composer,
		interval: DefaultInterval,
		sleep:    sleep,
	}
}

// Tick writes one inner array and flushes it. The first call also writes the
// header and opens the outer array.
func (s *Stream) Tick(ctx context.Context) error {
	if !s.started {
		if _, err := s.w.WriteString(Header + "\n["); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
		s.started = true
	} else if err := s.w.WriteByte(','); err != nil {
		return fmt.Errorf("write separator: %w", err)
	}

	if err := s.w.WriteByte('['); err != nil {
		return fmt.Errorf("open tick: %w", err)
	}
	// Providers always run to completion once a tick has started.
	if _, err := s.composer.Compose(context.WithoutCancel(ctx), s.w); err != nil {
		return err
	}
	if _, err := s.w.WriteString("]\n"); err != nil {
		return fmt.Errorf("close tick: %w", err)
	}
	if err := s.w.Flush(); err != nil {
		return fmt.Errorf("flush tick: %w", err)
	}
	return nil
}

// Run ticks until ctx is cancelled or a write fails, pausing one interval
// between ticks. Cancellation is only observed between ticks, so a tick is
// never cut short. Run returns nil on cancellation.
func (s *Stream) Run(ctx context.Context) error {
	for {
		if err := s.Tick(ctx); err != nil {
			return err
		}
		s.sleep(ctx, s.interval)
		if ctx.Err() != nil {
			return nil
		}
	}
}

func sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
