package provider

import (
	"context"
	"fmt"

	"github.com/jamesprial/i3bar-info/internal/section"
	"github.com/jamesprial/i3bar-info/internal/system"
)

// Load renders the 1, 5 and 15 minute load averages, coloured against the
// processor count captured at startup.
type Load struct {
	host       system.Host
	processors int
}

// NewLoad returns a Load provider. A processors value of zero or less disables
// colour escalation.
func NewLoad(host system.Host, processors int) *Load {
	return &Load{host: host, processors: processors}
}

func (l *Load) Name() string { return "cpu_load" }

func (l *Load) Produce(ctx context.Context, rec *section.Record) error {
	avgs, err := l.host.LoadAverage(ctx)
	if err != nil {
		return err
	}
	if len(avgs) != 3 {
		return fmt.Errorf("load average: got %d values, want 3: %w", len(avgs), ErrMalformed)
	}

	rec.Name = l.Name()
	rec.FullText = fmt.Sprintf("%.2f %.2f %.2f", avgs[0], avgs[1], avgs[2])
	rec.Color = loadColor(avgs, l.processors)
	return nil
}

func (l *Load) Release(rec *section.Record) { releaseText(rec) }

// loadColor returns the escalation colour for avgs on n processors, or "" when
// no threshold is exceeded. All comparisons are strict.
func loadColor(avgs []float64, n int) string {
	if n <= 0 {
		return ""
	}
	p := float64(n)
	if avgs[0] > 2*p+1 || avgs[1] > 2*p || avgs[2] > p+1 {
		return ColorCritical
	}
	if avgs[0] > p+1 || avgs[1] > p || avgs[2] > p-1 {
		return ColorWarning
	}
	return ""
}
