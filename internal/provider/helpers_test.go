package provider

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jamesprial/i3bar-info/internal/section"
	"github.com/jamesprial/i3bar-info/internal/system"
)

// fakeHost is a scripted system.Host.
type fakeHost struct {
	loads    []float64
	loadErr  error
	procs    int
	procsErr error
	ifaces   []system.Interface
	ifaceErr error
}

func (h *fakeHost) LoadAverage(context.Context) ([]float64, error) {
	return h.loads, h.loadErr
}

func (h *fakeHost) ProcessorCount(context.Context) (int, error) {
	return h.procs, h.procsErr
}

func (h *fakeHost) Interfaces(context.Context) ([]system.Interface, error) {
	return h.ifaces, h.ifaceErr
}

// writeValue writes content to a fresh pseudo-file and returns its path.
func writeValue(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "value")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// produce runs p against a fresh record and returns it with the error.
func produce(t *testing.T, p Provider) (section.Record, error) {
	t.Helper()
	rec := section.NewRecord()
	err := p.Produce(context.Background(), &rec)
	return rec, err
}

// assertReleased checks that Release cleared every field p populated.
func assertReleased(t *testing.T, p Provider, rec section.Record) {
	t.Helper()
	p.Release(&rec)
	if rec.Name != "" || rec.FullText != "" || rec.Color != "" {
		t.Errorf("Release() left fields populated: %+v", rec)
	}
	// A second release on the cleared record must be a no-op.
	p.Release(&rec)
}
