package bar

import (
	"context"
	"errors"

	"github.com/jamesprial/i3bar-info/internal/section"
)

// fakeProvider is an instrumented provider that counts Produce and Release
// calls and returns scripted results.
type fakeProvider struct {
	name     string
	text     string
	color    string
	fail     bool
	disabled bool

	produced int
	released int
	// releasedBeforeProduce is set if Release ever runs before the matching
	// Produce of the same tick.
	releasedBeforeProduce bool
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Produce(_ context.Context, rec *section.Record) error {
	f.produced++
	if f.fail {
		// Leave a half-filled record behind to exercise Release.
		rec.Color = "#123456"
		return errors.New(f.name + " failed")
	}
	rec.Name = f.name
	rec.FullText = f.text
	rec.Color = f.color
	rec.Disabled = f.disabled
	return nil
}

func (f *fakeProvider) Release(rec *section.Record) {
	f.released++
	if f.released > f.produced {
		f.releasedBeforeProduce = true
	}
	rec.Name = ""
	rec.FullText = ""
	rec.Color = ""
}

// failingWriter fails every write after the first n bytes.
type failingWriter struct {
	n   int
	err error
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if len(p) <= w.n {
		w.n -= len(p)
		return len(p), nil
	}
	written := w.n
	w.n = 0
	return written, w.err
}
