package section

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// block is the wire form of a Record. Field order here is the key order on
// the wire; pointer fields distinguish "unset" from zero values.
type block struct {
	Name                string `json:"name,omitempty"`
	Instance            string `json:"instance,omitempty"`
	Color               string `json:"color,omitempty"`
	FullText            string `json:"full_text,omitempty"`
	ShortText           string `json:"short_text,omitempty"`
	MinWidth            string `json:"min_width,omitempty"`
	SeparatorBlockWidth *int   `json:"separator_block_width,omitempty"`
	Urgent              *bool  `json:"urgent,omitempty"`
	Separator           *bool  `json:"separator,omitempty"`
	Align               string `json:"align,omitempty"`
	Markup              string `json:"markup,omitempty"`
}

func triState(t TriState) *bool {
	switch t {
	case Yes:
		v := true
		return &v
	case No:
		v := false
		return &v
	default:
		return nil
	}
}

func toBlock(r *Record) block {
	b := block{
		Name:      r.Name,
		Instance:  r.Instance,
		Color:     r.Color,
		FullText:  r.FullText,
		ShortText: r.ShortText,
		MinWidth:  r.MinWidth,
		Urgent:    triState(r.Urgent),
		Separator: triState(r.Separator),
		Align:     r.Align.token(),
		Markup:    r.Markup.token(),
	}
	if r.SeparatorBlockWidth >= 0 {
		w := r.SeparatorBlockWidth
		b.SeparatorBlockWidth = &w
	}
	return b
}

// Marshal serialises r as a single i3bar block object. Only set fields are
// emitted. Strings are JSON-escaped, but HTML characters are left alone so
// pango markup reaches the renderer verbatim.
func Marshal(r *Record) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(toBlock(r)); err != nil {
		return nil, fmt.Errorf("encode block %q: %w", r.Name, err)
	}
	// Encode terminates every value with a newline.
	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
}
