// Package section defines the per-block display record of the i3bar protocol
// and its JSON serialisation.
package section

// TriState is a boolean that may also be left unset. Unset values are omitted
// from the serialised block so the bar renderer applies its own default.
type TriState int

const (
	Unset TriState = iota
	Yes
	No
)

// Align is the text alignment of a block within its min_width.
type Align int

const (
	AlignDefault Align = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// Markup selects how the bar renderer interprets full_text.
type Markup int

const (
	MarkupDefault Markup = iota
	MarkupNone
	MarkupPango
)

// Record is one metric's display data for one tick.
//
// Empty strings mean "unset" for every string field. SeparatorBlockWidth uses a
// negative sentinel for "unset" because zero is a meaningful width.
type Record struct {
	Name      string
	Instance  string
	Color     string
	FullText  string
	ShortText string
	MinWidth  string

	SeparatorBlockWidth int

	Urgent    TriState
	Separator TriState
	Align     Align
	Markup    Markup

	// Disabled suppresses the record from this tick's output. The provider's
	// Release step still runs.
	Disabled bool
}

// NewRecord returns a record with every field unset.
func NewRecord() Record {
	return Record{SeparatorBlockWidth: -1}
}

// Reset returns r to the state produced by NewRecord.
func (r *Record) Reset() {
	*r = NewRecord()
}

// Present reports whether r carries something displayable.
func (r *Record) Present() bool {
	return r.Name != "" && !r.Disabled
}

func (a Align) token() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return ""
	}
}

func (m Markup) token() string {
	switch m {
	case MarkupNone:
		return "none"
	case MarkupPango:
		return "pango"
	default:
		return ""
	}
}
