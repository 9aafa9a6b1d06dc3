package montage

// Marker colors matching the conventional editorial set.
const (
	MarkerColorPink    = "PINK"
	MarkerColorRed     = "RED"
	MarkerColorOrange  = "ORANGE"
	MarkerColorYellow  = "YELLOW"
	MarkerColorGreen   = "GREEN"
	MarkerColorCyan    = "CYAN"
	MarkerColorBlue    = "BLUE"
	MarkerColorPurple  = "PURPLE"
	MarkerColorMagenta = "MAGENTA"
	MarkerColorBlack   = "BLACK"
	MarkerColorWhite   = "WHITE"
)

// Marker annotates a range of an item it is attached to. The engine stores
// markers in attachment order and does not interpret them.
type Marker struct {
	item
	color       string
	markedRange TimeRange
	comment     string
}

// NewMarker creates a marker over the given range with the given color.
func NewMarker(name string, markedRange TimeRange, color string) (*Marker, error) {
	if err := markedRange.Validate(); err != nil {
		return nil, err
	}
	return &Marker{
		item:        item{name: name},
		color:       color,
		markedRange: markedRange,
	}, nil
}

// NewGreenMarker creates a marker with the default green color.
func NewGreenMarker(name string, markedRange TimeRange) (*Marker, error) {
	return NewMarker(name, markedRange, MarkerColorGreen)
}

// Color returns the marker's color.
func (m *Marker) Color() string { return m.color }

// SetColor sets the marker's color.
func (m *Marker) SetColor(color string) { m.color = color }

// MarkedRange returns the range the marker annotates, in the space of the
// item it is attached to.
func (m *Marker) MarkedRange() TimeRange { return m.markedRange }

// SetMarkedRange replaces the range the marker annotates.
func (m *Marker) SetMarkedRange(r TimeRange) error {
	if err := r.Validate(); err != nil {
		return err
	}
	m.markedRange = r
	return nil
}

// Comment returns the marker's free-form comment.
func (m *Marker) Comment() string { return m.comment }

// SetComment sets the marker's free-form comment.
func (m *Marker) SetComment(comment string) { m.comment = comment }
