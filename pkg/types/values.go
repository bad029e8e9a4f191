package types

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Value structs for the composite kinds. All of them round-trip through their
// String/Parse pair, which is also the wire encoding used by persistence.

// -----------------------------------------------------------------------------
// Color
// -----------------------------------------------------------------------------

// Color is an opaque RGB color. The textual form is "#rrggbb".
type Color struct {
	R, G, B uint8
}

// String formats the color as "#rrggbb" (lowercase hex).
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseColor parses "#RRGGBB" (case-insensitive hex digits).
func ParseColor(s string) (Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return Color{}, &Error{Kind: ErrKindValue, Msg: fmt.Sprintf("invalid color %q", s)}
	}
	n, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return Color{}, &Error{Kind: ErrKindValue, Msg: fmt.Sprintf("invalid color %q", s), Err: err}
	}
	return Color{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n)}, nil
}

// -----------------------------------------------------------------------------
// Font
// -----------------------------------------------------------------------------

// FontSpec describes a font request: family, point size and style flags.
// The textual form is "Family,points[,bold][,italic]".
type FontSpec struct {
	Family    string
	PointSize int
	Bold      bool
	Italic    bool
}

// String formats the font descriptor, e.g. "Arial,10" or "Arial,12,bold,italic".
func (f FontSpec) String() string {
	var sb strings.Builder
	sb.WriteString(f.Family)
	sb.WriteByte(',')
	sb.WriteString(strconv.Itoa(f.PointSize))
	if f.Bold {
		sb.WriteString(",bold")
	}
	if f.Italic {
		sb.WriteString(",italic")
	}
	return sb.String()
}

// ParseFontSpec parses the descriptor produced by FontSpec.String.
// Unknown style flags are ignored.
func ParseFontSpec(s string) (FontSpec, error) {
	parts := strings.Split(s, ",")
	if len(parts) < 2 || parts[0] == "" {
		return FontSpec{}, &Error{Kind: ErrKindValue, Msg: fmt.Sprintf("invalid font descriptor %q", s)}
	}
	points, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return FontSpec{}, &Error{Kind: ErrKindValue, Msg: fmt.Sprintf("invalid font size in %q", s), Err: err}
	}
	f := FontSpec{Family: parts[0], PointSize: points}
	for _, flag := range parts[2:] {
		switch strings.TrimSpace(strings.ToLower(flag)) {
		case "bold":
			f.Bold = true
		case "italic":
			f.Italic = true
		}
	}
	return f, nil
}

// -----------------------------------------------------------------------------
// Calendar date and time of day
// -----------------------------------------------------------------------------

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

// Date is a calendar date without a time zone. The textual form is ISO-8601
// ("2006-01-02").
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf truncates a time.Time to its calendar date.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// String formats the date as ISO-8601.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// ParseDate parses an ISO-8601 calendar date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, &Error{Kind: ErrKindValue, Msg: fmt.Sprintf("invalid date %q", s), Err: err}
	}
	return DateOf(t), nil
}

// TimeOfDay is a wall-clock time without a date. The textual form is ISO-8601
// ("15:04:05").
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// TimeOfDayOf truncates a time.Time to its wall-clock time.
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}
}

// String formats the time as ISO-8601.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// ParseTimeOfDay parses an ISO-8601 wall-clock time.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return TimeOfDay{}, &Error{Kind: ErrKindValue, Msg: fmt.Sprintf("invalid time %q", s), Err: err}
	}
	return TimeOfDayOf(t), nil
}

// -----------------------------------------------------------------------------
// Geometry
// -----------------------------------------------------------------------------

// Point is an integer 2D coordinate.
type Point struct {
	X, Y int
}

// Size is an integer width/height pair.
type Size struct {
	Width, Height int
}

// Rect is an integer rectangle anchored at (X, Y).
type Rect struct {
	X, Y          int
	Width, Height int
}

// Range is a double-precision [Min, Max] interval.
type Range struct {
	Min, Max float64
}
