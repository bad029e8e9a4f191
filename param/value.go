package param

import (
	"fmt"
	"slices"
	"time"

	"github.com/joshuapare/paramkit/pkg/types"
)

// Value is the closed tagged union holding one parameter value of any kind.
// Exactly one payload field is meaningful, selected by kind. Values are plain
// data: copying one copies the payload (the string-list slice is duplicated
// by the descriptor on every boundary crossing, so aliasing never leaks).
type Value struct {
	kind types.Kind

	b    bool
	i    int64 // Int value or Combo index
	f    float64
	s    string // String family: String, Password, FilePath, DirPath, Variant
	list []string
	col  types.Color
	font types.FontSpec
	date types.Date
	tod  types.TimeOfDay
	ts   time.Time
	pt   types.Point
	sz   types.Size
	rc   types.Rect
	rg   types.Range
}

// storageClass groups kinds that share a payload representation. Retagging a
// value is allowed only within one class.
type storageClass int

const (
	classBool storageClass = iota
	classInt
	classReal
	classText
	classStringList
	classColor
	classFont
	classDate
	classTime
	classDateTime
	classPoint
	classSize
	classRect
	classRange
)

func classOf(k types.Kind) storageClass {
	switch k {
	case types.KindBool:
		return classBool
	case types.KindInt, types.KindCombo:
		return classInt
	case types.KindFloat, types.KindDouble:
		return classReal
	case types.KindString, types.KindPassword, types.KindFilePath, types.KindDirPath, types.KindVariant:
		return classText
	case types.KindStringList:
		return classStringList
	case types.KindColor:
		return classColor
	case types.KindFont:
		return classFont
	case types.KindDate:
		return classDate
	case types.KindTime:
		return classTime
	case types.KindDateTime:
		return classDateTime
	case types.KindPoint:
		return classPoint
	case types.KindSize:
		return classSize
	case types.KindRect:
		return classRect
	case types.KindRange:
		return classRange
	default:
		panic(fmt.Sprintf("param: unknown kind %d", uint8(k)))
	}
}

// retag returns v relabeled as kind k. The caller must have checked that both
// kinds share a storage class.
func retag(v Value, k types.Kind) Value {
	v.kind = k
	return v
}

// -----------------------------------------------------------------------------
// Constructors (one per kind)
// -----------------------------------------------------------------------------

// BoolValue wraps a bool.
func BoolValue(v bool) Value { return Value{kind: types.KindBool, b: v} }

// IntValue wraps an int.
func IntValue(v int) Value { return Value{kind: types.KindInt, i: int64(v)} }

// ComboValue wraps a selected option index.
func ComboValue(index int) Value { return Value{kind: types.KindCombo, i: int64(index)} }

// FloatValue wraps a float32.
func FloatValue(v float32) Value { return Value{kind: types.KindFloat, f: float64(v)} }

// DoubleValue wraps a float64.
func DoubleValue(v float64) Value { return Value{kind: types.KindDouble, f: v} }

// StringValue wraps a string.
func StringValue(v string) Value { return Value{kind: types.KindString, s: v} }

// PasswordValue wraps a secret string.
func PasswordValue(v string) Value { return Value{kind: types.KindPassword, s: v} }

// FilePathValue wraps a file path.
func FilePathValue(v string) Value { return Value{kind: types.KindFilePath, s: v} }

// DirPathValue wraps a directory path.
func DirPathValue(v string) Value { return Value{kind: types.KindDirPath, s: v} }

// VariantValue wraps an arbitrary value as its text fallback.
func VariantValue(v any) Value {
	s, _ := v.(string)
	if _, ok := v.(string); !ok && v != nil {
		s = fmt.Sprint(v)
	}
	return Value{kind: types.KindVariant, s: s}
}

// ColorValue wraps a color.
func ColorValue(v types.Color) Value { return Value{kind: types.KindColor, col: v} }

// FontValue wraps a font descriptor.
func FontValue(v types.FontSpec) Value { return Value{kind: types.KindFont, font: v} }

// DateValue wraps a calendar date.
func DateValue(v types.Date) Value { return Value{kind: types.KindDate, date: v} }

// TimeValue wraps a wall-clock time.
func TimeValue(v types.TimeOfDay) Value { return Value{kind: types.KindTime, tod: v} }

// DateTimeValue wraps an instant.
func DateTimeValue(v time.Time) Value { return Value{kind: types.KindDateTime, ts: v} }

// PointValue wraps a point.
func PointValue(v types.Point) Value { return Value{kind: types.KindPoint, pt: v} }

// SizeValue wraps a size.
func SizeValue(v types.Size) Value { return Value{kind: types.KindSize, sz: v} }

// RectValue wraps a rectangle.
func RectValue(v types.Rect) Value { return Value{kind: types.KindRect, rc: v} }

// RangeValue wraps a [min, max] interval.
func RangeValue(v types.Range) Value { return Value{kind: types.KindRange, rg: v} }

// StringListValue wraps a list of strings. The slice is copied.
func StringListValue(v []string) Value {
	return Value{kind: types.KindStringList, list: slices.Clone(v)}
}

// -----------------------------------------------------------------------------
// Accessors
// -----------------------------------------------------------------------------

// Kind reports the value's kind tag.
func (v Value) Kind() types.Kind { return v.kind }

// Bool returns the bool payload.
func (v Value) Bool() bool { return v.b }

// Int returns the integer payload (Int value or Combo index).
func (v Value) Int() int { return int(v.i) }

// Index is an alias of Int for Combo values.
func (v Value) Index() int { return int(v.i) }

// Float32 returns the real payload narrowed to float32.
func (v Value) Float32() float32 { return float32(v.f) }

// Float64 returns the real payload.
func (v Value) Float64() float64 { return v.f }

// Text returns the string payload of the text family.
func (v Value) Text() string { return v.s }

// Strings returns a copy of the string-list payload.
func (v Value) Strings() []string { return slices.Clone(v.list) }

// Color returns the color payload.
func (v Value) Color() types.Color { return v.col }

// Font returns the font payload.
func (v Value) Font() types.FontSpec { return v.font }

// Date returns the calendar-date payload.
func (v Value) Date() types.Date { return v.date }

// TimeOfDay returns the wall-clock payload.
func (v Value) TimeOfDay() types.TimeOfDay { return v.tod }

// DateTime returns the instant payload.
func (v Value) DateTime() time.Time { return v.ts }

// Point returns the point payload.
func (v Value) Point() types.Point { return v.pt }

// Size returns the size payload.
func (v Value) Size() types.Size { return v.sz }

// Rect returns the rectangle payload.
func (v Value) Rect() types.Rect { return v.rc }

// Range returns the interval payload.
func (v Value) Range() types.Range { return v.rg }

// Equal reports whether two values have the same kind and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch classOf(v.kind) {
	case classBool:
		return v.b == o.b
	case classInt:
		return v.i == o.i
	case classReal:
		return v.f == o.f
	case classText:
		return v.s == o.s
	case classStringList:
		return slices.Equal(v.list, o.list)
	case classColor:
		return v.col == o.col
	case classFont:
		return v.font == o.font
	case classDate:
		return v.date == o.date
	case classTime:
		return v.tod == o.tod
	case classDateTime:
		return v.ts.Equal(o.ts)
	case classPoint:
		return v.pt == o.pt
	case classSize:
		return v.sz == o.sz
	case classRect:
		return v.rc == o.rc
	case classRange:
		return v.rg == o.rg
	}
	return false
}

// String renders a debug representation; persistence uses Record instead.
func (v Value) String() string {
	switch classOf(v.kind) {
	case classBool:
		return fmt.Sprintf("%s(%t)", v.kind, v.b)
	case classInt:
		return fmt.Sprintf("%s(%d)", v.kind, v.i)
	case classReal:
		return fmt.Sprintf("%s(%g)", v.kind, v.f)
	case classText:
		return fmt.Sprintf("%s(%q)", v.kind, v.s)
	case classStringList:
		return fmt.Sprintf("%s(%q)", v.kind, v.list)
	case classColor:
		return fmt.Sprintf("%s(%s)", v.kind, v.col)
	case classFont:
		return fmt.Sprintf("%s(%s)", v.kind, v.font)
	case classDate:
		return fmt.Sprintf("%s(%s)", v.kind, v.date)
	case classTime:
		return fmt.Sprintf("%s(%s)", v.kind, v.tod)
	case classDateTime:
		return fmt.Sprintf("%s(%s)", v.kind, v.ts.Format(time.RFC3339))
	case classPoint:
		return fmt.Sprintf("%s(%d,%d)", v.kind, v.pt.X, v.pt.Y)
	case classSize:
		return fmt.Sprintf("%s(%dx%d)", v.kind, v.sz.Width, v.sz.Height)
	case classRect:
		return fmt.Sprintf("%s(%d,%d %dx%d)", v.kind, v.rc.X, v.rc.Y, v.rc.Width, v.rc.Height)
	case classRange:
		return fmt.Sprintf("%s(%g..%g)", v.kind, v.rg.Min, v.rg.Max)
	}
	return v.kind.String()
}
