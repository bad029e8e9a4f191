package param

import (
	"strconv"
	"strings"
	"time"

	"github.com/joshuapare/paramkit/pkg/types"
)

// Persistence attribute keys. One element per descriptor, tag = Name,
// attributes per kind.
const (
	AttrValue  = "value"
	AttrIndex  = "index"
	AttrPath   = "path"
	AttrX      = "x"
	AttrY      = "y"
	AttrWidth  = "width"
	AttrHeight = "height"
	AttrMin    = "min"
	AttrMax    = "max"

	// FloatFractionDigits is the fixed precision Float values are saved with.
	FloatFractionDigits = 6

	// ListSeparator joins and splits StringList values.
	ListSeparator = ","

	boolTrue  = "true"
	boolFalse = "false"
)

// Attr is a single serialized attribute.
type Attr struct {
	Key   string
	Value string
}

// Record is the serialized form of one descriptor: an element tagged with the
// descriptor name carrying kind-specific attributes in a deterministic order.
type Record struct {
	Name  string
	Attrs []Attr
}

func (r Record) attr(key string) (string, bool) {
	for _, a := range r.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// Snapshot serializes the shadow value. The output is deterministic for a
// given shadow value.
func (p *Param) Snapshot() Record {
	rec := Record{Name: p.name}
	put := func(key, val string) { rec.Attrs = append(rec.Attrs, Attr{Key: key, Value: val}) }

	switch p.kind {
	case types.KindBool:
		if p.shadow.Bool() {
			put(AttrValue, boolTrue)
		} else {
			put(AttrValue, boolFalse)
		}
	case types.KindInt:
		put(AttrValue, strconv.Itoa(p.shadow.Int()))
	case types.KindCombo:
		put(AttrIndex, strconv.Itoa(p.shadow.Index()))
	case types.KindFloat:
		put(AttrValue, strconv.FormatFloat(p.shadow.Float64(), 'f', FloatFractionDigits, 64))
	case types.KindDouble:
		put(AttrValue, strconv.FormatFloat(p.shadow.Float64(), 'g', -1, 64))
	case types.KindString, types.KindPassword, types.KindVariant:
		put(AttrValue, p.shadow.Text())
	case types.KindFilePath, types.KindDirPath:
		put(AttrPath, p.shadow.Text())
	case types.KindColor:
		put(AttrValue, p.shadow.Color().String())
	case types.KindFont:
		put(AttrValue, p.shadow.Font().String())
	case types.KindDate:
		put(AttrValue, p.shadow.Date().String())
	case types.KindTime:
		put(AttrValue, p.shadow.TimeOfDay().String())
	case types.KindDateTime:
		put(AttrValue, p.shadow.DateTime().Format(time.RFC3339))
	case types.KindPoint:
		pt := p.shadow.Point()
		put(AttrX, strconv.Itoa(pt.X))
		put(AttrY, strconv.Itoa(pt.Y))
	case types.KindSize:
		sz := p.shadow.Size()
		put(AttrWidth, strconv.Itoa(sz.Width))
		put(AttrHeight, strconv.Itoa(sz.Height))
	case types.KindRect:
		rc := p.shadow.Rect()
		put(AttrX, strconv.Itoa(rc.X))
		put(AttrY, strconv.Itoa(rc.Y))
		put(AttrWidth, strconv.Itoa(rc.Width))
		put(AttrHeight, strconv.Itoa(rc.Height))
	case types.KindRange:
		rg := p.shadow.Range()
		put(AttrMin, strconv.FormatFloat(rg.Min, 'g', -1, 64))
		put(AttrMax, strconv.FormatFloat(rg.Max, 'g', -1, 64))
	case types.KindStringList:
		put(AttrValue, strings.Join(p.shadow.Strings(), ListSeparator))
	}
	return rec
}

// Restore overwrites the shadow value from a persisted record if the expected
// attributes are present and parse cleanly. Missing or malformed input leaves
// the shadow value unchanged; persistence is best-effort by contract, so no
// error is reported.
func (p *Param) Restore(rec Record) {
	switch p.kind {
	case types.KindBool:
		// Exact string match only; anything else is ignored.
		switch v, _ := rec.attr(AttrValue); v {
		case boolTrue:
			p.shadow = BoolValue(true)
		case boolFalse:
			p.shadow = BoolValue(false)
		}
	case types.KindInt:
		if v, ok := rec.attr(AttrValue); ok {
			if n, err := strconv.Atoi(v); err == nil {
				p.shadow = IntValue(n)
			}
		}
	case types.KindCombo:
		// The persisted index is applied without re-checking option bounds.
		if v, ok := rec.attr(AttrIndex); ok {
			if n, err := strconv.Atoi(v); err == nil {
				p.shadow = ComboValue(n)
			}
		}
	case types.KindFloat:
		if v, ok := rec.attr(AttrValue); ok {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				p.shadow = FloatValue(float32(f))
			}
		}
	case types.KindDouble:
		if v, ok := rec.attr(AttrValue); ok {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				p.shadow = DoubleValue(f)
			}
		}
	case types.KindString, types.KindPassword, types.KindVariant:
		if v, ok := rec.attr(AttrValue); ok {
			p.shadow = retag(StringValue(v), p.kind)
		}
	case types.KindFilePath, types.KindDirPath:
		if v, ok := rec.attr(AttrPath); ok {
			p.shadow = retag(StringValue(v), p.kind)
		}
	case types.KindColor:
		if v, ok := rec.attr(AttrValue); ok {
			if c, err := types.ParseColor(v); err == nil {
				p.shadow = ColorValue(c)
			}
		}
	case types.KindFont:
		if v, ok := rec.attr(AttrValue); ok {
			if f, err := types.ParseFontSpec(v); err == nil {
				p.shadow = FontValue(f)
			}
		}
	case types.KindDate:
		if v, ok := rec.attr(AttrValue); ok {
			if d, err := types.ParseDate(v); err == nil {
				p.shadow = DateValue(d)
			}
		}
	case types.KindTime:
		if v, ok := rec.attr(AttrValue); ok {
			if t, err := types.ParseTimeOfDay(v); err == nil {
				p.shadow = TimeValue(t)
			}
		}
	case types.KindDateTime:
		if v, ok := rec.attr(AttrValue); ok {
			if ts, err := time.Parse(time.RFC3339, v); err == nil {
				p.shadow = DateTimeValue(ts)
			}
		}
	case types.KindPoint:
		x, okX := recInt(rec, AttrX)
		y, okY := recInt(rec, AttrY)
		if okX && okY {
			p.shadow = PointValue(types.Point{X: x, Y: y})
		}
	case types.KindSize:
		w, okW := recInt(rec, AttrWidth)
		h, okH := recInt(rec, AttrHeight)
		if okW && okH {
			p.shadow = SizeValue(types.Size{Width: w, Height: h})
		}
	case types.KindRect:
		x, okX := recInt(rec, AttrX)
		y, okY := recInt(rec, AttrY)
		w, okW := recInt(rec, AttrWidth)
		h, okH := recInt(rec, AttrHeight)
		if okX && okY && okW && okH {
			p.shadow = RectValue(types.Rect{X: x, Y: y, Width: w, Height: h})
		}
	case types.KindRange:
		lo, okLo := recFloat(rec, AttrMin)
		hi, okHi := recFloat(rec, AttrMax)
		if okLo && okHi {
			p.shadow = RangeValue(types.Range{Min: lo, Max: hi})
		}
	case types.KindStringList:
		if v, ok := rec.attr(AttrValue); ok {
			p.shadow = StringListValue(SplitList(v))
		}
	}
}

// SplitList splits a comma-joined list, dropping empty segments.
func SplitList(s string) []string {
	parts := strings.Split(s, ListSeparator)
	out := parts[:0]
	for _, part := range parts {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func recInt(rec Record, key string) (int, bool) {
	v, ok := rec.attr(key)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

func recFloat(rec Record, key string) (float64, bool) {
	v, ok := rec.attr(key)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
