package param

import (
	"slices"
	"time"

	"github.com/joshuapare/paramkit/pkg/types"
)

// Param is a parameter descriptor: a stable name, a fixed kind, a shadow
// value the editing surface mutates, the default captured at construction,
// kind-dependent constraints, and an optional write-back binding.
//
// The shadow value is exclusively owned by the descriptor. Nothing outside
// the descriptor observes edits until Apply copies the shadow into the bound
// slot; Reset restores the default. Both are total and never fail.
type Param struct {
	name    string
	display string
	tooltip string
	kind    types.Kind

	shadow Value
	def    Value

	limits  types.Limits
	hints   types.InputHints
	options []string // Combo option labels

	applyFn func(Value) // nil for standalone descriptors
}

// FromValue constructs a standalone descriptor whose kind, shadow and default
// all come from v. Used by the binder and by callers that manage write-back
// themselves via Bind.
func FromValue(name string, v Value) *Param {
	return &Param{
		name:   name,
		kind:   v.Kind(),
		shadow: v,
		def:    v,
		limits: types.DefaultLimits(v.Kind()),
	}
}

// -----------------------------------------------------------------------------
// Identity & metadata
// -----------------------------------------------------------------------------

// Name returns the stable identity key used for serialization matching.
func (p *Param) Name() string { return p.name }

// Kind returns the descriptor's kind. It never changes after construction.
func (p *Param) Kind() types.Kind { return p.kind }

// Display returns the presentation label (falls back to Name when unset).
func (p *Param) Display() string {
	if p.display == "" {
		return p.name
	}
	return p.display
}

// SetDisplay overrides the presentation label.
func (p *Param) SetDisplay(s string) { p.display = s }

// Tooltip returns the help text shown by the editing surface.
func (p *Param) Tooltip() string { return p.tooltip }

// SetTooltip sets the help text.
func (p *Param) SetTooltip(s string) { p.tooltip = s }

// Limits returns the numeric edit constraints.
func (p *Param) Limits() types.Limits { return p.limits }

// SetLimits replaces the numeric edit constraints.
func (p *Param) SetLimits(l types.Limits) { p.limits = l }

// Hints returns the text-entry hints.
func (p *Param) Hints() types.InputHints { return p.hints }

// SetHints replaces the text-entry hints.
func (p *Param) SetHints(h types.InputHints) { p.hints = h }

// Options returns the Combo option labels.
func (p *Param) Options() []string { return slices.Clone(p.options) }

// SetOptions replaces the Combo option labels.
func (p *Param) SetOptions(opts []string) { p.options = slices.Clone(opts) }

// -----------------------------------------------------------------------------
// Shadow value
// -----------------------------------------------------------------------------

// Get returns the current shadow value.
func (p *Param) Get() Value { return p.shadow }

// Default returns the default captured at construction.
func (p *Param) Default() Value { return p.def }

// Set overwrites the shadow value. The value's kind must match the
// descriptor's kind, or at least share its storage class (so a StringValue
// can feed a Password descriptor); anything else is ErrKindMismatch.
func (p *Param) Set(v Value) error {
	if v.Kind() != p.kind {
		if classOf(v.Kind()) != classOf(p.kind) {
			return types.ErrKindMismatch
		}
		v = retag(v, p.kind)
	}
	p.shadow = v
	return nil
}

// Reset restores the shadow value from the default. Idempotent.
func (p *Param) Reset() { p.shadow = p.def }

// Apply copies the shadow value into the bound slot. Standalone descriptors
// (no binding) are a no-op; their owner reads the shadow directly.
func (p *Param) Apply() {
	if p.applyFn != nil {
		p.applyFn(p.shadow)
	}
}

// Bind installs a write-back target invoked by Apply. The handle does not own
// the external slot; it only references it.
func (p *Param) Bind(fn func(Value)) { p.applyFn = fn }

// Bound reports whether a write-back target is installed.
func (p *Param) Bound() bool { return p.applyFn != nil }

// -----------------------------------------------------------------------------
// Pointer-binding constructors (one per kind)
// -----------------------------------------------------------------------------
//
// Each constructor captures the pointee's current value as the shadow (the
// numeric kinds also use it as the default; the others take an explicit
// default) and installs a write-back into the pointer. A nil pointer yields a
// standalone descriptor.

// NewBool builds a Bool descriptor bound to p.
func NewBool(name string, p *bool, def bool, tip string) *Param {
	var cur bool
	if p != nil {
		cur = *p
	}
	d := FromValue(name, BoolValue(cur))
	d.def = BoolValue(def)
	d.tooltip = tip
	if p != nil {
		d.applyFn = func(v Value) { *p = v.Bool() }
	}
	return d
}

// NewInt builds an Int descriptor bound to p with edit limits.
func NewInt(name string, p *int, min, max, step int, tip string) *Param {
	var cur int
	if p != nil {
		cur = *p
	}
	d := FromValue(name, IntValue(cur))
	d.limits = types.Limits{Min: float64(min), Max: float64(max), Step: float64(step)}
	d.tooltip = tip
	if p != nil {
		d.applyFn = func(v Value) { *p = v.Int() }
	}
	return d
}

// NewFloat builds a Float descriptor bound to p with edit limits.
func NewFloat(name string, p *float32, min, max, step float32, tip string) *Param {
	var cur float32
	if p != nil {
		cur = *p
	}
	d := FromValue(name, FloatValue(cur))
	d.limits = types.Limits{Min: float64(min), Max: float64(max), Step: float64(step)}
	d.tooltip = tip
	if p != nil {
		d.applyFn = func(v Value) { *p = v.Float32() }
	}
	return d
}

// NewDouble builds a Double descriptor bound to p with edit limits.
func NewDouble(name string, p *float64, min, max, step float64, tip string) *Param {
	var cur float64
	if p != nil {
		cur = *p
	}
	d := FromValue(name, DoubleValue(cur))
	d.limits = types.Limits{Min: min, Max: max, Step: step}
	d.tooltip = tip
	if p != nil {
		d.applyFn = func(v Value) { *p = v.Float64() }
	}
	return d
}

// NewString builds a String descriptor bound to p.
func NewString(name string, p *string, def string, hints types.InputHints, tip string) *Param {
	var cur string
	if p != nil {
		cur = *p
	}
	d := FromValue(name, StringValue(cur))
	d.def = StringValue(def)
	d.hints = hints
	d.tooltip = tip
	if p != nil {
		d.applyFn = func(v Value) { *p = v.Text() }
	}
	return d
}

// NewPassword builds a Password descriptor bound to p. Hidden-text entry is
// implied.
func NewPassword(name string, p *string, def string, tip string) *Param {
	d := NewString(name, p, def, types.HintHiddenText, tip)
	d.kind = types.KindPassword
	d.shadow = retag(d.shadow, types.KindPassword)
	d.def = retag(d.def, types.KindPassword)
	return d
}

// NewCombo builds a Combo descriptor over options, bound to the selected
// index p. Unlike other kinds, the default is a caller-supplied index rather
// than the current one.
func NewCombo(name string, options []string, p *int, defIndex int, tip string) *Param {
	var cur int
	if p != nil {
		cur = *p
	}
	d := FromValue(name, ComboValue(cur))
	d.def = ComboValue(defIndex)
	d.options = slices.Clone(options)
	d.tooltip = tip
	if p != nil {
		d.applyFn = func(v Value) { *p = v.Index() }
	}
	return d
}

// NewColor builds a Color descriptor bound to p.
func NewColor(name string, p *types.Color, def types.Color, tip string) *Param {
	var cur types.Color
	if p != nil {
		cur = *p
	}
	d := FromValue(name, ColorValue(cur))
	d.def = ColorValue(def)
	d.tooltip = tip
	if p != nil {
		d.applyFn = func(v Value) { *p = v.Color() }
	}
	return d
}

// NewFont builds a Font descriptor bound to p.
func NewFont(name string, p *types.FontSpec, def types.FontSpec, tip string) *Param {
	var cur types.FontSpec
	if p != nil {
		cur = *p
	}
	d := FromValue(name, FontValue(cur))
	d.def = FontValue(def)
	d.tooltip = tip
	if p != nil {
		d.applyFn = func(v Value) { *p = v.Font() }
	}
	return d
}

// NewFilePath builds a FilePath descriptor bound to p.
func NewFilePath(name string, p *string, def string, tip string) *Param {
	d := NewString(name, p, def, types.HintNone, tip)
	d.kind = types.KindFilePath
	d.shadow = retag(d.shadow, types.KindFilePath)
	d.def = retag(d.def, types.KindFilePath)
	return d
}

// NewDirPath builds a DirPath descriptor bound to p.
func NewDirPath(name string, p *string, def string, tip string) *Param {
	d := NewString(name, p, def, types.HintNone, tip)
	d.kind = types.KindDirPath
	d.shadow = retag(d.shadow, types.KindDirPath)
	d.def = retag(d.def, types.KindDirPath)
	return d
}

// NewDate builds a Date descriptor bound to p.
func NewDate(name string, p *types.Date, def types.Date, tip string) *Param {
	var cur types.Date
	if p != nil {
		cur = *p
	}
	d := FromValue(name, DateValue(cur))
	d.def = DateValue(def)
	d.tooltip = tip
	if p != nil {
		d.applyFn = func(v Value) { *p = v.Date() }
	}
	return d
}

// NewTime builds a Time descriptor bound to p.
func NewTime(name string, p *types.TimeOfDay, def types.TimeOfDay, tip string) *Param {
	var cur types.TimeOfDay
	if p != nil {
		cur = *p
	}
	d := FromValue(name, TimeValue(cur))
	d.def = TimeValue(def)
	d.tooltip = tip
	if p != nil {
		d.applyFn = func(v Value) { *p = v.TimeOfDay() }
	}
	return d
}

// NewDateTime builds a DateTime descriptor bound to p.
func NewDateTime(name string, p *time.Time, def time.Time, tip string) *Param {
	var cur time.Time
	if p != nil {
		cur = *p
	}
	d := FromValue(name, DateTimeValue(cur))
	d.def = DateTimeValue(def)
	d.tooltip = tip
	if p != nil {
		d.applyFn = func(v Value) { *p = v.DateTime() }
	}
	return d
}

// NewPoint builds a Point descriptor bound to p.
func NewPoint(name string, p *types.Point, def types.Point, tip string) *Param {
	var cur types.Point
	if p != nil {
		cur = *p
	}
	d := FromValue(name, PointValue(cur))
	d.def = PointValue(def)
	d.tooltip = tip
	if p != nil {
		d.applyFn = func(v Value) { *p = v.Point() }
	}
	return d
}

// NewSize builds a Size descriptor bound to p.
func NewSize(name string, p *types.Size, def types.Size, tip string) *Param {
	var cur types.Size
	if p != nil {
		cur = *p
	}
	d := FromValue(name, SizeValue(cur))
	d.def = SizeValue(def)
	d.tooltip = tip
	if p != nil {
		d.applyFn = func(v Value) { *p = v.Size() }
	}
	return d
}

// NewRect builds a Rect descriptor bound to p.
func NewRect(name string, p *types.Rect, def types.Rect, tip string) *Param {
	var cur types.Rect
	if p != nil {
		cur = *p
	}
	d := FromValue(name, RectValue(cur))
	d.def = RectValue(def)
	d.tooltip = tip
	if p != nil {
		d.applyFn = func(v Value) { *p = v.Rect() }
	}
	return d
}

// NewRange builds a Range descriptor bound to p. min/max/step bound both
// endpoints in the editing surface.
func NewRange(name string, p *types.Range, min, max, step float64, def types.Range, tip string) *Param {
	var cur types.Range
	if p != nil {
		cur = *p
	}
	d := FromValue(name, RangeValue(cur))
	d.def = RangeValue(def)
	d.limits = types.Limits{Min: min, Max: max, Step: step}
	d.tooltip = tip
	if p != nil {
		d.applyFn = func(v Value) { *p = v.Range() }
	}
	return d
}

// NewStringList builds a StringList descriptor bound to p.
func NewStringList(name string, p *[]string, def []string, tip string) *Param {
	var cur []string
	if p != nil {
		cur = *p
	}
	d := FromValue(name, StringListValue(cur))
	d.def = StringListValue(def)
	d.tooltip = tip
	if p != nil {
		d.applyFn = func(v Value) { *p = v.Strings() }
	}
	return d
}

// NewVariant builds a Variant descriptor bound to p. The value is edited and
// persisted as its text fallback; Apply writes the text back as a string.
func NewVariant(name string, p *any, def any, tip string) *Param {
	var cur any
	if p != nil {
		cur = *p
	}
	d := FromValue(name, VariantValue(cur))
	d.def = VariantValue(def)
	d.tooltip = tip
	if p != nil {
		d.applyFn = func(v Value) { *p = v.Text() }
	}
	return d
}
