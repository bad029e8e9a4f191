package bind

import (
	"io"
	"log/slog"
	"reflect"
	"time"

	"github.com/joshuapare/paramkit/param"
	"github.com/joshuapare/paramkit/param/session"
	"github.com/joshuapare/paramkit/pkg/types"
)

// Options controls a bind call.
type Options struct {
	// Section is the section name for properties that carry no Category
	// metadata. Empty selects "Properties".
	Section string

	// Logger receives one warning per skipped property and per failed
	// write-back. Nil discards all output.
	Logger *slog.Logger
}

// DefaultSection is the section used when a property has no category.
const DefaultSection = "Properties"

func (o Options) withDefaults() Options {
	if o.Section == "" {
		o.Section = DefaultSection
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}

// Struct binds a pointer-to-struct's exported fields into the session. It is
// a convenience wrapper around Object with a structHost adapter.
func Struct(s *session.Session, obj any, opts Options) (*types.DiagnosticReport, error) {
	host, err := NewStructHost(obj)
	if err != nil {
		return nil, err
	}
	return Object(s, host, opts)
}

// Object enumerates the host's properties in declaration order and produces
// one descriptor per writable, mappable property:
//
//  1. Read-only properties and metadata siblings are skipped.
//  2. Metadata is probed by naming convention (Display, Tooltip, Category,
//     Min, Max, Step, EnumNames suffixes) with conventional fallbacks.
//  3. The property's type is mapped to an editor kind through a closed
//     dispatch table; unmappable types are skipped with a diagnostic, never
//     aborting the rest of the bind.
//  4. Categories resolve to sections in first-seen order.
//  5. The current property value seeds both shadow and default, and a
//     write-back into the host fires on session commit.
func Object(s *session.Session, host types.Host, opts Options) (*types.DiagnosticReport, error) {
	opts = opts.withDefaults()
	report := types.NewDiagnosticReport()

	props := host.Properties()
	writable := make(map[string]struct{}, len(props))
	for _, meta := range props {
		if meta.Writable {
			writable[meta.Name] = struct{}{}
		}
	}

	for _, meta := range props {
		if !meta.Writable || isMetadataName(meta.Name, writable) {
			continue
		}
		cur, ok := host.Get(meta.Name)
		if !ok {
			continue
		}
		info := extractInfo(host, meta.Name, cur)

		p, ok := makeParam(meta, info, cur)
		if !ok {
			report.Skipped++
			report.Add(types.Diagnostic{
				Severity: types.SevWarning,
				Property: meta.Name,
				GoType:   meta.Type.String(),
				Msg:      "unsupported property type, skipped",
			})
			opts.Logger.Warn("unsupported property type",
				"property", meta.Name, "type", meta.Type.String())
			continue
		}

		section := info.category
		if section == "" {
			section = opts.Section
		}
		if err := s.Register(section, p); err != nil {
			return report, err
		}
		p.Bind(writeBack(host, meta.Name, p.Kind(), opts.Logger))
		report.Bound++
	}

	if report.Bound > 0 {
		logger, n := opts.Logger, report.Bound
		if err := s.OnCommit(func() {
			logger.Info("bound properties updated", "count", n)
		}); err != nil {
			return report, err
		}
	}
	return report, nil
}

var (
	enumIface   = reflect.TypeOf((*types.Enum)(nil)).Elem()
	typBool     = reflect.TypeOf(false)
	typInt      = reflect.TypeOf(int(0))
	typFloat32  = reflect.TypeOf(float32(0))
	typFloat64  = reflect.TypeOf(float64(0))
	typString   = reflect.TypeOf("")
	typStrings  = reflect.TypeOf([]string(nil))
	typColor    = reflect.TypeOf(types.Color{})
	typDate     = reflect.TypeOf(types.Date{})
	typTimeOfD  = reflect.TypeOf(types.TimeOfDay{})
	typDateTime = reflect.TypeOf(time.Time{})
	typPoint    = reflect.TypeOf(types.Point{})
	typSize     = reflect.TypeOf(types.Size{})
	typRect     = reflect.TypeOf(types.Rect{})
	typAny      = reflect.TypeOf((*any)(nil)).Elem()
)

// makeParam maps a property's declared type to an editor kind and builds the
// descriptor. The dispatch table is closed: a type matching no entry reports
// ok=false and the property is skipped.
func makeParam(meta types.PropertyMeta, info propertyInfo, cur any) (*param.Param, bool) {
	var v param.Value

	switch {
	case isEnumType(meta.Type):
		v = param.ComboValue(int(reflect.ValueOf(cur).Int()))
	default:
		switch meta.Type {
		case typBool:
			v = param.BoolValue(cur.(bool))
		case typInt:
			v = param.IntValue(cur.(int))
		case typFloat32:
			v = param.FloatValue(cur.(float32))
		case typFloat64:
			v = param.DoubleValue(cur.(float64))
		case typString:
			v = param.StringValue(cur.(string))
		case typStrings:
			v = param.StringListValue(cur.([]string))
		case typColor:
			v = param.ColorValue(cur.(types.Color))
		case typDate:
			v = param.DateValue(cur.(types.Date))
		case typTimeOfD:
			v = param.TimeValue(cur.(types.TimeOfDay))
		case typDateTime:
			v = param.DateTimeValue(cur.(time.Time))
		case typPoint:
			v = param.PointValue(cur.(types.Point))
		case typSize:
			v = param.SizeValue(cur.(types.Size))
		case typRect:
			v = param.RectValue(cur.(types.Rect))
		case typAny:
			v = param.VariantValue(cur)
		default:
			return nil, false
		}
	}

	p := param.FromValue(info.name, v)
	p.SetDisplay(info.display)
	p.SetTooltip(info.tooltip)
	if len(info.enumNames) > 0 {
		p.SetOptions(info.enumNames)
	}
	switch p.Kind() {
	case types.KindInt, types.KindFloat, types.KindDouble:
		p.SetLimits(numericLimits(p.Kind(), info))
	}
	return p, true
}

func isEnumType(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
	default:
		return false
	}
	return t.Implements(enumIface) || reflect.PointerTo(t).Implements(enumIface)
}

// numericLimits resolves edit bounds from probed metadata.
//
// Quirk preserved from the probe-by-name side-channel: a metadata value of
// zero is indistinguishable from "unset". Only when Min and Max are both zero
// do the type's extremes apply; a property with only Max set implicitly gets
// Min = 0 (and vice versa). Callers needing a genuine zero bound alongside an
// open other end must state both.
func numericLimits(k types.Kind, info propertyInfo) types.Limits {
	if info.min == 0 && info.max == 0 {
		l := types.DefaultLimits(k)
		if info.step != 0 {
			l.Step = info.step
		}
		return l
	}
	step := info.step
	if step == 0 {
		step = 1
	}
	return types.Limits{Min: info.min, Max: info.max, Step: step}
}

// writeBack builds the commit-time write into the host property. Apply is
// total by contract, so a failed host write is logged and dropped rather
// than propagated.
func writeBack(host types.Host, name string, k types.Kind, logger *slog.Logger) func(param.Value) {
	return func(v param.Value) {
		var out any
		switch k {
		case types.KindBool:
			out = v.Bool()
		case types.KindInt, types.KindCombo:
			out = v.Int()
		case types.KindFloat:
			out = v.Float32()
		case types.KindDouble:
			out = v.Float64()
		case types.KindString, types.KindPassword, types.KindFilePath, types.KindDirPath, types.KindVariant:
			out = v.Text()
		case types.KindStringList:
			out = v.Strings()
		case types.KindColor:
			out = v.Color()
		case types.KindFont:
			out = v.Font()
		case types.KindDate:
			out = v.Date()
		case types.KindTime:
			out = v.TimeOfDay()
		case types.KindDateTime:
			out = v.DateTime()
		case types.KindPoint:
			out = v.Point()
		case types.KindSize:
			out = v.Size()
		case types.KindRect:
			out = v.Rect()
		case types.KindRange:
			out = v.Range()
		}
		if err := host.Set(name, out); err != nil {
			logger.Warn("property write-back failed", "property", name, "error", err)
		}
	}
}
