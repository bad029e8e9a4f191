package bind

import (
	"fmt"
	"reflect"

	"github.com/joshuapare/paramkit/pkg/types"
)

// structHost adapts a pointer-to-struct to the types.Host capability set.
// Exported fields are the properties, in declaration order; zero-argument
// single-result methods double as the read-only metadata side-channel probed
// by name (FrameRateMin, FrameRateTooltip, ...).
type structHost struct {
	ptr  reflect.Value // pointer, for method lookup
	elem reflect.Value // addressable struct value
	typ  reflect.Type  // struct type
}

// NewStructHost wraps a non-nil pointer to struct.
func NewStructHost(obj any) (types.Host, error) {
	v := reflect.ValueOf(obj)
	if !v.IsValid() || v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return nil, &types.Error{Kind: types.ErrKindValue, Msg: "bind target must be a non-nil pointer to struct"}
	}
	return &structHost{ptr: v, elem: v.Elem(), typ: v.Elem().Type()}, nil
}

func (h *structHost) Properties() []types.PropertyMeta {
	out := make([]types.PropertyMeta, 0, h.typ.NumField())
	for i := 0; i < h.typ.NumField(); i++ {
		f := h.typ.Field(i)
		if !f.IsExported() || f.Anonymous {
			continue
		}
		out = append(out, types.PropertyMeta{
			Name:     f.Name,
			Type:     f.Type,
			Writable: h.elem.Field(i).CanSet(),
		})
	}
	return out
}

func (h *structHost) Get(name string) (any, bool) {
	if f, ok := h.typ.FieldByName(name); ok && f.IsExported() && !f.Anonymous {
		return h.elem.FieldByIndex(f.Index).Interface(), true
	}
	// Fall back to a zero-argument, single-result method: the read-only
	// metadata side-channel.
	m := h.ptr.MethodByName(name)
	if !m.IsValid() {
		return nil, false
	}
	mt := m.Type()
	if mt.NumIn() != 0 || mt.NumOut() != 1 {
		return nil, false
	}
	return m.Call(nil)[0].Interface(), true
}

func (h *structHost) Set(name string, v any) error {
	f, ok := h.typ.FieldByName(name)
	if !ok || !f.IsExported() || f.Anonymous {
		return &types.Error{Kind: types.ErrKindValue, Msg: fmt.Sprintf("no property %q", name)}
	}
	fv := h.elem.FieldByIndex(f.Index)
	if !fv.CanSet() {
		return &types.Error{Kind: types.ErrKindState, Msg: fmt.Sprintf("property %q is read-only", name)}
	}
	rv := reflect.ValueOf(v)
	switch {
	case v == nil:
		fv.Set(reflect.Zero(f.Type))
	case rv.Type().AssignableTo(f.Type):
		fv.Set(rv)
	case rv.Type().ConvertibleTo(f.Type):
		fv.Set(rv.Convert(f.Type))
	default:
		return &types.Error{
			Kind: types.ErrKindValue,
			Msg:  fmt.Sprintf("cannot assign %s to property %q (%s)", rv.Type(), name, f.Type),
		}
	}
	return nil
}
