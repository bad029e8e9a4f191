package param

import (
	"testing"
	"time"

	"github.com/joshuapare/paramkit/pkg/types"
)

func attrOf(t *testing.T, rec Record, key string) string {
	t.Helper()
	v, ok := rec.attr(key)
	if !ok {
		t.Fatalf("record %q missing attribute %q", rec.Name, key)
	}
	return v
}

// Test_SnapshotAttributes pins the wire form of every kind.
func Test_SnapshotAttributes(t *testing.T) {
	deadline := time.Date(2026, time.March, 1, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		p     *Param
		attrs map[string]string
	}{
		{"bool", FromValue("B", BoolValue(true)), map[string]string{AttrValue: "true"}},
		{"int", FromValue("Answer", IntValue(42)), map[string]string{AttrValue: "42"}},
		{"combo", FromValue("C", ComboValue(2)), map[string]string{AttrIndex: "2"}},
		{"float fixed precision", FromValue("F", FloatValue(0.25)), map[string]string{AttrValue: "0.250000"}},
		{"double shortest form", FromValue("D", DoubleValue(3.14159265358979)), map[string]string{AttrValue: "3.14159265358979"}},
		{"string", FromValue("S", StringValue("hello")), map[string]string{AttrValue: "hello"}},
		{"password plain text", FromValue("P", PasswordValue("secret")), map[string]string{AttrValue: "secret"}},
		{"file path", FromValue("FP", FilePathValue("/tmp/x")), map[string]string{AttrPath: "/tmp/x"}},
		{"dir path", FromValue("DP", DirPathValue("/tmp")), map[string]string{AttrPath: "/tmp"}},
		{"color", FromValue("Col", ColorValue(types.Color{R: 0x33, G: 0x66, B: 0x99})), map[string]string{AttrValue: "#336699"}},
		{"font", FromValue("Fnt", FontValue(types.FontSpec{Family: "Arial", PointSize: 10, Bold: true})), map[string]string{AttrValue: "Arial,10,bold"}},
		{"date", FromValue("Dt", DateValue(types.Date{Year: 2026, Month: time.March, Day: 1})), map[string]string{AttrValue: "2026-03-01"}},
		{"time", FromValue("T", TimeValue(types.TimeOfDay{Hour: 9, Minute: 30})), map[string]string{AttrValue: "09:30:00"}},
		{"datetime", FromValue("TS", DateTimeValue(deadline)), map[string]string{AttrValue: "2026-03-01T09:30:00Z"}},
		{"point", FromValue("Pt", PointValue(types.Point{X: 3, Y: -4})), map[string]string{AttrX: "3", AttrY: "-4"}},
		{"size", FromValue("Sz", SizeValue(types.Size{Width: 640, Height: 480})), map[string]string{AttrWidth: "640", AttrHeight: "480"}},
		{"rect", FromValue("Rc", RectValue(types.Rect{X: 1, Y: 2, Width: 3, Height: 4})), map[string]string{AttrX: "1", AttrY: "2", AttrWidth: "3", AttrHeight: "4"}},
		{"range", FromValue("Rg", RangeValue(types.Range{Min: 0.5, Max: 2})), map[string]string{AttrMin: "0.5", AttrMax: "2"}},
		{"string list", FromValue("L", StringListValue([]string{"a", "b", "c"})), map[string]string{AttrValue: "a,b,c"}},
		{"variant", FromValue("V", VariantValue(7)), map[string]string{AttrValue: "7"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := tt.p.Snapshot()
			if len(rec.Attrs) != len(tt.attrs) {
				t.Fatalf("got %d attributes, want %d: %v", len(rec.Attrs), len(tt.attrs), rec.Attrs)
			}
			for key, want := range tt.attrs {
				if got := attrOf(t, rec, key); got != want {
					t.Errorf("%s = %q, want %q", key, got, want)
				}
			}
		})
	}
}

// Test_SnapshotRestoreRoundTrip drives each kind through its own record.
func Test_SnapshotRestoreRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		src  Value
		zero Value
	}{
		{"B", BoolValue(true), BoolValue(false)},
		{"I", IntValue(-17), IntValue(0)},
		{"C", ComboValue(5), ComboValue(0)},
		{"D", DoubleValue(2.5), DoubleValue(0)},
		{"S", StringValue("text with spaces"), StringValue("")},
		{"Col", ColorValue(types.Color{R: 1, G: 2, B: 3}), ColorValue(types.Color{})},
		{"Rg", RangeValue(types.Range{Min: -1.5, Max: 1.5}), RangeValue(types.Range{})},
		{"L", StringListValue([]string{"x", "y"}), StringListValue(nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := FromValue(tt.name, tt.src).Snapshot()
			dst := FromValue(tt.name, tt.zero)
			dst.Restore(rec)
			if !dst.Get().Equal(tt.src) {
				t.Errorf("round-trip = %v, want %v", dst.Get(), tt.src)
			}
		})
	}
}

func Test_RestoreFloatPrecision(t *testing.T) {
	p := FromValue("F", FloatValue(1.0/3.0))
	rec := p.Snapshot()
	if got := attrOf(t, rec, AttrValue); got != "0.333333" {
		t.Fatalf("snapshot = %q, want six fraction digits", got)
	}

	q := FromValue("F", FloatValue(0))
	q.Restore(rec)
	if q.Get().Float32() != 0.333333 {
		t.Errorf("restored = %v, want the six-digit approximation", q.Get().Float32())
	}
}

// Test_RestoreTolerance verifies missing and malformed input leaves the
// shadow value untouched, silently.
func Test_RestoreTolerance(t *testing.T) {
	tests := []struct {
		name string
		p    *Param
		rec  Record
	}{
		{"missing value", FromValue("I", IntValue(7)), Record{Name: "I"}},
		{"malformed int", FromValue("I", IntValue(7)), Record{Name: "I", Attrs: []Attr{{AttrValue, "seven"}}}},
		{"bool not exact", FromValue("B", BoolValue(true)), Record{Name: "B", Attrs: []Attr{{AttrValue, "TRUE"}}}},
		{"bool numeric form", FromValue("B", BoolValue(true)), Record{Name: "B", Attrs: []Attr{{AttrValue, "1"}}}},
		{"malformed color", FromValue("Col", ColorValue(types.Color{R: 9})), Record{Name: "Col", Attrs: []Attr{{AttrValue, "red"}}}},
		{"rect missing one side", FromValue("Rc", RectValue(types.Rect{X: 1})), Record{Name: "Rc", Attrs: []Attr{{AttrX, "5"}, {AttrY, "6"}, {AttrWidth, "7"}}}},
		{"range missing max", FromValue("Rg", RangeValue(types.Range{Min: 1, Max: 2})), Record{Name: "Rg", Attrs: []Attr{{AttrMin, "0"}}}},
		{"wrong attribute key", FromValue("FP", FilePathValue("/keep")), Record{Name: "FP", Attrs: []Attr{{AttrValue, "/clobber"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.p.Get()
			tt.p.Restore(tt.rec)
			if !tt.p.Get().Equal(before) {
				t.Errorf("shadow changed to %v, want untouched %v", tt.p.Get(), before)
			}
		})
	}
}

// Test_RestoreComboNoBoundsCheck verifies a persisted index is applied even
// when it exceeds the option count.
func Test_RestoreComboNoBoundsCheck(t *testing.T) {
	p := FromValue("C", ComboValue(0))
	p.SetOptions([]string{"a", "b"})
	p.Restore(Record{Name: "C", Attrs: []Attr{{AttrIndex, "9"}}})
	if p.Get().Index() != 9 {
		t.Errorf("index = %d, want 9", p.Get().Index())
	}
}

func Test_SplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{"", nil},
		{",,", nil},
		{"a,,b", []string{"a", "b"}},
		{",trailing,", []string{"trailing"}},
	}
	for _, tt := range tests {
		got := SplitList(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("SplitList(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("SplitList(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}
