package types

import (
	"testing"
	"time"
)

// Test_ParseColor tests the color wire format.
func Test_ParseColor(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Color
		wantErr bool
	}{
		{"black", "#000000", Color{}, false},
		{"white", "#ffffff", Color{R: 255, G: 255, B: 255}, false},
		{"mixed case", "#AaBbCc", Color{R: 0xaa, G: 0xbb, B: 0xcc}, false},
		{"missing hash", "336699", Color{}, true},
		{"too short", "#fff", Color{}, true},
		{"not hex", "#zzzzzz", Color{}, true},
		{"empty", "", Color{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func Test_ColorString(t *testing.T) {
	c := Color{R: 0x33, G: 0x66, B: 0x99}
	if got := c.String(); got != "#336699" {
		t.Errorf("String() = %q, want %q", got, "#336699")
	}
	back, err := ParseColor(c.String())
	if err != nil {
		t.Fatalf("round-trip parse failed: %v", err)
	}
	if back != c {
		t.Errorf("round-trip = %v, want %v", back, c)
	}
}

// Test_ParseFontSpec tests the font descriptor wire format.
func Test_ParseFontSpec(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    FontSpec
		wantErr bool
	}{
		{"plain", "Arial,10", FontSpec{Family: "Arial", PointSize: 10}, false},
		{"bold", "Arial,12,bold", FontSpec{Family: "Arial", PointSize: 12, Bold: true}, false},
		{"bold italic", "Courier New,9,bold,italic", FontSpec{Family: "Courier New", PointSize: 9, Bold: true, Italic: true}, false},
		{"unknown flag ignored", "Arial,10,underline", FontSpec{Family: "Arial", PointSize: 10}, false},
		{"spaces around size", "Arial, 10", FontSpec{Family: "Arial", PointSize: 10}, false},
		{"no size", "Arial", FontSpec{}, true},
		{"empty family", ",10", FontSpec{}, true},
		{"bad size", "Arial,big", FontSpec{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFontSpec(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFontSpec(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseFontSpec(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func Test_FontSpecString(t *testing.T) {
	f := FontSpec{Family: "Helvetica", PointSize: 11, Bold: true}
	if got := f.String(); got != "Helvetica,11,bold" {
		t.Errorf("String() = %q, want %q", got, "Helvetica,11,bold")
	}
}

// Test_ParseDate tests the ISO-8601 date wire format.
func Test_ParseDate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Date
		wantErr bool
	}{
		{"valid", "2026-03-01", Date{Year: 2026, Month: time.March, Day: 1}, false},
		{"leap day", "2024-02-29", Date{Year: 2024, Month: time.February, Day: 29}, false},
		{"not a leap day", "2023-02-29", Date{}, true},
		{"wrong layout", "01/03/2026", Date{}, true},
		{"empty", "", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDate(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseDate(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

// Test_ParseTimeOfDay tests the wall-clock time wire format.
func Test_ParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{"valid", "09:30:00", TimeOfDay{Hour: 9, Minute: 30}, false},
		{"last second", "23:59:59", TimeOfDay{Hour: 23, Minute: 59, Second: 59}, false},
		{"hour out of range", "24:00:00", TimeOfDay{}, true},
		{"missing seconds", "09:30", TimeOfDay{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTimeOfDay(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseTimeOfDay(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func Test_DateString(t *testing.T) {
	d := Date{Year: 7, Month: time.January, Day: 2}
	if got := d.String(); got != "0007-01-02" {
		t.Errorf("String() = %q, want zero-padded %q", got, "0007-01-02")
	}
}
