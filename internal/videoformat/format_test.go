package videoformat

import "testing"

func TestFourCCFromString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want FourCC
	}{
		{name: "canonical", in: "YUY2", want: PixFmtYUY2},
		{name: "lowercase", in: "rgb24", want: PixFmtRGB24},
		{name: "whitespace", in: "  NV12 ", want: PixFmtNV12},
		{name: "unknown", in: "FOOB", want: FourCCUnknown},
		{name: "empty", in: "", want: FourCCUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FourCCFromString(tt.in); got != tt.want {
				t.Errorf("FourCCFromString(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFourCCString_RoundTrip(t *testing.T) {
	for _, fcc := range OutputFormats() {
		name := fcc.String()
		if name == "" {
			t.Fatalf("supported format %d has no canonical name", fcc)
		}
		if got := FourCCFromString(name); got != fcc {
			t.Errorf("round trip of %q: got %v, want %v", name, got, fcc)
		}
	}
}

func TestFourCCString_Unknown(t *testing.T) {
	if got := FourCCUnknown.String(); got != "" {
		t.Errorf("unknown fourcc string = %q, want empty", got)
	}
}

func TestParseFraction(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Fraction
	}{
		{name: "rational", in: "30/1", want: Fraction{Num: 30, Den: 1}},
		{name: "whole number", in: "25", want: Fraction{Num: 25, Den: 1}},
		{name: "spaced", in: " 30 / 1 ", want: Fraction{Num: 30, Den: 1}},
		{name: "ntsc", in: "30000/1001", want: Fraction{Num: 30000, Den: 1001}},
		{name: "empty", in: "", want: Fraction{}},
		{name: "garbage", in: "abc", want: Fraction{}},
		{name: "bad denominator", in: "30/x", want: Fraction{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseFraction(tt.in); got != tt.want {
				t.Errorf("ParseFraction(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFraction_String_RoundTrip(t *testing.T) {
	f := Fraction{Num: 30000, Den: 1001}
	if got := ParseFraction(f.String()); got != f {
		t.Errorf("round trip = %v, want %v", got, f)
	}
}

func TestFormat_FrameSize(t *testing.T) {
	tests := []struct {
		fcc  FourCC
		want int
	}{
		{PixFmtRGB32, 640 * 480 * 4},
		{PixFmtYUY2, 640 * 480 * 2},
		{PixFmtNV12, 640 * 480 * 3 / 2},
		{FourCCUnknown, 0},
	}
	for _, tt := range tests {
		f := New(tt.fcc, 640, 480, Fraction{Num: 30, Den: 1})
		if got := f.FrameSize(); got != tt.want {
			t.Errorf("FrameSize(%v) = %d, want %d", tt.fcc, got, tt.want)
		}
	}
}

func TestFormat_IsValid(t *testing.T) {
	valid := New(PixFmtYUY2, 640, 480, Fraction{Num: 30, Den: 1})

	tests := []struct {
		name   string
		mutate func(f Format) Format
		want   bool
	}{
		{name: "valid", mutate: func(f Format) Format { return f }, want: true},
		{name: "unknown fourcc", mutate: func(f Format) Format { f.FourCC = FourCCUnknown; return f }, want: false},
		{name: "zero width", mutate: func(f Format) Format { f.Width = 0; return f }, want: false},
		{name: "negative height", mutate: func(f Format) Format { f.Height = -1; return f }, want: false},
		{name: "zero rate", mutate: func(f Format) Format { f.MinFrameRate = Fraction{}; return f }, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mutate(valid).IsValid(); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}
