package raster

import (
	"image/color"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#6b7280", color.NRGBA{0x6b, 0x72, 0x80, 0xff}},
		{"#ffffff", White},
		{"#000", Black},
		{"#f0a", color.NRGBA{0xff, 0x00, 0xaa, 0xff}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Hex(tt.in)
			if err != nil {
				t.Fatalf("Hex(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Hex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHexRejectsGarbage(t *testing.T) {
	if _, err := Hex("not-a-colour"); err == nil {
		t.Fatal("expected error")
	}
}

func TestWithAlpha(t *testing.T) {
	tests := []struct {
		opacity float64
		want    uint8
	}{
		{0, 0},
		{0.5, 128},
		{0.8, 204},
		{1, 255},
		{1.7, 255},
		{-0.2, 0},
	}
	base := MustHex("#ff4500")
	for _, tt := range tests {
		got := WithAlpha(base, tt.opacity)
		if got.A != tt.want {
			t.Errorf("WithAlpha(%v).A = %d, want %d", tt.opacity, got.A, tt.want)
		}
		if got.R != base.R || got.G != base.G || got.B != base.B {
			t.Errorf("WithAlpha(%v) changed the colour: %v", tt.opacity, got)
		}
	}
}

func TestMustHexPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	MustHex("#zzzzzz")
}
