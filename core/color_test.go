package core

import (
	"image/color"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"5fcde4", color.RGBA{0x5f, 0xcd, 0xe4, 0xff}, false},
		{"#5fcde4", color.RGBA{0x5f, 0xcd, 0xe4, 0xff}, false},
		{"00000080", color.RGBA{0, 0, 0, 0x80}, false},
		{"5fcde", color.RGBA{}, true},
		{"zzzzzz", color.RGBA{}, true},
		{"", color.RGBA{}, true},
	}

	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestMustParseHexPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic on malformed color constant")
		}
	}()
	MustParseHex("not-a-color")
}

func TestRGBAfPremultiplies(t *testing.T) {
	got := RGBAf(0, 0, 0, 0.5)
	if got.A != 128 || got.R != 0 {
		t.Errorf("Expected half-transparent black, got %v", got)
	}

	got = RGBAf(1, 1, 1, 0.5)
	if got.R != 128 || got.A != 128 {
		t.Errorf("Expected premultiplied white at 128, got %v", got)
	}
}
