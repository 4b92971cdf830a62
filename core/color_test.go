package core

import "testing"

func TestHex(t *testing.T) {
	got := Hex(0xff5522)
	want := RGB{R: 0xff, G: 0x55, B: 0x22}
	if got != want {
		t.Errorf("Hex(0xff5522) = %+v, want %+v", got, want)
	}
}

func TestScaleBounds(t *testing.T) {
	c := RGB{200, 100, 50}
	if got := c.Scale(0); got != RGBBlack {
		t.Errorf("Scale(0) = %+v, want black", got)
	}
	if got := c.Scale(2); got != c {
		t.Errorf("Scale(2) = %+v, want unchanged", got)
	}
	if got := c.Scale(0.5); got != (RGB{100, 50, 25}) {
		t.Errorf("Scale(0.5) = %+v", got)
	}
}

func TestAddClamps(t *testing.T) {
	got := RGB{200, 10, 255}.Add(RGB{100, 10, 1})
	if got != (RGB{255, 20, 255}) {
		t.Errorf("Add = %+v", got)
	}
}

func TestPremultiplied(t *testing.T) {
	c := RGB{R: 200, G: 100, B: 50}
	if got := c.Premultiplied(1); got.R != 200 || got.G != 100 || got.B != 50 || got.A != 255 {
		t.Errorf("Expected opaque colour unchanged, got %+v", got)
	}
	if got := c.Premultiplied(0); got.R != 0 || got.A != 0 {
		t.Errorf("Expected transparent black, got %+v", got)
	}
	half := c.Premultiplied(0.5)
	if half.A != 127 || half.R != 99 {
		t.Errorf("Expected channels scaled by alpha, got %+v", half)
	}
	if got := c.Premultiplied(3); got.A != 255 {
		t.Errorf("Expected alpha clamped, got %d", got.A)
	}
}
