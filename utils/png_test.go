package utils

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func TestEncodePNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.SetRGBA(1, 1, color.RGBA{212, 175, 55, 255})

	b, sum, err := EncodePNG(img)
	if err != nil {
		t.Fatal(err)
	}
	if len(sum) != 64 {
		t.Errorf("sum length = %d, want 64 hex chars", len(sum))
	}
	if sum != Sum(b) {
		t.Errorf("sum %s does not match bytes", sum)
	}

	_, again, _ := EncodePNG(img)
	if again != sum {
		t.Errorf("second encode sum = %s, want %s", again, sum)
	}

	dec, err := png.Decode(bytes.NewReader(b))
	if err != nil {
		t.Fatal(err)
	}
	if dec.Bounds() != img.Bounds() {
		t.Errorf("bounds = %v, want %v", dec.Bounds(), img.Bounds())
	}
}
