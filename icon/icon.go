// Package icon renders launcher icon variants: the standard icon, its round
// copy, and the two adaptive-icon layers.
package icon

import (
	"errors"
	"image"
	"image/color"
	"io/fs"

	"golang.org/x/image/draw"

	"iconkit/config"
)

const (
	logoScale       = 0.8
	foregroundLogo  = 0.6
	foregroundScale = 1.2
	bandStrength    = 0.3
	roundRingWidth  = 2
)

// Renderer draws with a fixed palette. Warn, when set, receives non-fatal
// logo problems; rendering always continues without the logo.
type Renderer struct {
	Palette config.Palette
	Warn    func(format string, params ...any)
}

func (r *Renderer) warnf(format string, params ...any) {
	if r.Warn != nil {
		r.Warn(format, params...)
	}
}

// RingWidth is the gold border width of a standard icon of the given size.
func RingWidth(size int) int {
	return max(2, size/48)
}

// Standard draws the light canvas with a blue fade over its top half, the
// centered logo at 80% and an inscribed gold ring.
func (r *Renderer) Standard(size int, logoPath string) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(r.Palette.Light), image.Point{}, draw.Src)

	half := size / 2
	p := r.Palette.Primary
	for y := 0; y < half; y++ {
		alpha := uint8(255 * (float64(y) / float64(half)) * bandStrength)
		band := image.NewUniform(color.NRGBA{p.R, p.G, p.B, alpha})
		draw.Draw(img, image.Rect(0, y, size, y+1), band, image.Point{}, draw.Over)
	}

	r.pasteLogo(img, logoPath, int(float64(size)*logoScale))

	bw := float64(RingWidth(size))
	ring(img, bw, bw, float64(size)-bw, float64(size)-bw, bw, r.Palette.Gold)
	return img
}

// Round copies a standard icon and adds a thin gold ring on the canvas edge.
func (r *Renderer) Round(std *image.RGBA) *image.RGBA {
	b := std.Bounds()
	img := image.NewRGBA(b)
	draw.Draw(img, b, std, b.Min, draw.Src)
	ring(img, float64(b.Min.X), float64(b.Min.Y), float64(b.Max.X), float64(b.Max.Y), roundRingWidth, r.Palette.Gold)
	return img
}

// Foreground draws the adaptive-icon foreground: a blue disc 20% wider than
// the canvas, so it still covers the layer after the launcher masks it, and
// the logo at 60%.
func (r *Renderer) Foreground(size int, logoPath string) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	d := int(float64(size) * foregroundScale)
	off := floorDiv(size-d, 2)
	radius := float64(d) / 2
	disc(img, float64(off)+radius, float64(off)+radius, radius, r.Palette.Primary)

	r.pasteLogo(img, logoPath, int(float64(size)*foregroundLogo))
	return img
}

// Background draws the opaque adaptive-icon background, a vertical gradient
// from Dark on the first row to Light on the last.
func (r *Renderer) Background(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	dark, light := r.Palette.Dark, r.Palette.Light
	for y := 0; y < size; y++ {
		var ratio float64
		if size > 1 {
			ratio = float64(y) / float64(size-1)
		}
		c := color.RGBA{
			R: lerp(dark.R, light.R, ratio),
			G: lerp(dark.G, light.G, ratio),
			B: lerp(dark.B, light.B, ratio),
			A: 255,
		}
		draw.Draw(img, image.Rect(0, y, size, y+1), image.NewUniform(c), image.Point{}, draw.Src)
	}
	return img
}

func (r *Renderer) pasteLogo(img *image.RGBA, logoPath string, edge int) {
	if logoPath == "" || edge <= 0 {
		return
	}
	logo, err := LoadLogo(logoPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			r.warnf("logo skipped: %v", err)
		}
		return
	}

	scaled := image.NewRGBA(image.Rect(0, 0, edge, edge))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), logo, logo.Bounds(), draw.Src, nil)

	off := (img.Bounds().Dx() - edge) / 2
	dr := image.Rect(off, off, off+edge, off+edge)
	draw.Draw(img, dr, scaled, image.Point{}, draw.Over)
}

func lerp(from, to uint8, ratio float64) uint8 {
	return uint8(float64(from) + (float64(to)-float64(from))*ratio)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
