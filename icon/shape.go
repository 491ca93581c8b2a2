package icon

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// kappa places cubic control points so four segments approximate a quarter
// ellipse each.
const kappa = 0.5522847498

// ring strokes the ellipse inscribed in (x0,y0)-(x1,y1) with the given width,
// measured inward from the box.
func ring(dst *image.RGBA, x0, y0, x1, y1, width float64, c color.RGBA) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())

	cx, cy := (x0+x1)/2-float64(b.Min.X), (y0+y1)/2-float64(b.Min.Y)
	rx, ry := (x1-x0)/2, (y1-y0)/2
	ellipse(z, cx, cy, rx, ry, false)
	if rx > width && ry > width {
		// opposite winding cuts the hole
		ellipse(z, cx, cy, rx-width, ry-width, true)
	}
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

func ellipse(z *vector.Rasterizer, cx, cy, rx, ry float64, reverse bool) {
	kx, ky := rx*kappa, ry*kappa
	f := func(v float64) float32 { return float32(v) }

	z.MoveTo(f(cx+rx), f(cy))
	if !reverse {
		z.CubeTo(f(cx+rx), f(cy+ky), f(cx+kx), f(cy+ry), f(cx), f(cy+ry))
		z.CubeTo(f(cx-kx), f(cy+ry), f(cx-rx), f(cy+ky), f(cx-rx), f(cy))
		z.CubeTo(f(cx-rx), f(cy-ky), f(cx-kx), f(cy-ry), f(cx), f(cy-ry))
		z.CubeTo(f(cx+kx), f(cy-ry), f(cx+rx), f(cy-ky), f(cx+rx), f(cy))
	} else {
		z.CubeTo(f(cx+rx), f(cy-ky), f(cx+kx), f(cy-ry), f(cx), f(cy-ry))
		z.CubeTo(f(cx-kx), f(cy-ry), f(cx-rx), f(cy-ky), f(cx-rx), f(cy))
		z.CubeTo(f(cx-rx), f(cy+ky), f(cx-kx), f(cy+ry), f(cx), f(cy+ry))
		z.CubeTo(f(cx+kx), f(cy+ry), f(cx+rx), f(cy+ky), f(cx+rx), f(cy))
	}
	z.ClosePath()
}

// disc fills a circle that may extend past the canvas. Edge pixels are
// antialiased by 4x4 supersampling.
func disc(dst *image.RGBA, cx, cy, radius float64, c color.RGBA) {
	const n = 4
	b := dst.Bounds()
	mask := image.NewAlpha(b)
	r2 := radius * radius
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			hits := 0
			for sy := 0; sy < n; sy++ {
				dy := float64(y) + (float64(sy)+0.5)/n - cy
				for sx := 0; sx < n; sx++ {
					dx := float64(x) + (float64(sx)+0.5)/n - cx
					if dx*dx+dy*dy <= r2 {
						hits++
					}
				}
			}
			if hits > 0 {
				mask.SetAlpha(x, y, color.Alpha{uint8(hits * 255 / (n * n))})
			}
		}
	}
	draw.DrawMask(dst, b, image.NewUniform(c), image.Point{}, mask, b.Min, draw.Over)
}
