package video

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// Scale resizes src by factor (the cabinet's own tube is tiny; every real
// port scales it up for a modern display) using a Catmull-Rom resampler,
// returning a plain *image.RGBA the host can blit however it likes.
func Scale(src *image.Gray, factor int) *image.RGBA {
	if factor < 1 {
		factor = 1
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
