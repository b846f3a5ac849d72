// Package video converts the Space Invaders framebuffer into a displayable
// image. It owns no window: ToImage is a pure function over the bytes
// memory.Memory.Slice hands back, leaving event loops and rendering to the
// host, which is explicitly out of scope here.
package video

import (
	"fmt"
	"image"
	"image/color"
)

// Width and Height are the dimensions of the image ToImage produces: the
// cabinet's 224x256 portrait tube rotated 90 degrees counter-clockwise into
// the landscape orientation every other Space Invaders port displays it in.
const (
	Width  = 256
	Height = 224
)

// columns and rows are the framebuffer's own native layout before rotation:
// 224 columns of 256 vertical pixels, 8 pixels packed per byte.
const (
	columns        = 224
	rows           = 256
	bytesPerColumn = rows / 8
)

// FramebufferSize is the expected length of the byte slice passed to
// ToImage: columns*rows/8.
const FramebufferSize = columns * bytesPerColumn

// SizeError is returned when ToImage is given a slice that isn't exactly
// FramebufferSize bytes.
type SizeError struct {
	Got int
}

// Error implements the error interface.
func (e SizeError) Error() string {
	return fmt.Sprintf("framebuffer must be %d bytes, got %d", FramebufferSize, e.Got)
}

// On and Off are the two colors a 1-bit Space Invaders pixel renders as.
// The real cabinet has a monochrome tube with colored cellophane strips
// glued over it; this package renders plain white-on-black and leaves any
// such overlay to the host.
var (
	On  = color.Gray{Y: 0xFF}
	Off = color.Gray{Y: 0x00}
)

// ToImage decodes fb, the 7168-byte slice at address 0x2400 (see
// invaders.FramebufferAddr), into a Width x Height *image.Gray already
// rotated into landscape orientation. Byte i in fb holds 8 vertically
// stacked pixels of native column i/32 (LSB = lowest y, i.e. nearest the
// player's guns); rotation maps native (col, y) to displayed
// (y, columns-1-col).
//
// Pixels are written directly into the returned image's Pix slice rather
// than through Set, since Set's per-call color.Color boxing is measurable
// overhead over 57,344 pixels at 60 Hz.
func ToImage(fb []uint8) (*image.Gray, error) {
	if len(fb) != FramebufferSize {
		return nil, SizeError{Got: len(fb)}
	}
	img := image.NewGray(image.Rect(0, 0, Width, Height))
	for col := 0; col < columns; col++ {
		for byteIdx := 0; byteIdx < bytesPerColumn; byteIdx++ {
			b := fb[col*bytesPerColumn+byteIdx]
			for bit := 0; bit < 8; bit++ {
				y := byteIdx*8 + bit
				lit := b&(1<<bit) != 0
				dx := y
				dy := columns - 1 - col
				i := img.PixOffset(dx, dy)
				if lit {
					img.Pix[i] = On.Y
				} else {
					img.Pix[i] = Off.Y
				}
			}
		}
	}
	return img, nil
}
