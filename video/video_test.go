package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToImageSizeValidation(t *testing.T) {
	_, err := ToImage(make([]uint8, 10))
	var se SizeError
	assert.ErrorAs(t, err, &se)
	assert.Equal(t, 10, se.Got)
}

func TestToImageDimensions(t *testing.T) {
	fb := make([]uint8, FramebufferSize)
	img, err := ToImage(fb)
	assert.NoError(t, err)
	assert.Equal(t, Width, img.Bounds().Dx())
	assert.Equal(t, Height, img.Bounds().Dy())
}

func TestToImageAllOffIsBlack(t *testing.T) {
	fb := make([]uint8, FramebufferSize)
	img, err := ToImage(fb)
	assert.NoError(t, err)
	for _, v := range img.Pix {
		assert.Equal(t, uint8(0), v)
	}
}

func TestToImagePlotsSinglePixel(t *testing.T) {
	fb := make([]uint8, FramebufferSize)
	// Native column 0, byte 0, bit 0: native (col=0, y=0).
	fb[0] = 0x01
	img, err := ToImage(fb)
	assert.NoError(t, err)

	// Rotation: displayed (y, columns-1-col) = (0, 223).
	i := img.PixOffset(0, columns-1)
	assert.Equal(t, uint8(0xFF), img.Pix[i])

	// Every other pixel stays off.
	total := 0
	for _, v := range img.Pix {
		if v != 0 {
			total++
		}
	}
	assert.Equal(t, 1, total)
}

func TestScaleDimensions(t *testing.T) {
	fb := make([]uint8, FramebufferSize)
	img, err := ToImage(fb)
	assert.NoError(t, err)

	scaled := Scale(img, 3)
	assert.Equal(t, Width*3, scaled.Bounds().Dx())
	assert.Equal(t, Height*3, scaled.Bounds().Dy())
}

func TestScaleClampsFactor(t *testing.T) {
	fb := make([]uint8, FramebufferSize)
	img, err := ToImage(fb)
	assert.NoError(t, err)

	scaled := Scale(img, 0)
	assert.Equal(t, Width, scaled.Bounds().Dx())
	assert.Equal(t, Height, scaled.Bounds().Dy())
}
