package export

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/san-kum/buddhabrot/internal/density"
)

// WritePNG composes three normalized channels into an RGBA image and
// writes it to path. All three grids must share one shape; normalized
// values are expected in [0, 1] and are clamped into it.
func WritePNG(path string, red, green, blue *density.Normalized) error {
	w, h := red.Width(), red.Height()
	if green.Width() != w || green.Height() != h || blue.Width() != w || blue.Height() != h {
		return fmt.Errorf("channel shapes differ: %dx%d, %dx%d, %dx%d",
			w, h, green.Width(), green.Height(), blue.Width(), blue.Height())
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			img.SetRGBA(col, row, color.RGBA{
				R: channelByte(red.At(row, col)),
				G: channelByte(green.At(row, col)),
				B: channelByte(blue.At(row, col)),
				A: 255,
			})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}

func channelByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}
