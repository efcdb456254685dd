package quadtree

import (
	"fmt"
	"image/color"
	"math"
)

// Pixel is a color with three 8-bit channels and a real-valued alpha.
//
// A ranges from 0 (fully transparent) to 1 (fully opaque). The zero value is
// transparent black.
type Pixel struct {
	R, G, B uint8
	A       float64
}

// NewPixel returns a Pixel with the given channels.
func NewPixel(r, g, b uint8, a float64) Pixel {
	return Pixel{R: r, G: g, B: b, A: a}
}

// PixelFromColor converts any color.Color to a Pixel through non-premultiplied
// NRGBA, so 8-bit colors convert back without loss.
func PixelFromColor(c color.Color) Pixel {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Pixel{R: n.R, G: n.G, B: n.B, A: float64(n.A) / 255}
}

// DistanceTo returns the Euclidean distance between p and o over all four
// channels. The alpha difference is scaled by 255 to weigh like a color
// channel, so the result ranges from 0 to 510.
func (p Pixel) DistanceTo(o Pixel) float64 {
	dr := float64(p.R) - float64(o.R)
	dg := float64(p.G) - float64(o.G)
	db := float64(p.B) - float64(o.B)
	da := (p.A - o.A) * 255
	return math.Sqrt(dr*dr + dg*dg + db*db + da*da)
}

// NRGBA converts p to an 8-bit non-premultiplied color, rounding alpha.
func (p Pixel) NRGBA() color.NRGBA {
	a := p.A
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: uint8(math.Round(a * 255))}
}

// RGBA implements color.Color.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	return p.NRGBA().RGBA()
}

func (p Pixel) String() string {
	return fmt.Sprintf("(%d,%d,%d,%g)", p.R, p.G, p.B, p.A)
}
