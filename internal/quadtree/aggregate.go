package quadtree

// aggregate computes the area-weighted average of the present children
// without looking at any pixel. Integer channels truncate.
func aggregate(children [4]*Node) Pixel {
	var r, g, b, total uint64
	var a float64

	for _, c := range children {
		if c == nil {
			continue
		}
		area := uint64(c.area())
		r += uint64(c.average.R) * area
		g += uint64(c.average.G) * area
		b += uint64(c.average.B) * area
		a += c.average.A * float64(area)
		total += area
	}

	if total == 0 {
		return Pixel{}
	}
	return Pixel{
		R: uint8(r / total),
		G: uint8(g / total),
		B: uint8(b / total),
		A: a / float64(total),
	}
}
