package imaging

import (
	"fmt"
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/image-quadtree/internal/quadtree"
)

// Metric names accepted by Metric.
const (
	MetricRGBA      = "rgba"
	MetricLab       = "lab"
	MetricCIEDE2000 = "ciede2000"
)

var metrics = map[string]quadtree.DistanceFunc{
	MetricRGBA:      quadtree.Pixel.DistanceTo,
	MetricLab:       LabDistance,
	MetricCIEDE2000: CIEDE2000Distance,
}

// Metric returns the distance function registered under name. An empty name
// selects MetricRGBA.
func Metric(name string) (quadtree.DistanceFunc, error) {
	if name == "" {
		name = MetricRGBA
	}
	fn, ok := metrics[name]
	if !ok {
		return nil, fmt.Errorf("unknown metric %q (want one of %v)", name, MetricNames())
	}
	return fn, nil
}

// MetricNames lists the registered metric names in sorted order.
func MetricNames() []string {
	names := make([]string, 0, len(metrics))
	for name := range metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LabDistance is the CIE76 color difference in CIELAB, in the usual ΔE units
// (about 2.3 is a just-noticeable difference). Alpha contributes like the L
// channel: fully opaque against fully transparent adds 100.
func LabDistance(a, b quadtree.Pixel) float64 {
	return withAlpha(toColorful(a).DistanceLab(toColorful(b))*100, a, b)
}

// CIEDE2000Distance is the CIEDE2000 color difference in ΔE units, with the
// same alpha term as LabDistance.
func CIEDE2000Distance(a, b quadtree.Pixel) float64 {
	return withAlpha(toColorful(a).DistanceCIEDE2000(toColorful(b))*100, a, b)
}

func withAlpha(d float64, a, b quadtree.Pixel) float64 {
	da := (a.A - b.A) * 100
	return math.Sqrt(d*d + da*da)
}

// toColorful drops alpha; colorful.MakeColor rejects fully transparent colors,
// so the channels are converted directly.
func toColorful(p quadtree.Pixel) colorful.Color {
	return colorful.Color{
		R: float64(p.R) / 255,
		G: float64(p.G) / 255,
		B: float64(p.B) / 255,
	}
}
