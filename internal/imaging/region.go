package imaging

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
)

// RegionNames lists the named regions accepted by ResolveRegion.
func RegionNames() []string {
	return []string{
		"top-left", "top-right", "bottom-left", "bottom-right",
		"top-half", "bottom-half", "left-half", "right-half",
		"center",
	}
}

// ResolveRegion turns a region spec into a rectangle inside bounds.
//
// A spec is either one of RegionNames or "x1,y1,x2,y2": pixel corners
// relative to the top-left of the image, x2 and y2 exclusive. Halves and
// quadrants split at width/2 and height/2; "center" drops a quarter of the
// size on each side.
func ResolveRegion(bounds image.Rectangle, spec string) (image.Rectangle, error) {
	w, h := bounds.Dx(), bounds.Dy()
	midX, midY := w/2, h/2

	var r image.Rectangle
	switch strings.ToLower(strings.TrimSpace(spec)) {
	case "top-left":
		r = image.Rect(0, 0, midX, midY)
	case "top-right":
		r = image.Rect(midX, 0, w, midY)
	case "bottom-left":
		r = image.Rect(0, midY, midX, h)
	case "bottom-right":
		r = image.Rect(midX, midY, w, h)
	case "top-half":
		r = image.Rect(0, 0, w, midY)
	case "bottom-half":
		r = image.Rect(0, midY, w, h)
	case "left-half":
		r = image.Rect(0, 0, midX, h)
	case "right-half":
		r = image.Rect(midX, 0, w, h)
	case "center":
		r = image.Rect(w/4, h/4, w-w/4, h-h/4)
	default:
		var err error
		if r, err = parseCorners(spec); err != nil {
			return image.Rectangle{}, err
		}
		if r.Min.X < 0 || r.Min.Y < 0 || r.Max.X > w || r.Max.Y > h {
			return image.Rectangle{}, fmt.Errorf("region %q outside image bounds %dx%d", spec, w, h)
		}
	}

	if r.Empty() {
		return image.Rectangle{}, fmt.Errorf("region %q is empty for a %dx%d image", spec, w, h)
	}
	return r.Add(bounds.Min), nil
}

// ValidateRegion checks a spec without an image: named regions always pass,
// corner lists must parse and be ordered.
func ValidateRegion(spec string) error {
	name := strings.ToLower(strings.TrimSpace(spec))
	for _, n := range RegionNames() {
		if name == n {
			return nil
		}
	}
	_, err := parseCorners(spec)
	return err
}

func parseCorners(spec string) (image.Rectangle, error) {
	parts := strings.Split(spec, ",")
	if len(parts) != 4 {
		return image.Rectangle{}, fmt.Errorf("invalid region %q: want a name (%s) or x1,y1,x2,y2",
			spec, strings.Join(RegionNames(), ", "))
	}

	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return image.Rectangle{}, fmt.Errorf("invalid region %q: %w", spec, err)
		}
		v[i] = n
	}
	if v[0] >= v[2] || v[1] >= v[3] {
		return image.Rectangle{}, fmt.Errorf("invalid region %q: x1 must be < x2, y1 must be < y2", spec)
	}
	return image.Rect(v[0], v[1], v[2], v[3]), nil
}

// Crop returns the part of img selected by spec, with its origin at (0,0).
func Crop(img image.Image, spec string) (*image.NRGBA, error) {
	r, err := ResolveRegion(img.Bounds(), spec)
	if err != nil {
		return nil, err
	}
	return imaging.Crop(img, r), nil
}
