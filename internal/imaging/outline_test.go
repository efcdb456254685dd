package imaging

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/ironsheep/image-quadtree/internal/quadtree"
)

func renderTree(t *testing.T, tree *quadtree.Tree, scale int) *image.NRGBA {
	t.Helper()
	img, err := tree.Render(scale)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	return img
}

func TestOutline_SingleLeaf(t *testing.T) {
	tree := buildTree(t, createInMemoryImage(4, 4, color.NRGBA{0, 0, 0, 255}))
	if err := tree.Prune(0); err != nil {
		t.Fatalf("Prune failed: %v", err)
	}
	rendered := renderTree(t, tree, 2)

	result, err := Outline(rendered, tree, 2, "#FF0000")
	if err != nil {
		t.Fatalf("Outline failed: %v", err)
	}

	if result.Bounds().Dx() != 8 || result.Bounds().Dy() != 8 {
		t.Fatalf("size: got %dx%d, want 8x8", result.Bounds().Dx(), result.Bounds().Dy())
	}

	red := color.NRGBA{255, 0, 0, 255}
	black := color.NRGBA{0, 0, 0, 255}
	tests := []struct {
		x, y int
		want color.NRGBA
	}{
		{0, 0, red},
		{7, 0, red},
		{0, 7, red},
		{7, 7, red},
		{4, 0, red},
		{0, 4, red},
		{3, 3, black},
		{6, 6, black},
	}
	for _, tt := range tests {
		if got := result.NRGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d,%d): got %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestOutline_EveryLeafOutlined(t *testing.T) {
	tree := buildTree(t, createPatternImage(2, 2))
	rendered := renderTree(t, tree, 3)

	result, err := Outline(rendered, tree, 3, "#000000")
	if err != nil {
		t.Fatalf("Outline failed: %v", err)
	}

	// Each 3x3 leaf keeps only its center pixel.
	centers := map[image.Point]color.NRGBA{
		{1, 1}: {255, 0, 0, 255},
		{4, 1}: {0, 255, 0, 255},
		{1, 4}: {0, 0, 255, 255},
		{4, 4}: {255, 255, 255, 255},
	}
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			want := color.NRGBA{0, 0, 0, 255}
			if c, ok := centers[image.Pt(x, y)]; ok {
				want = c
			}
			if got := result.NRGBAAt(x, y); got != want {
				t.Errorf("pixel (%d,%d): got %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestOutline_DoesNotModifyInput(t *testing.T) {
	tree := buildTree(t, createInMemoryImage(2, 2, color.NRGBA{0, 0, 0, 255}))
	rendered := renderTree(t, tree, 1)

	if _, err := Outline(rendered, tree, 1, "#FFFFFF"); err != nil {
		t.Fatalf("Outline failed: %v", err)
	}
	if got := rendered.NRGBAAt(0, 0); got != (color.NRGBA{0, 0, 0, 255}) {
		t.Errorf("input pixel changed: got %v", got)
	}
}

func TestOutline_DefaultColor(t *testing.T) {
	tree := buildTree(t, createInMemoryImage(2, 2, color.NRGBA{0, 0, 0, 255}))
	rendered := renderTree(t, tree, 4)

	result, err := Outline(rendered, tree, 4, "")
	if err != nil {
		t.Fatalf("Outline failed: %v", err)
	}

	got := result.NRGBAAt(0, 0)
	if got.R == 0 || got.G != 0 || got.B != 0 {
		t.Errorf("border pixel: got %v, want a red tint", got)
	}
	if got := result.NRGBAAt(1, 1); got != (color.NRGBA{0, 0, 0, 255}) {
		t.Errorf("interior pixel: got %v, want black", got)
	}
}

func TestOutline_Errors(t *testing.T) {
	tree := buildTree(t, createPatternImage(4, 4))
	rendered := renderTree(t, tree, 2)

	if _, err := Outline(rendered, tree, 0, ""); !errors.Is(err, quadtree.ErrInvalidScale) {
		t.Errorf("scale 0: got %v, want ErrInvalidScale", err)
	}
	if _, err := Outline(rendered, tree, 1, ""); err == nil {
		t.Error("mismatched size: expected error, got nil")
	}
	if _, err := Outline(rendered, tree, 2, "invalid"); err == nil {
		t.Error("invalid color: expected error, got nil")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		hex     string
		wantR   uint8
		wantG   uint8
		wantB   uint8
		wantA   uint8
		wantErr bool
	}{
		{"#FF0000", 255, 0, 0, 255, false},
		{"#00FF00", 0, 255, 0, 255, false},
		{"#0000FF", 0, 0, 255, 255, false},
		{"#FFFFFF", 255, 255, 255, 255, false},
		{"#000000", 0, 0, 0, 255, false},
		{"FF0000", 255, 0, 0, 255, false},    // without #
		{"#FF000080", 255, 0, 0, 128, false}, // with alpha
		{"FF000080", 255, 0, 0, 128, false},  // without # with alpha
		{"#1a2B3c00", 26, 43, 60, 0, false},  // mixed case, transparent
		{"", 0, 0, 0, 0, true},               // empty
		{"#FFF", 0, 0, 0, 0, true},           // invalid length
		{"#FF00008", 0, 0, 0, 0, true},       // odd length
		{"#GGGGGG", 0, 0, 0, 0, true},        // invalid hex
	}

	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			p, err := ParseHexColor(tt.hex)

			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if want := float64(tt.wantA) / 255; p.A != want {
				t.Errorf("alpha: got %v, want %v", p.A, want)
			}
			c := p.NRGBA()
			if c.R != tt.wantR || c.G != tt.wantG || c.B != tt.wantB || c.A != tt.wantA {
				t.Errorf("got (%d,%d,%d,%d), want (%d,%d,%d,%d)",
					c.R, c.G, c.B, c.A, tt.wantR, tt.wantG, tt.wantB, tt.wantA)
			}
		})
	}
}
