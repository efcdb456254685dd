package imaging

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"io"
	"os"
	"sync"
	"time"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// ImageCache keeps decoded images keyed by path so repeated tool calls on the
// same file skip decoding.
//
// An entry is reused only while the file's size and modification time are
// unchanged; a file rewritten in place (for example by quadtree_compress with
// an output_path) is decoded again on the next Load.
//
// ImageCache is safe for concurrent use.
//
//	cache := imaging.NewImageCache()
//	img, err := cache.Load("/path/to/image.png")
//	if err != nil {
//	    return err
//	}
//	tree, err := quadtree.New(quadtree.FromImage(img))
type ImageCache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
}

type cacheEntry struct {
	img     image.Image
	format  string
	size    int64
	modTime time.Time
}

func (e *cacheEntry) fresh(stat os.FileInfo) bool {
	return e.size == stat.Size() && e.modTime.Equal(stat.ModTime())
}

// NewImageCache creates an empty cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		entries: make(map[string]*cacheEntry),
	}
}

// Load returns the decoded image at path, reading the file only when it is not
// cached or has changed since it was cached.
//
// JPEG files carrying an EXIF orientation tag are rotated upright on load so the
// quadtree sees the image the way viewers display it.
//
// Paths are used as given: a relative and an absolute path to the same file are
// separate entries.
func (c *ImageCache) Load(path string) (image.Image, error) {
	e, err := c.load(path)
	if err != nil {
		return nil, err
	}
	return e.img, nil
}

func (c *ImageCache) load(path string) (*cacheEntry, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load image: %w", err)
	}

	c.mu.RLock()
	e, ok := c.entries[path]
	c.mu.RUnlock()
	if ok && e.fresh(stat) {
		return e, nil
	}

	e, err = decodeFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load image: %w", err)
	}
	e.size = stat.Size()
	e.modTime = stat.ModTime()

	c.mu.Lock()
	c.entries[path] = e
	c.mu.Unlock()

	return e, nil
}

// decodeFile sniffs the format from the file header, then decodes the whole
// image.
func decodeFile(path string) (*cacheEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	_, format, err := image.DecodeConfig(f)
	if err != nil {
		return nil, err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	img, err := imaging.Decode(f, imaging.AutoOrientation(true))
	if err != nil {
		return nil, err
	}
	return &cacheEntry{img: img, format: format}, nil
}

// Clear drops every cached image.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]*cacheEntry)
	c.mu.Unlock()
}

// Evict drops the image cached for path, if any.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.entries, path)
	c.mu.Unlock()
}

// ImageInfo describes an image file as the quadtree will see it.
type ImageInfo struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	// Format is the decoder that recognized the file contents: "png", "jpeg",
	// "gif", "bmp", "tiff" or "webp". The file extension is not consulted.
	Format string `json:"format"`

	// ColorDepth is "16-bit" for 16-bit color models and "8-bit" otherwise.
	// Either way the tree stores 8 bits per color channel.
	ColorDepth string `json:"color_depth"`

	// HasAlpha reports whether any pixel is not fully opaque.
	HasAlpha bool `json:"has_alpha"`

	FileSizeBytes int64 `json:"file_size_bytes"`

	// Pixels is Width*Height, the number of leaves of a freshly built quadtree.
	Pixels int `json:"pixels"`
}

// LoadImageInfo loads path through cache and describes it.
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	e, err := cache.load(path)
	if err != nil {
		return nil, err
	}

	bounds := e.img.Bounds()
	return &ImageInfo{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        e.format,
		ColorDepth:    colorDepth(e.img.ColorModel()),
		HasAlpha:      !opaque(e.img),
		FileSizeBytes: e.size,
		Pixels:        bounds.Dx() * bounds.Dy(),
	}, nil
}

func colorDepth(m color.Model) string {
	switch m {
	case color.RGBA64Model, color.NRGBA64Model, color.Gray16Model, color.Alpha16Model:
		return "16-bit"
	}
	return "8-bit"
}

// opaque reports whether every pixel of img has full alpha. The standard image
// types answer this directly; anything else is scanned.
func opaque(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0xffff {
				return false
			}
		}
	}
	return true
}

// DimensionsResult contains the width and height of an image.
type DimensionsResult struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// GetDimensions returns the size of the image at path after EXIF orientation.
func GetDimensions(cache *ImageCache, path string) (*DimensionsResult, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	return &DimensionsResult{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}
