// Package imaging connects the quadtree core to image files and color tooling.
//
// The quadtree package only knows about pixels and rectangles. This package
// supplies everything around it: decoding and caching image files, writing
// results back to disk or as base64 PNG payloads, alternative color-distance
// metrics for pruning, Gaussian pre-blur, color descriptions for tree samples
// and a leaf-outline overlay for inspecting a compressed tree.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based with (0,0) at the
// top-left corner, X increasing rightward and Y increasing downward.
//
// # Supported Formats
//
// Decoding: PNG, JPEG, GIF, BMP, TIFF and WebP. JPEG EXIF orientation is
// applied on load.
// Encoding: PNG, JPEG, GIF, BMP and TIFF, chosen by file extension.
//
// # Color Metrics
//
// Pruning compares colors with a DistanceFunc. Three are available by name:
//   - "rgba": Euclidean distance over R, G, B and 255-scaled alpha (default)
//   - "lab": CIE76 ΔE in CIELAB, closer to perceived difference
//   - "ciede2000": CIEDE2000 ΔE, the most perceptually uniform and slowest
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. The other functions are
// stateless; a quadtree.Tree passed to them must not be mutated concurrently.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as coordinates outside the
// tree, unknown metric names, unsupported file extensions, malformed hex
// colors, and I/O or decoding failures. Errors are wrapped with %w so callers
// can match the underlying cause.
package imaging
