// Package quadtree decomposes a raster image into a region quadtree.
//
// Every node of the tree covers an axis-aligned rectangle of pixels and stores
// the average color of that rectangle. Leaves are single pixels in a freshly
// built tree and larger uniform regions once the tree has been pruned.
//
// # Coordinate System
//
// Node rectangles use inclusive corners: TopLeft is the first pixel of the
// region and BottomRight is the last one. (0,0) is the top-left pixel of the
// image, X grows rightward and Y grows downward. Bounds converts a node's
// corners to the half-open image.Rectangle used by the standard library.
//
// # Splitting Rule
//
// A rectangle is split at mid = (lo+hi)/2 on each axis, so when a side has an
// odd length the extra row or column goes to the upper or left half. Single
// column rectangles only use the NW and SW slots, single row rectangles only
// use NW and NE.
//
// # Operations
//
//   - New builds a tree from any Source (see FromImage for image.Image).
//   - Prune collapses subtrees whose leaves are all within a tolerance of the
//     subtree average. A tree can be pruned once; copies inherit that state.
//   - FlipHorizontal, FlipVertical and RotateCCW rewrite geometry without
//     touching stored colors.
//   - Render and RenderTo paint the leaves back onto a raster at an integer
//     scale.
//
// Trees are not safe for concurrent mutation. Clone returns a fully
// independent copy that can be handed to another goroutine.
package quadtree
