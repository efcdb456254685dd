package pipeline

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/ironsheep/image-quadtree/internal/quadtree"
)

// LogObserver reports quadtree events at debug level.
type LogObserver struct {
	logger *log.Logger
}

// NewLogObserver returns an observer writing to logger, or to the default
// logger when logger is nil.
func NewLogObserver(logger *log.Logger) *LogObserver {
	if logger == nil {
		logger = log.Default()
	}
	return &LogObserver{logger: logger}
}

func (o *LogObserver) Built(width, height, nodes int) {
	o.logger.Debug("tree built", "width", width, "height", height, "nodes", nodes)
}

func (o *LogObserver) Pruned(tolerance float64, removed int) {
	o.logger.Debug("tree pruned", "tolerance", tolerance, "removed", removed)
}

func (o *LogObserver) Transformed(op quadtree.Op, width, height int) {
	o.logger.Debug("tree transformed", "op", op, "width", width, "height", height)
}

func (o *LogObserver) Rotated(oldWidth, oldHeight, newWidth, newHeight int) {
	o.logger.Debug("tree rotated",
		"from", fmt.Sprintf("%dx%d", oldWidth, oldHeight),
		"to", fmt.Sprintf("%dx%d", newWidth, newHeight))
}

var _ quadtree.Observer = (*LogObserver)(nil)
