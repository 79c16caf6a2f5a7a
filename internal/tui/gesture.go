package tui

import (
	"math"

	"github.com/interpretive-systems/slidium/internal/tui/effects"
)

// Point is a pointer position in pixels.
type Point struct {
	X, Y float64
}

// CellPoint converts a terminal cell to the pixel position of its
// top-left corner.
func CellPoint(x, y int) Point {
	return Point{X: float64(x * effects.CellWidthPx), Y: float64(y * effects.CellHeightPx)}
}

// SwipeResult is the navigation intent of a completed drag.
type SwipeResult int

const (
	SwipeNone SwipeResult = iota
	SwipeNext
	SwipePrevious
)

// Classify turns a drag delta into a swipe. The drag has to be mostly
// horizontal and longer than threshold; dragging left means next.
func Classify(dx, dy, threshold float64) SwipeResult {
	if math.Abs(dx) <= math.Abs(dy) || math.Abs(dx) <= threshold {
		return SwipeNone
	}
	if dx < 0 {
		return SwipeNext
	}
	return SwipePrevious
}

// SwipeDetector tracks one press/release pair.
type SwipeDetector struct {
	threshold float64
	start     Point
	pressed   bool
}

// NewSwipeDetector creates a detector; non-positive thresholds use 50px.
func NewSwipeDetector(thresholdPx int) *SwipeDetector {
	if thresholdPx <= 0 {
		thresholdPx = 50
	}
	return &SwipeDetector{threshold: float64(thresholdPx)}
}

// Start records the press position.
func (d *SwipeDetector) Start(p Point) {
	d.start = p
	d.pressed = true
}

// Pressed returns the press position while a drag is in progress.
func (d *SwipeDetector) Pressed() (Point, bool) {
	return d.start, d.pressed
}

// End classifies the drag ending at p. Without a matching Start it is
// always SwipeNone.
func (d *SwipeDetector) End(p Point) SwipeResult {
	if !d.pressed {
		return SwipeNone
	}
	d.pressed = false
	return Classify(p.X-d.start.X, p.Y-d.start.Y, d.threshold)
}
