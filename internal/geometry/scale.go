// Package geometry converts between the map's logical coordinate space and
// on-screen pixels. All functions are pure; the scale is re-derived on every
// dimension change rather than cached.
package geometry

import "math"

const (
	// MinScaleDenominator prevents small maps from rendering oversized: the
	// scale divisor never drops below this many logical units.
	MinScaleDenominator = 800

	// DefaultViewportSize is the edge length in pixels of the square preview
	// viewport the map is fitted into.
	DefaultViewportSize = 400
)

// Scale returns the ratio converting logical map units to on-screen pixels so
// the map fits inside a viewport of the given pixel size while preserving
// aspect ratio. The result is always positive and monotonically decreasing in
// max(mapWidth, mapHeight).
func Scale(mapWidth, mapHeight, viewport float64) float64 {
	d := math.Max(math.Max(mapWidth, mapHeight), MinScaleDenominator)
	return viewport / d
}

// Fit returns the scale plus the resulting on-screen dimensions for a map of
// the given logical size.
func Fit(mapWidth, mapHeight, viewport float64) (scale, displayWidth, displayHeight float64) {
	scale = Scale(mapWidth, mapHeight, viewport)
	return scale, mapWidth * scale, mapHeight * scale
}
