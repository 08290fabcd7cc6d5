package gamemath

// Depth values order drawables back to front: larger depth draws later.
const (
	// BaseDepth leaves headroom below every tile and entity depth.
	BaseDepth = -1000.0
	// LayerDepthStep separates layers sharing a cell and level. It must stay
	// below 1/MaxLayersPerLevel so layers never overtake a full row or level.
	LayerDepthStep = 0.1
	// EntityDepthBias puts an entity in front of tiles on its own row and level.
	EntityDepthBias = 0.5
	// MaxLayersPerLevel is the largest layer count per level the depth scale
	// keeps ordered.
	MaxLayersPerLevel = 9
)

// TileDepth returns the draw depth of the tile at row y, height index z and
// layer index n.
func TileDepth(y, z, n int) float64 {
	return BaseDepth + float64(y) + float64(z) + float64(n)*LayerDepthStep
}

// EntityDepth returns the draw depth of an entity whose feet are at pixel row
// yPx on fractional height z.
func EntityDepth(yPx, z float64, tileH int) float64 {
	if tileH <= 0 {
		return BaseDepth + z + EntityDepthBias
	}
	return BaseDepth + yPx/float64(tileH) + z + EntityDepthBias
}

// DepthScaleFits reports whether n layers can share one level without the
// layer term reaching a whole row.
func DepthScaleFits(n int) bool {
	return float64(n)*LayerDepthStep < 1.0
}
