// Package pathfinding routes characters around solid cells of one height
// level of a collision volume.
package pathfinding

import (
	"math"
	"slices"

	"github.com/automoto/tmx-explorer/shared/collision"
	"github.com/automoto/tmx-explorer/shared/leveldata"
	astar "github.com/beefsack/go-astar"
)

// NavGrid is the walkable layout of one height index. Walkability is read
// from the volume on every query, so later SetFlags calls are seen.
type NavGrid struct {
	Width, Depth int
	Z            int
	TileWidth    int
	TileHeight   int

	vol   *collision.Volume
	nodes []*NavNode // row-major
}

// NavNode is a single cell. It implements astar.Pather.
type NavNode struct {
	X, Y int
	grid *NavGrid
}

var neighborDirs = [8][2]int{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
}

// NewNavGrid builds the grid for height index z.
func NewNavGrid(vol *collision.Volume, z, tileW, tileH int) *NavGrid {
	g := &NavGrid{
		Width:      vol.W,
		Depth:      vol.D,
		Z:          z,
		TileWidth:  tileW,
		TileHeight: tileH,
		vol:        vol,
		nodes:      make([]*NavNode, vol.W*vol.D),
	}
	for y := range g.Depth {
		for x := range g.Width {
			g.nodes[y*g.Width+x] = &NavNode{X: x, Y: y, grid: g}
		}
	}
	return g
}

func (g *NavGrid) node(x, y int) *NavNode {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Depth {
		return nil
	}
	return g.nodes[y*g.Width+x]
}

// Walkable reports whether cell (x, y) can be entered.
func (g *NavGrid) Walkable(x, y int) bool {
	return g.vol.IsWalkable(x, y, g.Z)
}

// PathNeighbors returns adjacent walkable nodes. Diagonal steps need both
// orthogonal cells free so paths never clip a wall corner.
func (n *NavNode) PathNeighbors() []astar.Pather {
	g := n.grid
	neighbors := make([]astar.Pather, 0, len(neighborDirs))
	for _, d := range neighborDirs {
		nx, ny := n.X+d[0], n.Y+d[1]
		if !g.Walkable(nx, ny) {
			continue
		}
		if d[0] != 0 && d[1] != 0 && (!g.Walkable(n.X+d[0], n.Y) || !g.Walkable(n.X, n.Y+d[1])) {
			continue
		}
		neighbors = append(neighbors, g.node(nx, ny))
	}
	return neighbors
}

// PathNeighborCost returns the movement cost between adjacent nodes.
func (n *NavNode) PathNeighborCost(to astar.Pather) float64 {
	return n.PathEstimatedCost(to)
}

// PathEstimatedCost is the straight-line distance in cells.
func (n *NavNode) PathEstimatedCost(to astar.Pather) float64 {
	t := to.(*NavNode)
	return math.Hypot(float64(t.X-n.X), float64(t.Y-n.Y))
}

// FindPath returns the tile centres leading from pixel (startX, startY) to
// pixel (goalX, goalY), excluding the start cell. A goal inside a wall is
// moved to the nearest free cell. It returns nil when no route exists.
func (g *NavGrid) FindPath(startX, startY, goalX, goalY float64) []leveldata.Point {
	sx, sy := g.vol.PixelToTile(startX, startY, g.TileWidth, g.TileHeight)
	gx, gy := g.vol.PixelToTile(goalX, goalY, g.TileWidth, g.TileHeight)

	start := g.node(sx, sy)
	if start == nil {
		return nil
	}
	goal := g.node(gx, gy)
	if goal == nil || !g.Walkable(gx, gy) {
		goal = g.findNearestWalkable(clampInt(gx, 0, g.Width-1), clampInt(gy, 0, g.Depth-1))
	}
	if goal == nil {
		return nil
	}
	if start == goal {
		return []leveldata.Point{}
	}

	path, _, found := astar.Path(start, goal)
	if !found {
		return nil
	}
	// go-astar hands the path back goal first.
	if len(path) > 0 && path[0] != astar.Pather(start) {
		slices.Reverse(path)
	}

	points := make([]leveldata.Point, 0, len(path)-1)
	for _, p := range path[1:] {
		n := p.(*NavNode)
		x, y := g.GridToWorld(n.X, n.Y)
		points = append(points, leveldata.Point{X: x, Y: y})
	}
	return points
}

// findNearestWalkable searches expanding squares around (x, y).
func (g *NavGrid) findNearestWalkable(x, y int) *NavNode {
	for radius := 1; radius < max(g.Width, g.Depth); radius++ {
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				if g.Walkable(x+dx, y+dy) {
					return g.node(x+dx, y+dy)
				}
			}
		}
	}
	return nil
}

// GridToWorld converts grid coordinates to the pixel centre of the cell.
func (g *NavGrid) GridToWorld(gridX, gridY int) (float64, float64) {
	return float64(gridX*g.TileWidth) + float64(g.TileWidth)/2,
		float64(gridY*g.TileHeight) + float64(g.TileHeight)/2
}

func clampInt(v, minVal, maxVal int) int {
	return max(minVal, min(maxVal, v))
}
