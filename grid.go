// Copyright © 2024 Galvanized Logic Inc.

package collider2d

import (
	"math"

	"github.com/gazed/collider2d/geom"
	"github.com/gazed/collider2d/internal/tightset"
)

// cellCoord identifies one cell of the uniform spatial grid (§4.4).
type cellCoord struct{ X, Y int64 }

// grid buckets hitbox ids by the integer cell coordinates their swept
// envelope (current placement to its EndTime) overlaps, so the
// engine only compares a hitbox against others sharing at least one cell
// instead of every other hitbox in the scene.
type grid struct {
	cellWidth geom.Scalar
	cells     map[cellCoord]*tightset.Set[HbId]
}

func newGrid(cellWidth geom.Scalar) *grid {
	return &grid{cellWidth: cellWidth, cells: make(map[cellCoord]*tightset.Set[HbId])}
}

func floorDiv(v, width geom.Scalar) int64 {
	return int64(math.Floor(v.Float64() / width.Float64()))
}

// cellsFor returns every cell coordinate shape's bounding box overlaps.
func (g *grid) cellsFor(shape geom.PlacedShape) []cellCoord {
	minX, maxX := floorDiv(shape.MinX(), g.cellWidth), floorDiv(shape.MaxX(), g.cellWidth)
	minY, maxY := floorDiv(shape.MinY(), g.cellWidth), floorDiv(shape.MaxY(), g.cellWidth)
	cells := make([]cellCoord, 0, (maxX-minX+1)*(maxY-minY+1))
	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			cells = append(cells, cellCoord{X: x, Y: y})
		}
	}
	return cells
}

// insert buckets id into every cell envelope overlaps, returning the
// cells used so the caller can later remove or diff against them.
func (g *grid) insert(id HbId, envelope geom.PlacedShape) []cellCoord {
	cells := g.cellsFor(envelope)
	for _, c := range cells {
		set, ok := g.cells[c]
		if !ok {
			set = tightset.New[HbId]()
			g.cells[c] = set
		}
		set.Add(id)
	}
	return cells
}

// remove deletes id from the given cells, pruning any cell left empty.
func (g *grid) remove(id HbId, cells []cellCoord) {
	for _, c := range cells {
		set, ok := g.cells[c]
		if !ok {
			continue
		}
		set.Remove(id)
		if set.Len() == 0 {
			delete(g.cells, c)
		}
	}
}

// neighbors returns the set of every hitbox id sharing at least one of the
// given cells, not including duplicates.
func (g *grid) neighbors(cells []cellCoord) map[HbId]struct{} {
	out := make(map[HbId]struct{})
	for _, c := range cells {
		set, ok := g.cells[c]
		if !ok {
			continue
		}
		set.Each(func(id HbId) { out[id] = struct{}{} })
	}
	return out
}
