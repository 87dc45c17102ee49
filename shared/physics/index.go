package physics

import (
	"log"
	"math"
	"sort"

	"github.com/solarlune/resolv"

	"github.com/bitwiserain/springshot/shared/gamemath"
)

// Tile is a (col, row) grid coordinate. Row 0 is the bottom of the map.
type Tile struct {
	Col, Row int
}

// Rect returns the world rectangle covered by t.
func (t Tile) Rect() gamemath.Rect {
	return gamemath.Rect{X: float64(t.Col) * TileSize, Y: float64(t.Row) * TileSize, W: TileSize, H: TileSize}
}

// Neighbor returns the tile dc columns and dr rows away from t.
func (t Tile) Neighbor(dc, dr int) Tile {
	return Tile{Col: t.Col + dc, Row: t.Row + dr}
}

// Index is the set of solid tiles of a level. It is built once and never
// modified afterwards. A resolv space with one solid object per tile serves
// the broad phase.
type Index struct {
	cols, rows int
	occupied   map[Tile]struct{}
	tiles      []Tile
	space      *resolv.Space
}

// NewIndex snaps each collision rectangle to the tile grid. A rectangle's
// origin is divided by TileSize and rounded to the nearest tile; rectangles
// spanning several tiles mark every tile they cover.
func NewIndex(cols, rows int, solids []gamemath.Rect) *Index {
	ix := &Index{
		cols:     cols,
		rows:     rows,
		occupied: make(map[Tile]struct{}),
		space:    resolv.NewSpace(cols*int(TileSize), rows*int(TileSize), int(TileSize), int(TileSize)),
	}

	dropped := 0
	for _, r := range solids {
		origin := Tile{Col: roundTile(r.X), Row: roundTile(r.Y)}
		spanC := max(1, roundTile(r.W))
		spanR := max(1, roundTile(r.H))
		for dr := 0; dr < spanR; dr++ {
			for dc := 0; dc < spanC; dc++ {
				t := origin.Neighbor(dc, dr)
				if !ix.inGrid(t) {
					dropped++
					continue
				}
				if _, dup := ix.occupied[t]; dup {
					continue
				}
				ix.occupied[t] = struct{}{}
				ix.tiles = append(ix.tiles, t)
			}
		}
	}
	sortTiles(ix.tiles)

	for _, t := range ix.tiles {
		tr := t.Rect()
		obj := resolv.NewObject(tr.X, tr.Y, tr.W, tr.H, TagSolid)
		obj.SetShape(resolv.NewRectangle(0, 0, tr.W, tr.H))
		obj.Data = t
		ix.space.Add(obj)
	}

	if dropped > 0 {
		log.Printf("Warning: %d collision tiles outside the %dx%d grid were ignored", dropped, cols, rows)
	}
	return ix
}

func roundTile(v float64) int {
	return int(math.Round(v / TileSize))
}

func sortTiles(ts []Tile) {
	sort.Slice(ts, func(i, j int) bool {
		if ts[i].Row != ts[j].Row {
			return ts[i].Row < ts[j].Row
		}
		return ts[i].Col < ts[j].Col
	})
}

func (ix *Index) inGrid(t Tile) bool {
	return t.Col >= 0 && t.Row >= 0 && t.Col < ix.cols && t.Row < ix.rows
}

// Occupied reports whether tile (col, row) is solid.
func (ix *Index) Occupied(col, row int) bool {
	_, ok := ix.occupied[Tile{Col: col, Row: row}]
	return ok
}

func (ix *Index) occupiedTile(t Tile) bool {
	return ix.Occupied(t.Col, t.Row)
}

func (ix *Index) Cols() int { return ix.cols }
func (ix *Index) Rows() int { return ix.rows }

// Len returns the number of solid tiles.
func (ix *Index) Len() int { return len(ix.tiles) }

// Tiles returns the solid tiles ordered by row then column.
func (ix *Index) Tiles() []Tile {
	out := make([]Tile, len(ix.tiles))
	copy(out, ix.tiles)
	return out
}

// Bounds returns the world rectangle covered by the grid.
func (ix *Index) Bounds() gamemath.Rect {
	return gamemath.Rect{W: float64(ix.cols) * TileSize, H: float64(ix.rows) * TileSize}
}

// Space exposes the broad-phase space for debug drawing.
func (ix *Index) Space() *resolv.Space {
	return ix.space
}

// Overlapping returns the solid tiles that share positive area with r,
// ordered by row then column. It only reads the cells r covers, from
// floor(x/TileSize) to ceil(right/TileSize)-1 on each axis, so fractional
// positions never skip the far cell.
func (ix *Index) Overlapping(r gamemath.Rect) []Tile {
	c0, c1 := cellSpan(r.X, r.Right(), ix.cols)
	r0, r1 := cellSpan(r.Y, r.Top(), ix.rows)

	var hits []Tile
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			cell := ix.space.Cell(col, row)
			if cell == nil {
				continue
			}
			for _, obj := range cell.Objects {
				if !obj.HasTags(TagSolid) {
					continue
				}
				t, ok := obj.Data.(Tile)
				if !ok || !t.Rect().Overlaps(r) {
					continue
				}
				hits = append(hits, t)
			}
		}
	}
	sortTiles(hits)
	return hits
}

// cellSpan returns the first and last grid cells touched by [lo, hi),
// clamped to [0, n). An empty span has first > last.
func cellSpan(lo, hi float64, n int) (int, int) {
	first := max(int(math.Floor(lo/TileSize)), 0)
	last := min(int(math.Ceil(hi/TileSize))-1, n-1)
	return first, last
}
