// Package grid implements the mutable, sparsely stored 2-D program
// space ><> executes: a map from (x, y) to a glyph cell, plus the
// per-row and per-column extents that define toroidal wrap-around.
package grid

// Cell is a single position's glyph: its codepoint and the category
// that codepoint dispatches to.
type Cell struct {
	Codepoint rune
	Category  Category
}

// coord is the sparse map key. Rows and columns only ever grow, never
// shrink, so row/column extents are tracked alongside the cell map
// rather than recomputed from it.
type coord struct{ x, y int }

// Grid is a sparse (x, y) -> Cell map with row_max/col_max extents kept
// authoritative for wrap. The zero value is an empty, ready-to-use
// grid.
type Grid struct {
	cells  map[coord]Cell
	rowMax map[int]int // row_max[y] = max x with a cell in row y
	colMax map[int]int // col_max[x] = max y with a cell in column x
}

// New returns an empty Grid.
func New() *Grid {
	return &Grid{
		cells:  make(map[coord]Cell),
		rowMax: make(map[int]int),
		colMax: make(map[int]int),
	}
}

// Lookup returns the cell at (x, y), or the NUL cell (codepoint 0,
// Control) if nothing has been stored there.
func (g *Grid) Lookup(x, y int) Cell {
	if c, ok := g.cells[coord{x, y}]; ok {
		return c
	}
	return Cell{Codepoint: 0, Category: Control}
}

// Put stores codepoint at (x, y), recomputing its category from the
// fixed glyph table, and extends row_max/col_max to cover it. This
// backs both source loading and the `p` instruction.
func (g *Grid) Put(x, y int, codepoint rune) {
	g.cells[coord{x, y}] = Cell{Codepoint: codepoint, Category: Categorize(codepoint)}
	if existing, ok := g.rowMax[y]; !ok || x > existing {
		g.rowMax[y] = x
	}
	if existing, ok := g.colMax[x]; !ok || y > existing {
		g.colMax[x] = y
	}
}

// RowMax returns row_max[y], or 0 if row y has no cells.
func (g *Grid) RowMax(y int) int {
	return g.rowMax[y]
}

// ColMax returns col_max[x], or 0 if column x has no cells.
func (g *Grid) ColMax(x int) int {
	return g.colMax[x]
}
