package viewport

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// CellAspect is the number of terminal columns per board unit. Cells are about
// twice as tall as they are wide, so one unit spans two columns.
const CellAspect = 2

// hudRows is reserved below the board for the help line.
const hudRows = 1

// Grid maps board units to terminal cells for a given terminal size.
type Grid struct {
	Cols, Rows int     // Board area in cells
	OffsetCol  int     // Left margin that centers the board
	Scale      float64 // Rows per board unit
}

// boardRows returns the rows available to the board.
func boardRows(term Size) int {
	return core.Max(term.H-hudRows, 1)
}

// WorldSize converts a terminal size to the viewport size the game works in:
// one unit per row and one unit per CellAspect columns.
func WorldSize(term Size) (w, h float64) {
	return float64(term.W) / CellAspect, float64(boardRows(term))
}

// NewGrid builds the mapping for a board of boardW x boardH units drawn in a
// terminal of size term.
func NewGrid(term Size, boardW, boardH float64) Grid {
	rows := boardRows(term)
	scale := 1.0
	if boardH > 0 {
		scale = float64(rows) / boardH
	}
	cols := core.Clamp(int(math.Ceil(boardW*scale*CellAspect)), 0, core.Max(term.W, 0))
	return Grid{
		Cols:      cols,
		Rows:      rows,
		OffsetCol: (core.Max(term.W, 0) - cols) / 2,
		Scale:     scale,
	}
}

// Col converts a board x to a terminal column.
func (g Grid) Col(x float64) int {
	return g.OffsetCol + int(math.Floor(x*g.Scale*CellAspect))
}

// Row converts a board y to a terminal row.
func (g Grid) Row(y float64) int {
	return int(math.Floor(y * g.Scale))
}

// Rect converts a board rectangle to the cells it covers, clipped to the
// board area. A positive extent always covers at least one cell.
func (g Grid) Rect(x, y, w, h float64) core.CellRect {
	ux := g.Scale * CellAspect
	c0, c1 := math.Floor(x*ux), math.Ceil((x+w)*ux)
	r0, r1 := math.Floor(y*g.Scale), math.Ceil((y+h)*g.Scale)
	if w > 0 && c1 <= c0 {
		c1 = c0 + 1
	}
	if h > 0 && r1 <= r0 {
		r1 = r0 + 1
	}

	left := core.Clamp(int(c0), 0, g.Cols)
	right := core.Clamp(int(c1), 0, g.Cols)
	top := core.Clamp(int(r0), 0, g.Rows)
	bottom := core.Clamp(int(r1), 0, g.Rows)

	return core.NewCellRect(g.OffsetCol+left, top, right-left, bottom-top)
}
