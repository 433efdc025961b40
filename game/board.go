package game

type CellType int8

const (
	CellPlain CellType = iota
	CellHome
	CellReward
	CellPenalty
)

// Cell is a single board space. Exactly one type applies to each cell;
// Owner is only meaningful for home cells.
type Cell struct {
	X, Y  int
	Type  CellType
	Owner int
}

type Board struct {
	Cells []*Cell
}

const boardCells = 20

// Home cell indices for up to four players, evenly spaced around the ring.
var homeIndices = []int{0, 5, 10, 15}

var (
	rewardIndices  = []int{2, 8, 13, 18}
	penaltyIndices = []int{4, 7, 11, 17}
)

// NewBoard lays out a clockwise rectangular ring of cells. Home cells are
// only assigned for the first numPlayers players; unassigned home positions
// stay plain. The layout is deterministic.
func NewBoard(numPlayers int) *Board {
	b := &Board{Cells: make([]*Cell, boardCells)}

	const (
		left   = 140
		right  = 660
		top    = 120
		bottom = 440
	)
	hStep := (right - left) / 5
	vStep := (bottom - top) / 5

	for i := 0; i < boardCells; i++ {
		c := &Cell{}
		switch {
		case i <= 5: // Top edge, left to right.
			c.X, c.Y = left+i*hStep, top
		case i <= 9: // Right edge, downward.
			c.X, c.Y = right, top+(i-5)*vStep
		case i <= 15: // Bottom edge, right to left.
			c.X, c.Y = right-(i-10)*hStep, bottom
		default: // Left edge, upward.
			c.X, c.Y = left, bottom-(i-15)*vStep
		}
		b.Cells[i] = c
	}

	for owner, i := range homeIndices {
		if owner >= numPlayers {
			break
		}
		b.Cells[i].Type = CellHome
		b.Cells[i].Owner = owner
	}
	for _, i := range rewardIndices {
		b.Cells[i].Type = CellReward
	}
	for _, i := range penaltyIndices {
		b.Cells[i].Type = CellPenalty
	}
	return b
}

func (b *Board) CellCount() int {
	return len(b.Cells)
}

func (b *Board) Cell(i int) *Cell {
	return b.Cells[i]
}

// CellPosition returns the pixel center of cell i.
func (b *Board) CellPosition(i int) (int, int) {
	c := b.Cells[i]
	return c.X, c.Y
}

// HomeIndex returns the board index of a player's home cell.
func HomeIndex(player int) int {
	return homeIndices[player%len(homeIndices)]
}
