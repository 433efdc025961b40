package game

import "time"

// hopDuration is how long a token takes to travel between adjacent cells.
const hopDuration = 200 * time.Millisecond

// AnimationManager interpolates a single moving token across the board,
// one cell hop at a time. At most one player moves at any moment.
type AnimationManager struct {
	PlayerMoving   bool
	MovingPlayerID int

	path     []int // Cell indices; path[0] is the starting cell.
	hop      int   // Index of the hop currently in progress.
	hopStart time.Time
}

// StartMove begins animating playerID from cell index from across steps
// cells, wrapping around the end of the board.
func (m *AnimationManager) StartMove(playerID int, from int, steps int, b *Board) {
	m.path = m.path[:0]
	for i := 0; i <= steps; i++ {
		m.path = append(m.path, (from+i)%b.CellCount())
	}
	m.PlayerMoving = true
	m.MovingPlayerID = playerID
	m.hop = 0
	m.hopStart = time.Now()
}

// StartMoveTo animates playerID forward from one cell index to another.
func (m *AnimationManager) StartMoveTo(playerID int, from int, to int, b *Board) {
	steps := (to - from + b.CellCount()) % b.CellCount()
	m.StartMove(playerID, from, steps, b)
}

// Update advances the animation. When the move completes it reports the
// moving player, the cell the token landed on, and true.
func (m *AnimationManager) Update() (int, int, bool) {
	if !m.PlayerMoving {
		return 0, 0, false
	}
	for time.Since(m.hopStart) >= hopDuration {
		m.hopStart = m.hopStart.Add(hopDuration)
		m.hop++
		if m.hop >= len(m.path)-1 {
			m.PlayerMoving = false
			return m.MovingPlayerID, m.path[len(m.path)-1], true
		}
	}
	return 0, 0, false
}

// PlayerPosition returns the moving token's interpolated on-screen position
// for the current frame.
func (m *AnimationManager) PlayerPosition(b *Board) (int, int) {
	if !m.PlayerMoving || m.hop >= len(m.path)-1 {
		if len(m.path) == 0 {
			return 0, 0
		}
		return b.CellPosition(m.path[len(m.path)-1])
	}
	progress := float64(time.Since(m.hopStart)) / float64(hopDuration)
	if progress < 0 {
		progress = 0
	} else if progress > 1 {
		progress = 1
	}
	x1, y1 := b.CellPosition(m.path[m.hop])
	x2, y2 := b.CellPosition(m.path[m.hop+1])
	return x1 + int(float64(x2-x1)*progress), y1 + int(float64(y2-y1)*progress)
}
