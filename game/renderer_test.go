package game

import (
	"testing"
	"time"
)

func TestCellFillColor(t *testing.T) {
	for owner := 0; owner < len(homeColors); owner++ {
		c := &Cell{Type: CellHome, Owner: owner}
		if got := cellFillColor(c); got != homeColors[owner] {
			t.Fatalf("home cell of player %d: got %v, expected %v", owner, got, homeColors[owner])
		}
	}
	if got := cellFillColor(&Cell{Type: CellReward}); got != rewardCellColor {
		t.Fatalf("reward cell: got %v", got)
	}
	if got := cellFillColor(&Cell{Type: CellPenalty}); got != penaltyCellColor {
		t.Fatalf("penalty cell: got %v", got)
	}
	if got := cellFillColor(&Cell{Type: CellPlain}); got != plainCellColor {
		t.Fatalf("plain cell: got %v", got)
	}
	// Malformed upstream state degrades to the plain presentation.
	if got := cellFillColor(&Cell{Type: CellType(99)}); got != plainCellColor {
		t.Fatalf("unknown cell type: got %v, expected plain", got)
	}
}

func TestCellTypeLabel(t *testing.T) {
	cases := []struct {
		cell *Cell
		want string
	}{
		{&Cell{Type: CellHome, Owner: 0}, "H1"},
		{&Cell{Type: CellHome, Owner: 3}, "H4"},
		{&Cell{Type: CellReward}, "Reward"},
		{&Cell{Type: CellPenalty}, "Discard"},
		{&Cell{Type: CellPlain}, "Plain"},
		{&Cell{Type: CellType(99)}, "Plain"},
	}
	for _, c := range cases {
		if got := cellTypeLabel(c.cell); got != c.want {
			t.Fatalf("label for type %d owner %d: got %q, expected %q", c.cell.Type, c.cell.Owner, got, c.want)
		}
	}
}

func TestCellRects(t *testing.T) {
	b := NewBoard(4)
	for i, c := range b.Cells {
		r := cellRect(c.X, c.Y)
		if r.Dx() != cellSize || r.Dy() != cellSize {
			t.Fatalf("cell %d rect is %dx%d, expected %dx%d", i, r.Dx(), r.Dy(), cellSize, cellSize)
		}
		if (r.Min.X+r.Max.X)/2 != c.X || (r.Min.Y+r.Max.Y)/2 != c.Y {
			t.Fatalf("cell %d rect not centered on (%d,%d)", i, c.X, c.Y)
		}
	}
}

func TestTokenOffsets(t *testing.T) {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if i == j || (i%2 == j%2 && i/2 == j/2) {
				continue
			}
			xi, yi := tokenOffset(i)
			xj, yj := tokenOffset(j)
			if xi == xj && yi == yj {
				t.Fatalf("players %d and %d receive the same offset (%d,%d)", i, j, xi, yi)
			}
		}
	}
}

func TestTokenPositionAnimated(t *testing.T) {
	b := NewBoard(2)
	mover := &Player{ID: 1, Position: 5}
	other := &Player{ID: 0, Position: 5}
	anim := &AnimationManager{
		PlayerMoving:   true,
		MovingPlayerID: 1,
		path:           []int{5, 6},
		hopStart:       time.Now().Add(-2 * hopDuration),
	}

	x, y := tokenPosition(mover, b, anim)
	wx, wy := b.CellPosition(6)
	if x != wx || y != wy {
		t.Fatalf("moving player drawn at (%d,%d), expected animated position (%d,%d)", x, y, wx, wy)
	}

	x, y = tokenPosition(other, b, anim)
	wx, wy = b.CellPosition(5)
	if x != wx || y != wy {
		t.Fatalf("static player drawn at (%d,%d), expected cell position (%d,%d)", x, y, wx, wy)
	}
}

func testLogic(mode SessionMode, players ...*Player) *GameLogic {
	n := len(players)
	if n == 0 {
		n = 2
	}
	return NewGameLogic(NewBoard(n), players, mode)
}

func human(id int) *Player {
	return &Player{ID: id, Money: startingMoney, Position: HomeIndex(id)}
}

func computer(id int) *Player {
	p := human(id)
	p.IsAI = true
	return p
}

func TestButtonPriority(t *testing.T) {
	// Game over always wins, even while an effect die is owed.
	l := testLogic(ModeLocal, human(0), computer(1))
	l.GameOver = true
	l.WaitingForEffectDice = true
	if action, ok := buttonSpec(l); !ok || action != ButtonRestart {
		t.Fatalf("game over: got (%d,%v), expected restart button", action, ok)
	}

	// Waiting for the effect die with an authorized viewer.
	l = testLogic(ModeLocal, human(0), computer(1))
	l.WaitingForEffectDice = true
	if action, ok := buttonSpec(l); !ok || action != ButtonRollEffect {
		t.Fatalf("waiting: got (%d,%v), expected effect die button", action, ok)
	}

	// An authorized viewer's plain turn.
	l = testLogic(ModeLocal, human(0), computer(1))
	if action, ok := buttonSpec(l); !ok || action != ButtonRoll {
		t.Fatalf("turn: got (%d,%v), expected roll button", action, ok)
	}

	// Game in progress, no effect die owed, current player is a computer:
	// no button.
	l = testLogic(ModeLocal, human(0), computer(1))
	l.CurrentPlayer = 1
	if _, ok := buttonSpec(l); ok {
		t.Fatal("computer turn must not draw a button")
	}
}

func TestButtonPriorityNetworked(t *testing.T) {
	l := testLogic(ModeNetworked, human(0), human(1))
	l.PlayerSlot = 0

	if action, ok := buttonSpec(l); !ok || action != ButtonRoll {
		t.Fatalf("local turn: got (%d,%v), expected roll button", action, ok)
	}

	l.WaitingForEffectDice = true
	if action, ok := buttonSpec(l); !ok || action != ButtonRollEffect {
		t.Fatalf("local effect turn: got (%d,%v), expected effect die button", action, ok)
	}

	l.WaitingForEffectDice = false
	l.CurrentPlayer = 1
	if _, ok := buttonSpec(l); ok {
		t.Fatal("remote turn must not draw a button")
	}

	// Restart shows regardless of whose turn it is.
	l.GameOver = true
	if action, ok := buttonSpec(l); !ok || action != ButtonRestart {
		t.Fatalf("networked game over: got (%d,%v), expected restart button", action, ok)
	}
}

func TestPlayerLabels(t *testing.T) {
	ann := human(0)
	ann.Name = "Ann"
	bob := human(1)
	bob.Name = "Bob"
	bob.Money = 80

	l := testLogic(ModeNetworked, ann, bob)
	l.PlayerSlot = 0

	if got, want := playerLabel(l, 0, "Ann"), ">>> [You] Player1(Ann): 100 coins <<<"; got != want {
		t.Fatalf("local slot label: got %q, expected %q", got, want)
	}
	if got, want := playerLabel(l, 1, "Ann"), "Player2(Bob): 80 coins"; got != want {
		t.Fatalf("remote slot label: got %q, expected %q", got, want)
	}

	// A remote name colliding with the local nickname falls back to the
	// local nickname; the rendered text is identical either way.
	bob.Name = "Ann"
	if got, want := playerLabel(l, 1, "Ann"), "Player2(Ann): 80 coins"; got != want {
		t.Fatalf("collision label: got %q, expected %q", got, want)
	}
}

func TestPlayerLabelsLocal(t *testing.T) {
	l := testLogic(ModeLocal, human(0), human(1), computer(2))

	if got, want := playerLabel(l, 0, "Ann"), ">>> [You] Player1(Ann): 100 coins <<<"; got != want {
		t.Fatalf("first human label: got %q, expected %q", got, want)
	}
	// Only the first human is the local player in a local game.
	if got, want := playerLabel(l, 1, "Ann"), "Player2(Ann): 100 coins"; got != want {
		t.Fatalf("second human label: got %q, expected %q", got, want)
	}
	if got, want := playerLabel(l, 2, "Ann"), "Computer3: 100 coins"; got != want {
		t.Fatalf("computer label: got %q, expected %q", got, want)
	}
}

func TestCurrentPlayerName(t *testing.T) {
	l := testLogic(ModeLocal, human(0), computer(1))
	if got, want := currentPlayerName(l, "Ann"), "Player1(Ann)"; got != want {
		t.Fatalf("human name: got %q, expected %q", got, want)
	}
	l.CurrentPlayer = 1
	if got, want := currentPlayerName(l, "Ann"), "Computer2"; got != want {
		t.Fatalf("computer name: got %q, expected %q", got, want)
	}
}

func TestButtonGeometry(t *testing.T) {
	r := buttonRect()
	if r.Dx() != 120 || r.Dy() != 40 {
		t.Fatalf("button is %dx%d, expected 120x40", r.Dx(), r.Dy())
	}
	if r.Min.X != ScreenWidth-150 || r.Min.Y != ScreenHeight-60 {
		t.Fatalf("button at (%d,%d), expected (%d,%d)", r.Min.X, r.Min.Y, ScreenWidth-150, ScreenHeight-60)
	}
}
