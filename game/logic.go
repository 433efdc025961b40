package game

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/leonelquinteros/gotext"
)

type SessionMode int8

const (
	ModeLocal SessionMode = iota
	ModeNetworked
)

const (
	penaltyAmount = 20
	homeRent      = 10
	rewardUnit    = 10
)

// GameLogic owns the turn state. The renderer only ever reads it; callers
// hold the lock around draw and event handling.
type GameLogic struct {
	sync.Mutex

	Board   *Board
	Players []*Player

	CurrentPlayer        int
	DiceResult           int
	EffectDiceResult     int
	Message              string
	WaitingForEffectDice bool
	GameOver             bool
	Winner               int

	Mode       SessionMode
	PlayerSlot int // Local slot in a networked match; -1 otherwise.

	moving bool // A move is animating; rolling is blocked until it lands.
}

func NewGameLogic(b *Board, players []*Player, mode SessionMode) *GameLogic {
	return &GameLogic{
		Board:      b,
		Players:    players,
		Mode:       mode,
		PlayerSlot: -1,
		Winner:     -1,
		Message:    gotext.Get("Click Roll Die to begin."),
	}
}

func (l *GameLogic) current() *Player {
	return l.Players[l.CurrentPlayer]
}

// IsLocalPlayerTurn reports whether this client holds the turn in a
// networked match. Always false in local mode.
func (l *GameLogic) IsLocalPlayerTurn() bool {
	return l.Mode == ModeNetworked && l.PlayerSlot >= 0 && l.CurrentPlayer == l.PlayerSlot
}

func playerTag(p *Player) string {
	return fmt.Sprintf("%s%d", p.TypeName(), p.ID+1)
}

// RollDice rolls the primary die for the current player and returns the
// number of cells to move, or 0 when rolling is not allowed right now.
func (l *GameLogic) RollDice(rng *rand.Rand) int {
	if l.GameOver || l.WaitingForEffectDice || l.moving {
		return 0
	}
	v := 1 + rng.Intn(6)
	l.DiceResult = v
	l.EffectDiceResult = 0
	l.moving = true
	l.Message = gotext.Get("%s rolled %d.", playerTag(l.current()), v)
	return v
}

// FinishMove places the current player on the landed cell and applies its
// effect. Unless the cell demands an effect die roll or ends the game, the
// turn advances.
func (l *GameLogic) FinishMove(cell int) {
	p := l.current()
	p.Position = cell
	l.moving = false

	c := l.Board.Cell(cell)
	switch {
	case c.Type == CellReward:
		l.WaitingForEffectDice = true
		l.Message = gotext.Get("%s landed on a reward cell! Roll the effect die.", playerTag(p))
	case c.Type == CellPenalty:
		loss := penaltyAmount
		if loss > p.Money {
			loss = p.Money
		}
		p.Money -= loss
		l.Message = gotext.Get("%s landed on a penalty cell and discarded %d coins.", playerTag(p), loss)
	case c.Type == CellHome && c.Owner != p.ID && c.Owner < len(l.Players):
		owner := l.Players[c.Owner]
		rent := homeRent
		if rent > p.Money {
			rent = p.Money
		}
		p.Money -= rent
		owner.Money += rent
		l.Message = gotext.Get("%s paid %d coins of rent to %s.", playerTag(p), rent, playerTag(owner))
	case c.Type == CellHome:
		l.Message = gotext.Get("%s rests at home.", playerTag(p))
	default:
		l.Message = gotext.Get("%s landed on cell %d.", playerTag(p), cell)
	}

	l.checkWinner()
	if !l.GameOver && !l.WaitingForEffectDice {
		l.advanceTurn()
	}
}

// RollEffectDice rolls the secondary die and credits the reward.
func (l *GameLogic) RollEffectDice(rng *rand.Rand) int {
	if l.GameOver || !l.WaitingForEffectDice {
		return 0
	}
	v := 1 + rng.Intn(6)
	l.EffectDiceResult = v

	p := l.current()
	gain := v * rewardUnit
	p.Money += gain
	l.WaitingForEffectDice = false
	l.Message = gotext.Get("%s received %d coins!", playerTag(p), gain)

	l.checkWinner()
	if !l.GameOver {
		l.advanceTurn()
	}
	return v
}

func (l *GameLogic) advanceTurn() {
	l.CurrentPlayer = (l.CurrentPlayer + 1) % len(l.Players)
}

func (l *GameLogic) checkWinner() {
	for i, p := range l.Players {
		if p.Money >= winningMoney {
			l.GameOver = true
			l.Winner = i
			l.Message = gotext.Get("%s wins!", playerTag(p))
			return
		}
	}
}

// Restart resets a local game on the same board.
func (l *GameLogic) Restart() {
	for _, p := range l.Players {
		p.Money = startingMoney
		p.Position = HomeIndex(p.ID)
	}
	l.CurrentPlayer = 0
	l.DiceResult = 0
	l.EffectDiceResult = 0
	l.WaitingForEffectDice = false
	l.GameOver = false
	l.Winner = -1
	l.moving = false
	l.Message = gotext.Get("Click Roll Die to begin.")
}

// applyState replaces the turn state with an authoritative server snapshot.
func (l *GameLogic) applyState(ev *EventState) {
	for i, ps := range ev.Players {
		var p *Player
		if i < len(l.Players) {
			p = l.Players[i]
		} else {
			p = &Player{ID: i, Color: playerColors[i%len(playerColors)]}
			l.Players = append(l.Players, p)
		}
		p.Name = ps.Name
		p.Money = ps.Money
		p.IsAI = ps.IsAI
		p.Position = ps.Position
	}
	if len(ev.Players) < len(l.Players) {
		l.Players = l.Players[:len(ev.Players)]
	}
	l.CurrentPlayer = ev.CurrentPlayer
	if l.CurrentPlayer < 0 || l.CurrentPlayer >= len(l.Players) {
		l.CurrentPlayer = 0
	}
	l.DiceResult = ev.DiceResult
	l.EffectDiceResult = ev.EffectDiceResult
	if ev.Message != "" {
		l.Message = ev.Message
	}
	l.WaitingForEffectDice = ev.WaitingForEffectDice
	l.GameOver = ev.GameOver
	l.Winner = ev.Winner
}
