package game

import (
	"image/color"

	"github.com/leonelquinteros/gotext"
)

const (
	startingMoney = 100
	winningMoney  = 200
)

type Player struct {
	ID       int
	Money    int
	Color    color.RGBA
	IsAI     bool
	Name     string // Nickname reported by the server for remote players.
	Position int    // Current board cell index.
}

// TypeName returns the localized player kind shown in the info panel.
func (p *Player) TypeName() string {
	if p.IsAI {
		return gotext.Get("Computer")
	}
	return gotext.Get("Player")
}

// NewPlayers creates the players of a local game. Humans occupy the first
// slots. Each player starts on their home cell with the starting balance.
func NewPlayers(humans int, ais int, b *Board) []*Player {
	players := make([]*Player, 0, humans+ais)
	for i := 0; i < humans+ais; i++ {
		players = append(players, &Player{
			ID:       i,
			Money:    startingMoney,
			Color:    playerColors[i%len(playerColors)],
			IsAI:     i >= humans,
			Position: HomeIndex(i),
		})
	}
	return players
}
