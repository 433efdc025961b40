package game

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"
	"golang.org/x/image/font"
)

const cellSize = 60

const (
	tokenRadius     = 8
	highlightRadius = 12
)

type ButtonAction int8

const (
	ButtonRoll ButtonAction = iota
	ButtonRollEffect
	ButtonRestart
)

// ButtonRegion describes the action button drawn this frame. It is only
// valid until the next frame is drawn; the caller matches it against the
// next click.
type ButtonRegion struct {
	Rect   image.Rectangle
	Action ButtonAction
}

// NicknameFunc resolves the locally configured nickname.
type NicknameFunc func() string

// Renderer paints the board, tokens and status panel onto the screen each
// frame. It never mutates the state it draws.
type Renderer struct {
	font     font.Face
	bigFont  font.Face
	nickname NicknameFunc
}

func NewRenderer(nickname NicknameFunc) *Renderer {
	normal, large := initializeFonts()
	return &Renderer{font: normal, bigFont: large, nickname: nickname}
}

// cellFillColor maps a cell to its fill. Unrecognized types fall back to
// the plain presentation.
func cellFillColor(c *Cell) color.RGBA {
	switch c.Type {
	case CellHome:
		return homeColors[c.Owner%len(homeColors)]
	case CellReward:
		return rewardCellColor
	case CellPenalty:
		return penaltyCellColor
	default:
		return plainCellColor
	}
}

func cellTypeLabel(c *Cell) string {
	switch c.Type {
	case CellHome:
		return fmt.Sprintf("H%d", c.Owner+1)
	case CellReward:
		return gotext.Get("Reward")
	case CellPenalty:
		return gotext.Get("Discard")
	default:
		return gotext.Get("Plain")
	}
}

func cellRect(x int, y int) image.Rectangle {
	return image.Rect(x-cellSize/2, y-cellSize/2, x+cellSize/2, y+cellSize/2)
}

// DrawBoard clears the screen and paints every cell with its index and
// type label.
func (r *Renderer) DrawBoard(screen *ebiten.Image, b *Board) {
	screen.Fill(backgroundColor)

	for i, c := range b.Cells {
		rect := cellRect(c.X, c.Y)
		vector.DrawFilledRect(screen, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), cellFillColor(c), false)
		vector.StrokeRect(screen, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), 2, borderColor, false)

		r.drawTextCentered(screen, r.font, strconv.Itoa(i), c.X, c.Y-20, textColor)
		r.drawTextCentered(screen, r.font, cellTypeLabel(c), c.X, c.Y+10, textColor)
	}
}

// tokenOffset staggers tokens sharing a cell into two columns so they never
// fully overlap.
func tokenOffset(i int) (int, int) {
	return (i%2)*15 - 7, (i/2)*15 - 7
}

// tokenPosition returns the on-screen position of a player's token: the
// animated position while that player is moving, the static cell position
// otherwise.
func tokenPosition(p *Player, b *Board, anim *AnimationManager) (int, int) {
	if anim != nil && anim.PlayerMoving && anim.MovingPlayerID == p.ID {
		return anim.PlayerPosition(b)
	}
	return b.CellPosition(p.Position)
}

// DrawPlayers paints tokens in list order; later players overlap earlier
// ones on a shared cell. The moving player gets a gold highlight ring.
func (r *Renderer) DrawPlayers(screen *ebiten.Image, players []*Player, b *Board, anim *AnimationManager) {
	for i, p := range players {
		x, y := tokenPosition(p, b, anim)
		ox, oy := tokenOffset(i)
		x, y = x+ox, y+oy

		if anim != nil && anim.PlayerMoving && anim.MovingPlayerID == p.ID {
			vector.StrokeCircle(screen, float32(x), float32(y), highlightRadius, 2, goldColor, false)
		}
		vector.DrawFilledCircle(screen, float32(x), float32(y), tokenRadius, p.Color, false)
		vector.StrokeCircle(screen, float32(x), float32(y), tokenRadius, 2, borderColor, false)
	}
}

// isLocalPlayer reports whether slot i is controlled by this client: the
// assigned slot in a networked match, the first human otherwise.
func isLocalPlayer(l *GameLogic, i int) bool {
	if l.Mode == ModeNetworked {
		return i == l.PlayerSlot
	}
	if l.Players[i].IsAI {
		return false
	}
	for j := 0; j < i; j++ {
		if !l.Players[j].IsAI {
			return false
		}
	}
	return true
}

// humanName returns the name to display for a human player: the stored
// remote name when it is known to belong to a different networked
// participant, the local nickname otherwise. A remote name equal to the
// local nickname therefore also displays the local nickname.
func humanName(l *GameLogic, p *Player, nickname string) string {
	if l.Mode == ModeNetworked && p.Name != "" && p.Name != nickname {
		return p.Name
	}
	return nickname
}

func playerLabel(l *GameLogic, i int, nickname string) string {
	p := l.Players[i]
	var label string
	if p.IsAI {
		label = gotext.Get("%s%d: %d coins", p.TypeName(), i+1, p.Money)
	} else {
		label = gotext.Get("Player%d(%s): %d coins", i+1, humanName(l, p, nickname), p.Money)
	}
	if isLocalPlayer(l, i) {
		label = gotext.Get("[You] ") + label
	}
	if i == l.CurrentPlayer {
		label = ">>> " + label + " <<<"
	}
	return label
}

func currentPlayerName(l *GameLogic, nickname string) string {
	p := l.current()
	if p.IsAI {
		return playerTag(p)
	}
	return gotext.Get("Player%d(%s)", p.ID+1, humanName(l, p, nickname))
}

// buttonSpec selects the action button for the current state. Priority is
// strict: game over always shows Restart; otherwise an authorized viewer
// sees the effect-die button while one is owed, or the roll button.
func buttonSpec(l *GameLogic) (ButtonAction, bool) {
	var authorized bool
	if l.Mode == ModeNetworked {
		authorized = l.IsLocalPlayerTurn()
	} else {
		authorized = !l.current().IsAI
	}

	switch {
	case l.GameOver:
		return ButtonRestart, true
	case l.WaitingForEffectDice && authorized:
		return ButtonRollEffect, true
	case authorized:
		return ButtonRoll, true
	}
	return 0, false
}

func buttonRect() image.Rectangle {
	return image.Rect(ScreenWidth-150, ScreenHeight-60, ScreenWidth-30, ScreenHeight-20)
}

func buttonFillColor(action ButtonAction) color.RGBA {
	switch action {
	case ButtonRestart:
		return restartButtonColor
	case ButtonRollEffect:
		return effectButtonColor
	default:
		return rollButtonColor
	}
}

func buttonLabel(action ButtonAction) string {
	switch action {
	case ButtonRestart:
		return gotext.Get("Restart")
	case ButtonRollEffect:
		return gotext.Get("Roll Effect Die")
	default:
		return gotext.Get("Roll Die")
	}
}

// DrawUI paints the status panel and, when the state calls for one, the
// action button. It returns the button's hit region or nil.
func (r *Renderer) DrawUI(screen *ebiten.Image, l *GameLogic) *ButtonRegion {
	nickname := r.nickname()

	if len(l.Players) == 0 {
		text.Draw(screen, l.Message, r.font, 10, ScreenHeight-80+normalFontSize, textColor)
		return nil
	}

	y := 10
	for i := range l.Players {
		clr := textColor
		if i == l.CurrentPlayer {
			clr = alertColor
		}
		text.Draw(screen, playerLabel(l, i, nickname), r.font, 10, y+normalFontSize, clr)
		y += 30
	}

	if l.DiceResult > 0 {
		text.Draw(screen, gotext.Get("Move die: %d", l.DiceResult), r.font, 10, y+20+normalFontSize, textColor)
		y += 25
	}
	if l.EffectDiceResult > 0 {
		text.Draw(screen, gotext.Get("Effect die: %d", l.EffectDiceResult), r.font, 10, y+20+normalFontSize, textColor)
	}

	text.Draw(screen, l.Message, r.font, 10, ScreenHeight-80+normalFontSize, textColor)

	if l.GameOver {
		r.drawTextCentered(screen, r.bigFont, gotext.Get("Game over!"), ScreenWidth/2, ScreenHeight/2, alertColor)
	}

	name := currentPlayerName(l, nickname)
	if l.WaitingForEffectDice {
		r.drawTextCentered(screen, r.font, gotext.Get("Waiting for %s to roll the effect die...", name), ScreenWidth/2, ScreenHeight-40, goldColor)
	} else {
		r.drawTextCentered(screen, r.font, gotext.Get("%s's turn", name), ScreenWidth/2, ScreenHeight-40, textColor)
	}

	action, ok := buttonSpec(l)
	if !ok {
		return nil
	}
	rect := buttonRect()
	vector.DrawFilledRect(screen, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), buttonFillColor(action), false)
	vector.StrokeRect(screen, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), 2, borderColor, false)
	r.drawTextCentered(screen, r.font, buttonLabel(action), (rect.Min.X+rect.Max.X)/2, (rect.Min.Y+rect.Max.Y)/2, textColor)
	return &ButtonRegion{Rect: rect, Action: action}
}

func (r *Renderer) drawTextCentered(screen *ebiten.Image, face font.Face, s string, x int, y int, clr color.Color) {
	bounds := text.BoundString(face, s)
	text.Draw(screen, s, face, x-bounds.Min.X-bounds.Dx()/2, y-bounds.Min.Y-bounds.Dy()/2, clr)
}
