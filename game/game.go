package game

import (
	"bytes"
	"fmt"
	"image"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/leonelquinteros/gotext"
)

const (
	ScreenWidth  = 800
	ScreenHeight = 600
)

const DefaultServerAddress = "wss://play.coinroad.net/ws"

const MaxDebug = 1

var Debug int

const (
	minAIPlayers = 1
	maxPlayers   = 4
)

type Game struct {
	Nickname      string
	ServerAddress string
	Online        bool
	AIPlayers     int

	Client *Client

	board    *Board
	logic    *GameLogic
	anim     *AnimationManager
	renderer *Renderer

	// Hit region of the button drawn last frame, matched against clicks.
	button *ButtonRegion

	rng *rand.Rand
	ai  aiController

	touchIDs []ebiten.TouchID

	drawBuffer bytes.Buffer
	debugImg   *ebiten.Image

	loaded bool
}

func NewGame() *Game {
	ebiten.SetTPS(targetFPS)

	g := &Game{
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		debugImg: ebiten.NewImage(200, 200),
	}
	g.renderer = NewRenderer(g.resolveNickname)
	return g
}

func (g *Game) resolveNickname() string {
	if g.Nickname != "" {
		return g.Nickname
	}
	if nickname := loadNickname(); nickname != "" {
		g.Nickname = nickname
		return nickname
	}
	return gotext.Get("Player")
}

// start builds the match once flags are parsed, on the first update.
func (g *Game) start() {
	if g.Nickname != "" {
		saveNickname(g.Nickname)
	}

	if g.Online {
		g.connect()
		return
	}
	g.startLocal()
}

func (g *Game) startLocal() {
	ais := g.AIPlayers
	if ais < minAIPlayers {
		ais = minAIPlayers
	} else if ais > maxPlayers-1 {
		ais = maxPlayers - 1
	}

	g.board = NewBoard(1 + ais)
	g.logic = NewGameLogic(g.board, NewPlayers(1, ais, g.board), ModeLocal)
	g.anim = &AnimationManager{}
}

func (g *Game) connect() {
	g.board = NewBoard(maxPlayers)
	g.logic = NewGameLogic(g.board, nil, ModeNetworked)
	g.logic.Message = gotext.Get("Connecting to %s...", g.ServerAddress)
	g.anim = &AnimationManager{}

	g.Client = newClient(g.ServerAddress, g.resolveNickname())

	go g.handleEvents()
	go g.Client.Connect()
}

func (g *Game) handleEvents() {
	for e := range g.Client.Events {
		g.logic.Lock()
		switch ev := e.(type) {
		case *EventWelcome:
			g.logic.PlayerSlot = ev.Slot
			g.logic.applyState(&EventState{Players: ev.Players, Winner: -1})
		case *EventState:
			g.logic.applyState(ev)
		case *EventMoved:
			if ev.Slot >= 0 && ev.Slot < len(g.logic.Players) {
				g.anim.StartMoveTo(ev.Slot, ev.From, ev.To, g.board)
			}
		case *EventMessage:
			g.logic.Message = ev.Message
		case *EventDisconnect:
			g.logic.Message = gotext.Get("Disconnected: %s", ev.Reason)
		}
		g.logic.Unlock()
	}
}

func (g *Game) Update() error {
	if !g.loaded {
		g.loaded = true
		g.start()
	}

	g.logic.Lock()
	defer g.logic.Unlock()

	if id, cell, done := g.anim.Update(); done {
		if g.logic.Mode == ModeLocal {
			g.logic.FinishMove(cell)
		} else if id >= 0 && id < len(g.logic.Players) {
			g.logic.Players[id].Position = cell
		}
	}

	if g.logic.Mode == ModeLocal {
		g.ai.update(g)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.handleClick(ebiten.CursorPosition())
	}
	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		x, y := ebiten.TouchPosition(id)
		if x != 0 || y != 0 {
			g.handleClick(x, y)
			break
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.button != nil {
			g.pressButton(g.button.Action)
		}
	}
	return nil
}

func (g *Game) handleClick(x int, y int) {
	if g.button == nil || !image.Pt(x, y).In(g.button.Rect) {
		return
	}
	g.pressButton(g.button.Action)
}

func (g *Game) pressButton(action ButtonAction) {
	if g.anim.PlayerMoving {
		return
	}

	if g.logic.Mode == ModeNetworked {
		switch action {
		case ButtonRestart:
			g.Client.Out <- encodeCommand(&CommandRestart{})
		case ButtonRollEffect:
			g.Client.Out <- encodeCommand(&CommandRollEffect{})
		case ButtonRoll:
			g.Client.Out <- encodeCommand(&CommandRoll{})
		}
		return
	}

	switch action {
	case ButtonRestart:
		g.logic.Restart()
	case ButtonRollEffect:
		g.logic.RollEffectDice(g.rng)
	case ButtonRoll:
		p := g.logic.current()
		from := p.Position
		if steps := g.logic.RollDice(g.rng); steps > 0 {
			g.anim.StartMove(p.ID, from, steps, g.board)
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.logic.Lock()
	defer g.logic.Unlock()

	g.renderer.DrawBoard(screen, g.board)
	g.renderer.DrawPlayers(screen, g.logic.Players, g.board, g.anim)
	g.button = g.renderer.DrawUI(screen, g.logic)

	if Debug > 0 {
		g.drawBuffer.Reset()
		fmt.Fprintf(&g.drawBuffer, "FPS %0.0f\nTPS %0.0f", ebiten.ActualFPS(), ebiten.ActualTPS())
		if g.anim.PlayerMoving {
			fmt.Fprintf(&g.drawBuffer, "\nMOV %d", g.anim.MovingPlayerID)
		}

		g.debugImg.Clear()
		ebitenutil.DebugPrint(g.debugImg, g.drawBuffer.String())

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(3, 0)
		op.GeoM.Scale(2, 2)
		screen.DrawImage(g.debugImg, op)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

func (g *Game) Exit() {
	if g.Nickname != "" {
		saveNickname(g.Nickname)
	}
	os.Exit(0)
}
