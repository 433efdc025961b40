package main

//go:generate xgotext -no-locations -default coinroad -in . -out game/locales

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"coinroad/game"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	ebiten.SetWindowTitle("Coin Road")
	ebiten.SetWindowSize(game.ScreenWidth, game.ScreenHeight)

	g := game.NewGame()
	parseFlags(g)

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)
	go func() {
		<-sigc

		g.Exit()
	}()

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
