package main

import (
	"flag"
	"strings"

	"coinroad/game"

	"golang.org/x/text/language"
)

func parseFlags(g *game.Game) {
	var lang string
	flag.StringVar(&g.Nickname, "nickname", "", "Nickname shown to other players")
	flag.StringVar(&g.ServerAddress, "address", game.DefaultServerAddress, "Game server address")
	flag.BoolVar(&g.Online, "online", false, "Join a networked match instead of playing locally")
	flag.IntVar(&g.AIPlayers, "ai", 2, "Number of computer players in a local game")
	flag.StringVar(&lang, "lang", "", "Locale override (e.g. zh_CN)")
	flag.IntVar(&game.Debug, "debug", 0, "Print debug information")
	flag.Parse()

	if game.Debug > game.MaxDebug {
		game.Debug = game.MaxDebug
	}

	var force *language.Tag
	if lang != "" {
		tag, err := language.Parse(strings.ReplaceAll(lang, "_", "-"))
		if err == nil {
			force = &tag
		}
	}
	game.LoadLocale(force)
}
