package game

import (
	"os"
	"path"
	"strings"

	"github.com/coder/websocket"
)

var dialOptions = &websocket.DialOptions{
	CompressionMode: websocket.CompressionContextTakeover,
}

// loadNickname reads the nickname saved by a previous session.
func loadNickname() string {
	configDir := userConfigDir()
	if configDir == "" {
		return ""
	}
	b, err := os.ReadFile(path.Join(configDir, "config"))
	if err != nil {
		return ""
	}
	nickname, _, _ := strings.Cut(string(b), "\n")
	return strings.TrimSpace(nickname)
}

func saveNickname(nickname string) {
	configDir := userConfigDir()
	if configDir == "" {
		return
	}
	_ = os.MkdirAll(configDir, 0700)
	_ = os.WriteFile(path.Join(configDir, "config"), []byte(nickname+"\n"), 0600)
}
