//go:build windows

package game

import (
	"os"
	"path"
)

const targetFPS = 60

// Candidate CJK font files, tried before the embedded face.
var fontPaths = []string{
	"C:/Windows/Fonts/simhei.ttf",
	"C:/Windows/Fonts/msyh.ttc",
}

func userConfigDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return path.Join(configDir, "coinroad")
}
