//go:build linux

package game

import (
	"os"
	"path"
)

const targetFPS = 60

// Candidate CJK font files, tried before the embedded face.
var fontPaths = []string{
	"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/truetype/wqy/wqy-zenhei.ttc",
}

func userConfigDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return path.Join(configDir, "coinroad")
}

func GetLocale() (string, error) {
	return os.Getenv("LANG"), nil
}
