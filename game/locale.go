package game

import (
	"embed"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/leonelquinteros/gotext"
	"golang.org/x/text/language"
)

//go:embed locales
var localeFS embed.FS

var supportedLanguages = []language.Tag{
	language.English,
	language.SimplifiedChinese,
}

var localeNames = []string{"en_US", "zh_CN"}

// LoadLocale configures translations for the system locale, or for the
// forced tag when one is given. English strings are the message IDs, so
// failing to detect or match a locale leaves the game in English.
func LoadLocale(forceLanguage *language.Tag) {
	tag := forceLanguage
	if tag == nil {
		locale, err := GetLocale()
		if err != nil || strings.TrimSpace(locale) == "" {
			return
		}
		locale, _, _ = strings.Cut(strings.TrimSpace(locale), ".")
		parsed, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
		if err != nil {
			return
		}
		tag = &parsed
	}

	matcher := language.NewMatcher(supportedLanguages)
	_, index, _ := matcher.Match(*tag)
	if index == 0 {
		return
	}

	dir := extractLocales()
	if dir == "" {
		return
	}
	gotext.Configure(dir, localeNames[index], "coinroad")
}

// extractLocales copies the embedded locale files under the user config
// dir, where gotext can read them, and returns that directory.
func extractLocales() string {
	configDir := userConfigDir()
	if configDir == "" {
		return ""
	}

	err := fs.WalkDir(localeFS, "locales", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := path.Join(configDir, p)
		if d.IsDir() {
			return os.MkdirAll(target, 0700)
		}
		b, err := localeFS.ReadFile(p)
		if err != nil {
			return err
		}
		return os.WriteFile(target, b, 0600)
	})
	if err != nil {
		return ""
	}
	return path.Join(configDir, "locales")
}
