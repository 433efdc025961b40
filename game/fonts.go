package game

import (
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

const (
	normalFontSize = 20
	largeFontSize  = 32
)

type fontSource struct {
	name string
	load func() ([]byte, error)
}

// fontSources lists candidate fonts in preference order: platform CJK font
// files first, then the embedded face. The embedded face always parses, so
// the chain never comes up empty.
func fontSources() []fontSource {
	sources := make([]fontSource, 0, len(fontPaths)+1)
	for _, p := range fontPaths {
		p := p
		sources = append(sources, fontSource{name: p, load: func() ([]byte, error) {
			return os.ReadFile(p)
		}})
	}
	sources = append(sources, fontSource{name: "embedded", load: func() ([]byte, error) {
		return fonts.MPlus1pRegular_ttf, nil
	}})
	return sources
}

// initializeFonts returns the two faces used by the renderer, trying each
// font source in order.
func initializeFonts() (font.Face, font.Face) {
	const dpi = 72
	for _, source := range fontSources() {
		b, err := source.load()
		if err != nil {
			continue
		}
		tt, err := opentype.Parse(b)
		if err != nil {
			log.Printf("parse font %s: %s", source.name, err)
			continue
		}
		normal, err := opentype.NewFace(tt, &opentype.FaceOptions{
			Size:    normalFontSize,
			DPI:     dpi,
			Hinting: font.HintingFull,
		})
		if err != nil {
			continue
		}
		large, err := opentype.NewFace(tt, &opentype.FaceOptions{
			Size:    largeFontSize,
			DPI:     dpi,
			Hinting: font.HintingFull,
		})
		if err != nil {
			continue
		}
		return normal, large
	}
	panic("no usable font")
}
