package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Label     FontName = "label"
	Body      FontName = "body"
	Heading   FontName = "heading"
	Countdown FontName = "countdown"
	Small     FontName = "small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

func LoadFont(name FontName, ttf []byte) {
	LoadFontWithSize(name, ttf, 10)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		panic(fmt.Sprintf("Font %s could not be parsed: %v", name, err))
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size, Hinting: font.HintingFull})
}

// LoadDefaults registers every face the HUD uses from the Go fonts.
func LoadDefaults() {
	LoadFontWithSize(Label, gobold.TTF, 13)
	LoadFontWithSize(Body, goregular.TTF, 20)
	LoadFontWithSize(Heading, gobold.TTF, 44)
	LoadFontWithSize(Countdown, gobold.TTF, 96)
	LoadFontWithSize(Small, goregular.TTF, 14)
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
