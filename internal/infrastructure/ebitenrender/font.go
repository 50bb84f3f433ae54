package ebitenrender

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// NewFace returns the HUD font face at the given point size
func NewFace(size float64) (font.Face, error) {
	fontData, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HUD font: %w", err)
	}
	return truetype.NewFace(fontData, &truetype.Options{Size: size}), nil
}
