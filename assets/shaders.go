package assets

import (
	"embed"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// TintShader washes a sprite toward a color, used for seized racers
	TintShader *ebiten.Shader

	tintOp = &ebiten.DrawRectShaderOptions{}
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	if TintShader != nil {
		return nil
	}

	tintSrc, err := shaderFS.ReadFile("shaders/tint.kage")
	if err != nil {
		return err
	}
	TintShader, err = ebiten.NewShader(tintSrc)
	if err != nil {
		return err
	}

	return nil
}

// TintUniform converts a tint color to the shader's vec4, alpha is strength.
func TintUniform(c color.RGBA) []float32 {
	return []float32{
		float32(c.R) / 255,
		float32(c.G) / 255,
		float32(c.B) / 255,
		float32(c.A) / 255,
	}
}

// DrawTinted draws src with geo through the tint shader. Falls back to a
// plain draw when shaders are not loaded.
func DrawTinted(dst, src *ebiten.Image, geo ebiten.GeoM, tint color.RGBA) {
	if TintShader == nil {
		op := &ebiten.DrawImageOptions{GeoM: geo}
		dst.DrawImage(src, op)
		return
	}

	b := src.Bounds()
	tintOp.GeoM = geo
	tintOp.Images[0] = src
	tintOp.Uniforms = map[string]any{
		"TintColor": TintUniform(tint),
	}
	dst.DrawRectShader(b.Dx(), b.Dy(), TintShader, tintOp)
	tintOp.Images[0] = nil
}
