package assets

import (
	"fmt"
	"image"
	"image/color"
	"math"

	cfg "github.com/automoto/pecking-order/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteLoader paints bird sheets on first use and caches them with their
// frame sub-images.
type SpriteLoader struct {
	sheets     map[string]*ebiten.Image
	frameCache map[string]*ebiten.Image
	feather    *ebiten.Image
	egg        *ebiten.Image
	white      *ebiten.Image
}

func NewSpriteLoader() *SpriteLoader {
	return &SpriteLoader{
		sheets:     make(map[string]*ebiten.Image),
		frameCache: make(map[string]*ebiten.Image),
	}
}

var spriteLoader = NewSpriteLoader()

// BirdSheet returns the two-frame sheet for a sprite key.
func BirdSheet(sprite string) *ebiten.Image {
	return spriteLoader.sheet(sprite)
}

// BirdFrame returns a cached sub-image for one frame of a bird sheet.
func BirdFrame(sprite string, frame int) *ebiten.Image {
	return spriteLoader.frame(sprite, frame)
}

// FeatherImage is a white feather, tinted per particle.
func FeatherImage() *ebiten.Image {
	if spriteLoader.feather == nil {
		spriteLoader.feather = spriteLoader.paintFeather()
	}
	return spriteLoader.feather
}

// EggImage is a white egg, tinted per particle.
func EggImage() *ebiten.Image {
	if spriteLoader.egg == nil {
		spriteLoader.egg = spriteLoader.paintEgg()
	}
	return spriteLoader.egg
}

// PreloadSprites paints every catalog bird so the first race frame does not stall.
func PreloadSprites() {
	for _, key := range cfg.SpriteCatalog {
		for i := 0; i < cfg.BirdFrames; i++ {
			_ = BirdFrame(key, i)
		}
	}
	for i := 0; i < cfg.BirdFrames; i++ {
		_ = BirdFrame(cfg.PredatorSprite, i)
	}
	_ = FeatherImage()
	_ = EggImage()
}

// FillPolygon draws a convex polygon onto dst.
func FillPolygon(dst *ebiten.Image, pts [][2]float64, c color.RGBA) {
	spriteLoader.fill(dst, pts, c)
}

// FillEllipse draws a filled ellipse onto dst.
func FillEllipse(dst *ebiten.Image, cx, cy, rx, ry float64, c color.RGBA) {
	spriteLoader.fill(dst, ellipsePolygon(cx, cy, rx, ry, 40), c)
}

// FrameRect is the source rectangle of frame i on a bird sheet.
func FrameRect(i int) image.Rectangle {
	w, h := cfg.Birds.FrameWidth, cfg.Birds.FrameHeight
	return image.Rect(i*w, 0, (i+1)*w, h)
}

func (l *SpriteLoader) sheet(sprite string) *ebiten.Image {
	if img, ok := l.sheets[sprite]; ok {
		return img
	}
	w, h := cfg.Birds.FrameWidth, cfg.Birds.FrameHeight
	img := ebiten.NewImage(w*cfg.BirdFrames, h)
	palette := cfg.PaletteFor(sprite)
	for i := 0; i < cfg.BirdFrames; i++ {
		l.paintBird(img, float64(i*w), palette, i == 0)
	}
	l.sheets[sprite] = img
	return img
}

func (l *SpriteLoader) frame(sprite string, i int) *ebiten.Image {
	key := fmt.Sprintf("%s/%d", sprite, i)
	if img, ok := l.frameCache[key]; ok {
		return img
	}
	frame := l.sheet(sprite).SubImage(FrameRect(i)).(*ebiten.Image)
	l.frameCache[key] = frame
	return frame
}

func (l *SpriteLoader) whitePixel() *ebiten.Image {
	if l.white == nil {
		base := ebiten.NewImage(3, 3)
		base.Fill(color.White)
		l.white = base.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return l.white
}

// fill draws a convex polygon.
func (l *SpriteLoader) fill(dst *ebiten.Image, pts [][2]float64, c color.RGBA) {
	if len(pts) < 3 {
		return
	}
	r, g, b, a := float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255
	vs := make([]ebiten.Vertex, len(pts))
	for i, p := range pts {
		vs[i] = ebiten.Vertex{
			DstX: float32(p[0]), DstY: float32(p[1]),
			SrcX: 1, SrcY: 1,
			ColorR: r * a, ColorG: g * a, ColorB: b * a, ColorA: a,
		}
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(vs, fanIndices(len(pts)), l.whitePixel(), op)
}

// paintBird draws a right-facing bird into the frame starting at ox.
// wingUp selects the upstroke frame.
func (l *SpriteLoader) paintBird(dst *ebiten.Image, ox float64, p cfg.BirdPalette, wingUp bool) {
	s := p.Scale
	if s <= 0 {
		s = 1
	}
	fw, fh := float64(cfg.Birds.FrameWidth), float64(cfg.Birds.FrameHeight)
	cx, cy := ox+fw*0.45, fh*0.5

	// Tail
	l.fill(dst, [][2]float64{
		{cx - 22*s, cy - 4*s},
		{cx - 40*s, cy - 12*s},
		{cx - 38*s, cy + 8*s},
		{cx - 22*s, cy + 6*s},
	}, p.Wing)

	// Body and belly
	l.fill(dst, ellipsePolygon(cx, cy, 26*s, 16*s, 28), p.Body)
	l.fill(dst, ellipsePolygon(cx+4*s, cy+6*s, 17*s, 8*s, 20), p.Belly)

	// Head, crest, eye
	hx, hy := cx+22*s, cy-10*s
	if p.Crest {
		l.fill(dst, [][2]float64{
			{hx - 6*s, hy - 8*s},
			{hx - 2*s, hy - 19*s},
			{hx + 4*s, hy - 9*s},
		}, p.Wing)
	}
	l.fill(dst, ellipsePolygon(hx, hy, 11*s, 11*s, 20), p.Body)
	l.fill(dst, ellipsePolygon(hx+4*s, hy-3*s, 2.4*s, 2.4*s, 10), p.Eye)

	// Beak
	beak := 10 * s
	if p.Beak2x {
		beak = 20 * s
	}
	l.fill(dst, [][2]float64{
		{hx + 9*s, hy - 3*s},
		{hx + 9*s + beak, hy + 1*s},
		{hx + 9*s, hy + 4*s},
	}, p.Beak)

	// Wing
	tipY := cy + 22*s
	if wingUp {
		tipY = cy - 26*s
	}
	l.fill(dst, [][2]float64{
		{cx - 10*s, cy - 2*s},
		{cx + 10*s, cy - 2*s},
		{cx - 14*s, tipY},
	}, p.Wing)
}

func (l *SpriteLoader) paintFeather() *ebiten.Image {
	img := ebiten.NewImage(10, 24)
	l.fill(img, ellipsePolygon(5, 11, 4, 10, 16), color.RGBA{R: 255, G: 255, B: 255, A: 255})
	l.fill(img, [][2]float64{{4.6, 2}, {5.4, 2}, {5.4, 23}, {4.6, 23}}, color.RGBA{R: 180, G: 180, B: 180, A: 255})
	return img
}

func (l *SpriteLoader) paintEgg() *ebiten.Image {
	img := ebiten.NewImage(14, 18)
	pts := ellipsePolygon(7, 9, 6, 8, 20)
	// Narrow the top half for an egg shape
	for i := range pts {
		if pts[i][1] < 9 {
			pts[i][0] = 7 + (pts[i][0]-7)*0.82
		}
	}
	l.fill(img, pts, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	return img
}

// ellipsePolygon approximates an ellipse with n points, clockwise from 3 o'clock.
func ellipsePolygon(cx, cy, rx, ry float64, n int) [][2]float64 {
	if n < 3 {
		n = 3
	}
	pts := make([][2]float64, n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = [2]float64{cx + rx*math.Cos(a), cy + ry*math.Sin(a)}
	}
	return pts
}

// fanIndices triangulates a convex polygon of n vertices around vertex 0.
func fanIndices(n int) []uint16 {
	if n < 3 {
		return nil
	}
	is := make([]uint16, 0, (n-2)*3)
	for i := 1; i < n-1; i++ {
		is = append(is, 0, uint16(i), uint16(i+1))
	}
	return is
}
