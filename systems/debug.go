package systems

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/pecking-order/config"
	"github.com/automoto/pecking-order/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// debugVisible is toggled at runtime, cfg.Debug.Enabled forces it on.
var debugVisible bool

// DrawDebug outlines the finish zone and every racer's detection box.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Enabled && !debugVisible {
		return
	}
	session := RaceSession(ecs)
	if session == nil {
		return
	}

	finish := color.RGBA{R: 255, G: 0, B: 255, A: 255}
	x := float32(session.Threshold())
	vector.FillRect(screen, x, 0, 1, float32(cfg.C.Height), finish, false)

	for _, r := range session.Racers() {
		c := color.RGBA{R: 0, G: 255, B: 255, A: 255} // Cyan default
		switch {
		case r.Captured || r.State == cfg.RacerSeized || r.State == cfg.RacerCarried:
			c = color.RGBA{R: 255, G: 0, B: 0, A: 255}
		case r.Winner:
			c = color.RGBA{R: 0, G: 255, B: 0, A: 255}
		case r.Loser:
			c = color.RGBA{R: 100, G: 100, B: 100, A: 255}
		}
		drawOutline(screen, r.ScreenX(), r.ScreenY(), r.W, r.H, c)
	}

	if p := session.Predator(); p != nil && p.Visible() {
		drawOutline(screen, p.X, p.Y, p.W, p.H, color.RGBA{R: 255, G: 200, B: 0, A: 255})
	}

	info := fmt.Sprintf("%s  t=%.2fs  finished %d/%d",
		session.State(), session.Elapsed(), session.Order().Len(), len(session.Racers()))
	text.Draw(screen, info, fonts.Small.Get(), 8, cfg.C.Height-8, cfg.White)
}

func drawOutline(screen *ebiten.Image, x, y, w, h float64, c color.RGBA) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)     // Top
	vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false) // Bottom
	vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)     // Left
	vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false) // Right
}
