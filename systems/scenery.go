package systems

import (
	"github.com/automoto/pecking-order/assets"
	"github.com/automoto/pecking-order/components"
	cfg "github.com/automoto/pecking-order/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateScenery drifts the clouds, wrapping them back in from the left.
func UpdateScenery(ecs *ecs.ECS) {
	entry, ok := components.Scenery.First(ecs.World)
	if !ok {
		return
	}
	sc := components.Scenery.Get(entry)
	dt := 1.0 / float64(cfg.C.TPS)
	for i, c := range sc.Course.Clouds {
		sc.CloudX[i] = driftCloud(sc.CloudX[i], c, dt, float64(cfg.C.Width))
	}
}

// driftCloud moves a cloud one step and wraps it once fully off the right edge.
func driftCloud(x float64, c assets.Cloud, dt, width float64) float64 {
	speed := c.Speed
	if speed <= 0 {
		speed = cfg.Scenery.CloudDriftPx
	}
	x += speed * dt
	if x > width {
		x = -c.Width
	}
	return x
}

// DrawScenery renders the backdrop, clouds, lane guides and the finish banner.
func DrawScenery(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Scenery.First(ecs.World)
	if !ok {
		return
	}
	sc := components.Scenery.Get(entry)

	if sc.Background != nil {
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		screen.DrawImage(sc.Background, drawOp)
	}

	for i, c := range sc.Course.Clouds {
		drawCloud(screen, sc.CloudX[i], c)
	}

	session := RaceSession(ecs)
	if session == nil {
		return
	}
	drawLaneGuides(screen, session.LaneSpacing(), len(session.Racers()))
	drawFinishBanner(screen, session.Threshold(), sc.Course.Finish)
}

func drawCloud(screen *ebiten.Image, x float64, c assets.Cloud) {
	w, h := c.Width, c.Height
	col := cfg.Scenery.Cloud
	assets.FillEllipse(screen, x+w*0.5, c.Y+h*0.6, w*0.5, h*0.4, col)
	assets.FillEllipse(screen, x+w*0.35, c.Y+h*0.4, w*0.25, h*0.4, col)
	assets.FillEllipse(screen, x+w*0.65, c.Y+h*0.35, w*0.22, h*0.35, col)
}

func drawLaneGuides(screen *ebiten.Image, spacing float64, lanes int) {
	const dash, gap = 14, 10
	t := cfg.Race
	width := float32(cfg.C.Width)
	for i := 0; i < lanes; i++ {
		y := float32(t.TrackTopMargin + float64(i)*spacing + t.RacerHeight)
		for x := float32(0); x < width; x += dash + gap {
			vector.FillRect(screen, x, y, dash, 1, cfg.Scenery.LaneGuide, false)
		}
	}
}

// drawFinishBanner draws a two-column checkered post centred on the threshold.
func drawFinishBanner(screen *ebiten.Image, threshold float64, b assets.FinishBanner) {
	checks := b.Checks
	if checks <= 0 {
		checks = 1
	}
	w := float32(b.Width)
	if w <= 0 {
		w = 10
	}
	x := float32(threshold) - w/2
	cell := float32(b.Height) / float32(checks)
	half := w / 2
	for i := 0; i < checks; i++ {
		y := float32(b.Y) + float32(i)*cell
		a, c := cfg.Scenery.FinishPoleA, cfg.Scenery.FinishPoleB
		if i%2 == 1 {
			a, c = c, a
		}
		vector.FillRect(screen, x, y, half, cell, a, false)
		vector.FillRect(screen, x+half, y, half, cell, c, false)
	}
}
