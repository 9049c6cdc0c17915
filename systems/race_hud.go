package systems

import (
	"image"
	"image/color"

	"github.com/automoto/pecking-order/components"
	cfg "github.com/automoto/pecking-order/config"
	"github.com/automoto/pecking-order/fonts"
	"github.com/automoto/pecking-order/race"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// winnerTextY is the baseline centre of the winner overlay.
const winnerTextY = 110

type textKey struct {
	font fonts.FontName
	s    string
}

// Pre-rendered white text, tinted and scaled at draw time
var textCache = map[textKey]*ebiten.Image{}

// ResultLine is one row of the results panel.
type ResultLine struct {
	Text     string
	Captured bool
}

// ResultLines formats the final standings, marking snatched racers.
func ResultLines(results []race.Result) []ResultLine {
	lines := make([]ResultLine, len(results))
	for i, r := range results {
		s := r.String()
		if r.Captured {
			s += cfg.RaceHUD.CapturedSuffix
		}
		lines[i] = ResultLine{Text: s, Captured: r.Captured}
	}
	return lines
}

// DrawRaceHUD dims the track during the countdown and shows the results
// panel once the race is over.
func DrawRaceHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	session := RaceSession(ecs)
	if session == nil {
		return
	}

	switch session.State() {
	case cfg.RaceStateCountdown:
		vector.FillRect(screen, 0, 0, float32(cfg.C.Width), float32(cfg.C.Height),
			cfg.RaceHUD.CountdownDim, false)
	case cfg.RaceStateFinished:
		drawResults(screen, session.Results())
	}
}

// DrawOverlays renders countdown and winner text with their pop and fade.
func DrawOverlays(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Overlay.Each(ecs.World, func(e *donburi.Entry) {
		ov := components.Overlay.Get(e)
		if ov.Text == "" || ov.Alpha <= 0 {
			return
		}

		cx, cy := float64(cfg.C.Width)/2, float64(cfg.C.Height)/2
		font := fonts.Countdown
		if ov.Kind == components.OverlayWinner {
			font = fonts.Heading
			cy = winnerTextY
		}
		drawScaledText(screen, font, ov.Text, cx, cy, ov.Scale, ov.Color, ov.Alpha)
	})
}

func drawResults(screen *ebiten.Image, results []race.Result) {
	h := cfg.RaceHUD
	lines := ResultLines(results)
	body := fonts.Body.Get()

	panel := ResultsTitleRect()
	panelW := float32(0)
	for _, l := range lines {
		if w := float32(text.BoundString(body, l.Text).Dx()); w > panelW {
			panelW = w
		}
	}
	if w := float32(panel.Dx()); w > panelW {
		panelW = w
	}
	panelW += float32(h.ResultsPanelPadX * 2)
	top := float32(panel.Min.Y) - 8
	bottom := float32(h.ResultsTop+h.ResultsLineGap*float64(len(lines))) + 8
	vector.FillRect(screen, float32(cfg.C.Width)/2-panelW/2, top, panelW, bottom-top, h.ResultsPanel, false)

	titleCX := float64(panel.Min.X+panel.Max.X) / 2
	titleCY := float64(panel.Min.Y+panel.Max.Y) / 2
	drawScaledText(screen, fonts.Heading, h.ResultsTitle, titleCX, titleCY, 0.6, cfg.BrightOrange, 1)

	for i, l := range lines {
		clr := h.ResultsColor
		if l.Captured {
			clr = h.CapturedColor
		}
		w := text.BoundString(body, l.Text).Dx()
		x := cfg.C.Width/2 - w/2
		y := int(h.ResultsTop + h.ResultsLineGap*float64(i+1))
		text.Draw(screen, l.Text, body, x, y, clr)
	}

	small := fonts.Small.Get()
	hw := text.BoundString(small, h.ReturnHint).Dx()
	text.Draw(screen, h.ReturnHint, small, cfg.C.Width/2-hw/2, cfg.C.Height-16, cfg.White)
}

// ResultsTitleRect is the clickable results heading; clicking it starts a
// new race.
func ResultsTitleRect() image.Rectangle {
	const w, h = 200, 36
	top := int(cfg.RaceHUD.ResultsTop) - h - 4
	left := cfg.C.Width/2 - w/2
	return image.Rect(left, top, left+w, top+h)
}

// drawScaledText draws s centred on (cx, cy) at the given scale.
func drawScaledText(screen *ebiten.Image, font fonts.FontName, s string, cx, cy, scale float64, clr color.RGBA, alpha float64) {
	img := textImage(font, s)
	b := img.Bounds()

	drawOp.GeoM.Reset()
	drawOp.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	drawOp.GeoM.Scale(scale, scale)
	drawOp.GeoM.Translate(cx, cy)

	drawOp.ColorScale.Reset()
	drawOp.ColorScale.ScaleWithColor(clr)
	drawOp.ColorScale.ScaleAlpha(float32(alpha))
	screen.DrawImage(img, drawOp)
}

func textImage(font fonts.FontName, s string) *ebiten.Image {
	key := textKey{font: font, s: s}
	if img, ok := textCache[key]; ok {
		return img
	}
	face := font.Get()
	b := text.BoundString(face, s)
	const pad = 4
	img := ebiten.NewImage(b.Dx()+pad*2, b.Dy()+pad*2)
	text.Draw(img, s, face, pad-b.Min.X, pad-b.Min.Y, cfg.White)
	textCache[key] = img
	return img
}
