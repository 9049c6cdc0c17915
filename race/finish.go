package race

import (
	"math"

	rc "github.com/automoto/pecking-order/shared/raceconfig"
	"github.com/solarlune/resolv"
)

const (
	tagFinish = "finish"
	tagRacer  = "racer"

	finishCellSize = 16
)

// FinishDetector tracks racer bodies in a resolv space alongside a finish
// zone that starts at the threshold and runs past the right edge.
type FinishDetector struct {
	space     *resolv.Space
	zone      *resolv.Object
	threshold float64
	pad       float64 // Space origin sits pad pixels above and left of the screen
}

func NewFinishDetector(width, height, threshold float64, t rc.Tuning) *FinishDetector {
	pad := t.LaneMaxSpacing + t.RacerHeight + t.LoopRadius*2
	spaceW := int(math.Ceil(width + t.RacerWidth + 2*pad))
	spaceH := int(math.Ceil(height + 2*pad))

	space := resolv.NewSpace(spaceW, spaceH, finishCellSize, finishCellSize)

	zoneW := float64(spaceW) - (threshold + pad)
	zone := resolv.NewObject(threshold+pad, 0, zoneW, float64(spaceH), tagFinish)
	zone.SetShape(resolv.NewRectangle(0, 0, zoneW, float64(spaceH)))
	space.Add(zone)

	return &FinishDetector{
		space:     space,
		zone:      zone,
		threshold: threshold,
		pad:       pad,
	}
}

func (d *FinishDetector) Threshold() float64 { return d.threshold }

// Track gives a racer a body in the space.
func (d *FinishDetector) Track(r *Racer) {
	obj := resolv.NewObject(r.ScreenX()+d.pad, r.ScreenY()+d.pad, r.W, r.H, tagRacer)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	obj.Data = r
	d.space.Add(obj)
	r.body = obj
}

// Untrack removes a racer that can no longer finish.
func (d *FinishDetector) Untrack(r *Racer) {
	if r.body == nil {
		return
	}
	d.space.Remove(r.body)
	r.body = nil
}

func (d *FinishDetector) sync(r *Racer) {
	r.body.X = r.ScreenX() + d.pad
	r.body.Y = r.ScreenY() + d.pad
	r.body.Update()
}

// Crossed returns the active racers whose right edge has reached the
// threshold, in roster order. Roster order is the tie-break for racers
// crossing on the same tick.
func (d *FinishDetector) Crossed(racers []*Racer) []*Racer {
	var out []*Racer
	for _, r := range racers {
		if !r.Active() || r.body == nil {
			continue
		}
		d.sync(r)
		if check := r.body.Check(0, 0, tagFinish); check == nil {
			continue
		}
		if r.Right() >= d.threshold {
			out = append(out, r)
		}
	}
	return out
}
