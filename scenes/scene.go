package scenes

import (
	"github.com/automoto/pecking-order/assets"
	cfg "github.com/automoto/pecking-order/config"
	"github.com/automoto/pecking-order/race"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// raceOptions builds session options for the logical screen, the course
// perch and the command-line debug switches.
func raceOptions(course assets.Course) race.Options {
	opts := race.DefaultOptions(float64(cfg.C.Width), float64(cfg.C.Height))
	opts.Tuning = cfg.Race
	if course.HasPerch {
		opts.PerchX, opts.PerchY = course.PerchX, course.PerchY
	}
	if cfg.Debug.Seed != 0 {
		opts.Rand = race.NewRand(cfg.Debug.Seed)
	}
	if cfg.Debug.NoCapture {
		opts.Tuning.CaptureChance = 0
	}
	return opts
}
