package tags

import "github.com/yohamta/donburi"

var (
	Racer    = donburi.NewTag().SetName("Racer")
	Predator = donburi.NewTag().SetName("Predator")
	Particle = donburi.NewTag().SetName("Particle")
	Overlay  = donburi.NewTag().SetName("Overlay")
	Scenery  = donburi.NewTag().SetName("Scenery")
)
