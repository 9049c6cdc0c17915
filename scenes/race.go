package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/pecking-order/assets"
	cfg "github.com/automoto/pecking-order/config"
	"github.com/automoto/pecking-order/race"
	"github.com/automoto/pecking-order/systems"
	"github.com/automoto/pecking-order/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RaceScene plays one started session through to its results
type RaceScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	session      *race.Session
	course       assets.Course
	once         sync.Once
}

// NewRaceScene creates the scene for a session that has already started
func NewRaceScene(sc SceneChanger, session *race.Session, course assets.Course) *RaceScene {
	return &RaceScene{sceneChanger: sc, session: session, course: course}
}

func (rs *RaceScene) Update() {
	rs.once.Do(rs.configure)
	rs.ecs.Update()

	if systems.ActionJustPressed(rs.ecs, cfg.ActionBack) ||
		(systems.IsRaceFinished(rs.ecs) && systems.ClickedIn(rs.ecs, systems.ResultsTitleRect())) {
		rs.sceneChanger.ChangeScene(NewSetupScene(rs.sceneChanger))
	}
}

func (rs *RaceScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if rs.ecs == nil {
		return
	}
	rs.ecs.Draw(screen)
}

func (rs *RaceScene) configure() {
	// Preload assets to avoid a stall on the first countdown tick
	systems.PreloadAllSFX()
	assets.PreloadSprites()

	ecs := ecs.NewECS(donburi.NewWorld())

	// Audio system runs first so this tick's events play next tick at the latest
	ecs.AddSystem(systems.UpdateAudio)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateRace)
	ecs.AddSystem(systems.UpdateRacers)
	ecs.AddSystem(systems.UpdateScenery)
	ecs.AddSystem(systems.UpdateEffects)

	ecs.AddRenderer(cfg.Default, systems.DrawScenery)
	ecs.AddRenderer(cfg.Default, systems.DrawRacers)
	ecs.AddRenderer(cfg.Default, systems.DrawPredator)
	ecs.AddRenderer(cfg.Default, systems.DrawParticles)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Overlay, systems.DrawRaceHUD)
	ecs.AddRenderer(cfg.Overlay, systems.DrawOverlays)
	ecs.AddRenderer(cfg.Overlay, systems.DrawSettingsToast)

	rs.ecs = ecs

	factory.CreateScenery(rs.ecs, rs.course)
	factory.CreateRace(rs.ecs, rs.session)
	factory.CreateRacers(rs.ecs, rs.session)
	factory.SpawnCountdownOverlay(rs.ecs, rs.session.Countdown())

	systems.PlayMusic(rs.ecs, cfg.Sound.Music)
}
