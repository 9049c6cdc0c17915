package scenes

import (
	"errors"
	"log"
	"sync"

	"github.com/automoto/pecking-order/assets"
	cfg "github.com/automoto/pecking-order/config"
	"github.com/automoto/pecking-order/race"
	"github.com/automoto/pecking-order/systems"
	"github.com/automoto/pecking-order/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SetupScene collects racer names and starts a race
type SetupScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	setupUI      *ui.SetupUI
	once         sync.Once
	shouldStart  bool
}

// NewSetupScene creates the name entry scene
func NewSetupScene(sc SceneChanger) *SetupScene {
	return &SetupScene{sceneChanger: sc}
}

func (ss *SetupScene) Update() {
	ss.once.Do(ss.configure)

	ss.ecs.Update()
	ss.setupUI.Update()

	if systems.ActionJustPressed(ss.ecs, cfg.ActionStart) {
		ss.shouldStart = true
	}
	if ss.shouldStart {
		ss.shouldStart = false
		ss.startRace()
	}
}

func (ss *SetupScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Setup.Background)

	if ss.ecs == nil {
		return
	}

	ss.setupUI.UI.Draw(screen)
	ss.ecs.Draw(screen)
}

func (ss *SetupScene) configure() {
	ss.ecs = ecs.NewECS(donburi.NewWorld())

	ss.ecs.AddSystem(systems.UpdateAudio)
	ss.ecs.AddSystem(systems.UpdateInput)
	ss.ecs.AddSystem(systems.UpdateSettings)

	ss.ecs.AddRenderer(cfg.Overlay, systems.DrawSettingsToast)

	ss.setupUI = ui.NewSetupUI(
		systems.SavedData().LoadNames(),
		func() { ss.shouldStart = true },
	)

	systems.PlayMusic(ss.ecs, cfg.Sound.Music)
}

// startRace latches the names into a new session. With no usable names
// nothing happens and the form stays open.
func (ss *SetupScene) startRace() {
	names := ss.setupUI.Names()
	if err := systems.SavedData().SaveNames(names); err != nil {
		log.Printf("[setup] Warning: could not save names: %v", err)
	}

	course, err := assets.NewCourseLoader().LoadCourse(cfg.Scenery.Course)
	if err != nil {
		log.Printf("[setup] Warning: %v", err)
	}

	session := race.NewSession(raceOptions(course))
	if err := session.Start(names); err != nil {
		if !errors.Is(err, race.ErrEmptyRoster) {
			ss.setupUI.SetStatus(err.Error())
		}
		return
	}

	ss.sceneChanger.ChangeScene(NewRaceScene(ss.sceneChanger, session, course))
}
