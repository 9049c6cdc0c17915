package main

import (
	"image"
	"log"
	"os"

	"github.com/automoto/pecking-order/assets"
	"github.com/automoto/pecking-order/config"
	"github.com/automoto/pecking-order/fonts"
	"github.com/automoto/pecking-order/scenes"
	"github.com/automoto/pecking-order/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	fonts.LoadDefaults()

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewSetupScene(g)

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	fullscreen := pflag.Bool("fullscreen", false, "start in fullscreen")
	pflag.Int64Var(&config.Debug.Seed, "seed", 0, "seed for every random race decision (0 = time seeded)")
	pflag.StringVar(&config.Debug.AssetsDir, "assets-dir", "", "directory with audio/<name>.mp3|ogg|wav overrides")
	pflag.BoolVar(&config.Debug.Enabled, "debug", false, "draw the finish line and racer boxes")
	pflag.BoolVar(&config.Debug.NoCapture, "no-capture", false, "never send the predator")
	pflag.Parse()

	res := config.DefaultWindow()
	ebiten.SetWindowSize(res.Width, res.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if config.Debug.AssetsDir != "" {
		systems.SetAudioOverrides(os.DirFS(config.Debug.AssetsDir))
	}
	systems.SetEffectsSeed(config.Debug.Seed)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	settings := systems.SavedData().LoadSettings()
	if *fullscreen {
		settings.Fullscreen = true
	}
	systems.ApplySettingsGlobal(settings)

	if err := assets.LoadShaders(); err != nil {
		log.Printf("Warning: Could not load shaders, seized racers draw untinted: %v", err)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
