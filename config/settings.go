package config

// Resolution represents a window size option
type Resolution struct {
	Width  int
	Height int
	Label  string
}

// WindowConfig contains desktop window configuration
type WindowConfig struct {
	Resolutions            []Resolution
	DefaultResolutionIndex int
}

// Window is the global window configuration
var Window WindowConfig

func init() {
	Window = WindowConfig{
		Resolutions: []Resolution{
			{Width: 960, Height: 540, Label: "960 x 540"},
			{Width: 1280, Height: 720, Label: "1280 x 720"},
			{Width: 1920, Height: 1080, Label: "1920 x 1080"},
		},
		DefaultResolutionIndex: 1,
	}
}

// DefaultWindow returns the window size used on first launch.
func DefaultWindow() Resolution {
	return Window.Resolutions[Window.DefaultResolutionIndex]
}
