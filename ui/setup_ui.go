package ui

import (
	"bytes"
	"fmt"
	"image/color"

	cfg "github.com/automoto/pecking-order/config"
	"github.com/automoto/pecking-order/persistence"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// SetupUI is the name entry form: one text field per racer and a start button.
type SetupUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnStart func()

	inputs      [persistence.NameSlots]*widget.TextInput
	statusLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewSetupUI builds the form with saved names already filled in.
func NewSetupUI(saved []string, onStart func()) *SetupUI {
	sui := &SetupUI{OnStart: onStart}
	sui.loadFonts()
	sui.buildUI()

	for i, name := range persistence.PadNames(saved) {
		sui.inputs[i].SetText(name)
	}
	sui.inputs[0].Focus(true)

	return sui
}

func (sui *SetupUI) loadFonts() {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		panic(err)
	}

	sui.titleFace = &text.GoTextFace{Source: bold, Size: 40}
	sui.normalFace = &text.GoTextFace{Source: regular, Size: 18}
	sui.smallFace = &text.GoTextFace{Source: regular, Size: 14}
}

func (sui *SetupUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Setup.Background)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.Setup.Title, &sui.titleFace, &widget.LabelColor{
			Idle: cfg.BrightYellow,
		}),
	))
	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.Setup.Subtitle, &sui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	))

	contentContainer.AddChild(sui.buildNameFields())
	contentContainer.AddChild(sui.buildStartButton())

	sui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &sui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 100, 100, 255},
		}),
	)
	contentContainer.AddChild(sui.statusLabel)

	rootContainer.AddChild(contentContainer)

	sui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (sui *SetupUI) buildNameFields() *widget.Container {
	padding := widget.Insets{Top: 8, Bottom: 8, Left: 10, Right: 10}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Setup.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	for i := range sui.inputs {
		sui.inputs[i] = widget.NewTextInput(
			widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(cfg.Setup.InputWidth, cfg.Setup.InputHeight)),
			widget.TextInputOpts.Image(&widget.TextInputImage{
				Idle:     image.NewNineSliceColor(color.RGBA{50, 70, 105, 255}),
				Disabled: image.NewNineSliceColor(color.RGBA{40, 50, 70, 255}),
			}),
			widget.TextInputOpts.Face(&sui.normalFace),
			widget.TextInputOpts.Color(&widget.TextInputColor{
				Idle:          color.RGBA{255, 255, 255, 255},
				Disabled:      color.RGBA{128, 128, 128, 255},
				Caret:         color.RGBA{255, 255, 255, 255},
				DisabledCaret: color.RGBA{128, 128, 128, 255},
			}),
			widget.TextInputOpts.Placeholder(fmt.Sprintf(cfg.Setup.Placeholder, i+1)),
			widget.TextInputOpts.Padding(widget.NewInsetsSimple(4)),
		)
		panel.AddChild(sui.inputs[i])
	}

	return panel
}

func (sui *SetupUI) buildStartButton() *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(cfg.Setup.InputWidth, 34)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{40, 100, 40, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{60, 140, 60, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{30, 80, 30, 255}),
		}),
		widget.ButtonOpts.Text(cfg.Setup.StartLabel, &sui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{200, 255, 200, 255},
			Pressed: color.RGBA{150, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if sui.OnStart != nil {
				sui.OnStart()
			}
		}),
	)
}

// Names returns the raw contents of every name field in slot order.
func (sui *SetupUI) Names() []string {
	names := make([]string, len(sui.inputs))
	for i, in := range sui.inputs {
		names[i] = in.GetText()
	}
	return names
}

func (sui *SetupUI) SetStatus(msg string) {
	if sui.statusLabel != nil {
		sui.statusLabel.Label = msg
	}
}

func (sui *SetupUI) Update() {
	sui.UI.Update()
}
