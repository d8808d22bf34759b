package ui

import (
	"bytes"
	"image/color"

	"github.com/automoto/spritesandbox/assets/animations"
	cfg "github.com/automoto/spritesandbox/config"
	"github.com/automoto/spritesandbox/mapper"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// MapperUI is the form on the left of the mapper screen: one row of
// start/end/fps inputs per animation slot, the scale stepper and a status
// line. It holds no state of its own beyond the widgets; the session is the
// source of truth.
type MapperUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnPreview func(name animations.Name)
	OnScale   func(steps int)
	OnBack    func()

	inputs       map[animations.Name]*[3]*widget.TextInput
	slotButtons  map[animations.Name]*widget.Button
	scaleLabel   *widget.Label
	previewLabel *widget.Label
	statusLabel  *widget.Label

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewMapperUI builds the form and fills it from session.
func NewMapperUI(session *mapper.Session, onPreview func(animations.Name), onScale func(int), onBack func()) *MapperUI {
	mui := &MapperUI{
		OnPreview:   onPreview,
		OnScale:     onScale,
		OnBack:      onBack,
		inputs:      make(map[animations.Name]*[3]*widget.TextInput, len(animations.Names)),
		slotButtons: make(map[animations.Name]*widget.Button, len(animations.Names)),
	}

	mui.loadFonts()
	mui.buildUI()
	mui.Load(session)

	return mui
}

func (mui *MapperUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	mui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   20,
	}
	mui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
	mui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
}

func (mui *MapperUI) buildUI() {
	// Root container with AnchorLayout; only the panel has a background so
	// the scene's own drawing shows through on the right.
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.Mapper.PanelWidth, cfg.C.Height),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("ANIMATIONS", &mui.titleFace, &widget.LabelColor{
			Idle: cfg.White,
		}),
	))
	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Click a frame in the grid to fill the next empty field", &mui.smallFace, &widget.LabelColor{
			Idle: cfg.Gray,
		}),
	))

	for _, name := range animations.Names {
		panel.AddChild(mui.buildSlotRow(name))
	}

	panel.AddChild(mui.buildScaleRow())

	mui.previewLabel = widget.NewLabel(
		widget.LabelOpts.Text("Select an animation", &mui.normalFace, &widget.LabelColor{
			Idle: cfg.LightGray,
		}),
	)
	panel.AddChild(mui.previewLabel)

	mui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &mui.smallFace, &widget.LabelColor{
			Idle: cfg.LightRed,
		}),
	)
	panel.AddChild(mui.statusLabel)

	backButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(120, 28),
		),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text("BACK (Esc)", &mui.normalFace, mui.buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if mui.OnBack != nil {
				mui.OnBack()
			}
		}),
	)
	panel.AddChild(backButton)

	rootContainer.AddChild(panel)

	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (mui *MapperUI) buildSlotRow(name animations.Name) *widget.Container {
	padding := widget.Insets{Top: 2, Bottom: 2, Left: 4, Right: 4}
	row := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.BoxColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	label := string(name)
	if name.Required() {
		label += " *"
	}
	slot := name // Capture for closure
	button := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(110, 24),
		),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text(label, &mui.normalFace, mui.buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if mui.OnPreview != nil {
				mui.OnPreview(slot)
			}
		}),
	)
	mui.slotButtons[name] = button
	row.AddChild(button)

	var inputs [3]*widget.TextInput
	for i, placeholder := range []string{"start", "end", "fps"} {
		inputs[i] = mui.newNumberInput(placeholder)
		row.AddChild(inputs[i])
	}
	mui.inputs[name] = &inputs

	return row
}

func (mui *MapperUI) buildScaleRow() *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	row.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Sprite scale", &mui.normalFace, &widget.LabelColor{
			Idle: cfg.White,
		}),
	))

	step := func(label string, steps int) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(28, 24),
			),
			widget.ButtonOpts.Image(mui.buttonImage()),
			widget.ButtonOpts.Text(label, &mui.normalFace, mui.buttonTextColor()),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if mui.OnScale != nil {
					mui.OnScale(steps)
				}
			}),
		)
	}

	row.AddChild(step("-", -1))
	mui.scaleLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &mui.normalFace, &widget.LabelColor{
			Idle: cfg.LightGreen,
		}),
	)
	row.AddChild(mui.scaleLabel)
	row.AddChild(step("+", 1))

	return row
}

func (mui *MapperUI) newNumberInput(placeholder string) *widget.TextInput {
	return widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(80, 24)),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     image.NewNineSliceColor(color.RGBA{50, 50, 70, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 50, 255}),
		}),
		widget.TextInputOpts.Face(&mui.normalFace),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          cfg.White,
			Disabled:      cfg.Gray,
			Caret:         cfg.White,
			DisabledCaret: cfg.Gray,
		}),
		widget.TextInputOpts.Placeholder(placeholder),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(4)),
	)
}

func (mui *MapperUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func (mui *MapperUI) buttonTextColor() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle:    cfg.White,
		Hover:   color.RGBA{255, 255, 200, 255},
		Pressed: cfg.LightGray,
	}
}

// Load copies every field of session into the inputs.
func (mui *MapperUI) Load(session *mapper.Session) {
	for _, name := range animations.Names {
		inputs := mui.inputs[name]
		for i := range inputs {
			inputs[i].SetText(session.Get(name, mapper.Field(i)))
		}
	}
	mui.UpdateUI(session)
}

// SetField writes one input, e.g. after a grid click filled it.
func (mui *MapperUI) SetField(name animations.Name, field mapper.Field, value string) {
	if inputs, ok := mui.inputs[name]; ok {
		inputs[field].SetText(value)
	}
}

// Collect copies the inputs into session and reports whether anything
// changed since the last call.
func (mui *MapperUI) Collect(session *mapper.Session) bool {
	changed := false
	for _, name := range animations.Names {
		inputs := mui.inputs[name]
		for i := range inputs {
			field := mapper.Field(i)
			value := inputs[i].GetText()
			if session.Get(name, field) != value {
				session.Set(name, field, value)
				changed = true
			}
		}
	}
	return changed
}

// UpdateUI refreshes the labels that mirror session state.
func (mui *MapperUI) UpdateUI(session *mapper.Session) {
	mui.scaleLabel.Label = session.FormatScale()

	target, ok := session.PreviewTarget()
	if ok {
		mui.previewLabel.Label = "Playing: " + string(target)
	} else {
		mui.previewLabel.Label = "Select an animation"
	}

	for name, button := range mui.slotButtons {
		label := string(name)
		if name.Required() {
			label += " *"
		}
		if name == session.ActivePreview {
			label = "> " + label
		}
		button.Text().Label = label
	}
}

// SetStatus shows a message under the form; an empty string clears it.
func (mui *MapperUI) SetStatus(msg string) {
	mui.statusLabel.Label = msg
}
