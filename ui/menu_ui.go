package ui

import (
	"bytes"
	"image/color"

	"github.com/automoto/kartrace-mp/logging"
	"github.com/automoto/kartrace-mp/menu"
	"github.com/automoto/kartrace-mp/network"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// MenuUI draws the menu panels: the title ribbon, the online ribbon, the
// address dialog, the LAN server list and the lobby status. Which panel is
// shown is decided by the scene from the top of the menu stack.
type MenuUI struct {
	UI *ebitenui.UI

	defaultPort int
	onRibbon    func(event string)

	content      *widget.Container
	statusLabel  *widget.Label
	addressInput *widget.TextInput
	dialogDone   func(network.ServerInfo)

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewMenuUI(defaultPort int, onRibbon func(event string)) *MenuUI {
	ui := &MenuUI{defaultPort: defaultPort, onRibbon: onRibbon}
	ui.loadFonts()
	ui.buildRoot()
	return ui
}

func (ui *MenuUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		logging.Log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 18}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 12}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 10}
}

func (ui *MenuUI) buildRoot() {
	root := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	ui.content = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	root.AddChild(ui.content)

	ui.UI = &ebitenui.UI{Container: root}
}

// reset clears the panel and puts the title and status line back.
func (ui *MenuUI) reset(title string) {
	ui.content.RemoveChildren()
	ui.content.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(title, &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))
	ui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 200, 100, 255},
		}),
	)
}

func (ui *MenuUI) button(label string, minWidth int, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(minWidth, 26)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
			Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 120, 255}),
			Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
		}),
		widget.ButtonOpts.Text(label, &ui.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{200, 220, 255, 255},
			Pressed:  color.RGBA{150, 170, 200, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func row(spacing int) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(spacing),
		)),
	)
}

// Choice is one ribbon button.
type Choice struct {
	Label string
	Event string
}

// ShowChoices shows a titled ribbon of buttons. Clicks are reported with the
// choice's event name.
func (ui *MenuUI) ShowChoices(title string, choices []Choice) {
	ui.reset(title)

	ribbon := row(6)
	for _, c := range choices {
		event := c.Event
		ribbon.AddChild(ui.button(c.Label, 110, func() { ui.onRibbon(event) }))
	}
	ui.content.AddChild(ribbon)
	ui.content.AddChild(ui.statusLabel)
}

// ShowOnline shows the ribbon of the online screen.
func (ui *MenuUI) ShowOnline() {
	ui.ShowChoices("ONLINE", []Choice{
		{"Local network", menu.EventLAN},
		{"Enter address", menu.EventEnterAddress},
		{"Back", menu.EventBack},
	})
}

// Open shows the address dialog. It implements menu.AddressDialog.
func (ui *MenuUI) Open(defaultAddress string, done func(network.ServerInfo)) {
	ui.reset("ENTER SERVER ADDRESS")
	ui.dialogDone = done

	ui.addressInput = widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(220, 22)),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     image.NewNineSliceColor(color.RGBA{50, 50, 70, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 50, 255}),
		}),
		widget.TextInputOpts.Face(&ui.normalFace),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          color.RGBA{255, 255, 255, 255},
			Disabled:      color.RGBA{128, 128, 128, 255},
			Caret:         color.RGBA{255, 255, 255, 255},
			DisabledCaret: color.RGBA{128, 128, 128, 255},
		}),
		widget.TextInputOpts.Placeholder("host[:port]"),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(4)),
		widget.TextInputOpts.SubmitHandler(func(args *widget.TextInputChangedEventArgs) {
			ui.submitAddress(args.InputText)
		}),
	)
	ui.addressInput.SetText(defaultAddress)
	ui.addressInput.Focus(true)
	ui.content.AddChild(ui.addressInput)

	buttons := row(10)
	buttons.AddChild(ui.button("Connect", 100, func() { ui.submitAddress(ui.addressInput.GetText()) }))
	buttons.AddChild(ui.button("Cancel", 80, func() {
		ui.dialogDone = nil
		ui.ShowOnline()
	}))
	ui.content.AddChild(buttons)
	ui.content.AddChild(ui.statusLabel)
}

func (ui *MenuUI) submitAddress(input string) {
	if ui.dialogDone == nil {
		return
	}
	server, err := network.ParseAddress(input, ui.defaultPort)
	if err != nil {
		ui.SetStatus(err.Error())
		return
	}
	done := ui.dialogDone
	ui.dialogDone = nil
	done(server)
}

// ShowLAN lists the servers found on the local network.
func (ui *MenuUI) ShowLAN(servers []network.ServerInfo, onSelect func(i int), onBack func()) {
	ui.reset("LOCAL NETWORK")

	if len(servers) == 0 {
		ui.content.AddChild(widget.NewLabel(
			widget.LabelOpts.Text("No servers found", &ui.normalFace, &widget.LabelColor{
				Idle: color.RGBA{200, 200, 200, 255},
			}),
		))
	}
	for i, server := range servers {
		i := i
		ui.content.AddChild(ui.button(server.Name+"  "+server.Address(), 240, func() { onSelect(i) }))
	}

	buttons := row(10)
	buttons.AddChild(ui.button("Back", 80, onBack))
	ui.content.AddChild(buttons)
	ui.content.AddChild(ui.statusLabel)
}

// ShowLobby shows the join progress.
func (ui *MenuUI) ShowLobby(onCancel func()) {
	ui.reset("JOINING")
	ui.content.AddChild(ui.statusLabel)
	ui.content.AddChild(ui.button("Cancel", 80, onCancel))
}

func (ui *MenuUI) SetStatus(msg string) {
	if ui.statusLabel != nil {
		ui.statusLabel.Label = msg
	}
}

func (ui *MenuUI) Update() {
	ui.UI.Update()
}

func (ui *MenuUI) Draw(screen *ebiten.Image) {
	ui.UI.Draw(screen)
}
