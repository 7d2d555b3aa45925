package main

import (
	"image"
	"log"
	"os"

	"github.com/automoto/kartrace-mp/assets"
	"github.com/automoto/kartrace-mp/config"
	"github.com/automoto/kartrace-mp/fonts"
	"github.com/automoto/kartrace-mp/logging"
	"github.com/automoto/kartrace-mp/scenes"
	"github.com/automoto/kartrace-mp/shared/protocol"
	"github.com/automoto/kartrace-mp/view"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/urfave/cli"
	"go.uber.org/zap/zapcore"
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

func NewGame(skipMenu bool) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if skipMenu {
		g.scene = scenes.NewRaceScene(g)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

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

func run(c *cli.Context) error {
	level := zapcore.InfoLevel
	if c.Bool("verbose") {
		level = zapcore.DebugLevel
	}
	logging.Init(c.String("log"), level)
	defer logging.Sync()

	config.Debug.Overlay = c.Bool("debug")
	if name := c.String("name"); name != "" {
		config.Race.PlayerName = name
	}
	if track := c.String("track"); track != "" {
		config.Race.DefaultTrack = track
	}

	// Register network components for client-side deserialization
	if err := protocol.RegisterComponents(); err != nil {
		return err
	}
	if err := fonts.LoadDefaults(); err != nil {
		return err
	}
	if err := assets.LoadShaders(); err != nil {
		return err
	}
	view.PreloadAllSFX()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("kartrace")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	return ebiten.RunGame(NewGame(c.Bool("race")))
}

func main() {
	app := cli.NewApp()
	app.Name = "kartrace"
	app.Usage = "kart racing, offline or against a server"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "name", Value: "", Usage: "Driver name shown to other players"},
		cli.StringFlag{Name: "track", Value: "", Usage: "Track for offline races"},
		cli.BoolFlag{Name: "race", Usage: "Skip the menu and start an offline race"},
		cli.BoolFlag{Name: "debug", Usage: "Draw controller and collision overlay"},
		cli.BoolFlag{Name: "verbose", Usage: "Log debug messages"},
		cli.StringFlag{Name: "log", Value: "kartrace.log", Usage: "Log file, empty for stderr only"},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
