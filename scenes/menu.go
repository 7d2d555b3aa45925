package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/kartrace-mp/config"
	"github.com/automoto/kartrace-mp/logging"
	"github.com/automoto/kartrace-mp/ui"
	"github.com/automoto/kartrace-mp/view"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

const layerDefault ecs.LayerID = 0

const (
	choiceRace   = "race"
	choiceOnline = "online"
)

// MenuScene displays the main menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	menuUI       *ui.MenuUI
	status       string
	next         string
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

// NewMenuSceneWithStatus returns to the menu showing why the last session
// ended.
func NewMenuSceneWithStatus(sc SceneChanger, status string) *MenuScene {
	return &MenuScene{sceneChanger: sc, status: status}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()

	switch ms.next {
	case choiceRace:
		ms.sceneChanger.ChangeScene(NewRaceScene(ms.sceneChanger))
	case choiceOnline:
		ms.sceneChanger.ChangeScene(NewOnlineScene(ms.sceneChanger))
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	ms.menuUI = ui.NewMenuUI(cfg.Network.DefaultPort, func(event string) {
		view.PlaySounds([]string{cfg.SoundMenu})
		logging.Log.Debugf("[menu] selected %s", event)
		ms.next = event
	})
	ms.menuUI.ShowChoices("KARTRACE", []ui.Choice{
		{Label: "Race", Event: choiceRace},
		{Label: "Online", Event: choiceOnline},
	})
	ms.menuUI.SetStatus(ms.status)

	ms.ecs.AddSystem(func(*ecs.ECS) { ms.menuUI.Update() })
	ms.ecs.AddRenderer(layerDefault, func(_ *ecs.ECS, screen *ebiten.Image) {
		ms.menuUI.Draw(screen)
	})
}
