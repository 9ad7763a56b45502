package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/typefall/components"
	"github.com/automoto/typefall/input"
	"github.com/automoto/typefall/input/keyboard"
	"github.com/automoto/typefall/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TitleScene lets the player pick a starting level
type TitleScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	deps         *Deps
	once         sync.Once
	err          error
}

// NewTitleScene creates a new title scene
func NewTitleScene(sc SceneChanger, deps *Deps) *TitleScene {
	return &TitleScene{sceneChanger: sc, deps: deps}
}

func (ts *TitleScene) Update() error {
	ts.once.Do(ts.configure)
	ts.ecs.Update()
	return ts.err
}

func (ts *TitleScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ts.ecs == nil {
		return
	}
	ts.ecs.Draw(screen)
}

func (ts *TitleScene) configure() {
	ts.ecs = ecs.NewECS(donburi.NewWorld())

	entry := ts.ecs.World.Entry(ts.ecs.World.Create(components.Title))
	components.Title.SetValue(entry, components.TitleData{
		Level:  ts.deps.Settings.Level,
		Levels: ts.deps.Words.Levels(),
	})

	// Prime action state so the Escape that left a round does not also quit.
	keyboard.UpdateInput(ts.ecs)

	ts.ecs.AddSystem(keyboard.UpdateInput)
	ts.ecs.AddSystem(ts.updateTitle)
	ts.ecs.AddSystem(updateFullscreen(ts.deps))

	ts.ecs.AddRenderer(Default, render.DrawTitle)
}

// updateTitle cycles the level with wrap-around, starts on select and quits
// on back.
func (ts *TitleScene) updateTitle(e *ecs.ECS) {
	in := keyboard.GetOrCreateInput(e)
	entry, ok := components.Title.First(e.World)
	if !ok {
		return
	}
	title := components.Title.Get(entry)

	if in.Actions.Get(input.ActionMenuLeft).JustPressed {
		title.Cycle(-1)
	}
	if in.Actions.Get(input.ActionMenuRight).JustPressed {
		title.Cycle(1)
	}

	if in.Actions.Get(input.ActionMenuSelect).JustPressed {
		ts.deps.Settings.Level = title.Level
		ts.deps.saveSettings()
		log.Info().Int("level", title.Level).Msg("starting round")
		ts.sceneChanger.ChangeScene(NewTypingScene(ts.sceneChanger, ts.deps))
		return
	}

	if in.Actions.Get(input.ActionBack).JustPressed {
		ts.err = ebiten.Termination
	}
}

// updateFullscreen toggles fullscreen and remembers the choice
func updateFullscreen(deps *Deps) ecs.System {
	return func(e *ecs.ECS) {
		in := keyboard.GetOrCreateInput(e)
		if !in.Actions.Get(input.ActionFullscreen).JustPressed {
			return
		}
		deps.Settings.Fullscreen = !ebiten.IsFullscreen()
		ebiten.SetFullscreen(deps.Settings.Fullscreen)
		deps.saveSettings()
	}
}
