package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/typefall/config"
	"github.com/automoto/typefall/input"
	"github.com/automoto/typefall/input/keyboard"
	"github.com/automoto/typefall/render"
	"github.com/automoto/typefall/systems"
	"github.com/automoto/typefall/wordbank"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TypingScene runs one round of the typing game
type TypingScene struct {
	ecs          *ecs.ECS
	game         *systems.Game
	sceneChanger SceneChanger
	deps         *Deps
	keys         []input.KeyEvent
	once         sync.Once
	err          error
}

// NewTypingScene creates a typing round at the level stored in deps.Settings
func NewTypingScene(sc SceneChanger, deps *Deps) *TypingScene {
	return &TypingScene{sceneChanger: sc, deps: deps}
}

func (s *TypingScene) Update() error {
	s.once.Do(s.configure)
	if s.err != nil {
		return s.err
	}
	s.ecs.Update()
	return s.err
}

func (s *TypingScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if s.ecs == nil || s.game == nil {
		return
	}
	s.ecs.Draw(screen)
}

func (s *TypingScene) configure() {
	s.ecs = ecs.NewECS(donburi.NewWorld())

	width, height := s.deps.Viewport.Size()
	drift := wordbank.NewDriftSource(s.deps.Rand, cfg.Motion.DriftRange, cfg.Motion.DriftSpeed)
	game, err := systems.NewGame(s.ecs.World, s.deps.Words, drift, s.deps.Settings.Level, float64(width), float64(height))
	if err != nil {
		log.Error().Err(err).Msg("could not start round")
		s.err = err
		return
	}
	s.game = game
	hud := render.NewHUD(game)

	// Prime action state so a key still held from the previous scene does
	// not register as a fresh press.
	keyboard.UpdateInput(s.ecs)

	// Order matters: actions, frame step, then anything reading its results.
	s.ecs.AddSystem(keyboard.UpdateInput)
	s.ecs.AddSystem(s.updateFrame)
	s.ecs.AddSystem(hud.Update)
	s.ecs.AddSystem(s.updateBack)
	s.ecs.AddSystem(updateFullscreen(s.deps))

	s.ecs.AddRenderer(Default, render.NewDrawWords(game))
	s.ecs.AddRenderer(Default, hud.Draw)
}

// updateFrame feeds this frame's key events and elapsed time to the core.
func (s *TypingScene) updateFrame(_ *ecs.ECS) {
	if s.err != nil {
		return
	}
	width, height := s.deps.Viewport.Size()
	s.game.SetViewport(float64(width), float64(height))

	s.keys = keyboard.AppendKeyEvents(s.keys[:0])
	if err := s.game.Step(s.keys, 1/float64(ebiten.TPS())); err != nil {
		log.Error().Err(err).Msg("frame step failed")
		s.err = err
	}
}

// updateBack returns to the title screen on Escape.
func (s *TypingScene) updateBack(e *ecs.ECS) {
	in := keyboard.GetOrCreateInput(e)
	if !in.Actions.Get(input.ActionBack).JustPressed {
		return
	}
	p := s.game.Player()
	log.Info().Int("score", p.Score).Int("completed", p.Completed).Int("missed", p.Misses).Msg("round ended")
	s.sceneChanger.ChangeScene(NewTitleScene(s.sceneChanger, s.deps))
}
