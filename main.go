package main

import (
	"errors"
	"os"
	"time"

	cfg "github.com/automoto/typefall/config"
	"github.com/automoto/typefall/fonts"
	"github.com/automoto/typefall/logging"
	"github.com/automoto/typefall/scenes"
	"github.com/automoto/typefall/systems"
	"github.com/automoto/typefall/wordbank"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	width, height int
	scene         Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// Size returns the logical screen size from the last Layout call
func (g *Game) Size() (int, int) {
	return g.width, g.height
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout follows the window size so the viewport bounds track resizes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func main() {
	env := cfg.LoadEnv()
	logging.Setup(env.LogLevel, os.Stderr)

	vocab, err := cfg.LoadVocabularyFile(env.WordsPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", env.WordsPath).Msg("failed to load vocabulary")
	}

	seed := uint64(time.Now().UnixNano())
	if env.HasSeed {
		seed = env.Seed
	}
	rng := wordbank.NewRand(seed)

	bank, err := wordbank.NewBank(vocab.Tiers(), rng)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid vocabulary")
	}

	if err := fonts.LoadDefaults(cfg.UI.WordFontSize, cfg.UI.HUDFontSize, cfg.UI.TitleFontSize); err != nil {
		log.Fatal().Err(err).Msg("failed to load fonts")
	}

	if err := systems.InitPersistence(cfg.C.Title); err != nil {
		log.Warn().Err(err).Msg("could not initialize persistence")
	}
	saved, _ := systems.LoadSettings()
	settings := &systems.SavedSettings{Level: systems.StartLevel(env.StartLevel, saved, bank.Levels())}
	if saved != nil {
		settings.Fullscreen = saved.Fullscreen
	}
	if settings.Level < 1 || settings.Level > bank.Levels() {
		log.Fatal().Int("level", settings.Level).Int("levels", bank.Levels()).Msg("TYPEFALL_LEVEL out of range")
	}

	log.Info().Uint64("seed", seed).Int("levels", bank.Levels()).Int("level", settings.Level).Msg("typefall starting")

	g := &Game{width: cfg.C.Width, height: cfg.C.Height}
	g.scene = scenes.NewTitleScene(g, &scenes.Deps{
		Words:    bank,
		Rand:     rng,
		Settings: settings,
		Viewport: g,
	})

	ebiten.SetWindowTitle(cfg.C.Title)
	ebiten.SetWindowSize(cfg.C.Width, cfg.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.C.TPS)
	ebiten.SetFullscreen(settings.Fullscreen)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal().Err(err).Msg("game exited")
	}
}
