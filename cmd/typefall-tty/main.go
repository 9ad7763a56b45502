// Command typefall-tty plays typefall in a terminal.
package main

import (
	"time"

	cfg "github.com/automoto/typefall/config"
	"github.com/automoto/typefall/logging"
	"github.com/automoto/typefall/systems"
	"github.com/automoto/typefall/tty"
	"github.com/automoto/typefall/wordbank"
	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
)

func main() {
	env := cfg.LoadEnv()

	// The terminal owns stdout and stderr while the screen is up.
	out, closeLog, err := logging.OpenFile(env.LogFile)
	if err != nil {
		panic(err)
	}
	defer closeLog()
	logging.Setup(env.LogLevel, out)

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

	level := systems.StartLevel(env.StartLevel, nil, bank.Levels())
	drift := wordbank.NewDriftSource(rng, cfg.Motion.DriftRange, cfg.Motion.DriftSpeed)
	game, err := systems.NewGame(donburi.NewWorld(), bank, drift, level, float64(cfg.C.Width), float64(cfg.C.Height))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start game")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create screen")
	}
	if err := screen.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize screen")
	}
	screen.HideCursor()

	runErr := tty.New(screen, game, cfg.C.TPS).Run()
	screen.Fini()

	p := game.Player()
	if runErr != nil {
		log.Error().Err(runErr).Msg("game stopped")
	}
	log.Info().Int("score", p.Score).Int("completed", p.Completed).Int("misses", p.Misses).Msg("game over")
}
