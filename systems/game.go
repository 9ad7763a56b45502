package systems

import (
	"errors"
	"fmt"

	"github.com/automoto/typefall/archetypes"
	"github.com/automoto/typefall/components"
	"github.com/automoto/typefall/wordbank"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
)

var ErrNoActiveWord = errors.New("no falling word present")

// Game is the shared context threaded through the per-frame systems.
// All fields are set once by NewGame; entity and player state live in World.
type Game struct {
	World    donburi.World
	Words    *wordbank.Bank
	Drift    *wordbank.DriftSource
	Commands *Commands
}

// NewGame creates the player singleton, subscribes the score keeper and
// spawns the first falling word at the top center of a width x height
// viewport.
func NewGame(w donburi.World, words *wordbank.Bank, drift *wordbank.DriftSource, level int, width, height float64) (*Game, error) {
	if level < 1 || level > words.Levels() {
		return nil, fmt.Errorf("start level %d of %d: %w", level, words.Levels(), wordbank.ErrLevelOutOfRange)
	}

	g := &Game{
		World:    w,
		Words:    words,
		Drift:    drift,
		Commands: &Commands{},
	}

	entry := archetypes.Player.Spawn(w)
	components.Player.SetValue(entry, components.PlayerData{Level: level})
	components.Session.SetValue(entry, components.SessionData{})
	components.Viewport.SetValue(entry, components.ViewportData{Width: width, Height: height})

	components.WordCompleted.Subscribe(w, onWordCompleted)
	components.WordMissed.Subscribe(w, onWordMissed)

	if _, err := g.spawnFalling(); err != nil {
		return nil, err
	}

	log.Info().Int("level", level).Float64("width", width).Float64("height", height).Msg("game started")
	return g, nil
}

// Player returns the player singleton.
func (g *Game) Player() *components.PlayerData {
	return singleton(g.World, components.Player)
}

// Viewport returns the live viewport singleton.
func (g *Game) Viewport() *components.ViewportData {
	return singleton(g.World, components.Viewport)
}

func (g *Game) session() *components.SessionData {
	return singleton(g.World, components.Session)
}

// SetViewport records the current window size. Frontends call it every
// frame before Step.
func (g *Game) SetViewport(width, height float64) {
	vp := g.Viewport()
	vp.Width = width
	vp.Height = height
}

// SetLevel changes the vocabulary tier used for subsequent spawns.
func (g *Game) SetLevel(level int) error {
	if level < 1 || level > g.Words.Levels() {
		return fmt.Errorf("level %d of %d: %w", level, g.Words.Levels(), wordbank.ErrLevelOutOfRange)
	}
	g.Player().Level = level
	return nil
}

// ActiveWord returns the single falling word. Its absence after startup is
// an invariant failure.
func (g *Game) ActiveWord() (*donburi.Entry, error) {
	s := g.session()
	if !s.HasActive || !g.World.Valid(s.Active) {
		return nil, ErrNoActiveWord
	}
	entry := g.World.Entry(s.Active)
	if components.Word.Get(entry).State != components.Falling {
		return nil, fmt.Errorf("active word is %s: %w", components.Word.Get(entry).State, ErrNoActiveWord)
	}
	return entry, nil
}

// singleton returns the component of the player entity. NewGame creates it,
// so a miss means the world was not built by NewGame.
func singleton[T any](w donburi.World, c *donburi.ComponentType[T]) *T {
	entry, ok := c.First(w)
	if !ok {
		var zero T
		panic(fmt.Sprintf("%T singleton not found", zero))
	}
	return c.Get(entry)
}
