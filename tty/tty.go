// Package tty runs the typing game in a terminal. Key events are batched
// between ticks and fed to the frame scheduler once per tick, so the core
// sees the same per-frame input it gets from the windowed frontend.
package tty

import (
	"errors"
	"time"

	cfg "github.com/automoto/typefall/config"
	"github.com/automoto/typefall/input"
	"github.com/automoto/typefall/systems"
	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"
)

// ErrQuit is returned by Run when the player presses Escape or Ctrl-C.
var ErrQuit = errors.New("quit")

// Frontend owns the terminal screen and drives one game.
type Frontend struct {
	screen tcell.Screen
	game   *systems.Game
	tick   time.Duration
	keys   []input.KeyEvent
}

// New binds a game to an initialized screen. tps is the frame rate.
func New(screen tcell.Screen, game *systems.Game, tps int) *Frontend {
	if tps <= 0 {
		tps = cfg.C.TPS
	}
	return &Frontend{
		screen: screen,
		game:   game,
		tick:   time.Second / time.Duration(tps),
	}
}

// KeyEvent translates a terminal key into a core key event. Only printable
// runes are reported; the terminal never reports releases.
func KeyEvent(ev *tcell.EventKey) (input.KeyEvent, bool) {
	if ev.Key() != tcell.KeyRune {
		return input.KeyEvent{}, false
	}
	return input.Press(ev.Rune()), true
}

// Handle applies one terminal event. It returns ErrQuit when the player asks
// to leave.
func (f *Frontend) Handle(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return ErrQuit
		}
		if k, ok := KeyEvent(ev); ok {
			f.keys = append(f.keys, k)
		}
	case *tcell.EventResize:
		f.screen.Sync()
	}
	return nil
}

// Frame steps the game with the keys collected since the last frame and
// redraws the screen.
func (f *Frontend) Frame(dt float64) error {
	err := f.game.Step(f.keys, dt)
	f.keys = f.keys[:0]
	if err != nil {
		return err
	}
	Draw(f.screen, f.game)
	return nil
}

// Run polls terminal events and ticks frames until the player quits or the
// game fails. A quit is reported as nil.
func (f *Frontend) Run() error {
	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(f.screen, events, done)

	ticker := time.NewTicker(f.tick)
	defer ticker.Stop()
	dt := f.tick.Seconds()

	Draw(f.screen, f.game)
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := f.Handle(ev); err != nil {
				if errors.Is(err, ErrQuit) {
					log.Info().Msg("quit requested")
					return nil
				}
				return err
			}
		case <-ticker.C:
			if err := f.Frame(dt); err != nil {
				return err
			}
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or done
// is closed. events is closed on return.
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}
