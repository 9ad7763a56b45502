package systems

import (
	"errors"
	"testing"

	"github.com/automoto/typefall/components"
	"github.com/automoto/typefall/config"
	"github.com/automoto/typefall/input"
	"github.com/automoto/typefall/wordbank"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

const (
	testWidth  = 640.0
	testHeight = 480.0
	frameDT    = 1.0 / 60
)

func defaultTiers(t *testing.T) [][]string {
	t.Helper()
	v, err := config.DefaultVocabulary()
	require.NoError(t, err)
	return v.Tiers()
}

func newTestGame(t *testing.T, tiers [][]string, level int) *Game {
	t.Helper()
	rng := wordbank.NewRand(1)
	bank, err := wordbank.NewBank(tiers, rng)
	require.NoError(t, err)
	drift := wordbank.NewDriftSource(rng, config.Motion.DriftRange, config.Motion.DriftSpeed)
	g, err := NewGame(donburi.NewWorld(), bank, drift, level, testWidth, testHeight)
	require.NoError(t, err)
	return g
}

// setActive replaces the active word's text.
func setActive(t *testing.T, g *Game, text string) *components.WordData {
	t.Helper()
	e, err := g.ActiveWord()
	require.NoError(t, err)
	w := components.Word.Get(e)
	w.Word = text
	w.Matched = nil
	w.Remaining = []rune(text)
	return w
}

func activeWord(t *testing.T, g *Game) *components.WordData {
	t.Helper()
	e, err := g.ActiveWord()
	require.NoError(t, err)
	return components.Word.Get(e)
}

func floatingWords(g *Game) []*components.WordData {
	var out []*components.WordData
	EachInState(g.World, components.FloatingAway, func(_ *donburi.Entry, w *components.WordData) {
		out = append(out, w)
	})
	return out
}

func TestNewGame(t *testing.T) {
	t.Run("Spawns One Falling Word At Top Center", func(t *testing.T) {
		tiers := defaultTiers(t)
		g := newTestGame(t, tiers, 1)

		require.Equal(t, 1, CountInState(g.World, components.Falling))
		require.Equal(t, 0, CountInState(g.World, components.FloatingAway))

		w := activeWord(t, g)
		require.Contains(t, tiers[0], w.Word)
		require.Empty(t, w.Matched)
		require.Equal(t, []rune(w.Word), w.Remaining)
		require.Equal(t, 0.0, w.Position.X)
		require.Equal(t, testHeight/2, w.Position.Y)
		require.Equal(t, uint64(1), w.ID)

		p := g.Player()
		require.Equal(t, 1, p.Level)
		require.Zero(t, p.Score)
	})

	t.Run("Rejects Unknown Level", func(t *testing.T) {
		bank, err := wordbank.NewBank(defaultTiers(t), wordbank.NewRand(1))
		require.NoError(t, err)
		drift := wordbank.NewDriftSource(wordbank.NewRand(1), 10, 50)

		_, err = NewGame(donburi.NewWorld(), bank, drift, 3, testWidth, testHeight)
		require.ErrorIs(t, err, wordbank.ErrLevelOutOfRange)
		_, err = NewGame(donburi.NewWorld(), bank, drift, 0, testWidth, testHeight)
		require.ErrorIs(t, err, wordbank.ErrLevelOutOfRange)
	})
}

func TestStep_TypeWholeWord(t *testing.T) {
	tiers := defaultTiers(t)
	g := newTestGame(t, tiers, 1)
	setActive(t, g, "ape")

	var completed []components.WordCompletedEvent
	components.WordCompleted.Subscribe(g.World, func(_ donburi.World, ev components.WordCompletedEvent) {
		completed = append(completed, ev)
	})

	require.NoError(t, g.Step(input.Word("ape"), frameDT))

	require.Len(t, completed, 1)
	require.Equal(t, "ape", completed[0].Word)
	require.Equal(t, 3, completed[0].Length)
	require.Equal(t, uint64(1), completed[0].ID)

	p := g.Player()
	require.Equal(t, 30, p.Score)
	require.Equal(t, 1, p.Completed)
	require.Equal(t, 30, p.LastGain)

	require.Equal(t, 1, CountInState(g.World, components.Falling))
	next := activeWord(t, g)
	require.Contains(t, tiers[0], next.Word)
	require.Equal(t, uint64(2), next.ID)
	require.Empty(t, next.Matched)
	require.InDelta(t, testHeight/2-config.Motion.FallSpeed*frameDT, next.Position.Y, 1e-9)

	floating := floatingWords(g)
	require.Len(t, floating, 1)
	f := floating[0]
	require.Equal(t, "ape", string(f.Matched))
	require.Empty(t, f.Remaining)
	require.InDelta(t, config.Motion.DriftSpeed, f.Drift.Magnitude(), 1e-9)
	require.InDelta(t, config.Motion.FadeFactor, f.Alpha, 1e-12)
}

func TestUpdateTyping(t *testing.T) {
	t.Run("Prefix Grows One Rune At A Time", func(t *testing.T) {
		g := newTestGame(t, defaultTiers(t), 1)
		w := setActive(t, g, "ape")
		startY := w.Position.Y

		for i, want := range []string{"a", "ap"} {
			require.NoError(t, UpdateTyping(g, []input.KeyEvent{input.Press(rune("ape"[i]))}))
			w = activeWord(t, g)
			require.Equal(t, want, string(w.Matched))
			require.Equal(t, "ape", string(w.Matched)+string(w.Remaining))
			require.Equal(t, startY+float64(i+1)*config.Motion.TypeNudge, w.Position.Y)
		}
	})

	t.Run("Mismatch Changes Nothing", func(t *testing.T) {
		g := newTestGame(t, defaultTiers(t), 1)
		w := setActive(t, g, "ape")
		before := w.Position

		require.NoError(t, UpdateTyping(g, []input.KeyEvent{input.Press('x'), input.Press('p'), input.Press('A')}))
		w = activeWord(t, g)
		require.Empty(t, w.Matched)
		require.Equal(t, "ape", string(w.Remaining))
		require.Equal(t, before, w.Position)
	})

	t.Run("Ignores Releases And Non-Printable Keys", func(t *testing.T) {
		g := newTestGame(t, defaultTiers(t), 1)
		setActive(t, g, "ape")

		keys := []input.KeyEvent{
			input.Release('a'),
			{Pressed: true},
			input.Press('\n'),
			{Pressed: false},
		}
		require.NoError(t, UpdateTyping(g, keys))
		require.Empty(t, activeWord(t, g).Matched)
	})

	t.Run("Non-ASCII Runes", func(t *testing.T) {
		g := newTestGame(t, defaultTiers(t), 1)
		setActive(t, g, "snø")

		var got components.WordCompletedEvent
		components.WordCompleted.Subscribe(g.World, func(_ donburi.World, ev components.WordCompletedEvent) {
			got = ev
		})
		require.NoError(t, g.Step(input.Word("snø"), frameDT))
		require.Equal(t, 3, got.Length)
		require.Equal(t, 30, g.Player().Score)
	})

	t.Run("Keys After Completion Type The Next Word", func(t *testing.T) {
		g := newTestGame(t, [][]string{{"ab"}}, 1)

		require.NoError(t, UpdateTyping(g, input.Word("aba")))
		w := activeWord(t, g)
		require.Equal(t, "a", string(w.Matched))
		require.Equal(t, 1, CountInState(g.World, components.FloatingAway))
	})

	t.Run("No Active Word", func(t *testing.T) {
		g := newTestGame(t, defaultTiers(t), 1)
		g.session().HasActive = false

		require.NoError(t, UpdateTyping(g, nil))
		err := UpdateTyping(g, []input.KeyEvent{input.Press('a')})
		require.True(t, errors.Is(err, ErrNoActiveWord))
	})
}

func TestUpdateMotion(t *testing.T) {
	t.Run("Falling Words Descend", func(t *testing.T) {
		g := newTestGame(t, defaultTiers(t), 1)
		w := activeWord(t, g)
		y := w.Position.Y

		UpdateMotion(g, 0.5)
		require.InDelta(t, y-15, activeWord(t, g).Position.Y, 1e-9)
		require.Equal(t, 1.0, activeWord(t, g).Alpha)
	})

	t.Run("Alpha Decays Per Frame", func(t *testing.T) {
		g := newTestGame(t, [][]string{{"ab"}}, 1)
		require.NoError(t, UpdateTyping(g, input.Word("ab")))

		f := floatingWords(g)[0]
		f.Position = math.NewVec2(0, 0)
		for k := 1; k <= 20; k++ {
			UpdateMotion(g, 0)
			require.NoError(t, g.Commands.Flush(g.World, g.spawnFallingErr))
			f = floatingWords(g)[0]
			require.InDelta(t, pow(config.Motion.FadeFactor, k), f.Alpha, 1e-12)
		}
	})

	t.Run("Alpha Snaps To Zero Below Epsilon", func(t *testing.T) {
		g := newTestGame(t, [][]string{{"ab"}}, 1)
		require.NoError(t, UpdateTyping(g, input.Word("ab")))
		floatingWords(g)[0].Position = math.NewVec2(0, 0)

		// 0.97^226 is just above 1e-3 and 0.97^227 just below.
		const snapFrame = 227
		for k := 1; k < snapFrame; k++ {
			UpdateMotion(g, 0)
		}
		f := floatingWords(g)[0]
		require.InDelta(t, pow(config.Motion.FadeFactor, snapFrame-1), f.Alpha, 1e-12)
		require.Greater(t, f.Alpha, config.Motion.AlphaEpsilon)

		UpdateMotion(g, 0)
		require.Zero(t, floatingWords(g)[0].Alpha)
		require.Less(t, pow(config.Motion.FadeFactor, snapFrame), config.Motion.AlphaEpsilon)
	})

	t.Run("Drift Moves Floating Words", func(t *testing.T) {
		g := newTestGame(t, [][]string{{"ab"}}, 1)
		require.NoError(t, UpdateTyping(g, input.Word("ab")))

		f := floatingWords(g)[0]
		start := f.Position
		UpdateMotion(g, 0.5)
		f = floatingWords(g)[0]
		require.InDelta(t, start.X+f.Drift.X*0.5, f.Position.X, 1e-9)
		require.InDelta(t, start.Y+f.Drift.Y*0.5, f.Position.Y, 1e-9)
	})

	t.Run("Removed Only When Invisible And Off Screen", func(t *testing.T) {
		g := newTestGame(t, [][]string{{"ab"}}, 1)
		require.NoError(t, UpdateTyping(g, input.Word("ab")))
		step := func() {
			UpdateMotion(g, 0)
			require.NoError(t, g.Commands.Flush(g.World, g.spawnFallingErr))
		}

		f := floatingWords(g)[0]
		f.Position = math.NewVec2(0, 1000)
		f.Alpha = 0.5
		step()
		require.Len(t, floatingWords(g), 1)

		f = floatingWords(g)[0]
		f.Position = math.NewVec2(0, 0)
		f.Alpha = 0
		step()
		require.Len(t, floatingWords(g), 1)

		f = floatingWords(g)[0]
		f.Position = math.NewVec2(0, 1000)
		f.Alpha = 0
		step()
		require.Empty(t, floatingWords(g))
		require.Equal(t, 1, CountInState(g.World, components.Falling))
	})

	t.Run("Fades Out Eventually", func(t *testing.T) {
		g := newTestGame(t, [][]string{{"ab"}}, 1)
		require.NoError(t, UpdateTyping(g, input.Word("ab")))
		floatingWords(g)[0].Position = math.NewVec2(0, 1000)

		for i := 0; i < 200; i++ {
			UpdateMotion(g, 0)
		}
		require.Len(t, floatingWords(g), 1)

		for i := 0; i < 100; i++ {
			UpdateMotion(g, 0)
			require.NoError(t, g.Commands.Flush(g.World, g.spawnFallingErr))
		}
		require.Empty(t, floatingWords(g))
	})
}

func TestStep_Miss(t *testing.T) {
	g := newTestGame(t, defaultTiers(t), 1)
	w := activeWord(t, g)
	w.Position.Y = -testHeight/2 + 1
	oldID := w.ID

	var missed []components.WordMissedEvent
	components.WordMissed.Subscribe(g.World, func(_ donburi.World, ev components.WordMissedEvent) {
		missed = append(missed, ev)
	})

	require.NoError(t, g.Step(nil, 1))

	require.Len(t, missed, 1)
	require.Equal(t, oldID, missed[0].ID)
	require.Equal(t, 1, g.Player().Misses)
	require.Zero(t, g.Player().Score)

	require.Equal(t, 1, CountInState(g.World, components.Falling))
	next := activeWord(t, g)
	require.NotEqual(t, oldID, next.ID)
	require.Equal(t, testHeight/2, next.Position.Y)
	require.Zero(t, g.Commands.Pending())
}

func TestStep_ExactlyOneFallingWord(t *testing.T) {
	tiers := defaultTiers(t)
	g := newTestGame(t, tiers, 1)

	wantScore := 0
	for frame := 0; frame < 3000; frame++ {
		var keys []input.KeyEvent
		// Type one rune every 20 frames, with a stray key mixed in.
		if frame%20 == 0 && frame%200 != 0 {
			w := activeWord(t, g)
			keys = append(keys, input.Press('#'), input.Press(w.Remaining[0]))
			if len(w.Remaining) == 1 {
				wantScore += config.Score.PointsPerRune * len([]rune(w.Word))
			}
		}
		require.NoError(t, g.Step(keys, frameDT))
		require.Equal(t, 1, CountInState(g.World, components.Falling), "frame %d", frame)

		EachInState(g.World, components.Falling, func(_ *donburi.Entry, w *components.WordData) {
			require.Equal(t, w.Word, string(w.Matched)+string(w.Remaining))
		})
	}

	require.Equal(t, wantScore, g.Player().Score)
}

func TestSetLevel(t *testing.T) {
	tiers := defaultTiers(t)
	g := newTestGame(t, tiers, 1)

	require.ErrorIs(t, g.SetLevel(3), wordbank.ErrLevelOutOfRange)
	require.NoError(t, g.SetLevel(2))

	w := activeWord(t, g)
	require.NoError(t, g.Step(input.Word(w.Word), frameDT))
	require.Contains(t, tiers[1], activeWord(t, g).Word)
}

func pow(x float64, n int) float64 {
	r := 1.0
	for i := 0; i < n; i++ {
		r *= x
	}
	return r
}
