package systems

import (
	"errors"
	"testing"

	"github.com/automoto/typefall/components"
	"github.com/automoto/typefall/input"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

func TestInBounds(t *testing.T) {
	vp := components.ViewportData{Width: 640, Height: 480}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"Center", 0, 0, true},
		{"Right Edge", 320, 0, true},
		{"Top Left Corner", -320, 240, true},
		{"Past Right", 320.01, 0, false},
		{"Below", 0, -241, false},
		{"Far Away", 1000, 1000, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, InBounds(vp, math.NewVec2(tt.x, tt.y)))
		})
	}
}

func TestCommands(t *testing.T) {
	t.Run("Destroys Before Spawning", func(t *testing.T) {
		w := donburi.NewWorld()
		a := w.Entry(w.Create(components.Word))
		b := w.Entry(w.Create(components.Word))

		var c Commands
		c.Destroy(a)
		c.Destroy(a)
		c.SpawnFalling()
		require.Equal(t, 3, c.Pending())

		var aliveAtSpawn bool
		err := c.Flush(w, func() error {
			aliveAtSpawn = w.Valid(a.Entity())
			return nil
		})
		require.NoError(t, err)
		require.False(t, aliveAtSpawn)
		require.False(t, w.Valid(a.Entity()))
		require.True(t, w.Valid(b.Entity()))
		require.Zero(t, c.Pending())
	})

	t.Run("Spawn Error Stops Flush", func(t *testing.T) {
		var c Commands
		c.SpawnFalling()
		c.SpawnFalling()

		boom := errors.New("boom")
		calls := 0
		err := c.Flush(donburi.NewWorld(), func() error {
			calls++
			return boom
		})
		require.ErrorIs(t, err, boom)
		require.Equal(t, 1, calls)
		require.Zero(t, c.Pending())
	})
}

func TestGame_Views(t *testing.T) {
	g := newTestGame(t, [][]string{{"ab"}}, 1)
	require.NoError(t, g.Step(input.Word("a"), frameDT))

	views := g.WordViews()
	require.Len(t, views, 1)
	require.Equal(t, "a", views[0].Matched)
	require.Equal(t, "b", views[0].Remaining)
	require.Equal(t, 1.0, views[0].Alpha)

	require.NoError(t, g.Step(input.Word("b"), frameDT))
	views = g.WordViews()
	require.Len(t, views, 2)
	require.Equal(t, components.FloatingAway, views[0].State)
	require.Equal(t, "ab", views[0].Matched)
	require.Less(t, views[0].Alpha, 1.0)
	require.Equal(t, components.Falling, views[1].State)

	hud := g.HUD()
	require.Equal(t, HUDView{Level: "1", Score: "20", Completed: "1", Misses: "0"}, hud)
}

func TestToScreen(t *testing.T) {
	x, y := ToScreen(0, 0, 640, 480)
	require.Equal(t, 320.0, x)
	require.Equal(t, 240.0, y)

	x, y = ToScreen(-320, 240, 640, 480)
	require.Equal(t, 0.0, x)
	require.Equal(t, 0.0, y)
}

func TestSetViewport(t *testing.T) {
	g := newTestGame(t, [][]string{{"ab"}}, 1)
	g.SetViewport(800, 600)
	require.Equal(t, components.ViewportData{Width: 800, Height: 600}, *g.Viewport())

	w := activeWord(t, g)
	w.Position.Y = -299
	require.NoError(t, g.Step(nil, frameDT))
	require.Zero(t, g.Player().Misses)
}

func TestStartLevel(t *testing.T) {
	tests := []struct {
		name  string
		env   int
		saved *SavedSettings
		want  int
	}{
		{"Default", 0, nil, 1},
		{"Saved", 0, &SavedSettings{Level: 2}, 2},
		{"Env Wins", 1, &SavedSettings{Level: 2}, 1},
		{"Stale Saved Ignored", 0, &SavedSettings{Level: 9}, 1},
		{"Bad Env Passed Through", 5, nil, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, StartLevel(tt.env, tt.saved, 2))
		})
	}
}

func TestSettingsWithoutPersistence(t *testing.T) {
	s, err := LoadSettings()
	require.NoError(t, err)
	require.Nil(t, s)
	require.NoError(t, SaveSettings(&SavedSettings{Level: 2}))
}

func TestWordState_String(t *testing.T) {
	require.Equal(t, "Falling", components.Falling.String())
	require.Equal(t, "FloatingAway", components.FloatingAway.String())
}
