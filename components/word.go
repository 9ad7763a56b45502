package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// WordData is the single mutable domain entity.
// string(Matched)+string(Remaining) always equals Word.
type WordData struct {
	ID        uint64 // stable for the entity's lifetime, never reused
	State     WordState
	Word      string
	Matched   []rune
	Remaining []rune
	Position  math.Vec2 // origin at viewport center, +Y up
	Alpha     float64   // only decays while FloatingAway
	Drift     math.Vec2 // set once on entering FloatingAway
}

// Done reports whether every rune has been typed.
func (w *WordData) Done() bool {
	return len(w.Remaining) == 0
}

var Word = donburi.NewComponentType[WordData]()
