package components

import "github.com/yohamta/donburi"

// TitleData stores the title screen's level selection
type TitleData struct {
	Level  int // selected starting level, 1-based
	Levels int // number of configured levels
}

// Title is the component type for title screen state
var Title = donburi.NewComponentType[TitleData]()

// Cycle moves the selection by delta levels, wrapping at both ends.
func (t *TitleData) Cycle(delta int) {
	if t.Levels <= 0 {
		return
	}
	t.Level = ((t.Level-1+delta)%t.Levels+t.Levels)%t.Levels + 1
}
