package components

import (
	"github.com/automoto/typefall/input"
	"github.com/yohamta/donburi"
)

// InputData is the singleton holding menu/window action state for the
// current scene. Typed characters never pass through here.
type InputData struct {
	Actions input.ActionFrames
}

var Input = donburi.NewComponentType[InputData]()
