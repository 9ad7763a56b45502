package scenes

import (
	"math/rand/v2"

	"github.com/automoto/typefall/systems"
	"github.com/automoto/typefall/wordbank"
	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer
const Default ecs.LayerID = iota

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Viewport reports the live logical screen size
type Viewport interface {
	Size() (width, height int)
}

// Deps are the long-lived values shared by every scene
type Deps struct {
	Words    *wordbank.Bank
	Rand     *rand.Rand
	Settings *systems.SavedSettings
	Viewport Viewport
}

// saveSettings persists the current settings; failures are logged by the
// persistence layer and otherwise ignored.
func (d *Deps) saveSettings() {
	_ = systems.SaveSettings(d.Settings)
}
