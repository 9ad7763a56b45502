// Package keyboard reads ebiten keyboard and gamepad state: typed characters
// for the typing core and bound actions for menus.
package keyboard

import (
	"github.com/automoto/typefall/components"
	"github.com/automoto/typefall/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Binding represents the keys and buttons bound to one action
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Bindings maps actions to their keys. Character keys are never bound so
// that typing cannot trigger an action.
var Bindings = map[input.ActionID]Binding{
	input.ActionMenuLeft: {
		Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyDown},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftLeft,
		},
	},
	input.ActionMenuRight: {
		Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyUp},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftRight,
		},
	},
	input.ActionMenuSelect: {
		Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter},
		// A / Cross button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonRightBottom,
		},
	},
	input.ActionBack: {
		Keys: []ebiten.Key{ebiten.KeyEscape},
		// Start / Options button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonCenterRight,
		},
	},
	input.ActionFullscreen: {
		Keys: []ebiten.Key{ebiten.KeyF11},
	},
}

// Reusable buffers to avoid allocations every frame
var (
	gamepadIDs   []ebiten.GamepadID
	typedChars   []rune
	releasedKeys []ebiten.Key
)

// UpdateInput polls bound keys/buttons into the scene's Input singleton.
// Must run before any system that reads actions.
func UpdateInput(ecs *ecs.ECS) {
	in := GetOrCreateInput(ecs)
	in.Actions.Advance()

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				in.Actions.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					in.Actions.Current[actionID] = true
				}
			}
		}
	}
}

// GetOrCreateInput returns the singleton Input component, creating if needed
func GetOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// AppendKeyEvents appends this frame's key events to keys. Typed characters
// arrive as presses in input order; released keys arrive as releases with no
// character. Ebiten reports characters and releases separately, so releases
// are appended after the presses of the same frame.
func AppendKeyEvents(keys []input.KeyEvent) []input.KeyEvent {
	typedChars = ebiten.AppendInputChars(typedChars[:0])
	for _, r := range typedChars {
		keys = append(keys, input.Press(r))
	}

	releasedKeys = inpututil.AppendJustReleasedKeys(releasedKeys[:0])
	for range releasedKeys {
		keys = append(keys, input.KeyEvent{Pressed: false})
	}
	return keys
}
