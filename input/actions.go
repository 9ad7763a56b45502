package input

// ActionID represents a logical non-typing action (menus, window control)
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMenuLeft
	ActionMenuRight
	ActionMenuSelect
	ActionBack
	ActionFullscreen
	ActionCount // Must be last - used for array sizing
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// ActionFrames stores the current and previous frame's pressed state for all
// actions. JustPressed/JustReleased are computed on demand by comparing frames.
type ActionFrames struct {
	Current  [ActionCount]bool
	Previous [ActionCount]bool
}

// Advance swaps buffers: current becomes previous and current is cleared.
func (f *ActionFrames) Advance() {
	f.Previous = f.Current
	f.Current = [ActionCount]bool{}
}

// Get returns the full ActionState for an action ID.
func (f *ActionFrames) Get(id ActionID) ActionState {
	curr := f.Current[id]
	prev := f.Previous[id]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
