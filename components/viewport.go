package components

import "github.com/yohamta/donburi"

// ViewportData is a singleton mirroring the live window size.
// Frontends write it every frame before the core runs.
type ViewportData struct {
	Width  float64
	Height float64
}

var Viewport = donburi.NewComponentType[ViewportData]()
