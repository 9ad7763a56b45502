package components

import "github.com/yohamta/donburi"

// SessionData is a singleton tracking the active (falling) word
type SessionData struct {
	Active    donburi.Entity
	HasActive bool
	NextID    uint64
}

var Session = donburi.NewComponentType[SessionData]()
