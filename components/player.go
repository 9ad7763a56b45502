package components

import (
	"github.com/yohamta/donburi"
)

// PlayerData is the process-wide player state.
// Level is written only by the frontend (title scene / env); Score,
// Completed and LastGain only by the score keeper; Misses only by the miss
// handler.
type PlayerData struct {
	Level     int
	Score     int
	Completed int
	Misses    int
	LastGain  int // points awarded by the most recent completion
}

var Player = donburi.NewComponentType[PlayerData]()
