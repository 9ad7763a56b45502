package tags

import "github.com/yohamta/donburi"

var (
	Word   = donburi.NewTag().SetName("Word")
	Player = donburi.NewTag().SetName("Player")
)
