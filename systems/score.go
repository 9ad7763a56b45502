package systems

import (
	"github.com/automoto/typefall/components"
	"github.com/automoto/typefall/config"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
)

// UpdateScore drains the completion bus. The score keeper is the only
// writer of Score, Completed and LastGain.
func UpdateScore(g *Game) {
	components.WordCompleted.ProcessEvents(g.World)
}

// UpdateMisses drains the miss bus. It is the only writer of Misses.
func UpdateMisses(g *Game) {
	components.WordMissed.ProcessEvents(g.World)
}

func onWordCompleted(w donburi.World, ev components.WordCompletedEvent) {
	player := singleton(w, components.Player)
	gain := config.Score.PointsPerRune * ev.Length
	player.Score += gain
	player.Completed++
	player.LastGain = gain
	log.Debug().Str("word", ev.Word).Int("gain", gain).Int("score", player.Score).Msg("score updated")
}

func onWordMissed(w donburi.World, ev components.WordMissedEvent) {
	singleton(w, components.Player).Misses++
}
