package components

import "github.com/yohamta/donburi/features/events"

// WordCompletedEvent is published once per fully typed word.
// Producer: typing system. Consumer: score keeper.
type WordCompletedEvent struct {
	ID     uint64
	Word   string
	Length int // rune count
}

// WordMissedEvent is published when a falling word leaves the bottom of the
// viewport untyped. Producer: motion system.
type WordMissedEvent struct {
	ID   uint64
	Word string
}

var (
	WordCompleted = events.NewEventType[WordCompletedEvent]()
	WordMissed    = events.NewEventType[WordMissedEvent]()
)
