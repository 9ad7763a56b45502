package components

// WordState is the lifecycle state of a word entity. A word only ever moves
// forward: Falling -> FloatingAway -> destroyed.
type WordState int

const (
	Falling WordState = iota
	FloatingAway
)

func (s WordState) String() string {
	switch s {
	case Falling:
		return "Falling"
	case FloatingAway:
		return "FloatingAway"
	}
	return "Unknown"
}
