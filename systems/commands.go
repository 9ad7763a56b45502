package systems

import (
	"github.com/yohamta/donburi"
)

// Commands defers entity creation and destruction requested while the world
// is being iterated. Flush applies destroys first, then spawns, so a word
// replaced in the same pass never coexists with its replacement.
type Commands struct {
	destroy []donburi.Entity
	spawns  int
}

// Destroy marks e for removal at the next Flush.
func (c *Commands) Destroy(e *donburi.Entry) {
	c.destroy = append(c.destroy, e.Entity())
}

// SpawnFalling requests a new falling word at the next Flush.
func (c *Commands) SpawnFalling() {
	c.spawns++
}

// Pending reports the number of queued commands.
func (c *Commands) Pending() int {
	return len(c.destroy) + c.spawns
}

// Flush applies queued commands. spawn is called once per requested word;
// the first spawn error stops the flush and is returned.
func (c *Commands) Flush(w donburi.World, spawn func() error) error {
	for _, e := range c.destroy {
		if w.Valid(e) {
			w.Remove(e)
		}
	}
	c.destroy = c.destroy[:0]

	for c.spawns > 0 {
		c.spawns--
		if err := spawn(); err != nil {
			c.spawns = 0
			return err
		}
	}
	return nil
}
