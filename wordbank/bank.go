// Package wordbank supplies the random inputs of a round: words drawn from
// per-level vocabularies and drift vectors for completed words.
package wordbank

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

var (
	ErrNoTiers         = errors.New("wordbank: no vocabulary tiers configured")
	ErrEmptyTier       = errors.New("wordbank: vocabulary tier is empty")
	ErrLevelOutOfRange = errors.New("wordbank: level out of range")
)

// Bank draws words uniformly from fixed per-level vocabularies.
// Levels are 1-based.
type Bank struct {
	tiers [][]string
	rng   *rand.Rand
}

// NewBank validates the tiers up front so that NextWord never has to
// substitute a placeholder for a missing vocabulary.
func NewBank(tiers [][]string, rng *rand.Rand) (*Bank, error) {
	if len(tiers) == 0 {
		return nil, ErrNoTiers
	}
	copied := make([][]string, len(tiers))
	for i, t := range tiers {
		if len(t) == 0 {
			return nil, fmt.Errorf("level %d: %w", i+1, ErrEmptyTier)
		}
		for _, w := range t {
			if w == "" {
				return nil, fmt.Errorf("level %d has an empty word: %w", i+1, ErrEmptyTier)
			}
		}
		copied[i] = append([]string(nil), t...)
	}
	return &Bank{tiers: copied, rng: rng}, nil
}

// Levels returns the number of configured tiers.
func (b *Bank) Levels() int {
	return len(b.tiers)
}

// NextWord returns a word chosen uniformly at random from the level's tier.
func (b *Bank) NextWord(level int) (string, error) {
	if level < 1 || level > len(b.tiers) {
		return "", fmt.Errorf("level %d of %d: %w", level, len(b.tiers), ErrLevelOutOfRange)
	}
	tier := b.tiers[level-1]
	return tier[b.rng.IntN(len(tier))], nil
}

// Contains reports whether word belongs to the level's tier.
func (b *Bank) Contains(level int, word string) bool {
	if level < 1 || level > len(b.tiers) {
		return false
	}
	for _, w := range b.tiers[level-1] {
		if w == word {
			return true
		}
	}
	return false
}
