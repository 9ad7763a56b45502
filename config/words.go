package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed words.yaml
var defaultWords []byte

var (
	ErrNoLevels   = errors.New("vocabulary has no levels")
	ErrEmptyLevel = errors.New("vocabulary level has no words")
	ErrEmptyWord  = errors.New("vocabulary contains an empty word")
)

// VocabularyLevel is the word list for one level
type VocabularyLevel struct {
	Words []string `yaml:"words"`
}

// Vocabulary holds the word tiers, indexed by level-1
type Vocabulary struct {
	Levels []VocabularyLevel `yaml:"levels"`
}

// Tiers returns the word lists in level order.
func (v *Vocabulary) Tiers() [][]string {
	tiers := make([][]string, len(v.Levels))
	for i, l := range v.Levels {
		tiers[i] = l.Words
	}
	return tiers
}

// Validate rejects vocabularies that cannot serve every configured level.
func (v *Vocabulary) Validate() error {
	if len(v.Levels) == 0 {
		return ErrNoLevels
	}
	for i, l := range v.Levels {
		if len(l.Words) == 0 {
			return fmt.Errorf("level %d: %w", i+1, ErrEmptyLevel)
		}
		for _, w := range l.Words {
			if w == "" {
				return fmt.Errorf("level %d: %w", i+1, ErrEmptyWord)
			}
		}
	}
	return nil
}

// LoadVocabulary decodes and validates a YAML vocabulary.
func LoadVocabulary(r io.Reader) (*Vocabulary, error) {
	var v Vocabulary
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode vocabulary: %w", err)
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return &v, nil
}

// LoadVocabularyFile loads a vocabulary from path, or the embedded default
// when path is empty.
func LoadVocabularyFile(path string) (*Vocabulary, error) {
	if path == "" {
		return DefaultVocabulary()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadVocabulary(f)
}

// DefaultVocabulary returns the embedded two-level vocabulary.
func DefaultVocabulary() (*Vocabulary, error) {
	var v Vocabulary
	if err := yaml.Unmarshal(defaultWords, &v); err != nil {
		return nil, fmt.Errorf("decode default vocabulary: %w", err)
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return &v, nil
}
