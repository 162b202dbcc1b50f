// Package question holds the static question bank and the deterministic
// selector used to pick the next question of an interview.
package question

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
)

type Category string

const (
	CategoryBehavioral Category = "behavioral"
	CategoryTechnical  Category = "technical"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

var (
	ErrUnknownCategory   = errors.New("unknown category")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	ErrMalformedBank     = errors.New("malformed question bank")
)

func ParseCategory(s string) (Category, error) {
	switch c := Category(strings.ToLower(strings.TrimSpace(s))); c {
	case CategoryBehavioral, CategoryTechnical:
		return c, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
}

func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(s))); d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
	}
}

// Bank is the immutable set of question pools keyed by category and difficulty.
type Bank struct {
	pools map[Category]map[Difficulty][]string
}

// LoadBank reads and validates a question bank document from path.
func LoadBank(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading question bank: %w", err)
	}

	return ParseBank(data)
}

// ParseBank decodes a document shaped category -> difficulty -> [question].
// JSON input is accepted as well since it is valid YAML.
func ParseBank(data []byte) (*Bank, error) {
	var raw map[string]map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Join(ErrMalformedBank, err)
	}

	return NewBank(raw)
}

// NewBank validates raw pools and builds a Bank from them.
func NewBank(raw map[string]map[string][]string) (*Bank, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: no categories", ErrMalformedBank)
	}

	b := &Bank{pools: make(map[Category]map[Difficulty][]string, len(raw))}
	for rawCategory, byDifficulty := range raw {
		category, err := ParseCategory(rawCategory)
		if err != nil {
			return nil, errors.Join(ErrMalformedBank, err)
		}

		pools := make(map[Difficulty][]string, len(byDifficulty))
		for rawDifficulty, questions := range byDifficulty {
			difficulty, err := ParseDifficulty(rawDifficulty)
			if err != nil {
				return nil, errors.Join(ErrMalformedBank, err)
			}

			pool, err := validatePool(questions)
			if err != nil {
				return nil, fmt.Errorf("%w: %s/%s: %w", ErrMalformedBank, category, difficulty, err)
			}
			pools[difficulty] = pool
		}
		b.pools[category] = pools
	}

	return b, nil
}

func validatePool(questions []string) ([]string, error) {
	seen := make(map[string]struct{}, len(questions))
	pool := make([]string, 0, len(questions))
	for i, q := range questions {
		q = strings.TrimSpace(q)
		if q == "" {
			return nil, fmt.Errorf("question %d is blank", i)
		}
		if q == NoMoreQuestions {
			return nil, fmt.Errorf("question %d is the exhaustion marker", i)
		}
		if _, ok := seen[q]; ok {
			return nil, fmt.Errorf("duplicate question %q", q)
		}
		seen[q] = struct{}{}
		pool = append(pool, q)
	}

	return pool, nil
}

// Pool returns a copy of the ordered pool for category and difficulty.
// A combination missing from the bank yields an empty pool.
func (b *Bank) Pool(category Category, difficulty Difficulty) []string {
	return slices.Clone(b.pools[category][difficulty])
}

// Select picks the next question for the given round from the matching pool.
func (b *Bank) Select(category Category, difficulty Difficulty, round int, used []string) string {
	return Select(b.pools[category][difficulty], round, used)
}
