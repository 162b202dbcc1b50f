package question

import (
	"math/rand/v2"
	"slices"
)

// NoMoreQuestions is returned when every question of a pool has been used.
// It must never be recorded as a used question.
const NoMoreQuestions = "No more questions available."

// Select returns a question from pool that is not in used. The choice only
// depends on round and len(used), so replaying the same history always
// yields the same question.
func Select(pool []string, round int, used []string) string {
	candidates := make([]string, 0, len(pool))
	for _, q := range pool {
		if !slices.Contains(used, q) {
			candidates = append(candidates, q)
		}
	}

	if len(candidates) == 0 {
		return NoMoreQuestions
	}

	rng := rand.New(rand.NewPCG(uint64(round), uint64(len(used)))) //nolint:gosec
	return candidates[rng.IntN(len(candidates))]
}
