package prompts

import (
	"fmt"
	"math/rand/v2"
	"slices"
)

// NewRand returns a PCG-backed source. A zero seed means unseeded: the source
// is seeded from the runtime's random state and differs on every call.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	s := uint64(seed)
	return rand.New(rand.NewPCG(s, s))
}

// shuffled returns a uniformly shuffled copy of prompts.
func shuffled(r *rand.Rand, prompts []string) []string {
	out := slices.Clone(prompts)
	r.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// Halves shuffles prompts and splits them into two halves. The second half
// receives the odd prompt, so len(a) <= len(b) always holds.
func Halves(r *rand.Rand, prompts []string) (a, b []string) {
	s := shuffled(r, prompts)
	half := len(s) / 2
	return s[:half], s[half:]
}

// SplitN shuffles prompts and splits them into numFiles contiguous parts.
// The first len(prompts)%numFiles parts hold one extra prompt.
func SplitN(r *rand.Rand, prompts []string, numFiles int) ([][]string, error) {
	if numFiles < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewFiles, numFiles)
	}

	s := shuffled(r, prompts)
	base := len(s) / numFiles
	extra := len(s) % numFiles

	parts := make([][]string, 0, numFiles)
	start := 0
	for i := 0; i < numFiles; i++ {
		end := start + base
		if i < extra {
			end++
		}
		parts = append(parts, s[start:end])
		start = end
	}
	return parts, nil
}

// Sample draws k prompts uniformly at random without replacement. Selection
// is by position, so duplicate text in the input may appear as often as it
// occurs there but no position is used twice. The result is in draw order.
func Sample(r *rand.Rand, prompts []string, k int) ([]string, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, k)
	}
	if k > len(prompts) {
		return nil, &OverRequestError{Requested: k, Available: len(prompts)}
	}

	// Partial Fisher-Yates over a copy.
	pool := slices.Clone(prompts)
	for i := 0; i < k; i++ {
		j := i + r.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k], nil
}
