package quiz

import "math/rand/v2"

// Shuffler produces the quiz order as a permutation of [0, n).
type Shuffler interface {
	Permute(n int) []int
}

// RandShuffler draws uniformly random permutations from a PCG source.
type RandShuffler struct {
	rng *rand.Rand
}

// NewRandShuffler returns a shuffler seeded with seed. Equal seeds give
// equal permutation sequences.
func NewRandShuffler(seed uint64) *RandShuffler {
	return &RandShuffler{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *RandShuffler) Permute(n int) []int {
	return s.rng.Perm(n)
}

// FixedShuffler replays the given permutations in turn, repeating the
// last one once exhausted. Used to make quiz order deterministic.
type FixedShuffler struct {
	Perms [][]int
	next  int
}

func (f *FixedShuffler) Permute(n int) []int {
	if len(f.Perms) == 0 {
		return identity(n)
	}
	p := f.Perms[f.next]
	if f.next < len(f.Perms)-1 {
		f.next++
	}
	out := make([]int, len(p))
	copy(out, p)
	return out
}

func identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// isPermutation reports whether p holds every index of [0, n) exactly once.
func isPermutation(p []int, n int) bool {
	if len(p) != n {
		return false
	}
	seen := make([]bool, n)
	for _, v := range p {
		if v < 0 || v >= n || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}
