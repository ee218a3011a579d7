package quiz

import "testing"

func TestRandShufflerDeterministicForSeed(t *testing.T) {
	a := NewRandShuffler(42)
	b := NewRandShuffler(42)

	for i := 0; i < 10; i++ {
		pa, pb := a.Permute(8), b.Permute(8)
		for j := range pa {
			if pa[j] != pb[j] {
				t.Fatalf("Round %d: permutations diverged: %v vs %v", i, pa, pb)
			}
		}
		if !isPermutation(pa, 8) {
			t.Fatalf("Round %d: %v is not a permutation", i, pa)
		}
	}
}

func TestRandShufflerCoversAllOrders(t *testing.T) {
	s := NewRandShuffler(3)
	seen := map[[3]int]bool{}
	for i := 0; i < 600; i++ {
		p := s.Permute(3)
		seen[[3]int{p[0], p[1], p[2]}] = true
	}
	if len(seen) != 6 {
		t.Errorf("Expected all 6 orders of 3 items, saw %d", len(seen))
	}
}

func TestFixedShuffler(t *testing.T) {
	f := &FixedShuffler{Perms: [][]int{{1, 0}, {0, 1}}}

	if p := f.Permute(2); p[0] != 1 {
		t.Errorf("First permutation = %v; want [1 0]", p)
	}
	if p := f.Permute(2); p[0] != 0 {
		t.Errorf("Second permutation = %v; want [0 1]", p)
	}
	if p := f.Permute(2); p[0] != 0 {
		t.Errorf("Exhausted shuffler should repeat the last permutation, got %v", p)
	}

	empty := &FixedShuffler{}
	if p := empty.Permute(3); p[0] != 0 || p[2] != 2 {
		t.Errorf("Empty shuffler should give identity, got %v", p)
	}
}

func TestIsPermutation(t *testing.T) {
	tests := []struct {
		p    []int
		n    int
		want bool
	}{
		{[]int{2, 0, 1}, 3, true},
		{[]int{0, 0, 1}, 3, false},
		{[]int{0, 1}, 3, false},
		{[]int{0, 1, 3}, 3, false},
		{[]int{-1, 0, 1}, 3, false},
		{nil, 0, true},
	}

	for _, tt := range tests {
		if got := isPermutation(tt.p, tt.n); got != tt.want {
			t.Errorf("isPermutation(%v, %d) = %v; want %v", tt.p, tt.n, got, tt.want)
		}
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"flashcard", ModeFlashcard, false},
		{"Quiz", ModeQuiz, false},
		{"flash", ModeFlashcard, false},
		{"exam", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseMode(%q) = %v; want %v", tt.in, got, tt.want)
		}
	}
}
