package prompts

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/jackzampolin/promptsplit/internal/output"
)

func numbered(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("prompt %d", i)
	}
	return out
}

func sorted(s []string) []string {
	out := slices.Clone(s)
	slices.Sort(out)
	return out
}

func TestHalves(t *testing.T) {
	for n := 0; n <= 11; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			input := numbered(n)
			a, b := Halves(NewRand(int64(n+1)), input)

			if len(a)+len(b) != n {
				t.Fatalf("expected %d prompts total, got %d+%d", n, len(a), len(b))
			}
			if len(a) > len(b) {
				t.Errorf("expected len(a) <= len(b), got %d > %d", len(a), len(b))
			}
			if len(a) != n/2 {
				t.Errorf("expected first half of %d, got %d", n/2, len(a))
			}
			if diff := cmp.Diff(sorted(input), sorted(append(slices.Clone(a), b...)), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("multiset mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHalves_DoesNotMutateInput(t *testing.T) {
	input := numbered(10)
	before := slices.Clone(input)

	Halves(NewRand(7), input)

	if diff := cmp.Diff(before, input); diff != "" {
		t.Errorf("input mutated (-want +got):\n%s", diff)
	}
}

func TestSplitN(t *testing.T) {
	for n := 0; n <= 13; n++ {
		for numFiles := 2; numFiles <= 6; numFiles++ {
			t.Run(fmt.Sprintf("n=%d/files=%d", n, numFiles), func(t *testing.T) {
				input := numbered(n)
				parts, err := SplitN(NewRand(int64(n*10+numFiles)), input, numFiles)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if len(parts) != numFiles {
					t.Fatalf("expected %d parts, got %d", numFiles, len(parts))
				}

				base := n / numFiles
				extra := n % numFiles
				var all []string
				for i, p := range parts {
					want := base
					if i < extra {
						want = base + 1
					}
					if len(p) != want {
						t.Errorf("part %d: expected %d prompts, got %d", i, want, len(p))
					}
					all = append(all, p...)
				}
				if diff := cmp.Diff(sorted(input), sorted(all), cmpopts.EquateEmpty()); diff != "" {
					t.Errorf("parts do not partition input (-want +got):\n%s", diff)
				}
			})
		}
	}
}

func TestSplitN_TooFewFiles(t *testing.T) {
	for _, numFiles := range []int{-1, 0, 1} {
		_, err := SplitN(NewRand(1), numbered(4), numFiles)
		if !errors.Is(err, ErrTooFewFiles) {
			t.Errorf("numFiles=%d: expected ErrTooFewFiles, got %v", numFiles, err)
		}
	}
}

func TestSample(t *testing.T) {
	input := numbered(20)

	for k := 1; k <= len(input); k++ {
		got, err := Sample(NewRand(int64(k)), input, k)
		if err != nil {
			t.Fatalf("k=%d: unexpected error: %v", k, err)
		}
		if len(got) != k {
			t.Fatalf("k=%d: expected %d prompts, got %d", k, k, len(got))
		}
		seen := make(map[string]bool, k)
		for _, p := range got {
			if seen[p] {
				t.Errorf("k=%d: %q selected twice", k, p)
			}
			seen[p] = true
			if !slices.Contains(input, p) {
				t.Errorf("k=%d: %q not in input", k, p)
			}
		}
	}
}

func TestSample_DuplicateTextUsedOncePerPosition(t *testing.T) {
	input := []string{"same", "same", "other"}

	got, err := Sample(NewRand(3), input, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(sorted(input), sorted(got)); diff != "" {
		t.Errorf("full sample should be a permutation (-want +got):\n%s", diff)
	}
}

func TestSample_SeedDeterminism(t *testing.T) {
	input := numbered(50)

	first, err := Sample(NewRand(42), input, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := Sample(NewRand(42), input, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diff := cmp.Diff(first, again); diff != "" {
			t.Fatalf("same seed gave different samples (-first +again):\n%s", diff)
		}
	}
}

func TestSample_Coverage(t *testing.T) {
	input := []string{"A", "B", "C", "D"}
	r := NewRand(99)
	counts := make(map[string]int)

	const trials = 4000
	for i := 0; i < trials; i++ {
		got, err := Sample(r, input, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		counts[got[0]]++
	}

	// Expect ~1000 each; allow a wide band.
	for _, p := range input {
		if counts[p] < 800 || counts[p] > 1200 {
			t.Errorf("%s drawn %d times out of %d", p, counts[p], trials)
		}
	}
}

func TestSample_Errors(t *testing.T) {
	input := []string{"A", "B", "C", "D"}

	t.Run("over request", func(t *testing.T) {
		_, err := Sample(NewRand(1), input, 5)
		if !errors.Is(err, ErrOverRequest) {
			t.Fatalf("expected ErrOverRequest, got %v", err)
		}
		var over *OverRequestError
		if !errors.As(err, &over) {
			t.Fatalf("expected *OverRequestError, got %T", err)
		}
		if over.Requested != 5 || over.Available != 4 {
			t.Errorf("expected 5/4, got %d/%d", over.Requested, over.Available)
		}
	})

	t.Run("zero count", func(t *testing.T) {
		_, err := Sample(NewRand(1), input, 0)
		if !errors.Is(err, ErrInvalidCount) {
			t.Fatalf("expected ErrInvalidCount, got %v", err)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := Sample(NewRand(1), nil, 1)
		if !errors.Is(err, ErrOverRequest) {
			t.Fatalf("expected ErrOverRequest, got %v", err)
		}
	})
}

func TestShuffle_SeedDeterminism(t *testing.T) {
	input := numbered(30)

	a1, b1 := Halves(NewRand(5), input)
	a2, b2 := Halves(NewRand(5), input)
	if !slices.Equal(a1, a2) || !slices.Equal(b1, b2) {
		t.Error("same seed produced different halves")
	}

	p1, _ := SplitN(NewRand(5), input, 4)
	p2, _ := SplitN(NewRand(5), input, 4)
	if diff := cmp.Diff(p1, p2); diff != "" {
		t.Errorf("same seed produced different splits (-first +second):\n%s", diff)
	}
}

func TestNames(t *testing.T) {
	n := DefaultNames()
	if got := n.SplitFile(1); got != "output1.txt" {
		t.Errorf("expected output1.txt, got %s", got)
	}
	if got := n.SplitFile(12); got != "output12.txt" {
		t.Errorf("expected output12.txt, got %s", got)
	}
	if n.SampleName != "randomly_selected_prompts.txt" {
		t.Errorf("unexpected sample name %s", n.SampleName)
	}
}

func TestNames_Outputs(t *testing.T) {
	n := DefaultNames()

	tests := []struct {
		mode     output.Mode
		numFiles int
		want     []string
	}{
		{output.ModeHalves, 0, []string{"output1.txt", "output2.txt"}},
		{output.ModeSplit, 3, []string{"output1.txt", "output2.txt", "output3.txt"}},
		{output.ModeSplit, 1, nil},
		{output.ModeSample, 0, []string{"randomly_selected_prompts.txt"}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%d", tt.mode, tt.numFiles), func(t *testing.T) {
			if diff := cmp.Diff(tt.want, n.Outputs(tt.mode, tt.numFiles)); diff != "" {
				t.Errorf("outputs mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
