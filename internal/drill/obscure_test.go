package drill

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
)

func testRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func TestObscureMasksExactlyLevel(t *testing.T) {
	rng := testRand(1)
	secrets := []string{"a", "hunter2", "correct horse battery staple", "pässwörd"}
	for _, secret := range secrets {
		orig := []rune(secret)
		for level := 0; level <= len(orig); level++ {
			got, err := Obscure(rng, secret, level)
			if err != nil {
				t.Fatalf("Obscure(%q, %d): %v", secret, level, err)
			}
			out := []rune(got)
			if len(out) != len(orig) {
				t.Fatalf("Obscure(%q, %d) has %d runes, want %d", secret, level, len(out), len(orig))
			}
			masked := 0
			for i, r := range out {
				if r == Mask {
					masked++
					continue
				}
				if r != orig[i] {
					t.Errorf("Obscure(%q, %d)[%d] = %q, want %q", secret, level, i, r, orig[i])
				}
			}
			if masked != level {
				t.Errorf("Obscure(%q, %d) masked %d positions: %q", secret, level, masked, got)
			}
		}
	}
}

func TestObscureEndpoints(t *testing.T) {
	rng := testRand(2)
	got, err := Obscure(rng, "hunter2", 0)
	if err != nil {
		t.Fatal(err)
	}
	if got != "hunter2" {
		t.Errorf("Obscure(level 0) = %q, want %q", got, "hunter2")
	}
	got, err = Obscure(rng, "hunter2", 7)
	if err != nil {
		t.Fatal(err)
	}
	if got != strings.Repeat(string(Mask), 7) {
		t.Errorf("Obscure(level 7) = %q, want all masks", got)
	}
}

func TestObscureErrors(t *testing.T) {
	rng := testRand(3)
	tests := []struct {
		secret string
		level  int
		want   error
	}{
		{"abc", 4, ErrInvalidLevel},
		{"abc", -1, ErrInvalidLevel},
		{"", 1, ErrEmptySecret},
		{"ab\xffcd", 0, ErrInvalidSecret},
		{"ab\xffcd", 2, ErrInvalidSecret},
	}
	for _, tt := range tests {
		if _, err := Obscure(rng, tt.secret, tt.level); !errors.Is(err, tt.want) {
			t.Errorf("Obscure(%q, %d) error = %v, want %v", tt.secret, tt.level, err, tt.want)
		}
	}
	if got, err := Obscure(rng, "", 0); err != nil || got != "" {
		t.Errorf("Obscure(\"\", 0) = %q, %v; want \"\", nil", got, err)
	}
}

func TestObscureVaries(t *testing.T) {
	rng := testRand(4)
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		got, err := Obscure(rng, "abcdefghij", 3)
		if err != nil {
			t.Fatal(err)
		}
		seen[got] = true
	}
	if len(seen) < 10 {
		t.Errorf("only %d distinct hints in 50 draws", len(seen))
	}
}

func TestObscureUniform(t *testing.T) {
	const (
		n      = 8
		level  = 2
		trials = 40000
	)
	rng := testRand(5)
	counts := make([]int, n)
	for i := 0; i < trials; i++ {
		got, err := Obscure(rng, "abcdefgh", level)
		if err != nil {
			t.Fatal(err)
		}
		for j, r := range got {
			if r == Mask {
				counts[j]++
			}
		}
	}
	// Each position is hidden with probability level/n.
	want := float64(trials) * level / n
	for j, c := range counts {
		if dev := (float64(c) - want) / want; dev > 0.05 || dev < -0.05 {
			t.Errorf("position %d masked %d times, want about %.0f", j, c, want)
		}
	}
}

func TestNewRand(t *testing.T) {
	a, err := NewRand()
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewRand()
	if err != nil {
		t.Fatal(err)
	}
	same := true
	for i := 0; i < 4; i++ {
		if a.Uint64() != b.Uint64() {
			same = false
		}
	}
	if same {
		t.Error("two entropy-seeded generators produced the same stream")
	}
}
