package noise

import (
	"math"
	"testing"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/legends-sub001/internal/rng"
)

func TestNew_Deterministic(t *testing.T) {
	a := New(rng.New(7))
	b := New(rng.New(7))

	for _, pt := range [][2]float64{{0.1, 0.2}, {5.3, -2.1}, {100.5, 100.5}} {
		va := a.Eval(pt[0], pt[1])
		vb := b.Eval(pt[0], pt[1])
		if va != vb {
			t.Fatalf("Eval(%v) not deterministic: %v vs %v", pt, va, vb)
		}
	}
}

func TestNew_DifferentSeedsDiffer(t *testing.T) {
	a := New(rng.New(1))
	b := New(rng.New(2))

	same := true
	for x := 0.0; x < 10; x++ {
		for y := 0.0; y < 10; y++ {
			if a.Eval(x, y) != b.Eval(x, y) {
				same = false
			}
		}
	}
	if same {
		t.Fatal("two different seeds produced an identical noise field")
	}
}

func TestEval_BoundedRange(t *testing.T) {
	n := New(rng.New(42))
	for x := 0.0; x < 50; x += 0.37 {
		for y := 0.0; y < 50; y += 0.41 {
			v := n.Eval(x, y)
			if v < -1.5 || v > 1.5 {
				t.Fatalf("Eval(%v,%v) = %v, outside expected range", x, y, v)
			}
		}
	}
}

func TestFBM_NormalizedRange(t *testing.T) {
	n := New(rng.New(3))
	for x := 0.0; x < 20; x += 1.3 {
		for y := 0.0; y < 20; y += 1.7 {
			v := n.FBM(x, y, 4, 2.0, 0.5)
			if v < -1.5 || v > 1.5 {
				t.Fatalf("FBM(%v,%v) = %v, outside expected range", x, y, v)
			}
		}
	}
}

func TestRidge_NonNegative(t *testing.T) {
	n := New(rng.New(9))
	for x := 0.0; x < 20; x += 1.1 {
		for y := 0.0; y < 20; y += 1.3 {
			v := n.Ridge(x, y, 3, 2.0, 0.5)
			if v < 0 {
				t.Fatalf("Ridge(%v,%v) = %v, expected non-negative", x, y, v)
			}
		}
	}
}

// TestFBM_ShapeMatchesReferenceImplementation doesn't assert exact
// equality against opensimplex-go — the two permutation tables are
// built differently on purpose (ours must derive from our own RNG
// fork, see package doc) — but checks that our fBm output and the
// reference library's output both span a range of at least 0.05
// across a sample grid, rather than degenerating to a constant.
func TestFBM_ShapeMatchesReferenceImplementation(t *testing.T) {
	ours := New(rng.New(123))
	ref := opensimplex.NewNormalized(123)

	oursMin, oursMax := math.Inf(1), math.Inf(-1)
	refMin, refMax := math.Inf(1), math.Inf(-1)

	for x := 0.0; x < 30; x += 0.9 {
		for y := 0.0; y < 30; y += 0.9 {
			ov := ours.FBM(x, y, 4, 2.0, 0.5)
			rv := octaveNoise(ref, x, y, 4, 0.05, 0.5)
			oursMin, oursMax = math.Min(oursMin, ov), math.Max(oursMax, ov)
			refMin, refMax = math.Min(refMin, rv), math.Max(refMax, rv)
		}
	}

	if oursMax-oursMin < 0.05 {
		t.Fatalf("our fBm field looks flat: min=%v max=%v", oursMin, oursMax)
	}
	if refMax-refMin < 0.05 {
		t.Fatalf("reference fBm field looks flat: min=%v max=%v", refMin, refMax)
	}
}

// octaveNoise mirrors the teacher's own fractal-sum helper
// (world/generation.go), used here only to exercise the reference
// library the same way the teacher did.
func octaveNoise(n opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += n.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}
