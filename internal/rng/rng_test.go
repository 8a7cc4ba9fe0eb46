package rng

import "testing"

func TestNew_SameSeedSameSequence(t *testing.T) {
	a := New(12345)
	b := New(12345)
	for i := 0; i < 100; i++ {
		if va, vb := a.Next(), b.Next(); va != vb {
			t.Fatalf("call %d: %v != %v", i, va, vb)
		}
	}
}

func TestNew_DifferentSeedsDiverge(t *testing.T) {
	a := New(1)
	b := New(2)
	same := true
	for i := 0; i < 10; i++ {
		if a.Next() != b.Next() {
			same = false
		}
	}
	if same {
		t.Fatal("two different seeds produced the same first 10 draws")
	}
}

func TestNext_InUnitInterval(t *testing.T) {
	s := New(7)
	for i := 0; i < 10000; i++ {
		v := s.Next()
		if v < 0 || v >= 1 {
			t.Fatalf("Next() = %v, want [0,1)", v)
		}
	}
}

func TestNextInt_InclusiveBothEnds(t *testing.T) {
	s := New(99)
	seen := map[int]bool{}
	for i := 0; i < 5000; i++ {
		v := s.NextInt(3, 7)
		if v < 3 || v > 7 {
			t.Fatalf("NextInt(3,7) = %v, out of range", v)
		}
		seen[v] = true
	}
	for want := 3; want <= 7; want++ {
		if !seen[want] {
			t.Errorf("value %d never produced in 5000 draws", want)
		}
	}
}

func TestNextInt_DegenerateRange(t *testing.T) {
	s := New(1)
	if v := s.NextInt(5, 5); v != 5 {
		t.Fatalf("NextInt(5,5) = %v, want 5", v)
	}
	if v := s.NextInt(5, 3); v != 5 {
		t.Fatalf("NextInt(5,3) = %v, want 5 (a when b<=a)", v)
	}
}

func TestNextFloat_HalfOpen(t *testing.T) {
	s := New(3)
	for i := 0; i < 10000; i++ {
		v := s.NextFloat(2, 4)
		if v < 2 || v >= 4 {
			t.Fatalf("NextFloat(2,4) = %v, want [2,4)", v)
		}
	}
}

func TestChance_Bounds(t *testing.T) {
	s := New(5)
	for i := 0; i < 1000; i++ {
		if s.Chance(0) {
			t.Fatal("Chance(0) returned true")
		}
	}
	s = New(5)
	for i := 0; i < 1000; i++ {
		if !s.Chance(1) {
			t.Fatal("Chance(1) returned false")
		}
	}
}

func TestPick_ReturnsElementOfSeq(t *testing.T) {
	s := New(11)
	seq := []string{"a", "b", "c", "d"}
	valid := map[string]bool{"a": true, "b": true, "c": true, "d": true}
	for i := 0; i < 100; i++ {
		if v := Pick(s, seq); !valid[v] {
			t.Fatalf("Pick returned %q, not in seq", v)
		}
	}
}

func TestShuffle_IsPermutation(t *testing.T) {
	s := New(21)
	seq := []int{0, 1, 2, 3, 4, 5, 6, 7}
	orig := append([]int(nil), seq...)
	Shuffle(s, seq)

	counts := map[int]int{}
	for _, v := range seq {
		counts[v]++
	}
	for _, v := range orig {
		if counts[v] != 1 {
			t.Fatalf("shuffled slice doesn't contain %d exactly once", v)
		}
	}
}

func TestWeightedPick_FavorsHeavierItems(t *testing.T) {
	s := New(1)
	items := []Weighted[string]{
		{Item: "rare", Weight: 1},
		{Item: "common", Weight: 99},
	}
	counts := map[string]int{}
	for i := 0; i < 2000; i++ {
		counts[WeightedPick(s, items)]++
	}
	if counts["common"] <= counts["rare"] {
		t.Fatalf("expected common to dominate: %v", counts)
	}
}

func TestWeightedPick_RoundingUnderrunFallsBackToLastItem(t *testing.T) {
	s := New(1)
	items := []Weighted[string]{
		{Item: "only", Weight: 0},
	}
	if got := WeightedPick(s, items); got != "only" {
		t.Fatalf("WeightedPick with zero-weight single item = %q, want %q", got, "only")
	}
}

func TestGaussian_ConsumesTwoDraws(t *testing.T) {
	a := New(42)
	b := New(42)
	a.Gaussian(0, 1)
	b.Next()
	b.Next()
	if a.Next() != b.Next() {
		t.Fatal("Gaussian did not consume exactly two Next() calls")
	}
}

func TestFork_IsIndependentOfParent(t *testing.T) {
	parent := New(555)
	child := parent.Fork()

	parentVals := []float64{parent.Next(), parent.Next()}
	childVals := []float64{child.Next(), child.Next()}

	if parentVals[0] == childVals[0] && parentVals[1] == childVals[1] {
		t.Fatal("forked child produced the same draws as its parent")
	}
}

func TestFork_DeterministicGivenSameParentState(t *testing.T) {
	a := New(555)
	b := New(555)

	childA := a.Fork()
	childB := b.Fork()

	for i := 0; i < 50; i++ {
		if childA.Next() != childB.Next() {
			t.Fatalf("forked children diverged at draw %d", i)
		}
	}
}
