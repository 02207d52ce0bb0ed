package seed

import (
	"math/rand"
	"testing"
)

func TestWeightedChoiceDistribution(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	weights := []float64{0.7, 0.2, 0.1}
	counts := make([]int, len(weights))
	const draws = 20000
	for i := 0; i < draws; i++ {
		counts[weightedChoice(r, weights)]++
	}
	for i, w := range weights {
		got := float64(counts[i]) / draws
		if got < w-0.03 || got > w+0.03 {
			t.Errorf("index %d: frequency %.3f far from weight %.3f", i, got, w)
		}
	}
}

func TestWeightedChoiceZeroWeightNeverPicked(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	weights := []float64{0.7, 0.25, 0.05, 0}
	for i := 0; i < 10000; i++ {
		if weightedChoice(r, weights) == 3 {
			t.Fatal("picked an index with zero weight")
		}
	}
}

func TestIntRangeBounds(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	seenLo, seenHi := false, false
	for i := 0; i < 1000; i++ {
		v := intRange(r, 2, 6)
		if v < 2 || v > 6 {
			t.Fatalf("value %d outside [2, 6]", v)
		}
		if v == 2 {
			seenLo = true
		}
		if v == 6 {
			seenHi = true
		}
	}
	if !seenLo || !seenHi {
		t.Error("bounds are inclusive but were never drawn")
	}
}

func TestUniformBounds(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for i := 0; i < 1000; i++ {
		v := uniform(r, 3.5, 5.0)
		if v < 3.5 || v >= 5.0 {
			t.Fatalf("value %.4f outside [3.5, 5.0)", v)
		}
	}
}

func TestSampleIndexesDistinct(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	indexes := sampleIndexes(r, 100, 30)
	if len(indexes) != 30 {
		t.Fatalf("got %d indexes, want 30", len(indexes))
	}
	seen := map[int]bool{}
	for _, idx := range indexes {
		if idx < 0 || idx >= 100 {
			t.Fatalf("index %d out of range", idx)
		}
		if seen[idx] {
			t.Fatalf("index %d repeated", idx)
		}
		seen[idx] = true
	}
}

func TestSampleIndexesCapsAtPopulation(t *testing.T) {
	r := rand.New(rand.NewSource(6))
	if got := len(sampleIndexes(r, 5, 30)); got != 5 {
		t.Fatalf("got %d indexes, want 5", got)
	}
}
