package game

import (
	"math/rand"
	"testing"
)

func TestPositionsStayOnField(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const w = 800.0

	for _, p := range append([]Pattern{PatternSingle}, rotation...) {
		for n := 1; n <= 15; n++ {
			for trial := 0; trial < 50; trial++ {
				xs := positions(p, n, w, rng)
				if len(xs) == 0 {
					t.Fatalf("%v n=%d: empty batch", p, n)
				}
				for _, x := range xs {
					if x < 0 || x > w {
						t.Fatalf("%v n=%d: x = %v outside [0, %v]", p, n, x, w)
					}
				}
			}
		}
	}
}

func TestPositionCounts(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const w = 800.0

	tests := []struct {
		pattern Pattern
		n       int
		want    int
	}{
		{PatternSingle, 10, 1},
		{PatternWave, 1, 1},
		{PatternWave, 2, 1},
		{PatternWave, 3, 3},
		{PatternWave, 12, 6},
		{PatternCluster, 2, 2},
		{PatternCluster, 9, 5},
		{PatternCorners, 3, 3},
		{PatternCorners, 15, 5},
		{PatternAlternating, 2, 1},
		{PatternAlternating, 3, 2},
		{PatternAlternating, 4, 4},
		{PatternAlternating, 8, 5},
	}

	for _, tt := range tests {
		t.Run(tt.pattern.String(), func(t *testing.T) {
			if got := len(positions(tt.pattern, tt.n, w, rng)); got != tt.want {
				t.Errorf("positions(%v, %d) gave %d fruit, expected %d", tt.pattern, tt.n, got, tt.want)
			}
		})
	}
}

func TestRandomPatternCount(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		n := len(positions(PatternRandom, 4, 800, rng))
		if n < 1 || n > 4 {
			t.Fatalf("random batch of %d, expected 1..4", n)
		}
		seen[n] = true
	}
	if len(seen) != 4 {
		t.Errorf("random batch sizes seen: %v", seen)
	}
}

func TestClusterKeepsOffEdges(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 500; i++ {
		for _, x := range positions(PatternCluster, 5, 200, rng) {
			if x < clusterEdge || x > 200-clusterEdge {
				t.Fatalf("cluster x = %v too close to the edge", x)
			}
		}
	}
}

func TestAlternatingUsesSections(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	const w = 800.0
	for i := 0; i < 200; i++ {
		xs := positions(PatternAlternating, 5, w, rng)
		width := w / 5
		for j, x := range xs {
			if x < float64(j)*width || x > float64(j+1)*width {
				t.Fatalf("fruit %d at %v outside its section", j, x)
			}
		}
	}
}

func TestWaveWraps(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		xs := positions(PatternWave, 6, 300, rng)
		for _, x := range xs {
			if x < 0 || x >= 300 {
				t.Fatalf("wave x = %v not wrapped", x)
			}
		}
	}
}

func TestRerollPattern(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 100; i++ {
		if p := rerollPattern(1, rng); p != PatternSingle {
			t.Fatalf("rerollPattern(1) = %v", p)
		}
		if p := rerollPattern(2, rng); p != PatternRandom && p != PatternCluster {
			t.Fatalf("rerollPattern(2) = %v", p)
		}
		if p := rerollPattern(6, rng); p == PatternSingle {
			t.Fatal("rerollPattern(6) picked single")
		}
	}
}
