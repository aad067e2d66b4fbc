package game

import (
	"math/rand"

	"github.com/vovakirdan/fruit-catcher/internal/core"
)

// Pattern is a rule for placing a batch of fruit across the top edge.
type Pattern int

const (
	PatternSingle Pattern = iota
	PatternWave
	PatternCluster
	PatternRandom
	PatternAlternating
	PatternCorners
)

// rotation is the set the pattern timer and milestones choose from.
var rotation = []Pattern{PatternRandom, PatternWave, PatternCluster, PatternAlternating, PatternCorners}

// String returns the pattern name.
func (p Pattern) String() string {
	switch p {
	case PatternSingle:
		return "single"
	case PatternWave:
		return "wave"
	case PatternCluster:
		return "cluster"
	case PatternRandom:
		return "random"
	case PatternAlternating:
		return "alternating"
	case PatternCorners:
		return "corners"
	default:
		return "unknown"
	}
}

// Color is used for the particles announcing a pattern change.
func (p Pattern) Color() core.Color {
	switch p {
	case PatternRandom:
		return core.ColorPurple
	case PatternWave:
		return core.ColorBlue
	case PatternCluster:
		return core.ColorGreen
	case PatternAlternating:
		return core.ColorYellow
	case PatternCorners:
		return core.ColorOrange
	default:
		return core.ColorCyan
	}
}

// Pattern limits.
const (
	waveMax      = 6
	waveSpacing  = 80
	clusterMax   = 5
	clusterSpan  = 60
	clusterEdge  = 50
	sectionsMax  = 5
	cornerPoints = 5
)

// positions returns the x coordinates for a batch of n fruit on a field of
// width w. Patterns that need more fruit than n fall back to a single fruit.
func positions(p Pattern, n int, w float64, rng *rand.Rand) []float64 {
	if n <= 1 {
		p = PatternSingle
	}
	switch {
	case p == PatternWave && n >= 3:
		base := uniform(rng, w/4, 3*w/4)
		xs := make([]float64, 0, waveMax)
		for i := 0; i < min(n, waveMax); i++ {
			x := base + float64(i*waveSpacing)
			for x >= w {
				x -= w
			}
			xs = append(xs, x)
		}
		return xs

	case p == PatternCluster && n >= 2:
		center := uniform(rng, w/3, 2*w/3)
		xs := make([]float64, 0, clusterMax)
		for i := 0; i < min(n, clusterMax); i++ {
			x := center + uniform(rng, -clusterSpan, clusterSpan)
			xs = append(xs, core.ClampF(x, clusterEdge, w-clusterEdge))
		}
		return xs

	case p == PatternRandom:
		count := 1 + rng.Intn(n)
		xs := make([]float64, count)
		for i := range xs {
			xs[i] = uniform(rng, w/6, 5*w/6)
		}
		return xs

	case p == PatternAlternating && n >= 2:
		sections := min(sectionsMax, n)
		width := w / float64(sections)
		var xs []float64
		for i := 0; i < sections; i++ {
			if i%2 == 0 || n > 3 {
				xs = append(xs, float64(i)*width+uniform(rng, 0, width))
			}
		}
		return xs

	case p == PatternCorners && n >= 2:
		all := []float64{w / 6, w / 3, w / 2, 2 * w / 3, 5 * w / 6}
		return all[:min(n, cornerPoints)]

	default:
		return []float64{uniform(rng, w/6, 5*w/6)}
	}
}

// rerollPattern picks a pattern suited to a batch size.
func rerollPattern(n int, rng *rand.Rand) Pattern {
	switch n {
	case 1:
		return PatternSingle
	case 2:
		if rng.Intn(2) == 0 {
			return PatternRandom
		}
		return PatternCluster
	default:
		return rotation[rng.Intn(len(rotation))]
	}
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
