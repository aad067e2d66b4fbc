package audio

import "time"

type fadeDir int

const (
	fadeIn fadeDir = iota + 1
	fadeOut
)

// fade is a stepped volume ramp driven by elapsed time. Each interval moves
// the level one step of target/steps toward the end point.
type fade struct {
	active   bool
	dir      fadeDir
	step     int
	steps    int
	amount   float64
	interval time.Duration
	acc      time.Duration
}

func newFade(dir fadeDir, level float64, steps int, interval time.Duration) fade {
	f := fade{
		active:   true,
		dir:      dir,
		steps:    steps,
		amount:   level / float64(steps),
		interval: interval,
	}
	if dir == fadeOut {
		f.step = steps
	}
	return f
}

// retarget changes the level the ramp scales to.
func (f *fade) retarget(level float64) {
	f.amount = level / float64(f.steps)
}

// advance consumes dt and returns the levels of every step that elapsed.
func (f *fade) advance(dt time.Duration) []float64 {
	var levels []float64
	f.acc += dt
	for f.active && f.acc >= f.interval {
		f.acc -= f.interval
		switch f.dir {
		case fadeIn:
			f.step++
		case fadeOut:
			f.step--
		}
		levels = append(levels, float64(f.step)*f.amount)
		if f.step <= 0 || f.step >= f.steps {
			f.active = false
		}
	}
	return levels
}
