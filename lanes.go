package cyclecheck

import (
	"github.com/grailbio/base/must"
)

// Lane widths used by the vectorized strategies.
const (
	lanes4 = 4
	lanes8 = 8
)

// Lane4 is a group of four values compared as one unit.
type Lane4 [lanes4]int32

// Lane8 is a group of eight values compared as one unit.
type Lane8 [lanes8]int32

func broadcast4(v int32) Lane4 {
	return Lane4{v, v, v, v}
}

func broadcast8(v int32) Lane8 {
	return Lane8{v, v, v, v, v, v, v, v}
}

// expectedPeriod materializes one period of the pattern from the zone
// bounds.
func expectedPeriod(cfg Config) []int32 {
	p := make([]int32, cfg.Period)
	for i := range p[:cfg.PlusEnd] {
		p[i] = 1
	}
	for i := cfg.PlusEnd; i < cfg.MinusEnd; i++ {
		p[i] = -1
	}
	return p
}

// expectedRun returns n consecutive pattern values starting at a period
// boundary. n must be a multiple of the period.
func expectedRun(cfg Config, n int) []int32 {
	period := expectedPeriod(cfg)
	run := make([]int32, 0, n)
	for len(run) < n {
		run = append(run, period...)
	}
	verifyRun(cfg, run)
	return run
}

// verifyRun checks a cached run of expected values against the oracle.
func verifyRun(cfg Config, run []int32) {
	for i, v := range run {
		must.Truef(v == cfg.Expected(i), "cyclecheck: cached value %d at %d disagrees with pattern value %d", v, i, cfg.Expected(i))
	}
}

// laneTable4 holds the expected Lane4 for every contiguous group position.
// Periods do not have to be multiples of the lane width, so the table spans
// lcm(Period, 4) elements: for Period 250 that is two periods, 125 lanes.
type laneTable4 struct {
	span  int
	lanes []Lane4
}

func newLaneTable4(cfg Config) *laneTable4 {
	span := lcm(cfg.Period, lanes4)
	run := expectedRun(cfg, span)
	t := &laneTable4{span: span, lanes: make([]Lane4, span/lanes4)}
	for g := range t.lanes {
		t.lanes[g] = Lane4(run[g*lanes4 : (g+1)*lanes4])
	}
	return t
}

// at returns the lane constant for the group starting at index i; i must be
// a multiple of the lane width.
func (t *laneTable4) at(i int) Lane4 {
	return t.lanes[(i%t.span)/lanes4]
}

// laneTable8 is laneTable4 for eight-wide lanes.
type laneTable8 struct {
	span  int
	lanes []Lane8
}

func newLaneTable8(cfg Config) *laneTable8 {
	span := lcm(cfg.Period, lanes8)
	run := expectedRun(cfg, span)
	t := &laneTable8{span: span, lanes: make([]Lane8, span/lanes8)}
	for g := range t.lanes {
		t.lanes[g] = Lane8(run[g*lanes8 : (g+1)*lanes8])
	}
	return t
}

func (t *laneTable8) at(i int) Lane8 {
	return t.lanes[(i%t.span)/lanes8]
}
