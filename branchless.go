package cyclecheck

import (
	"github.com/grailbio/base/must"
)

// zoneTable replaces the zone comparisons with one indexed load. The period
// is cut into cells of gcd(Period, PlusEnd, MinusEnd) positions; every cell
// lies inside a single zone, so the expected value at offset r of a period
// is values[r/cell]. The reference configuration has five cells of 50:
// +1, -1, 0, 0, 0.
type zoneTable struct {
	cell   int
	values []int32
}

func newZoneTable(cfg Config) *zoneTable {
	cell := gcd(gcd(cfg.Period, cfg.PlusEnd), cfg.MinusEnd)
	t := &zoneTable{cell: cell, values: make([]int32, cfg.Period/cell)}
	for j := range t.values {
		t.values[j] = zoneValues[cfg.Zone(j*cell)]
	}
	for r := 0; r < cfg.Period; r++ {
		must.Truef(t.values[r/cell] == cfg.Expected(r),
			"cyclecheck: zone table entry %d disagrees with pattern at offset %d", r/cell, r)
	}
	return t
}

// at returns the expected value at index i.
func (t *zoneTable) at(i, period int) int32 {
	return t.values[(i%period)/t.cell]
}

// Branchless checks one element at a time through the zone table. Mismatches
// are folded into an accumulator with XOR/OR and tested once per period, so
// the per-element loop carries no data-dependent branch.
type Branchless struct {
	cfg   Config
	table *zoneTable
}

// NewBranchless returns the branch-free scalar validator for cfg.
func NewBranchless(cfg Config) *Branchless {
	cfg = mustConfig(cfg)
	return &Branchless{cfg: cfg, table: newZoneTable(cfg)}
}

// Name implements Validator.
func (v *Branchless) Name() string { return NameBranchless }

// Validate implements Validator.
func (v *Branchless) Validate(arr []int32) bool {
	validateLength(v.cfg, arr)
	p, cell, values := v.cfg.Period, v.table.cell, v.table.values
	for base := 0; base < len(arr); base += p {
		end := min(base+p, len(arr))
		var diff int32
		for i := base; i < end; i++ {
			diff |= arr[i] ^ values[(i-base)/cell]
		}
		if diff != 0 {
			return false
		}
	}
	return true
}

// BranchlessLanes combines the strided eight-lane layout with the zone
// table: the lane constant is a broadcast of one table entry, or a gather
// of eight entries when the stride is not a multiple of the period. The
// choice is made once per call, outside the loop.
type BranchlessLanes struct {
	cfg     Config
	table   *zoneTable
	stride  int
	uniform bool
}

// NewBranchlessLanes returns the branch-free lane validator for cfg.
func NewBranchlessLanes(cfg Config) *BranchlessLanes {
	cfg = mustConfig(cfg)
	s := cfg.Length / lanes8
	return &BranchlessLanes{
		cfg:     cfg,
		table:   newZoneTable(cfg),
		stride:  s,
		uniform: s%cfg.Period == 0,
	}
}

// Name implements Validator.
func (v *BranchlessLanes) Name() string { return NameBranchlessLanes }

// Validate implements Validator.
func (v *BranchlessLanes) Validate(arr []int32) bool {
	validateLength(v.cfg, arr)
	s, p := v.stride, v.cfg.Period
	if v.uniform {
		for i := 0; i < s; i++ {
			var got Lane8
			for j := range got {
				got[j] = arr[i+j*s]
			}
			if got != broadcast8(v.table.at(i, p)) {
				return false
			}
		}
	} else {
		for i := 0; i < s; i++ {
			var got, want Lane8
			for j := range got {
				got[j] = arr[i+j*s]
				want[j] = v.table.at(i+j*s, p)
			}
			if got != want {
				return false
			}
		}
	}
	var diff int32
	for i := lanes8 * s; i < len(arr); i++ {
		diff |= arr[i] ^ v.table.at(i, p)
	}
	return diff == 0
}
