package cyclecheck

import (
	"sync"

	"github.com/viterin/vek/vek32"
)

// Vek runs the block comparison through viterin/vek, which dispatches to
// AVX2 kernels when the CPU has them. Each run of int32 values is widened to
// float32 and compared lane-wise against the expected run. The pattern only
// holds -1, 0 and +1; an int32 converts to one of those float32 values only
// if it was that integer, so the comparison stays exact.
type Vek struct {
	cfg  Config
	want []float32
	pool sync.Pool
}

type vekScratch struct {
	got  []float32
	mask []bool
}

// NewVek returns the vek-backed validator for cfg.
func NewVek(cfg Config) *Vek {
	cfg = mustConfig(cfg)
	run := expectedRun(cfg, blockLen(cfg))
	v := &Vek{cfg: cfg, want: vek32.FromInt32(run)}
	n := len(run)
	v.pool.New = func() any {
		return &vekScratch{got: make([]float32, n), mask: make([]bool, n)}
	}
	return v
}

// Name implements Validator.
func (v *Vek) Name() string { return NameVek }

// Validate implements Validator.
func (v *Vek) Validate(arr []int32) bool {
	validateLength(v.cfg, arr)
	s := v.pool.Get().(*vekScratch)
	defer v.pool.Put(s)
	b := len(v.want)
	for off := 0; off < len(arr); off += b {
		end := min(off+b, len(arr))
		n := end - off
		vek32.FromInt32_Into(s.got[:n], arr[off:end])
		vek32.Eq_Into(s.mask[:n], s.got[:n], v.want[:n])
		if !vek32.All(s.mask[:n]) {
			return false
		}
	}
	return true
}
