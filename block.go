package cyclecheck

import "slices"

//go:generate go run -tags avogen ./internal/avo -out block_amd64.s

// blockTarget is the approximate number of elements compared per kernel
// call. Runs are rounded to whole multiples of lcm(Period, 8).
const blockTarget = 4096

// Kernel names reported by Info.
const (
	KernelGeneric = "generic"
	KernelSSE2    = "sse2"
	KernelAVX2    = "avx2"
)

// KernelInfo describes the block compare kernel selected at startup.
type KernelInfo struct {
	// Kernel is one of KernelGeneric, KernelSSE2 or KernelAVX2.
	Kernel string
	// Lanes is the number of int32 values compared per instruction.
	Lanes int
	// Accelerated reports whether an assembly kernel is in use.
	Accelerated bool
}

// equalInt32 reports whether a and b hold the same values. init swaps in an
// assembly kernel when the CPU supports one.
var equalInt32 func(a, b []int32) bool = equalInt32Generic

var kernel = KernelInfo{Kernel: KernelGeneric, Lanes: 1}

func init() {
	initKernelSelection()
}

// Info reports which block compare kernel is active.
func Info() KernelInfo {
	return kernel
}

func equalInt32Generic(a, b []int32) bool {
	return slices.Equal(a, b)
}

// Block compares the array against a materialized run of expected values,
// one run at a time, with the block compare kernel. Runs start on period
// boundaries so the same expected run serves every position.
type Block struct {
	cfg  Config
	want []int32
}

// NewBlock returns the block compare validator for cfg.
func NewBlock(cfg Config) *Block {
	cfg = mustConfig(cfg)
	return &Block{cfg: cfg, want: expectedRun(cfg, blockLen(cfg))}
}

// blockLen returns the run length for cfg: a multiple of both the period
// and the widest lane.
func blockLen(cfg Config) int {
	span := lcm(cfg.Period, lanes8)
	return span * max(1, blockTarget/span)
}

// Name implements Validator.
func (v *Block) Name() string { return NameBlock }

// Validate implements Validator.
func (v *Block) Validate(arr []int32) bool {
	validateLength(v.cfg, arr)
	b := len(v.want)
	for off := 0; off < len(arr); off += b {
		end := min(off+b, len(arr))
		if !equalInt32(arr[off:end], v.want[:end-off]) {
			return false
		}
	}
	return true
}
