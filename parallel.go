package cyclecheck

import (
	"errors"
	"runtime"
	"sync/atomic"

	"github.com/grailbio/base/must"
	"github.com/grailbio/base/traverse"
)

// pollInterval is how many indices a worker checks between looks at the
// shared failure flag.
const pollInterval = 64

// errMismatch stops the traversal once any worker has seen a bad element.
var errMismatch = errors.New("cyclecheck: mismatch")

// Parallel splits the index range into chunks and checks them on a bounded
// worker pool. The first worker to find a mismatch raises a shared flag;
// the pool stops handing out chunks and running workers abandon theirs at
// the next poll.
type Parallel struct {
	cfg      Config
	workers  int
	chunkLen int
}

// NewParallel returns the worker-pool validator for cfg.
func NewParallel(cfg Config) *Parallel {
	cfg = mustConfig(cfg)
	p := &Parallel{cfg: cfg, workers: cfg.Workers, chunkLen: cfg.ChunkLen}
	if p.workers == 0 {
		p.workers = runtime.NumCPU()
	}
	if p.chunkLen == 0 {
		p.chunkLen = cfg.Period
	}
	return p
}

// Name implements Validator.
func (p *Parallel) Name() string { return NameParallel }

// Workers returns the size of the worker pool.
func (p *Parallel) Workers() int { return p.workers }

// Validate implements Validator.
func (p *Parallel) Validate(arr []int32) bool {
	validateLength(p.cfg, arr)
	n := len(arr)
	chunks := (n + p.chunkLen - 1) / p.chunkLen
	var failed atomic.Bool
	err := traverse.Limit(p.workers).Each(chunks, func(c int) error {
		start := c * p.chunkLen
		end := min(start+p.chunkLen, n)
		for lo := start; lo < end; lo += pollInterval {
			if failed.Load() {
				return errMismatch
			}
			hi := min(lo+pollInterval, end)
			for i := lo; i < hi; i++ {
				if arr[i] != p.cfg.Expected(i) {
					failed.CompareAndSwap(false, true)
					return errMismatch
				}
			}
		}
		return nil
	})
	if err == nil {
		return true
	}
	must.Truef(errors.Is(err, errMismatch), "cyclecheck: parallel traversal failed: %v", err)
	return false
}
