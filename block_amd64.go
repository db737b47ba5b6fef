//go:build amd64 && !noasm

package cyclecheck

import (
	"golang.org/x/sys/cpu"
)

// Assembly entry points provided by block_amd64.s.
//
//go:noescape
func equalInt32SSE2(a *int32, b *int32, n int) bool

//go:noescape
func equalInt32AVX2(a *int32, b *int32, n int) bool

func initKernelSelection() {
	switch {
	case cpu.X86.HasAVX2:
		equalInt32 = equalInt32AVX2Slices
		kernel = KernelInfo{Kernel: KernelAVX2, Lanes: lanes8, Accelerated: true}
	case cpu.X86.HasSSE2:
		equalInt32 = equalInt32SSE2Slices
		kernel = KernelInfo{Kernel: KernelSSE2, Lanes: lanes4, Accelerated: true}
	}
}

func equalInt32SSE2Slices(a, b []int32) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return equalInt32SSE2(&a[0], &b[0], len(a))
}

func equalInt32AVX2Slices(a, b []int32) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return equalInt32AVX2(&a[0], &b[0], len(a))
}
