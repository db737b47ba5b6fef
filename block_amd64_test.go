//go:build amd64 && !noasm

package cyclecheck

import (
	"testing"

	"golang.org/x/sys/cpu"
)

func TestEqualInt32SSE2(t *testing.T) {
	if !cpu.X86.HasSSE2 {
		t.Skip("SSE2 not available")
	}
	checkEqualKernel(t, KernelSSE2, equalInt32SSE2Slices)
}

func TestEqualInt32AVX2(t *testing.T) {
	if !cpu.X86.HasAVX2 {
		t.Skip("AVX2 not available")
	}
	checkEqualKernel(t, KernelAVX2, equalInt32AVX2Slices)
}
