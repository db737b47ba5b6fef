package cyclecheck

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlockLen(t *testing.T) {
	assert.Equal(t, 4000, blockLen(DefaultConfig()))
	assert.Equal(t, 3848, blockLen(smallConfig()))
	assert.Equal(t, 8000, blockLen(Config{Period: 8000}))
	for _, cfg := range testConfigs() {
		n := blockLen(cfg)
		assert.Zero(t, n%cfg.Period)
		assert.Zero(t, n%lanes8)
	}
}

func TestInfo(t *testing.T) {
	info := Info()
	assert.Contains(t, []string{KernelGeneric, KernelSSE2, KernelAVX2}, info.Kernel)
	assert.Equal(t, info.Kernel != KernelGeneric, info.Accelerated)
	if info.Accelerated {
		assert.Contains(t, []int{lanes4, lanes8}, info.Lanes)
	} else {
		assert.Equal(t, 1, info.Lanes)
	}
}

// checkEqualKernel compares eq against the generic kernel on every length
// up to 80, with and without a difference at each position.
func checkEqualKernel(t *testing.T, name string, eq func(a, b []int32) bool) {
	t.Helper()
	for n := 0; n <= 80; n++ {
		a := make([]int32, n)
		for i := range a {
			a[i] = int32(i*7919) - 100
		}
		b := slices.Clone(a)
		assert.Truef(t, eq(a, b), "%s: equal n=%d", name, n)
		for j := 0; j < n; j++ {
			b[j] ^= 1 << (j % 32)
			assert.Falsef(t, eq(a, b), "%s: n=%d diff at %d", name, n, j)
			b[j] = a[j]
		}
	}
	assert.Falsef(t, eq([]int32{1, 2}, []int32{1}), "%s: length mismatch", name)
}

func TestEqualInt32Generic(t *testing.T) {
	checkEqualKernel(t, "generic", equalInt32Generic)
}

func TestEqualInt32Selected(t *testing.T) {
	checkEqualKernel(t, Info().Kernel, equalInt32)
}

func TestBlockPartialTrailingRun(t *testing.T) {
	// 4000-element runs leave a 3000-element tail.
	cfg := Config{Length: 7000, Period: 250, PlusEnd: 50, MinusEnd: 100}
	v := NewBlock(cfg)
	arr := patternArray(cfg)
	assert.True(t, v.Validate(arr))
	for _, j := range []int{3999, 4000, 6999} {
		bad := slices.Clone(arr)
		bad[j] = -7
		assert.Falsef(t, v.Validate(bad), "index %d", j)
	}
}
