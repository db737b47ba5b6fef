package cyclecheck

import "testing"

func BenchmarkValidate(b *testing.B) {
	cfg := DefaultConfig()
	arr := patternArray(cfg)
	for _, v := range All(cfg) {
		b.Run(v.Name(), func(b *testing.B) {
			b.SetBytes(int64(4 * len(arr)))
			for i := 0; i < b.N; i++ {
				if !v.Validate(arr) {
					b.Fatal("pattern rejected")
				}
			}
		})
	}
}

func BenchmarkValidateEarlyMismatch(b *testing.B) {
	cfg := DefaultConfig()
	arr := patternArray(cfg)
	arr[300] = 0
	for _, v := range All(cfg) {
		b.Run(v.Name(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if v.Validate(arr) {
					b.Fatal("mismatch missed")
				}
			}
		})
	}
}
