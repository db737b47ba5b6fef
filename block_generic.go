//go:build !amd64 || noasm

package cyclecheck

// initKernelSelection keeps the pure Go compare on platforms without an
// assembly kernel.
func initKernelSelection() {}
