//go:build avogen
// +build avogen

// Command avo writes block_amd64.s, the packed int32 equality kernels
// behind the block strategy. Run it through go generate in the module root.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	. "github.com/mmcloughlin/avo/build"
)

// compareKernels lists the equality kernels in the order they appear in the
// generated file.
var compareKernels = []struct {
	name string
	gen  func()
}{
	{"equal-sse2", genEqualSSE2Kernel},
	{"equal-avx2", genEqualAVX2Kernel},
}

var kernelsFlag = flag.String("kernels", "all", "comma-separated compare kernels to emit (equal-sse2, equal-avx2 or all)")

func main() {
	flag.Parse()

	want := map[string]bool{}
	for _, k := range strings.Split(strings.ToLower(*kernelsFlag), ",") {
		want[strings.TrimSpace(k)] = true
	}

	Package("github.com/Akron/cyclecheck")
	ConstraintExpr("amd64")
	ConstraintExpr("!noasm")

	emitted := 0
	for _, k := range compareKernels {
		if want["all"] || want[k.name] {
			k.gen()
			emitted++
		}
	}
	if emitted == 0 {
		fmt.Fprintf(os.Stderr, "avo: no compare kernel matches -kernels=%s\n", *kernelsFlag)
		os.Exit(2)
	}

	Generate()
}
