//go:build avogen
// +build avogen

package main

import (
	. "github.com/mmcloughlin/avo/build"
	op "github.com/mmcloughlin/avo/operand"
	"github.com/mmcloughlin/avo/reg"
)

// This file generates the int32 block compare kernels used by the block
// strategy. Both walk two arrays of n int32 values in lockstep, compare one
// register of lanes per step with a packed equality (PCMPEQL / VPCMPEQD),
// collapse the lane mask with PMOVMSKB and leave at the first register that
// is not all ones. The remaining n mod lanes values are compared one by one.

func genEqualSSE2Kernel() {
	TEXT("equalInt32SSE2", NOSPLIT, "func(a *int32, b *int32, n int) bool")
	Doc("equalInt32SSE2 reports whether the n int32 values at a and b are equal.")
	Doc("It compares four lanes per step.")

	aParam := Load(Param("a"), GP64())
	aPtr := aParam.(reg.GPVirtual)
	bParam := Load(Param("b"), GP64())
	bPtr := bParam.(reg.GPVirtual)
	n := Load(Param("n"), GP64())

	got := XMM()
	want := XMM()
	mask := GP32()

	Label("sse2_loop")
	CMPQ(n, op.Imm(4))
	JL(op.LabelRef("sse2_tail"))
	MOVOU(op.Mem{Base: aPtr}, got)
	MOVOU(op.Mem{Base: bPtr}, want)
	PCMPEQL(want, got)
	PMOVMSKB(got, mask)
	CMPL(mask, op.U32(0xffff))
	JNE(op.LabelRef("sse2_mismatch"))
	ADDQ(op.Imm(16), aPtr)
	ADDQ(op.Imm(16), bPtr)
	SUBQ(op.Imm(4), n)
	JMP(op.LabelRef("sse2_loop"))

	Label("sse2_tail")
	genScalarTail("sse2", aPtr, bPtr, n)

	Label("sse2_match")
	genReturn(1)

	Label("sse2_mismatch")
	genReturn(0)
}

func genEqualAVX2Kernel() {
	TEXT("equalInt32AVX2", NOSPLIT, "func(a *int32, b *int32, n int) bool")
	Doc("equalInt32AVX2 reports whether the n int32 values at a and b are equal.")
	Doc("It compares eight lanes per step.")

	aParam := Load(Param("a"), GP64())
	aPtr := aParam.(reg.GPVirtual)
	bParam := Load(Param("b"), GP64())
	bPtr := bParam.(reg.GPVirtual)
	n := Load(Param("n"), GP64())

	got := YMM()
	eq := YMM()
	mask := GP32()

	Label("avx2_loop")
	CMPQ(n, op.Imm(8))
	JL(op.LabelRef("avx2_tail"))
	VMOVDQU(op.Mem{Base: aPtr}, got)
	VPCMPEQD(op.Mem{Base: bPtr}, got, eq)
	VPMOVMSKB(eq, mask)
	Comment("All 32 mask bits set means all eight lanes matched.")
	NOTL(mask)
	TESTL(mask, mask)
	JNZ(op.LabelRef("avx2_mismatch"))
	ADDQ(op.Imm(32), aPtr)
	ADDQ(op.Imm(32), bPtr)
	SUBQ(op.Imm(8), n)
	JMP(op.LabelRef("avx2_loop"))

	Label("avx2_tail")
	genScalarTail("avx2", aPtr, bPtr, n)

	Label("avx2_match")
	VZEROUPPER()
	genReturn(1)

	Label("avx2_mismatch")
	VZEROUPPER()
	genReturn(0)
}

// genScalarTail compares the remaining values one at a time, jumping to
// <prefix>_match when n reaches zero and <prefix>_mismatch on a difference.
func genScalarTail(prefix string, aPtr, bPtr reg.GPVirtual, n reg.Register) {
	v := GP32()
	Label(prefix + "_tail_loop")
	TESTQ(n, n)
	JZ(op.LabelRef(prefix + "_match"))
	MOVL(op.Mem{Base: aPtr}, v)
	CMPL(v, op.Mem{Base: bPtr})
	JNE(op.LabelRef(prefix + "_mismatch"))
	ADDQ(op.Imm(4), aPtr)
	ADDQ(op.Imm(4), bPtr)
	DECQ(n)
	JMP(op.LabelRef(prefix + "_tail_loop"))
}

func genReturn(v uint64) {
	ret := GP8()
	MOVB(op.Imm(v), ret)
	Store(ret, ReturnIndex(0))
	RET()
}
