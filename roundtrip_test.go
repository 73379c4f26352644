package m68k

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestMOVEMPredecrementLayout pins down the concrete memory layout produced
// by MOVEM.L D0-D7/A0-A6,-(A7) from an initial A7 of 0x1000: 15 longs
// written in descending register order (A6 first, D0 last), each preceded
// by a predecrement, so the final A7 holds D0 and the top of the original
// stack holds A6.
func TestMOVEMPredecrementLayout(t *testing.T) {
	bus := &testBus{}
	cpu := &CPU{bus: bus, variant: VariantMC68000}

	var regs Registers
	for i := range regs.D {
		regs.D[i] = 0x10000000 + uint32(i)
	}
	for i := 0; i < 7; i++ {
		regs.A[i] = 0x20000000 + uint32(i)
	}
	regs.SR = 0x2700
	regs.SSP = 0x1000
	cpu.SetState(regs)

	// movem.l d0-d7/a0-a6,-(a7): mask bit0=D0 through bit14=A6.
	instr := &Instruction{
		Family:  FamMOVEM,
		Size:    Long,
		Dst:     Operand{Mode: ModePreDec, Reg: 7},
		RegList: 0x7FFF,
	}
	execMOVEM(cpu, instr)

	wantSP := uint32(0x1000 - 15*4)
	if cpu.reg.A[7] != wantSP {
		t.Fatalf("A7 = 0x%X, want 0x%X", cpu.reg.A[7], wantSP)
	}
	if got := bus.Read(Long, wantSP); got != regs.D[0] {
		t.Errorf("memory at final A7 = 0x%X, want D0 (0x%X)", got, regs.D[0])
	}
	if got := bus.Read(Long, 0x1000-4); got != regs.A[6] {
		t.Errorf("memory at top of original stack = 0x%X, want A6 (0x%X)", got, regs.A[6])
	}
}

// TestMOVEMRoundTrip exercises the round-trip law: storing a register
// list with MOVEM reglist,-(An) and then loading the same list with
// MOVEM (An)+,reglist restores every register to its original value.
func TestMOVEMRoundTrip(t *testing.T) {
	bus := &testBus{}
	cpu := &CPU{bus: bus, variant: VariantMC68000}

	var regs Registers
	for i := range regs.D {
		regs.D[i] = 0x10000000 + uint32(i)*0x11
	}
	for i := 0; i < 7; i++ {
		regs.A[i] = 0x20000000 + uint32(i)*0x11
	}
	regs.SR = 0x2700
	regs.SSP = 0x8000
	cpu.SetState(regs)

	wantD, wantA := regs.D, regs.A

	store := &Instruction{
		Family:  FamMOVEM,
		Size:    Long,
		Dst:     Operand{Mode: ModePreDec, Reg: 7},
		RegList: 0x7FFF, // d0-d7/a0-a6
	}
	execMOVEM(cpu, store)

	if cpu.reg.A[7] != 0x8000-15*4 {
		t.Fatalf("A7 after store = 0x%X, want 0x%X", cpu.reg.A[7], uint32(0x8000-15*4))
	}

	// Clobber every register the list covers before restoring, so the
	// round trip can't pass by coincidence.
	for i := range cpu.reg.D {
		cpu.reg.D[i] = 0xDEADBEEF
	}
	for i := 0; i < 7; i++ {
		cpu.reg.A[i] = 0xDEADBEEF
	}

	load := &Instruction{
		Family:  FamMOVEM,
		Size:    Long,
		Reg:     1, // memory-to-register form
		Dst:     Operand{Mode: ModePostInc, Reg: 7},
		RegList: 0x7FFF,
	}
	execMOVEM(cpu, load)

	if cpu.reg.A[7] != 0x8000 {
		t.Errorf("A7 after restore = 0x%X, want 0x8000 (back to original)", cpu.reg.A[7])
	}
	if diff := cmp.Diff(wantD, cpu.reg.D); diff != "" {
		t.Errorf("data registers not restored (-want +got):\n%s", diff)
	}
	for i := 0; i < 7; i++ {
		if cpu.reg.A[i] != wantA[i] {
			t.Errorf("A%d = 0x%X, want 0x%X", i, cpu.reg.A[i], wantA[i])
		}
	}
}

// TestMOVEMPostIncrementSignExtendsWords confirms a word-sized load sign
// extends each value into the full 32-bit register, matching the rest of
// the interpreter's word-to-long promotion rule.
func TestMOVEMPostIncrementSignExtendsWords(t *testing.T) {
	bus := &testBus{}
	cpu := &CPU{bus: bus, variant: VariantMC68000}
	cpu.SetState(Registers{SR: 0x2700, SSP: 0x2000})
	cpu.reg.A[0] = 0x3000
	writeWord(bus, 0x3000, 0xFFFF)

	instr := &Instruction{
		Family:  FamMOVEM,
		Size:    Word,
		Reg:     1,
		Dst:     Operand{Mode: ModePostInc, Reg: 0},
		RegList: 0x0001, // d0 only
	}
	execMOVEM(cpu, instr)

	if cpu.reg.D[0] != 0xFFFFFFFF {
		t.Errorf("D0 = 0x%X, want 0xFFFFFFFF (sign-extended)", cpu.reg.D[0])
	}
	if cpu.reg.A[0] != 0x3002 {
		t.Errorf("A0 = 0x%X, want 0x3002", cpu.reg.A[0])
	}
}

// TestDecodeDisassembleRoundTripIsPure exercises the law from spec.md §8
// across a mixed instruction stream: disassembling a decoded Instruction
// never depends on anything but the Instruction itself, so decoding the
// same bytes at two different base addresses and disassembling each must
// produce identical text wherever the rendering doesn't encode an
// absolute target address.
func TestDecodeDisassembleRoundTripIsPure(t *testing.T) {
	streams := [][]byte{
		{0x24, 0x01},             // move.l d1,d2
		{0x7A, 0xFF},             // moveq #-1,d5
		{0x4E, 0x71},             // nop
		{0x43, 0xE8, 0x00, 0x04}, // lea 4(a0),a1
		{0x90, 0x41},             // sub.w d1,d0
	}

	for _, hex := range streams {
		i1 := Decode(newByteFetcher(hex, 0x1000))
		i2 := Decode(newByteFetcher(hex, 0x9000))

		if diff := cmp.Diff(i1.Family, i2.Family); diff != "" {
			t.Errorf("decode family differs across base addresses for %x:\n%s", hex, diff)
		}
		if i1.Length != i2.Length {
			t.Errorf("decode length differs across base addresses for %x: %d vs %d", hex, i1.Length, i2.Length)
		}
		if got1, got2 := Disassemble(i1), Disassemble(i2); got1 != got2 {
			t.Errorf("Disassemble(%x) not base-independent: %q vs %q", hex, got1, got2)
		}
	}
}
