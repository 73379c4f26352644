package m68k

import "testing"

// TestTraceAfterRTS covers spec.md §8 concrete scenario 6: with T=1,
// executing RTS completes normally and then queues a Trace exception with
// the stacked PC pointing at the address after the RTS.
func TestTraceAfterRTS(t *testing.T) {
	bus := &testBus{}
	cpu := &CPU{bus: bus, variant: VariantMC68000}

	// A return address sitting on the stack for RTS to pop.
	bus.Write(Long, 0x2000, 0x00003000)

	writeWord(bus, vecTrace*4, 0x0000)
	writeWord(bus, vecTrace*4+2, 0x5000) // trace handler

	// RTS at 0x1000.
	writeWord(bus, 0x1000, 0x4E75)

	cpu.SetState(Registers{PC: 0x1000, SR: 0x8700, SSP: 0x10000}) // T=1, supervisor
	cpu.reg.A[7] = 0x2000

	cpu.Step()

	if cpu.reg.PC != 0x5000 {
		t.Fatalf("PC = 0x%X, want 0x5000 (trace handler)", cpu.reg.PC)
	}
	if cpu.reg.SR&flagT != 0 {
		t.Error("Trace should be cleared after the trace exception is taken")
	}

	// Frame layout: [A7] = old SR, [A7+2] = stacked PC (short frame).
	if got := bus.Read(Long, cpu.reg.A[7]+2); got != 0x3000 {
		t.Errorf("stacked PC = 0x%X, want 0x3000 (address after RTS)", got)
	}
}

// TestPrivilegedStopDoesNotAlsoTrace covers spec.md §8 concrete scenario
// 5: a privilege violation suppresses the post-instruction Trace check
// even when T=1, because the instruction never ran to completion.
func TestPrivilegedStopDoesNotAlsoTrace(t *testing.T) {
	bus := &testBus{}
	cpu := &CPU{bus: bus, variant: VariantMC68000}

	writeWord(bus, vecPrivilegeViolation*4, 0x0000)
	writeWord(bus, vecPrivilegeViolation*4+2, 0x4000)
	writeWord(bus, vecTrace*4, 0x0000)
	writeWord(bus, vecTrace*4+2, 0x5000)

	writeWord(bus, 0x1000, 0x4E72) // STOP
	writeWord(bus, 0x1002, 0x2000) // immediate SR operand

	cpu.SetState(Registers{PC: 0x1000, SR: 0x8000, USP: 0x9000, SSP: 0x10000}) // T=1, user mode

	cpu.Step()

	if cpu.reg.PC != 0x4000 {
		t.Fatalf("PC = 0x%X, want 0x4000 (privilege violation handler, not trace)", cpu.reg.PC)
	}
}
