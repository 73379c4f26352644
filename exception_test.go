package m68k

import "testing"

func newExceptionCPU(variant *Variant) (*CPU, *testBus) {
	bus := &testBus{}
	cpu := &CPU{bus: bus, variant: variant}
	cpu.SetState(Registers{PC: 0x1000, SR: 0x2000, SSP: 0x10000})
	writeWord(bus, vecAddressError*4, 0x0000)
	writeWord(bus, vecAddressError*4+2, 0x2000) // handler at 0x2000
	return cpu, bus
}

func TestFaultExceptionShortFrame(t *testing.T) {
	cpu, bus := newExceptionCPU(VariantMC68000)

	cpu.faultException(vecAddressError, faultAccess{addr: 0x1234, ir: 0xBEEF, write: false, instrFetch: true})

	if cpu.Halted() {
		t.Fatal("CPU halted unexpectedly")
	}
	if cpu.reg.PC != 0x2000 {
		t.Errorf("PC = 0x%X, want 0x2000", cpu.reg.PC)
	}

	wantSP := uint32(0x10000 - 14)
	if cpu.reg.A[7] != wantSP {
		t.Fatalf("A7 = 0x%X, want 0x%X (14-byte short frame)", cpu.reg.A[7], wantSP)
	}

	if got := bus.Read(Long, cpu.reg.A[7]+2); got != 0x1234 {
		t.Errorf("access address = 0x%X, want 0x1234", got)
	}
	if got := bus.Read(Word, cpu.reg.A[7]+6); got != 0xBEEF {
		t.Errorf("IR word = 0x%X, want 0xBEEF", got)
	}
	if got := bus.Read(Word, cpu.reg.A[7]+8); got != 0x2000 {
		t.Errorf("saved SR = 0x%X, want 0x2000", got)
	}
	if got := bus.Read(Long, cpu.reg.A[7]+10); got != 0x1000 {
		t.Errorf("saved PC = 0x%X, want 0x1000", got)
	}

	ssw := bus.Read(Word, cpu.reg.A[7])
	if ssw&0x1E != 0x1E {
		t.Errorf("SSW = 0x%X, want R/W and I/N and FC bits set (0x1E)", ssw)
	}

	if cpu.cycles != VariantMC68000.ExceptionLatency() {
		t.Errorf("cycles = %d, want %d", cpu.cycles, VariantMC68000.ExceptionLatency())
	}
}

func TestFaultExceptionLongFrameAddsOpcodeWord(t *testing.T) {
	cpu, bus := newExceptionCPU(VariantSCC68070)

	cpu.faultException(vecAddressError, faultAccess{addr: 0x1234, ir: 0xBEEF, write: true, instrFetch: false})

	wantSP := uint32(0x10000 - 16)
	if cpu.reg.A[7] != wantSP {
		t.Fatalf("A7 = 0x%X, want 0x%X (16-byte extended frame)", cpu.reg.A[7], wantSP)
	}

	// The SCC68070's extra opcode word sits on top of the frame, above the SSW.
	if got := bus.Read(Word, cpu.reg.A[7]); got != 0xBEEF {
		t.Errorf("opcode word on top of stack = 0x%X, want 0xBEEF", got)
	}
	if got := bus.Read(Word, cpu.reg.A[7]+2); got&0x10 != 0 {
		t.Errorf("SSW R/W bit = 0x%X, want clear (write access)", got)
	}

	if cpu.cycles != VariantSCC68070.ExceptionLatency() {
		t.Errorf("cycles = %d, want %d", cpu.cycles, VariantSCC68070.ExceptionLatency())
	}
}

func TestFaultExceptionDoubleFaultHalts(t *testing.T) {
	cpu, _ := newExceptionCPU(VariantMC68000)
	cpu.inFault = true

	cpu.faultException(vecAddressError, faultAccess{addr: 0x1234})

	if !cpu.Halted() {
		t.Error("expected double fault to halt the CPU")
	}
}

func TestFaultExceptionUninitializedVectorHalts(t *testing.T) {
	bus := &testBus{}
	cpu := &CPU{bus: bus, variant: VariantMC68000}
	cpu.SetState(Registers{PC: 0x1000, SR: 0x2000, SSP: 0x10000})
	// Neither the AddressError vector nor the uninitialized-interrupt
	// vector is populated: this is a double fault on vector fetch.

	cpu.faultException(vecAddressError, faultAccess{addr: 0x1234})

	if !cpu.Halted() {
		t.Error("expected an uninitialized vector table to halt the CPU")
	}
}

func TestExceptionEntersSupervisorAndClearsTrace(t *testing.T) {
	bus := &testBus{}
	cpu := &CPU{bus: bus, variant: VariantMC68000}
	cpu.SetState(Registers{PC: 0x1000, SR: 0x8700, USP: 0x5000, SSP: 0x10000}) // T=1, user mode
	writeWord(bus, vecIllegalInstruction*4, 0x0000)
	writeWord(bus, vecIllegalInstruction*4+2, 0x3000)

	cpu.exception(vecIllegalInstruction)

	if cpu.reg.SR&flagT != 0 {
		t.Error("Trace should be cleared after exception processing")
	}
	if cpu.reg.SR&flagS == 0 {
		t.Error("Supervisor bit should be set after exception processing")
	}
	if cpu.reg.USP != 0x5000 {
		t.Errorf("USP = 0x%X, want 0x5000 (saved user A7)", cpu.reg.USP)
	}
	if cpu.reg.PC != 0x3000 {
		t.Errorf("PC = 0x%X, want 0x3000", cpu.reg.PC)
	}
}
