// Package m68k implements a Motorola 68000 CPU emulator.
//
// The MC68000 is a 32-bit internal / 16-bit external CISC processor with:
//   - Eight 32-bit data registers (D0-D7)
//   - Eight 32-bit address registers (A0-A7), where A7 is the stack pointer
//   - A 32-bit program counter (24-bit external address bus)
//   - A 16-bit status register (system byte + condition code register)
//   - Dual stack pointers (USP for user mode, SSP for supervisor mode)
package m68k

import "log"

// Bus provides word-aligned memory access for the CPU.
// All addresses are 24-bit (masked by the CPU before calling).
type Bus interface {
	Read(op Size, addr uint32) uint32
	Write(op Size, addr uint32, val uint32)
	Reset()
}

// CycleBus is optionally implemented by a Bus that needs
// per-access cycle timestamps (e.g., for device timing, DMA).
type CycleBus interface {
	Bus
	ReadCycle(cycle uint64, op Size, addr uint32) uint32
	WriteCycle(cycle uint64, op Size, addr uint32, val uint32)
}

// Registers holds the programmer-visible state of the MC68000.
type Registers struct {
	D   [8]uint32 // Data registers
	A   [8]uint32 // Address registers (A7 is active stack pointer)
	PC  uint32    // Program counter
	SR  uint16    // Status register
	USP uint32    // User stack pointer (shadowed)
	SSP uint32    // Supervisor stack pointer (shadowed)
	IR  uint16    // Instruction register (first word of executing instruction)
}

// CPU is the MC68000/SCC68070 processor, parameterized over a Variant
// describing the timing and exception-frame differences between the two.
type CPU struct {
	reg      Registers
	bus      Bus
	cycleBus CycleBus // non-nil when bus implements CycleBus
	cycles   uint64
	variant  *Variant

	// The instruction register holds the first word of the currently
	// executing instruction, latched at fetch time.
	ir uint16

	stopped bool   // Set by STOP, cleared by interrupt
	halted  bool   // Set by double bus fault
	inFault bool   // Set while unwinding a BusError/AddressError frame
	prevPC  uint32 // PC of the previous instruction (for diagnostics)

	// trapped is set by exception()/faultException() whenever they run,
	// so Step can tell a normally-completed instruction (eligible to queue
	// a Trace exception of its own) apart from one that already vectored
	// into a handler this step.
	trapped bool

	// Interrupt state
	pendingIPL uint8  // Pending interrupt priority level (1-7, 0=none)
	pendingVec *uint8 // Pending interrupt vector (nil = auto-vector)

	// Cycle deficit from StepCycles when an instruction's cost exceeded the budget.
	deficit int

	// intercept, when true, makes exception()/faultException() record the
	// raised vector in interceptVector and return instead of pushing a
	// frame and jumping PC. Used by StepException to hand the vector back
	// to the caller unprocessed.
	intercept       bool
	interceptVector int
}

// New creates a CPU wired to the given bus and variant, and performs a
// hardware reset. The reset reads the initial SSP from address 0 and PC
// from address 4.
func New(bus Bus, variant *Variant) *CPU {
	c := &CPU{bus: bus, variant: variant}
	c.cycleBus, _ = bus.(CycleBus)
	c.Reset()
	return c
}

// Reset performs a hardware reset: loads SSP from address 0x000000 and
// PC from address 0x000004, enters supervisor mode with interrupts masked.
func (c *CPU) Reset() {
	c.cycleBus, _ = c.bus.(CycleBus)
	c.reg = Registers{SR: 0x2700}
	c.stopped = false
	c.halted = false
	c.cycles = 0
	c.deficit = 0
	c.pendingIPL = 0
	c.pendingVec = nil

	if c.cycleBus != nil {
		ssp := c.cycleBus.ReadCycle(c.cycles, Long, 0)
		c.reg.A[7] = ssp
		c.reg.SSP = ssp
		c.reg.PC = c.cycleBus.ReadCycle(c.cycles, Long, 4)
	} else {
		ssp := c.bus.Read(Long, 0)
		c.reg.A[7] = ssp
		c.reg.SSP = ssp
		c.reg.PC = c.bus.Read(Long, 4)
	}
}

// Halted returns true if the CPU is halted due to a double bus fault.
func (c *CPU) Halted() bool {
	return c.halted
}

// Step executes a single instruction and returns the number of cycles consumed.
// Returns 0 if the CPU is halted (double bus fault).
func (c *CPU) Step() int {
	if c.halted {
		return 0
	}

	before := c.cycles

	if c.stopped {
		c.cycles += 4
		c.checkInterrupt()
		return int(c.cycles - before)
	}

	c.checkInterrupt()

	// Address error: instruction fetch from odd PC
	if c.reg.PC&1 != 0 {
		c.faultException(vecAddressError, faultAccess{addr: c.reg.PC, ir: c.ir, instrFetch: true})
		return int(c.cycles - before)
	}

	wasTracing := c.reg.SR&flagT != 0

	c.prevPC = c.reg.PC
	instr := Decode(cpuFetcher{c})
	c.ir = instr.Opcode
	c.reg.IR = c.ir

	c.trapped = false
	exec(c, instr)

	// Post-instruction odd-PC check: catch branches/jumps to odd addresses.
	// On real hardware the prefetch pipeline would trigger this during the
	// instruction; we don't model prefetch so check here instead.
	if !c.halted && c.reg.PC&1 != 0 {
		c.faultException(vecAddressError, faultAccess{addr: c.reg.PC, ir: c.ir, instrFetch: true})
	}

	// Trace: if T was set when this instruction began and it ran to
	// completion without itself vectoring into a handler (illegal
	// instruction, privilege violation, a bus/address-error fault), queue
	// a Trace exception now that PC points just past it. Per spec.md §4.5.
	if wasTracing && !c.halted && !c.trapped {
		c.exception(vecTrace)
	}

	return int(c.cycles - before)
}

// StepCycles executes a single instruction within the given cycle budget.
// If a previous instruction's cost exceeded its budget, the deficit is paid
// down first without executing a new instruction. When a new instruction
// executes and its cost exceeds the budget, the excess is stored as a
// deficit to be charged on subsequent calls. Returns the number of cycles
// consumed from this call's budget.
func (c *CPU) StepCycles(budget int) int {
	if c.halted {
		return 0
	}

	// Pay down deficit from a previous instruction that exceeded its budget.
	if c.deficit > 0 {
		if budget >= c.deficit {
			n := c.deficit
			c.deficit = 0
			return n
		}
		c.deficit -= budget
		return budget
	}

	cost := c.Step()

	if cost <= budget {
		return cost
	}

	c.deficit = cost - budget
	return budget
}

// Deficit returns the remaining cycle deficit from a previous StepCycles
// call where the instruction cost exceeded the budget.
func (c *CPU) Deficit() int {
	return c.deficit
}

// StepException executes a single instruction like Step, but if the
// instruction (or the Trace/odd-PC check that follows it) would raise an
// exception, that processing is skipped: no frame is pushed, PC is left
// where the instruction's own logic stopped, and the vector is returned
// instead so the caller can inspect or defer it. Returns vector -1 if no
// exception was raised. The caller may process a returned vector by
// calling Exception.
func (c *CPU) StepException() (cycles int, vector int) {
	c.intercept = true
	c.interceptVector = -1
	cycles = c.Step()
	c.intercept = false
	return cycles, c.interceptVector
}

// Exception processes the given vector exactly as an internally raised
// exception would: enters supervisor mode, pushes the short return frame,
// and jumps to the installed handler. Intended for use with StepException,
// whose whole purpose is to hand back a raised vector without processing
// it.
func (c *CPU) Exception(vector int) {
	c.exception(vector)
}

// RunCycles runs whole instructions until at least budget cycles have
// elapsed, or the CPU halts or enters the STOP-halted-waiting state,
// returning the total cycles consumed. Any surplus past budget is
// discarded rather than carried into the next call — unlike StepCycles,
// which is a different, single-instruction primitive (see its doc
// comment).
func (c *CPU) RunCycles(budget int) int {
	total := 0
	for total < budget {
		if c.halted || c.stopped {
			break
		}
		total += c.Step()
	}
	return total
}

// RunUntilExceptionOrStop runs instructions until one raises an exception
// or a STOP instruction puts the CPU into its halted-waiting state,
// returning the total cycles consumed and, if an exception was raised,
// its vector (-1 otherwise). The raised exception, if any, is left
// unprocessed exactly as StepException leaves it.
func (c *CPU) RunUntilExceptionOrStop() (cycles uint64, vector int, stopped bool) {
	vector = -1
	for {
		if c.halted {
			return
		}
		if c.stopped {
			stopped = true
			return
		}
		n, v := c.StepException()
		cycles += uint64(n)
		if v >= 0 {
			vector = v
			return
		}
	}
}

// QueueException enqueues an externally raised exception vector (for
// example an interrupt autovector 25-31) to be delivered at the next
// instruction boundary. Vectors in the autovector range are mapped to
// their interrupt level (25→1 ... 31→7) and go through the same SR.I mask
// RequestInterrupt honors, with level 7 bypassing the mask; any other
// vector is queued at level 1.
func (c *CPU) QueueException(vector uint8) {
	level := uint8(1)
	if vector >= vecAutoVector1 && vector <= vecAutoVector1+6 {
		level = vector - vecAutoVector1 + 1
	}
	v := vector
	c.RequestInterrupt(level, &v)
}

// PeekNextWord returns the word at the current PC without advancing it.
func (c *CPU) PeekNextWord() uint16 {
	return uint16(c.readBus(Word, c.reg.PC))
}

// GetNextWord reads the word at the current PC and advances PC by 2.
func (c *CPU) GetNextWord() uint16 {
	return c.fetchPC()
}

// GetNextLong reads the long at the current PC and advances PC by 4.
func (c *CPU) GetNextLong() uint32 {
	return c.fetchPCLong()
}

// Cycles returns the total cycle count since the last reset.
func (c *CPU) Cycles() uint64 {
	return c.cycles
}

// AddCycles advances the cycle counter by n without executing any
// instruction. Used to account for external bus-hold periods such as
// DMA seizing the 68K bus.
func (c *CPU) AddCycles(n uint64) {
	c.cycles += n
}

// Registers returns a snapshot of the current register state.
func (c *CPU) Registers() Registers {
	return c.reg
}

// RequestInterrupt queues an interrupt at the given priority level (1-7).
// Pass nil for vector to use auto-vectoring.
// A higher level replaces a lower pending level.
func (c *CPU) RequestInterrupt(level uint8, vector *uint8) {
	if level > c.pendingIPL {
		c.pendingIPL = level
		c.pendingVec = vector
	}
}

// readBus reads from the bus with 24-bit address masking.
// Word and long accesses to odd addresses halt the CPU (address error).
func (c *CPU) readBus(sz Size, addr uint32) uint32 {
	if c.halted {
		return 0
	}
	if sz != Byte && addr&1 != 0 {
		log.Printf("[m68k] address error: read %s from odd addr=%06x PC=%06x prevPC=%06x IR=%04x",
			sz, addr&0xFFFFFF, c.reg.PC, c.prevPC, c.ir)
		c.halted = true
		return 0
	}
	addr &= 0xFFFFFF
	if c.cycleBus != nil {
		return c.cycleBus.ReadCycle(c.cycles, sz, addr)
	}
	return c.bus.Read(sz, addr)
}

// writeBus writes to the bus with 24-bit address masking.
// Word and long accesses to odd addresses halt the CPU (address error).
func (c *CPU) writeBus(sz Size, addr uint32, val uint32) {
	if c.halted {
		return
	}
	if sz != Byte && addr&1 != 0 {
		log.Printf("[m68k] address error: write %s to odd addr=%06x val=%08x PC=%06x prevPC=%06x IR=%04x",
			sz, addr&0xFFFFFF, val&sz.Mask(), c.reg.PC, c.prevPC, c.ir)
		c.halted = true
		return
	}
	addr &= 0xFFFFFF
	val &= sz.Mask()
	if c.cycleBus != nil {
		c.cycleBus.WriteCycle(c.cycles, sz, addr, val)
		return
	}
	c.bus.Write(sz, addr, val)
}

// fetchPC reads a 16-bit word at the current PC and advances PC by 2.
func (c *CPU) fetchPC() uint16 {
	val := c.readBus(Word, c.reg.PC)
	c.reg.PC += 2
	return uint16(val)
}

// fetchPCLong reads a 32-bit long at the current PC and advances PC by 4.
func (c *CPU) fetchPCLong() uint32 {
	hi := c.fetchPC()
	lo := c.fetchPC()
	return uint32(hi)<<16 | uint32(lo)
}

// pushWord pushes a 16-bit word onto the active stack (A7).
func (c *CPU) pushWord(val uint16) {
	c.reg.A[7] -= 2
	c.writeBus(Word, c.reg.A[7], uint32(val))
}

// pushLong pushes a 32-bit long onto the active stack (A7).
func (c *CPU) pushLong(val uint32) {
	c.reg.A[7] -= 4
	c.writeBus(Long, c.reg.A[7], val)
}

// popWord pops a 16-bit word from the active stack (A7).
func (c *CPU) popWord() uint16 {
	val := c.readBus(Word, c.reg.A[7])
	c.reg.A[7] += 2
	return uint16(val)
}

// popLong pops a 32-bit long from the active stack (A7).
func (c *CPU) popLong() uint32 {
	val := c.readBus(Long, c.reg.A[7])
	c.reg.A[7] += 4
	return val
}

// supervisor returns true if the CPU is in supervisor mode.
func (c *CPU) supervisor() bool {
	return c.reg.SR&flagS != 0
}

// setSR sets the status register, handling stack pointer swaps
// when transitioning between supervisor and user mode.
func (c *CPU) setSR(sr uint16) {
	oldS := c.reg.SR & flagS
	newS := sr & flagS

	if oldS != 0 && newS == 0 {
		// Leaving supervisor mode: save SSP, restore USP
		c.reg.SSP = c.reg.A[7]
		c.reg.A[7] = c.reg.USP
	} else if oldS == 0 && newS != 0 {
		// Entering supervisor mode: save USP, restore SSP
		c.reg.USP = c.reg.A[7]
		c.reg.A[7] = c.reg.SSP
	}

	// Mask to valid 68000 SR bits: T__S__III___XNZVC (0xA71F)
	c.reg.SR = sr & 0xA71F
}

// setCCR sets only the condition code register (low byte of SR).
// Only bits 0-4 (XNZVC) are valid on the 68000; bits 5-7 are always 0.
func (c *CPU) setCCR(ccr uint8) {
	c.reg.SR = (c.reg.SR & 0xFF00) | uint16(ccr&0x1F)
}

// SetState sets all programmer-visible registers directly without
// performing a hardware reset. This is intended for testing, where
// exact CPU state must be established before executing an instruction.
func (c *CPU) SetState(regs Registers) {
	c.cycleBus, _ = c.bus.(CycleBus)
	c.reg.D = regs.D
	c.reg.SR = regs.SR
	c.reg.USP = regs.USP
	c.reg.SSP = regs.SSP
	c.reg.PC = regs.PC
	c.stopped = false
	c.halted = false
	c.cycles = 0
	c.deficit = 0
	c.pendingIPL = 0
	c.pendingVec = nil

	// A7 is the active stack pointer: SSP in supervisor mode, USP in user mode
	for i := 0; i < 7; i++ {
		c.reg.A[i] = regs.A[i]
	}
	if regs.SR&flagS != 0 {
		c.reg.A[7] = regs.SSP
	} else {
		c.reg.A[7] = regs.USP
	}
}
