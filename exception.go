package m68k

import "log"

// MC68000 exception vector numbers.
const (
	vecResetSSP           = 0
	vecResetPC            = 1
	vecBusError           = 2
	vecAddressError       = 3
	vecIllegalInstruction = 4
	vecDivideByZero       = 5
	vecCHK                = 6
	vecTRAPV              = 7
	vecPrivilegeViolation = 8
	vecTrace              = 9
	vecLineA              = 10
	vecLineF              = 11
	vecUninitialized      = 15
	vecSpuriousInterrupt  = 24
	vecAutoVector1        = 25
	vecTrap0              = 32 // TRAP #0 through TRAP #15 = vectors 32-47
)

// exception processes an exception: enters supervisor mode, pushes the
// return frame (PC + SR), reads the vector, and jumps to the handler.
func (c *CPU) exception(vector int) {
	c.trapped = true

	if c.intercept {
		if c.interceptVector < 0 {
			c.interceptVector = vector
		}
		return
	}

	// Log error exceptions (vectors 2-11) for diagnostics
	if vector >= vecBusError && vector <= vecLineF {
		log.Printf("[m68k] exception %d at PC=%06x SR=%04x", vector, c.reg.PC, c.reg.SR)
	}

	// Determine the PC to push. For group 1 fault exceptions (illegal
	// instruction, privilege violation, Line-A, Line-F), the 68000 pushes
	// the address of the faulting instruction. For all other exceptions
	// (group 2: TRAP, TRAPV, CHK, divide-by-zero; and interrupts/trace),
	// the 68000 pushes the next instruction address (current PC).
	pushPC := c.reg.PC
	switch vector {
	case vecIllegalInstruction, vecPrivilegeViolation, vecLineA, vecLineF:
		pushPC = c.prevPC
	}

	oldSR := c.reg.SR

	// Enter supervisor mode, clear trace
	if c.reg.SR&flagS == 0 {
		c.reg.USP = c.reg.A[7]
		c.reg.A[7] = c.reg.SSP
	}
	c.reg.SR = (c.reg.SR | flagS) & ^flagT

	// Push PC and old SR onto supervisor stack
	c.pushLong(pushPC)
	c.pushWord(oldSR)

	// Read handler address from vector table
	addr := c.readBus(Long, uint32(vector)*4)
	if addr == 0 {
		// Uninitialized vector: try the uninitialized-interrupt vector
		addr = c.readBus(Long, vecUninitialized*4)
		if addr == 0 {
			// Double fault on uninitialized vectors: halt
			c.halted = true
			return
		}
	}
	c.reg.PC = addr

	c.cycles += c.variant.ExceptionLatency()
}

// faultAccess describes the bus access that provoked an AddressError, for
// construction of the variant's extended stack frame (spec.md §4.5).
type faultAccess struct {
	addr       uint32 // access address that triggered the fault
	ir         uint16 // instruction register at the time of the fault
	write      bool   // true: the access was a write
	instrFetch bool   // true: the access was an instruction fetch
}

// faultException processes a BusError/AddressError: like exception, but
// pushes the variant's extended frame (short 7-word MC68000 frame, or the
// SCC68070's 8-word frame with the extra faulting-opcode word) per
// spec.md §4.5. A fault raised while already unwinding a fault halts the
// CPU (double bus fault) rather than recursing.
func (c *CPU) faultException(vector int, acc faultAccess) {
	c.trapped = true

	if c.intercept {
		if c.interceptVector < 0 {
			c.interceptVector = vector
		}
		return
	}

	if c.inFault {
		c.halted = true
		return
	}
	c.inFault = true
	defer func() { c.inFault = false }()

	log.Printf("[m68k] fault %d addr=%06x write=%v instrFetch=%v PC=%06x SR=%04x",
		vector, acc.addr, acc.write, acc.instrFetch, c.reg.PC, c.reg.SR)

	oldSR := c.reg.SR
	pushPC := c.reg.PC

	if c.reg.SR&flagS == 0 {
		c.reg.USP = c.reg.A[7]
		c.reg.A[7] = c.reg.SSP
	}
	c.reg.SR = (c.reg.SR | flagS) & ^flagT

	var fc uint8 = 1 // user data
	if oldSR&flagS != 0 {
		fc = 5 // supervisor data
	}
	if acc.instrFetch {
		fc++ // ...program, instead of data
	}

	ssw := uint16(fc & 7)
	if acc.instrFetch {
		ssw |= 1 << 3 // I/N: access was an instruction fetch
	}
	if !acc.write {
		ssw |= 1 << 4 // R/W: 1 = read
	}

	// Frame words, pushed so the special status word ends up on top of
	// stack (popped first): PC, SR, IR, access address, SSW, and for the
	// SCC68070's wider frame the faulting opcode word once more on top.
	c.pushLong(pushPC)
	c.pushWord(oldSR)
	c.pushWord(acc.ir)
	c.pushLong(acc.addr)
	c.pushWord(ssw)
	if c.variant.LongFrame() {
		c.pushWord(acc.ir)
	}

	addr := c.readBus(Long, uint32(vector)*4)
	if addr == 0 {
		addr = c.readBus(Long, vecUninitialized*4)
		if addr == 0 {
			c.halted = true
			return
		}
	}
	c.reg.PC = addr

	c.cycles += c.variant.ExceptionLatency()
}
