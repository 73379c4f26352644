package m68k

// AddrMode identifies one of the 68000's addressing modes in decoded
// form, as produced by decodeEA and carried inside an Instruction's Src/
// Dst Operand.
type AddrMode uint8

const (
	ModeDataReg   AddrMode = iota // Dn
	ModeAddrReg                   // An
	ModeIndirect                  // (An)
	ModePostInc                   // (An)+
	ModePreDec                    // -(An)
	ModeDisp                      // d16(An)
	ModeIndex                     // d8(An,Xn)
	ModeAbsW                      // abs.W
	ModeAbsL                      // abs.L
	ModePCDisp                    // d16(PC)
	ModePCIndex                   // d8(PC,Xn)
	ModeImmediate                 // #imm
)

// Operand is the decoded form of one effective-address field. All
// extension-word data decodeEA could extract statically (displacements,
// absolute addresses, immediates, brief extension words) is already
// here; what remains address-dependent (An/Dn register contents) is
// resolved at execution time by resolve, never by the decoder.
type Operand struct {
	Mode AddrMode
	Reg  uint8  // register number for register-based modes
	Disp int32  // d16(An) displacement; resolved address for ModePCDisp; base PC for ModePCIndex
	Ext  uint16 // brief extension word, for ModeIndex/ModePCIndex
	Addr uint32 // resolved address, for ModeAbsW/ModeAbsL
	Imm  uint32 // immediate value, for ModeImmediate
}

// eaKind mirrors the teacher's ea.mode categorization, used by the
// resolved ea's read/write/address methods below.
const (
	eaDataReg   = iota // Data register direct (Dn)
	eaAddrReg          // Address register direct (An)
	eaMemory           // All memory addressing modes
	eaImmediate        // Immediate (#imm)
)

// ea represents a resolved effective-address operand: an Operand plus
// whatever register side effects ((An)+/-(An)) and register-to-address
// lookups (An-relative modes) require live CPU state to complete.
type ea struct {
	mode uint8
	reg  uint8
	addr uint32
	imm  uint32
}

// read returns the value at this effective address.
func (e ea) read(c *CPU, sz Size) uint32 {
	switch e.mode {
	case eaDataReg:
		return c.reg.D[e.reg] & sz.Mask()
	case eaAddrReg:
		return c.reg.A[e.reg] & sz.Mask()
	case eaMemory:
		return c.readBus(sz, e.addr)
	case eaImmediate:
		return e.imm & sz.Mask()
	}
	return 0
}

// write stores a value at this effective address. Data register writes
// preserve upper bits for byte/word operations; address register writes
// always store the full 32-bit value.
func (e ea) write(c *CPU, sz Size, val uint32) {
	switch e.mode {
	case eaDataReg:
		mask := sz.Mask()
		c.reg.D[e.reg] = (c.reg.D[e.reg] & ^mask) | (val & mask)
	case eaAddrReg:
		c.reg.A[e.reg] = val
	case eaMemory:
		c.writeBus(sz, e.addr, val)
	}
}

// address returns the memory address (only valid for memory EAs).
func (e ea) address() uint32 { return e.addr }

// resolve turns a decoded Operand into a live ea, performing whatever
// register read or postincrement/predecrement side effect the
// addressing mode requires. Unlike the teacher's resolveEA, it never
// reads the instruction stream: every extension word decodeEA needed is
// already in o.
func (o Operand) resolve(c *CPU, sz Size) ea {
	switch o.Mode {
	case ModeDataReg:
		return ea{mode: eaDataReg, reg: o.Reg}
	case ModeAddrReg:
		return ea{mode: eaAddrReg, reg: o.Reg}
	case ModeIndirect:
		return ea{mode: eaMemory, addr: c.reg.A[o.Reg]}
	case ModePostInc:
		addr := c.reg.A[o.Reg]
		inc := uint32(sz)
		if o.Reg == 7 && sz == Byte {
			inc = 2 // SP always stays word-aligned
		}
		c.reg.A[o.Reg] += inc
		return ea{mode: eaMemory, addr: addr}
	case ModePreDec:
		dec := uint32(sz)
		if o.Reg == 7 && sz == Byte {
			dec = 2
		}
		c.reg.A[o.Reg] -= dec
		return ea{mode: eaMemory, addr: c.reg.A[o.Reg]}
	case ModeDisp:
		return ea{mode: eaMemory, addr: uint32(int32(c.reg.A[o.Reg]) + o.Disp)}
	case ModeIndex:
		return ea{mode: eaMemory, addr: c.calcIndex(c.reg.A[o.Reg], o.Ext)}
	case ModeAbsW, ModeAbsL:
		return ea{mode: eaMemory, addr: o.Addr}
	case ModePCDisp:
		return ea{mode: eaMemory, addr: uint32(o.Disp)}
	case ModePCIndex:
		return ea{mode: eaMemory, addr: c.calcIndex(uint32(o.Disp), o.Ext)}
	case ModeImmediate:
		return ea{mode: eaImmediate, imm: o.Imm}
	}
	c.exception(vecIllegalInstruction)
	return ea{}
}

// read/write/address are convenience wrappers around resolve, used
// throughout exec_*.go where an Operand is only touched once.
func (o Operand) read(c *CPU, sz Size) uint32     { return o.resolve(c, sz).read(c, sz) }
func (o Operand) write(c *CPU, sz Size, v uint32) { o.resolve(c, sz).write(c, sz, v) }
func (o Operand) address(c *CPU, sz Size) uint32  { return o.resolve(c, sz).address() }

// eaCycleKey returns the (mode, reg) pair EACycles indexes by, collapsing
// every non-mode-7 register to 0 since only mode 7's register selects a
// distinct sub-mode.
func (o Operand) eaCycleKey() (mode, reg uint8) {
	mode = uint8(o.Mode)
	if o.Mode == ModeAbsW || o.Mode == ModeAbsL || o.Mode == ModePCDisp || o.Mode == ModePCIndex || o.Mode == ModeImmediate {
		// These all decode through mode-7 register sub-modes; recover
		// the original 3-bit sub-mode from the AddrMode ordering.
		switch o.Mode {
		case ModeAbsW:
			reg = 0
		case ModeAbsL:
			reg = 1
		case ModePCDisp:
			reg = 2
		case ModePCIndex:
			reg = 3
		case ModeImmediate:
			reg = 4
		}
		mode = 7
	}
	return mode, reg
}

// calcIndex computes a base + d8(Xn) indexed address from a brief
// extension word. Extension word format: D/A | Reg(3) | W/L | 0(3) | Disp(8).
func (c *CPU) calcIndex(base uint32, ext uint16) uint32 {
	disp := int8(ext & 0xFF)
	xn := (ext >> 12) & 7

	var idx int32
	if ext&0x8000 != 0 {
		idx = int32(c.reg.A[xn])
	} else {
		idx = int32(c.reg.D[xn])
	}

	if ext&0x0800 == 0 {
		idx = int32(int16(idx))
	}

	return uint32(int32(base) + idx + int32(disp))
}
