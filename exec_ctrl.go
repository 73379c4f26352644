package m68k

func execNOP(c *CPU, instr *Instruction) {
	c.cycles += 4
}

func execSTOP(c *CPU, instr *Instruction) {
	if !c.supervisor() {
		c.exception(vecPrivilegeViolation)
		return
	}

	c.setSR(uint16(instr.Imm))
	c.stopped = true
	// The 68000 halts after STOP without advancing the prefetch pipeline;
	// rewind PC to the instruction start so a pending interrupt's
	// exception frame records the correct next-instruction address.
	c.reg.PC = c.prevPC
	c.cycles += 4
}

func execRESET(c *CPU, instr *Instruction) {
	if !c.supervisor() {
		c.exception(vecPrivilegeViolation)
		return
	}

	c.bus.Reset()
	c.cycles += 132
}

func execTRAP(c *CPU, instr *Instruction) {
	vector := int(instr.Imm) + vecTrap0
	c.exception(vector)
}

func execTRAPV(c *CPU, instr *Instruction) {
	if c.reg.SR&flagV != 0 {
		c.exception(vecTRAPV)
	} else {
		c.cycles += 4
	}
}

func execLINK(c *CPU, instr *Instruction) {
	an := instr.Reg
	c.pushLong(c.reg.A[an])
	c.reg.A[an] = c.reg.A[7]
	c.reg.A[7] = uint32(int32(c.reg.A[7]) + instr.Disp)

	c.cycles += 16
}

func execUNLK(c *CPU, instr *Instruction) {
	an := instr.Reg
	c.reg.A[7] = c.reg.A[an]
	c.reg.A[an] = c.popLong()

	c.cycles += 12
}

func execMOVEfromSR(c *CPU, instr *Instruction) {
	instr.Dst.write(c, Word, uint32(c.reg.SR))

	mode, reg := instr.Dst.eaCycleKey()
	if mode == 0 {
		c.cycles += 6
	} else {
		c.cycles += 8 + c.variant.EACycles(mode, reg, Word, true)
	}
}

func execMOVEtoCCR(c *CPU, instr *Instruction) {
	val := instr.Src.read(c, Word)
	c.setCCR(uint8(val))

	mode, reg := instr.Src.eaCycleKey()
	c.cycles += 12 + c.variant.EACycles(mode, reg, Word, false)
}

func execMOVEtoSR(c *CPU, instr *Instruction) {
	if !c.supervisor() {
		c.exception(vecPrivilegeViolation)
		return
	}

	val := instr.Src.read(c, Word)
	c.setSR(uint16(val))

	mode, reg := instr.Src.eaCycleKey()
	c.cycles += 12 + c.variant.EACycles(mode, reg, Word, false)
}

func execMOVEtoUSP(c *CPU, instr *Instruction) {
	if !c.supervisor() {
		c.exception(vecPrivilegeViolation)
		return
	}
	c.reg.USP = c.reg.A[instr.Reg]
	c.cycles += 4
}

func execMOVEfromUSP(c *CPU, instr *Instruction) {
	if !c.supervisor() {
		c.exception(vecPrivilegeViolation)
		return
	}
	c.reg.A[instr.Reg] = c.reg.USP
	c.cycles += 4
}

func execANDItoCCR(c *CPU, instr *Instruction) {
	c.setCCR(uint8(c.reg.SR) & uint8(instr.Imm))
	c.cycles += 20
}

func execANDItoSR(c *CPU, instr *Instruction) {
	if !c.supervisor() {
		c.exception(vecPrivilegeViolation)
		return
	}
	c.setSR(c.reg.SR & uint16(instr.Imm))
	c.cycles += 20
}

func execORItoCCR(c *CPU, instr *Instruction) {
	c.setCCR(uint8(c.reg.SR) | uint8(instr.Imm))
	c.cycles += 20
}

func execORItoSR(c *CPU, instr *Instruction) {
	if !c.supervisor() {
		c.exception(vecPrivilegeViolation)
		return
	}
	c.setSR(c.reg.SR | uint16(instr.Imm))
	c.cycles += 20
}

func execEORItoCCR(c *CPU, instr *Instruction) {
	c.setCCR(uint8(c.reg.SR) ^ uint8(instr.Imm))
	c.cycles += 20
}

func execEORItoSR(c *CPU, instr *Instruction) {
	if !c.supervisor() {
		c.exception(vecPrivilegeViolation)
		return
	}
	c.setSR(c.reg.SR ^ uint16(instr.Imm))
	c.cycles += 20
}
