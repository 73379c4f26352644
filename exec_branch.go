package m68k

func execBcc(c *CPU, instr *Instruction) {
	if c.testCondition(instr.CC) {
		c.reg.PC = uint32(instr.Disp)
		c.cycles += 10
	} else {
		c.cycles += 8
		if instr.Length == 4 {
			c.cycles += 4
		}
	}
}

func execBRA(c *CPU, instr *Instruction) {
	c.reg.PC = uint32(instr.Disp)
	c.cycles += 10
}

func execBSR(c *CPU, instr *Instruction) {
	c.pushLong(c.reg.PC)
	c.reg.PC = uint32(instr.Disp)
	c.cycles += 18
}

func execDBcc(c *CPU, instr *Instruction) {
	if c.testCondition(instr.CC) {
		c.cycles += 12
		return
	}

	dn := instr.Reg
	val := int16(c.reg.D[dn]&0xFFFF) - 1
	c.reg.D[dn] = (c.reg.D[dn] & 0xFFFF0000) | uint32(uint16(val))

	if val == -1 {
		c.cycles += 14
	} else {
		c.reg.PC = uint32(instr.Disp)
		c.cycles += 10
	}
}

func execJMP(c *CPU, instr *Instruction) {
	c.reg.PC = instr.Dst.address(c, Word)
	c.cycles += 8
}

func execJSR(c *CPU, instr *Instruction) {
	addr := instr.Dst.address(c, Word)
	c.pushLong(c.reg.PC)
	c.reg.PC = addr
	c.cycles += 16
}

func execRTS(c *CPU, instr *Instruction) {
	c.reg.PC = c.popLong()
	c.cycles += 16
}

func execRTE(c *CPU, instr *Instruction) {
	if !c.supervisor() {
		c.exception(vecPrivilegeViolation)
		return
	}

	sr := c.popWord()
	pc := c.popLong()
	c.setSR(sr)
	c.reg.PC = pc

	c.cycles += 20
}

func execRTR(c *CPU, instr *Instruction) {
	ccr := c.popWord()
	c.setCCR(uint8(ccr))
	c.reg.PC = c.popLong()

	c.cycles += 20
}

func execScc(c *CPU, instr *Instruction) {
	mode, _ := instr.Dst.eaCycleKey()
	if c.testCondition(instr.CC) {
		instr.Dst.write(c, Byte, 0xFF)
		c.cycles += 6
	} else {
		instr.Dst.write(c, Byte, 0x00)
		c.cycles += 4
	}
	if mode >= 2 {
		c.cycles += 4
	}
}
