package m68k

// bitMask resolves a raw bit number to the mask for this operand's size
// (31 for a Dn destination, 7 for a memory byte destination).
func bitMask(dst Operand, bitNum uint32) uint32 {
	if dst.Mode == ModeDataReg {
		return uint32(1) << (bitNum & 31)
	}
	return uint32(1) << (bitNum & 7)
}

func execBTSTdyn(c *CPU, instr *Instruction) {
	bitNum := c.reg.D[instr.Reg]
	mask := bitMask(instr.Dst, bitNum)
	val := instr.Dst.read(c, instr.Size)
	if val&mask == 0 {
		c.reg.SR |= flagZ
	} else {
		c.reg.SR &^= flagZ
	}
	if instr.Dst.Mode == ModeDataReg {
		c.cycles += 6
	} else {
		c.cycles += 4
	}
}

func execBTSTstatic(c *CPU, instr *Instruction) {
	mask := bitMask(instr.Dst, instr.Imm)
	val := instr.Dst.read(c, instr.Size)
	if val&mask == 0 {
		c.reg.SR |= flagZ
	} else {
		c.reg.SR &^= flagZ
	}
	if instr.Dst.Mode == ModeDataReg {
		c.cycles += 10
	} else {
		c.cycles += 8
	}
}

func execBCHGdyn(c *CPU, instr *Instruction) {
	mask := bitMask(instr.Dst, c.reg.D[instr.Reg])
	val := instr.Dst.read(c, instr.Size)
	if val&mask == 0 {
		c.reg.SR |= flagZ
	} else {
		c.reg.SR &^= flagZ
	}
	instr.Dst.write(c, instr.Size, val^mask)
	c.cycles += 8
}

func execBCHGstatic(c *CPU, instr *Instruction) {
	mask := bitMask(instr.Dst, instr.Imm)
	val := instr.Dst.read(c, instr.Size)
	if val&mask == 0 {
		c.reg.SR |= flagZ
	} else {
		c.reg.SR &^= flagZ
	}
	instr.Dst.write(c, instr.Size, val^mask)
	if instr.Dst.Mode == ModeDataReg {
		c.cycles += 12
	} else {
		c.cycles += 12
	}
}

func execBCLRdyn(c *CPU, instr *Instruction) {
	mask := bitMask(instr.Dst, c.reg.D[instr.Reg])
	val := instr.Dst.read(c, instr.Size)
	if val&mask == 0 {
		c.reg.SR |= flagZ
	} else {
		c.reg.SR &^= flagZ
	}
	instr.Dst.write(c, instr.Size, val&^mask)
	if instr.Dst.Mode == ModeDataReg {
		c.cycles += 10
	} else {
		c.cycles += 8
	}
}

func execBCLRstatic(c *CPU, instr *Instruction) {
	mask := bitMask(instr.Dst, instr.Imm)
	val := instr.Dst.read(c, instr.Size)
	if val&mask == 0 {
		c.reg.SR |= flagZ
	} else {
		c.reg.SR &^= flagZ
	}
	instr.Dst.write(c, instr.Size, val&^mask)
	if instr.Dst.Mode == ModeDataReg {
		c.cycles += 14
	} else {
		c.cycles += 12
	}
}

func execBSETdyn(c *CPU, instr *Instruction) {
	mask := bitMask(instr.Dst, c.reg.D[instr.Reg])
	val := instr.Dst.read(c, instr.Size)
	if val&mask == 0 {
		c.reg.SR |= flagZ
	} else {
		c.reg.SR &^= flagZ
	}
	instr.Dst.write(c, instr.Size, val|mask)
	c.cycles += 8
}

func execBSETstatic(c *CPU, instr *Instruction) {
	mask := bitMask(instr.Dst, instr.Imm)
	val := instr.Dst.read(c, instr.Size)
	if val&mask == 0 {
		c.reg.SR |= flagZ
	} else {
		c.reg.SR &^= flagZ
	}
	instr.Dst.write(c, instr.Size, val|mask)
	c.cycles += 12
}
