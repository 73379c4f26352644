package m68k

func execADD(c *CPU, instr *Instruction) {
	sz := instr.Size
	s := instr.Src.read(c, sz)
	d := c.reg.D[instr.Reg] & sz.Mask()
	result := s + d
	c.setFlagsAdd(s, d, result, sz)

	mask := sz.Mask()
	c.reg.D[instr.Reg] = (c.reg.D[instr.Reg] & ^mask) | (result & mask)

	mode, reg := instr.Src.eaCycleKey()
	fetch := c.variant.EACycles(mode, reg, sz, false)
	if sz != Long {
		c.cycles += 4 + fetch
	} else if mode >= 2 && !(mode == 7 && reg == 4) {
		c.cycles += 6 + fetch
	} else {
		c.cycles += 8 + fetch
	}
}

func execADDtoEA(c *CPU, instr *Instruction) {
	sz := instr.Size
	d := instr.Dst.read(c, sz)
	s := c.reg.D[instr.Reg] & sz.Mask()
	result := s + d
	c.setFlagsAdd(s, d, result, sz)
	instr.Dst.write(c, sz, result)

	mode, reg := instr.Dst.eaCycleKey()
	fetch := c.variant.EACycles(mode, reg, sz, true)
	if sz == Long {
		c.cycles += 12 + fetch
	} else {
		c.cycles += 8 + fetch
	}
}

func execADDA(c *CPU, instr *Instruction) {
	sz := instr.Size
	val := instr.Src.read(c, sz)
	if sz == Word {
		val = uint32(int32(int16(val)))
	}
	c.reg.A[instr.Reg] += val

	mode, reg := instr.Src.eaCycleKey()
	fetch := c.variant.EACycles(mode, reg, sz, false)
	if sz == Long && mode >= 2 && !(mode == 7 && reg == 4) {
		c.cycles += 6 + fetch
	} else {
		c.cycles += 8 + fetch
	}
}

func execADDI(c *CPU, instr *Instruction) {
	sz := instr.Size
	imm := instr.Imm
	d := instr.Dst.read(c, sz)
	result := imm + d
	c.setFlagsAdd(imm, d, result, sz)
	instr.Dst.write(c, sz, result)

	mode, reg := instr.Dst.eaCycleKey()
	if mode == 0 {
		if sz == Long {
			c.cycles += 16
		} else {
			c.cycles += 8
		}
	} else {
		fetch := c.variant.EACycles(mode, reg, sz, true)
		if sz == Long {
			c.cycles += 20 + fetch
		} else {
			c.cycles += 12 + fetch
		}
	}
}

func execADDQ(c *CPU, instr *Instruction) {
	sz := instr.Size
	data := instr.Imm
	mode, reg := instr.Dst.eaCycleKey()

	if instr.Dst.Mode == ModeAddrReg {
		c.reg.A[instr.Dst.Reg] += data
		c.cycles += 8
		return
	}

	d := instr.Dst.read(c, sz)
	result := data + d
	c.setFlagsAdd(data, d, result, sz)
	instr.Dst.write(c, sz, result)

	if mode == 0 {
		if sz == Long {
			c.cycles += 8
		} else {
			c.cycles += 4
		}
	} else {
		fetch := c.variant.EACycles(mode, reg, sz, true)
		if sz == Long {
			c.cycles += 12 + fetch
		} else {
			c.cycles += 8 + fetch
		}
	}
}

func execADDX(c *CPU, instr *Instruction) {
	sz := instr.Size
	rx, ry := instr.Reg, instr.Reg2

	var s, d uint32
	if instr.Src.Mode == ModePreDec {
		s = instr.Src.read(c, sz)
		d = instr.Dst.read(c, sz)
	} else {
		s = c.reg.D[ry] & sz.Mask()
		d = c.reg.D[rx] & sz.Mask()
	}

	x := uint32(0)
	if c.reg.SR&flagX != 0 {
		x = 1
	}
	result := d + s + x

	oldZ := c.reg.SR & flagZ
	c.setFlagsAdd(s, d, result, sz)
	if result&sz.Mask() == 0 {
		c.reg.SR = (c.reg.SR &^ flagZ) | oldZ
	}

	if instr.Src.Mode == ModePreDec {
		instr.Dst.write(c, sz, result)
		if sz == Long {
			c.cycles += 30
		} else {
			c.cycles += 18
		}
		return
	}

	mask := sz.Mask()
	c.reg.D[rx] = (c.reg.D[rx] & ^mask) | (result & mask)
	c.cycles += 4
	if sz == Long {
		c.cycles += 4
	}
}

// --- SUB ---

func execSUB(c *CPU, instr *Instruction) {
	sz := instr.Size
	s := instr.Src.read(c, sz)
	d := c.reg.D[instr.Reg] & sz.Mask()
	result := d - s
	c.setFlagsSub(s, d, result, sz)

	mask := sz.Mask()
	c.reg.D[instr.Reg] = (c.reg.D[instr.Reg] & ^mask) | (result & mask)

	mode, reg := instr.Src.eaCycleKey()
	fetch := c.variant.EACycles(mode, reg, sz, false)
	if sz != Long {
		c.cycles += 4 + fetch
	} else if mode >= 2 && !(mode == 7 && reg == 4) {
		c.cycles += 6 + fetch
	} else {
		c.cycles += 8 + fetch
	}
}

func execSUBtoEA(c *CPU, instr *Instruction) {
	sz := instr.Size
	d := instr.Dst.read(c, sz)
	s := c.reg.D[instr.Reg] & sz.Mask()
	result := d - s
	c.setFlagsSub(s, d, result, sz)
	instr.Dst.write(c, sz, result)

	mode, reg := instr.Dst.eaCycleKey()
	fetch := c.variant.EACycles(mode, reg, sz, true)
	if sz == Long {
		c.cycles += 12 + fetch
	} else {
		c.cycles += 8 + fetch
	}
}

func execSUBA(c *CPU, instr *Instruction) {
	sz := instr.Size
	val := instr.Src.read(c, sz)
	if sz == Word {
		val = uint32(int32(int16(val)))
	}
	c.reg.A[instr.Reg] -= val

	mode, reg := instr.Src.eaCycleKey()
	fetch := c.variant.EACycles(mode, reg, sz, false)
	if sz == Long && mode >= 2 && !(mode == 7 && reg == 4) {
		c.cycles += 6 + fetch
	} else {
		c.cycles += 8 + fetch
	}
}

func execSUBI(c *CPU, instr *Instruction) {
	sz := instr.Size
	imm := instr.Imm
	d := instr.Dst.read(c, sz)
	result := d - imm
	c.setFlagsSub(imm, d, result, sz)
	instr.Dst.write(c, sz, result)

	mode, reg := instr.Dst.eaCycleKey()
	if mode == 0 {
		if sz == Long {
			c.cycles += 16
		} else {
			c.cycles += 8
		}
	} else {
		fetch := c.variant.EACycles(mode, reg, sz, true)
		if sz == Long {
			c.cycles += 20 + fetch
		} else {
			c.cycles += 12 + fetch
		}
	}
}

func execSUBQ(c *CPU, instr *Instruction) {
	sz := instr.Size
	data := instr.Imm
	mode, reg := instr.Dst.eaCycleKey()

	if instr.Dst.Mode == ModeAddrReg {
		c.reg.A[instr.Dst.Reg] -= data
		c.cycles += 8
		return
	}

	d := instr.Dst.read(c, sz)
	result := d - data
	c.setFlagsSub(data, d, result, sz)
	instr.Dst.write(c, sz, result)

	if mode == 0 {
		if sz == Long {
			c.cycles += 8
		} else {
			c.cycles += 4
		}
	} else {
		fetch := c.variant.EACycles(mode, reg, sz, true)
		if sz == Long {
			c.cycles += 12 + fetch
		} else {
			c.cycles += 8 + fetch
		}
	}
}

func execSUBX(c *CPU, instr *Instruction) {
	sz := instr.Size
	rx, ry := instr.Reg, instr.Reg2

	var s, d uint32
	if instr.Src.Mode == ModePreDec {
		s = instr.Src.read(c, sz)
		d = instr.Dst.read(c, sz)
	} else {
		s = c.reg.D[ry] & sz.Mask()
		d = c.reg.D[rx] & sz.Mask()
	}

	x := uint32(0)
	if c.reg.SR&flagX != 0 {
		x = 1
	}
	result := d - s - x

	oldZ := c.reg.SR & flagZ
	c.setFlagsSub(s, d, result, sz)
	if result&sz.Mask() == 0 {
		c.reg.SR = (c.reg.SR &^ flagZ) | oldZ
	}

	if instr.Src.Mode == ModePreDec {
		instr.Dst.write(c, sz, result)
		if sz == Long {
			c.cycles += 30
		} else {
			c.cycles += 18
		}
		return
	}

	mask := sz.Mask()
	c.reg.D[rx] = (c.reg.D[rx] & ^mask) | (result & mask)
	c.cycles += 4
	if sz == Long {
		c.cycles += 4
	}
}

// --- CMP family ---

func execCMP(c *CPU, instr *Instruction) {
	sz := instr.Size
	s := instr.Src.read(c, sz)
	d := c.reg.D[instr.Reg] & sz.Mask()
	result := d - s
	c.setFlagsCmp(s, d, result, sz)

	mode, reg := instr.Src.eaCycleKey()
	fetch := c.variant.EACycles(mode, reg, sz, false)
	if sz == Long {
		c.cycles += 6 + fetch
	} else {
		c.cycles += 4 + fetch
	}
}

func execCMPA(c *CPU, instr *Instruction) {
	sz := instr.Size
	val := instr.Src.read(c, sz)
	if sz == Word {
		val = uint32(int32(int16(val)))
	}
	d := c.reg.A[instr.Reg]
	result := d - val
	c.setFlagsCmp(val, d, result, Long)

	mode, reg := instr.Src.eaCycleKey()
	c.cycles += 6 + c.variant.EACycles(mode, reg, sz, false)
}

func execCMPI(c *CPU, instr *Instruction) {
	sz := instr.Size
	imm := instr.Imm
	d := instr.Dst.read(c, sz)
	result := d - imm
	c.setFlagsCmp(imm, d, result, sz)

	mode, reg := instr.Dst.eaCycleKey()
	if mode == 0 {
		if sz == Long {
			c.cycles += 14
		} else {
			c.cycles += 8
		}
	} else {
		fetch := c.variant.EACycles(mode, reg, sz, false)
		if sz == Long {
			c.cycles += 12 + fetch
		} else {
			c.cycles += 8 + fetch
		}
	}
}

func execCMPM(c *CPU, instr *Instruction) {
	sz := instr.Size
	s := instr.Src.read(c, sz)
	d := instr.Dst.read(c, sz)
	result := d - s
	c.setFlagsCmp(s, d, result, sz)

	if sz == Long {
		c.cycles += 20
	} else {
		c.cycles += 12
	}
}

// --- MULU/MULS/DIVU/DIVS ---

func execMULU(c *CPU, instr *Instruction) {
	s := instr.Src.read(c, Word)
	d := c.reg.D[instr.Reg] & 0xFFFF
	result := s * d
	c.reg.D[instr.Reg] = result
	c.setFlagsLogical(result, Long)

	mode, reg := instr.Src.eaCycleKey()
	c.cycles += 70 + c.variant.EACycles(mode, reg, Word, false)
}

func execMULS(c *CPU, instr *Instruction) {
	s := int32(int16(instr.Src.read(c, Word)))
	d := int32(int16(c.reg.D[instr.Reg] & 0xFFFF))
	result := uint32(s * d)
	c.reg.D[instr.Reg] = result
	c.setFlagsLogical(result, Long)

	mode, reg := instr.Src.eaCycleKey()
	c.cycles += 70 + c.variant.EACycles(mode, reg, Word, false)
}

func execDIVU(c *CPU, instr *Instruction) {
	divisor := instr.Src.read(c, Word)
	if divisor == 0 {
		c.exception(vecDivideByZero)
		return
	}

	dividend := c.reg.D[instr.Reg]
	quotient := dividend / divisor
	remainder := dividend % divisor

	if quotient > 0xFFFF {
		c.reg.SR |= flagV
		c.reg.SR &^= flagC
	} else {
		c.reg.D[instr.Reg] = (remainder&0xFFFF)<<16 | (quotient & 0xFFFF)
		c.setFlagsLogical(quotient, Word)
	}

	mode, reg := instr.Src.eaCycleKey()
	c.cycles += 140 + c.variant.EACycles(mode, reg, Word, false)
}

func execDIVS(c *CPU, instr *Instruction) {
	divisor := int32(int16(instr.Src.read(c, Word)))
	if divisor == 0 {
		c.exception(vecDivideByZero)
		return
	}

	dividend := int32(c.reg.D[instr.Reg])
	quotient := dividend / divisor
	remainder := dividend % divisor

	if quotient > 32767 || quotient < -32768 {
		c.reg.SR |= flagV | flagN
		c.reg.SR &^= flagC | flagZ
	} else {
		c.reg.D[instr.Reg] = uint32(remainder&0xFFFF)<<16 | uint32(quotient)&0xFFFF
		c.setFlagsLogical(uint32(quotient), Word)
	}

	mode, reg := instr.Src.eaCycleKey()
	c.cycles += 158 + c.variant.EACycles(mode, reg, Word, false)
}

// --- NEG/NEGX/CLR/EXT/CHK ---

func execNEG(c *CPU, instr *Instruction) {
	sz := instr.Size
	d := instr.Dst.read(c, sz)
	result := uint32(0) - d
	c.setFlagsSub(d, 0, result, sz)
	instr.Dst.write(c, sz, result)

	mode, reg := instr.Dst.eaCycleKey()
	if mode == 0 {
		if sz == Long {
			c.cycles += 6
		} else {
			c.cycles += 4
		}
	} else {
		fetch := c.variant.EACycles(mode, reg, sz, true)
		if sz == Long {
			c.cycles += 12 + fetch
		} else {
			c.cycles += 8 + fetch
		}
	}
}

func execNEGX(c *CPU, instr *Instruction) {
	sz := instr.Size
	d := instr.Dst.read(c, sz)
	x := uint32(0)
	if c.reg.SR&flagX != 0 {
		x = 1
	}
	result := uint32(0) - d - x
	oldZ := c.reg.SR & flagZ
	c.setFlagsSub(d, 0, result, sz)
	if result&sz.Mask() == 0 {
		c.reg.SR = (c.reg.SR &^ flagZ) | oldZ
	}
	instr.Dst.write(c, sz, result)

	mode, reg := instr.Dst.eaCycleKey()
	if mode == 0 {
		if sz == Long {
			c.cycles += 6
		} else {
			c.cycles += 4
		}
	} else {
		fetch := c.variant.EACycles(mode, reg, sz, true)
		if sz == Long {
			c.cycles += 12 + fetch
		} else {
			c.cycles += 8 + fetch
		}
	}
}

func execCLR(c *CPU, instr *Instruction) {
	sz := instr.Size
	instr.Dst.write(c, sz, 0)

	c.reg.SR &^= flagN | flagV | flagC
	c.reg.SR |= flagZ

	mode, reg := instr.Dst.eaCycleKey()
	if mode == 0 {
		if sz == Long {
			c.cycles += 6
		} else {
			c.cycles += 4
		}
	} else {
		fetch := c.variant.EACycles(mode, reg, sz, true)
		if sz == Long {
			c.cycles += 12 + fetch
		} else {
			c.cycles += 8 + fetch
		}
	}
}

func execEXT(c *CPU, instr *Instruction) {
	dn := instr.Reg
	if instr.Size == Word {
		val := uint32(int16(int8(c.reg.D[dn])))
		c.reg.D[dn] = (c.reg.D[dn] & 0xFFFF0000) | (val & 0xFFFF)
		c.setFlagsLogical(val, Word)
	} else {
		val := uint32(int32(int16(c.reg.D[dn])))
		c.reg.D[dn] = val
		c.setFlagsLogical(val, Long)
	}
	c.cycles += 4
}

func execCHK(c *CPU, instr *Instruction) {
	bound := int16(instr.Src.read(c, Word))
	val := int16(c.reg.D[instr.Reg] & 0xFFFF)

	if val < 0 {
		c.reg.SR &^= flagN | flagZ | flagV | flagC
		c.reg.SR |= flagN
		c.exception(vecCHK)
		return
	}
	if val > bound {
		c.reg.SR &^= flagN | flagZ | flagV | flagC
		c.exception(vecCHK)
		return
	}

	mode, reg := instr.Src.eaCycleKey()
	c.cycles += 10 + c.variant.EACycles(mode, reg, Word, false)
}
