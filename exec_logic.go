package m68k

func execAND(c *CPU, instr *Instruction) {
	sz := instr.Size
	result := instr.Src.read(c, sz) & (c.reg.D[instr.Reg] & sz.Mask())
	c.setFlagsLogical(result, sz)

	mask := sz.Mask()
	c.reg.D[instr.Reg] = (c.reg.D[instr.Reg] & ^mask) | (result & mask)

	c.cycles += 4
	if sz == Long {
		c.cycles += 4
	}
}

func execANDtoEA(c *CPU, instr *Instruction) {
	sz := instr.Size
	result := instr.Dst.read(c, sz) & (c.reg.D[instr.Reg] & sz.Mask())
	c.setFlagsLogical(result, sz)
	instr.Dst.write(c, sz, result)

	c.cycles += 8
	if sz == Long {
		c.cycles += 4
	}
}

func execANDI(c *CPU, instr *Instruction) {
	sz := instr.Size
	result := instr.Dst.read(c, sz) & instr.Imm
	c.setFlagsLogical(result, sz)
	instr.Dst.write(c, sz, result)

	c.cycles += 8
	if sz == Long {
		c.cycles += 8
	}
}

func execOR(c *CPU, instr *Instruction) {
	sz := instr.Size
	result := instr.Src.read(c, sz) | (c.reg.D[instr.Reg] & sz.Mask())
	c.setFlagsLogical(result, sz)

	mask := sz.Mask()
	c.reg.D[instr.Reg] = (c.reg.D[instr.Reg] & ^mask) | (result & mask)

	c.cycles += 4
	if sz == Long {
		c.cycles += 4
	}
}

func execORtoEA(c *CPU, instr *Instruction) {
	sz := instr.Size
	result := instr.Dst.read(c, sz) | (c.reg.D[instr.Reg] & sz.Mask())
	c.setFlagsLogical(result, sz)
	instr.Dst.write(c, sz, result)

	c.cycles += 8
	if sz == Long {
		c.cycles += 4
	}
}

func execORI(c *CPU, instr *Instruction) {
	sz := instr.Size
	result := instr.Dst.read(c, sz) | instr.Imm
	c.setFlagsLogical(result, sz)
	instr.Dst.write(c, sz, result)

	c.cycles += 8
	if sz == Long {
		c.cycles += 8
	}
}

func execEOR(c *CPU, instr *Instruction) {
	sz := instr.Size
	mode, _ := instr.Dst.eaCycleKey()
	result := instr.Dst.read(c, sz) ^ (c.reg.D[instr.Reg] & sz.Mask())
	c.setFlagsLogical(result, sz)
	instr.Dst.write(c, sz, result)

	c.cycles += 4
	if mode >= 2 {
		c.cycles += 4
	}
	if sz == Long && mode == 0 {
		c.cycles += 4
	}
}

func execEORI(c *CPU, instr *Instruction) {
	sz := instr.Size
	result := instr.Dst.read(c, sz) ^ instr.Imm
	c.setFlagsLogical(result, sz)
	instr.Dst.write(c, sz, result)

	c.cycles += 8
	if sz == Long {
		c.cycles += 8
	}
}

func execNOT(c *CPU, instr *Instruction) {
	sz := instr.Size
	mode, _ := instr.Dst.eaCycleKey()
	result := ^instr.Dst.read(c, sz) & sz.Mask()
	c.setFlagsLogical(result, sz)
	instr.Dst.write(c, sz, result)

	c.cycles += 4
	if mode >= 2 {
		c.cycles += 4
	}
	if sz == Long && mode == 0 {
		c.cycles += 2
	}
}

func execTST(c *CPU, instr *Instruction) {
	sz := instr.Size
	val := instr.Dst.read(c, sz)
	c.setFlagsLogical(val, sz)
	c.cycles += 4
}

func execTAS(c *CPU, instr *Instruction) {
	mode, _ := instr.Dst.eaCycleKey()
	val := instr.Dst.read(c, Byte)
	c.setFlagsLogical(val, Byte)
	instr.Dst.write(c, Byte, val|0x80)

	c.cycles += 4
	if mode >= 2 {
		c.cycles += 10
	}
}

func execShiftReg(c *CPU, instr *Instruction) {
	sz := instr.Size
	typ := instr.Reg2
	dir := uint16((instr.Imm >> 16) & 1)
	ir := uint16((instr.Imm >> 8) & 1)
	cnt := uint32(instr.Imm & 0xFF)

	var count uint32
	if ir != 0 {
		count = c.reg.D[cnt] & 63
	} else {
		count = cnt
		if count == 0 {
			count = 8
		}
	}

	dreg := instr.Reg
	val := c.reg.D[dreg] & sz.Mask()
	result := doShift(c, val, count, dir, uint16(typ), sz)

	mask := sz.Mask()
	c.reg.D[dreg] = (c.reg.D[dreg] & ^mask) | (result & mask)

	c.cycles += 6 + 2*uint64(count)
	if sz == Long {
		c.cycles += 2
	}
}

func execShiftMem(c *CPU, instr *Instruction) {
	dir := uint16((instr.Imm >> 16) & 1)
	typ := uint16(instr.Reg2)

	val := instr.Dst.read(c, Word)
	result := doShift(c, val, 1, dir, typ, Word)
	instr.Dst.write(c, Word, result)

	c.cycles += 8
}

// doShift performs the actual shift/rotate operation: typ 0=AS, 1=LS,
// 2=ROX, 3=RO; dir 0=right, 1=left.
func doShift(c *CPU, val, count uint32, dir, typ uint16, sz Size) uint32 {
	msb := sz.MSB()
	mask := sz.Mask()

	if count == 0 {
		c.setFlagsLogical(val, sz)
		if typ == 2 {
			if c.reg.SR&flagX != 0 {
				c.reg.SR |= flagC
			}
		}
		return val
	}

	var result uint32

	switch typ {
	case 0: // Arithmetic shift (AS)
		if dir == 1 { // ASL
			result = val
			c.reg.SR &^= flagV
			for i := uint32(0); i < count; i++ {
				msbit := result & msb
				result = (result << 1) & mask
				if result&msb != msbit {
					c.reg.SR |= flagV
				}
			}
			lastOut := (val >> (sz.Bits() - count)) & 1
			if lastOut != 0 {
				c.reg.SR |= flagC | flagX
			} else {
				c.reg.SR &^= flagC | flagX
			}
		} else { // ASR
			sign := val & msb
			result = val
			for i := uint32(0); i < count; i++ {
				result = (result >> 1) | sign
			}
			result &= mask
			var lastOut uint32
			if count >= sz.Bits() {
				lastOut = (val >> (sz.Bits() - 1)) & 1
			} else {
				lastOut = (val >> (count - 1)) & 1
			}
			if lastOut != 0 {
				c.reg.SR |= flagC | flagX
			} else {
				c.reg.SR &^= flagC | flagX
			}
			c.reg.SR &^= flagV
		}

	case 1: // Logical shift (LS)
		if dir == 1 { // LSL
			result = (val << count) & mask
			lastOut := (val >> (sz.Bits() - count)) & 1
			if lastOut != 0 {
				c.reg.SR |= flagC | flagX
			} else {
				c.reg.SR &^= flagC | flagX
			}
		} else { // LSR
			result = (val & mask) >> count
			lastOut := (val >> (count - 1)) & 1
			if lastOut != 0 {
				c.reg.SR |= flagC | flagX
			} else {
				c.reg.SR &^= flagC | flagX
			}
		}
		c.reg.SR &^= flagV

	case 2: // Rotate through extend (ROX)
		bits := sz.Bits()
		if dir == 1 { // ROXL
			result = val
			for i := uint32(0); i < count; i++ {
				x := uint32(0)
				if c.reg.SR&flagX != 0 {
					x = 1
				}
				if result&msb != 0 {
					c.reg.SR |= flagX | flagC
				} else {
					c.reg.SR &^= flagX | flagC
				}
				result = ((result << 1) | x) & mask
			}
		} else { // ROXR
			result = val
			for i := uint32(0); i < count; i++ {
				x := uint32(0)
				if c.reg.SR&flagX != 0 {
					x = 1
				}
				if result&1 != 0 {
					c.reg.SR |= flagX | flagC
				} else {
					c.reg.SR &^= flagX | flagC
				}
				result = (result >> 1) | (x << (bits - 1))
			}
			result &= mask
		}
		c.reg.SR &^= flagV

	case 3: // Rotate (RO)
		bits := sz.Bits()
		if dir == 1 { // ROL
			shift := count % bits
			result = ((val << shift) | (val >> (bits - shift))) & mask
		} else { // ROR
			shift := count % bits
			result = ((val >> shift) | (val << (bits - shift))) & mask
		}
		if dir == 1 {
			if result&1 != 0 {
				c.reg.SR |= flagC
			} else {
				c.reg.SR &^= flagC
			}
		} else {
			if result&msb != 0 {
				c.reg.SR |= flagC
			} else {
				c.reg.SR &^= flagC
			}
		}
		c.reg.SR &^= flagV
	}

	c.reg.SR &^= flagN | flagZ
	if result&msb != 0 {
		c.reg.SR |= flagN
	}
	if result&mask == 0 {
		c.reg.SR |= flagZ
	}

	return result
}
