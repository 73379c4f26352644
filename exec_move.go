package m68k

import "math/bits"

func execMOVE(c *CPU, instr *Instruction) {
	sz := instr.Size
	val := instr.Src.read(c, sz)
	instr.Dst.write(c, sz, val)
	c.setFlagsLogical(val, sz)

	srcMode, srcReg := instr.Src.eaCycleKey()
	dstMode, dstReg := instr.Dst.eaCycleKey()
	c.cycles += 4 + c.variant.EACycles(srcMode, srcReg, sz, false) + c.variant.EACycles(dstMode, dstReg, sz, true)
}

func execMOVEA(c *CPU, instr *Instruction) {
	sz := instr.Size
	val := instr.Src.read(c, sz)
	if sz == Word {
		val = uint32(int32(int16(val)))
	}
	c.reg.A[instr.Reg] = val

	mode, reg := instr.Src.eaCycleKey()
	c.cycles += 4 + c.variant.EACycles(mode, reg, sz, false)
}

func execMOVEQ(c *CPU, instr *Instruction) {
	c.reg.D[instr.Reg] = instr.Imm
	c.setFlagsLogical(instr.Imm, Long)
	c.cycles += 4
}

func execLEA(c *CPU, instr *Instruction) {
	c.reg.A[instr.Reg] = instr.Src.address(c, Long)

	switch instr.Src.Mode {
	case ModeIndirect:
		c.cycles += 4
	case ModeDisp:
		c.cycles += 8
	case ModeIndex:
		c.cycles += 12
	case ModeAbsW, ModePCDisp:
		c.cycles += 8
	case ModeAbsL, ModePCIndex:
		c.cycles += 12
	}
}

func execPEA(c *CPU, instr *Instruction) {
	c.pushLong(instr.Src.address(c, Long))

	switch instr.Src.Mode {
	case ModeIndirect:
		c.cycles += 12
	case ModeDisp:
		c.cycles += 16
	case ModeIndex:
		c.cycles += 20
	case ModeAbsW, ModePCDisp:
		c.cycles += 16
	case ModeAbsL, ModePCIndex:
		c.cycles += 20
	}
}

func execMOVEM(c *CPU, instr *Instruction) {
	sz := instr.Size
	mask := instr.RegList
	memToReg := instr.Reg != 0

	if !memToReg {
		if instr.Dst.Mode == ModePreDec {
			addr := c.reg.A[instr.Dst.Reg]
			for i := 15; i >= 0; i-- {
				if mask&(1<<uint(i)) != 0 {
					addr -= uint32(sz)
					if i < 8 {
						c.writeBus(sz, addr, c.reg.D[i])
					} else {
						c.writeBus(sz, addr, c.reg.A[i-8])
					}
				}
			}
			c.reg.A[instr.Dst.Reg] = addr
		} else {
			addr := instr.Dst.address(c, sz)
			for i := 0; i < 16; i++ {
				if mask&(1<<uint(i)) != 0 {
					if i < 8 {
						c.writeBus(sz, addr, c.reg.D[i])
					} else {
						c.writeBus(sz, addr, c.reg.A[i-8])
					}
					addr += uint32(sz)
				}
			}
		}
	} else {
		if instr.Dst.Mode == ModePostInc {
			addr := c.reg.A[instr.Dst.Reg]
			for i := 0; i < 16; i++ {
				if mask&(1<<uint(i)) != 0 {
					val := c.readBus(sz, addr)
					if sz == Word {
						val = uint32(int32(int16(val)))
					}
					if i < 8 {
						c.reg.D[i] = val
					} else {
						c.reg.A[i-8] = val
					}
					addr += uint32(sz)
				}
			}
			c.reg.A[instr.Dst.Reg] = addr
		} else {
			addr := instr.Dst.address(c, sz)
			for i := 0; i < 16; i++ {
				if mask&(1<<uint(i)) != 0 {
					val := c.readBus(sz, addr)
					if sz == Word {
						val = uint32(int32(int16(val)))
					}
					if i < 8 {
						c.reg.D[i] = val
					} else {
						c.reg.A[i-8] = val
					}
					addr += uint32(sz)
				}
			}
		}
	}

	n := uint64(bits.OnesCount16(mask))
	perReg := uint64(4)
	if sz == Long {
		perReg = 8
	}

	var base uint64
	mode, reg := instr.Dst.eaCycleKey()
	if !memToReg {
		switch mode {
		case 2, 4:
			base = 8
		case 5:
			base = 12
		case 6:
			base = 14
		case 7:
			switch reg {
			case 0:
				base = 12
			case 1:
				base = 16
			}
		}
	} else {
		switch mode {
		case 2, 3:
			base = 12
		case 5:
			base = 16
		case 6:
			base = 18
		case 7:
			switch reg {
			case 0:
				base = 16
			case 1:
				base = 20
			case 2:
				base = 16
			case 3:
				base = 18
			}
		}
	}

	c.cycles += base + n*perReg
}

func execEXG(c *CPU, instr *Instruction) {
	rx, ry := instr.Reg, instr.Reg2
	switch instr.Imm {
	case 0x08:
		c.reg.D[rx], c.reg.D[ry] = c.reg.D[ry], c.reg.D[rx]
	case 0x09:
		c.reg.A[rx], c.reg.A[ry] = c.reg.A[ry], c.reg.A[rx]
	case 0x11:
		c.reg.D[rx], c.reg.A[ry] = c.reg.A[ry], c.reg.D[rx]
	}
	c.cycles += 6
}

func execSWAP(c *CPU, instr *Instruction) {
	dn := instr.Reg
	val := c.reg.D[dn]
	c.reg.D[dn] = (val>>16)&0xFFFF | (val&0xFFFF)<<16
	c.setFlagsLogical(c.reg.D[dn], Long)
	c.cycles += 4
}

func execMOVEP(c *CPU, instr *Instruction) {
	dn, an := instr.Reg, instr.Reg2
	addr := uint32(int32(c.reg.A[an]) + instr.Disp)

	switch instr.Imm {
	case 4: // MOVEP.W mem->reg
		b0 := c.readBus(Byte, addr)
		b1 := c.readBus(Byte, addr+2)
		val := (b0 << 8) | b1
		c.reg.D[dn] = (c.reg.D[dn] & 0xFFFF0000) | (val & 0xFFFF)
		c.cycles += 16
	case 5: // MOVEP.L mem->reg
		b0 := c.readBus(Byte, addr)
		b1 := c.readBus(Byte, addr+2)
		b2 := c.readBus(Byte, addr+4)
		b3 := c.readBus(Byte, addr+6)
		c.reg.D[dn] = (b0 << 24) | (b1 << 16) | (b2 << 8) | b3
		c.cycles += 24
	case 6: // MOVEP.W reg->mem
		val := c.reg.D[dn]
		c.writeBus(Byte, addr, (val>>8)&0xFF)
		c.writeBus(Byte, addr+2, val&0xFF)
		c.cycles += 16
	case 7: // MOVEP.L reg->mem
		val := c.reg.D[dn]
		c.writeBus(Byte, addr, (val>>24)&0xFF)
		c.writeBus(Byte, addr+2, (val>>16)&0xFF)
		c.writeBus(Byte, addr+4, (val>>8)&0xFF)
		c.writeBus(Byte, addr+6, val&0xFF)
		c.cycles += 24
	}
}
