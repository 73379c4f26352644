package m68k

func init() {
	registerDecodeAND()
	registerDecodeANDI()
	registerDecodeOR()
	registerDecodeORI()
	registerDecodeEOR()
	registerDecodeEORI()
	registerDecodeNOT()
	registerDecodeTST()
	registerDecodeTAS()
	registerDecodeShifts()
}

func registerEADnTable(base uint16, fam Family, toEAFam Family) {
	for dn := uint16(0); dn < 8; dn++ {
		for szBits := uint16(0); szBits < 3; szBits++ {
			sz := sizeEncoding(szBits)
			for mode := uint16(0); mode < 8; mode++ {
				if mode == 1 {
					continue
				}
				for reg := uint16(0); reg < 8; reg++ {
					if mode == 7 && reg > 4 {
						continue
					}
					opcode := base | dn<<9 | szBits<<6 | mode<<3 | reg
					decodeTable[opcode] = decodeEADnShape(fam, sz)
				}
			}
			for mode := uint16(2); mode < 8; mode++ {
				for reg := uint16(0); reg < 8; reg++ {
					if mode == 7 && reg > 1 {
						continue
					}
					opcode := base | dn<<9 | (szBits+4)<<6 | mode<<3 | reg
					decodeTable[opcode] = decodeEAtoEADnShape(toEAFam, sz)
				}
			}
		}
	}
}

func registerDecodeAND() { registerEADnTable(0xC000, FamAND, FamANDtoEA) }
func registerDecodeOR()  { registerEADnTable(0x8000, FamOR, FamORtoEA) }

func registerImmEATable(base uint16, fam Family) {
	for szBits := uint16(0); szBits < 3; szBits++ {
		sz := sizeEncoding(szBits)
		for mode := uint16(0); mode < 8; mode++ {
			if mode == 1 {
				continue
			}
			for reg := uint16(0); reg < 8; reg++ {
				if mode == 7 && reg > 1 {
					continue
				}
				opcode := base | szBits<<6 | mode<<3 | reg
				decodeTable[opcode] = decodeImmEAShape(fam, sz)
			}
		}
	}
}

func registerDecodeANDI() { registerImmEATable(0x0200, FamANDI) }
func registerDecodeORI()  { registerImmEATable(0x0000, FamORI) }
func registerDecodeEORI() { registerImmEATable(0x0A00, FamEORI) }

func registerDecodeEOR() {
	for dn := uint16(0); dn < 8; dn++ {
		for szBits := uint16(0); szBits < 3; szBits++ {
			sz := sizeEncoding(szBits)
			for mode := uint16(0); mode < 8; mode++ {
				if mode == 1 {
					continue
				}
				for reg := uint16(0); reg < 8; reg++ {
					if mode == 7 && reg > 1 {
						continue
					}
					opcode := 0xB000 | dn<<9 | (szBits+4)<<6 | mode<<3 | reg
					decodeTable[opcode] = decodeEAtoEADnShape(FamEOR, sz)
				}
			}
		}
	}
}

func registerDecodeNOT() { registerEAOnlyTable(0x4600, FamNOT) }
func registerDecodeTST() { registerEAOnlyTable(0x4A00, FamTST) }

func registerDecodeTAS() {
	for mode := uint16(0); mode < 8; mode++ {
		if mode == 1 {
			continue
		}
		for reg := uint16(0); reg < 8; reg++ {
			if mode == 7 && reg > 1 {
				continue
			}
			opcode := 0x4AC0 | mode<<3 | reg
			decodeTable[opcode] = decodeEAOnlyShape(FamTAS, Byte)
		}
	}
}

func registerDecodeShifts() {
	for cnt := uint16(0); cnt < 8; cnt++ {
		for dir := uint16(0); dir < 2; dir++ {
			for szBits := uint16(0); szBits < 3; szBits++ {
				for ir := uint16(0); ir < 2; ir++ {
					for typ := uint16(0); typ < 4; typ++ {
						for dreg := uint16(0); dreg < 8; dreg++ {
							opcode := 0xE000 | cnt<<9 | dir<<8 | szBits<<6 | ir<<5 | typ<<3 | dreg
							decodeTable[opcode] = decodeShiftReg
						}
					}
				}
			}
		}
	}

	for dir := uint16(0); dir < 2; dir++ {
		for typ := uint16(0); typ < 4; typ++ {
			for mode := uint16(2); mode < 8; mode++ {
				for reg := uint16(0); reg < 8; reg++ {
					if mode == 7 && reg > 1 {
						continue
					}
					opcode := 0xE0C0 | typ<<9 | dir<<8 | mode<<3 | reg
					decodeTable[opcode] = decodeShiftMem
				}
			}
		}
	}
}

func decodeShiftReg(f fetcher, opcode uint16) *Instruction {
	cnt := uint8((opcode >> 9) & 7)
	dir := uint8((opcode >> 8) & 1)
	sz := sizeEncoding((opcode >> 6) & 3)
	ir := uint8((opcode >> 5) & 1)
	typ := uint8((opcode >> 3) & 3)
	dreg := uint8(opcode & 7)

	instr := &Instruction{Family: FamShiftReg, Size: sz, Reg: dreg, Reg2: typ}
	instr.Imm = uint32(dir)<<16 | uint32(ir)<<8 | uint32(cnt)
	return instr
}

func decodeShiftMem(f fetcher, opcode uint16) *Instruction {
	dir := uint8((opcode >> 8) & 1)
	typ := uint8((opcode >> 9) & 3)
	mode := uint8((opcode >> 3) & 7)
	reg := uint8(opcode & 7)

	dst := decodeEA(f, mode, reg, Word)
	instr := &Instruction{Family: FamShiftMem, Size: Word, Dst: dst, Reg2: typ}
	instr.Imm = uint32(dir) << 16
	return instr
}
