package m68k

func init() {
	registerDecodeMOVE()
	registerDecodeMOVEA()
	registerDecodeMOVEQ()
	registerDecodeMOVEP()
	registerDecodeLEA()
	registerDecodePEA()
	registerDecodeMOVEM()
	registerDecodeEXG()
	registerDecodeSWAP()
}

// moveSizeMap maps the MOVE size encoding (bits 13-12) to Size.
// MOVE uses a non-standard encoding: 01=Byte, 11=Word, 10=Long.
var moveSizeMap = [4]Size{0, Byte, Long, Word}

func registerDecodeMOVE() {
	for _, szBits := range []uint16{0x1000, 0x2000, 0x3000} {
		for dstMode := uint16(0); dstMode < 8; dstMode++ {
			if dstMode == 1 {
				continue
			}
			for dstReg := uint16(0); dstReg < 8; dstReg++ {
				if dstMode == 7 && dstReg > 1 {
					continue
				}
				for srcMode := uint16(0); srcMode < 8; srcMode++ {
					for srcReg := uint16(0); srcReg < 8; srcReg++ {
						if srcMode == 7 && srcReg > 4 {
							continue
						}
						opcode := szBits | dstReg<<9 | dstMode<<6 | srcMode<<3 | srcReg
						decodeTable[opcode] = decodeMOVE
					}
				}
			}
		}
	}
}

func decodeMOVE(f fetcher, opcode uint16) *Instruction {
	sz := moveSizeMap[(opcode>>12)&3]
	srcMode := uint8((opcode >> 3) & 7)
	srcReg := uint8(opcode & 7)
	dstMode := uint8((opcode >> 6) & 7)
	dstReg := uint8((opcode >> 9) & 7)

	src := decodeEA(f, srcMode, srcReg, sz)
	dst := decodeEA(f, dstMode, dstReg, sz)
	return &Instruction{Family: FamMOVE, Size: sz, Src: src, Dst: dst}
}

func registerDecodeMOVEA() {
	for _, szBits := range []uint16{0x2000, 0x3000} {
		for dstReg := uint16(0); dstReg < 8; dstReg++ {
			for srcMode := uint16(0); srcMode < 8; srcMode++ {
				for srcReg := uint16(0); srcReg < 8; srcReg++ {
					if srcMode == 7 && srcReg > 4 {
						continue
					}
					opcode := szBits | dstReg<<9 | 1<<6 | srcMode<<3 | srcReg
					decodeTable[opcode] = decodeMOVEA
				}
			}
		}
	}
}

func decodeMOVEA(f fetcher, opcode uint16) *Instruction {
	sz := moveSizeMap[(opcode>>12)&3]
	srcMode := uint8((opcode >> 3) & 7)
	srcReg := uint8(opcode & 7)
	an := uint8((opcode >> 9) & 7)

	src := decodeEA(f, srcMode, srcReg, sz)
	return &Instruction{Family: FamMOVEA, Size: sz, Src: src, Reg: an}
}

func registerDecodeMOVEQ() {
	for dn := uint16(0); dn < 8; dn++ {
		for data := uint16(0); data < 256; data++ {
			opcode := 0x7000 | dn<<9 | data
			decodeTable[opcode] = decodeMOVEQ
		}
	}
}

func decodeMOVEQ(f fetcher, opcode uint16) *Instruction {
	dn := uint8((opcode >> 9) & 7)
	data := uint32(int32(int8(opcode & 0xFF)))
	return &Instruction{Family: FamMOVEQ, Size: Long, Reg: dn, Imm: data}
}

func registerDecodeLEA() {
	for an := uint16(0); an < 8; an++ {
		for srcMode := uint16(2); srcMode < 8; srcMode++ {
			if srcMode == 3 || srcMode == 4 {
				continue
			}
			for srcReg := uint16(0); srcReg < 8; srcReg++ {
				if srcMode == 7 && srcReg > 3 {
					continue
				}
				opcode := 0x41C0 | an<<9 | srcMode<<3 | srcReg
				decodeTable[opcode] = decodeLEA
			}
		}
	}
}

func decodeLEA(f fetcher, opcode uint16) *Instruction {
	an := uint8((opcode >> 9) & 7)
	srcMode := uint8((opcode >> 3) & 7)
	srcReg := uint8(opcode & 7)
	src := decodeEA(f, srcMode, srcReg, Long)
	return &Instruction{Family: FamLEA, Size: Long, Src: src, Reg: an}
}

func registerDecodePEA() {
	for srcMode := uint16(2); srcMode < 8; srcMode++ {
		if srcMode == 3 || srcMode == 4 {
			continue
		}
		for srcReg := uint16(0); srcReg < 8; srcReg++ {
			if srcMode == 7 && srcReg > 3 {
				continue
			}
			opcode := 0x4840 | srcMode<<3 | srcReg
			decodeTable[opcode] = decodePEA
		}
	}
}

func decodePEA(f fetcher, opcode uint16) *Instruction {
	srcMode := uint8((opcode >> 3) & 7)
	srcReg := uint8(opcode & 7)
	src := decodeEA(f, srcMode, srcReg, Long)
	return &Instruction{Family: FamPEA, Size: Long, Src: src}
}

func registerDecodeMOVEM() {
	for dir := uint16(0); dir < 2; dir++ {
		for szBit := uint16(0); szBit < 2; szBit++ {
			for mode := uint16(2); mode < 8; mode++ {
				if dir == 0 && mode == 3 {
					continue
				}
				if dir == 1 && mode == 4 {
					continue
				}
				if mode == 1 {
					continue
				}
				for reg := uint16(0); reg < 8; reg++ {
					if mode == 7 {
						if dir == 0 && reg > 1 {
							continue
						}
						if dir == 1 && reg > 3 {
							continue
						}
					}
					opcode := 0x4880 | dir<<10 | szBit<<6 | mode<<3 | reg
					decodeTable[opcode] = decodeMOVEM
				}
			}
		}
	}
}

func decodeMOVEM(f fetcher, opcode uint16) *Instruction {
	dir := (opcode >> 10) & 1
	szBit := (opcode >> 6) & 1
	mode := uint8((opcode >> 3) & 7)
	reg := uint8(opcode & 7)

	sz := Word
	if szBit != 0 {
		sz = Long
	}

	mask := f.nextWord()
	ea := decodeEA(f, mode, reg, sz)

	instr := &Instruction{Family: FamMOVEM, Size: sz, Dst: ea, RegList: mask}
	if dir != 0 {
		instr.Reg = 1 // memory to register
	}
	return instr
}

func registerDecodeEXG() {
	for rx := uint16(0); rx < 8; rx++ {
		for ry := uint16(0); ry < 8; ry++ {
			decodeTable[0xC100|rx<<9|0x40|ry] = decodeEXG
			decodeTable[0xC100|rx<<9|0x48|ry] = decodeEXG
			decodeTable[0xC100|rx<<9|0x88|ry] = decodeEXG
		}
	}
}

func decodeEXG(f fetcher, opcode uint16) *Instruction {
	rx := uint8((opcode >> 9) & 7)
	ry := uint8(opcode & 7)
	opmode := uint8((opcode >> 3) & 0x1F)
	return &Instruction{Family: FamEXG, Reg: rx, Reg2: ry, Imm: uint32(opmode)}
}

func registerDecodeSWAP() {
	for dn := uint16(0); dn < 8; dn++ {
		decodeTable[0x4840|dn] = decodeSWAP
	}
}

func decodeSWAP(f fetcher, opcode uint16) *Instruction {
	return &Instruction{Family: FamSWAP, Reg: uint8(opcode & 7)}
}

func registerDecodeMOVEP() {
	for dn := uint16(0); dn < 8; dn++ {
		for an := uint16(0); an < 8; an++ {
			decodeTable[0x0108|dn<<9|an] = decodeMOVEP
			decodeTable[0x0148|dn<<9|an] = decodeMOVEP
			decodeTable[0x0188|dn<<9|an] = decodeMOVEP
			decodeTable[0x01C8|dn<<9|an] = decodeMOVEP
		}
	}
}

func decodeMOVEP(f fetcher, opcode uint16) *Instruction {
	dn := uint8((opcode >> 9) & 7)
	an := uint8(opcode & 7)
	opmode := uint8((opcode >> 6) & 7)
	disp := int32(int16(f.nextWord()))

	sz := Word
	if opmode == 5 || opmode == 7 {
		sz = Long
	}
	return &Instruction{Family: FamMOVEP, Size: sz, Reg: dn, Reg2: an, Disp: disp, Imm: uint32(opmode)}
}
