package m68k

func init() {
	registerDecodeADD()
	registerDecodeADDA()
	registerDecodeADDI()
	registerDecodeADDQ()
	registerDecodeADDX()
	registerDecodeSUB()
	registerDecodeSUBA()
	registerDecodeSUBI()
	registerDecodeSUBQ()
	registerDecodeSUBX()
	registerDecodeCMP()
	registerDecodeCMPA()
	registerDecodeCMPI()
	registerDecodeCMPM()
	registerDecodeMULU()
	registerDecodeMULS()
	registerDecodeDIVU()
	registerDecodeDIVS()
	registerDecodeNEG()
	registerDecodeNEGX()
	registerDecodeCLR()
	registerDecodeEXT()
	registerDecodeCHK()
}

// sizeEncoding maps the standard 2-bit size field (bits 7-6) to Size.
func sizeEncoding(bits uint16) Size {
	switch bits {
	case 0:
		return Byte
	case 1:
		return Word
	case 2:
		return Long
	}
	return 0
}

// decodeEADnShape decodes the common "<ea>,Dn" shape (EA source, Dn
// destination) shared by ADD/SUB/AND/OR/CMP: a data register named by bits 11-9, an EA named
// by bits 5-0, tagged with whichever Family the opcode-table slot was
// assigned to.
func decodeEADnShape(fam Family, sz Size) decodeFunc {
	return func(f fetcher, opcode uint16) *Instruction {
		dn := uint8((opcode >> 9) & 7)
		mode := uint8((opcode >> 3) & 7)
		reg := uint8(opcode & 7)
		src := decodeEA(f, mode, reg, sz)
		return &Instruction{Family: fam, Size: sz, Src: src, Reg: dn}
	}
}

// decodeEAtoEADnShape decodes the "Dn,<ea>" direction: result is written
// through Dst instead of to Dn directly.
func decodeEAtoEADnShape(fam Family, sz Size) decodeFunc {
	return func(f fetcher, opcode uint16) *Instruction {
		dn := uint8((opcode >> 9) & 7)
		mode := uint8((opcode >> 3) & 7)
		reg := uint8(opcode & 7)
		dst := decodeEA(f, mode, reg, sz)
		return &Instruction{Family: fam, Size: sz, Dst: dst, Reg: dn}
	}
}

// decodeEAAnShape decodes ADDA/SUBA/CMPA: An named by bits 11-9, a full
// EA (any mode) by bits 5-0.
func decodeEAAnShape(fam Family, sz Size) decodeFunc {
	return func(f fetcher, opcode uint16) *Instruction {
		an := uint8((opcode >> 9) & 7)
		mode := uint8((opcode >> 3) & 7)
		reg := uint8(opcode & 7)
		src := decodeEA(f, mode, reg, sz)
		return &Instruction{Family: fam, Size: sz, Src: src, Reg: an}
	}
}

// decodeImmEAShape decodes ADDI/SUBI/CMPI/ANDI/ORI/EORI: an immediate of
// the instruction's size, then a destination EA.
func decodeImmEAShape(fam Family, sz Size) decodeFunc {
	return func(f fetcher, opcode uint16) *Instruction {
		imm := decodeImm(f, sz)
		mode := uint8((opcode >> 3) & 7)
		reg := uint8(opcode & 7)
		dst := decodeEA(f, mode, reg, sz)
		return &Instruction{Family: fam, Size: sz, Dst: dst, Imm: imm}
	}
}

// decodeQuickEAShape decodes ADDQ/SUBQ: a 3-bit quick data field (0
// means 8) named by bits 11-9, a destination EA by bits 5-0.
func decodeQuickEAShape(fam Family, sz Size) decodeFunc {
	return func(f fetcher, opcode uint16) *Instruction {
		data := uint32((opcode >> 9) & 7)
		if data == 0 {
			data = 8
		}
		mode := uint8((opcode >> 3) & 7)
		reg := uint8(opcode & 7)
		dst := decodeEA(f, mode, reg, sz)
		return &Instruction{Family: fam, Size: sz, Dst: dst, Imm: data}
	}
}

// decodeRegPairShape decodes ADDX/SUBX/ABCD/SBCD's register form: two
// data registers named Rx (dest, bits 11-9) and Ry (src, bits 2-0).
func decodeRegPairShape(fam Family, sz Size) decodeFunc {
	return func(f fetcher, opcode uint16) *Instruction {
		rx := uint8((opcode >> 9) & 7)
		ry := uint8(opcode & 7)
		return &Instruction{Family: fam, Size: sz, Reg: rx, Reg2: ry}
	}
}

// decodeRegPairMemShape decodes ADDX/SUBX/ABCD/SBCD's -(Ax),-(Ay) form.
func decodeRegPairMemShape(fam Family, sz Size) decodeFunc {
	return func(f fetcher, opcode uint16) *Instruction {
		rx := uint8((opcode >> 9) & 7)
		ry := uint8(opcode & 7)
		return &Instruction{
			Family: fam, Size: sz, Reg: rx, Reg2: ry,
			Src: Operand{Mode: ModePreDec, Reg: ry},
			Dst: Operand{Mode: ModePreDec, Reg: rx},
		}
	}
}

// decodeEAOnlyShape decodes single-operand destination-EA instructions
// (CLR/NEG/NEGX/NOT/TST/NBCD/TAS).
func decodeEAOnlyShape(fam Family, sz Size) decodeFunc {
	return func(f fetcher, opcode uint16) *Instruction {
		mode := uint8((opcode >> 3) & 7)
		reg := uint8(opcode & 7)
		dst := decodeEA(f, mode, reg, sz)
		return &Instruction{Family: fam, Size: sz, Dst: dst}
	}
}

// --- ADD ---

func registerDecodeADD() {
	for dn := uint16(0); dn < 8; dn++ {
		for szBits := uint16(0); szBits < 3; szBits++ {
			sz := sizeEncoding(szBits)
			for mode := uint16(0); mode < 8; mode++ {
				for reg := uint16(0); reg < 8; reg++ {
					if mode == 7 && reg > 4 {
						continue
					}
					if mode == 1 && szBits == 0 {
						continue
					}
					opcode := 0xD000 | dn<<9 | szBits<<6 | mode<<3 | reg
					decodeTable[opcode] = decodeEADnShape(FamADD, sz)
				}
			}
			for mode := uint16(2); mode < 8; mode++ {
				for reg := uint16(0); reg < 8; reg++ {
					if mode == 7 && reg > 1 {
						continue
					}
					opcode := 0xD000 | dn<<9 | (szBits+4)<<6 | mode<<3 | reg
					decodeTable[opcode] = decodeEAtoEADnShape(FamADDtoEA, sz)
				}
			}
		}
	}
}

func registerDecodeADDA() {
	for an := uint16(0); an < 8; an++ {
		for _, s := range []struct {
			bits uint16
			sz   Size
		}{{3, Word}, {7, Long}} {
			for mode := uint16(0); mode < 8; mode++ {
				for reg := uint16(0); reg < 8; reg++ {
					if mode == 7 && reg > 4 {
						continue
					}
					opcode := 0xD000 | an<<9 | s.bits<<6 | mode<<3 | reg
					decodeTable[opcode] = decodeEAAnShape(FamADDA, s.sz)
				}
			}
		}
	}
}

func registerDecodeADDI() {
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
				opcode := 0x0600 | szBits<<6 | mode<<3 | reg
				decodeTable[opcode] = decodeImmEAShape(FamADDI, sz)
			}
		}
	}
}

func registerDecodeADDQ() {
	for data := uint16(0); data < 8; data++ {
		for szBits := uint16(0); szBits < 3; szBits++ {
			sz := sizeEncoding(szBits)
			for mode := uint16(0); mode < 8; mode++ {
				for reg := uint16(0); reg < 8; reg++ {
					if mode == 7 && reg > 1 {
						continue
					}
					if mode == 1 && szBits == 0 {
						continue
					}
					opcode := 0x5000 | data<<9 | szBits<<6 | mode<<3 | reg
					decodeTable[opcode] = decodeQuickEAShape(FamADDQ, sz)
				}
			}
		}
	}
}

func registerDecodeADDX() {
	for rx := uint16(0); rx < 8; rx++ {
		for ry := uint16(0); ry < 8; ry++ {
			for szBits := uint16(0); szBits < 3; szBits++ {
				sz := sizeEncoding(szBits)
				decodeTable[0xD100|rx<<9|szBits<<6|ry] = decodeRegPairShape(FamADDX, sz)
				decodeTable[0xD108|rx<<9|szBits<<6|ry] = decodeRegPairMemShape(FamADDX, sz)
			}
		}
	}
}

// --- SUB ---

func registerDecodeSUB() {
	for dn := uint16(0); dn < 8; dn++ {
		for szBits := uint16(0); szBits < 3; szBits++ {
			sz := sizeEncoding(szBits)
			for mode := uint16(0); mode < 8; mode++ {
				for reg := uint16(0); reg < 8; reg++ {
					if mode == 7 && reg > 4 {
						continue
					}
					if mode == 1 && szBits == 0 {
						continue
					}
					opcode := 0x9000 | dn<<9 | szBits<<6 | mode<<3 | reg
					decodeTable[opcode] = decodeEADnShape(FamSUB, sz)
				}
			}
			for mode := uint16(2); mode < 8; mode++ {
				for reg := uint16(0); reg < 8; reg++ {
					if mode == 7 && reg > 1 {
						continue
					}
					opcode := 0x9000 | dn<<9 | (szBits+4)<<6 | mode<<3 | reg
					decodeTable[opcode] = decodeEAtoEADnShape(FamSUBtoEA, sz)
				}
			}
		}
	}
}

func registerDecodeSUBA() {
	for an := uint16(0); an < 8; an++ {
		for _, s := range []struct {
			bits uint16
			sz   Size
		}{{3, Word}, {7, Long}} {
			for mode := uint16(0); mode < 8; mode++ {
				for reg := uint16(0); reg < 8; reg++ {
					if mode == 7 && reg > 4 {
						continue
					}
					opcode := 0x9000 | an<<9 | s.bits<<6 | mode<<3 | reg
					decodeTable[opcode] = decodeEAAnShape(FamSUBA, s.sz)
				}
			}
		}
	}
}

func registerDecodeSUBI() {
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
				opcode := 0x0400 | szBits<<6 | mode<<3 | reg
				decodeTable[opcode] = decodeImmEAShape(FamSUBI, sz)
			}
		}
	}
}

func registerDecodeSUBQ() {
	for data := uint16(0); data < 8; data++ {
		for szBits := uint16(0); szBits < 3; szBits++ {
			sz := sizeEncoding(szBits)
			for mode := uint16(0); mode < 8; mode++ {
				for reg := uint16(0); reg < 8; reg++ {
					if mode == 7 && reg > 1 {
						continue
					}
					if mode == 1 && szBits == 0 {
						continue
					}
					opcode := 0x5100 | data<<9 | szBits<<6 | mode<<3 | reg
					decodeTable[opcode] = decodeQuickEAShape(FamSUBQ, sz)
				}
			}
		}
	}
}

func registerDecodeSUBX() {
	for rx := uint16(0); rx < 8; rx++ {
		for ry := uint16(0); ry < 8; ry++ {
			for szBits := uint16(0); szBits < 3; szBits++ {
				sz := sizeEncoding(szBits)
				decodeTable[0x9100|rx<<9|szBits<<6|ry] = decodeRegPairShape(FamSUBX, sz)
				decodeTable[0x9108|rx<<9|szBits<<6|ry] = decodeRegPairMemShape(FamSUBX, sz)
			}
		}
	}
}

// --- CMP family ---

func registerDecodeCMP() {
	for dn := uint16(0); dn < 8; dn++ {
		for szBits := uint16(0); szBits < 3; szBits++ {
			sz := sizeEncoding(szBits)
			for mode := uint16(0); mode < 8; mode++ {
				for reg := uint16(0); reg < 8; reg++ {
					if mode == 7 && reg > 4 {
						continue
					}
					if mode == 1 && szBits == 0 {
						continue
					}
					opcode := 0xB000 | dn<<9 | szBits<<6 | mode<<3 | reg
					decodeTable[opcode] = decodeEADnShape(FamCMP, sz)
				}
			}
		}
	}
}

func registerDecodeCMPA() {
	for an := uint16(0); an < 8; an++ {
		for _, s := range []struct {
			bits uint16
			sz   Size
		}{{3, Word}, {7, Long}} {
			for mode := uint16(0); mode < 8; mode++ {
				for reg := uint16(0); reg < 8; reg++ {
					if mode == 7 && reg > 4 {
						continue
					}
					opcode := 0xB000 | an<<9 | s.bits<<6 | mode<<3 | reg
					decodeTable[opcode] = decodeEAAnShape(FamCMPA, s.sz)
				}
			}
		}
	}
}

func registerDecodeCMPI() {
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
				opcode := 0x0C00 | szBits<<6 | mode<<3 | reg
				decodeTable[opcode] = decodeImmEAShape(FamCMPI, sz)
			}
		}
	}
}

func registerDecodeCMPM() {
	for ax := uint16(0); ax < 8; ax++ {
		for ay := uint16(0); ay < 8; ay++ {
			for szBits := uint16(0); szBits < 3; szBits++ {
				sz := sizeEncoding(szBits)
				opcode := 0xB108 | ax<<9 | szBits<<6 | ay
				decodeTable[opcode] = decodeRegPairMemPostIncShape(FamCMPM, sz)
			}
		}
	}
}

// decodeRegPairMemPostIncShape decodes CMPM's (Ay)+,(Ax)+ form.
func decodeRegPairMemPostIncShape(fam Family, sz Size) decodeFunc {
	return func(f fetcher, opcode uint16) *Instruction {
		ax := uint8((opcode >> 9) & 7)
		ay := uint8(opcode & 7)
		return &Instruction{
			Family: fam, Size: sz, Reg: ax, Reg2: ay,
			Src: Operand{Mode: ModePostInc, Reg: ay},
			Dst: Operand{Mode: ModePostInc, Reg: ax},
		}
	}
}

// --- MULU/MULS/DIVU/DIVS ---

func decodeMulDivShape(fam Family) decodeFunc {
	return func(f fetcher, opcode uint16) *Instruction {
		dn := uint8((opcode >> 9) & 7)
		mode := uint8((opcode >> 3) & 7)
		reg := uint8(opcode & 7)
		src := decodeEA(f, mode, reg, Word)
		return &Instruction{Family: fam, Size: Word, Src: src, Reg: dn}
	}
}

func registerMulDivTable(base uint16, fam Family) {
	for dn := uint16(0); dn < 8; dn++ {
		for mode := uint16(0); mode < 8; mode++ {
			if mode == 1 {
				continue
			}
			for reg := uint16(0); reg < 8; reg++ {
				if mode == 7 && reg > 4 {
					continue
				}
				opcode := base | dn<<9 | mode<<3 | reg
				decodeTable[opcode] = decodeMulDivShape(fam)
			}
		}
	}
}

func registerDecodeMULU() { registerMulDivTable(0xC0C0, FamMULU) }
func registerDecodeMULS() { registerMulDivTable(0xC1C0, FamMULS) }
func registerDecodeDIVU() { registerMulDivTable(0x80C0, FamDIVU) }
func registerDecodeDIVS() { registerMulDivTable(0x81C0, FamDIVS) }

// --- NEG/NEGX/CLR/NOT/TST share decodeEAOnlyShape, registered per-op ---

func registerEAOnlyTable(base uint16, fam Family) {
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
				decodeTable[opcode] = decodeEAOnlyShape(fam, sz)
			}
		}
	}
}

func registerDecodeNEG()  { registerEAOnlyTable(0x4400, FamNEG) }
func registerDecodeNEGX() { registerEAOnlyTable(0x4000, FamNEGX) }
func registerDecodeCLR()  { registerEAOnlyTable(0x4200, FamCLR) }

func registerDecodeEXT() {
	for dn := uint16(0); dn < 8; dn++ {
		decodeTable[0x4880|dn] = func(f fetcher, opcode uint16) *Instruction {
			return &Instruction{Family: FamEXT, Size: Word, Reg: uint8(opcode & 7)}
		}
		decodeTable[0x48C0|dn] = func(f fetcher, opcode uint16) *Instruction {
			return &Instruction{Family: FamEXT, Size: Long, Reg: uint8(opcode & 7)}
		}
	}
}

func registerDecodeCHK() {
	for dn := uint16(0); dn < 8; dn++ {
		for mode := uint16(0); mode < 8; mode++ {
			if mode == 1 {
				continue
			}
			for reg := uint16(0); reg < 8; reg++ {
				if mode == 7 && reg > 4 {
					continue
				}
				opcode := 0x4180 | dn<<9 | mode<<3 | reg
				decodeTable[opcode] = decodeMulDivShape(FamCHK)
			}
		}
	}
}
