package m68k

func init() {
	registerDecodeNOP()
	registerDecodeSTOP()
	registerDecodeRESET()
	registerDecodeTRAP()
	registerDecodeTRAPV()
	registerDecodeLINK()
	registerDecodeUNLK()
	registerDecodeMoveToFromSR()
	registerDecodeAndiOriEoriSRCCR()
}

func registerDecodeNOP() {
	decodeTable[0x4E71] = func(f fetcher, opcode uint16) *Instruction {
		return &Instruction{Family: FamNOP}
	}
}

func registerDecodeSTOP() {
	decodeTable[0x4E72] = func(f fetcher, opcode uint16) *Instruction {
		imm := uint32(f.nextWord())
		return &Instruction{Family: FamSTOP, Imm: imm}
	}
}

func registerDecodeRESET() {
	decodeTable[0x4E70] = func(f fetcher, opcode uint16) *Instruction {
		return &Instruction{Family: FamRESET}
	}
}

func registerDecodeTRAP() {
	for v := uint16(0); v < 16; v++ {
		opcode := 0x4E40 | v
		decodeTable[opcode] = func(f fetcher, opcode uint16) *Instruction {
			return &Instruction{Family: FamTRAP, Imm: uint32(opcode & 0xF)}
		}
	}
}

func registerDecodeTRAPV() {
	decodeTable[0x4E76] = func(f fetcher, opcode uint16) *Instruction {
		return &Instruction{Family: FamTRAPV}
	}
}

func registerDecodeLINK() {
	for an := uint16(0); an < 8; an++ {
		decodeTable[0x4E50|an] = decodeLINK
	}
}

func decodeLINK(f fetcher, opcode uint16) *Instruction {
	an := uint8(opcode & 7)
	disp := int32(int16(f.nextWord()))
	return &Instruction{Family: FamLINK, Reg: an, Disp: disp}
}

func registerDecodeUNLK() {
	for an := uint16(0); an < 8; an++ {
		decodeTable[0x4E58|an] = func(f fetcher, opcode uint16) *Instruction {
			return &Instruction{Family: FamUNLK, Reg: uint8(opcode & 7)}
		}
	}
}

func registerDecodeMoveToFromSR() {
	for mode := uint16(0); mode < 8; mode++ {
		if mode == 1 {
			continue
		}
		for reg := uint16(0); reg < 8; reg++ {
			if mode == 7 && reg > 1 {
				continue
			}
			decodeTable[0x40C0|mode<<3|reg] = decodeMOVEfromSR
		}
	}

	for mode := uint16(0); mode < 8; mode++ {
		if mode == 1 {
			continue
		}
		for reg := uint16(0); reg < 8; reg++ {
			if mode == 7 && reg > 4 {
				continue
			}
			decodeTable[0x44C0|mode<<3|reg] = decodeMOVEtoCCR
			decodeTable[0x46C0|mode<<3|reg] = decodeMOVEtoSR
		}
	}

	for an := uint16(0); an < 8; an++ {
		decodeTable[0x4E60|an] = func(f fetcher, opcode uint16) *Instruction {
			return &Instruction{Family: FamMOVEtoUSP, Reg: uint8(opcode & 7)}
		}
		decodeTable[0x4E68|an] = func(f fetcher, opcode uint16) *Instruction {
			return &Instruction{Family: FamMOVEfromUSP, Reg: uint8(opcode & 7)}
		}
	}
}

func decodeMOVEfromSR(f fetcher, opcode uint16) *Instruction {
	mode := uint8((opcode >> 3) & 7)
	reg := uint8(opcode & 7)
	dst := decodeEA(f, mode, reg, Word)
	return &Instruction{Family: FamMOVEfromSR, Dst: dst}
}

func decodeMOVEtoCCR(f fetcher, opcode uint16) *Instruction {
	mode := uint8((opcode >> 3) & 7)
	reg := uint8(opcode & 7)
	src := decodeEA(f, mode, reg, Word)
	return &Instruction{Family: FamMOVEtoCCR, Src: src}
}

func decodeMOVEtoSR(f fetcher, opcode uint16) *Instruction {
	mode := uint8((opcode >> 3) & 7)
	reg := uint8(opcode & 7)
	src := decodeEA(f, mode, reg, Word)
	return &Instruction{Family: FamMOVEtoSR, Src: src}
}

func registerDecodeAndiOriEoriSRCCR() {
	decodeTable[0x023C] = decodeImmFam(FamANDItoCCR)
	decodeTable[0x027C] = decodeImmFam(FamANDItoSR)
	decodeTable[0x003C] = decodeImmFam(FamORItoCCR)
	decodeTable[0x007C] = decodeImmFam(FamORItoSR)
	decodeTable[0x0A3C] = decodeImmFam(FamEORItoCCR)
	decodeTable[0x0A7C] = decodeImmFam(FamEORItoSR)
}

func decodeImmFam(fam Family) decodeFunc {
	return func(f fetcher, opcode uint16) *Instruction {
		imm := uint32(f.nextWord())
		return &Instruction{Family: fam, Imm: imm}
	}
}
