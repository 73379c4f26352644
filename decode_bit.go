package m68k

func init() {
	registerDecodeBTST()
	registerDecodeBCHG()
	registerDecodeBCLR()
	registerDecodeBSET()
}

// decodeBitDynShape decodes "Dn,<ea>" bit-number-in-register forms
// shared by BTST/BCHG/BCLR/BSET.
func decodeBitDynShape(fam Family, maxReg7 uint8) decodeFunc {
	return func(f fetcher, opcode uint16) *Instruction {
		dn := uint8((opcode >> 9) & 7)
		mode := uint8((opcode >> 3) & 7)
		reg := uint8(opcode & 7)
		sz := Long
		if mode != 0 {
			sz = Byte
		}
		dst := decodeEA(f, mode, reg, sz)
		return &Instruction{Family: fam, Size: sz, Dst: dst, Reg: dn}
	}
}

// decodeBitStaticShape decodes "#imm,<ea>" bit-number-in-extension-word
// forms.
func decodeBitStaticShape(fam Family) decodeFunc {
	return func(f fetcher, opcode uint16) *Instruction {
		bitNum := uint32(f.nextWord() & 0xFF)
		mode := uint8((opcode >> 3) & 7)
		reg := uint8(opcode & 7)
		sz := Long
		if mode != 0 {
			sz = Byte
		}
		dst := decodeEA(f, mode, reg, sz)
		return &Instruction{Family: fam, Size: sz, Dst: dst, Imm: bitNum}
	}
}

func registerBitDynTable(base uint16, fam Family) {
	for dn := uint16(0); dn < 8; dn++ {
		for mode := uint16(0); mode < 8; mode++ {
			if mode == 1 {
				continue
			}
			for reg := uint16(0); reg < 8; reg++ {
				if mode == 7 && reg > 1 {
					continue
				}
				// BTST additionally admits mode-7 sub-modes 2-4 (PC-relative
				// and immediate); registerDecodeBTST adds those slots.
				if mode == 7 && reg > 4 {
					continue
				}
				opcode := base | dn<<9 | mode<<3 | reg
				decodeTable[opcode] = decodeBitDynShape(fam, 1)
			}
		}
	}
}

func registerBitStaticTable(base uint16, fam Family) {
	for mode := uint16(0); mode < 8; mode++ {
		if mode == 1 {
			continue
		}
		for reg := uint16(0); reg < 8; reg++ {
			if mode == 7 && reg > 1 {
				continue
			}
			opcode := base | mode<<3 | reg
			decodeTable[opcode] = decodeBitStaticShape(fam)
		}
	}
}

func registerDecodeBTST() {
	registerBitDynTable(0x0100, FamBTSTdyn)
	for dn := uint16(0); dn < 8; dn++ {
		for reg := uint16(2); reg <= 4; reg++ {
			decodeTable[0x0100|dn<<9|7<<3|reg] = decodeBitDynShape(FamBTSTdyn, 1)
		}
	}
	// BTST's static and dynamic dynamic-table loops admit reg>3 (immediate
	// source) only through the dynamic opcode space; the static form is
	// narrower (reg>3 excluded) per the teacher's registerBTST.
	for mode := uint16(0); mode < 8; mode++ {
		if mode == 1 {
			continue
		}
		for reg := uint16(0); reg < 8; reg++ {
			if mode == 7 && reg > 3 {
				continue
			}
			opcode := 0x0800 | mode<<3 | reg
			decodeTable[opcode] = decodeBitStaticShape(FamBTSTstatic)
		}
	}
}

func registerDecodeBCHG() {
	registerBitDynTable(0x0140, FamBCHGdyn)
	registerBitStaticTable(0x0840, FamBCHGstatic)
}

func registerDecodeBCLR() {
	registerBitDynTable(0x0180, FamBCLRdyn)
	registerBitStaticTable(0x0880, FamBCLRstatic)
}

func registerDecodeBSET() {
	registerBitDynTable(0x01C0, FamBSETdyn)
	registerBitStaticTable(0x08C0, FamBSETstatic)
}
