package m68k

func init() {
	registerDecodeABCD()
	registerDecodeSBCD()
	registerDecodeNBCD()
}

func registerDecodeABCD() {
	for rx := uint16(0); rx < 8; rx++ {
		for ry := uint16(0); ry < 8; ry++ {
			decodeTable[0xC100|rx<<9|ry] = decodeRegPairShape(FamABCDreg, Byte)
			decodeTable[0xC108|rx<<9|ry] = decodeRegPairMemShape(FamABCDmem, Byte)
		}
	}
}

func registerDecodeSBCD() {
	for rx := uint16(0); rx < 8; rx++ {
		for ry := uint16(0); ry < 8; ry++ {
			decodeTable[0x8100|rx<<9|ry] = decodeRegPairShape(FamSBCDreg, Byte)
			decodeTable[0x8108|rx<<9|ry] = decodeRegPairMemShape(FamSBCDmem, Byte)
		}
	}
}

func registerDecodeNBCD() {
	for mode := uint16(0); mode < 8; mode++ {
		if mode == 1 {
			continue
		}
		for reg := uint16(0); reg < 8; reg++ {
			if mode == 7 && reg > 1 {
				continue
			}
			decodeTable[0x4800|mode<<3|reg] = decodeEAOnlyShape(FamNBCD, Byte)
		}
	}
}
