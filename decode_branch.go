package m68k

func init() {
	registerDecodeBcc()
	registerDecodeBRA()
	registerDecodeBSR()
	registerDecodeDBcc()
	registerDecodeJMP()
	registerDecodeJSR()
	registerDecodeRTS()
	registerDecodeRTE()
	registerDecodeRTR()
	registerDecodeScc()
}

// decodeBranchDisp resolves a Bcc/BRA/BSR displacement to an absolute
// target address at decode time: the extra extension word (if any) sits
// immediately after the opcode, at the same address the short 8-bit
// displacement would otherwise be relative to, so both forms share one
// base.
func decodeBranchDisp(f fetcher, dispByte uint16) int32 {
	base := int32(f.pc())
	disp := int32(int8(dispByte))
	if disp == 0 {
		disp = int32(int16(f.nextWord()))
	}
	return base + disp
}

func registerDecodeBcc() {
	for cc := uint16(2); cc < 16; cc++ {
		for disp := uint16(0); disp < 256; disp++ {
			opcode := 0x6000 | cc<<8 | disp
			decodeTable[opcode] = decodeBcc
		}
	}
}

func decodeBcc(f fetcher, opcode uint16) *Instruction {
	cc := uint8((opcode >> 8) & 0xF)
	target := decodeBranchDisp(f, opcode&0xFF)
	return &Instruction{Family: FamBcc, CC: cc, Disp: target}
}

func registerDecodeBRA() {
	for disp := uint16(0); disp < 256; disp++ {
		decodeTable[0x6000|disp] = decodeBRA
	}
}

func decodeBRA(f fetcher, opcode uint16) *Instruction {
	target := decodeBranchDisp(f, opcode&0xFF)
	return &Instruction{Family: FamBRA, Disp: target}
}

func registerDecodeBSR() {
	for disp := uint16(0); disp < 256; disp++ {
		decodeTable[0x6100|disp] = decodeBSR
	}
}

func decodeBSR(f fetcher, opcode uint16) *Instruction {
	target := decodeBranchDisp(f, opcode&0xFF)
	return &Instruction{Family: FamBSR, Disp: target}
}

func registerDecodeDBcc() {
	for cc := uint16(0); cc < 16; cc++ {
		for dn := uint16(0); dn < 8; dn++ {
			decodeTable[0x50C8|cc<<8|dn] = decodeDBcc
		}
	}
}

func decodeDBcc(f fetcher, opcode uint16) *Instruction {
	cc := uint8((opcode >> 8) & 0xF)
	dn := uint8(opcode & 7)
	base := int32(f.pc())
	disp := int32(int16(f.nextWord()))
	return &Instruction{Family: FamDBcc, CC: cc, Reg: dn, Disp: base + disp}
}

func registerDecodeJMP() {
	for mode := uint16(2); mode < 8; mode++ {
		if mode == 3 || mode == 4 {
			continue
		}
		for reg := uint16(0); reg < 8; reg++ {
			if mode == 7 && reg > 3 {
				continue
			}
			decodeTable[0x4EC0|mode<<3|reg] = decodeJMP
		}
	}
}

func decodeJMP(f fetcher, opcode uint16) *Instruction {
	mode := uint8((opcode >> 3) & 7)
	reg := uint8(opcode & 7)
	dst := decodeEA(f, mode, reg, Word)
	return &Instruction{Family: FamJMP, Dst: dst}
}

func registerDecodeJSR() {
	for mode := uint16(2); mode < 8; mode++ {
		if mode == 3 || mode == 4 {
			continue
		}
		for reg := uint16(0); reg < 8; reg++ {
			if mode == 7 && reg > 3 {
				continue
			}
			decodeTable[0x4E80|mode<<3|reg] = decodeJSR
		}
	}
}

func decodeJSR(f fetcher, opcode uint16) *Instruction {
	mode := uint8((opcode >> 3) & 7)
	reg := uint8(opcode & 7)
	dst := decodeEA(f, mode, reg, Word)
	return &Instruction{Family: FamJSR, Dst: dst}
}

func registerDecodeRTS() {
	decodeTable[0x4E75] = func(f fetcher, opcode uint16) *Instruction {
		return &Instruction{Family: FamRTS}
	}
}

func registerDecodeRTE() {
	decodeTable[0x4E73] = func(f fetcher, opcode uint16) *Instruction {
		return &Instruction{Family: FamRTE}
	}
}

func registerDecodeRTR() {
	decodeTable[0x4E77] = func(f fetcher, opcode uint16) *Instruction {
		return &Instruction{Family: FamRTR}
	}
}

func registerDecodeScc() {
	for cc := uint16(0); cc < 16; cc++ {
		for mode := uint16(0); mode < 8; mode++ {
			if mode == 1 {
				continue
			}
			for reg := uint16(0); reg < 8; reg++ {
				if mode == 7 && reg > 1 {
					continue
				}
				opcode := 0x50C0 | cc<<8 | mode<<3 | reg
				decodeTable[opcode] = decodeScc
			}
		}
	}
}

func decodeScc(f fetcher, opcode uint16) *Instruction {
	cc := uint8((opcode >> 8) & 0xF)
	mode := uint8((opcode >> 3) & 7)
	reg := uint8(opcode & 7)
	dst := decodeEA(f, mode, reg, Byte)
	return &Instruction{Family: FamScc, CC: cc, Dst: dst}
}
