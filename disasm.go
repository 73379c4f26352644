package m68k

import "fmt"

// Disassemble renders instr as standard 68000 assembly syntax. It reads
// only the decoded Instruction and consumes no further instruction
// stream, matching the round-trip law that disassembly is a pure
// function of the decoded form.
func Disassemble(instr *Instruction) string {
	mn, ops := disasmParts(instr)
	if ops == "" {
		return mn
	}
	return mn + " " + ops
}

// DisassembleBytes decodes one instruction out of buf (whose first byte
// is at address base) and renders it, returning the rendered text
// alongside the number of bytes consumed. It is the standalone entry
// point spec.md §4.6 describes: no CPU or bus is involved.
func DisassembleBytes(buf []byte, base uint32) (text string, length uint16) {
	f := newByteFetcher(buf, base)
	instr := Decode(f)
	return Disassemble(instr), instr.Length
}

// disasmParts builds the mnemonic and operand-list halves separately so
// Disassemble can skip the space for zero-operand forms (NOP, RTS, ...).
func disasmParts(instr *Instruction) (mnemonic, operands string) {
	sz := instr.Size

	switch instr.Family {
	case FamIllegal:
		return "dc.w", fmt.Sprintf("$%04X", instr.Opcode)

	case FamMOVE:
		return "move" + sz.suffix(), operand(instr.Src, sz) + "," + operand(instr.Dst, sz)
	case FamMOVEA:
		return "movea" + sz.suffix(), operand(instr.Src, sz) + "," + addrReg(instr.Reg)
	case FamMOVEQ:
		return "moveq", fmt.Sprintf("#%d,%s", int32(instr.Imm), dataReg(instr.Reg))
	case FamMOVEP:
		dn, an := dataReg(instr.Reg), addrReg(instr.Reg2)
		ea := fmt.Sprintf("%d(%s)", instr.Disp, an)
		if instr.Imm&2 != 0 { // opmode 6/7: register to memory
			return "movep" + sz.suffix(), dn + "," + ea
		}
		return "movep" + sz.suffix(), ea + "," + dn
	case FamLEA:
		return "lea", operand(instr.Src, Long) + "," + addrReg(instr.Reg)
	case FamPEA:
		return "pea", operand(instr.Src, Long)
	case FamMOVEM:
		list := movemList(instr.RegList)
		if instr.Reg == 1 { // memory to register
			return "movem" + sz.suffix(), operand(instr.Dst, sz) + "," + list
		}
		return "movem" + sz.suffix(), list + "," + operand(instr.Dst, sz)
	case FamEXG:
		return "exg", fmt.Sprintf("%s,%s", exgOperand(instr.Imm, instr.Reg), exgOperand2(instr.Imm, instr.Reg2))
	case FamSWAP:
		return "swap", dataReg(instr.Reg)

	case FamADD:
		return "add" + sz.suffix(), operand(instr.Src, sz) + "," + dataReg(instr.Reg)
	case FamADDtoEA:
		return "add" + sz.suffix(), dataReg(instr.Reg) + "," + operand(instr.Dst, sz)
	case FamADDA:
		return "adda" + sz.suffix(), operand(instr.Src, sz) + "," + addrReg(instr.Reg)
	case FamADDI:
		return "addi" + sz.suffix(), immediate(instr.Imm, sz) + "," + operand(instr.Dst, sz)
	case FamADDQ:
		return "addq" + sz.suffix(), fmt.Sprintf("#%d,%s", instr.Imm, operand(instr.Dst, sz))
	case FamADDX:
		return "addx" + sz.suffix(), regPair(instr, sz)
	case FamSUB:
		return "sub" + sz.suffix(), operand(instr.Src, sz) + "," + dataReg(instr.Reg)
	case FamSUBtoEA:
		return "sub" + sz.suffix(), dataReg(instr.Reg) + "," + operand(instr.Dst, sz)
	case FamSUBA:
		return "suba" + sz.suffix(), operand(instr.Src, sz) + "," + addrReg(instr.Reg)
	case FamSUBI:
		return "subi" + sz.suffix(), immediate(instr.Imm, sz) + "," + operand(instr.Dst, sz)
	case FamSUBQ:
		return "subq" + sz.suffix(), fmt.Sprintf("#%d,%s", instr.Imm, operand(instr.Dst, sz))
	case FamSUBX:
		return "subx" + sz.suffix(), regPair(instr, sz)
	case FamCMP:
		return "cmp" + sz.suffix(), operand(instr.Src, sz) + "," + dataReg(instr.Reg)
	case FamCMPA:
		return "cmpa" + sz.suffix(), operand(instr.Src, sz) + "," + addrReg(instr.Reg)
	case FamCMPI:
		return "cmpi" + sz.suffix(), immediate(instr.Imm, sz) + "," + operand(instr.Dst, sz)
	case FamCMPM:
		return "cmpm" + sz.suffix(), fmt.Sprintf("(%s)+,(%s)+", addrReg(instr.Reg2), addrReg(instr.Reg))
	case FamMULU:
		return "mulu", operand(instr.Src, Word) + "," + dataReg(instr.Reg)
	case FamMULS:
		return "muls", operand(instr.Src, Word) + "," + dataReg(instr.Reg)
	case FamDIVU:
		return "divu", operand(instr.Src, Word) + "," + dataReg(instr.Reg)
	case FamDIVS:
		return "divs", operand(instr.Src, Word) + "," + dataReg(instr.Reg)
	case FamNEG:
		return "neg" + sz.suffix(), operand(instr.Dst, sz)
	case FamNEGX:
		return "negx" + sz.suffix(), operand(instr.Dst, sz)
	case FamCLR:
		return "clr" + sz.suffix(), operand(instr.Dst, sz)
	case FamEXT:
		return "ext" + sz.suffix(), dataReg(instr.Reg)
	case FamCHK:
		return "chk", operand(instr.Src, Word) + "," + dataReg(instr.Reg)

	case FamAND:
		return "and" + sz.suffix(), operand(instr.Src, sz) + "," + dataReg(instr.Reg)
	case FamANDtoEA:
		return "and" + sz.suffix(), dataReg(instr.Reg) + "," + operand(instr.Dst, sz)
	case FamANDI:
		return "andi" + sz.suffix(), immediate(instr.Imm, sz) + "," + operand(instr.Dst, sz)
	case FamOR:
		return "or" + sz.suffix(), operand(instr.Src, sz) + "," + dataReg(instr.Reg)
	case FamORtoEA:
		return "or" + sz.suffix(), dataReg(instr.Reg) + "," + operand(instr.Dst, sz)
	case FamORI:
		return "ori" + sz.suffix(), immediate(instr.Imm, sz) + "," + operand(instr.Dst, sz)
	case FamEOR:
		return "eor" + sz.suffix(), dataReg(instr.Reg) + "," + operand(instr.Dst, sz)
	case FamEORI:
		return "eori" + sz.suffix(), immediate(instr.Imm, sz) + "," + operand(instr.Dst, sz)
	case FamNOT:
		return "not" + sz.suffix(), operand(instr.Dst, sz)
	case FamTST:
		return "tst" + sz.suffix(), operand(instr.Dst, sz)
	case FamTAS:
		return "tas", operand(instr.Dst, Byte)

	case FamShiftReg:
		return shiftMnemonic(instr) + sz.suffix(), shiftRegOperands(instr)
	case FamShiftMem:
		return shiftMnemonic(instr) + ".w", operand(instr.Dst, Word)

	case FamBTSTdyn:
		return "btst", dataReg(instr.Reg) + "," + operand(instr.Dst, sz)
	case FamBTSTstatic:
		return "btst", fmt.Sprintf("#%d,%s", instr.Imm, operand(instr.Dst, sz))
	case FamBCHGdyn:
		return "bchg", dataReg(instr.Reg) + "," + operand(instr.Dst, sz)
	case FamBCHGstatic:
		return "bchg", fmt.Sprintf("#%d,%s", instr.Imm, operand(instr.Dst, sz))
	case FamBCLRdyn:
		return "bclr", dataReg(instr.Reg) + "," + operand(instr.Dst, sz)
	case FamBCLRstatic:
		return "bclr", fmt.Sprintf("#%d,%s", instr.Imm, operand(instr.Dst, sz))
	case FamBSETdyn:
		return "bset", dataReg(instr.Reg) + "," + operand(instr.Dst, sz)
	case FamBSETstatic:
		return "bset", fmt.Sprintf("#%d,%s", instr.Imm, operand(instr.Dst, sz))

	case FamABCDreg:
		return "abcd", fmt.Sprintf("%s,%s", dataReg(instr.Reg2), dataReg(instr.Reg))
	case FamABCDmem:
		return "abcd", fmt.Sprintf("-(%s),-(%s)", addrReg(instr.Reg2), addrReg(instr.Reg))
	case FamSBCDreg:
		return "sbcd", fmt.Sprintf("%s,%s", dataReg(instr.Reg2), dataReg(instr.Reg))
	case FamSBCDmem:
		return "sbcd", fmt.Sprintf("-(%s),-(%s)", addrReg(instr.Reg2), addrReg(instr.Reg))
	case FamNBCD:
		return "nbcd", operand(instr.Dst, Byte)

	case FamBcc:
		return "b" + conditionMnemonics[instr.CC], fmt.Sprintf("$%06X", uint32(instr.Disp))
	case FamBRA:
		return "bra", fmt.Sprintf("$%06X", uint32(instr.Disp))
	case FamBSR:
		return "bsr", fmt.Sprintf("$%06X", uint32(instr.Disp))
	case FamDBcc:
		return "db" + conditionMnemonics[instr.CC], fmt.Sprintf("%s,$%06X", dataReg(instr.Reg), uint32(instr.Disp))
	case FamJMP:
		return "jmp", operand(instr.Dst, Long)
	case FamJSR:
		return "jsr", operand(instr.Dst, Long)
	case FamRTS:
		return "rts", ""
	case FamRTE:
		return "rte", ""
	case FamRTR:
		return "rtr", ""
	case FamScc:
		return "s" + conditionMnemonics[instr.CC], operand(instr.Dst, Byte)

	case FamNOP:
		return "nop", ""
	case FamSTOP:
		return "stop", fmt.Sprintf("#$%04X", instr.Imm)
	case FamRESET:
		return "reset", ""
	case FamTRAP:
		return "trap", fmt.Sprintf("#%d", instr.Imm)
	case FamTRAPV:
		return "trapv", ""
	case FamLINK:
		return "link", fmt.Sprintf("%s,#%d", addrReg(instr.Reg), instr.Disp)
	case FamUNLK:
		return "unlk", addrReg(instr.Reg)
	case FamMOVEfromSR:
		return "move", "sr," + operand(instr.Dst, Word)
	case FamMOVEtoCCR:
		return "move", operand(instr.Src, Word) + ",ccr"
	case FamMOVEtoSR:
		return "move", operand(instr.Src, Word) + ",sr"
	case FamMOVEtoUSP:
		return "move", addrReg(instr.Reg) + ",usp"
	case FamMOVEfromUSP:
		return "move", "usp," + addrReg(instr.Reg)
	case FamANDItoCCR:
		return "andi", fmt.Sprintf("#$%02X,ccr", instr.Imm&0xFF)
	case FamANDItoSR:
		return "andi", fmt.Sprintf("#$%04X,sr", instr.Imm)
	case FamORItoCCR:
		return "ori", fmt.Sprintf("#$%02X,ccr", instr.Imm&0xFF)
	case FamORItoSR:
		return "ori", fmt.Sprintf("#$%04X,sr", instr.Imm)
	case FamEORItoCCR:
		return "eori", fmt.Sprintf("#$%02X,ccr", instr.Imm&0xFF)
	case FamEORItoSR:
		return "eori", fmt.Sprintf("#$%04X,sr", instr.Imm)
	}

	return fmt.Sprintf("dc.w $%04X", instr.Opcode), ""
}

func dataReg(n uint8) string { return fmt.Sprintf("d%d", n) }
func addrReg(n uint8) string {
	if n == 7 {
		return "sp"
	}
	return fmt.Sprintf("a%d", n)
}

func immediate(v uint32, sz Size) string {
	switch sz {
	case Byte:
		return fmt.Sprintf("#$%02X", v&0xFF)
	case Word:
		return fmt.Sprintf("#$%04X", v&0xFFFF)
	default:
		return fmt.Sprintf("#$%08X", v)
	}
}

// operand renders a decoded Operand in standard 68000 syntax. It never
// touches CPU or bus state: every field it needs (displacement, brief
// extension word, absolute address, immediate) was already captured by
// decodeEA at decode time.
func operand(o Operand, sz Size) string {
	switch o.Mode {
	case ModeDataReg:
		return dataReg(o.Reg)
	case ModeAddrReg:
		return addrReg(o.Reg)
	case ModeIndirect:
		return fmt.Sprintf("(%s)", addrReg(o.Reg))
	case ModePostInc:
		return fmt.Sprintf("(%s)+", addrReg(o.Reg))
	case ModePreDec:
		return fmt.Sprintf("-(%s)", addrReg(o.Reg))
	case ModeDisp:
		return fmt.Sprintf("%d(%s)", o.Disp, addrReg(o.Reg))
	case ModeIndex:
		return fmt.Sprintf("%s(%s,%s)", dispHex(int8(o.Ext&0xFF)), addrReg(o.Reg), extIndexReg(o.Ext))
	case ModeAbsW:
		return fmt.Sprintf("$%04X.w", uint16(o.Addr))
	case ModeAbsL:
		return fmt.Sprintf("$%08X.l", o.Addr)
	case ModePCDisp:
		return fmt.Sprintf("$%06X(pc)", uint32(o.Disp))
	case ModePCIndex:
		return fmt.Sprintf("%s(pc,%s)", dispHex(int8(o.Ext&0xFF)), extIndexReg(o.Ext))
	case ModeImmediate:
		return immediate(o.Imm, sz)
	}
	return "?"
}

func dispHex(d int8) string {
	if d < 0 {
		return fmt.Sprintf("-$%X", -int16(d))
	}
	return fmt.Sprintf("$%X", d)
}

// extIndexReg renders a brief extension word's index register field,
// per the D/A | Reg(3) | W/L layout calcIndex decodes at execution time.
func extIndexReg(ext uint16) string {
	xn := (ext >> 12) & 7
	var name string
	if ext&0x8000 != 0 {
		name = addrReg(uint8(xn))
	} else {
		name = dataReg(uint8(xn))
	}
	if ext&0x0800 == 0 {
		return name + ".w"
	}
	return name + ".l"
}

// movemList renders a MOVEM register mask as a condensed range list
// (e.g. "d0-d3/d7/a0-a2"), matching how assemblers echo back a register
// list rather than printing all sixteen bit positions individually.
func movemList(mask uint16) string {
	names := make([]string, 16)
	for i := 0; i < 8; i++ {
		names[i] = dataReg(uint8(i))
		names[i+8] = fmt.Sprintf("a%d", i)
	}

	var out string
	for i := 0; i < 16; {
		if mask&(1<<uint(i)) == 0 {
			i++
			continue
		}
		start := i
		for i < 16 && mask&(1<<uint(i)) != 0 {
			i++
		}
		end := i - 1
		if out != "" {
			out += "/"
		}
		if end == start {
			out += names[start]
		} else {
			out += names[start] + "-" + names[end]
		}
	}
	if out == "" {
		return "#$0000"
	}
	return out
}

// exgOperand and exgOperand2 render EXG's two register operands. Imm
// carries the opmode decodeEXG captured: 0x08 selects Dx,Dy; 0x09
// selects Ax,Ay; 0x11 selects Dx,Ay.
func exgOperand(opmode uint32, rx uint8) string {
	if opmode == 0x09 {
		return addrReg(rx)
	}
	return dataReg(rx)
}

func exgOperand2(opmode uint32, ry uint8) string {
	if opmode == 0x08 {
		return dataReg(ry)
	}
	return addrReg(ry)
}

// regPair renders ADDX/SUBX's two operand shapes: the register-direct
// form (Dy,Dx) and the predecrement-memory form, distinguished by
// whether decode populated Src/Dst.
func regPair(instr *Instruction, sz Size) string {
	if instr.Src.Mode == ModePreDec {
		return fmt.Sprintf("-(%s),-(%s)", addrReg(instr.Reg2), addrReg(instr.Reg))
	}
	return fmt.Sprintf("%s,%s", dataReg(instr.Reg2), dataReg(instr.Reg))
}

// shiftMnemonic picks ASL/ASR/LSL/LSR/ROL/ROR/ROXL/ROXR from the shift
// type field (Reg2) and direction bit, matching the layout decodeShiftReg/
// decodeShiftMem pack into the instruction.
func shiftMnemonic(instr *Instruction) string {
	left := instr.Imm&(1<<16) != 0

	var base string
	switch instr.Reg2 {
	case 0:
		base = "as"
	case 1:
		base = "ls"
	case 2:
		base = "rox"
	case 3:
		base = "ro"
	}
	if left {
		return base + "l"
	}
	return base + "r"
}

// shiftRegOperands renders the register-form shift/rotate's count
// operand: either an immediate 1-8 count or a data register, per the
// i/r bit decodeShiftReg packs into bit 8 of Imm.
func shiftRegOperands(instr *Instruction) string {
	cnt := instr.Imm & 0xFF
	if instr.Imm&(1<<8) != 0 {
		return fmt.Sprintf("%s,%s", dataReg(uint8(cnt)), dataReg(instr.Reg))
	}
	if cnt == 0 {
		cnt = 8
	}
	return fmt.Sprintf("#%d,%s", cnt, dataReg(instr.Reg))
}
