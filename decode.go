package m68k

// Family identifies the mnemonic family of a decoded Instruction. Several
// families share an identical Operand shape (ADD/SUB/AND/OR/CMP all
// decode to Src/Dst operands plus a Reg) but differ in the ALU operation
// exec.go applies and the mnemonic disasm.go prints, so Family is kept as
// an explicit tag rather than re-derived from the operand shape.
type Family uint8

const (
	FamIllegal Family = iota
	FamMOVE
	FamMOVEA
	FamMOVEQ
	FamMOVEP
	FamLEA
	FamPEA
	FamMOVEM
	FamEXG
	FamSWAP
	FamADD
	FamADDtoEA
	FamADDA
	FamADDI
	FamADDQ
	FamADDX
	FamSUB
	FamSUBtoEA
	FamSUBA
	FamSUBI
	FamSUBQ
	FamSUBX
	FamCMP
	FamCMPA
	FamCMPI
	FamCMPM
	FamMULU
	FamMULS
	FamDIVU
	FamDIVS
	FamNEG
	FamNEGX
	FamCLR
	FamEXT
	FamCHK
	FamAND
	FamANDtoEA
	FamANDI
	FamOR
	FamORtoEA
	FamORI
	FamEOR
	FamEORI
	FamNOT
	FamTST
	FamTAS
	FamShiftReg
	FamShiftMem
	FamBTSTdyn
	FamBTSTstatic
	FamBCHGdyn
	FamBCHGstatic
	FamBCLRdyn
	FamBCLRstatic
	FamBSETdyn
	FamBSETstatic
	FamABCDreg
	FamABCDmem
	FamSBCDreg
	FamSBCDmem
	FamNBCD
	FamBcc
	FamBRA
	FamBSR
	FamDBcc
	FamJMP
	FamJSR
	FamRTS
	FamRTE
	FamRTR
	FamScc
	FamNOP
	FamSTOP
	FamRESET
	FamTRAP
	FamTRAPV
	FamLINK
	FamUNLK
	FamMOVEfromSR
	FamMOVEtoCCR
	FamMOVEtoSR
	FamMOVEtoUSP
	FamMOVEfromUSP
	FamANDItoCCR
	FamANDItoSR
	FamORItoCCR
	FamORItoSR
	FamEORItoCCR
	FamEORItoSR

	numFamilies
)

// Instruction is the fully-decoded, self-contained form of a single M68K
// instruction: every extension word (displacements, indices, immediates)
// has already been consumed from the instruction stream, so exec.go and
// disasm.go both render/run from this value alone without further stream
// reads. This is the shared decoded form spec.md §8 requires: Decode is
// the only place the instruction stream is read.
//
// Not every field is meaningful for every Family; see the decode_*.go
// file that builds a given family for which fields it populates.
type Instruction struct {
	Opcode uint16
	Family Family
	Size   Size
	Length uint16 // total encoded length in bytes, opcode word included

	Src Operand
	Dst Operand

	Imm     uint32 // immediate/quick data; STOP operand; ANDI/ORI/EORI to CCR/SR operand
	Reg     uint8  // primary register field (Dn/An/bit-number register, depending on Family)
	Reg2    uint8  // secondary register field (Ry in EXG/ADDX/SUBX/ABCD/SBCD/CMPM)
	CC      uint8  // condition code (Bcc/DBcc/Scc)
	Disp    int32  // resolved target address (Bcc/BRA/BSR/DBcc); displacement (LINK/MOVEP)
	RegList uint16 // MOVEM register mask
}

// decodeFunc consumes any trailing extension words from f (whose opcode
// word has already been read as `opcode`) and returns the decoded
// Instruction. It must not touch CPU register or bus state beyond what f
// exposes: decoding is a pure function of the instruction stream.
type decodeFunc func(f fetcher, opcode uint16) *Instruction

// decodeTable is a 64K-entry lookup table indexed by the first
// instruction word, populated the same way the teacher's opcodeTable is:
// nested loops in per-family decode_*.go files walking every valid
// mode/register/size combination. A nil entry decodes to FamIllegal.
var decodeTable [65536]decodeFunc

// fetcher supplies the words of an instruction stream to Decode. The
// cpuFetcher adapter implements it over a live *CPU and its Bus (during
// Step); a
// disassembler over a static byte image implements it over a slice, with
// no CPU or bus involved at all.
type fetcher interface {
	nextWord() uint16
	nextLong() uint32
	pc() uint32 // address of the next word fetcher will hand out
}

// Decode reads one instruction from f and returns its decoded form. The
// returned Instruction.Length reflects exactly how many bytes f consumed.
func Decode(f fetcher) *Instruction {
	start := f.pc()
	opcode := f.nextWord()

	var instr *Instruction
	if fn := decodeTable[opcode]; fn != nil {
		instr = fn(f, opcode)
	} else {
		instr = &Instruction{Opcode: opcode, Family: FamIllegal}
	}
	instr.Opcode = opcode
	instr.Length = uint16(f.pc() - start)
	return instr
}

// cpuFetcher adapts a live CPU (and its Bus) to the fetcher interface
// used by Decode, so CPU.Step can decode directly off the bus the same
// way the teacher's inline fetch calls did.
type cpuFetcher struct{ c *CPU }

func (cf cpuFetcher) nextWord() uint16 { return cf.c.fetchPC() }
func (cf cpuFetcher) nextLong() uint32 { return cf.c.fetchPCLong() }
func (cf cpuFetcher) pc() uint32       { return cf.c.reg.PC }

// byteFetcher decodes out of a static byte slice (big-endian, as the bus
// always is), for disassembly of an image that isn't backed by a running
// CPU. Reads past the end of buf return zero words, matching an
// unmapped/open bus rather than panicking.
type byteFetcher struct {
	buf  []byte
	base uint32
	off  uint32
}

// newByteFetcher returns a fetcher over buf, whose first byte is at
// address base.
func newByteFetcher(buf []byte, base uint32) *byteFetcher {
	return &byteFetcher{buf: buf, base: base}
}

func (bf *byteFetcher) nextWord() uint16 {
	var hi, lo byte
	if int(bf.off) < len(bf.buf) {
		hi = bf.buf[bf.off]
	}
	if int(bf.off)+1 < len(bf.buf) {
		lo = bf.buf[bf.off+1]
	}
	bf.off += 2
	return uint16(hi)<<8 | uint16(lo)
}

func (bf *byteFetcher) nextLong() uint32 {
	hi := bf.nextWord()
	lo := bf.nextWord()
	return uint32(hi)<<16 | uint32(lo)
}

func (bf *byteFetcher) pc() uint32 { return bf.base + bf.off }

// decodeEA parses a standard mode/register effective-address field from
// f, consuming whatever extension word the mode requires. It mirrors the
// teacher's resolveEA, but records the raw addressing data into an
// Operand instead of resolving a live address, since register contents
// (and therefore memory addresses for An-relative modes) are not known
// until execution.
func decodeEA(f fetcher, mode, reg uint8, sz Size) Operand {
	switch mode {
	case 0:
		return Operand{Mode: ModeDataReg, Reg: reg}
	case 1:
		return Operand{Mode: ModeAddrReg, Reg: reg}
	case 2:
		return Operand{Mode: ModeIndirect, Reg: reg}
	case 3:
		return Operand{Mode: ModePostInc, Reg: reg}
	case 4:
		return Operand{Mode: ModePreDec, Reg: reg}
	case 5:
		disp := int16(f.nextWord())
		return Operand{Mode: ModeDisp, Reg: reg, Disp: int32(disp)}
	case 6:
		ext := f.nextWord()
		return Operand{Mode: ModeIndex, Reg: reg, Ext: ext}
	case 7:
		switch reg {
		case 0:
			addr := int16(f.nextWord())
			return Operand{Mode: ModeAbsW, Addr: uint32(int32(addr))}
		case 1:
			return Operand{Mode: ModeAbsL, Addr: f.nextLong()}
		case 2:
			pc := f.pc()
			disp := int16(f.nextWord())
			return Operand{Mode: ModePCDisp, Disp: int32(pc) + int32(disp)}
		case 3:
			pc := f.pc()
			ext := f.nextWord()
			return Operand{Mode: ModePCIndex, Disp: int32(pc), Ext: ext}
		case 4:
			switch sz {
			case Byte:
				return Operand{Mode: ModeImmediate, Imm: uint32(f.nextWord() & 0xFF)}
			case Word:
				return Operand{Mode: ModeImmediate, Imm: uint32(f.nextWord())}
			case Long:
				return Operand{Mode: ModeImmediate, Imm: f.nextLong()}
			}
		}
	}
	return Operand{Mode: ModeDataReg, Reg: reg}
}

// decodeImm fetches a size-dependent immediate value the way ADDI/SUBI/
// CMPI/ANDI/ORI/EORI do: a byte or word immediate occupies one extension
// word, a long immediate occupies two.
func decodeImm(f fetcher, sz Size) uint32 {
	if sz == Long {
		return f.nextLong()
	}
	return uint32(f.nextWord()) & sz.Mask()
}
