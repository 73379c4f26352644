package m68k

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// decodeBytes runs Decode over a literal instruction stream, the same
// way disassembly and the SingleStepTests runner do.
func decodeBytes(t *testing.T, words ...uint16) *Instruction {
	t.Helper()
	buf := make([]byte, len(words)*2)
	for i, w := range words {
		buf[i*2] = byte(w >> 8)
		buf[i*2+1] = byte(w)
	}
	return Decode(newByteFetcher(buf, 0x1000))
}

func TestDecodeMOVE(t *testing.T) {
	// move.l d1,d2
	instr := decodeBytes(t, 0x2401)
	want := &Instruction{
		Opcode: 0x2401,
		Family: FamMOVE,
		Size:   Long,
		Length: 2,
		Src:    Operand{Mode: ModeDataReg, Reg: 1},
		Dst:    Operand{Mode: ModeDataReg, Reg: 2},
	}
	if diff := cmp.Diff(want, instr); diff != "" {
		t.Errorf("decode mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeMOVEWithDisplacement(t *testing.T) {
	// move.w d16(a3),d1 — extension word 0x0010 (disp=16)
	opcode := uint16(0x3000 | 1<<9 | 5<<3 | 3)
	instr := decodeBytes(t, opcode, 0x0010)
	want := &Instruction{
		Opcode: opcode,
		Family: FamMOVE,
		Size:   Word,
		Length: 4,
		Src:    Operand{Mode: ModeDisp, Reg: 3, Disp: 16},
		Dst:    Operand{Mode: ModeDataReg, Reg: 1},
	}
	if diff := cmp.Diff(want, instr); diff != "" {
		t.Errorf("decode mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeBRA(t *testing.T) {
	// bra.s +8, decoded at 0x1000: target = 0x1002 + 8 = 0x100A
	instr := decodeBytes(t, 0x6008)
	if instr.Family != FamBRA {
		t.Fatalf("Family = %v, want FamBRA", instr.Family)
	}
	if instr.Disp != 0x100A {
		t.Errorf("Disp = 0x%X, want 0x100A", instr.Disp)
	}
	if instr.Length != 2 {
		t.Errorf("Length = %d, want 2", instr.Length)
	}
}

func TestDecodeBRAWordDisplacement(t *testing.T) {
	// bra.w with a zero byte-displacement selects the word extension.
	instr := decodeBytes(t, 0x6000, 0x0100)
	if instr.Family != FamBRA {
		t.Fatalf("Family = %v, want FamBRA", instr.Family)
	}
	if instr.Disp != 0x1102 {
		t.Errorf("Disp = 0x%X, want 0x1102", instr.Disp)
	}
	if instr.Length != 4 {
		t.Errorf("Length = %d, want 4", instr.Length)
	}
}

func TestDecodeDBcc(t *testing.T) {
	// dbf d0,-2 (classic tight loop: branch back to itself)
	instr := decodeBytes(t, 0x51C8, 0xFFFE)
	if instr.Family != FamDBcc {
		t.Fatalf("Family = %v, want FamDBcc", instr.Family)
	}
	if instr.CC != 1 {
		t.Errorf("CC = %d, want 1 (false)", instr.CC)
	}
	if instr.Disp != 0x1000 {
		t.Errorf("Disp = 0x%X, want 0x1000", instr.Disp)
	}
}

func TestDecodeMOVEM(t *testing.T) {
	// movem.l <list>,-(sp) — the register mask is stored raw; bit0=D0
	// through bit15=A7 regardless of addressing mode.
	instr := decodeBytes(t, 0x48E7, 0xC080)
	want := &Instruction{
		Opcode:  0x48E7,
		Family:  FamMOVEM,
		Size:    Long,
		Length:  4,
		Dst:     Operand{Mode: ModePreDec, Reg: 7},
		RegList: 0xC080,
	}
	if diff := cmp.Diff(want, instr); diff != "" {
		t.Errorf("decode mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeIllegalWord(t *testing.T) {
	// 0x4AFC is the dedicated ILLEGAL instruction opcode.
	instr := decodeBytes(t, 0x4AFC)
	if instr.Family != FamIllegal {
		t.Errorf("Family = %v, want FamIllegal", instr.Family)
	}
}

func TestDecodeLengthMatchesConsumedBytes(t *testing.T) {
	// lea d16(a0),a1 consumes one extension word beyond the opcode.
	instr := decodeBytes(t, 0x43E8, 0x0004)
	if instr.Length != 4 {
		t.Errorf("Length = %d, want 4", instr.Length)
	}
}
