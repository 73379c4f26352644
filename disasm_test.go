package m68k

import "testing"

func TestDisassemble(t *testing.T) {
	cases := []struct {
		name string
		hex  []byte
		want string
	}{
		{"nop", []byte{0x4E, 0x71}, "nop"},
		{"rts", []byte{0x4E, 0x75}, "rts"},
		{"move.l d1,d2", []byte{0x24, 0x01}, "move.l d1,d2"},
		{"moveq", []byte{0x7A, 0xFF}, "moveq #-1,d5"},
		{"lea", []byte{0x43, 0xE8, 0x00, 0x04}, "lea 4(a0),a1"},
		{"movem.l predec", []byte{0x48, 0xE7, 0xC0, 0x80}, "movem.l d7/a6-a7,-(sp)"},
		{"bra.s", []byte{0x60, 0x08}, "bra $00100A"},
		{"dbf", []byte{0x51, 0xC8, 0xFF, 0xFE}, "dbf d0,$001000"},
		{"addq.w", []byte{0x50, 0x40}, "addq.w #8,d0"},
		{"trap", []byte{0x4E, 0x4F}, "trap #15"},
		{"illegal opcode", []byte{0x4A, 0xFC}, "dc.w $4AFC"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, _ := DisassembleBytes(tc.hex, 0x1000)
			if got != tc.want {
				t.Errorf("Disassemble(%x) = %q, want %q", tc.hex, got, tc.want)
			}
		})
	}
}

// TestDisassembleIsPureFunctionOfInstruction verifies the round-trip law
// from spec.md §8: disassemble(decode(...)) depends only on the decoded
// Instruction, not on any residual stream or CPU state.
func TestDisassembleIsPureFunctionOfInstruction(t *testing.T) {
	hex := []byte{0x24, 0x01} // move.l d1,d2
	f1 := newByteFetcher(hex, 0x2000)
	instr1 := Decode(f1)
	f2 := newByteFetcher(hex, 0x4000) // different base address
	instr1Copy := *instr1
	instr2 := Decode(f2)

	if got1, got2 := Disassemble(&instr1Copy), Disassemble(instr2); got1 != got2 {
		t.Errorf("Disassemble is not base-address-independent: %q vs %q", got1, got2)
	}
}

func TestDisassembleLengthMatchesDecode(t *testing.T) {
	hex := []byte{0x48, 0xE7, 0xC0, 0x80}
	_, length := DisassembleBytes(hex, 0)
	if length != 4 {
		t.Errorf("length = %d, want 4", length)
	}
}
