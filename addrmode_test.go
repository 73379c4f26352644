package m68k

import "testing"

func newResolveCPU() (*CPU, *testBus) {
	bus := &testBus{}
	cpu := &CPU{bus: bus, variant: VariantMC68000}
	cpu.SetState(Registers{SR: 0x2700, SSP: 0x10000})
	return cpu, bus
}

func TestOperandResolvePostIncrement(t *testing.T) {
	cpu, _ := newResolveCPU()
	cpu.reg.A[0] = 0x2000

	o := Operand{Mode: ModePostInc, Reg: 0}
	e := o.resolve(cpu, Long)
	if e.addr != 0x2000 {
		t.Errorf("addr = 0x%X, want 0x2000", e.addr)
	}
	if cpu.reg.A[0] != 0x2004 {
		t.Errorf("A0 = 0x%X, want 0x2004 after Long post-increment", cpu.reg.A[0])
	}
}

func TestOperandResolvePostIncrementByteSP(t *testing.T) {
	// (A7)+ with Byte size still advances SP by 2 (stack alignment rule).
	cpu, _ := newResolveCPU()
	cpu.reg.A[7] = 0x3000

	o := Operand{Mode: ModePostInc, Reg: 7}
	o.resolve(cpu, Byte)
	if cpu.reg.A[7] != 0x3002 {
		t.Errorf("A7 = 0x%X, want 0x3002", cpu.reg.A[7])
	}
}

func TestOperandResolvePreDecrement(t *testing.T) {
	cpu, _ := newResolveCPU()
	cpu.reg.A[1] = 0x4000

	o := Operand{Mode: ModePreDec, Reg: 1}
	e := o.resolve(cpu, Word)
	if cpu.reg.A[1] != 0x3FFE {
		t.Errorf("A1 = 0x%X, want 0x3FFE", cpu.reg.A[1])
	}
	if e.addr != 0x3FFE {
		t.Errorf("addr = 0x%X, want 0x3FFE", e.addr)
	}
}

func TestOperandResolvePreDecrementByteSP(t *testing.T) {
	cpu, _ := newResolveCPU()
	cpu.reg.A[7] = 0x3000

	o := Operand{Mode: ModePreDec, Reg: 7}
	o.resolve(cpu, Byte)
	if cpu.reg.A[7] != 0x2FFE {
		t.Errorf("A7 = 0x%X, want 0x2FFE", cpu.reg.A[7])
	}
}

func TestOperandResolveIndexedDataRegister(t *testing.T) {
	cpu, _ := newResolveCPU()
	cpu.reg.A[2] = 0x1000
	cpu.reg.D[3] = 0xFFFFFFF0 // -16 as a long index

	// Brief extension word: D/A=0 (Dn), reg=3, W/L=1 (long), disp=4.
	ext := uint16(3<<12 | 1<<11 | 4)
	o := Operand{Mode: ModeIndex, Reg: 2, Ext: ext}
	e := o.resolve(cpu, Word)

	want := uint32(0x1000 - 16 + 4)
	if e.addr != want {
		t.Errorf("addr = 0x%X, want 0x%X", e.addr, want)
	}
}

func TestOperandResolveIndexedWordSignExtends(t *testing.T) {
	cpu, _ := newResolveCPU()
	cpu.reg.A[0] = 0x1000
	cpu.reg.D[0] = 0x0000FFFF // low word 0xFFFF = -1 once sign-extended

	// D/A=0 (Dn), reg=0, W/L=0 (word, sign-extended), disp=0.
	ext := uint16(0)
	o := Operand{Mode: ModeIndex, Reg: 0, Ext: ext}
	e := o.resolve(cpu, Byte)

	if e.addr != 0x0FFF {
		t.Errorf("addr = 0x%X, want 0x0FFF (sign-extended word index)", e.addr)
	}
}

func TestOperandResolvePCDisp(t *testing.T) {
	cpu, _ := newResolveCPU()
	// decodeEA folds the PC-relative base into Disp at decode time.
	o := Operand{Mode: ModePCDisp, Disp: 0x2050}
	e := o.resolve(cpu, Word)
	if e.addr != 0x2050 {
		t.Errorf("addr = 0x%X, want 0x2050", e.addr)
	}
}

func TestOperandResolveImmediate(t *testing.T) {
	cpu, _ := newResolveCPU()
	o := Operand{Mode: ModeImmediate, Imm: 0x1234}
	e := o.resolve(cpu, Word)
	if e.read(cpu, Word) != 0x1234 {
		t.Errorf("read = 0x%X, want 0x1234", e.read(cpu, Word))
	}
}

func TestOperandWritePreservesUpperBitsOnDataRegister(t *testing.T) {
	cpu, _ := newResolveCPU()
	cpu.reg.D[4] = 0xAABBCCDD

	o := Operand{Mode: ModeDataReg, Reg: 4}
	o.write(cpu, Byte, 0xFF)

	if cpu.reg.D[4] != 0xAABBCCFF {
		t.Errorf("D4 = 0x%X, want 0xAABBCCFF (upper bytes preserved)", cpu.reg.D[4])
	}
}

func TestOperandWriteAddressRegisterAlwaysLong(t *testing.T) {
	cpu, _ := newResolveCPU()
	cpu.reg.A[5] = 0xAABBCCDD

	o := Operand{Mode: ModeAddrReg, Reg: 5}
	o.write(cpu, Word, 0x1234)

	if cpu.reg.A[5] != 0x1234 {
		t.Errorf("A5 = 0x%X, want 0x00001234 (full overwrite, not merged)", cpu.reg.A[5])
	}
}
