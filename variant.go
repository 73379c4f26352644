package m68k

// Variant is a small value object describing the timing and encoding
// differences between members of the MC68000/SCC68070 family. It carries
// no behavior beyond table lookups and a fault-frame format flag: a CPU is
// configured with a Variant at construction time rather than gaining
// per-model subclasses.
type Variant struct {
	Name string

	// eaFetch/eaWrite give the effective-address timing tables consulted
	// by exec_*.go, indexed the same way as the teacher's eaFetchCycles/
	// eaWriteCycles (mode, and for mode 7 the register selects the
	// sub-mode).
	eaFetch [8][8]uint64
	eaWrite [8][8]uint64

	// exceptionLatency is the fixed cycle cost charged on top of a
	// pushed exception frame (PRM-equivalent "34" for MC68000).
	exceptionLatency uint64
	// interruptLatency is the fixed cycle cost of servicing a pending
	// interrupt (PRM-equivalent "44" for MC68000).
	interruptLatency uint64

	// longFrame reports whether BusError/AddressError push the extended
	// stack frame. The MC68000 pushes the 7-word frame (SSW, access
	// address, IR, SR, PC); the SCC68070 pushes one more word on top
	// carrying the faulting opcode (8 words, absent from the teacher).
	longFrame bool

	// MoveSRReadsFullWord records whether the variant exposes the full
	// 16-bit status register to MOVE from SR (true for SCC68070, false
	// for MC68000). No instruction consults it: MOVE from SR always
	// stores the full SR, and MOVE to CCR always takes the low byte of
	// its source, on both variants.
	MoveSRReadsFullWord bool
}

// EACycles returns the additional cycles consumed resolving an effective
// address of the given mode/register/size, for either a fetch (write =
// false) or a write (write = true). Register-direct modes always cost 0:
// the base instruction cost already accounts for them.
func (v *Variant) EACycles(mode, reg uint8, sz Size, write bool) uint64 {
	var base uint64
	if write {
		base = v.eaWrite[mode][reg&7]
	} else {
		base = v.eaFetch[mode][reg&7]
	}
	if sz == Long && base > 0 {
		base += 4
	}
	return base
}

// ExceptionLatency returns the fixed cycle cost of taking an exception
// (vector fetch + frame push), not including any operand/EA cost already
// charged to the faulting instruction.
func (v *Variant) ExceptionLatency() uint64 { return v.exceptionLatency }

// InterruptLatency returns the fixed cycle cost of servicing a pending
// interrupt.
func (v *Variant) InterruptLatency() uint64 { return v.interruptLatency }

// LongFrame reports whether this variant's BusError/AddressError frame
// carries the extra faulting-opcode word (8 words instead of 7).
func (v *Variant) LongFrame() bool { return v.longFrame }

func buildEATable(values map[uint8]uint64, abs7 map[uint8]uint64) [8][8]uint64 {
	var t [8][8]uint64
	for mode, cost := range values {
		for reg := 0; reg < 8; reg++ {
			t[mode][reg] = cost
		}
	}
	for reg, cost := range abs7 {
		t[7][reg] = cost
	}
	return t
}

// VariantMC68000 reproduces the teacher's hardcoded MC68000 numbers
// (formerly timing.go's eaFetchCycles/eaWriteCycles and exception.go's/
// interrupt.go's hardcoded "+= 34"/"+= 44").
var VariantMC68000 = &Variant{
	Name: "MC68000",
	eaFetch: buildEATable(
		map[uint8]uint64{0: 0, 1: 0, 2: 4, 3: 4, 4: 6, 5: 8, 6: 10},
		map[uint8]uint64{0: 8, 1: 12, 2: 8, 3: 10, 4: 4},
	),
	eaWrite: buildEATable(
		map[uint8]uint64{0: 0, 1: 0, 2: 4, 3: 4, 4: 4, 5: 8, 6: 10},
		map[uint8]uint64{0: 8, 1: 12},
	),
	exceptionLatency:    34,
	interruptLatency:    44,
	longFrame:           false,
	MoveSRReadsFullWord: false,
}

// VariantSCC68070 extends the MC68000 timing with the SCC68070's wider
// status-register access and long exception frame (spec.md §4.5). No
// SCC68070-specific EA cycle counts are given in spec.md or present in
// the teacher, so the MC68000 table is reused verbatim for EACycles;
// see DESIGN.md.
var VariantSCC68070 = &Variant{
	Name:                "SCC68070",
	eaFetch:             VariantMC68000.eaFetch,
	eaWrite:             VariantMC68000.eaWrite,
	exceptionLatency:    38,
	interruptLatency:    48,
	longFrame:           true,
	MoveSRReadsFullWord: true,
}
