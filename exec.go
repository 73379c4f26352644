package m68k

// exec dispatches a decoded Instruction to the function that carries out
// its semantics, replacing the teacher's direct opcodeTable[c.ir] closure
// call with a table built once over Family instead of raw opcode.
func exec(c *CPU, instr *Instruction) {
	switch instr.Family {
	case FamMOVE:
		execMOVE(c, instr)
	case FamMOVEA:
		execMOVEA(c, instr)
	case FamMOVEQ:
		execMOVEQ(c, instr)
	case FamMOVEP:
		execMOVEP(c, instr)
	case FamLEA:
		execLEA(c, instr)
	case FamPEA:
		execPEA(c, instr)
	case FamMOVEM:
		execMOVEM(c, instr)
	case FamEXG:
		execEXG(c, instr)
	case FamSWAP:
		execSWAP(c, instr)

	case FamADD:
		execADD(c, instr)
	case FamADDtoEA:
		execADDtoEA(c, instr)
	case FamADDA:
		execADDA(c, instr)
	case FamADDI:
		execADDI(c, instr)
	case FamADDQ:
		execADDQ(c, instr)
	case FamADDX:
		execADDX(c, instr)
	case FamSUB:
		execSUB(c, instr)
	case FamSUBtoEA:
		execSUBtoEA(c, instr)
	case FamSUBA:
		execSUBA(c, instr)
	case FamSUBI:
		execSUBI(c, instr)
	case FamSUBQ:
		execSUBQ(c, instr)
	case FamSUBX:
		execSUBX(c, instr)
	case FamCMP:
		execCMP(c, instr)
	case FamCMPA:
		execCMPA(c, instr)
	case FamCMPI:
		execCMPI(c, instr)
	case FamCMPM:
		execCMPM(c, instr)
	case FamMULU:
		execMULU(c, instr)
	case FamMULS:
		execMULS(c, instr)
	case FamDIVU:
		execDIVU(c, instr)
	case FamDIVS:
		execDIVS(c, instr)
	case FamNEG:
		execNEG(c, instr)
	case FamNEGX:
		execNEGX(c, instr)
	case FamCLR:
		execCLR(c, instr)
	case FamEXT:
		execEXT(c, instr)
	case FamCHK:
		execCHK(c, instr)

	case FamAND:
		execAND(c, instr)
	case FamANDtoEA:
		execANDtoEA(c, instr)
	case FamANDI:
		execANDI(c, instr)
	case FamOR:
		execOR(c, instr)
	case FamORtoEA:
		execORtoEA(c, instr)
	case FamORI:
		execORI(c, instr)
	case FamEOR:
		execEOR(c, instr)
	case FamEORI:
		execEORI(c, instr)
	case FamNOT:
		execNOT(c, instr)
	case FamTST:
		execTST(c, instr)
	case FamTAS:
		execTAS(c, instr)
	case FamShiftReg:
		execShiftReg(c, instr)
	case FamShiftMem:
		execShiftMem(c, instr)

	case FamBTSTdyn:
		execBTSTdyn(c, instr)
	case FamBTSTstatic:
		execBTSTstatic(c, instr)
	case FamBCHGdyn:
		execBCHGdyn(c, instr)
	case FamBCHGstatic:
		execBCHGstatic(c, instr)
	case FamBCLRdyn:
		execBCLRdyn(c, instr)
	case FamBCLRstatic:
		execBCLRstatic(c, instr)
	case FamBSETdyn:
		execBSETdyn(c, instr)
	case FamBSETstatic:
		execBSETstatic(c, instr)

	case FamABCDreg:
		execABCDreg(c, instr)
	case FamABCDmem:
		execABCDmem(c, instr)
	case FamSBCDreg:
		execSBCDreg(c, instr)
	case FamSBCDmem:
		execSBCDmem(c, instr)
	case FamNBCD:
		execNBCD(c, instr)

	case FamBcc:
		execBcc(c, instr)
	case FamBRA:
		execBRA(c, instr)
	case FamBSR:
		execBSR(c, instr)
	case FamDBcc:
		execDBcc(c, instr)
	case FamJMP:
		execJMP(c, instr)
	case FamJSR:
		execJSR(c, instr)
	case FamRTS:
		execRTS(c, instr)
	case FamRTE:
		execRTE(c, instr)
	case FamRTR:
		execRTR(c, instr)
	case FamScc:
		execScc(c, instr)

	case FamNOP:
		execNOP(c, instr)
	case FamSTOP:
		execSTOP(c, instr)
	case FamRESET:
		execRESET(c, instr)
	case FamTRAP:
		execTRAP(c, instr)
	case FamTRAPV:
		execTRAPV(c, instr)
	case FamLINK:
		execLINK(c, instr)
	case FamUNLK:
		execUNLK(c, instr)
	case FamMOVEfromSR:
		execMOVEfromSR(c, instr)
	case FamMOVEtoCCR:
		execMOVEtoCCR(c, instr)
	case FamMOVEtoSR:
		execMOVEtoSR(c, instr)
	case FamMOVEtoUSP:
		execMOVEtoUSP(c, instr)
	case FamMOVEfromUSP:
		execMOVEfromUSP(c, instr)
	case FamANDItoCCR:
		execANDItoCCR(c, instr)
	case FamANDItoSR:
		execANDItoSR(c, instr)
	case FamORItoCCR:
		execORItoCCR(c, instr)
	case FamORItoSR:
		execORItoSR(c, instr)
	case FamEORItoCCR:
		execEORItoCCR(c, instr)
	case FamEORItoSR:
		execEORItoSR(c, instr)

	default:
		switch instr.Opcode >> 12 {
		case 0xA:
			c.exception(vecLineA)
		case 0xF:
			c.exception(vecLineF)
		default:
			c.exception(vecIllegalInstruction)
		}
	}
}
