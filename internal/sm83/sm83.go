// Package sm83 implements a small instruction emitter for the Game Boy's
// SM83 CPU core. It covers only the instructions that the generated test
// routine needs. Relative branch targets are given as symbolic labels and
// resolved when the code is assembled, so displacement bytes never have to
// be counted by hand.
package sm83

import (
	"fmt"
	"math"
)

// Opcode values emitted by the assembler.
const (
	opLdSPImm  = 0x31 // LD SP, nn
	opDI       = 0xF3 // DI
	opLdAImm   = 0x3E // LD A, n
	opLdBImm   = 0x06 // LD B, n
	opLdCImm   = 0x0E // LD C, n
	opLdDImm   = 0x16 // LD D, n
	opLdBCImm  = 0x01 // LD BC, nn
	opLdDEImm  = 0x11 // LD DE, nn
	opLdHLImm  = 0x21 // LD HL, nn
	opLdADE    = 0x1A // LD A, (DE)
	opLdHLIncA = 0x22 // LD (HL+), A
	opLdAB     = 0x78 // LD A, B
	opLdAD     = 0x7A // LD A, D
	opIncD     = 0x14 // INC D
	opIncDE    = 0x13 // INC DE
	opDecB     = 0x05 // DEC B
	opDecC     = 0x0D // DEC C
	opDecBC    = 0x0B // DEC BC
	opAddHLDE  = 0x19 // ADD HL, DE
	opAndImm   = 0xE6 // AND n
	opOrC      = 0xB1 // OR C
	opCpImm    = 0xFE // CP n
	opLdhNA    = 0xE0 // LDH (n), A
	opLdhAN    = 0xF0 // LDH A, (n)
	opJr       = 0x18 // JR e
	opJrNZ     = 0x20 // JR NZ, e
	opJrZ      = 0x28 // JR Z, e

	// OpRet and OpRetI are placed directly into the vector table slots.
	OpRet  = 0xC9 // RET
	OpRetI = 0xD9 // RETI
)

// highPage is the address page reachable through the LDH instructions.
const highPage = 0xFF00

// fixup is a displacement byte waiting for its label to be resolved.
type fixup struct {
	offset int // position of the displacement byte in the code
	label  string
}

// Assembler builds an SM83 machine code sequence. Emitting methods record
// the first error encountered and turn all further calls into no-ops, the
// error is reported by Assemble.
type Assembler struct {
	code   []byte
	labels map[string]int
	fixups []fixup
	err    error
}

// New creates a new assembler with an empty code sequence.
func New() *Assembler {
	return &Assembler{
		labels: map[string]int{},
	}
}

// Label defines name at the current code position as a branch target.
func (a *Assembler) Label(name string) {
	if a.err != nil {
		return
	}
	if _, ok := a.labels[name]; ok {
		a.err = fmt.Errorf("label %q defined twice", name)
		return
	}
	a.labels[name] = len(a.code)
}

// Assemble resolves all branch displacements and returns the final code.
func (a *Assembler) Assemble() ([]byte, error) {
	if a.err != nil {
		return nil, a.err
	}

	for _, fix := range a.fixups {
		target, ok := a.labels[fix.label]
		if !ok {
			return nil, fmt.Errorf("unresolved label %q", fix.label)
		}

		// displacement is relative to the address after the branch
		displacement := target - (fix.offset + 1)
		if displacement < math.MinInt8 || displacement > math.MaxInt8 {
			return nil, fmt.Errorf("branch to label %q out of range: %d bytes", fix.label, displacement)
		}
		a.code[fix.offset] = byte(int8(displacement))
	}

	return a.code, nil
}

// LoadSPImm emits LD SP, value.
func (a *Assembler) LoadSPImm(value uint16) {
	a.emit(opLdSPImm, byte(value), byte(value>>8))
}

// DisableInterrupts emits DI.
func (a *Assembler) DisableInterrupts() {
	a.emit(opDI)
}

// LoadAImm emits LD A, value.
func (a *Assembler) LoadAImm(value byte) {
	a.emit(opLdAImm, value)
}

// LoadBImm emits LD B, value.
func (a *Assembler) LoadBImm(value byte) {
	a.emit(opLdBImm, value)
}

// LoadCImm emits LD C, value.
func (a *Assembler) LoadCImm(value byte) {
	a.emit(opLdCImm, value)
}

// LoadDImm emits LD D, value.
func (a *Assembler) LoadDImm(value byte) {
	a.emit(opLdDImm, value)
}

// LoadBCImm emits LD BC, value.
func (a *Assembler) LoadBCImm(value uint16) {
	a.emit(opLdBCImm, byte(value), byte(value>>8))
}

// LoadDEImm emits LD DE, value.
func (a *Assembler) LoadDEImm(value uint16) {
	a.emit(opLdDEImm, byte(value), byte(value>>8))
}

// LoadHLImm emits LD HL, value.
func (a *Assembler) LoadHLImm(value uint16) {
	a.emit(opLdHLImm, byte(value), byte(value>>8))
}

// LoadAFromDE emits LD A, (DE).
func (a *Assembler) LoadAFromDE() {
	a.emit(opLdADE)
}

// StoreAToHLInc emits LD (HL+), A.
func (a *Assembler) StoreAToHLInc() {
	a.emit(opLdHLIncA)
}

// LoadAFromB emits LD A, B.
func (a *Assembler) LoadAFromB() {
	a.emit(opLdAB)
}

// LoadAFromD emits LD A, D.
func (a *Assembler) LoadAFromD() {
	a.emit(opLdAD)
}

// IncD emits INC D.
func (a *Assembler) IncD() {
	a.emit(opIncD)
}

// IncDE emits INC DE.
func (a *Assembler) IncDE() {
	a.emit(opIncDE)
}

// DecB emits DEC B.
func (a *Assembler) DecB() {
	a.emit(opDecB)
}

// DecC emits DEC C.
func (a *Assembler) DecC() {
	a.emit(opDecC)
}

// DecBC emits DEC BC.
func (a *Assembler) DecBC() {
	a.emit(opDecBC)
}

// AddHLDE emits ADD HL, DE.
func (a *Assembler) AddHLDE() {
	a.emit(opAddHLDE)
}

// AndImm emits AND value.
func (a *Assembler) AndImm(value byte) {
	a.emit(opAndImm, value)
}

// OrC emits OR C.
func (a *Assembler) OrC() {
	a.emit(opOrC)
}

// CompareImm emits CP value.
func (a *Assembler) CompareImm(value byte) {
	a.emit(opCpImm, value)
}

// StoreAHigh emits LDH (address), A. The address has to be in the
// 0xFF00 high page.
func (a *Assembler) StoreAHigh(address uint16) {
	a.emitHigh(opLdhNA, address)
}

// LoadAHigh emits LDH A, (address). The address has to be in the
// 0xFF00 high page.
func (a *Assembler) LoadAHigh(address uint16) {
	a.emitHigh(opLdhAN, address)
}

// JumpRelative emits JR label.
func (a *Assembler) JumpRelative(label string) {
	a.emitBranch(opJr, label)
}

// JumpRelativeNZ emits JR NZ, label.
func (a *Assembler) JumpRelativeNZ(label string) {
	a.emitBranch(opJrNZ, label)
}

// JumpRelativeZ emits JR Z, label.
func (a *Assembler) JumpRelativeZ(label string) {
	a.emitBranch(opJrZ, label)
}

func (a *Assembler) emit(b ...byte) {
	if a.err != nil {
		return
	}
	a.code = append(a.code, b...)
}

func (a *Assembler) emitHigh(opcode byte, address uint16) {
	if a.err != nil {
		return
	}
	if address&highPage != highPage {
		a.err = fmt.Errorf("address 0x%04X is outside the 0xFF00 high page", address)
		return
	}
	a.emit(opcode, byte(address))
}

func (a *Assembler) emitBranch(opcode byte, label string) {
	if a.err != nil {
		return
	}
	a.code = append(a.code, opcode)
	a.fixups = append(a.fixups, fixup{offset: len(a.code), label: label})
	a.code = append(a.code, 0)
}
