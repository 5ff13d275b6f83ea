package machine

import (
	"fmt"
)

// RegisterIndex addresses one cell of the machine's register file.
type RegisterIndex uint

// InstructionAddress addresses one instruction of a Program.
// Jump targets are absolute instruction addresses, not registers.
type InstructionAddress uint

// Op is the instruction operation tag.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_STOP  = Op(0) // STOP
	OP_INC   = Op(1) // INC
	OP_DEC   = Op(2) // DEC
	OP_GOTO  = Op(3) // GOTO
	OP_GOTOZ = Op(4) // GOTOZ
)

// Instruction is a single decoded GOTO machine instruction.
// Cell is the register operand (INC, DEC, and the GOTOZ condition);
// Target is the jump target (GOTO, GOTOZ).
type Instruction struct {
	Op     Op
	Cell   RegisterIndex
	Target InstructionAddress
}

// MakeStop makes a STOP instruction.
func MakeStop() Instruction {
	return Instruction{Op: OP_STOP}
}

// MakeInc makes an INC instruction incrementing the register at cell.
func MakeInc(cell RegisterIndex) Instruction {
	return Instruction{Op: OP_INC, Cell: cell}
}

// MakeDec makes a DEC instruction decrementing the register at cell.
func MakeDec(cell RegisterIndex) Instruction {
	return Instruction{Op: OP_DEC, Cell: cell}
}

// MakeGoto makes an unconditional jump to target.
func MakeGoto(target InstructionAddress) Instruction {
	return Instruction{Op: OP_GOTO, Target: target}
}

// MakeGotoZ makes a conditional jump to target, taken when the register
// at cell holds zero.
func MakeGotoZ(cell RegisterIndex, target InstructionAddress) Instruction {
	return Instruction{Op: OP_GOTOZ, Cell: cell, Target: target}
}

// String renders the instruction in canonical source form.
func (inst Instruction) String() string {
	switch inst.Op {
	case OP_STOP:
		return inst.Op.String()
	case OP_INC, OP_DEC:
		return fmt.Sprintf("%v %v", inst.Op, inst.Cell)
	case OP_GOTO:
		return fmt.Sprintf("%v %v", inst.Op, inst.Target)
	case OP_GOTOZ:
		return fmt.Sprintf("%v %v %v", inst.Op, inst.Cell, inst.Target)
	}

	return inst.Op.String()
}
