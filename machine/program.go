package machine

import (
	"iter"
)

// Program is an immutable, 0-indexed sequence of instructions. Instruction
// address n corresponds to source line n+1.
type Program struct {
	Instructions []Instruction
}

// Fetch returns the instruction at addr, or a fault if addr is outside
// the program.
func (prog *Program) Fetch(addr InstructionAddress) (inst Instruction, err error) {
	if int(addr) >= len(prog.Instructions) {
		err = ErrAddressRange(addr)
		return
	}

	inst = prog.Instructions[addr]
	return
}

// LineNo returns the 1-based source line for an instruction address.
func (prog *Program) LineNo(addr InstructionAddress) int {
	return int(addr) + 1
}

// All iterates over the program in instruction address order.
func (prog *Program) All() iter.Seq2[InstructionAddress, Instruction] {
	return func(yield func(addr InstructionAddress, inst Instruction) bool) {
		for n, inst := range prog.Instructions {
			if !yield(InstructionAddress(n), inst) {
				return
			}
		}
	}
}
