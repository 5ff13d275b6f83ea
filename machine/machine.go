package machine

import (
	"log"
)

// Machine is the execution state for a single run of a program: a
// program counter and a register file. It is owned by the run loop for
// the duration of the run; the final Memory contents are the result.
type Machine struct {
	Verbose bool // Set to enable per-step tracing.

	Program *Program // Program under execution; never mutated.

	Pc     InstructionAddress // Current program counter.
	Memory []uint64           // Register file, indexed by RegisterIndex.

	Steps int // Executed instruction counter.
}

// NewMachine creates a machine over a program and an initial register file.
func NewMachine(prog *Program, memory []uint64) (m *Machine) {
	m = &Machine{
		Program: prog,
		Memory:  memory,
	}

	return
}

// load reads the register at cell.
func (m *Machine) load(cell RegisterIndex) (value uint64, err error) {
	if int(cell) >= len(m.Memory) {
		err = ErrCellRange(cell)
		return
	}

	value = m.Memory[cell]
	return
}

// Step executes a single fetch-decode-execute cycle. It reports done
// when the current instruction is STOP; a halted machine stays halted
// and its memory is unchanged by further steps.
func (m *Machine) Step() (done bool, err error) {
	inst, err := m.Program.Fetch(m.Pc)
	if err != nil {
		return
	}

	if m.Verbose {
		log.Printf("%v: %v", m.Pc, inst)
		log.Printf("mem: %v", m.Memory)
	}

	switch inst.Op {
	case OP_STOP:
		done = true
		return
	case OP_INC:
		var value uint64
		value, err = m.load(inst.Cell)
		if err != nil {
			return
		}
		m.Memory[inst.Cell] = value + 1
		m.Pc += 1
	case OP_DEC:
		var value uint64
		value, err = m.load(inst.Cell)
		if err != nil {
			return
		}
		if value == 0 {
			err = ErrUnderflow(inst.Cell)
			return
		}
		m.Memory[inst.Cell] = value - 1
		m.Pc += 1
	case OP_GOTO:
		// An out-of-range target faults on the next fetch.
		m.Pc = inst.Target
	case OP_GOTOZ:
		var value uint64
		value, err = m.load(inst.Cell)
		if err != nil {
			return
		}
		if value == 0 {
			m.Pc = inst.Target
		} else {
			m.Pc += 1
		}
	default:
		err = ErrOpDecode
		return
	}

	m.Steps += 1

	return
}

// Run executes until STOP or a fault.
func (m *Machine) Run() (err error) {
	var done bool
	for !done {
		done, err = m.Step()
		if err != nil {
			return
		}
	}

	return
}
