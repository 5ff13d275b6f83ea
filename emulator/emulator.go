// Package emulator ties the GOTO parser and machine into a run session:
// load a program and an initial register file, then reset and step or
// run to completion.
package emulator

import (
	"io"
	"slices"

	"github.com/hwse/goto/machine"
)

// Emulator state. Program + initial register file + machine.
type Emulator struct {
	Verbose bool             // If set, enables verbose logging.
	Program *machine.Program // Reference to the loaded program.
	Input   []uint64         // Initial register file for the next Reset.

	*machine.Machine // Reference to the running machine, valid after Reset.
}

// NewEmulator creates a new emulator with an empty program and register file.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Program: &machine.Program{},
	}

	return
}

// LoadSource parses GOTO source text into the emulator's program.
func (emu *Emulator) LoadSource(input io.Reader) (err error) {
	parser := &machine.Parser{Verbose: emu.Verbose}

	prog, err := parser.Parse(input)
	if err != nil {
		return
	}

	emu.Program = prog
	return
}

// LoadMemory parses the initial register file from whitespace separated
// numbers.
func (emu *Emulator) LoadMemory(input io.Reader) (err error) {
	memory, err := machine.ReadMemory(input)
	if err != nil {
		return
	}

	emu.Input = memory
	return
}

// Reset creates a fresh machine over the loaded program and a copy of
// the initial register file. Runs are independent; Reset never disturbs
// the loaded inputs.
func (emu *Emulator) Reset() {
	emu.Machine = machine.NewMachine(emu.Program, slices.Clone(emu.Input))
	emu.Machine.Verbose = emu.Verbose
}

// LineNo returns the 1-based source line of the current program counter.
func (emu *Emulator) LineNo() int {
	return emu.Program.LineNo(emu.Machine.Pc)
}

// Step performs a single machine step. Runtime faults are tagged with
// the faulting instruction address.
func (emu *Emulator) Step() (done bool, err error) {
	addr := emu.Machine.Pc

	defer func() {
		if err != nil {
			err = &ErrRuntime{Addr: addr, Err: err}
		}
	}()

	return emu.Machine.Step()
}

// Run executes until STOP or a fault.
func (emu *Emulator) Run() (err error) {
	var done bool
	for !done {
		done, err = emu.Step()
		if err != nil {
			return
		}
	}

	return
}

// Result returns the machine's register file.
func (emu *Emulator) Result() []uint64 {
	return emu.Machine.Memory
}
