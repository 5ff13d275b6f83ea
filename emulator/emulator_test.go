package emulator

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hwse/goto/machine"
)

func doRun(emu *Emulator, source string, input string, t *testing.T) error {
	assert := assert.New(t)

	err := emu.LoadSource(strings.NewReader(source))
	assert.NoError(err)

	err = emu.LoadMemory(strings.NewReader(input))
	assert.NoError(err)

	emu.Reset()
	return emu.Run()
}

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	assert.False(emu.Verbose)
	assert.NotNil(emu.Program)
	assert.Nil(emu.Machine)
}

func TestEmulatorRun(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	err := doRun(emu, "INC 0\nGOTOZ 0 3\nINC 0\nSTOP", "0", t)
	assert.NoError(err)
	assert.Equal([]uint64{2}, emu.Result())
}

func TestEmulatorCountdown(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	// Count register 0 down to zero, counting register 1 up.
	source := strings.Join([]string{
		"GOTOZ 0 4",
		"DEC 0",
		"INC 1",
		"GOTO 0",
		"STOP",
	}, "\n")

	err := doRun(emu, source, "5 0", t)
	assert.NoError(err)
	assert.Equal([]uint64{0, 5}, emu.Result())
	assert.Equal(21, emu.Machine.Steps)
}

func TestEmulatorLoadSourceError(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	err := emu.LoadSource(strings.NewReader("INC 1\nFOO 2"))
	assert.ErrorContains(err, "error in line 2: Unknown token: FOO")

	// A failed load leaves the previous program in place.
	assert.Equal(0, len(emu.Program.Instructions))
}

func TestEmulatorLoadMemoryError(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	err := emu.LoadMemory(strings.NewReader("1 2 x"))
	assert.ErrorContains(err, "x is not a number")
	assert.Nil(emu.Input)
}

func TestEmulatorRuntimeFault(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	err := doRun(emu, "DEC 0\nSTOP", "0", t)
	assert.Error(err)
	assert.ErrorIs(err, machine.ErrUnderflow(0))

	var fault *ErrRuntime
	assert.True(errors.As(err, &fault))
	assert.Equal(machine.InstructionAddress(0), fault.Addr)
	assert.ErrorContains(err, "address 0")
}

func TestEmulatorFaultAddress(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	// The fault is tagged with the address of the faulting fetch.
	err := doRun(emu, "GOTO 100\nSTOP", "0", t)
	assert.Error(err)
	assert.ErrorIs(err, machine.ErrAddressRange(100))

	var fault *ErrRuntime
	assert.True(errors.As(err, &fault))
	assert.Equal(machine.InstructionAddress(100), fault.Addr)
}

func TestEmulatorResetIndependentRuns(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	err := doRun(emu, "INC 0\nSTOP", "3", t)
	assert.NoError(err)
	assert.Equal([]uint64{4}, emu.Result())

	// A second Reset starts over from the loaded input.
	assert.Equal([]uint64{3}, emu.Input)
	emu.Reset()
	err = emu.Run()
	assert.NoError(err)
	assert.Equal([]uint64{4}, emu.Result())
}

func TestEmulatorLineNo(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	err := emu.LoadSource(strings.NewReader("INC 0\nSTOP"))
	assert.NoError(err)
	err = emu.LoadMemory(strings.NewReader("0"))
	assert.NoError(err)

	emu.Reset()
	assert.Equal(1, emu.LineNo())

	done, err := emu.Step()
	assert.NoError(err)
	assert.False(done)
	assert.Equal(2, emu.LineNo())

	done, err = emu.Step()
	assert.NoError(err)
	assert.True(done)
}
