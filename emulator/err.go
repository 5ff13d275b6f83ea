package emulator

import (
	"github.com/hwse/goto/machine"
	"github.com/hwse/goto/translate"
)

var f = translate.From

// ErrRuntime indicates the location of a runtime fault.
type ErrRuntime struct {
	Addr machine.InstructionAddress
	Err  error
}

func (err *ErrRuntime) Error() string {
	return f("address %d %v", uint(err.Addr), err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
