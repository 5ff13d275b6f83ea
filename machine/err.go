package machine

import (
	"errors"

	"github.com/hwse/goto/translate"
)

var f = translate.From

var (
	// Executor errors
	ErrOpDecode = errors.New(f("opcode decode"))
)

// ErrNoTokens reports a source line without any tokens.
type ErrNoTokens string

func (err ErrNoTokens) Error() string {
	return f("No tokens in: %v", string(err))
}

// ErrUnknownToken reports an unrecognized instruction token.
type ErrUnknownToken string

func (err ErrUnknownToken) Error() string {
	return f("Unknown token: %v", string(err))
}

// ErrTokenCount reports a line with the wrong number of tokens for its
// instruction.
type ErrTokenCount struct {
	Want int
	Line string
}

func (err *ErrTokenCount) Error() string {
	return f("Not %d tokens in: %v", err.Want, err.Line)
}

// ErrNotNumber reports a token that failed numeric parsing.
type ErrNotNumber struct {
	Text string
	Err  error
}

func (err *ErrNotNumber) Error() string {
	return f("%v is not a number (reason: %v)", err.Text, err.Err)
}

func (err *ErrNotNumber) Unwrap() error {
	return err.Err
}

// ErrParseExpression reports an invalid $(...) expression.
type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrSyntax tags a parse error with its 1-based source line.
type ErrSyntax struct {
	LineNo int
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("error in line %d: %v", err.LineNo, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrCellRange is a fault for a register access beyond the memory size.
type ErrCellRange RegisterIndex

func (err ErrCellRange) Error() string {
	return f("register %d out of range", uint(err))
}

func (err ErrCellRange) Is(target error) (ok bool) {
	_, ok = target.(ErrCellRange)
	return
}

// ErrAddressRange is a fault for a program counter beyond the program.
type ErrAddressRange InstructionAddress

func (err ErrAddressRange) Error() string {
	return f("instruction address %d out of range", uint(err))
}

func (err ErrAddressRange) Is(target error) (ok bool) {
	_, ok = target.(ErrAddressRange)
	return
}

// ErrUnderflow is a fault for a DEC of a register already holding zero.
type ErrUnderflow RegisterIndex

func (err ErrUnderflow) Error() string {
	return f("register %d underflow", uint(err))
}

func (err ErrUnderflow) Is(target error) (ok bool) {
	_, ok = target.(ErrUnderflow)
	return
}
