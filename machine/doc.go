// Package machine implements the GOTO register machine and its parser.
//
// A GOTO program is plain text, one instruction per line, drawn from a
// five-instruction set (STOP, INC, DEC, GOTO, GOTOZ) that operates on a
// flat file of unsigned 64-bit registers. The parser turns source text
// into an immutable Program; the Machine runs a fetch-decode-execute loop
// over a program counter and the register file until a STOP instruction
// or a runtime fault.
package machine
