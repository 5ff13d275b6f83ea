package machine

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Parser converts GOTO source text into a Program, one instruction per
// line. Tokens are separated by spaces; extra spaces are tolerated.
type Parser struct {
	Verbose bool // If set, verbosely logs each parsed line.
}

// parseNr parses a non-negative number token.
func parseNr(text string) (value uint64, err error) {
	value, perr := strconv.ParseUint(text, 10, 64)
	if perr != nil {
		err = &ErrNotNumber{Text: text, Err: perr}
	}

	return
}

var parenRe = regexp.MustCompile(`\$\([^\$]*\)`)

// parenEval does parse-time $(...) evaluations.
func (p *Parser) parenEval(expr string) (value uint64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, nil)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Uint64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

// parseLine parses a single source line as an instruction.
func (p *Parser) parseLine(line string) (inst Instruction, err error) {
	// Do $() evaluations
	line = parenRe.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := p.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%v", value)
	})
	if err != nil {
		return
	}

	tokens := slices.DeleteFunc(strings.Split(line, " "), func(a string) bool { return len(a) == 0 })

	if len(tokens) == 0 {
		err = ErrNoTokens(line)
		return
	}

	switch tokens[0] {
	case "STOP":
		// Extra tokens after STOP are not validated.
		inst = MakeStop()
	case "INC", "DEC", "GOTO":
		if len(tokens) != 2 {
			err = &ErrTokenCount{Want: 2, Line: line}
			return
		}
		var nr uint64
		nr, err = parseNr(tokens[1])
		if err != nil {
			return
		}
		switch tokens[0] {
		case "INC":
			inst = MakeInc(RegisterIndex(nr))
		case "DEC":
			inst = MakeDec(RegisterIndex(nr))
		default:
			inst = MakeGoto(InstructionAddress(nr))
		}
	case "GOTOZ":
		if len(tokens) != 3 {
			err = &ErrTokenCount{Want: 3, Line: line}
			return
		}
		var cell, target uint64
		cell, err = parseNr(tokens[1])
		if err != nil {
			return
		}
		target, err = parseNr(tokens[2])
		if err != nil {
			return
		}
		inst = MakeGotoZ(RegisterIndex(cell), InstructionAddress(target))
	default:
		err = ErrUnknownToken(tokens[0])
	}

	return
}

// Parse parses an input stream into a Program. Parsing stops at the
// first malformed line; the error carries the 1-based line number.
func (p *Parser) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Err: err}
		}
	}()

	var instructions []Instruction
	for scanner.Scan() {
		line := scanner.Text()
		lineno += 1

		if p.Verbose {
			log.Printf("%v: %v", lineno, line)
		}

		var inst Instruction
		inst, err = p.parseLine(line)
		if err != nil {
			return
		}

		instructions = append(instructions, inst)
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	prog = &Program{
		Instructions: instructions,
	}

	return
}
