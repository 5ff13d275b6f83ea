package machine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzParse(f *testing.F) {
	f.Add("STOP")
	f.Add("INC 1\nDEC 2\nGOTO 3\nSTOP")
	f.Add("GOTOZ 0 3")
	f.Add("  INC   42  ")
	f.Add("STOP and then some")
	f.Add("FOO 1")
	f.Add("INC")
	f.Add("INC x")
	f.Add("INC $(2+3)")
	f.Add("")
	f.Add("\n\n")

	f.Fuzz(func(t *testing.T, source string) {
		assert := assert.New(t)

		parser := &Parser{}
		prog, err := parser.Parse(strings.NewReader(source))
		if err != nil {
			// Malformed input is tagged with a line number.
			assert.ErrorContains(err, "error in line ")
			return
		}

		// A parsed program renders back to canonical source that
		// parses to the same instructions.
		var lines []string
		for _, inst := range prog.Instructions {
			lines = append(lines, inst.String())
		}

		again, err := parser.Parse(strings.NewReader(strings.Join(lines, "\n")))
		assert.NoError(err)
		if err == nil {
			assert.Equal(prog.Instructions, again.Instructions)
		}
	})
}
