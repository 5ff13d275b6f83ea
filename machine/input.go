package machine

import (
	"io"
	"strings"
)

// ReadMemory parses an initial register file from whitespace separated
// numbers. Values are separated by spaces or newlines; empty tokens are
// dropped. Any non-numeric token is a load error.
func ReadMemory(input io.Reader) (memory []uint64, err error) {
	data, err := io.ReadAll(input)
	if err != nil {
		return
	}

	tokens := strings.FieldsFunc(string(data), func(r rune) bool {
		return r == ' ' || r == '\n'
	})

	for _, token := range tokens {
		var nr uint64
		nr, err = parseNr(token)
		if err != nil {
			return
		}
		memory = append(memory, nr)
	}

	return
}
