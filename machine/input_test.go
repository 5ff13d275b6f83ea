package machine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadMemory(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		input  string
		memory []uint64
	}){
		{"", nil},
		{"0", []uint64{0}},
		{"1 2 3", []uint64{1, 2, 3}},
		{"1 2\n3 4", []uint64{1, 2, 3, 4}},
		{"  7   8  \n\n9\n", []uint64{7, 8, 9}},
		{"18446744073709551615", []uint64{18446744073709551615}},
	}

	for _, entry := range table {
		memory, err := ReadMemory(strings.NewReader(entry.input))
		assert.NoError(err, entry.input)
		assert.Equal(entry.memory, memory, entry.input)
	}
}

func TestReadMemoryErrors(t *testing.T) {
	assert := assert.New(t)

	for _, input := range []string{
		"x",
		"1 2 x",
		"-1",
		"1.5",
		"18446744073709551616",
	} {
		_, err := ReadMemory(strings.NewReader(input))
		assert.Error(err, input)
		assert.ErrorContains(err, "is not a number", input)
	}
}
