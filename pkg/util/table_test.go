package util

import (
	"bytes"
	"testing"

	"github.com/consensys/go-rtlsim/pkg/util/assert"
)

func Test_Table_00(t *testing.T) {
	table := NewTablePrinter(2, 3)
	table.SetRow(0, "tick", "out")
	table.SetRow(1, "0", "4'hf")
	table.Set(1, 2, "4'h0")
	table.Set(0, 2, "1")
	//
	assert.Equal(t, []string{
		" tick |  out |",
		"    0 | 4'hf |",
		"    1 | 4'h0 |",
	}, table.Lines(0))
}

func Test_Table_01(t *testing.T) {
	table := NewTablePrinter(3, 1)
	table.SetRow(0, "abcdef", "x", "y")
	table.SetMaxWidth(3)
	//
	assert.Equal(t, []string{" abc | x | y |"}, table.Lines(0))
	assert.Equal(t, []string{" abc | x…"}, table.Lines(9))
	//
	var buf bytes.Buffer
	//
	assert.NoError(t, table.Print(&buf, 0))
	assert.Equal(t, " abc | x | y |\n", buf.String())
}
