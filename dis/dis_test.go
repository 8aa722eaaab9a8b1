package dis

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/risor-io/halstead/ir"
	"github.com/risor-io/halstead/op"
)

func TestFunctionDisassembly(t *testing.T) {
	// Disable colors for consistent test output
	color.NoColor = true
	defer func() { color.NoColor = false }()

	b := ir.NewBuilder("inc")
	x := b.Argument("x")
	t0 := b.EmitNamed("t0", op.Add, x, b.Constant(1))
	b.Emit(op.DbgValue, t0)
	b.Emit(op.Ret, t0)
	fn := b.Build()

	entries := Disassemble(fn)
	require.Len(t, entries, 3)
	assert.Equal(t, 0, entries[0].Offset)
	assert.Equal(t, op.Add, entries[0].Instruction.Opcode())

	var buf bytes.Buffer
	Fprint(&buf, fn)

	expected := strings.TrimSpace(`
func @inc(%x):
     0  %t0 = add %x, 1
     1  dbg.value %t0
     2  ret %t0
`)
	assert.Equal(t, expected+"\n", buf.String())
}

func TestEmptyFunctionDisassembly(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	fn := ir.NewBuilder("empty").Build()
	var buf bytes.Buffer
	Fprint(&buf, fn)
	assert.Equal(t, "func @empty():\n", buf.String())
}
