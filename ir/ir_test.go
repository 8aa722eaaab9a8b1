package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/risor-io/halstead/op"
)

func TestBuilderBasics(t *testing.T) {
	b := NewBuilder("main")
	x := b.Argument("x")
	y := b.Argument("y")
	sum := b.EmitNamed("sum", op.Add, x, y)
	require.NotNil(t, sum)
	assert.Equal(t, ResultValue, sum.Kind())
	assert.Equal(t, "sum", sum.Name())

	ret := b.Emit(op.Ret, sum)
	assert.Nil(t, ret)

	fn := b.Build()
	assert.Equal(t, "main", fn.Name())
	assert.NotEmpty(t, fn.ID())
	assert.Equal(t, 2, fn.ArgumentCount())
	assert.Equal(t, 2, fn.InstructionCount())

	add := fn.InstructionAt(0)
	assert.Equal(t, op.Add, add.Opcode())
	assert.Equal(t, 2, add.OperandCount())
	assert.Same(t, x, add.OperandAt(0))
	assert.Same(t, y, add.OperandAt(1))
	assert.Same(t, sum, add.Result())
}

func TestBuilderConstantUniquing(t *testing.T) {
	b := NewBuilder("f")
	c1 := b.Constant(7)
	c2 := b.Constant(7)
	c3 := b.Constant(8)
	assert.Same(t, c1, c2)
	assert.NotSame(t, c1, c3)
	assert.Equal(t, int64(7), c1.Constant())
}

func TestBuilderGlobalUniquing(t *testing.T) {
	b := NewBuilder("f")
	g1 := b.Global("counter")
	g2 := b.Global("counter")
	g3 := b.Global("other")
	assert.Same(t, g1, g2)
	assert.NotSame(t, g1, g3)
	assert.Equal(t, GlobalValue, g1.Kind())
}

func TestValueString(t *testing.T) {
	b := NewBuilder("f")
	assert.Equal(t, "%x", b.Argument("x").String())
	assert.Equal(t, "42", b.Constant(42).String())
	assert.Equal(t, "-3", b.Constant(-3).String())
	assert.Equal(t, "@g", b.Global("g").String())
}

func TestInstructionString(t *testing.T) {
	b := NewBuilder("f")
	x := b.Argument("x")
	t0 := b.EmitNamed("t0", op.Add, x, b.Constant(1))
	b.Emit(op.Store, t0, b.Global("g"))
	b.Emit(op.Ret, t0)
	fn := b.Build()

	assert.Equal(t, "%t0 = add %x, 1", fn.InstructionAt(0).String())
	assert.Equal(t, "store %t0, @g", fn.InstructionAt(1).String())
	assert.Equal(t, "ret %t0", fn.InstructionAt(2).String())
}

func TestFunctionString(t *testing.T) {
	b := NewBuilder("inc")
	x := b.Argument("x")
	t0 := b.EmitNamed("t0", op.Add, x, b.Constant(1))
	b.Emit(op.Ret, t0)
	fn := b.Build()

	expected := `func @inc(%x) {
  %t0 = add %x, 1
  ret %t0
}`
	assert.Equal(t, expected, fn.String())
}

func TestNewFunctionCopiesSlices(t *testing.T) {
	b := NewBuilder("f")
	x := b.Argument("x")
	args := []*Value{x}
	instrs := []*Instruction{{opcode: op.Ret, operands: []*Value{x}}}
	fn := NewFunction(FunctionParams{Name: "f", Arguments: args, Instructions: instrs})

	// Mutating the input slices must not affect the Function.
	args[0] = nil
	instrs[0] = nil
	assert.Same(t, x, fn.ArgumentAt(0))
	assert.Equal(t, op.Ret, fn.InstructionAt(0).Opcode())
}

func TestDebugPredicate(t *testing.T) {
	b := NewBuilder("f")
	x := b.Argument("x")
	b.Emit(op.DbgValue, x)
	b.Emit(op.Ret, x)
	fn := b.Build()

	assert.True(t, fn.InstructionAt(0).IsDebug())
	assert.False(t, fn.InstructionAt(1).IsDebug())
}

func TestFunctionStats(t *testing.T) {
	b := NewBuilder("f")
	x := b.Argument("x")
	t0 := b.EmitNamed("t0", op.Mul, x, x)
	b.Emit(op.DbgValue, t0)
	b.Emit(op.Ret, t0)
	fn := b.Build()

	stats := fn.Stats()
	assert.Equal(t, 3, stats.InstructionCount)
	assert.Equal(t, 1, stats.DebugCount)
	assert.Equal(t, 3, stats.OperandCount)
	assert.Equal(t, 1, stats.ArgumentCount)
}

func TestModule(t *testing.T) {
	f1 := NewBuilder("a").Build()
	f2 := NewBuilder("b").Build()
	m := NewModule(ModuleParams{Name: "test.hir", Functions: []*Function{f1, f2}})

	assert.Equal(t, "test.hir", m.Name())
	assert.Equal(t, 2, m.FunctionCount())
	assert.Same(t, f1, m.FunctionAt(0))
	assert.Equal(t, []string{"a", "b"}, m.FunctionNames())

	fn, ok := m.Function("b")
	require.True(t, ok)
	assert.Same(t, f2, fn)

	_, ok = m.Function("missing")
	assert.False(t, ok)
}
