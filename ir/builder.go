package ir

import (
	"strconv"

	"github.com/gofrs/uuid"

	"github.com/risor-io/halstead/op"
)

// Builder constructs one Function. It is the only way to create values and
// instructions, which is what makes pointer identity canonical: identical
// constants and globals are uniqued to a single Value, the way a host IR's
// value tables would unique them.
//
// A Builder is single-function: call Build once, then discard it.
type Builder struct {
	name         string
	arguments    []*Value
	instructions []*Instruction
	constants    map[int64]*Value
	globals      map[string]*Value
	resultCount  int
}

// NewBuilder returns a Builder for a function with the given name.
func NewBuilder(name string) *Builder {
	return &Builder{
		name:      name,
		constants: map[int64]*Value{},
		globals:   map[string]*Value{},
	}
}

// Argument declares a formal parameter and returns its value.
func (b *Builder) Argument(name string) *Value {
	v := &Value{kind: ArgumentValue, name: name}
	b.arguments = append(b.arguments, v)
	return v
}

// Constant returns the value for an integer constant, creating it on first
// use. Repeated constants with the same payload return the same *Value.
func (b *Builder) Constant(c int64) *Value {
	if v, ok := b.constants[c]; ok {
		return v
	}
	v := &Value{kind: ConstantValue, constant: c}
	b.constants[c] = v
	return v
}

// Global returns the value for a named global, creating it on first use.
// Repeated references to the same name return the same *Value.
func (b *Builder) Global(name string) *Value {
	if v, ok := b.globals[name]; ok {
		return v
	}
	v := &Value{kind: GlobalValue, name: name}
	b.globals[name] = v
	return v
}

// Emit appends an instruction and returns its result value, or nil if the
// opcode produces none. Result names are assigned sequentially ("0", "1",
// ...); use EmitNamed to control the name.
func (b *Builder) Emit(code op.Code, operands ...*Value) *Value {
	return b.EmitNamed(strconv.Itoa(b.resultCount), code, operands...)
}

// EmitNamed appends an instruction whose result, if any, gets the given
// name. It returns the result value, or nil if the opcode produces none.
func (b *Builder) EmitNamed(name string, code op.Code, operands ...*Value) *Value {
	instr := &Instruction{
		opcode:   code,
		operands: copyValues(operands),
	}
	if op.GetInfo(code).HasResult {
		instr.result = &Value{kind: ResultValue, name: name}
		b.resultCount++
	}
	b.instructions = append(b.instructions, instr)
	return instr.result
}

// Build returns the finished immutable Function with a freshly assigned ID.
func (b *Builder) Build() *Function {
	return NewFunction(FunctionParams{
		ID:           uuid.Must(uuid.NewV4()).String(),
		Name:         b.name,
		Arguments:    b.arguments,
		Instructions: b.instructions,
	})
}
