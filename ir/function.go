package ir

import "strings"

// Function is a compiled function: a name, its arguments, and an ordered
// instruction sequence. It is immutable after creation and safe for
// concurrent use.
type Function struct {
	id           string
	name         string
	arguments    []*Value
	instructions []*Instruction
}

// FunctionParams contains parameters for creating a new Function.
type FunctionParams struct {
	ID           string
	Name         string
	Arguments    []*Value
	Instructions []*Instruction
}

// NewFunction creates a new immutable Function from the given parameters.
// Input slices are copied so later caller mutation cannot affect the
// Function.
func NewFunction(params FunctionParams) *Function {
	return &Function{
		id:           params.ID,
		name:         params.Name,
		arguments:    copyValues(params.Arguments),
		instructions: copyInstructions(params.Instructions),
	}
}

// ID returns the unique identifier for this function.
func (f *Function) ID() string {
	return f.id
}

// Name returns the function's name.
func (f *Function) Name() string {
	return f.name
}

// ArgumentCount returns the number of formal parameters.
func (f *Function) ArgumentCount() int {
	return len(f.arguments)
}

// ArgumentAt returns the formal parameter at the given index.
func (f *Function) ArgumentAt(index int) *Value {
	return f.arguments[index]
}

// InstructionCount returns the number of instructions.
func (f *Function) InstructionCount() int {
	return len(f.instructions)
}

// InstructionAt returns the instruction at the given index.
func (f *Function) InstructionAt(index int) *Instruction {
	return f.instructions[index]
}

// String renders the function in the textual IR syntax.
func (f *Function) String() string {
	var out strings.Builder
	out.WriteString("func @")
	out.WriteString(f.name)
	out.WriteString("(")
	for i, arg := range f.arguments {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(arg.String())
	}
	out.WriteString(") {\n")
	for _, instr := range f.instructions {
		out.WriteString("  ")
		out.WriteString(instr.String())
		out.WriteString("\n")
	}
	out.WriteString("}")
	return out.String()
}
