package ir

import (
	"strings"

	"github.com/risor-io/halstead/op"
)

// Instruction is one IR instruction: an opcode applied to an ordered list
// of operand values, optionally producing a result value. Instructions are
// immutable after construction.
type Instruction struct {
	opcode   op.Code
	operands []*Value
	result   *Value
}

// Opcode returns the instruction's operation code.
func (i *Instruction) Opcode() op.Code {
	return i.opcode
}

// OperandCount returns the number of operands.
func (i *Instruction) OperandCount() int {
	return len(i.operands)
}

// OperandAt returns the operand at the given index.
func (i *Instruction) OperandAt(index int) *Value {
	return i.operands[index]
}

// Result returns the value this instruction produces, or nil for opcodes
// without a result (terminators, stores, debug pseudo-instructions).
func (i *Instruction) Result() *Value {
	return i.result
}

// IsDebug reports whether this is a metadata-only pseudo-instruction.
// Debug pseudo-instructions are excluded from complexity analysis: neither
// their opcode nor their operands are counted.
func (i *Instruction) IsDebug() bool {
	return i.opcode.IsDebug()
}

// String renders the instruction in the textual IR syntax.
func (i *Instruction) String() string {
	var out strings.Builder
	if i.result != nil {
		out.WriteString(i.result.String())
		out.WriteString(" = ")
	}
	out.WriteString(i.opcode.String())
	for idx, operand := range i.operands {
		if idx == 0 {
			out.WriteString(" ")
		} else {
			out.WriteString(", ")
		}
		out.WriteString(operand.String())
	}
	return out.String()
}
