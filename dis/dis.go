// Package dis renders functions as a human-readable instruction listing.
package dis

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/risor-io/halstead/ir"
)

// Entry is one listing line: an instruction and its offset within the
// function.
type Entry struct {
	Offset      int
	Instruction *ir.Instruction
}

// Disassemble returns one Entry per instruction of the function.
func Disassemble(fn *ir.Function) []Entry {
	entries := make([]Entry, fn.InstructionCount())
	for i := 0; i < fn.InstructionCount(); i++ {
		entries[i] = Entry{Offset: i, Instruction: fn.InstructionAt(i)}
	}
	return entries
}

var (
	opcodeColor = color.New(color.FgCyan)
	debugColor  = color.New(color.FgYellow)
)

// Print writes the entries to w, one instruction per line. Opcode names
// are colored unless color output is disabled via color.NoColor.
func Print(w io.Writer, entries []Entry) {
	for _, e := range entries {
		instr := e.Instruction
		c := opcodeColor
		if instr.IsDebug() {
			c = debugColor
		}

		var result string
		if r := instr.Result(); r != nil {
			result = r.String() + " = "
		}
		operands := make([]string, instr.OperandCount())
		for i := range operands {
			operands[i] = instr.OperandAt(i).String()
		}

		line := fmt.Sprintf("%6d  %s%s %s",
			e.Offset,
			result,
			c.Sprint(instr.Opcode().String()),
			strings.Join(operands, ", "))
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
}

// Fprint disassembles fn and writes the listing to w, preceded by the
// function header.
func Fprint(w io.Writer, fn *ir.Function) {
	args := make([]string, fn.ArgumentCount())
	for i := range args {
		args[i] = fn.ArgumentAt(i).String()
	}
	fmt.Fprintf(w, "func @%s(%s):\n", fn.Name(), strings.Join(args, ", "))
	Print(w, Disassemble(fn))
}
