package ir

// Stats contains statistics about a function's instruction sequence.
// This is useful for a quick look at a function before deeper analysis.
type Stats struct {
	// InstructionCount is the total number of instructions, debug
	// pseudo-instructions included.
	InstructionCount int

	// DebugCount is the number of debug pseudo-instructions.
	DebugCount int

	// OperandCount is the total number of operand references across all
	// non-debug instructions.
	OperandCount int

	// ArgumentCount is the number of formal parameters.
	ArgumentCount int
}

// Stats returns statistics about this function.
func (f *Function) Stats() Stats {
	stats := Stats{
		InstructionCount: len(f.instructions),
		ArgumentCount:    len(f.arguments),
	}
	for _, instr := range f.instructions {
		if instr.IsDebug() {
			stats.DebugCount++
			continue
		}
		stats.OperandCount += instr.OperandCount()
	}
	return stats
}
