package ir

// copyValues returns a copy of the given value slice.
func copyValues(src []*Value) []*Value {
	if src == nil {
		return nil
	}
	dst := make([]*Value, len(src))
	copy(dst, src)
	return dst
}

// copyInstructions returns a copy of the given instruction slice.
func copyInstructions(src []*Instruction) []*Instruction {
	if src == nil {
		return nil
	}
	dst := make([]*Instruction, len(src))
	copy(dst, src)
	return dst
}

// copyFunctions returns a copy of the given function slice.
func copyFunctions(src []*Function) []*Function {
	if src == nil {
		return nil
	}
	dst := make([]*Function, len(src))
	copy(dst, src)
	return dst
}
