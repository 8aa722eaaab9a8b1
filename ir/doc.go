// Package ir provides an immutable representation of the analyzed IR.
//
// This package defines pure data structures: values, instructions,
// functions, and modules. They are created once, by a [Builder] or by the
// parser, and can then be shared safely across goroutines.
//
// # Key Types
//
//   - [Value]: an operand identity (argument, constant, global, or result)
//   - [Instruction]: an opcode with ordered operand values
//   - [Function]: an immutable instruction sequence with a name and ID
//   - [Module]: a named collection of functions
//   - [Builder]: the mutable construction path that produces Functions
//
// # Identity
//
// Operand distinctness is defined by *Value pointer identity. The Builder
// uniques identical constants and globals within a function, so pointer
// identity is canonical: two occurrences of the constant 7 in one function
// are the same operand, two distinct instruction results never are.
//
// # Immutability Guarantees
//
// All types except Builder are immutable after construction:
//
//   - No mutation methods exist on any type
//   - All fields are unexported
//   - Constructors copy input slices to prevent caller mutation
//   - Collections are exposed through index-based accessors only
//
// Example:
//
//	b := ir.NewBuilder("main")
//	x := b.Argument("x")
//	sum := b.EmitNamed("sum", op.Add, x, b.Constant(1))
//	b.Emit(op.Ret, sum)
//	fn := b.Build()
//
//	fmt.Println(fn.InstructionCount()) // 2
package ir
