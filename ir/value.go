package ir

import "strconv"

// ValueKind identifies where a value comes from.
type ValueKind int

const (
	// ArgumentValue is a formal parameter of the enclosing function.
	ArgumentValue ValueKind = iota + 1
	// ConstantValue is an integer constant. Constants are uniqued per
	// function, so two textually equal constants share one Value.
	ConstantValue
	// GlobalValue names a module-level location. Globals are uniqued
	// per function by name.
	GlobalValue
	// ResultValue is the result of an earlier instruction.
	ResultValue
)

// Value is a single IR value: a function argument, a constant, a global,
// or an instruction result. Values are created by a Builder and are
// immutable; pointer identity is the canonical notion of "same value",
// which is what operand distinctness is defined over.
type Value struct {
	kind     ValueKind
	name     string
	constant int64
}

// Kind returns where this value comes from.
func (v *Value) Kind() ValueKind {
	return v.kind
}

// Name returns the value's name without its sigil. Constants have no name.
func (v *Value) Name() string {
	return v.name
}

// Constant returns the integer payload of a ConstantValue. It is zero for
// every other kind.
func (v *Value) Constant() int64 {
	return v.constant
}

// String renders the value the way the textual IR spells it: "%x" for
// arguments and results, "@g" for globals, and the decimal literal for
// constants.
func (v *Value) String() string {
	switch v.kind {
	case ConstantValue:
		return strconv.FormatInt(v.constant, 10)
	case GlobalValue:
		return "@" + v.name
	default:
		return "%" + v.name
	}
}
