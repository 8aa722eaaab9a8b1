// Package op defines the opcodes of the IR analyzed by this tool.
package op

// Code is an integer opcode that identifies the operation an instruction
// performs. The set is closed: every instruction in a well-formed function
// carries one of the codes below.
type Code uint16

const (
	Invalid Code = 0

	// Terminators
	Ret         Code = 1
	Br          Code = 2
	CondBr      Code = 3
	Switch      Code = 4
	Unreachable Code = 5

	// Arithmetic
	Add  Code = 10
	Sub  Code = 11
	Mul  Code = 12
	SDiv Code = 13
	UDiv Code = 14
	SRem Code = 15
	URem Code = 16

	// Bitwise
	Shl  Code = 20
	LShr Code = 21
	AShr Code = 22
	And  Code = 23
	Or   Code = 24
	Xor  Code = 25

	// Memory
	Alloca  Code = 30
	Load    Code = 31
	Store   Code = 32
	GetElem Code = 33

	// Conversion
	Trunc   Code = 40
	ZExt    Code = 41
	SExt    Code = 42
	Bitcast Code = 43

	// Comparison and selection
	ICmp   Code = 50
	FCmp   Code = 51
	Phi    Code = 52
	Select Code = 53

	// Calls
	Call Code = 60

	// Debug pseudo-instructions. These carry debugging metadata only and
	// are excluded from complexity analysis.
	DbgDeclare Code = 70
	DbgValue   Code = 71
	DbgLabel   Code = 72
)

// Info contains information about an opcode.
type Info struct {
	Code Code

	// Name is the textual mnemonic, e.g. "add" or "dbg.value".
	Name string

	// Arity is the required operand count, or -1 when the opcode accepts
	// a variable number of operands.
	Arity int

	// HasResult reports whether instructions with this opcode produce a
	// value usable as an operand of later instructions.
	HasResult bool

	// IsDebug marks metadata-only pseudo-instructions.
	IsDebug bool
}

var (
	infos  = make([]Info, 256)
	byName = make(map[string]Code)
)

func init() {
	type opInfo struct {
		op        Code
		name      string
		arity     int
		hasResult bool
		isDebug   bool
	}
	ops := []opInfo{
		{Ret, "ret", -1, false, false},
		{Br, "br", 1, false, false},
		{CondBr, "condbr", 3, false, false},
		{Switch, "switch", -1, false, false},
		{Unreachable, "unreachable", 0, false, false},
		{Add, "add", 2, true, false},
		{Sub, "sub", 2, true, false},
		{Mul, "mul", 2, true, false},
		{SDiv, "sdiv", 2, true, false},
		{UDiv, "udiv", 2, true, false},
		{SRem, "srem", 2, true, false},
		{URem, "urem", 2, true, false},
		{Shl, "shl", 2, true, false},
		{LShr, "lshr", 2, true, false},
		{AShr, "ashr", 2, true, false},
		{And, "and", 2, true, false},
		{Or, "or", 2, true, false},
		{Xor, "xor", 2, true, false},
		{Alloca, "alloca", 0, true, false},
		{Load, "load", 1, true, false},
		{Store, "store", 2, false, false},
		{GetElem, "getelem", -1, true, false},
		{Trunc, "trunc", 1, true, false},
		{ZExt, "zext", 1, true, false},
		{SExt, "sext", 1, true, false},
		{Bitcast, "bitcast", 1, true, false},
		{ICmp, "icmp", 2, true, false},
		{FCmp, "fcmp", 2, true, false},
		{Phi, "phi", -1, true, false},
		{Select, "select", 3, true, false},
		{Call, "call", -1, true, false},
		{DbgDeclare, "dbg.declare", -1, false, true},
		{DbgValue, "dbg.value", -1, false, true},
		{DbgLabel, "dbg.label", -1, false, true},
	}
	for _, o := range ops {
		infos[o.op] = Info{
			Code:      o.op,
			Name:      o.name,
			Arity:     o.arity,
			HasResult: o.hasResult,
			IsDebug:   o.isDebug,
		}
		byName[o.name] = o.op
	}
}

// GetInfo returns information about the given opcode.
func GetInfo(op Code) Info {
	return infos[op]
}

// Lookup returns the opcode for the given mnemonic.
func Lookup(name string) (Code, bool) {
	code, ok := byName[name]
	return code, ok
}

// String returns the opcode's mnemonic, or an empty string for an
// unknown code.
func (c Code) String() string {
	if int(c) >= len(infos) {
		return ""
	}
	return infos[c].Name
}

// IsDebug reports whether the opcode denotes a metadata-only
// pseudo-instruction.
func (c Code) IsDebug() bool {
	if int(c) >= len(infos) {
		return false
	}
	return infos[c].IsDebug
}
