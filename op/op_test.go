package op

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetInfo(t *testing.T) {
	info := GetInfo(Add)
	assert.Equal(t, "add", info.Name)
	assert.Equal(t, 2, info.Arity)
	assert.Equal(t, Add, info.Code)
	assert.True(t, info.HasResult)
	assert.False(t, info.IsDebug)
}

func TestGetInfoAllOpcodes(t *testing.T) {
	tests := []struct {
		code      Code
		name      string
		arity     int
		hasResult bool
	}{
		{Ret, "ret", -1, false},
		{Br, "br", 1, false},
		{CondBr, "condbr", 3, false},
		{Switch, "switch", -1, false},
		{Unreachable, "unreachable", 0, false},
		{Add, "add", 2, true},
		{Sub, "sub", 2, true},
		{Mul, "mul", 2, true},
		{SDiv, "sdiv", 2, true},
		{UDiv, "udiv", 2, true},
		{SRem, "srem", 2, true},
		{URem, "urem", 2, true},
		{Shl, "shl", 2, true},
		{LShr, "lshr", 2, true},
		{AShr, "ashr", 2, true},
		{And, "and", 2, true},
		{Or, "or", 2, true},
		{Xor, "xor", 2, true},
		{Alloca, "alloca", 0, true},
		{Load, "load", 1, true},
		{Store, "store", 2, false},
		{GetElem, "getelem", -1, true},
		{Trunc, "trunc", 1, true},
		{ZExt, "zext", 1, true},
		{SExt, "sext", 1, true},
		{Bitcast, "bitcast", 1, true},
		{ICmp, "icmp", 2, true},
		{FCmp, "fcmp", 2, true},
		{Phi, "phi", -1, true},
		{Select, "select", 3, true},
		{Call, "call", -1, true},
		{DbgDeclare, "dbg.declare", -1, false},
		{DbgValue, "dbg.value", -1, false},
		{DbgLabel, "dbg.label", -1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := GetInfo(tt.code)
			assert.Equal(t, tt.code, info.Code)
			assert.Equal(t, tt.name, info.Name)
			assert.Equal(t, tt.arity, info.Arity)
			assert.Equal(t, tt.hasResult, info.HasResult)
		})
	}
}

func TestGetInfoInvalid(t *testing.T) {
	info := GetInfo(Invalid)
	assert.Equal(t, Code(0), info.Code)
	assert.Equal(t, "", info.Name)
}

func TestLookup(t *testing.T) {
	code, ok := Lookup("store")
	assert.True(t, ok)
	assert.Equal(t, Store, code)

	_, ok = Lookup("frobnicate")
	assert.False(t, ok)
}

func TestString(t *testing.T) {
	assert.Equal(t, "condbr", CondBr.String())
	assert.Equal(t, "dbg.value", DbgValue.String())
	assert.Equal(t, "", Code(255).String())
	assert.Equal(t, "", Code(4096).String())
}

func TestIsDebug(t *testing.T) {
	assert.True(t, DbgDeclare.IsDebug())
	assert.True(t, DbgValue.IsDebug())
	assert.True(t, DbgLabel.IsDebug())
	assert.False(t, Add.IsDebug())
	assert.False(t, Ret.IsDebug())
	assert.False(t, Code(4096).IsDebug())
}
