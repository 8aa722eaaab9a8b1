// Package parser reads the textual IR format and produces ir Modules.
//
// The format is line-oriented:
//
//	; a comment
//	func @inc(%x) {
//	  %t0 = add %x, 1
//	  dbg.value %t0
//	  ret %t0
//	}
//
// Operands are locals ("%x", which must already be defined as an argument
// or an earlier result), globals ("@g", created on first use), or integer
// constants. Identical constants and globals within a function resolve to
// the same value.
package parser

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/risor-io/halstead/ir"
	"github.com/risor-io/halstead/op"
)

// Parse reads source and returns the module it defines. Syntax errors do
// not stop the parse: each offending line is reported, and all errors are
// returned together.
func Parse(ctx context.Context, name, source string) (*ir.Module, error) {
	p := &parser{name: name}
	lines := strings.Split(source, "\n")
	for i, line := range lines {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		p.parseLine(i+1, line)
	}
	if p.builder != nil {
		p.errorf(len(lines), "missing closing brace for func @%s", p.fnName)
	}
	if p.errs != nil {
		return nil, p.errs
	}
	return ir.NewModule(ir.ModuleParams{Name: name, Functions: p.functions}), nil
}

type parser struct {
	name      string
	functions []*ir.Function
	errs      *multierror.Error

	// Per-function state, nil/empty outside a func body.
	builder *ir.Builder
	fnName  string
	locals  map[string]*ir.Value
}

func (p *parser) errorf(line int, format string, args ...any) {
	err := fmt.Errorf("%s:%d: %s", p.name, line, fmt.Sprintf(format, args...))
	p.errs = multierror.Append(p.errs, err)
}

func (p *parser) parseLine(num int, line string) {
	if i := strings.IndexByte(line, ';'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}

	switch {
	case strings.HasPrefix(line, "func "):
		p.startFunc(num, strings.TrimPrefix(line, "func "))
	case line == "}":
		p.endFunc(num)
	default:
		p.parseInstruction(num, line)
	}
}

func (p *parser) startFunc(num int, header string) {
	if p.builder != nil {
		p.errorf(num, "func declared inside func @%s", p.fnName)
		return
	}
	open := strings.IndexByte(header, '(')
	end := strings.LastIndexByte(header, ')')
	if open < 0 || end < open || strings.TrimSpace(header[end+1:]) != "{" {
		p.errorf(num, "malformed func header %q", header)
		return
	}
	name := strings.TrimSpace(header[:open])
	if !strings.HasPrefix(name, "@") || len(name) < 2 {
		p.errorf(num, "function name must look like @name, got %q", name)
		return
	}

	p.builder = ir.NewBuilder(name[1:])
	p.fnName = name[1:]
	p.locals = map[string]*ir.Value{}

	params := strings.TrimSpace(header[open+1 : end])
	if params == "" {
		return
	}
	for _, param := range strings.Split(params, ",") {
		param = strings.TrimSpace(param)
		if !strings.HasPrefix(param, "%") || len(param) < 2 {
			p.errorf(num, "parameter must look like %%name, got %q", param)
			continue
		}
		arg := param[1:]
		if _, exists := p.locals[arg]; exists {
			p.errorf(num, "duplicate parameter %%%s", arg)
			continue
		}
		p.locals[arg] = p.builder.Argument(arg)
	}
}

func (p *parser) endFunc(num int) {
	if p.builder == nil {
		p.errorf(num, "unexpected }")
		return
	}
	p.functions = append(p.functions, p.builder.Build())
	p.builder = nil
	p.fnName = ""
	p.locals = nil
}

func (p *parser) parseInstruction(num int, line string) {
	if p.builder == nil {
		p.errorf(num, "instruction outside func body: %q", line)
		return
	}
	line = strings.Join(strings.Fields(line), " ")

	var result string
	if eq := strings.Index(line, "="); eq >= 0 {
		lhs := strings.TrimSpace(line[:eq])
		if !strings.HasPrefix(lhs, "%") || len(lhs) < 2 || strings.ContainsAny(lhs[1:], " \t") {
			p.errorf(num, "result must look like %%name, got %q", lhs)
			return
		}
		result = lhs[1:]
		line = strings.TrimSpace(line[eq+1:])
	}

	mnemonic, rest, _ := strings.Cut(line, " ")
	code, ok := op.Lookup(mnemonic)
	if !ok {
		p.errorf(num, "unknown opcode %q", mnemonic)
		return
	}
	info := op.GetInfo(code)

	var operands []*ir.Value
	rest = strings.TrimSpace(rest)
	if rest != "" {
		for _, field := range strings.Split(rest, ",") {
			operand, err := p.resolveOperand(strings.TrimSpace(field))
			if err != nil {
				p.errorf(num, "%v", err)
				return
			}
			operands = append(operands, operand)
		}
	}

	if info.Arity >= 0 && len(operands) != info.Arity {
		p.errorf(num, "%s takes %d operands, got %d", info.Name, info.Arity, len(operands))
		return
	}
	if result != "" && !info.HasResult {
		p.errorf(num, "%s does not produce a value", info.Name)
		return
	}
	if result == "" && info.HasResult {
		p.errorf(num, "%s requires a result, e.g. %%t = %s ...", info.Name, info.Name)
		return
	}
	if _, exists := p.locals[result]; result != "" && exists {
		p.errorf(num, "%%%s is already defined", result)
		return
	}

	if v := p.builder.EmitNamed(result, code, operands...); v != nil {
		p.locals[result] = v
	}
}

func (p *parser) resolveOperand(field string) (*ir.Value, error) {
	switch {
	case field == "":
		return nil, fmt.Errorf("empty operand")
	case strings.HasPrefix(field, "%"):
		v, ok := p.locals[field[1:]]
		if !ok {
			return nil, fmt.Errorf("undefined value %s", field)
		}
		return v, nil
	case strings.HasPrefix(field, "@"):
		if len(field) < 2 {
			return nil, fmt.Errorf("empty global name")
		}
		return p.builder.Global(field[1:]), nil
	default:
		c, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("malformed operand %q", field)
		}
		return p.builder.Constant(c), nil
	}
}
