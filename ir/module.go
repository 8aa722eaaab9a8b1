package ir

// Module is a named collection of functions, typically the result of
// parsing one source file. It is immutable after creation.
type Module struct {
	name      string
	functions []*Function
}

// ModuleParams contains parameters for creating a new Module.
type ModuleParams struct {
	Name      string
	Functions []*Function
}

// NewModule creates a new immutable Module from the given parameters.
func NewModule(params ModuleParams) *Module {
	return &Module{
		name:      params.Name,
		functions: copyFunctions(params.Functions),
	}
}

// Name returns the module's name.
func (m *Module) Name() string {
	return m.name
}

// FunctionCount returns the number of functions.
func (m *Module) FunctionCount() int {
	return len(m.functions)
}

// FunctionAt returns the function at the given index.
func (m *Module) FunctionAt(index int) *Function {
	return m.functions[index]
}

// Function returns the function with the given name.
func (m *Module) Function(name string) (*Function, bool) {
	for _, fn := range m.functions {
		if fn.Name() == name {
			return fn, true
		}
	}
	return nil, false
}

// FunctionNames returns the names of all functions in declaration order.
func (m *Module) FunctionNames() []string {
	names := make([]string, len(m.functions))
	for i, fn := range m.functions {
		names[i] = fn.Name()
	}
	return names
}
