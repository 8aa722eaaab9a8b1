// Package halstead computes Halstead software-complexity metrics for one
// function. Instructions are the operators, classified by opcode; the
// values they reference are the operands, classified by identity.
package halstead

import (
	"fmt"
	"io"
	"math"

	"github.com/risor-io/halstead/ir"
	"github.com/risor-io/halstead/op"
)

// Accumulator tallies operators and operands for exactly one function.
// Create one per function with New, or call Reset between functions;
// ingesting a second function without a reset would merge the tallies.
//
// An Accumulator is not safe for concurrent use. Analyses of different
// functions can run in parallel as long as each has its own Accumulator.
type Accumulator struct {
	fn *ir.Function

	operators []op.Code
	operands  []*ir.Value

	distinctOperators map[op.Code]struct{}
	distinctOperands  map[*ir.Value]struct{}
}

// New returns an empty Accumulator.
func New() *Accumulator {
	a := &Accumulator{}
	a.Reset()
	return a
}

// Reset clears all state so the Accumulator can ingest another function.
func (a *Accumulator) Reset() {
	a.fn = nil
	a.operators = nil
	a.operands = nil
	a.distinctOperators = map[op.Code]struct{}{}
	a.distinctOperands = map[*ir.Value]struct{}{}
}

// Ingest runs one pass over the function's instructions. Every non-debug
// instruction contributes one operator occurrence (its opcode) and one
// operand occurrence per operand reference, in instruction order. Debug
// pseudo-instructions contribute nothing at all.
func (a *Accumulator) Ingest(fn *ir.Function) {
	for i := 0; i < fn.InstructionCount(); i++ {
		instr := fn.InstructionAt(i)
		if instr.IsDebug() {
			continue
		}
		a.operators = append(a.operators, instr.Opcode())
		for j := 0; j < instr.OperandCount(); j++ {
			a.operands = append(a.operands, instr.OperandAt(j))
		}
	}
	for _, operator := range a.operators {
		a.distinctOperators[operator] = struct{}{}
	}
	for _, operand := range a.operands {
		a.distinctOperands[operand] = struct{}{}
	}
	a.fn = fn
}

// Metrics holds the counts and derived Halstead metrics for one function.
type Metrics struct {
	Function string

	DistinctOperators int
	DistinctOperands  int
	TotalOperators    int
	TotalOperands     int

	Vocabulary    int
	ProgramLength int

	EstimatedLength float64
	Volume          float64
	Difficulty      float64
	Effort          float64
}

// Metrics computes the metric family from the current tallies. It is a
// pure read: calling it repeatedly yields identical results.
func (a *Accumulator) Metrics() Metrics {
	n1 := len(a.distinctOperators)
	n2 := len(a.distinctOperands)
	total1 := len(a.operators)
	total2 := len(a.operands)

	vocabulary := n1 + n2
	length := total1 + total2

	volume := float64(length) * math.Log2(float64(vocabulary))

	// Difficulty truncates both divisions to integers before the
	// multiply. With zero distinct operands the terms are promoted to
	// float64 first, so the result is a NaN/Inf sentinel rather than a
	// divide fault.
	var difficulty float64
	if n2 > 0 {
		difficulty = float64((n1 / 2) * (total2 / n2))
	} else {
		difficulty = float64(n1/2) * (float64(total2) / float64(n2))
	}

	name := "<none>"
	if a.fn != nil {
		name = a.fn.Name()
	}

	return Metrics{
		Function:          name,
		DistinctOperators: n1,
		DistinctOperands:  n2,
		TotalOperators:    total1,
		TotalOperands:     total2,
		Vocabulary:        vocabulary,
		ProgramLength:     length,
		EstimatedLength:   estimatedTerm(n1) + estimatedTerm(n2),
		Volume:            volume,
		Difficulty:        difficulty,
		Effort:            difficulty * volume,
	}
}

// estimatedTerm is one n*log2(n) term of the estimated program length.
// A zero count contributes zero, by convention, rather than the NaN that
// 0*log2(0) would produce. This is distinct from the Difficulty policy,
// which keeps its non-finite sentinel.
func estimatedTerm(n int) float64 {
	if n == 0 {
		return 0
	}
	return float64(n) * math.Log2(float64(n))
}

// Report writes the metrics to w, one per line. It reads the ingested
// state without mutating it, so repeated calls produce identical bytes.
// Reporting before any ingestion is well-defined: all counts are zero and
// the derived metrics carry their floating-point sentinels.
func (a *Accumulator) Report(w io.Writer) error {
	m := a.Metrics()
	_, err := fmt.Fprintf(w,
		"Halstead complexity of `%s`:\n"+
			"  # distinct operators: %d\n"+
			"  # distinct operands: %d\n"+
			"  # total operators: %d\n"+
			"  # total operands: %d\n"+
			"  Vocabulary: %d\n"+
			"  Program length: %d\n"+
			"  Estimated program length: %g\n"+
			"  Volume: %g\n"+
			"  Difficulty: %g\n"+
			"  Effort: %g\n",
		m.Function,
		m.DistinctOperators, m.DistinctOperands,
		m.TotalOperators, m.TotalOperands,
		m.Vocabulary, m.ProgramLength,
		m.EstimatedLength, m.Volume, m.Difficulty, m.Effort)
	return err
}

// Analyze is a convenience that ingests fn into a fresh Accumulator and
// returns its metrics.
func Analyze(fn *ir.Function) Metrics {
	a := New()
	a.Ingest(fn)
	return a.Metrics()
}
