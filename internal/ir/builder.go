package ir

import "fmt"

// Builder accumulates the IR for one function at a time: it owns a
// monotonic temp counter, a monotonic label counter, and the
// in-progress instruction list, per §4.5.
type Builder struct {
	program   *Program
	fn        *Function
	tempNum   int
	labelNum  map[string]int
	seenVars  map[string]bool
	stringNum int
}

// NewBuilder creates a Builder over a fresh empty Program.
func NewBuilder() *Builder {
	return &Builder{
		program:  &Program{},
		labelNum: map[string]int{},
	}
}

// Program returns the Program built so far.
func (b *Builder) Program() *Program { return b.program }

// StartFunction begins a new function named name with the given
// parameter names, resetting the temp/label counters (they are scoped
// per-function, per §3's "monotonic allocation order per function").
func (b *Builder) StartFunction(name, returnType string, params []string) {
	fn := &Function{Name: name, ReturnType: returnType}
	for _, p := range params {
		fn.Parameters = append(fn.Parameters, Variable{Name: p})
	}
	b.fn = fn
	b.tempNum = 0
	b.labelNum = map[string]int{}
	b.seenVars = map[string]bool{}
	for _, p := range params {
		b.seenVars[p] = true
	}
}

// FinishFunction appends the in-progress function to the program and
// ensures its instruction list ends with a RETURN (§4.5, §8 invariant
// 6), emitting a bare one if the last instruction isn't already a
// RETURN.
func (b *Builder) FinishFunction() *Function {
	fn := b.fn
	if len(fn.Instructions) == 0 || fn.Instructions[len(fn.Instructions)-1].Op != RETURN {
		fn.Instructions = append(fn.Instructions, Instruction{Op: RETURN})
	}
	b.program.Functions = append(b.program.Functions, fn)
	b.fn = nil
	return fn
}

// NewTemp allocates a fresh temporary name, tN, in allocation order.
func (b *Builder) NewTemp() Temp {
	t := Temp{Name: fmt.Sprintf("t%d", b.tempNum)}
	b.tempNum++
	return t
}

// NewLabel allocates a fresh label under prefix, e.g. "else0", "endif0".
func (b *Builder) NewLabel(prefix string) Label {
	n := b.labelNum[prefix]
	b.labelNum[prefix] = n + 1
	return Label{Name: fmt.Sprintf("%s%d", prefix, n)}
}

// Var records name as a local variable the first time it is seen in the
// current function and returns its Variable value.
func (b *Builder) Var(name string) Variable {
	if !b.seenVars[name] {
		b.seenVars[name] = true
		b.fn.LocalVars = append(b.fn.LocalVars, Variable{Name: name})
	}
	return Variable{Name: name}
}

// Emit appends instr to the current function's instruction list and
// returns it.
func (b *Builder) Emit(instr Instruction) Instruction {
	b.fn.Instructions = append(b.fn.Instructions, instr)
	return instr
}

// InternString records s under a fresh strN label in the program's
// string table (deduplicating identical literals) and returns the
// Label.
func (b *Builder) InternString(s string) Label {
	for _, lit := range b.program.StringLiterals {
		if lit.Bytes == s {
			return Label{Name: lit.Label}
		}
	}
	label := fmt.Sprintf("str%d", b.stringNum)
	b.stringNum++
	b.program.StringLiterals = append(b.program.StringLiterals, StringLiteral{Label: label, Bytes: s})
	return Label{Name: label}
}
