package optimizer

import "cxxc/internal/ir"

// valueKey returns the identity key used to track a Temp or Variable
// across a propagation pass's linear scan, or ("", false) for any other
// Value kind (Constant, Label have no "definition" to track).
func valueKey(v ir.Value) (string, bool) {
	switch x := v.(type) {
	case ir.Temp:
		return "t:" + x.Name, true
	case ir.Variable:
		return "v:" + x.Name, true
	}
	return "", false
}

// constantPropagate performs the single-pass linear scan of §4.6 step
// 2: `ASSIGN x Constant(c)` records x↦c; any later use of a name
// carrying a recorded constant is replaced by it; any defining use
// evicts the name. Every LABEL clears the recorded constants, since a
// label can be reached by a jump from elsewhere in the function.
func constantPropagate(fn *ir.Function) bool {
	consts := map[string]ir.Constant{}
	changed := false

	substitute := func(v ir.Value) ir.Value {
		k, ok := valueKey(v)
		if !ok {
			return v
		}
		if c, ok := consts[k]; ok {
			changed = true
			return c
		}
		return v
	}

	for i := range fn.Instructions {
		instr := &fn.Instructions[i]
		if instr.Op == ir.LABEL {
			consts = map[string]ir.Constant{}
			continue
		}
		if instr.Arg1 != nil {
			instr.Arg1 = substitute(instr.Arg1)
		}
		if instr.Arg2 != nil {
			instr.Arg2 = substitute(instr.Arg2)
		}
		if instr.Arg3 != nil {
			instr.Arg3 = substitute(instr.Arg3)
		}

		if instr.Result == nil {
			continue
		}
		k, ok := valueKey(instr.Result)
		if !ok {
			continue
		}
		if instr.Op == ir.ASSIGN {
			if c, ok := instr.Arg1.(ir.Constant); ok {
				consts[k] = c
				continue
			}
		}
		delete(consts, k)
	}
	return changed
}

// copyPropagate performs §4.6 step 3: `ASSIGN x y` where y is a
// Temp/Variable records x↦y; subsequent reads of x are replaced with y
// until x is redefined or a LABEL is reached.
func copyPropagate(fn *ir.Function) bool {
	copies := map[string]ir.Value{}
	changed := false

	substitute := func(v ir.Value) ir.Value {
		k, ok := valueKey(v)
		if !ok {
			return v
		}
		if src, ok := copies[k]; ok {
			changed = true
			return src
		}
		return v
	}

	for i := range fn.Instructions {
		instr := &fn.Instructions[i]
		if instr.Op == ir.LABEL {
			copies = map[string]ir.Value{}
			continue
		}
		if instr.Arg1 != nil {
			instr.Arg1 = substitute(instr.Arg1)
		}
		if instr.Arg2 != nil {
			instr.Arg2 = substitute(instr.Arg2)
		}
		if instr.Arg3 != nil {
			instr.Arg3 = substitute(instr.Arg3)
		}

		if instr.Result == nil {
			continue
		}
		k, ok := valueKey(instr.Result)
		if !ok {
			continue
		}
		if instr.Op == ir.ASSIGN {
			if _, isConst := instr.Arg1.(ir.Constant); !isConst {
				if _, ok := valueKey(instr.Arg1); ok {
					copies[k] = instr.Arg1
					continue
				}
			}
		}
		delete(copies, k)
	}
	return changed
}
