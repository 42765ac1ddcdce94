package optimizer

import "cxxc/internal/ir"

// peephole runs the two local rewrites from §4.6's level-≥2 pass:
// (a) collapse `x = y; z = x` into `z = y` when x is not otherwise
// live, and (b) fold the additive/multiplicative identity and
// zero-absorption laws against a Constant operand.
func peephole(fn *ir.Function) bool {
	changed := false
	changed = foldIdentities(fn) || changed
	changed = collapseChainedCopies(fn) || changed
	return changed
}

// foldIdentities rewrites `y + 0`, `0 + y`, `y * 1`, `1 * y` to `y`, and
// `y * 0`, `0 * y` to `0`.
func foldIdentities(fn *ir.Function) bool {
	changed := false
	for i, instr := range fn.Instructions {
		switch instr.Op {
		case ir.ADD:
			if isConstZero(instr.Arg2) {
				fn.Instructions[i] = ir.Instruction{Op: ir.ASSIGN, Result: instr.Result, Arg1: instr.Arg1}
				changed = true
			} else if isConstZero(instr.Arg1) {
				fn.Instructions[i] = ir.Instruction{Op: ir.ASSIGN, Result: instr.Result, Arg1: instr.Arg2}
				changed = true
			}
		case ir.MUL:
			if isConstZero(instr.Arg1) || isConstZero(instr.Arg2) {
				fn.Instructions[i] = ir.Instruction{Op: ir.ASSIGN, Result: instr.Result, Arg1: ir.Constant{Value: int64(0)}}
				changed = true
			} else if isConstOne(instr.Arg2) {
				fn.Instructions[i] = ir.Instruction{Op: ir.ASSIGN, Result: instr.Result, Arg1: instr.Arg1}
				changed = true
			} else if isConstOne(instr.Arg1) {
				fn.Instructions[i] = ir.Instruction{Op: ir.ASSIGN, Result: instr.Result, Arg1: instr.Arg2}
				changed = true
			}
		}
	}
	return changed
}

func isConstZero(v ir.Value) bool {
	c, ok := v.(ir.Constant)
	if !ok {
		return false
	}
	switch x := c.Value.(type) {
	case int64:
		return x == 0
	case float64:
		return x == 0
	}
	return false
}

func isConstOne(v ir.Value) bool {
	c, ok := v.(ir.Constant)
	if !ok {
		return false
	}
	switch x := c.Value.(type) {
	case int64:
		return x == 1
	case float64:
		return x == 1
	}
	return false
}

// collapseChainedCopies rewrites a consecutive `x = y; z = x` into
// `z = y` whenever x has exactly that one use in the whole function.
func collapseChainedCopies(fn *ir.Function) bool {
	changed := false
	uses := countUses(fn)

	for i := 0; i+1 < len(fn.Instructions); i++ {
		first := fn.Instructions[i]
		second := fn.Instructions[i+1]
		if first.Op != ir.ASSIGN || second.Op != ir.ASSIGN {
			continue
		}
		xKey, ok := valueKey(first.Result)
		if !ok {
			continue
		}
		yKey, ok := valueKey(second.Arg1)
		if !ok || yKey != xKey {
			continue
		}
		if uses[xKey] != 1 {
			continue
		}
		fn.Instructions[i+1].Arg1 = first.Arg1
		fn.Instructions[i] = ir.Instruction{Op: ir.NOP}
		changed = true
	}
	return changed
}

func countUses(fn *ir.Function) map[string]int {
	uses := map[string]int{}
	for _, instr := range fn.Instructions {
		for _, v := range [...]ir.Value{instr.Arg1, instr.Arg2, instr.Arg3} {
			if v == nil {
				continue
			}
			if k, ok := valueKey(v); ok {
				uses[k]++
			}
		}
	}
	return uses
}
