// Package optimizer implements the machine-independent IR passes from
// §4.6: constant folding, constant propagation, copy propagation,
// dead-code elimination, NOP removal, and (at optimization level ≥ 2) a
// peephole pass. Level 0 runs nothing; any higher level iterates the
// passes to a fixed point (capped at maxIterations rounds), and the
// level only decides whether the peephole pass also runs.
package optimizer

import "cxxc/internal/ir"

// constantFold rewrites `t = k1 OP k2` to `t = K` for every
// binary-arithmetic/bitwise/comparison/logical instruction whose
// operands are both Constant, skipping division/modulo by zero (§4.6
// step 1). Reports whether any instruction changed.
func constantFold(fn *ir.Function) bool {
	changed := false
	for i, instr := range fn.Instructions {
		c1, ok1 := instr.Arg1.(ir.Constant)
		c2, ok2 := instr.Arg2.(ir.Constant)
		if !ok1 || !ok2 {
			continue
		}
		v, ok := evalBinary(instr.Op, c1.Value, c2.Value)
		if !ok {
			continue
		}
		fn.Instructions[i] = ir.Instruction{Op: ir.ASSIGN, Result: instr.Result, Arg1: ir.Constant{Value: v}}
		changed = true
	}
	return changed
}

func evalBinary(op ir.Opcode, a, b any) (any, bool) {
	switch op {
	case ir.ADD, ir.SUB, ir.MUL, ir.DIV, ir.MOD:
		return evalArith(op, a, b)
	case ir.AND, ir.OR, ir.XOR, ir.SHL, ir.SHR:
		return evalBitwise(op, a, b)
	case ir.EQ, ir.NE, ir.LT, ir.LE, ir.GT, ir.GE:
		return evalCompare(op, a, b)
	case ir.LAND, ir.LOR:
		return evalLogical(op, a, b)
	}
	return nil, false
}

func asFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case int64:
		return float64(x), true
	case float64:
		return x, true
	}
	return 0, false
}

func asInt(v any) (int64, bool) {
	switch x := v.(type) {
	case int64:
		return x, true
	case float64:
		return int64(x), true
	}
	return 0, false
}

func isFloatOperand(a, b any) bool {
	_, af := a.(float64)
	_, bf := b.(float64)
	return af || bf
}

// evalArith handles `+ - * / %`. Division/modulo by a Constant zero is
// left un-folded (§4.6 step 1: "Division and modulo by zero are
// skipped"). Integer division truncates toward zero, matching Go's
// native int64 division.
func evalArith(op ir.Opcode, a, b any) (any, bool) {
	if isFloatOperand(a, b) {
		af, _ := asFloat(a)
		bf, _ := asFloat(b)
		switch op {
		case ir.ADD:
			return af + bf, true
		case ir.SUB:
			return af - bf, true
		case ir.MUL:
			return af * bf, true
		case ir.DIV:
			if bf == 0 {
				return nil, false
			}
			return af / bf, true
		case ir.MOD:
			return nil, false // modulo is not defined over floats in this language
		}
		return nil, false
	}

	ai, _ := asInt(a)
	bi, _ := asInt(b)
	switch op {
	case ir.ADD:
		return ai + bi, true
	case ir.SUB:
		return ai - bi, true
	case ir.MUL:
		return ai * bi, true
	case ir.DIV:
		if bi == 0 {
			return nil, false
		}
		return ai / bi, true
	case ir.MOD:
		if bi == 0 {
			return nil, false
		}
		return ai % bi, true
	}
	return nil, false
}

func evalBitwise(op ir.Opcode, a, b any) (any, bool) {
	ai, ok1 := asInt(a)
	bi, ok2 := asInt(b)
	if !ok1 || !ok2 {
		return nil, false
	}
	switch op {
	case ir.AND:
		return ai & bi, true
	case ir.OR:
		return ai | bi, true
	case ir.XOR:
		return ai ^ bi, true
	case ir.SHL:
		return ai << uint(bi), true
	case ir.SHR:
		return ai >> uint(bi), true
	}
	return nil, false
}

func evalCompare(op ir.Opcode, a, b any) (any, bool) {
	af, ok1 := asFloat(a)
	bf, ok2 := asFloat(b)
	if !ok1 || !ok2 {
		return nil, false
	}
	switch op {
	case ir.EQ:
		return af == bf, true
	case ir.NE:
		return af != bf, true
	case ir.LT:
		return af < bf, true
	case ir.LE:
		return af <= bf, true
	case ir.GT:
		return af > bf, true
	case ir.GE:
		return af >= bf, true
	}
	return nil, false
}

// evalLogical folds `&&`/`||`, producing 0/1 per §4.6 step 1 ("logical
// ops produce 0/1").
func evalLogical(op ir.Opcode, a, b any) (any, bool) {
	at, ok1 := truthy(a)
	bt, ok2 := truthy(b)
	if !ok1 || !ok2 {
		return nil, false
	}
	switch op {
	case ir.LAND:
		return boolToInt(at && bt), true
	case ir.LOR:
		return boolToInt(at || bt), true
	}
	return nil, false
}

func truthy(v any) (bool, bool) {
	switch x := v.(type) {
	case int64:
		return x != 0, true
	case float64:
		return x != 0, true
	case bool:
		return x, true
	}
	return false, false
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
