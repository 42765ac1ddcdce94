package optimizer

import "cxxc/internal/ir"

// deadCodeEliminate drops any instruction whose Result is defined but
// never used elsewhere, unless its opcode has side effects or is
// control-significant (§4.6 step 4).
func deadCodeEliminate(fn *ir.Function) bool {
	used := map[string]bool{}
	for _, instr := range fn.Instructions {
		for _, v := range [...]ir.Value{instr.Arg1, instr.Arg2, instr.Arg3} {
			if v == nil {
				continue
			}
			if k, ok := valueKey(v); ok {
				used[k] = true
			}
		}
	}

	kept := fn.Instructions[:0:0]
	for _, instr := range fn.Instructions {
		if ir.HasSideEffects(instr.Op) || instr.Result == nil {
			kept = append(kept, instr)
			continue
		}
		k, ok := valueKey(instr.Result)
		if !ok || used[k] {
			kept = append(kept, instr)
		}
	}

	changed := len(kept) != len(fn.Instructions)
	fn.Instructions = kept
	return changed
}

// removeNops drops every NOP instruction (§4.6 step 5).
func removeNops(fn *ir.Function) bool {
	kept := fn.Instructions[:0:0]
	for _, instr := range fn.Instructions {
		if instr.Op != ir.NOP {
			kept = append(kept, instr)
		}
	}
	changed := len(kept) != len(fn.Instructions)
	fn.Instructions = kept
	return changed
}
