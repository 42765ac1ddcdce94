package optimizer

import "cxxc/internal/ir"

// Report summarizes how many times each pass fired across an Optimize
// call, keyed by function name then pass name. Consumed by the
// statistics and dump tooling; optimization itself never reads it.
type Report struct {
	Level     int
	Functions map[string]map[string]int
}

func newReport(level int) *Report {
	return &Report{Level: level, Functions: map[string]map[string]int{}}
}

func (r *Report) record(fnName, pass string) {
	m, ok := r.Functions[fnName]
	if !ok {
		m = map[string]int{}
		r.Functions[fnName] = m
	}
	m[pass]++
}

// maxIterations bounds the fixed-point loop so a pass bug can never
// hang the compiler; no legitimate program needs anywhere near this
// many rounds to converge.
const maxIterations = 1000

// Optimize runs the optimizer in place over every function of prog at
// the given level (0-3) and returns a Report of how many times each
// pass fired. Level 0 disables all optimization and returns an empty
// report without touching prog (§4.6: "Level 0 disables all
// optimization").
func Optimize(prog *ir.Program, level int) *Report {
	report := newReport(level)
	if level <= 0 {
		return report
	}

	for _, fn := range prog.Functions {
		optimizeFunction(fn, level, report)
	}
	return report
}

func optimizeFunction(fn *ir.Function, level int, report *Report) {
	for iter := 0; iter < maxIterations; iter++ {
		changed := false
		if constantFold(fn) {
			report.record(fn.Name, "fold")
			changed = true
		}
		if constantPropagate(fn) {
			report.record(fn.Name, "const-propagate")
			changed = true
		}
		if copyPropagate(fn) {
			report.record(fn.Name, "copy-propagate")
			changed = true
		}
		if deadCodeEliminate(fn) {
			report.record(fn.Name, "dce")
			changed = true
		}
		if removeNops(fn) {
			report.record(fn.Name, "remove-nops")
			changed = true
		}
		if !changed {
			break
		}
	}

	if level < 2 {
		return
	}

	if peephole(fn) {
		report.record(fn.Name, "peephole")
		// The peephole pass can expose fresh folding/DCE
		// opportunities (e.g. an identity-folded operand feeding
		// a now-dead temp); re-run the fixed-point loop so the
		// result is stable under re-optimization (§8 invariant 8).
		for iter := 0; iter < maxIterations; iter++ {
			changed := false
			if constantFold(fn) {
				report.record(fn.Name, "fold")
				changed = true
			}
			if constantPropagate(fn) {
				report.record(fn.Name, "const-propagate")
				changed = true
			}
			if copyPropagate(fn) {
				report.record(fn.Name, "copy-propagate")
				changed = true
			}
			if deadCodeEliminate(fn) {
				report.record(fn.Name, "dce")
				changed = true
			}
			if removeNops(fn) {
				report.record(fn.Name, "remove-nops")
				changed = true
			}
			if !changed {
				break
			}
		}
	}
}
