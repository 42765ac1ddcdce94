package ir

import (
	"fmt"
	"strings"
)

var binarySymbol = map[Opcode]string{
	ADD: "+", SUB: "-", MUL: "*", DIV: "/", MOD: "%",
	AND: "&", OR: "|", XOR: "^", SHL: "<<", SHR: ">>",
	LAND: "&&", LOR: "||",
	EQ: "==", NE: "!=", LT: "<", LE: "<=", GT: ">", GE: ">=",
}

var unarySymbol = map[Opcode]string{
	NEG: "-", NOT: "~", LNOT: "!",
}

// Print renders p in the canonical textual form bound by §6/§8: one
// `function NAME(p1, p2, …):` header per function, an optional local
// variables comment, then one instruction per line.
func Print(p *Program) string {
	var sb strings.Builder
	for i, fn := range p.Functions {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(PrintFunction(fn))
	}
	return sb.String()
}

// PrintFunction renders a single function.
func PrintFunction(fn *Function) string {
	var sb strings.Builder
	names := make([]string, len(fn.Parameters))
	for i, p := range fn.Parameters {
		names[i] = p.Name
	}
	fmt.Fprintf(&sb, "function %s(%s):\n", fn.Name, strings.Join(names, ", "))

	if len(fn.LocalVars) > 0 {
		lnames := make([]string, len(fn.LocalVars))
		for i, v := range fn.LocalVars {
			lnames[i] = v.Name
		}
		fmt.Fprintf(&sb, "    # Local variables: %s\n", strings.Join(lnames, ", "))
	}

	for _, instr := range fn.Instructions {
		line := PrintInstruction(instr)
		if instr.Op == LABEL {
			sb.WriteString(line)
		} else {
			sb.WriteString("    " + line)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// PrintInstruction renders one instruction per the opcode-specific
// forms in §6.
func PrintInstruction(in Instruction) string {
	switch in.Op {
	case LABEL:
		return in.Label + ":"
	case GOTO:
		return "goto " + in.Label
	case IF_FALSE:
		return fmt.Sprintf("if !%s goto %s", in.Arg1, in.Label)
	case IF_TRUE:
		return fmt.Sprintf("if %s goto %s", in.Arg1, in.Label)
	case RETURN:
		if in.Arg1 != nil {
			return "return " + in.Arg1.String()
		}
		return "return"
	case CALL:
		call := fmt.Sprintf("call %s(%s)", in.Arg1, in.Arg2)
		if in.Result != nil {
			return in.Result.String() + " = " + call
		}
		return call
	case PARAM:
		return "param " + in.Arg1.String()
	case LOAD:
		return fmt.Sprintf("%s = *%s", in.Result, in.Arg1)
	case STORE:
		return fmt.Sprintf("*%s = %s", in.Arg1, in.Arg2)
	case LOAD_ADDR:
		return fmt.Sprintf("%s = &%s", in.Result, in.Arg1)
	case ALLOC:
		return fmt.Sprintf("%s = alloc %s", in.Result, in.Arg1)
	case FREE:
		return "free " + in.Arg1.String()
	case INDEX:
		return fmt.Sprintf("%s = %s[%s]", in.Result, in.Arg1, in.Arg2)
	case STORE_INDEX:
		return fmt.Sprintf("%s[%s] = %s", in.Arg1, in.Arg2, in.Arg3)
	case ASSIGN:
		return fmt.Sprintf("%s = %s", in.Result, in.Arg1)
	case CAST:
		return fmt.Sprintf("%s = (%s) %s", in.Result, in.Label, in.Arg1)
	case NOP:
		return "nop"
	}
	if sym, ok := binarySymbol[in.Op]; ok {
		return fmt.Sprintf("%s = %s %s %s", in.Result, in.Arg1, sym, in.Arg2)
	}
	if sym, ok := unarySymbol[in.Op]; ok {
		return fmt.Sprintf("%s = %s %s", in.Result, sym, in.Arg1)
	}
	return fmt.Sprintf("%s %s %s %s", in.Op, in.Result, in.Arg1, in.Arg2)
}
