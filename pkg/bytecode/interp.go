package bytecode

import "fmt"

// State is the mutable runtime state a Trace executes a Program against:
// flat integer and clock register files, addressed by the same offsets the
// compiler baked into LOAD_INT/STORE_INT/LOAD_CLK/RESET_CLK.
type State struct {
	Ints   []int64
	Clocks []int64
}

// NewState allocates a zeroed State with the given register file sizes,
// typically vars.IntVars.FrameSize() and vars.Clocks.FrameSize().
func NewState(intFrame, clockFrame int) *State {
	return &State{Ints: make([]int64, intFrame), Clocks: make([]int64, clockFrame)}
}

// ErrFail is returned when a program executes a FAIL opcode. A well-behaved
// caller never runs a program compiled from an ill-typed tree, so seeing
// this indicates a bug upstream, not a runtime condition to recover from.
var ErrFail = fmt.Errorf("bytecode: program failed (compiled from an ill-typed tree)")

// Trace is a small reference interpreter for Program. It exists only to let
// this package's own tests assert the runtime behaviour of compiled programs
// without standing up a full VM; it is not a supported execution engine and
// performs none of the optimisation or tracing a real VM would.
type Trace struct {
	st *State
}

// NewTrace constructs a Trace executing programs against st.
func NewTrace(st *State) *Trace {
	return &Trace{st}
}

// Run executes p to completion, returning the final operand stack (a single
// value for an expression program compiled with CompileExpr; empty for a
// statement program compiled with CompileStmt).
func (t *Trace) Run(p *Program) ([]int64, error) {
	var stack []int64

	push := func(v int64) { stack = append(stack, v) }
	pop := func() int64 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return v
	}
	boolInt := func(b bool) int64 {
		if b {
			return 1
		}
		return 0
	}

	for pc := 0; pc < len(p.Instrs); pc++ {
		instr := p.Instrs[pc]

		switch instr.Op {
		case PUSH:
			push(int64(instr.Arg))
		case LOAD_INT:
			push(t.st.Ints[instr.Arg])
		case STORE_INT:
			t.st.Ints[instr.Arg] = pop()
		case LOAD_INT_DYN:
			push(t.st.Ints[pop()])
		case STORE_INT_DYN:
			off, v := pop(), pop()
			t.st.Ints[off] = v
		case LOAD_CLK:
			push(int64(instr.Arg))
		case LOAD_CLK_DYN:
			push(pop())
		case RESET_CLK:
			t.st.Clocks[pop()] = 0
		case ADD:
			r, l := pop(), pop()
			push(l + r)
		case SUB:
			r, l := pop(), pop()
			push(l - r)
		case MUL:
			r, l := pop(), pop()
			push(l * r)
		case DIV:
			r, l := pop(), pop()
			push(l / r)
		case MOD:
			r, l := pop(), pop()
			push(l % r)
		case NEG:
			push(-pop())
		case EQ:
			r, l := pop(), pop()
			push(boolInt(l == r))
		case NE:
			r, l := pop(), pop()
			push(boolInt(l != r))
		case LT:
			r, l := pop(), pop()
			push(boolInt(l < r))
		case LE:
			r, l := pop(), pop()
			push(boolInt(l <= r))
		case GT:
			r, l := pop(), pop()
			push(boolInt(l > r))
		case GE:
			r, l := pop(), pop()
			push(boolInt(l >= r))
		case LAND:
			r, l := pop(), pop()
			push(boolInt(l != 0 && r != 0))
		case LOR:
			r, l := pop(), pop()
			push(boolInt(l != 0 || r != 0))
		case LNOT:
			push(boolInt(pop() == 0))
		case JZ:
			if pop() == 0 {
				pc += instr.Arg
			}
		case JNZ:
			if pop() != 0 {
				pc += instr.Arg
			}
		case CLK_LT:
			bound, id := pop(), pop()
			push(boolInt(t.st.Clocks[id] < bound))
		case CLK_LE:
			bound, id := pop(), pop()
			push(boolInt(t.st.Clocks[id] <= bound))
		case CLK_EQ:
			bound, id := pop(), pop()
			push(boolInt(t.st.Clocks[id] == bound))
		case CLK_GE:
			bound, id := pop(), pop()
			push(boolInt(t.st.Clocks[id] >= bound))
		case CLK_GT:
			bound, id := pop(), pop()
			push(boolInt(t.st.Clocks[id] > bound))
		case FAIL:
			return nil, ErrFail
		case HALT:
			return stack, nil
		default:
			panic(fmt.Sprintf("bytecode: unhandled opcode %s", instr.Op))
		}
	}

	panic("bytecode: program fell off the end without a HALT")
}
