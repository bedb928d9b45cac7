package bytecode

import (
	"strconv"
	"strings"
)

// Instr is a single instruction: an opcode plus, for opcodes where
// Op.hasArg() is true, its immediate operand.
type Instr struct {
	Op  Op
	Arg int
}

// String renders a single instruction for disassembly.
func (i Instr) String() string {
	if i.Op.hasArg() {
		return i.Op.String() + " " + strconv.Itoa(i.Arg)
	}
	//
	return i.Op.String()
}

// Program is a read-only, HALT-terminated instruction stream: the unit of
// output handed to the VM.  It is immutable once constructed; the compiler
// builds one with a private builder and never mutates it afterwards.
type Program struct {
	// Context identifies which annotation (invariant/guard/statement) this
	// program was compiled from, for diagnostics and disassembly headers.
	Context string
	Instrs  []Instr
}

// Len returns the number of instructions in this program, including the
// trailing HALT.
func (p *Program) Len() int { return len(p.Instrs) }

// String renders the whole program, one instruction per line.
func (p *Program) String() string {
	var b strings.Builder
	//
	for i, instr := range p.Instrs {
		if i > 0 {
			b.WriteByte('\n')
		}
		//
		b.WriteString(instr.String())
	}
	//
	return b.String()
}

// Equal reports whether p and q have identical opcode sequences and
// operands: the "idempotent compile" property requires that recompiling a
// typed AST twice yields programs which compare equal under this.
func (p *Program) Equal(q *Program) bool {
	if len(p.Instrs) != len(q.Instrs) {
		return false
	}
	//
	for i := range p.Instrs {
		if p.Instrs[i] != q.Instrs[i] {
			return false
		}
	}
	//
	return true
}
