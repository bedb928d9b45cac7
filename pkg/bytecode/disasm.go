package bytecode

import (
	"fmt"
	"strconv"

	"github.com/tchecker-go/tchecker/pkg/util/termio"
)

// Disassemble prints p as a table of "index | op | arg" rows to stdout,
// preceded by its context string. Column widths are clamped to the
// terminal width so a long program stays readable rather than wrapping.
func (p *Program) Disassemble() {
	if p.Context != "" {
		fmt.Println(p.Context)
	}

	height := uint(len(p.Instrs)) + 1
	table := termio.NewTablePrinter(3, height)
	table.SetRow(0, "#", "op", "arg")

	for i, instr := range p.Instrs {
		arg := ""
		if instr.Op.hasArg() {
			arg = strconv.Itoa(instr.Arg)
		}

		table.SetRow(uint(i+1), strconv.Itoa(i), instr.Op.String(), arg)
	}

	table.SetMaxWidths(termio.Width() / 3)
	table.Print()
}
