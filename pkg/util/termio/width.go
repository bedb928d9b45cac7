package termio

import (
	"os"

	"golang.org/x/term"
)

// DefaultWidth is used whenever the output is not a terminal (e.g. it has
// been piped or redirected), so column layout stays predictable.
const DefaultWidth = 80

// Width returns the width (in columns) of the terminal attached to stdout, or
// DefaultWidth if stdout is not a terminal.
func Width() uint {
	fd := int(os.Stdout.Fd())
	//
	if !term.IsTerminal(fd) {
		return DefaultWidth
	}
	//
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	//
	return uint(width)
}
