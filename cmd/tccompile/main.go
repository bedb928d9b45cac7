// Command tccompile type-checks, validates and compiles timed automata
// system descriptions to bytecode.
package main

import "github.com/tchecker-go/tchecker/pkg/cmd"

func main() {
	cmd.Execute()
}
