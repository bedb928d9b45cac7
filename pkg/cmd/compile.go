package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tchecker-go/tchecker/pkg/diag"
	"github.com/tchecker-go/tchecker/pkg/loader"
	"github.com/tchecker-go/tchecker/pkg/model"
	"github.com/tchecker-go/tchecker/pkg/system"
	"github.com/tchecker-go/tchecker/pkg/validate"
)

var compileCmd = &cobra.Command{
	Use:   "compile [flags] system.json",
	Short: "compile a system description into bytecode",
	Long:  "Load a JSON system description, type-check and statically validate it, and compile every invariant, guard and statement to bytecode.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}

		runCompileCmd(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(compileCmd)
	compileCmd.Flags().Bool("dump", false, "disassemble every compiled program to stdout")
}

func runCompileCmd(cmd *cobra.Command, filename string) {
	g, err := loader.LoadSystem(filename, readFile(filename))
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	rules := []validate.Rule{}
	if GetFlag(cmd, "strict") {
		rules = validate.Default
	}

	sink := diag.NewLogrusSink(diag.NewCollector())
	res := buildWithSink(g, rules, sink)

	switch res.Kind {
	case model.Invalid:
		fmt.Printf("%s: static validation failed with %d error(s)\n", filename, len(res.Diagnostics))
		os.Exit(1)
	case model.CompileFailed:
		fmt.Printf("%s: compilation failed with %d error(s)\n", filename, len(res.Diagnostics))
		os.Exit(1)
	}

	fmt.Printf("%s: %d location(s), %d edge(s) compiled\n", filename, g.LocationsCount(), g.EdgesCount())

	if GetFlag(cmd, "dump") {
		dumpModel(g, res.Model)
	}
}

// buildWithSink runs model.Build and then reports every diagnostic it
// returned to sink, in order. model.Build always uses its own internal
// Collector for the pass/fail decision; this wrapper replays the same
// diagnostics through sink after construction, for display purposes only.
func buildWithSink(g *system.Graph, rules []validate.Rule, sink diag.Sink) model.BuildResult {
	res := model.Build(g, rules)

	for _, d := range res.Diagnostics {
		sink.Error(d.Context, d.Message)
	}

	return res
}

func dumpModel(g *system.Graph, m *model.Model) {
	if m == nil {
		return
	}

	catalog := m.Catalog()

	for _, v := range catalog.Ints.All() {
		fmt.Printf("int %s[%d] offset=%d\n", v.Name, v.Size, v.Offset)
	}

	for _, c := range catalog.Clocks.All() {
		fmt.Printf("clock %s[%d] offset=%d\n", c.Name, c.Size, c.Offset)
	}

	for _, loc := range g.Locations() {
		if p := m.InvariantBytecode(loc.Id); p != nil {
			p.Disassemble()
		}
	}

	for _, e := range g.Edges() {
		if p := m.GuardBytecode(e.Id); p != nil {
			p.Disassemble()
		}

		if p := m.StatementBytecode(e.Id); p != nil {
			p.Disassemble()
		}
	}
}
