package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/gofish-lang/gofish/internal/deque"
	"github.com/gofish-lang/gofish/internal/grid"
	"github.com/gofish-lang/gofish/internal/rational"
	"github.com/gofish-lang/gofish/internal/vm"
	"github.com/spf13/cobra"
)

// errHandled marks an error whose user-facing message has already been
// written to stderr; it only needs to make Execute() return non-nil so
// main can exit 1.
var errHandled = errors.New("gofish: run failed")

var runCmd = &cobra.Command{
	Use:   "run [files...]",
	Short: "Run one or more ><> scripts in sequence",
	Long: `Run executes -c's inline script, if given, followed by each file
argument in order. Each script inherits the top value stack left
behind by the one before it.`,
	Args: cobra.ArbitraryArgs,
	RunE: runFish,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// runFish is shared by the root command (so "gofish script.fish" works
// without the "run" subcommand, matching canonical fish CLI ergonomics)
// and the explicit "run" subcommand.
func runFish(cmd *cobra.Command, args []string) error {
	if codeFlag == "" && len(args) == 0 {
		fmt.Fprintln(os.Stderr, "gofish: no script given (use -c, or pass a file)")
		return errHandled
	}

	var seed *int64
	if cmd.Flags().Changed("seed") {
		s := seedFlag
		seed = &s
	}
	cfg := vm.Config{UTF8: utf8Flag, NoPRNG: noPRNGFlag, Seed: seed}

	var current *deque.Deque[rational.Rational]
	runGrid := func(g *grid.Grid) error {
		m := vm.New(g, current, cfg, os.Stdin, os.Stdout)
		final, err := m.Run()
		if err != nil {
			return err
		}
		current = final
		return nil
	}

	if codeFlag != "" {
		if err := runGrid(grid.Load(codeFlag)); err != nil {
			return reportFatal(err)
		}
	}

	for _, path := range args {
		g, err := grid.LoadFile(path)
		if err != nil {
			return reportFatal(err)
		}
		if err := runGrid(g); err != nil {
			return reportFatal(err)
		}
	}

	return nil
}

// reportFatal converts any fatal error from a run, whether a
// *diagnostic.Error raised mid-execution or an I/O error loading a
// script file, into one fixed stderr message and a nonzero exit code.
// The richer error is intentionally discarded here; it never reaches
// stdout or stderr.
func reportFatal(error) error {
	fmt.Fprint(os.Stderr, "something smells fishy...\n")
	return errHandled
}
