package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	codeFlag   string
	utf8Flag   bool
	noPRNGFlag bool
	seedFlag   int64
)

var rootCmd = &cobra.Command{
	Use:   "gofish [files...]",
	Short: `An interpreter for the ><> ("Fish") esoteric language`,
	Long: `gofish runs ><> ("Fish") programs: a two-dimensional, stack-based
language whose instruction pointer traverses a toroidal grid of glyphs,
executing each glyph as an operation on one or more value stacks over
exact-precision rational numbers.

Positional arguments are script files, executed in order; each
inherits the top value stack left behind by the previous script.
-c/--code supplies an inline script that runs before any file
arguments, and may be used on its own with no files at all.`,
	Version:       Version,
	Args:          cobra.ArbitraryArgs,
	RunE:          runFish,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command. A non-nil error means the process
// should exit non-zero; any user-facing message has already been
// written to stderr by the command itself.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().StringVarP(&codeFlag, "code", "c", "", "inline script executed before any file arguments")
	rootCmd.PersistentFlags().BoolVarP(&utf8Flag, "utf8", "u", false, "interpret stdin as UTF-8 codepoints (default: raw bytes)")
	rootCmd.PersistentFlags().BoolVar(&noPRNGFlag, "no-prng", false, "disable the PRNG; `x` becomes a no-op")
	rootCmd.PersistentFlags().Int64Var(&seedFlag, "seed", 0, "deterministic PRNG seed (default: seeded from the wall clock)")

	// -h/--help should print usage and exit nonzero, but cobra's
	// default help always exits 0, so wrap it.
	defaultHelpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		defaultHelpFunc(cmd, args)
		os.Exit(1)
	})
}
