package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dshills/strand/internal/app"
)

// cli holds the persistent flags and streams shared by all subcommands.
type cli struct {
	configPath string
	logLevel   string
	variant    string

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	c := &cli{stdin: stdin, stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "strand",
		Short: "DNA strand splicing and benchmarks",
		Long: `strand models DNA as a linked chain of immutable segments and
simulates restriction enzyme cut-and-splice on it.

Variants:
  link     - linked segments, O(1) append (default)
  builder  - growable byte buffer
  string   - immutable string, copy on append

Settings are read from strand.toml or strand.yaml, then .env and
STRAND_* environment variables, then flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "config file (default: ./strand.toml or ./strand.yaml)")
	flags.StringVar(&c.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&c.variant, "variant", "", "strand variant (link, builder, string)")

	root.AddCommand(
		c.newBenchCmd(),
		c.newSpliceCmd(),
		c.newReverseCmd(),
		c.newScriptCmd(),
		newVersionCmd(),
	)
	return root
}

// newApp builds the application from the persistent flags plus overrides.
func (c *cli) newApp(overrides map[string]any) (*app.Application, error) {
	return app.New(app.Options{
		ConfigPath:  c.configPath,
		LogLevel:    c.logLevel,
		Variant:     c.variant,
		Overrides:   overrides,
		Interactive: isTerminal(c.stdout),
		Stdin:       c.stdin,
		Stdout:      c.stdout,
		Stderr:      c.stderr,
	})
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// sourceArg returns the optional file argument, or "" for stdin.
func sourceArg(args []string, i int) string {
	if len(args) > i {
		return args[i]
	}
	return ""
}
