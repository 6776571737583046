/*
Package cmd implements the commands of the pystr command line tool.

Every command reads its text from the command line or from stdin and writes
results to stdout, one item per line.
*/
package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

var traceLevel string

// tracer traces with key 'pystr.cmd'.
func tracer() tracing.Trace {
	return tracing.Select("pystr.cmd")
}

var rootCmd = &cobra.Command{
	Use:   "pystr",
	Short: "pystr - Python string semantics on the command line",
	Long: `pystr applies the methods of Python's str type to text given as
arguments or on stdin.

Commands:
  repr        print a quoted, escaped literal
  encode      encode text to bytes (hex output)
  decode      decode hex bytes to text
  splitlines  split stdin into lines
  translate   map characters of stdin through a translation table
  strip       remove leading and trailing characters`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupTracing(cmd.ErrOrStderr())
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&traceLevel, "trace", "Error", "trace level (Error, Info, Debug)")
}

// setupTracing routes all tracers to the Go logger.
func setupTracing(w io.Writer) {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	t := tracing.Select("pystr")
	t.SetOutput(w)
	t.SetTraceLevel(tracing.TraceLevelFromString(traceLevel))
	t.Debugf("tracing at level %s", t.GetTraceLevel())
}

// readInput returns the joined arguments, or all of stdin if there are none.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// printError reports err and returns it, wrapped with msg.
func printError(cmd *cobra.Command, msg string, err error) error {
	fmt.Fprintf(cmd.ErrOrStderr(), "error: %s: %v\n", msg, err)
	return fmt.Errorf("%s: %w", msg, err)
}
