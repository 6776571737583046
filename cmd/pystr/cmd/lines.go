package cmd

import (
	"fmt"

	"github.com/npillmayer/pystr"
	"github.com/spf13/cobra"
)

var keepEnds bool

var splitLinesCmd = &cobra.Command{
	Use:   "splitlines",
	Short: "split stdin at line boundaries",
	Long: `splitlines breaks stdin at every Unicode line boundary and prints the
repr of each line.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := readInput(cmd, nil)
		if err != nil {
			return printError(cmd, "cannot read input", err)
		}
		lines := pystr.New(in).SplitLines(keepEnds)
		tracer().Debugf("input has %d lines", len(lines))
		for _, line := range lines {
			fmt.Fprintln(cmd.OutOrStdout(), line.Repr())
		}
		return nil
	},
}

func init() {
	splitLinesCmd.Flags().BoolVarP(&keepEnds, "keepends", "k", false, "keep line terminators")
	rootCmd.AddCommand(splitLinesCmd)
}
