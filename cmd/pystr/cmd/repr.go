package cmd

import (
	"fmt"

	"github.com/npillmayer/pystr"
	"github.com/spf13/cobra"
)

var reprCmd = &cobra.Command{
	Use:   "repr [TEXT]",
	Short: "print the repr of TEXT",
	Long: `repr prints TEXT as a quoted literal, with non-printable characters
written as escape sequences. Without arguments it reads stdin.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := readInput(cmd, args)
		if err != nil {
			return printError(cmd, "cannot read input", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), pystr.New(in).Repr())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reprCmd)
}
