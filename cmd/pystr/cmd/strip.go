package cmd

import (
	"fmt"

	"github.com/npillmayer/pystr"
	"github.com/spf13/cobra"
)

var stripChars string

var stripCmd = &cobra.Command{
	Use:   "strip [TEXT]",
	Short: "remove leading and trailing characters",
	Long: `strip removes whitespace, or the characters given with --chars, from
both ends of TEXT and prints the repr of the result.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := readInput(cmd, args)
		if err != nil {
			return printError(cmd, "cannot read input", err)
		}
		var chars pystr.Text
		if cmd.Flags().Changed("chars") {
			chars = pystr.New(stripChars)
		}
		fmt.Fprintln(cmd.OutOrStdout(), pystr.New(in).Strip(chars).Repr())
		return nil
	},
}

func init() {
	stripCmd.Flags().StringVarP(&stripChars, "chars", "c", "", "characters to strip")
	rootCmd.AddCommand(stripCmd)
}
