package cmd

import (
	"fmt"

	"github.com/npillmayer/pystr"
	"github.com/spf13/cobra"
)

var translateCmd = &cobra.Command{
	Use:   "translate FROM TO [DELETE]",
	Short: "map the characters of stdin",
	Long: `translate replaces every character of FROM found in stdin by the
character at the same position in TO. Characters in DELETE are removed.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		var del pystr.Text
		if len(args) == 3 {
			del = pystr.New(args[2])
		}
		table, err := pystr.MakeTrans(pystr.New(args[0]), pystr.New(args[1]), del)
		if err != nil {
			return printError(cmd, "cannot build table", err)
		}
		tracer().Debugf("translation table %s", table)
		in, err := readInput(cmd, nil)
		if err != nil {
			return printError(cmd, "cannot read input", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), pystr.New(in).Translate(table))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(translateCmd)
}
