package cmd

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/npillmayer/pystr"
	"github.com/spf13/cobra"
)

var (
	encoding    string
	errorPolicy string
)

var encodeCmd = &cobra.Command{
	Use:   "encode [TEXT]",
	Short: "encode TEXT and print the bytes as hex",
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := readInput(cmd, args)
		if err != nil {
			return printError(cmd, "cannot read input", err)
		}
		b, err := pystr.New(in).Encode(encoding, errorPolicy)
		if err != nil {
			return printError(cmd, "cannot encode", err)
		}
		tracer().Debugf("encoded %d characters to %d bytes", len([]rune(in)), b.Len())
		fmt.Fprintln(cmd.OutOrStdout(), b.Hex())
		return nil
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode [HEX]",
	Short: "decode hex encoded bytes and print the text",
	Long: `decode interprets its input as hex digits, optionally separated by
whitespace, and decodes the resulting bytes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := readInput(cmd, args)
		if err != nil {
			return printError(cmd, "cannot read input", err)
		}
		raw, err := hex.DecodeString(strings.Join(strings.Fields(in), ""))
		if err != nil {
			return printError(cmd, "invalid hex input", err)
		}
		s, err := pystr.BytesOf(raw).Decode(encoding, errorPolicy)
		if err != nil {
			return printError(cmd, "cannot decode", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), s)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{encodeCmd, decodeCmd} {
		c.Flags().StringVarP(&encoding, "encoding", "e", "utf-8", "name of the codec")
		c.Flags().StringVar(&errorPolicy, "errors", "strict", "error policy (strict, ignore, replace, backslashreplace)")
		rootCmd.AddCommand(c)
	}
}
