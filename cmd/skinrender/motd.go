package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Faultbox/skinrender/pkg/colorcode"
)

var (
	flagHTML  bool
	flagStrip bool
)

var motdCmd = &cobra.Command{
	Use:   "motd [flags] TEXT...",
	Short: "Convert § formatted text to HTML or plain text",
	Long: `Converts text carrying § colour and format codes. Arguments are joined
with spaces. A literal "\n" in the text is treated as a line break.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMOTD,
}

func init() {
	motdCmd.Flags().BoolVar(&flagHTML, "html", false, "Emit HTML spans")
	motdCmd.Flags().BoolVar(&flagStrip, "strip", false, "Remove all codes")
	motdCmd.MarkFlagsMutuallyExclusive("html", "strip")
}

func runMOTD(cmd *cobra.Command, args []string) error {
	text := strings.ReplaceAll(strings.Join(args, " "), `\n`, "\n")

	switch {
	case flagHTML:
		fmt.Fprintln(cmd.OutOrStdout(), colorcode.ToHTML(text))
	case flagStrip:
		fmt.Fprintln(cmd.OutOrStdout(), colorcode.Strip(text))
	default:
		return errors.New("one of --html or --strip is required")
	}
	return nil
}
