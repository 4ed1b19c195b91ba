// skinrender renders Minecraft skin parts and server-list previews to PNG.
//
// Usage:
//
//	skinrender part --skin in.png --part head --size 256 -o head.png
//	skinrender preview --host "My Server" --motd "§aWelcome" -o entry.png
//	skinrender motd --html "§cRed §lbold"
//	skinrender config                 - Write the effective config as YAML
//
// Global flags:
//
//	--config <path>     - Config file (default: ./skinrender.yaml or the user config dir)
//	--debug             - Enable debug logging
//	--resources <dir>   - Directory layered over the bundled resources
//	--font <id>         - Font used for server previews
//	--max-size <px>     - Upper bound for any requested output size
//	--log-file <path>   - Write logs to this file as well
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Faultbox/skinrender/internal/config"
	"github.com/Faultbox/skinrender/internal/logger"
)

// cfg is loaded once the root command has parsed its flags.
var cfg *config.Config

func main() {
	err := rootCmd.Execute()
	logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skinrender",
	Short: "Render Minecraft skins and server previews",
	Long: `skinrender draws player skin parts (face, head, body, full body) and
server-list entries from skin textures, bitmap fonts and § formatted text.

Available commands:
  part     - Render a skin part to PNG
  preview  - Render a server-list entry to PNG
  motd     - Convert § formatted text to HTML or plain text
  config   - Write the effective configuration as YAML

Examples:
  skinrender part --skin steve.png --part fullbody --size 256 -o steve.png
  skinrender preview --host "Lobby" --motd "§6Gold §rtext" --online 3 --max 20 -o lobby.png
  skinrender motd --strip "§aHello"`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		return nil
	},
}

func init() {
	// The config package registers its overrides on the standard flag set
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	rootCmd.AddCommand(partCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(motdCmd)
	rootCmd.AddCommand(configCmd)
}
