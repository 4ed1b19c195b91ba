package main

import (
	"fmt"
	"image"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/skinrender/internal/assets"
	"github.com/Faultbox/skinrender/internal/engine/font"
	"github.com/Faultbox/skinrender/internal/logger"
	"github.com/Faultbox/skinrender/internal/preview"
)

var (
	flagHost       string
	flagMOTD       string
	flagOnline     int
	flagMax        int
	flagIcon       string
	flagFavicon    string
	flagWidth      int
	flagLegacy     string
	flagPreviewOut string
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render a server-list entry to PNG",
	Long: `Renders a server-list entry with icon, hostname, MOTD and player count.
The MOTD may contain § codes and "\n" line breaks. The icon comes from
--icon, then --favicon (a data:image/png;base64 URI), then the bundled
placeholder. --legacy-response reads a kick packet captured from a
pre-1.7 server and overrides --motd, --online and --max.`,
	Args: cobra.NoArgs,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().StringVar(&flagHost, "host", "A Minecraft Server", "Server name")
	previewCmd.Flags().StringVar(&flagMOTD, "motd", "", "Message of the day")
	previewCmd.Flags().IntVar(&flagOnline, "online", 0, "Players online")
	previewCmd.Flags().IntVar(&flagMax, "max", 20, "Player slots")
	previewCmd.Flags().StringVar(&flagIcon, "icon", "", "Icon PNG")
	previewCmd.Flags().StringVar(&flagFavicon, "favicon", "", "Icon as a data URI")
	previewCmd.Flags().StringVar(&flagLegacy, "legacy-response", "", "Take MOTD and player counts from a captured legacy ping reply")
	previewCmd.Flags().IntVar(&flagWidth, "width", 0, "Output width in pixels (0 = configured default)")
	previewCmd.Flags().StringVarP(&flagPreviewOut, "output", "o", "preview.png", "Output PNG (\"-\" for stdout)")
	previewCmd.MarkFlagsMutuallyExclusive("icon", "favicon")
}

func runPreview(cmd *cobra.Command, args []string) error {
	m, err := assets.NewDefaultManager(cfg.Resources.Dir)
	if err != nil {
		return fmt.Errorf("opening resources: %w", err)
	}
	defer m.Close()

	fonts := font.NewCache(font.NewLoader(m, cfg.Resources.Uniform))
	f, err := fonts.Get(cfg.Resources.Font)
	if err != nil {
		logger.Warn("falling back to empty font", zap.String("font", cfg.Resources.Font), zap.Error(err))
		f = font.Empty(cfg.Resources.Font)
	}

	st := preview.Status{
		Hostname: flagHost,
		MOTD:     strings.ReplaceAll(flagMOTD, `\n`, "\n"),
		Online:   flagOnline,
		Max:      flagMax,
		Favicon:  flagFavicon,
	}
	if flagLegacy != "" {
		data, err := readInput(flagLegacy)
		if err != nil {
			return fmt.Errorf("reading legacy response: %w", err)
		}
		legacy, err := preview.ParseLegacyResponse(data)
		if err != nil {
			return err
		}
		st.MOTD, st.Online, st.Max = legacy.MOTD, legacy.Online, legacy.Max
	}
	if flagIcon != "" {
		icon, err := loadIcon(flagIcon)
		if err != nil {
			return err
		}
		st.Icon = icon
	}

	width := flagWidth
	if width <= 0 {
		width = cfg.Preview.Width
	}
	img := preview.Render(st, width, preview.Options{Font: f, Upscale: cfg.Preview.Upscale, MaxWidth: cfg.Preview.MaxWidth})
	return writePNG(flagPreviewOut, img)
}

func loadIcon(path string) (image.Image, error) {
	data, err := readInput(path)
	if err != nil {
		return nil, fmt.Errorf("reading icon: %w", err)
	}
	img, err := assets.DecodeImage(data)
	if err != nil {
		return nil, fmt.Errorf("decoding icon %s: %w", path, err)
	}
	return img, nil
}
