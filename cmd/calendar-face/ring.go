package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/Rillus/Calendar-sub001/internal/config"
	"github.com/Rillus/Calendar-sub001/internal/face"
	"github.com/Rillus/Calendar-sub001/internal/render"
	"github.com/Rillus/Calendar-sub001/pkg/dateutil"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func ringCmd() *cobra.Command {
	var year int
	var format string
	var output string
	var watch bool

	cmd := &cobra.Command{
		Use:   "ring",
		Short: "Lay out the month ring",
		RunE: func(cmd *cobra.Command, args []string) error {
			if year == 0 {
				year = dateutil.Today().Year()
			}
			format = strings.ToLower(format)
			if !isRingFormat(format) {
				return fmt.Errorf("unknown format %q (want svg, json, yaml or text)", format)
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			draw := func(cfg *config.Config) error {
				return writeOutput(output, cmd.OutOrStdout(), func(w io.Writer) error {
					return writeRing(w, face.NewFace(cfg, logger), cfg, year, format)
				})
			}

			if err := draw(cfg); err != nil {
				return err
			}
			logger.Info("Ring drawn",
				zap.Int("year", year),
				zap.String("format", format),
				zap.String("output", output))

			if !watch {
				return nil
			}
			return watchConfig(cmd.Context(), configPath, draw)
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Year whose month lengths drive the ring (default: current year)")
	cmd.Flags().StringVarP(&format, "format", "f", "svg", "Output format: svg, json, yaml or text")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().BoolVar(&watch, "watch", false, "Redraw whenever the config file changes")

	return cmd
}

func isRingFormat(format string) bool {
	switch format {
	case "svg", "json", "yaml", "text":
		return true
	}
	return false
}

func writeRing(w io.Writer, f *face.Face, cfg *config.Config, year int, format string) error {
	segments, err := f.Ring(year)
	if err != nil {
		return fmt.Errorf("failed to lay out ring: %w", err)
	}

	switch format {
	case "json":
		return encodeJSON(w, segments)
	case "yaml":
		return encodeYAML(w, segments)
	case "text":
		_, err := io.WriteString(w, render.SegmentTable(segments))
		return err
	default:
		opts := render.DefaultSVGOptions(cfg.Ring.GetGeometry())
		opts.Title = fmt.Sprintf("%d", year)
		return render.WriteSVG(w, segments, opts)
	}
}
