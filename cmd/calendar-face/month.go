package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/Rillus/Calendar-sub001/internal/face"
	"github.com/Rillus/Calendar-sub001/internal/render"
	"github.com/Rillus/Calendar-sub001/pkg/dateutil"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func monthCmd() *cobra.Command {
	var dateStr string
	var offset int
	var format string
	var output string

	cmd := &cobra.Command{
		Use:   "month",
		Short: "Show the month grid of a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			selected := cfg.Month.GetToday()
			if dateStr != "" {
				selected, err = dateutil.ParseDate(dateStr)
				if err != nil {
					return fmt.Errorf("failed to parse --date: %w", err)
				}
			}
			if offset != 0 {
				selected = dateutil.AddMonths(selected, offset)
			}

			model, err := face.NewFace(cfg, logger).Month(selected)
			if err != nil {
				return fmt.Errorf("failed to build month view: %w", err)
			}

			logger.Info("Month view built",
				zap.String("selected", dateutil.ISODate(selected)),
				zap.String("month", model.MonthLabel),
				zap.String("format", format))

			return writeOutput(output, cmd.OutOrStdout(), func(w io.Writer) error {
				switch strings.ToLower(format) {
				case "json":
					return encodeJSON(w, model)
				case "yaml":
					return encodeYAML(w, model)
				case "text":
					_, err := fmt.Fprintln(w, render.MonthGrid(model, render.DefaultStyles()))
					return err
				default:
					return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
				}
			})
		},
	}

	cmd.Flags().StringVarP(&dateStr, "date", "d", "", "Selected date YYYY-MM-DD (default: today)")
	cmd.Flags().IntVar(&offset, "offset", 0, "Shift the selected date by whole months")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, json or yaml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")

	return cmd
}
