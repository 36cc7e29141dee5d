package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/ignite/campaign-dashboard/internal/export"
	"github.com/ignite/campaign-dashboard/internal/pkg/logger"
	"github.com/ignite/campaign-dashboard/internal/storage"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		in      inputFlags
		formats []string
		outDir  string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the CSV and spreadsheet reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			snap, err := a.loadSnapshot(ctx, in)
			if err != nil {
				return err
			}

			exportCfg := a.cfg.Export
			if outDir != "" {
				exportCfg.OutputDir = outDir
			}
			if len(formats) == 0 {
				formats = exportCfg.Formats
			}

			sinks, err := storage.New(ctx, exportCfg, a.cfg.Storage)
			if err != nil {
				return err
			}

			// A failed format is reported and the rest still run.
			failed := 0
			for _, name := range formats {
				format, err := export.ParseFormat(name)
				if err != nil {
					logger.Error("export skipped", "format", name, "error", err.Error())
					failed++
					continue
				}

				report, err := export.Render(snap, format)
				if err != nil {
					logger.Error("export failed", "format", string(format), "error", err.Error())
					failed++
					continue
				}

				for _, sink := range sinks {
					location, err := sink.Save(ctx, report)
					if err != nil {
						logger.Error("saving export failed", "format", string(format), "error", err.Error())
						failed++
						continue
					}
					log.Printf("[Export] Wrote %s", location)
					fmt.Fprintln(cmd.OutOrStdout(), location)
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d export step(s) failed", failed)
			}
			return nil
		},
	}

	in.register(cmd)
	cmd.Flags().StringSliceVar(&formats, "format", nil, "formats to write: csv, xlsx (defaults to export.formats)")
	cmd.Flags().StringVar(&outDir, "out", "", "output directory (defaults to export.output_dir)")
	return cmd
}
