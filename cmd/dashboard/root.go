package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/ignite/campaign-dashboard/internal/config"
	"github.com/ignite/campaign-dashboard/internal/datanorm"
	"github.com/ignite/campaign-dashboard/internal/pkg/logger"
	"github.com/ignite/campaign-dashboard/internal/source"
)

// errNoInput is returned when neither --gist, --file nor GIST_ID is set.
var errNoInput = fmt.Errorf("%w: either --gist or --file is required (or set GIST_ID)", source.ErrMissingID)

// app carries the loaded configuration into subcommands
type app struct {
	configPath string
	cfg        *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "dashboard",
		Short:         "Campaign outreach dashboard: load, render and export",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFromEnv(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			logger.SetLevel(logger.ParseLevel(cfg.Log.Level))
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "config/config.yaml", "path to the YAML config file")

	root.AddCommand(
		newRenderCmd(a),
		newExportCmd(a),
		newServeCmd(a),
	)
	return root
}

// inputFlags are shared by commands that load one document
type inputFlags struct {
	gist string
	file string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.gist, "gist", "", "gist id to fetch (defaults to GIST_ID)")
	cmd.Flags().StringVar(&f.file, "file", "", "read the dashboard JSON from a local file instead of a gist")
	cmd.MarkFlagsMutuallyExclusive("gist", "file")
}

// loadSnapshot reads the document from a file or gist and normalizes it.
func (a *app) loadSnapshot(ctx context.Context, in inputFlags) (*datanorm.Snapshot, error) {
	var (
		doc datanorm.RawDocument
		err error
	)

	switch {
	case in.file != "":
		log.Printf("[Dashboard] Reading %s", in.file)
		doc, err = source.ReadFile(in.file)
	default:
		id := in.gist
		if id == "" {
			id = a.cfg.Source.GistID
		}
		if id == "" {
			return nil, errNoInput
		}
		log.Printf("[Dashboard] Fetching gist %s", id)
		doc, err = source.NewGistClient(a.cfg.Source).Load(ctx, id)
	}
	if err != nil {
		return nil, err
	}

	snap := datanorm.Build(doc)
	logger.Info("snapshot built",
		"snapshot_id", snap.ID.String(),
		"brand", snap.Brand,
		"campaigns", len(snap.Campaigns),
		"active", snap.Stats.ActiveCampaigns,
	)
	return snap, nil
}
