package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ignite/campaign-dashboard/internal/view"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		in     inputFlags
		width  int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the dashboard to the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := a.loadSnapshot(cmd.Context(), in)
			if err != nil {
				return err
			}

			d := view.Build(snap)
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(d)
			}
			_, err = fmt.Fprintln(out, view.RenderTerminal(d, width))
			return err
		},
	}

	in.register(cmd)
	cmd.Flags().IntVar(&width, "width", 100, "terminal width used for charts")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the view model as JSON")
	return cmd
}
