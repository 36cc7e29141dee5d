package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ignite/campaign-dashboard/internal/api"
	"github.com/ignite/campaign-dashboard/internal/datanorm"
	"github.com/ignite/campaign-dashboard/internal/source"
)

func newServeCmd(a *app) *cobra.Command {
	var preload bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard JSON and export downloads over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			holder := datanorm.NewHolder()
			client := source.NewGistClient(cfg.Source)

			if preload && cfg.Source.GistID != "" {
				doc, err := client.Load(cmd.Context(), cfg.Source.GistID)
				if err != nil {
					log.Printf("[Server] Preload of gist %s failed: %v", cfg.Source.GistID, err)
				} else {
					holder.Commit(datanorm.Build(doc))
					log.Printf("[Server] Preloaded gist %s", cfg.Source.GistID)
				}
			}

			handlers := api.NewHandlers(client, holder, cfg.Source.GistID)
			server := &http.Server{
				Addr:              cfg.Server.Addr(),
				Handler:           api.NewRouter(handlers, api.NewHealthChecker(holder), cfg.Server),
				ReadHeaderTimeout: 10 * time.Second,
			}

			// Setup graceful shutdown
			done := make(chan os.Signal, 1)
			signal.Notify(done, os.Interrupt, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				log.Printf("[Server] Starting server on %s", server.Addr)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
			}()

			select {
			case err := <-errCh:
				return err
			case <-done:
			}
			log.Println("[Server] Shutting down...")

			// Graceful shutdown with timeout
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				log.Printf("[Server] Shutdown error: %v", err)
			}
			log.Println("[Server] Server stopped")
			return nil
		},
	}

	cmd.Flags().BoolVar(&preload, "preload", true, "fetch GIST_ID at startup when configured")
	return cmd
}
