package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	footer "github.com/goliatone/go-footer"
	"github.com/goliatone/go-footer/components/preview"
	"github.com/goliatone/go-footer/pkg/content"
	"github.com/goliatone/go-footer/pkg/orchestrator"
)

func newServeCmd(flags *globalFlags) *cobra.Command {
	var (
		addr   string
		assets bool
	)

	cmd := &cobra.Command{
		Use:   "serve <source>",
		Short: "Serve a live footer preview",
		Long: `Serve the footer described by <source> over HTTP. The document is
reloaded on every request; use ?renderer=, ?theme=, ?variant= and ?locale= to
switch output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := content.SourceFromString(args[0])
			if err != nil {
				return err
			}
			logger := flags.logger()

			gen := footer.NewOrchestrator(
				orchestrator.WithLoader(footer.NewLoader(flags.loaderOptions()...)),
				orchestrator.WithPolicy(flags.policy()),
				orchestrator.WithLogger(logger),
			)

			metricsRegistry := prometheus.NewRegistry()
			mux := http.NewServeMux()
			pattern, err := preview.RegisterRoutes(mux, "/",
				preview.WithSource(src),
				preview.WithGenerator(gen),
				preview.WithLogger(logger),
				preview.WithMetrics(preview.NewMetrics(metricsRegistry)),
			)
			if err != nil {
				return err
			}
			mux.Handle("/metrics", promhttp.HandlerFor(metricsRegistry, promhttp.HandlerOpts{}))
			if assets {
				mux.Handle("/assets/", http.StripPrefix("/assets/", http.FileServerFS(footer.EmbeddedAssets())))
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			server := &http.Server{
				Addr:              addr,
				Handler:           mux,
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info().Str("addr", addr).Str("route", pattern).Msg("preview listening")
				errCh <- server.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			logger.Info().Msg("shutting down preview")
			return server.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")
	cmd.Flags().BoolVar(&assets, "assets", true, "Serve the embedded stylesheet under /assets/")
	return cmd
}
