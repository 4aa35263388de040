package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/phrazzld/slidegen/internal/api"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(c *cli) *cobra.Command {
	var host string
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the generation API on a local address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("host") {
				c.cfg.Server.Host = host
			}
			if cmd.Flags().Changed("port") {
				c.cfg.Server.Port = port
			}

			app, err := c.newApplication(c.stdout)
			if err != nil {
				return err
			}
			return app.serve(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "listen host (default from configuration)")
	cmd.Flags().IntVar(&port, "port", 0, "listen port (default from configuration)")
	return cmd
}

func (app *application) router() http.Handler {
	credentials := api.Credentials{
		APIKey:              app.cfg.LLM.APIKey,
		BusinessDescription: app.cfg.Business.Description,
	}
	return api.NewRouter(app.logger,
		api.NewGenerationHandler(app.service, app.preferences, credentials, app.cfg.LLM.RequestTimeout(), app.logger),
		api.NewPreferencesHandler(app.preferences, app.logger))
}

// serve listens on the configured address and serves the API until ctx is
// cancelled.
func (app *application) serve(ctx context.Context) error {
	addr := net.JoinHostPort(app.cfg.Server.Host, strconv.Itoa(app.cfg.Server.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return app.serveListener(ctx, ln, app.router())
}

// serveListener runs handler on ln until ctx is cancelled, then shuts the
// server down gracefully. Request contexts are not derived from ctx, so
// in-flight generations finish during shutdown.
func (app *application) serveListener(ctx context.Context, ln net.Listener, handler http.Handler) error {
	server := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info("Starting server", "addr", ln.Addr().String())
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		app.logger.Info("Shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	app.logger.Info("Server shutdown completed")
	return nil
}
