package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newServeCommand(deps commandDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the ledger HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(deps.globals)
			if err != nil {
				return err
			}
			defer rt.close()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			router, err := rt.app.Router(ctx, deps.build.Version)
			if err != nil {
				return err
			}

			server := &http.Server{
				Addr:              fmt.Sprintf("%s:%d", rt.cfg.Server.Host, rt.cfg.Server.Port),
				Handler:           router,
				ReadTimeout:       rt.cfg.Server.ReadTimeout,
				WriteTimeout:      rt.cfg.Server.WriteTimeout,
				ReadHeaderTimeout: rt.cfg.Server.ReadHeaderTimeout,
				IdleTimeout:       rt.cfg.Server.IdleTimeout,
			}

			serveErr := make(chan error, 1)
			go func() {
				rt.logger.Info("Starting server", map[string]any{
					"addr": server.Addr,
					"env":  rt.cfg.Environment,
				})
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serveErr <- err
				}
				close(serveErr)
			}()

			select {
			case err := <-serveErr:
				if err != nil {
					rt.logger.Error("Failed to start server", map[string]any{"error": err.Error()})
					return err
				}
				return nil
			case <-ctx.Done():
			}

			rt.logger.Info("Shutting down server...", nil)

			shutdownCtx, cancel := context.WithTimeout(context.Background(), rt.cfg.Server.ShutdownTimeout)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				rt.logger.Error("Server forced to shutdown", map[string]any{"error": err.Error()})
				return err
			}

			rt.logger.Info("Server exited gracefully", nil)
			return nil
		},
	}
}
