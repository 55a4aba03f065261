package app

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"

	"github.com/Aleph-Alpha/embed-batch-proxy/v1/batcher"
	"github.com/Aleph-Alpha/embed-batch-proxy/v1/config"
	"github.com/Aleph-Alpha/embed-batch-proxy/v1/handler"
	"github.com/Aleph-Alpha/embed-batch-proxy/v1/logger"
)

// RegisterServerLifecycle builds the public HTTP server (POST /embed, GET
// /healthz) and runs it alongside the batching coordinator under one
// errgroup.Group, keyed to fx's own SIGINT/SIGTERM handling.
//
// The two are coupled deliberately: if the batcher goroutine ever exits on
// its own (a bug, a recovered panic) the HTTP server would otherwise keep
// accepting /embed connections it can never answer, and /healthz would keep
// reporting healthy off a stale Running() read. Racing them in one
// errgroup and asking fx.Shutdowner to tear down the whole application the
// moment either side returns an unexpected error closes that gap: a dead
// batcher takes the listener down with it instead of serving silent 503s
// forever.
func RegisterServerLifecycle(lc fx.Lifecycle, sd fx.Shutdowner, cfg *config.Config, b *batcher.Batcher, h *handler.Handler, log *logger.Logger) {
	mux := http.NewServeMux()
	h.Routes(mux)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.AppPort),
		Handler: mux,
	}

	runCtx, cancelRun := context.WithCancel(context.Background())
	eg, egCtx := errgroup.WithContext(runCtx)
	stopped := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			eg.Go(func() error {
				log.Info("starting HTTP server", nil, logger.Fields{"addr": srv.Addr})
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					return fmt.Errorf("http server: %w", err)
				}
				return nil
			})

			eg.Go(func() error {
				log.Info("batching coordinator starting", nil, nil)
				if err := b.Run(egCtx); err != nil {
					return fmt.Errorf("batching coordinator: %w", err)
				}
				return nil
			})

			go func() {
				defer close(stopped)
				if err := eg.Wait(); err != nil {
					log.Error("component exited unexpectedly, shutting down proxy", err, nil)
					if shutdownErr := sd.Shutdown(); shutdownErr != nil {
						log.Error("failed to signal application shutdown", shutdownErr, nil)
					}
				}
			}()

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			log.Info("shutting down HTTP server and batching coordinator", nil, nil)
			shutdownErr := srv.Shutdown(stopCtx)
			cancelRun()
			select {
			case <-stopped:
			case <-stopCtx.Done():
			}
			return shutdownErr
		},
	})
}
