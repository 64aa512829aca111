package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/cesargomez89/tidarr/internal/constants"
	"github.com/cesargomez89/tidarr/internal/dedup"
	"github.com/cesargomez89/tidarr/internal/engine"
	httpapp "github.com/cesargomez89/tidarr/internal/http"
	"github.com/cesargomez89/tidarr/internal/httpclient"
	"github.com/cesargomez89/tidarr/internal/identity"
	"github.com/cesargomez89/tidarr/internal/lidarr"
	"github.com/cesargomez89/tidarr/internal/logger"
	"github.com/cesargomez89/tidarr/internal/session"
)

const (
	shutdownTimeout       = 5 * time.Second
	sessionReloadInterval = time.Minute
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the metadata proxy",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			if err := cfg.Validate(); err != nil {
				return err
			}
			log := ctx.logger()

			db := ctx.optionalCache()
			if db != nil {
				defer db.Close()
			}

			sess, err := session.Open(cfg.SessionFile)
			if err != nil {
				return err
			}
			defer sess.Close()
			if _, err := sess.Authorization(); err != nil {
				log.Warn("No catalog session, requests go out unauthenticated", "file", sess.Path())
			}

			var roster identity.Roster = ctx.lidarrClient()
			if db != nil {
				roster = lidarr.NewCachedRoster(ctx.lidarrClient(), db, constants.RosterCacheTTL)
			}

			eng := engine.New(ctx.provider(db, sess), roster, engine.Options{
				Dedup:  dedup.Options{Disabled: cfg.DisableDedup},
				Logger: log,
			})

			canonical, err := httpapp.NewCanonicalProxy(cfg.CanonicalURL, log)
			if err != nil {
				return err
			}
			scrobbler := httpapp.NewScrobblerProxy(cfg.ScrobblerURL, httpclient.NewClient(nil, httpclient.Options{}), log)

			h := httpapp.NewHandler(eng, canonical, scrobbler, log)
			srv := &http.Server{
				Addr:    ":" + cfg.Port,
				Handler: httpapp.NewRouter(h),
			}

			runCtx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			go reloadSession(runCtx, sess, log)

			serveErr := make(chan error, 1)
			go func() {
				log.Info("Server listening", "addr", srv.Addr, "dedup", !cfg.DisableDedup, "cache", db != nil)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serveErr <- err
				}
			}()

			// Graceful Shutdown
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(quit)

			select {
			case err := <-serveErr:
				return err
			case <-quit:
			case <-runCtx.Done():
			}

			log.Info("Shutting down server...")
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer shutdownCancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				return err
			}
			log.Info("Server exiting")
			return nil
		},
	}
}

// reloadSession picks up tokens the helper process refreshed on disk.
func reloadSession(ctx context.Context, sess *session.Store, log *logger.Logger) {
	ticker := time.NewTicker(sessionReloadInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := sess.Reload(); err != nil {
				log.Warn("Session reload failed", "file", sess.Path(), "error", err)
			}
		}
	}
}
