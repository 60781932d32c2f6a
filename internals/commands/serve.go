package commands

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	database "schoolku_backend/internals/databases"
	"schoolku_backend/internals/logger"
	routes "schoolku_backend/internals/route"
)

const shutdownTimeout = 5 * time.Second

func ServeCmd(st *state) *cobra.Command {
	var autoMigrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Jalankan HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := st.cfg

			// 🔌 DB connect + pool
			db, err := database.Connect(cfg)
			if err != nil {
				return err
			}
			defer database.Close(db)
			if err := database.TunePool(db, cfg); err != nil {
				return err
			}
			if autoMigrate {
				if err := database.Migrate(db); err != nil {
					return err
				}
			}

			app := routes.NewApp(cfg, nil)
			routes.SetupRoutes(app, db, cfg)

			errCh := make(chan error, 1)
			go func() {
				logger.Info("✅ Listening", "port", cfg.Port)
				errCh <- app.Listen("0.0.0.0:" + cfg.Port)
			}()

			// graceful shutdown
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(quit)

			select {
			case err := <-errCh:
				return err
			case sig := <-quit:
				logger.Info("shutting down", "signal", sig.String())
			}

			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := app.ShutdownWithContext(ctx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&autoMigrate, "migrate", false, "AutoMigrate sebelum server jalan")
	return cmd
}
