package commands

import (
	"github.com/spf13/cobra"

	database "schoolku_backend/internals/databases"
	"schoolku_backend/internals/logger"
	"schoolku_backend/internals/seeds"
)

func MigrateCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "AutoMigrate semua tabel",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := database.Connect(st.cfg)
			if err != nil {
				return err
			}
			defer database.Close(db)

			if err := database.Migrate(db); err != nil {
				return err
			}
			logger.Info("✅ migrate selesai", "tables", len(database.Models()))
			return nil
		},
	}
}

func SeedCmd(st *state) *cobra.Command {
	var migrateFirst bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Isi data contoh (idempotent)",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := database.Connect(st.cfg)
			if err != nil {
				return err
			}
			defer database.Close(db)

			if migrateFirst {
				if err := database.Migrate(db); err != nil {
					return err
				}
			}
			return seeds.RunAllSeeds(cmd.Context(), db)
		},
	}
	cmd.Flags().BoolVar(&migrateFirst, "migrate", true, "AutoMigrate dulu sebelum seed")
	return cmd
}
