package commands

import (
	"github.com/spf13/cobra"

	"schoolku_backend/internals/configs"
	"schoolku_backend/internals/logger"
)

// state dibagi antar subcommand; diisi di PersistentPreRunE.
type state struct {
	cfg *configs.Config
}

func RootCmd() *cobra.Command {
	st := &state{}
	serve := ServeCmd(st)

	root := &cobra.Command{
		Use:           "schoolku",
		Short:         "Backend administrasi sekolah (SD/SMP/SMA)",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			configs.LoadEnv()
			cfg, err := configs.Load()
			if err != nil {
				return err
			}
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				cfg.LogLevel = "debug"
			}
			logger.Init(logger.Config{Level: cfg.LogLevel, JSON: cfg.LogJSON})
			st.cfg = cfg
			return nil
		},
		// tanpa subcommand → serve
		RunE: serve.RunE,
	}
	root.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	root.Flags().AddFlagSet(serve.Flags())

	root.AddCommand(
		serve,
		MigrateCmd(st),
		SeedCmd(st),
		TokenCmd(st),
	)
	return root
}

func Execute() error {
	return RootCmd().Execute()
}
