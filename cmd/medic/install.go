package main

import (
	"github.com/spf13/cobra"

	"github.com/sandevgo/medicbot/internal/config"
	"github.com/sandevgo/medicbot/internal/service/installer"
	"github.com/sandevgo/medicbot/pkg/log"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Write the runtime configuration interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		logger := log.FromCtx(ctx)
		runtimePath := config.GetRuntimePath()

		if _, err := installer.RunWizard(runtimePath); err != nil {
			return err
		}

		logger.Info().Str("path", runtimePath).Msg("initialized runtime directory")
		logger.Info().Msg("installation complete, run 'medic start'")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(installCmd)
}
