package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sandevgo/medicbot/internal/config"
	"github.com/sandevgo/medicbot/pkg/env"
)

var envReveal bool

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Print the effective configuration as .env content",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		appCfg := config.NewAppConfig(ctx)
		configs := []any{
			appCfg,
			config.NewSiteConfig(ctx),
			config.NewLLMConfig(ctx),
		}
		if appCfg.EnableHTTP {
			configs = append(configs, config.NewHTTPConfig(ctx))
		}
		if appCfg.EnableTelegram {
			configs = append(configs, config.NewTelegramConfig(ctx))
		}

		out, err := env.MarshalEnv(envReveal, configs...)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", appCfg.GetEnvPath(), out)
		return nil
	},
}

func init() {
	envCmd.Flags().BoolVar(&envReveal, "reveal", false, "print secrets instead of masking them")
	rootCmd.AddCommand(envCmd)
}
