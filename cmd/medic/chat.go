package main

import (
	"github.com/spf13/cobra"

	"github.com/sandevgo/medicbot/internal/service/assistant"
	"github.com/sandevgo/medicbot/internal/transport/cli"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the assistant in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		a := newApp(ctx)

		rl, err := cli.NewReadLine(a.registry, a.router, assistant.DefaultOptions(), a.cfg)
		if err != nil {
			return err
		}
		defer rl.Shutdown(ctx)

		return rl.Start(ctx)
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
