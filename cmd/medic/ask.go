package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sandevgo/medicbot/internal/service/assistant"
)

var (
	askTemperature float64
	askMaxLength   int
	askTopK        int
	askExplain     bool
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Answer a single question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		bot := newApp(ctx).newAssistant()
		question := strings.Join(args, " ")

		opts := assistant.DefaultOptions()
		opts.Temperature = &askTemperature
		opts.MaxTokens = askMaxLength
		opts.TopK = askTopK

		set, err := bot.Classify(ctx, question)
		if err != nil {
			return err
		}
		if askExplain {
			fmt.Fprintf(cmd.ErrOrStderr(), "categories: %s\n", set)
		}

		answer, err := bot.AnswerWith(ctx, question, set, opts)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), answer)
		return nil
	},
}

func init() {
	askCmd.Flags().Float64Var(&askTemperature, "temperature", 0.7, "sampling temperature")
	askCmd.Flags().IntVar(&askMaxLength, "max-length", 500, "maximum answer length in tokens")
	askCmd.Flags().IntVar(&askTopK, "top-k", 3, "top-k sampling, where the backend supports it")
	askCmd.Flags().BoolVar(&askExplain, "explain", false, "print the detected question categories")
	rootCmd.AddCommand(askCmd)
}
