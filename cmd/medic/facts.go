package main

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sandevgo/medicbot/internal/service/facts"
	"github.com/sandevgo/medicbot/pkg/conv"
)

var factsRaw bool

var factNames = []string{"contacts", "schedule", "reminder", "results"}

var factsCmd = &cobra.Command{
	Use:       "facts [" + strings.Join(factNames, "|") + "]",
	Short:     "Print facts scraped from the clinic website",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: factNames,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		names := factNames
		if len(args) == 1 {
			if !slices.Contains(factNames, args[0]) {
				return fmt.Errorf("unknown fact %q, expected one of %s", args[0], strings.Join(factNames, ", "))
			}
			names = args[:1]
		}

		agg := newFacts(ctx)
		for _, name := range names {
			text := factByName(ctx, agg, name)
			if !factsRaw {
				plain, err := conv.HTMLToText(text)
				if err != nil {
					return fmt.Errorf("render %s: %w", name, err)
				}
				text = plain
			}
			fmt.Fprintf(cmd.OutOrStdout(), "== %s ==\n%s\n\n", name, text)
		}
		return nil
	},
}

func factByName(ctx context.Context, agg *facts.Aggregator, name string) string {
	switch name {
	case "contacts":
		return agg.Contacts(ctx)
	case "schedule":
		return agg.Schedule(ctx)
	case "reminder":
		return agg.Reminder(ctx)
	default:
		return agg.Results(ctx)
	}
}

func init() {
	factsCmd.Flags().BoolVar(&factsRaw, "raw", false, "print the Telegram HTML as is")
	rootCmd.AddCommand(factsCmd)
}
