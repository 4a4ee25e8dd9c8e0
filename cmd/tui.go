package cmd

import (
	"context"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vodo-app/vodo/tui"
	"github.com/vodo-app/vodo/query"
	"github.com/vodo-app/vodo/tvmaze"
)

func init() {
	rootCmd.AddCommand(tuiCmd)

	tuiCmd.Flags().StringP("query", "q", "", "Search for this query right away")
	lo.Must0(tuiCmd.RegisterFlagCompletionFunc("query", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	}))
}

// tuiCmd browses the catalog in the terminal.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse shows in the terminal",
	Run: func(cmd *cobra.Command, args []string) {
		options := &tui.Options{
			Catalog: tvmaze.New(),
			Query:   lo.Must(cmd.Flags().GetString("query")),
		}

		handleErr(tui.Run(context.Background(), options))
	},
}
