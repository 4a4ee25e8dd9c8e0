package cmd

import (
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vodo-app/vodo/color"
	"github.com/vodo-app/vodo/style"
	"github.com/vodo-app/vodo/where"
)

type whereTarget struct {
	name     string
	where    func() string
	argLong  string
	argShort string
}

// wherePaths lists the resources whose location can be printed.
var wherePaths = []whereTarget{
	{"Config", where.Config, "config", "c"},
	{"Config file", where.ConfigFile, "config-file", "f"},
	{"Logs", where.Logs, "logs", "l"},
	{"Cache", where.Cache, "cache", "C"},
	{"Search history", where.Queries, "queries", "q"},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, t := range wherePaths {
		whereCmd.Flags().BoolP(t.argLong, t.argShort, false, t.name+" path")
	}

	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(wherePaths, func(t whereTarget, _ int) string {
		return t.argLong
	})...)

	whereCmd.SetOut(os.Stdout)
}

// whereCmd prints where vodo keeps its files. With a flag only that path is printed, which
// makes it usable in scripts.
var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Display the filesystem paths used by the application",
	Run: func(cmd *cobra.Command, args []string) {
		for _, t := range wherePaths {
			if lo.Must(cmd.Flags().GetBool(t.argLong)) {
				cmd.Println(t.where())
				return
			}
		}

		header := style.New().Bold(true).Foreground(color.HiPurple).Render
		for i, t := range wherePaths {
			if i > 0 {
				cmd.Println()
			}
			cmd.Printf("%s %s\n", header(t.name+"?"), style.Fg(color.Yellow)("--"+t.argLong))
			cmd.Println(t.where())
		}
	},
}
