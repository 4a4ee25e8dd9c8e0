package cmd

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/vodo-app/vodo/filesystem"
	"github.com/vodo-app/vodo/inline"
	"github.com/vodo-app/vodo/query"
	"github.com/vodo-app/vodo/tvmaze"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.PersistentFlags().BoolP("json", "j", false, "Format the command output as a JSON object")
	inlineCmd.PersistentFlags().StringP("output", "o", "", "Specify a file path to write the command output")
}

// inlineCmd groups the non-interactive, scriptable lookups.
var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Query the catalog in non-interactive, scriptable inline mode",
	Long: `Query the catalog without the interactive interface.

Show pickers:
  first - first show in the results
  last - last show in the results
  exact - show whose name equals the query, ignoring case
  [number] - select show by index (starting from 0)`,
}

// inlineOptions collects the flags shared by every inline subcommand.
func inlineOptions(cmd *cobra.Command) *inline.Options {
	var writer io.Writer = os.Stdout

	if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
		file, err := filesystem.CreateAll(output)
		handleErr(err)
		cobra.OnFinalize(func() { _ = file.Close() })
		writer = file
	}

	return &inline.Options{
		Out:     writer,
		Catalog: tvmaze.New(),
		Json:    lo.Must(cmd.Flags().GetBool("json")),
	}
}

func init() {
	inlineCmd.AddCommand(inlineSearchCmd)

	inlineSearchCmd.Flags().StringP("query", "q", "", "The search query to execute")
	lo.Must0(inlineSearchCmd.RegisterFlagCompletionFunc("query", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	}))
	inlineSearchCmd.Flags().StringP("pick", "p", "", "Criteria for selecting a single show from the results")
	lo.Must0(inlineSearchCmd.MarkFlagRequired("query"))
	lo.Must0(inlineSearchCmd.RegisterFlagCompletionFunc("pick", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"first", "last", "exact"}, cobra.ShellCompDirectiveNoFileComp
	}))
}

// inlineSearchCmd prints the shows matching a query.
var inlineSearchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search shows by name",
	Run: func(cmd *cobra.Command, args []string) {
		options := inlineOptions(cmd)
		options.Query = lo.Must(cmd.Flags().GetString("query"))

		if pick := lo.Must(cmd.Flags().GetString("pick")); pick != "" {
			picker, err := inline.ParseShowPicker(pick, options.Query)
			handleErr(err)
			options.ShowPicker = mo.Some(picker)
		}

		handleErr(inline.Search(context.Background(), options))
	},
}

func init() {
	inlineCmd.AddCommand(inlineShowCmd)

	inlineShowCmd.Flags().StringP("id", "i", "", "The show to describe")
	inlineShowCmd.Flags().IntP("season", "s", 0, "Only list the episodes of this season")
	lo.Must0(inlineShowCmd.MarkFlagRequired("id"))
}

// inlineShowCmd prints a show with its episodes grouped into seasons.
var inlineShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Describe a show and list its seasons",
	Run: func(cmd *cobra.Command, args []string) {
		options := inlineOptions(cmd)
		options.ShowID = lo.Must(cmd.Flags().GetString("id"))

		if cmd.Flags().Changed("season") {
			options.Season = mo.Some(lo.Must(cmd.Flags().GetInt("season")))
		}

		handleErr(inline.Show(context.Background(), options))
	},
}

func init() {
	inlineCmd.AddCommand(inlineEpisodeCmd)

	inlineEpisodeCmd.Flags().StringP("show", "s", "", "The show the episode belongs to")
	inlineEpisodeCmd.Flags().StringP("episode", "e", "", "The episode to describe")
	lo.Must0(inlineEpisodeCmd.MarkFlagRequired("show"))
	lo.Must0(inlineEpisodeCmd.MarkFlagRequired("episode"))
}

// inlineEpisodeCmd prints an episode together with its neighbours.
var inlineEpisodeCmd = &cobra.Command{
	Use:   "episode",
	Short: "Describe an episode and its previous and next episodes",
	Run: func(cmd *cobra.Command, args []string) {
		options := inlineOptions(cmd)
		options.ShowID = lo.Must(cmd.Flags().GetString("show"))
		options.EpisodeID = lo.Must(cmd.Flags().GetString("episode"))

		handleErr(inline.Episode(context.Background(), options))
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)

	inlineSchemaCmd.Flags().BoolP("show", "s", false, "Generate the JSON Schema for the show output")
	inlineSchemaCmd.Flags().BoolP("episode", "e", false, "Generate the JSON Schema for the episode output")
	inlineSchemaCmd.MarkFlagsMutuallyExclusive("show", "episode")
}

// inlineSchemaCmd generates JSON schemas for structured inline mode outputs.
var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate JSON schemas for structured inline mode outputs",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "show", "episode", "season", "image":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		var schema *jsonschema.Schema

		switch {
		case lo.Must(cmd.Flags().GetBool("show")):
			schema = reflector.Reflect(&inline.ShowOutput{})
		case lo.Must(cmd.Flags().GetBool("episode")):
			schema = reflector.Reflect(&inline.EpisodeOutput{})
		default:
			schema = reflector.Reflect(&inline.SearchOutput{})
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(schema))
	},
}
