package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/hearthhq/hearth/internal/domain/recipe"
	"github.com/hearthhq/hearth/internal/domain/tags"
	"github.com/hearthhq/hearth/internal/infrastructure/config"
	"github.com/hearthhq/hearth/internal/infrastructure/fixtures"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "hearthctl",
		Short:         "Hearth household manager tooling",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newScaleCommand(), newFixturesCommand(), newConfigCommand(), newTagsCommand())
	return root
}

func newScaleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "scale <quantity> <factor>",
		Short: "Multiply an ingredient quantity",
		Example: `  hearthctl scale "1 1/2" 2
  hearthctl scale "2 cups" 0.5`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			factor, err := strconv.ParseFloat(args[1], 64)
			if err != nil || factor <= 0 {
				return fmt.Errorf("factor must be a positive number, got %q", args[1])
			}
			fmt.Fprintln(cmd.OutOrStdout(), recipe.ScaleQuantity(args[0], factor))
			return nil
		},
	}
}

func newFixturesCommand() *cobra.Command {
	fixturesCmd := &cobra.Command{
		Use:   "fixtures",
		Short: "Inspect sample data files",
	}
	fixturesCmd.AddCommand(&cobra.Command{
		Use:   "validate [path]",
		Short: "Validate a fixture file, or the embedded default",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			doc, err := fixtures.Load(path)
			if err != nil {
				return err
			}
			data, err := doc.Build()
			if err != nil {
				return err
			}

			counts := data.Counts()
			sections := make([]string, 0, len(counts))
			for section := range counts {
				sections = append(sections, section)
			}
			sort.Strings(sections)

			out := cmd.OutOrStdout()
			for _, section := range sections {
				fmt.Fprintf(out, "%-10s %d\n", section, counts[section])
			}
			fmt.Fprintln(out, "ok")
			return nil
		},
	})
	return fixturesCmd
}

func newTagsCommand() *cobra.Command {
	var (
		initial     []string
		maxTags     int
		fixturePath string
	)
	cmd := &cobra.Command{
		Use:   "tags <event>...",
		Short: "Replay tag field edits against the fixture vocabulary",
		Long: `Each event is typed into the tag field unless it names a key:
Enter, "," or Backspace. "pick:<tag>" chooses a suggestion.`,
		Example: `  hearthctl tags --tags Quick Heal
  hearthctl tags --tags Quick Vegan Enter Backspace Backspace`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vocabulary, err := fixtureVocabulary(fixturePath)
			if err != nil {
				return err
			}
			editor := tags.NewEditor(tags.NewSet(maxTags, initial...), vocabulary)
			for _, event := range args {
				switch key := tags.Key(event); {
				case key == tags.KeyEnter, key == tags.KeyComma, key == tags.KeyBackspace:
					editor.Press(key)
				case strings.HasPrefix(event, "pick:"):
					editor.Pick(strings.TrimPrefix(event, "pick:"))
				default:
					editor.Type(event)
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "tags        %s\n", strings.Join(editor.Tags(), ", "))
			fmt.Fprintf(out, "input       %s\n", editor.Input())
			fmt.Fprintf(out, "suggestions %s\n", strings.Join(editor.Suggestions(), ", "))
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&initial, "tags", nil, "tags already applied")
	cmd.Flags().IntVar(&maxTags, "max", tags.DefaultMaxTags, "maximum number of tags")
	cmd.Flags().StringVar(&fixturePath, "fixtures", "", "fixture file supplying the vocabulary")
	return cmd
}

func fixtureVocabulary(path string) ([]string, error) {
	doc, err := fixtures.Load(path)
	if err != nil {
		return nil, err
	}
	data, err := doc.Build()
	if err != nil {
		return nil, err
	}
	lists := make([][]string, 0, len(data.Recipes))
	for _, r := range data.Recipes {
		lists = append(lists, r.Tags())
	}
	return tags.Vocabulary(lists...), nil
}

func newConfigCommand() *cobra.Command {
	var path string
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Check configuration",
	}
	check := &cobra.Command{
		Use:   "check",
		Short: "Load and validate the configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "address  %s\n", cfg.Address())
			fmt.Fprintf(out, "database %s\n", cfg.Database.Driver)
			fmt.Fprintf(out, "cache    %s\n", cfg.Cache.Driver)
			fmt.Fprintln(out, "ok")
			return nil
		},
	}
	check.Flags().StringVarP(&path, "file", "f", "", "config file path")
	configCmd.AddCommand(check)
	return configCmd
}
