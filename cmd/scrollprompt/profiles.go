package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/muurk/scrollprompt/internal/config"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Manage device profiles",
	Long: `List, add and select the screen profiles prompts are rendered for.

Built-in profiles can be shadowed by a user profile of the same name.`,
}

var profilesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List known profiles",
	Args:  cobra.NoArgs,
	RunE:  runProfilesList,
}

var (
	addChars       int
	addLines       int
	addIndex       bool
	addMaxPages    int
	addDescription string
)

var profilesAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add or replace a user profile",
	Example: `  # A 20x2 character LCD without page index
  scrollprompt profiles add lcd2004 --chars 20 --lines 2

  # Shadow the built-in nanos profile
  scrollprompt profiles add nanos --chars 16 --lines 1 --index --max-pages 200`,
	Args: cobra.ExactArgs(1),
	RunE: runProfilesAdd,
}

var profilesDefaultCmd = &cobra.Command{
	Use:   "default <name>",
	Short: "Set the profile used when --profile is not given",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfilesDefault,
}

func init() {
	rootCmd.AddCommand(profilesCmd)
	profilesCmd.AddCommand(profilesListCmd)
	profilesCmd.AddCommand(profilesAddCmd)
	profilesCmd.AddCommand(profilesDefaultCmd)

	profilesAddCmd.Flags().IntVar(&addChars, "chars", 16, "Display cells per line")
	profilesAddCmd.Flags().IntVar(&addLines, "lines", 1, "Content lines per screen")
	profilesAddCmd.Flags().BoolVar(&addIndex, "index", false, "Show the page index in the title")
	profilesAddCmd.Flags().IntVar(&addMaxPages, "max-pages", 0, "Refuse content needing more pages (0 = default)")
	profilesAddCmd.Flags().StringVar(&addDescription, "description", "", "Free-form description")
}

func runProfilesList(cmd *cobra.Command, args []string) error {
	registry, err := config.LoadRegistry(configPath)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSCREEN\tINDEX\tSOURCE\tDESCRIPTION")
	for _, name := range registry.ProfileNames() {
		p, err := registry.GetProfile(name)
		if err != nil {
			return err
		}
		marker := ""
		if name == registry.DefaultProfileName() {
			marker = " *"
		}
		source := "user"
		if registry.IsBuiltin(name) {
			source = "builtin"
		}
		fmt.Fprintf(w, "%s%s\t%dx%d\t%t\t%s\t%s\n", name, marker, p.CharsPerLine, p.LinesPerPage, p.ShowIndex, source, p.Description)
	}
	return w.Flush()
}

func runProfilesAdd(cmd *cobra.Command, args []string) error {
	registry, err := config.LoadRegistry(configPath)
	if err != nil {
		return err
	}

	name := args[0]
	profile := &config.Profile{
		Description:  addDescription,
		CharsPerLine: addChars,
		LinesPerPage: addLines,
		ShowIndex:    addIndex,
		MaxPages:     addMaxPages,
	}
	if err := registry.SetProfile(name, profile); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}
	if err := registry.Save(configPath); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved profile %s (%dx%d)\n", name, addChars, addLines)
	return nil
}

func runProfilesDefault(cmd *cobra.Command, args []string) error {
	registry, err := config.LoadRegistry(configPath)
	if err != nil {
		return err
	}
	if err := registry.SetDefault(args[0]); err != nil {
		return err
	}
	if err := registry.Save(configPath); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Default profile is now %s\n", args[0])
	return nil
}
