package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kennyg/skillbrowser/internal/catalog"
	"github.com/kennyg/skillbrowser/internal/translate"
	"github.com/kennyg/skillbrowser/internal/ui"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List installed skills",
	Long: `List installed skills with their translations, pinned skills first.

Examples:
  skillbrowser list --query pdf
  skillbrowser ls --favorites --short
  skillbrowser list --match 'git-*' --json`,
	Args: cobra.NoArgs,
	Run:  runList,
}

var (
	listQuery     string
	listFavorites bool
	listMatch     string
	listShort     bool
	listJSON      bool
)

func init() {
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "Filter by name or description (case-insensitive)")
	listCmd.Flags().BoolVar(&listFavorites, "favorites", false, "Show only favorites")
	listCmd.Flags().StringVar(&listMatch, "match", "", "Filter skill ids by glob pattern")
	listCmd.Flags().BoolVar(&listShort, "short", false, "Truncate descriptions to one line")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
}

func currentQuery() catalog.Query {
	return catalog.Query{
		Text:          listQuery,
		FavoritesOnly: listFavorites,
		Pattern:       listMatch,
	}
}

func runList(cmd *cobra.Command, args []string) {
	paths := mustPaths()
	_, _, items := loadCatalog(paths)

	visible, err := catalog.Filter(items, currentQuery())
	if err != nil {
		if errors.Is(err, catalog.ErrBadPattern) {
			exitWithError(fmt.Sprintf("invalid --match pattern '%s'", listMatch))
		}
		exitWithError(err.Error())
	}

	if listJSON {
		if visible == nil {
			visible = []catalog.Item{}
		}
		out, err := json.MarshalIndent(visible, "", "  ")
		if err != nil {
			exitWithError(err.Error())
		}
		fmt.Println(string(out))
		return
	}

	printList(items, visible, paths.SkillsDir, listShort)
}

// printList renders the styled list; items is the unfiltered catalog
func printList(items, visible []catalog.Item, skillsDir string, short bool) {
	if len(items) == 0 {
		fmt.Print(ui.EmptyShelf(skillsDir))
		return
	}
	if len(visible) == 0 {
		query := listQuery
		if query == "" {
			query = listMatch
		}
		fmt.Print(ui.NoResults(query))
		return
	}

	fmt.Println()
	fmt.Println(ui.SectionHeader("Skills"))
	fmt.Println()

	descWidth := ui.DescriptionWidth()
	descStyle := lipgloss.NewStyle().Foreground(ui.Gray)

	for _, item := range visible {
		line := "  " + ui.FavoriteMark(item.IsFavorite) + " " + ui.Render(ui.Name, item.DisplayName())
		if item.DisplayName() != item.ID {
			line += " " + ui.Render(ui.Dim, "("+item.ID+")")
		}
		if pin := ui.PinnedMark(item.IsPinned); pin != "" {
			line += " " + pin
		}
		if t := ui.TranslatedMark(item.Translated()); t != "" {
			line += " " + t
		}
		fmt.Println(line)

		desc := item.DisplayDescription()
		if desc == "" {
			fmt.Printf("    %s\n", ui.Render(ui.Dim, "(no description)"))
		} else if short {
			fmt.Printf("    %s\n", ui.Render(descStyle, ui.Truncate(shortDescription(desc), descWidth)))
		} else {
			for _, para := range strings.Split(desc, "\n") {
				for _, l := range ui.WrapText(para, descWidth) {
					fmt.Printf("    %s\n", ui.Render(descStyle, l))
				}
			}
		}
		fmt.Println()
	}

	counts := catalog.Count(items)
	summary := fmt.Sprintf("%d skills, %d favorites, %d pinned, %d translated",
		counts.Total, counts.Favorites, counts.Pinned, counts.Translated)
	if len(visible) != len(items) {
		summary = fmt.Sprintf("%d of %s", len(visible), summary)
	}
	fmt.Println(ui.Render(ui.Muted, "  "+summary))
	fmt.Print(ui.PageFooter())
}

// shortDescription prefers the translated intro over the first line
func shortDescription(desc string) string {
	if intro, timing, ok := translate.IntroAndTiming(desc); ok {
		if intro != "" {
			return intro
		}
		return timing
	}
	return ui.FirstLine(desc)
}
