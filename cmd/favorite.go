package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kennyg/skillbrowser/internal/cache"
	"github.com/kennyg/skillbrowser/internal/ui"
)

var favoriteCmd = &cobra.Command{
	Use:     "favorite <id>",
	Aliases: []string{"fav", "star"},
	Short:   "Toggle a skill's favorite mark",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		toggleFlag(args[0], cache.Cache.ToggleFavorite, "Marked %s as favorite", "Removed %s from favorites")
	},
}

var pinCmd = &cobra.Command{
	Use:   "pin <id>",
	Short: "Toggle whether a skill is pinned to the top",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		toggleFlag(args[0], cache.Cache.TogglePinned, "Pinned %s", "Unpinned %s")
	},
}

// toggleFlag flips one cache flag for an installed skill and saves
func toggleFlag(id string, flip func(cache.Cache, string) bool, onMsg, offMsg string) {
	paths := mustPaths()
	_, c, items := loadCatalog(paths)
	requireSkill(items, id)

	msg := offMsg
	if flip(c, id) {
		msg = onMsg
	}
	if err := saveCache(paths, c); err != nil {
		exitWithError(err.Error())
	}
	printSuccess(msg, id)
}

func printSuccess(format string, args ...any) {
	fmt.Println(ui.SuccessLine(fmt.Sprintf(format, args...)))
}
