package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kennyg/skillbrowser/internal/ui"
)

var clearCmd = &cobra.Command{
	Use:   "clear [id...]",
	Short: "Remove cached translations",
	Long: `Remove cached translations so skills show their original text again.

Favorites and pins are kept.`,
	Example: `  skillbrowser clear pdf
  skillbrowser clear --all`,
	Run: runClear,
}

var clearAll bool

func init() {
	clearCmd.Flags().BoolVar(&clearAll, "all", false, "Clear every translation")
}

func runClear(cmd *cobra.Command, args []string) {
	if !clearAll && len(args) == 0 {
		exitWithError("name at least one skill id, or use --all")
	}

	paths := mustPaths()
	c := loadCache(paths)

	if clearAll {
		c.ClearAllTranslations()
	} else {
		for _, id := range args {
			if !c.IsTranslated(id) {
				fmt.Println(ui.WarningLine(fmt.Sprintf("%s has no translation", id)))
			}
		}
		c.ClearTranslations(args...)
	}

	if err := saveCache(paths, c); err != nil {
		exitWithError(err.Error())
	}

	if clearAll {
		fmt.Println(ui.SuccessLine("Cleared all translations"))
		return
	}
	fmt.Println(ui.SuccessLine(fmt.Sprintf("Cleared %d translations", len(args))))
}
