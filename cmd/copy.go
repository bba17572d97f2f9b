package cmd

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/kennyg/skillbrowser/internal/ui"
)

var copyCmd = &cobra.Command{
	Use:   "copy <id>",
	Short: "Copy a skill's slash command to the clipboard",
	Args:  cobra.ExactArgs(1),
	Run:   runCopy,
}

func runCopy(cmd *cobra.Command, args []string) {
	_, _, items := loadCatalog(mustPaths())
	item := requireSkill(items, args[0])

	command := item.Command()
	if err := clipboard.WriteAll(command); err != nil {
		// No clipboard (e.g. headless); print it so it can still be used.
		fmt.Println(command)
		exitWithError("clipboard unavailable: " + err.Error())
	}
	fmt.Println(ui.SuccessLine("Copied " + ui.Render(ui.Code, command)))
}
