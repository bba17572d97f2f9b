package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/kennyg/skillbrowser/internal/skill"
	"github.com/kennyg/skillbrowser/internal/translate"
	"github.com/kennyg/skillbrowser/internal/ui"
)

var showCmd = &cobra.Command{
	Use:     "show <id|path>",
	Aliases: []string{"info"},
	Short:   "Show a skill in detail",
	Long: `Show a skill's translation, metadata, and its description file
rendered as markdown.

A path (anything containing a slash) shows a skill directory directly,
even one outside the skills directory.`,
	Example: `  skillbrowser show pdf
  skillbrowser show ./my-skill --raw`,
	Args: cobra.ExactArgs(1),
	Run:  runShow,
}

var showRaw bool

func init() {
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "Print the description file without rendering")
}

func runShow(cmd *cobra.Command, args []string) {
	item := lookupSkill(mustPaths(), args[0])

	fmt.Println()
	fmt.Printf("%s %s\n", ui.SkillBadge(), ui.Render(ui.Title, item.DisplayName()))
	fmt.Println()

	if item.Translated() {
		if intro, timing, ok := translate.IntroAndTiming(item.DescriptionZh); ok {
			printField("简介", intro)
			printField("时机", timing)
			printField("调用", translate.Section(item.DescriptionZh, "调用"))
		} else {
			fmt.Println("  " + item.DescriptionZh)
		}
		fmt.Println()
	}

	fmt.Println(ui.Render(ui.Subtitle, "Details"))
	fmt.Println(ui.Divider(40))
	printField("ID", item.ID)
	printField("Command", ui.Render(ui.Code, item.Command()))
	printField("Path", item.Path)
	printField("Favorite", yesNo(item.IsFavorite))
	printField("Pinned", yesNo(item.IsPinned))
	if item.LastUpdated != "" {
		printField("Translated", item.LastUpdated)
	}

	file := skill.DescriptionFile(item.Path)
	if file == "" {
		fmt.Println()
		fmt.Println(ui.WarningLine("No description file"))
		fmt.Print(ui.PageFooter())
		return
	}
	printField("File", filepath.Base(file))

	content, err := os.ReadFile(file)
	if err != nil {
		exitWithError(err.Error())
	}

	body := string(content)
	meta, parsed, err := skill.ParseMetadata(content)
	if err != nil {
		log.Debug("Frontmatter ignored", "file", file, "err", err)
	} else {
		body = parsed
		if meta.Version != "" {
			printField("Version", meta.Version)
		}
		if meta.Author != "" {
			printField("Author", meta.Author)
		}
		if len(meta.Tags) > 0 {
			printField("Tags", strings.Join(meta.Tags, ", "))
		}
	}

	fmt.Println()
	fmt.Println(ui.SectionHeader(filepath.Base(file)))
	fmt.Println()
	if showRaw {
		fmt.Println(strings.TrimSpace(body))
	} else {
		fmt.Println(ui.RenderMarkdown(body, ui.TerminalWidth()))
	}
	fmt.Print(ui.PageFooter())
}

func printField(label, value string) {
	if value == "" {
		return
	}
	fmt.Printf("  %-11s %s\n", label+":", value)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
