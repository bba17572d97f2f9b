package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/kennyg/skillbrowser/internal/catalog"
	"github.com/kennyg/skillbrowser/internal/config"
	"github.com/kennyg/skillbrowser/internal/ui"
	"github.com/kennyg/skillbrowser/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Reprint the skill list whenever the skills directory changes",
	Long: `Watch the skills directory and reprint the list after skills are added,
removed, or their description files change. Stop with Ctrl+C.`,
	Args: cobra.NoArgs,
	Run:  runWatch,
}

var watchShort bool

func init() {
	watchCmd.Flags().StringVarP(&listQuery, "query", "q", "", "Filter by name or description (case-insensitive)")
	watchCmd.Flags().BoolVar(&listFavorites, "favorites", false, "Show only favorites")
	watchCmd.Flags().StringVar(&listMatch, "match", "", "Filter skill ids by glob pattern")
	watchCmd.Flags().BoolVar(&watchShort, "short", true, "Truncate descriptions to one line")
}

func runWatch(cmd *cobra.Command, args []string) {
	paths := mustPaths()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w := watch.New(paths.SkillsDir, log.Default())
	if err := w.Start(ctx); err != nil {
		exitWithError(err.Error())
	}

	refreshList(paths)
	fmt.Println(ui.InfoLine("Watching " + paths.SkillsDir + " (Ctrl+C to stop)"))

	for range w.Events() {
		log.Debug("Skills directory changed")
		fmt.Println(ui.Divider(40))
		fmt.Println(ui.Render(ui.Dim, "  refreshed "+time.Now().Format(time.TimeOnly)))
		refreshList(paths)
	}
}

func refreshList(paths *config.Paths) {
	_, _, items := loadCatalog(paths)
	visible, err := catalog.Filter(items, currentQuery())
	if err != nil {
		exitWithError(err.Error())
	}
	printList(items, visible, paths.SkillsDir, watchShort)
}
