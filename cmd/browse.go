package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/kennyg/skillbrowser/internal/cache"
	"github.com/kennyg/skillbrowser/internal/config"
	"github.com/kennyg/skillbrowser/internal/skill"
	"github.com/kennyg/skillbrowser/internal/tui"
	"github.com/kennyg/skillbrowser/internal/watch"
)

var browseCmd = &cobra.Command{
	Use:     "browse",
	Aliases: []string{"ui"},
	Short:   "Browse skills interactively",
	Long: `Open the interactive browser: type to search, Tab to show only
favorites, Ctrl+F to favorite, Ctrl+T to pin, Enter to copy the skill's
slash command. The list refreshes when the skills directory changes.

Falls back to 'list' when stdout is not a terminal.`,
	Args: cobra.NoArgs,
	Run:  runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) {
	if !tui.ShouldRun(false) {
		runList(cmd, args)
		return
	}

	paths := mustPaths()
	skills := scanSkills(paths)
	c := loadCache(paths)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := tui.Options{
		Skills: skills,
		Cache:  c,
		Save: func(c cache.Cache) error {
			return saveCache(paths, c)
		},
		Copy: clipboard.WriteAll,
	}

	if err := tui.Run(ctx, opts, watchSkills(ctx, paths)); err != nil {
		exitWithError(err.Error())
	}
}

// watchSkills rescans on every directory change. It returns nil when the
// directory cannot be watched, which leaves the browser static.
func watchSkills(ctx context.Context, paths *config.Paths) <-chan []skill.Info {
	w := watch.New(paths.SkillsDir, log.Default())
	if err := w.Start(ctx); err != nil {
		log.Debug("Live refresh disabled", "err", err)
		return nil
	}

	out := make(chan []skill.Info)
	go func() {
		defer close(out)
		scanner := skill.NewScanner(paths.SkillsDir).WithLogger(log.Default())
		for range w.Events() {
			skills, err := scanner.Scan()
			if err != nil {
				log.Warn("Rescan failed", "err", err)
				continue
			}
			select {
			case out <- skills:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
