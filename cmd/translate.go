package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/kennyg/skillbrowser/internal/config"
	"github.com/kennyg/skillbrowser/internal/skill"
	"github.com/kennyg/skillbrowser/internal/translate"
	"github.com/kennyg/skillbrowser/internal/ui"
)

var translateCmd = &cobra.Command{
	Use:   "translate [id...]",
	Short: "Translate skill names and descriptions into Chinese",
	Long: `Translate skills through an OpenAI-compatible chat API (DeepSeek by default).

Already translated skills are skipped unless --force is given. The cache
is saved after every skill, so an interrupted run keeps its progress.

The API key comes from ` + config.EnvAPIKey + ` or 'skillbrowser config set-key'.`,
	Example: `  skillbrowser translate --all
  skillbrowser translate pdf brainstorm --force`,
	Run: runTranslate,
}

var (
	translateAll   bool
	translateForce bool
)

func init() {
	translateCmd.Flags().BoolVar(&translateAll, "all", false, "Translate every untranslated skill")
	translateCmd.Flags().BoolVar(&translateForce, "force", false, "Retranslate skills that already have a translation")
}

func runTranslate(cmd *cobra.Command, args []string) {
	if !translateAll && len(args) == 0 {
		exitWithError("name at least one skill id, or use --all")
	}

	paths := mustPaths()
	skills, c, items := loadCatalog(paths)

	settings, err := config.LoadSettings(paths.SettingsFile)
	if err != nil {
		exitWithError(err.Error())
	}
	if settings.APIKey == "" {
		exitWithError(translate.ErrNoAPIKey.Error() + "; set " + config.EnvAPIKey + " or run 'skillbrowser config set-key'")
	}

	client := translate.NewClient(settings.APIKey)
	if settings.Model != "" {
		client.Model = settings.Model
	}
	if settings.Endpoint != "" {
		client.Endpoint = settings.Endpoint
	}

	selected := skills
	if !translateAll {
		selected = make([]skill.Info, 0, len(args))
		for _, id := range args {
			selected = append(selected, requireSkill(items, id).Info)
		}
	}
	pending := selected
	if !translateForce {
		pending = translate.Pending(selected, c)
	}
	if len(pending) == 0 {
		fmt.Println(ui.InfoLine("Nothing to translate"))
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Println(ui.InfoLine(fmt.Sprintf("Translating %d skills with %s", len(pending), client.Model)))

	failed := 0
	done, err := translate.Batch(ctx, client, pending, c, translate.BatchOptions{
		Logger: log.Default(),
		Force:  translateForce,
		OnResult: func(info skill.Info, res translate.Result, err error) {
			if err != nil {
				failed++
				fmt.Println(ui.ErrorLine(fmt.Sprintf("%s: %v", info.ID, err)))
				return
			}
			if saveErr := saveCache(paths, c); saveErr != nil {
				log.Error("Saving cache failed", "err", saveErr)
			}
			fmt.Println(ui.SuccessLine(fmt.Sprintf("%s → %s", info.ID, res.NameZh)))
		},
	})

	if errors.Is(err, context.Canceled) {
		fmt.Println(ui.WarningLine(fmt.Sprintf("Interrupted after %d of %d", done, len(pending))))
		os.Exit(130)
	}
	fmt.Println()
	fmt.Println(ui.Render(ui.Muted, fmt.Sprintf("  %d translated, %d failed", done, failed)))
	if failed > 0 && done == 0 {
		os.Exit(1)
	}
}
