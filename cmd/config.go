package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kennyg/skillbrowser/internal/config"
	"github.com/kennyg/skillbrowser/internal/translate"
	"github.com/kennyg/skillbrowser/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show paths and translation settings",
	Args:  cobra.NoArgs,
	Run:   runConfigShow,
}

var configSetKeyCmd = &cobra.Command{
	Use:   "set-key <api-key>",
	Short: "Save the translation API key",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		updateSettings(func(s *config.Settings) { s.APIKey = args[0] })
		fmt.Println(ui.SuccessLine("API key saved"))
	},
}

var configSetModelCmd = &cobra.Command{
	Use:   "set-model <model>",
	Short: "Set the chat model used for translation",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		updateSettings(func(s *config.Settings) { s.Model = args[0] })
		fmt.Println(ui.SuccessLine("Model set to " + args[0]))
	},
}

var configSetEndpointCmd = &cobra.Command{
	Use:   "set-endpoint <url>",
	Short: "Set the chat completions endpoint",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		updateSettings(func(s *config.Settings) { s.Endpoint = args[0] })
		fmt.Println(ui.SuccessLine("Endpoint set to " + args[0]))
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetKeyCmd)
	configCmd.AddCommand(configSetModelCmd)
	configCmd.AddCommand(configSetEndpointCmd)
}

// updateSettings edits the settings file only, so environment overrides
// are never written back
func updateSettings(edit func(*config.Settings)) {
	paths := mustPaths()
	if err := paths.EnsureDirs(); err != nil {
		exitWithError(err.Error())
	}
	s, err := config.LoadSettingsFile(paths.SettingsFile)
	if err != nil {
		exitWithError(err.Error())
	}
	edit(s)
	if err := config.SaveSettings(paths.SettingsFile, s); err != nil {
		exitWithError(err.Error())
	}
}

func runConfigShow(cmd *cobra.Command, args []string) {
	paths := mustPaths()
	s, err := config.LoadSettings(paths.SettingsFile)
	if err != nil {
		exitWithError(err.Error())
	}

	model := s.Model
	if model == "" {
		model = translate.DefaultModel + " (default)"
	}
	endpoint := s.Endpoint
	if endpoint == "" {
		endpoint = translate.DefaultEndpoint + " (default)"
	}
	key := s.MaskedAPIKey()
	if key == "" {
		key = ui.Render(ui.Warning, "not set")
	} else if os.Getenv(config.EnvAPIKey) != "" {
		key += " (from " + config.EnvAPIKey + ")"
	}

	fmt.Println()
	fmt.Println(ui.Render(ui.Subtitle, "Paths"))
	fmt.Println(ui.Divider(40))
	printField("Skills", paths.SkillsDir)
	printField("Config", paths.SettingsFile)
	printField("Cache", paths.CacheDir)
	fmt.Println()
	fmt.Println(ui.Render(ui.Subtitle, "Translation"))
	fmt.Println(ui.Divider(40))
	printField("API key", key)
	printField("Model", model)
	printField("Endpoint", endpoint)
	fmt.Println()
}
