package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/kennyg/skillbrowser/internal/ui"
)

var (
	// Version is set at build time
	Version = "dev"
)

var (
	debugFlag     bool
	skillsDirFlag string
	configDirFlag string
)

var rootCmd = &cobra.Command{
	Use:   "skillbrowser",
	Short: "Browse your local Claude skills",
	Long: `Browse, translate, and organize the skills in ~/.claude/skills.

  Translations, favorites, and pins are kept in a JSON cache so they
  survive restarts.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debugFlag {
			log.SetLevel(log.DebugLevel)
			log.Debug("Debug logging enabled")
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// A missing .env is fine; real environment variables still apply.
	_ = godotenv.Load()

	log.SetOutput(os.Stderr)
	log.SetLevel(log.WarnLevel)

	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&skillsDirFlag, "skills-dir", "", "Skills directory (default ~/.claude/skills)")
	rootCmd.PersistentFlags().StringVar(&configDirFlag, "config-dir", "", "Config and cache directory (default ~/.config/skillbrowser)")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(favoriteCmd)
	rootCmd.AddCommand(pinCmd)
	rootCmd.AddCommand(translateCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(copyCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("skillbrowser %s\n", Version)
	},
}

// exitWithError prints an error and exits
func exitWithError(msg string) {
	fmt.Fprintln(os.Stderr, ui.Error.Render("Error: "+msg))
	os.Exit(1)
}
