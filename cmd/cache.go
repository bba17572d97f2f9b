package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/kennyg/skillbrowser/internal/cache"
	"github.com/kennyg/skillbrowser/internal/ui"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Read or write raw cache files",
	Long: `Read or write files in the cache directory as raw text.

The file name defaults to ` + cache.DefaultFileName + ` and must be a
plain file name without path separators.`,
}

var cacheLoadCmd = &cobra.Command{
	Use:   "load [file]",
	Short: "Print a cache file",
	Args:  cobra.MaximumNArgs(1),
	Run:   runCacheLoad,
}

var cacheSaveCmd = &cobra.Command{
	Use:   "save [file]",
	Short: "Write a cache file from --content or stdin",
	Example: `  skillbrowser cache save --content '{}'
  cat backup.json | skillbrowser cache save`,
	Args: cobra.MaximumNArgs(1),
	Run:  runCacheSave,
}

var cacheContent string

func init() {
	cacheSaveCmd.Flags().StringVar(&cacheContent, "content", "", "Content to write (reads stdin when omitted)")
	cacheCmd.AddCommand(cacheLoadCmd)
	cacheCmd.AddCommand(cacheSaveCmd)
}

func cacheFileArg(args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	return cache.DefaultFileName
}

func runCacheLoad(cmd *cobra.Command, args []string) {
	store := cache.NewStore(mustPaths().CacheDir)
	name := cacheFileArg(args)

	content, err := store.LoadRaw(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			exitWithError(fmt.Sprintf("cache file '%s' does not exist", name))
		}
		exitWithError(err.Error())
	}
	fmt.Print(content)
}

func runCacheSave(cmd *cobra.Command, args []string) {
	store := cache.NewStore(mustPaths().CacheDir)
	name := cacheFileArg(args)

	content := cacheContent
	if !cmd.Flags().Changed("content") {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			exitWithError("reading stdin: " + err.Error())
		}
		content = string(data)
	}

	if err := store.SaveRaw(name, content); err != nil {
		exitWithError(err.Error())
	}
	path, _ := store.Path(name)
	fmt.Fprintln(os.Stderr, ui.SuccessLine("Saved "+path))
}
