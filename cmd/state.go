package cmd

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/kennyg/skillbrowser/internal/cache"
	"github.com/kennyg/skillbrowser/internal/catalog"
	"github.com/kennyg/skillbrowser/internal/config"
	"github.com/kennyg/skillbrowser/internal/skill"
)

// resolvePaths applies the persistent flags on top of the environment
func resolvePaths() (*config.Paths, error) {
	return config.GetPathsWith(config.Overrides{
		SkillsDir: skillsDirFlag,
		ConfigDir: configDirFlag,
	})
}

func mustPaths() *config.Paths {
	paths, err := resolvePaths()
	if err != nil {
		exitWithError(err.Error())
	}
	return paths
}

func scanSkills(paths *config.Paths) []skill.Info {
	skills, err := skill.NewScanner(paths.SkillsDir).WithLogger(log.Default()).Scan()
	if err != nil {
		exitWithError(err.Error())
	}
	return skills
}

// loadCache reads the translation cache. A corrupt cache is reported and
// replaced by an empty one so browsing still works.
func loadCache(paths *config.Paths) cache.Cache {
	c, err := cache.NewStore(paths.CacheDir).Load(cache.DefaultFileName)
	if err != nil {
		log.Warn("Ignoring unreadable cache", "dir", paths.CacheDir, "err", err)
		return cache.New()
	}
	return c
}

func saveCache(paths *config.Paths, c cache.Cache) error {
	return cache.NewStore(paths.CacheDir).Save(cache.DefaultFileName, c)
}

// loadCatalog scans skills and joins them with the cache
func loadCatalog(paths *config.Paths) ([]skill.Info, cache.Cache, []catalog.Item) {
	skills := scanSkills(paths)
	c := loadCache(paths)
	return skills, c, catalog.Arrange(catalog.Build(skills, c))
}

// requireSkill exits unless id names an installed skill
func requireSkill(items []catalog.Item, id string) catalog.Item {
	item, ok := catalog.Find(items, id)
	if !ok {
		exitWithError("skill '" + id + "' not found")
	}
	return item
}

// lookupSkill resolves an installed skill id, or loads a skill directory
// directly when arg is a path
func lookupSkill(paths *config.Paths, arg string) catalog.Item {
	if !strings.ContainsRune(arg, '/') && !strings.ContainsRune(arg, os.PathSeparator) {
		_, _, items := loadCatalog(paths)
		return requireSkill(items, arg)
	}

	info, err := skill.Load(arg)
	if err != nil {
		exitWithError(err.Error())
	}
	entry, _ := loadCache(paths).Get(info.ID)
	return catalog.Item{Info: info, Entry: entry}
}
