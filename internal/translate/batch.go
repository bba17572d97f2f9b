package translate

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/kennyg/skillbrowser/internal/cache"
	"github.com/kennyg/skillbrowser/internal/skill"
)

// BatchOptions controls Batch
type BatchOptions struct {
	// Now stamps cache entries; defaults to time.Now
	Now func() time.Time
	// Logger receives per-skill failures; defaults to log.Default()
	Logger *log.Logger
	// OnResult runs after each attempt, e.g. to persist the cache
	OnResult func(info skill.Info, res Result, err error)
	// Force retranslates skills that already have a translation.
	// An existing translation is only replaced on success.
	Force bool
}

// Pending returns the skills in c that have no translation yet
func Pending(skills []skill.Info, c cache.Cache) []skill.Info {
	var out []skill.Info
	for _, s := range skills {
		if !c.IsTranslated(s.ID) {
			out = append(out, s)
		}
	}
	return out
}

// Batch translates the untranslated skills (every skill with Force) one at a
// time and records each result in c. Failures are logged and skipped. It
// returns the number of skills translated, and ctx.Err() if the context ends
// early.
func Batch(ctx context.Context, tr Translator, skills []skill.Info, c cache.Cache, opts BatchOptions) (int, error) {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	todo := skills
	if !opts.Force {
		todo = Pending(skills, c)
	}

	done := 0
	for _, info := range todo {
		if err := ctx.Err(); err != nil {
			return done, err
		}

		res, err := tr.Translate(ctx, info)
		if err != nil {
			logger.Warn("translation failed", "skill", info.ID, "error", err)
		} else {
			c.SetTranslation(info.ID, res.NameZh, res.DescriptionZh, now())
			done++
		}
		if opts.OnResult != nil {
			opts.OnResult(info, res, err)
		}
	}
	return done, nil
}
