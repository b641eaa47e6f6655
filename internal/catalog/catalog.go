// Package catalog loads and extends the exercise catalog: which exercises
// belong to which focus group. The backing table is append-only; duplicates
// in it are tolerated and collapsed on load, never cleaned up in place.
package catalog

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/coocood/freecache"

	"github.com/meltforce/liftlog/internal/models"
	"github.com/meltforce/liftlog/internal/storage"
)

const (
	catalogCacheKey = "catalog::exercises"

	// cacheTTL keeps catalog reads cheap while letting an exercise added
	// from the other phone show up within seconds.
	cacheTTL = 10 * time.Second

	cacheSize = 1024 * 1024
)

// Catalog maps each focus group to its exercises in first-seen order. The
// order matters: the presentation layer offers the first entry as the
// default selection.
type Catalog map[models.FocusGroup][]string

// Exercises returns one group's list, empty when the group has none.
func (c Catalog) Exercises(focus models.FocusGroup) []string {
	return c[focus]
}

// Service is a read-through cached loader over the Exercises table.
type Service struct {
	gw    storage.Gateway
	cache *freecache.Cache
	log   *slog.Logger
}

// NewService creates a catalog service.
func NewService(gw storage.Gateway, log *slog.Logger) *Service {
	return &Service{gw: gw, cache: freecache.NewCache(cacheSize), log: log}
}

// Load returns the catalog, refetching transparently once the cached copy
// expires. Grouping preserves first-seen order; repeated (focus, exercise)
// pairs keep only their first occurrence.
func (s *Service) Load(ctx context.Context) (Catalog, error) {
	if cached, err := s.cache.Get([]byte(catalogCacheKey)); err == nil {
		var c Catalog
		if err := json.Unmarshal(cached, &c); err == nil {
			return c, nil
		}
		s.cache.Del([]byte(catalogCacheKey))
	}

	rows, err := s.gw.ReadAll(ctx, models.CatalogTable)
	if err != nil {
		return nil, err
	}

	c := make(Catalog)
	seen := make(map[models.FocusGroup]map[string]bool)
	for _, row := range rows {
		focusRaw, exercise := "", ""
		for k, v := range row {
			switch strings.TrimSpace(k) {
			case models.ColFocus:
				focusRaw = strings.TrimSpace(v)
			case models.ColExercise:
				exercise = strings.TrimSpace(v)
			}
		}
		if exercise == "" {
			continue
		}
		focus, err := models.ParseFocusGroup(focusRaw)
		if err != nil {
			focus = models.FocusGroup(focusRaw)
		}
		if seen[focus] == nil {
			seen[focus] = make(map[string]bool)
		}
		if seen[focus][exercise] {
			continue
		}
		seen[focus][exercise] = true
		c[focus] = append(c[focus], exercise)
	}

	if encoded, err := json.Marshal(c); err == nil {
		if err := s.cache.Set([]byte(catalogCacheKey), encoded, int(cacheTTL.Seconds())); err != nil {
			s.log.Warn("failed to cache catalog", "error", err)
		}
	}
	return c, nil
}

// AddExercise appends a (focus, exercise) pair to the backing table and
// invalidates the cached catalog so the next load reflects it immediately
// instead of waiting out the TTL. No deduplication: the table keeps what
// it is given.
func (s *Service) AddExercise(ctx context.Context, focus models.FocusGroup, exercise string) error {
	exercise = strings.TrimSpace(exercise)
	if err := s.gw.AppendRow(ctx, models.CatalogTable, []string{string(focus), exercise}); err != nil {
		return err
	}
	s.cache.Del([]byte(catalogCacheKey))
	return nil
}
