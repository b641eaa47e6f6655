package workoutlog

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/coocood/freecache"

	"github.com/meltforce/liftlog/internal/models"
	"github.com/meltforce/liftlog/internal/storage"
)

const logCacheKey = "workoutlog::records"

// cacheSize bounds the in-memory cache. freecache caps a single entry at
// 1/1024 of the total, so 64 MiB allows a 64 KiB serialized log, which is
// years of two-person training.
const cacheSize = 64 * 1024 * 1024

// Service is the read side of the canonical log: a read-through cache over
// ReadAll + Normalize. The cached log has no expiry; it is dropped only by
// an explicit Invalidate after a successful write.
type Service struct {
	gw       storage.Gateway
	athletes []string
	cache    *freecache.Cache
	log      *slog.Logger
}

// NewService creates the canonical log service for the given athletes.
func NewService(gw storage.Gateway, athletes []string, log *slog.Logger) *Service {
	return &Service{
		gw:       gw,
		athletes: athletes,
		cache:    freecache.NewCache(cacheSize),
		log:      log,
	}
}

// Athletes returns the configured athlete names in column order.
func (s *Service) Athletes() []string { return s.athletes }

// Records returns the canonical record sequence, serving from cache when a
// normalized copy is present.
func (s *Service) Records(ctx context.Context) ([]models.SetRecord, error) {
	if cached, err := s.cache.Get([]byte(logCacheKey)); err == nil {
		var records []models.SetRecord
		decodeErr := json.Unmarshal(cached, &records)
		if decodeErr == nil {
			return records, nil
		}
		s.log.Warn("dropping undecodable log cache entry", "error", decodeErr)
		s.cache.Del([]byte(logCacheKey))
	}

	rows, err := s.gw.ReadAll(ctx, models.LogTable)
	if err != nil {
		return nil, err
	}
	records, err := Normalize(rows, s.athletes)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(records); err == nil {
		// expire=0: no TTL, invalidation is event-driven.
		if err := s.cache.Set([]byte(logCacheKey), encoded, 0); err != nil {
			s.log.Warn("failed to cache normalized log", "error", err)
		}
	}
	return records, nil
}

// Invalidate drops the cached log so the next read re-normalizes. Called
// after every successful submission.
func (s *Service) Invalidate() {
	s.cache.Del([]byte(logCacheKey))
}
