package storage

import (
	"context"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/riyaa1611/SmartCode-Demo/schema"
	"github.com/riyaa1611/SmartCode-Demo/tracing"
)

// CacheConfig controls how long terminal reviews and their findings stay in
// a CachedStore.
type CacheConfig struct {
	Duration      time.Duration `long:"cache-duration" default:"1m" description:"How long to cache finished reviews and their findings."`
	PurgeInterval time.Duration `long:"cache-purge-interval" default:"10m" description:"Interval on which to purge expired cache entries."`
}

// CachedStore caches reads of reviews that can no longer change. Pending
// reviews always go to the underlying store.
type CachedStore struct {
	Store

	reviews  *cache.Cache
	findings *cache.Cache
	duration time.Duration
}

func NewCachedStore(store Store, config CacheConfig) *CachedStore {
	return &CachedStore{
		Store:    store,
		reviews:  cache.New(config.Duration, config.PurgeInterval),
		findings: cache.New(config.Duration, config.PurgeInterval),
		duration: config.Duration,
	}
}

func (s *CachedStore) GetReview(ctx context.Context, id int64) (schema.Review, error) {
	key := cacheKey(id)
	if r, found := s.reviews.Get(key); found {
		_, span := tracing.StartSpan(ctx, "storage.review.lookup", tracing.Attrs{
			"review.id": key,
			"cache.hit": "true",
		})
		tracing.End(span, nil)
		return cloneReview(r.(schema.Review)), nil
	}

	ctx, span := tracing.StartSpan(ctx, "storage.review.lookup", tracing.Attrs{
		"review.id": key,
		"cache.hit": "false",
	})
	r, err := s.Store.GetReview(ctx, id)
	tracing.End(span, err)
	if err != nil {
		return schema.Review{}, err
	}

	if r.Status.Terminal() {
		s.reviews.Set(key, cloneReview(r), s.duration)
	}

	return r, nil
}

func (s *CachedStore) Findings(ctx context.Context, reviewID int64) ([]schema.Finding, error) {
	key := cacheKey(reviewID)
	if f, found := s.findings.Get(key); found {
		return cloneFindings(f.([]schema.Finding)), nil
	}

	r, err := s.GetReview(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	findings, err := s.Store.Findings(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	if r.Status == schema.ReviewCompleted {
		s.findings.Set(key, cloneFindings(findings), s.duration)
	}

	return findings, nil
}

func (s *CachedStore) CompleteReview(ctx context.Context, reviewID int64, update schema.ReviewUpdate, findings []schema.Finding) (schema.Review, error) {
	s.invalidate(reviewID)
	return s.Store.CompleteReview(ctx, reviewID, update, findings)
}

func (s *CachedStore) FailReview(ctx context.Context, reviewID int64) error {
	s.invalidate(reviewID)
	return s.Store.FailReview(ctx, reviewID)
}

func (s *CachedStore) invalidate(reviewID int64) {
	key := cacheKey(reviewID)
	s.reviews.Delete(key)
	s.findings.Delete(key)
}

func cacheKey(id int64) string {
	return strconv.FormatInt(id, 10)
}
