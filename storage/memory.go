package storage

import (
	"context"
	"sort"
	"sync"

	"code.cloudfoundry.org/clock"

	"github.com/riyaa1611/SmartCode-Demo/schema"
)

// MemoryStore keeps reviews in process memory. It is used when no database
// is configured and in tests.
type MemoryStore struct {
	clock clock.Clock

	mu            sync.Mutex
	reviews       map[int64]schema.Review
	findings      map[int64][]schema.Finding
	nextReviewID  int64
	nextFindingID int64
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore(clk clock.Clock) *MemoryStore {
	return &MemoryStore{
		clock:    clk,
		reviews:  map[int64]schema.Review{},
		findings: map[int64][]schema.Finding{},
	}
}

func (s *MemoryStore) CreateReview(ctx context.Context, review schema.NewReview) (schema.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextReviewID++
	r := schema.Review{
		ID:           s.nextReviewID,
		RepoName:     review.RepoName,
		PRNumber:     review.PRNumber,
		PRURL:        review.PRURL,
		IssueNumbers: review.IssueNumbers,
		Status:       schema.ReviewPending,
		CreatedAt:    s.clock.Now().UTC(),
	}
	s.reviews[r.ID] = cloneReview(r)

	return r, nil
}

func (s *MemoryStore) GetReview(ctx context.Context, id int64) (schema.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, found := s.reviews[id]
	if !found {
		return schema.Review{}, ErrReviewNotFound
	}
	return cloneReview(r), nil
}

// ListReviews returns the reviews of repo, newest first. An empty repo
// lists every review; a limit of 0 or less means no limit.
func (s *MemoryStore) ListReviews(ctx context.Context, repo string, limit int) ([]schema.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reviews := []schema.Review{}
	for _, r := range s.reviews {
		if repo == "" || r.RepoName == repo {
			reviews = append(reviews, cloneReview(r))
		}
	}

	sort.Slice(reviews, func(i, j int) bool {
		return reviews[i].ID > reviews[j].ID
	})

	if limit > 0 && len(reviews) > limit {
		reviews = reviews[:limit]
	}

	return reviews, nil
}

func (s *MemoryStore) Findings(ctx context.Context, reviewID int64) ([]schema.Finding, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, found := s.reviews[reviewID]
	if !found {
		return nil, ErrReviewNotFound
	}
	if r.Status != schema.ReviewCompleted {
		return []schema.Finding{}, nil
	}

	return cloneFindings(s.findings[reviewID]), nil
}

func (s *MemoryStore) CompleteReview(ctx context.Context, reviewID int64, update schema.ReviewUpdate, findings []schema.Finding) (schema.Review, error) {
	if err := checkCompletion(update); err != nil {
		return schema.Review{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored, found := s.reviews[reviewID]
	if !found {
		return schema.Review{}, ErrReviewNotFound
	}

	r := cloneReview(stored)
	if err := r.Apply(update); err != nil {
		return schema.Review{}, err
	}

	prepared, err := prepareFindings(reviewID, findings)
	if err != nil {
		return schema.Review{}, err
	}
	for i := range prepared {
		s.nextFindingID++
		prepared[i].ID = s.nextFindingID
	}

	s.findings[reviewID] = prepared
	s.reviews[reviewID] = r

	return cloneReview(r), nil
}

func (s *MemoryStore) FailReview(ctx context.Context, reviewID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, found := s.reviews[reviewID]
	if !found {
		return ErrReviewNotFound
	}

	r := cloneReview(stored)
	if err := r.Apply(schema.ReviewUpdate{Status: schema.ReviewError}); err != nil {
		return err
	}
	s.reviews[reviewID] = r

	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
