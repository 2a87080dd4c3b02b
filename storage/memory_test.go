package storage_test

import (
	"context"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/riyaa1611/SmartCode-Demo/schema"
	"github.com/riyaa1611/SmartCode-Demo/storage"
)

var _ = Describe("MemoryStore", func() {
	var (
		ctx   context.Context
		clock *fakeclock.FakeClock
		store *storage.MemoryStore
		now   time.Time
	)

	BeforeEach(func() {
		ctx = context.Background()
		now = time.Date(2026, 2, 20, 14, 32, 18, 0, time.UTC)
		clock = fakeclock.NewFakeClock(now)
		store = storage.NewMemoryStore(clock)
	})

	createReview := func(repo string, pr int) schema.Review {
		r, err := store.CreateReview(ctx, schema.NewReview{
			RepoName: repo,
			PRNumber: pr,
			PRURL:    "https://github.com/" + repo + "/pull/1",
		})
		Expect(err).NotTo(HaveOccurred())
		return r
	}

	completion := func() schema.ReviewUpdate {
		return schema.ReviewUpdate{
			Status:          schema.ReviewCompleted,
			ConfidenceScore: 77.5,
			OverallScore:    72,
			Verdict:         schema.VerdictReviewNeeded,
			Summary:         "SmartCode AI Review: 1 finding(s).",
			CompletedAt:     now.Add(time.Minute),
		}
	}

	finding := func(desc string) schema.Finding {
		return schema.Finding{
			Category:        schema.CategorySecurity,
			Severity:        schema.SeverityHigh,
			Title:           "Security: sqli",
			Description:     desc,
			ConfidenceScore: 0.9,
		}
	}

	Describe("CreateReview", func() {
		It("creates a pending review stamped by the clock", func() {
			r := createReview("acme/api", 12)
			Expect(r.ID).To(Equal(int64(1)))
			Expect(r.Status).To(Equal(schema.ReviewPending))
			Expect(r.CreatedAt).To(Equal(now))
			Expect(r.ConfidenceScore).To(BeNil())
		})

		It("assigns increasing ids", func() {
			Expect(createReview("acme/api", 1).ID).To(Equal(int64(1)))
			Expect(createReview("acme/api", 2).ID).To(Equal(int64(2)))
		})
	})

	Describe("GetReview", func() {
		It("returns ErrReviewNotFound for unknown ids", func() {
			_, err := store.GetReview(ctx, 99)
			Expect(err).To(MatchError(storage.ErrReviewNotFound))
		})

		It("returns copies", func() {
			created := createReview("acme/api", 1)
			r, err := store.CreateReview(ctx, schema.NewReview{RepoName: "acme/api", IssueNumbers: []int{4}})
			Expect(err).NotTo(HaveOccurred())

			got, err := store.GetReview(ctx, r.ID)
			Expect(err).NotTo(HaveOccurred())
			got.IssueNumbers[0] = 99

			again, err := store.GetReview(ctx, r.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(again.IssueNumbers).To(Equal([]int{4}))
			Expect(created.ID).NotTo(Equal(r.ID))
		})
	})

	Describe("ListReviews", func() {
		BeforeEach(func() {
			createReview("acme/api", 1)
			createReview("acme/web", 2)
			createReview("acme/api", 3)
		})

		It("lists a repository's reviews newest first", func() {
			reviews, err := store.ListReviews(ctx, "acme/api", 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(reviews).To(HaveLen(2))
			Expect(reviews[0].PRNumber).To(Equal(3))
			Expect(reviews[1].PRNumber).To(Equal(1))
		})

		It("lists everything for an empty repository", func() {
			reviews, err := store.ListReviews(ctx, "", 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(reviews).To(HaveLen(3))
		})

		It("applies the limit", func() {
			reviews, err := store.ListReviews(ctx, "", 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(reviews).To(HaveLen(1))
			Expect(reviews[0].PRNumber).To(Equal(3))
		})

		It("returns an empty list for an unknown repository", func() {
			reviews, err := store.ListReviews(ctx, "nobody/nothing", 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(reviews).To(BeEmpty())
		})
	})

	Describe("CompleteReview", func() {
		var review schema.Review

		BeforeEach(func() {
			review = createReview("acme/api", 12)
		})

		It("writes the completion and the findings together", func() {
			completed, err := store.CompleteReview(ctx, review.ID, completion(), []schema.Finding{finding("a"), finding("b")})
			Expect(err).NotTo(HaveOccurred())
			Expect(completed.Status).To(Equal(schema.ReviewCompleted))
			Expect(*completed.ConfidenceScore).To(Equal(77.5))
			Expect(*completed.CompletedAt).To(Equal(now.Add(time.Minute)))

			findings, err := store.Findings(ctx, review.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(findings).To(HaveLen(2))
			Expect(findings[0].ID).To(Equal(int64(1)))
			Expect(findings[1].ID).To(Equal(int64(2)))
			Expect(findings[0].ReviewID).To(Equal(review.ID))
		})

		It("refuses to complete a review twice", func() {
			_, err := store.CompleteReview(ctx, review.ID, completion(), nil)
			Expect(err).NotTo(HaveOccurred())

			_, err = store.CompleteReview(ctx, review.ID, completion(), []schema.Finding{finding("late")})
			Expect(err).To(MatchError(schema.ErrInvalidTransition))

			findings, err := store.Findings(ctx, review.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(findings).To(BeEmpty())
		})

		It("requires the completed status", func() {
			update := completion()
			update.Status = schema.ReviewError
			_, err := store.CompleteReview(ctx, review.ID, update, nil)
			Expect(err).To(MatchError(schema.ErrInvalidTransition))
		})

		It("writes nothing when a finding is invalid", func() {
			bad := finding("")
			_, err := store.CompleteReview(ctx, review.ID, completion(), []schema.Finding{finding("ok"), bad})
			Expect(err).To(MatchError(ContainSubstring("description")))

			r, err := store.GetReview(ctx, review.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(r.Status).To(Equal(schema.ReviewPending))
		})

		It("refuses findings bound to another review", func() {
			f := finding("a")
			f.ReviewID = review.ID + 1
			_, err := store.CompleteReview(ctx, review.ID, completion(), []schema.Finding{f})
			Expect(err).To(HaveOccurred())
		})

		It("returns ErrReviewNotFound for unknown reviews", func() {
			_, err := store.CompleteReview(ctx, 99, completion(), nil)
			Expect(err).To(MatchError(storage.ErrReviewNotFound))
		})
	})

	Describe("Findings", func() {
		It("is empty while the review is pending", func() {
			review := createReview("acme/api", 12)
			findings, err := store.Findings(ctx, review.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(findings).To(BeEmpty())
		})

		It("returns ErrReviewNotFound for unknown reviews", func() {
			_, err := store.Findings(ctx, 99)
			Expect(err).To(MatchError(storage.ErrReviewNotFound))
		})
	})

	Describe("FailReview", func() {
		It("moves a pending review to error", func() {
			review := createReview("acme/api", 12)
			Expect(store.FailReview(ctx, review.ID)).To(Succeed())

			r, err := store.GetReview(ctx, review.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(r.Status).To(Equal(schema.ReviewError))
			Expect(r.ConfidenceScore).To(BeNil())
		})

		It("never overwrites a completed review", func() {
			review := createReview("acme/api", 12)
			_, err := store.CompleteReview(ctx, review.ID, completion(), nil)
			Expect(err).NotTo(HaveOccurred())

			Expect(store.FailReview(ctx, review.ID)).To(MatchError(schema.ErrInvalidTransition))
		})

		It("returns ErrReviewNotFound for unknown reviews", func() {
			Expect(store.FailReview(ctx, 99)).To(MatchError(storage.ErrReviewNotFound))
		})
	})
})
