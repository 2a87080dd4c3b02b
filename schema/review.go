package schema

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTransition is returned when a review status change would move a
// review out of a terminal state.
var ErrInvalidTransition = errors.New("invalid review status transition")

// ReviewStatus is the lifecycle state of a review.
type ReviewStatus string

const (
	ReviewPending   ReviewStatus = "pending"
	ReviewCompleted ReviewStatus = "completed"
	ReviewError     ReviewStatus = "error"
)

// Terminal reports whether no further transitions are allowed.
func (s ReviewStatus) Terminal() bool {
	return s == ReviewCompleted || s == ReviewError
}

// CanTransition reports whether a review in status s may move to next. Only
// pending reviews move, and only to completed or error.
func (s ReviewStatus) CanTransition(next ReviewStatus) bool {
	return s == ReviewPending && next.Terminal()
}

// CheckTransition is CanTransition as an error.
func (s ReviewStatus) CheckTransition(next ReviewStatus) error {
	if !s.CanTransition(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, next)
	}
	return nil
}

// Verdict is the categorical recommendation derived from a confidence score.
type Verdict string

const (
	VerdictApprove          Verdict = "APPROVE"
	VerdictReviewNeeded     Verdict = "REVIEW_NEEDED"
	VerdictChangesRequested Verdict = "CHANGES_REQUESTED"
)

// ScoreBreakdown holds the five dimension scores behind a confidence score,
// each in [0,100].
type ScoreBreakdown struct {
	RequirementAlignment int `json:"requirement_alignment"`
	SecuritySafety       int `json:"security_safety"`
	CodeQuality          int `json:"code_quality"`
	TestCoverageSignal   int `json:"test_coverage_signal"`
	StaticAnalysisClean  int `json:"static_analysis_clean"`
}

// Confidence is the output of the confidence scorer.
type Confidence struct {
	Score          float64        `json:"confidence_score"`
	Verdict        Verdict        `json:"verdict"`
	Breakdown      ScoreBreakdown `json:"breakdown"`
	RiskFlags      []string       `json:"risk_flags"`
	Recommendation string         `json:"recommendation"`
}

// NewReview describes a change detected for review.
type NewReview struct {
	RepoName     string `json:"repo_name"`
	PRNumber     int    `json:"pr_number"`
	PRURL        string `json:"pr_url"`
	IssueNumbers []int  `json:"issue_numbers,omitempty"`
}

// Review is one analyzed change.
type Review struct {
	ID              int64           `json:"id"`
	RepoName        string          `json:"repo_name"`
	PRNumber        int             `json:"pr_number"`
	PRURL           string          `json:"pr_url"`
	IssueNumbers    []int           `json:"issue_numbers,omitempty"`
	Status          ReviewStatus    `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	CompletedAt     *time.Time      `json:"completed_at,omitempty"`
	Summary         string          `json:"summary,omitempty"`
	ConfidenceScore *float64        `json:"confidence_score,omitempty"`
	OverallScore    *float64        `json:"overall_score,omitempty"`
	Verdict         Verdict         `json:"verdict,omitempty"`
	ScoreBreakdown  *ScoreBreakdown `json:"score_breakdown,omitempty"`
}

// ReviewUpdate is the completion payload written to a pending review.
type ReviewUpdate struct {
	Status          ReviewStatus   `json:"status"`
	ConfidenceScore float64        `json:"confidence_score"`
	OverallScore    float64        `json:"overall_score"`
	Verdict         Verdict        `json:"verdict"`
	ScoreBreakdown  ScoreBreakdown `json:"score_breakdown"`
	Summary         string         `json:"summary"`
	CompletedAt     time.Time      `json:"completed_at"`
}

// Apply writes a completion update onto the review, enforcing the status
// lifecycle.
func (r *Review) Apply(u ReviewUpdate) error {
	if err := r.Status.CheckTransition(u.Status); err != nil {
		return err
	}

	r.Status = u.Status
	if u.Status != ReviewCompleted {
		return nil
	}

	completedAt := u.CompletedAt
	r.CompletedAt = &completedAt
	confidence := u.ConfidenceScore
	overall := u.OverallScore
	breakdown := u.ScoreBreakdown
	r.ConfidenceScore = &confidence
	r.OverallScore = &overall
	r.Verdict = u.Verdict
	r.ScoreBreakdown = &breakdown
	r.Summary = u.Summary
	return nil
}
