package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/riyaa1611/SmartCode-Demo/schema"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var reviewColumns = []string{
	"id",
	"repo_name",
	"pr_number",
	"pr_url",
	"issue_numbers",
	"status",
	"created_at",
	"completed_at",
	"summary",
	"confidence_score",
	"overall_score",
	"verdict",
	"score_breakdown",
}

var findingColumns = []string{
	"id",
	"review_id",
	"fingerprint",
	"category",
	"severity",
	"title",
	"description",
	"file_path",
	"line_number",
	"confidence_score",
	"suggested_fix",
	"code_snippet",
	"refs",
}

// PostgresStore persists reviews in PostgreSQL. The reviews and findings
// tables are expected to exist.
type PostgresStore struct {
	conn *sql.DB
}

// OpenPostgresStore connects to databaseURL with the pgx driver.
func OpenPostgresStore(databaseURL string) (*PostgresStore, error) {
	conn, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return NewPostgresStore(conn), nil
}

// NewPostgresStore wraps an open connection.
func NewPostgresStore(conn *sql.DB) *PostgresStore {
	return &PostgresStore{conn: conn}
}

func (s *PostgresStore) CreateReview(ctx context.Context, review schema.NewReview) (schema.Review, error) {
	issues, err := json.Marshal(orEmpty(review.IssueNumbers))
	if err != nil {
		return schema.Review{}, err
	}

	row := psql.Insert("reviews").
		SetMap(map[string]any{
			"repo_name":     review.RepoName,
			"pr_number":     review.PRNumber,
			"pr_url":        review.PRURL,
			"issue_numbers": string(issues),
			"status":        string(schema.ReviewPending),
		}).
		Suffix("RETURNING " + strings.Join(reviewColumns, ", ")).
		RunWith(s.conn).
		QueryRowContext(ctx)

	r, err := scanReview(row)
	if err != nil {
		return schema.Review{}, fmt.Errorf("insert review: %w", err)
	}

	return r, nil
}

func (s *PostgresStore) GetReview(ctx context.Context, id int64) (schema.Review, error) {
	return getReview(ctx, s.conn, id, false)
}

// ListReviews returns the reviews of repo, newest first. An empty repo
// lists every review; a limit of 0 or less means no limit.
func (s *PostgresStore) ListReviews(ctx context.Context, repo string, limit int) ([]schema.Review, error) {
	query := psql.Select(reviewColumns...).
		From("reviews").
		OrderBy("id DESC")
	if repo != "" {
		query = query.Where(sq.Eq{"repo_name": repo})
	}
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	rows, err := query.RunWith(s.conn).QueryContext(ctx)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []schema.Review{}
	for rows.Next() {
		r, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, r)
	}

	return reviews, rows.Err()
}

func (s *PostgresStore) Findings(ctx context.Context, reviewID int64) ([]schema.Finding, error) {
	r, err := s.GetReview(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if r.Status != schema.ReviewCompleted {
		return []schema.Finding{}, nil
	}

	rows, err := psql.Select(findingColumns...).
		From("findings").
		Where(sq.Eq{"review_id": reviewID}).
		OrderBy("id").
		RunWith(s.conn).
		QueryContext(ctx)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	findings := []schema.Finding{}
	for rows.Next() {
		f, err := scanFinding(rows)
		if err != nil {
			return nil, err
		}
		findings = append(findings, f)
	}

	return findings, rows.Err()
}

// CompleteReview locks the review row, checks it is still pending and
// writes the findings and the completion in one transaction.
func (s *PostgresStore) CompleteReview(ctx context.Context, reviewID int64, update schema.ReviewUpdate, findings []schema.Finding) (schema.Review, error) {
	if err := checkCompletion(update); err != nil {
		return schema.Review{}, err
	}

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return schema.Review{}, err
	}
	defer rollback(tx)

	r, err := getReview(ctx, tx, reviewID, true)
	if err != nil {
		return schema.Review{}, err
	}

	if err := r.Apply(update); err != nil {
		return schema.Review{}, err
	}

	prepared, err := prepareFindings(reviewID, findings)
	if err != nil {
		return schema.Review{}, err
	}

	for _, f := range prepared {
		if err := insertFinding(ctx, tx, f); err != nil {
			return schema.Review{}, err
		}
	}

	breakdown, err := json.Marshal(r.ScoreBreakdown)
	if err != nil {
		return schema.Review{}, err
	}

	_, err = psql.Update("reviews").
		SetMap(map[string]any{
			"status":           string(r.Status),
			"completed_at":     *r.CompletedAt,
			"summary":          r.Summary,
			"confidence_score": *r.ConfidenceScore,
			"overall_score":    *r.OverallScore,
			"verdict":          string(r.Verdict),
			"score_breakdown":  string(breakdown),
		}).
		Where(sq.Eq{"id": reviewID}).
		RunWith(tx).
		ExecContext(ctx)
	if err != nil {
		return schema.Review{}, fmt.Errorf("update review: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return schema.Review{}, err
	}

	return r, nil
}

func (s *PostgresStore) FailReview(ctx context.Context, reviewID int64) error {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer rollback(tx)

	r, err := getReview(ctx, tx, reviewID, true)
	if err != nil {
		return err
	}

	if err := r.Status.CheckTransition(schema.ReviewError); err != nil {
		return err
	}

	_, err = psql.Update("reviews").
		Set("status", string(schema.ReviewError)).
		Where(sq.Eq{"id": reviewID}).
		RunWith(tx).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("update review: %w", err)
	}

	return tx.Commit()
}

func (s *PostgresStore) Close() error {
	return s.conn.Close()
}

func getReview(ctx context.Context, runner sq.BaseRunner, id int64, forUpdate bool) (schema.Review, error) {
	query := psql.Select(reviewColumns...).
		From("reviews").
		Where(sq.Eq{"id": id})
	if forUpdate {
		query = query.Suffix("FOR UPDATE")
	}

	r, err := scanReview(query.RunWith(runner).QueryRowContext(ctx))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return schema.Review{}, ErrReviewNotFound
		}
		return schema.Review{}, err
	}

	return r, nil
}

func insertFinding(ctx context.Context, tx *sql.Tx, f schema.Finding) error {
	refs, err := json.Marshal(orEmpty(f.References))
	if err != nil {
		return err
	}

	_, err = psql.Insert("findings").
		SetMap(map[string]any{
			"review_id":        f.ReviewID,
			"fingerprint":      f.Fingerprint,
			"category":         string(f.Category),
			"severity":         string(f.Severity),
			"title":            f.Title,
			"description":      f.Description,
			"file_path":        f.Location.FilePath,
			"line_number":      f.Location.Line,
			"confidence_score": f.ConfidenceScore,
			"suggested_fix":    f.SuggestedFix,
			"code_snippet":     f.CodeSnippet,
			"refs":             string(refs),
		}).
		RunWith(tx).
		ExecContext(ctx)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return ErrReviewNotFound
		}
		return fmt.Errorf("insert finding: %w", err)
	}

	return nil
}

func scanReview(row sq.RowScanner) (schema.Review, error) {
	var (
		r           schema.Review
		status      string
		issues      []byte
		completedAt sql.NullTime
		summary     sql.NullString
		confidence  sql.NullFloat64
		overall     sql.NullFloat64
		verdict     sql.NullString
		breakdown   []byte
	)

	err := row.Scan(
		&r.ID,
		&r.RepoName,
		&r.PRNumber,
		&r.PRURL,
		&issues,
		&status,
		&r.CreatedAt,
		&completedAt,
		&summary,
		&confidence,
		&overall,
		&verdict,
		&breakdown,
	)
	if err != nil {
		return schema.Review{}, err
	}

	r.Status = schema.ReviewStatus(status)
	r.Summary = summary.String
	r.Verdict = schema.Verdict(verdict.String)

	if len(issues) > 0 {
		if err := json.Unmarshal(issues, &r.IssueNumbers); err != nil {
			return schema.Review{}, fmt.Errorf("decode issue_numbers: %w", err)
		}
		if len(r.IssueNumbers) == 0 {
			r.IssueNumbers = nil
		}
	}
	if completedAt.Valid {
		t := completedAt.Time.UTC()
		r.CompletedAt = &t
	}
	if confidence.Valid {
		r.ConfidenceScore = &confidence.Float64
	}
	if overall.Valid {
		r.OverallScore = &overall.Float64
	}
	if len(breakdown) > 0 {
		var b schema.ScoreBreakdown
		if err := json.Unmarshal(breakdown, &b); err != nil {
			return schema.Review{}, fmt.Errorf("decode score_breakdown: %w", err)
		}
		r.ScoreBreakdown = &b
	}
	r.CreatedAt = r.CreatedAt.UTC()

	return r, nil
}

func scanFinding(row sq.RowScanner) (schema.Finding, error) {
	var (
		f        schema.Finding
		category string
		severity string
		refs     []byte
	)

	err := row.Scan(
		&f.ID,
		&f.ReviewID,
		&f.Fingerprint,
		&category,
		&severity,
		&f.Title,
		&f.Description,
		&f.Location.FilePath,
		&f.Location.Line,
		&f.ConfidenceScore,
		&f.SuggestedFix,
		&f.CodeSnippet,
		&refs,
	)
	if err != nil {
		return schema.Finding{}, err
	}

	f.Category = schema.Category(category)
	f.Severity = schema.Severity(severity)
	if len(refs) > 0 {
		if err := json.Unmarshal(refs, &f.References); err != nil {
			return schema.Finding{}, fmt.Errorf("decode refs: %w", err)
		}
		if len(f.References) == 0 {
			f.References = nil
		}
	}

	return f, nil
}

func rollback(tx *sql.Tx) {
	_ = tx.Rollback()
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
