package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"code.cloudfoundry.org/clock"
	"github.com/goccy/go-yaml"

	"github.com/riyaa1611/SmartCode-Demo/analysis"
	"github.com/riyaa1611/SmartCode-Demo/schema"
	"github.com/riyaa1611/SmartCode-Demo/scoring"
	"github.com/riyaa1611/SmartCode-Demo/telemetry"
)

// Bundle is one change to score: the raw upstream results plus enough
// identity to create its review.
type Bundle struct {
	RepoName     string `json:"repo_name"     yaml:"repo_name"`
	PRNumber     int    `json:"pr_number"     yaml:"pr_number"`
	PRURL        string `json:"pr_url"        yaml:"pr_url"`
	IssueNumbers []int  `json:"issue_numbers" yaml:"issue_numbers"`

	Requirement schema.Result `json:"requirement" yaml:"requirement"`
	Security    schema.Result `json:"security"    yaml:"security"`
	Performance schema.Result `json:"performance" yaml:"performance"`
	Quality     schema.Result `json:"quality"     yaml:"quality"`
	Static      schema.Result `json:"static"      yaml:"static"`
	Diff        schema.Result `json:"diff"        yaml:"diff"`
	DiffText    string        `json:"diff_text"   yaml:"diff_text"`
}

// LoadBundle reads a JSON bundle, or a YAML one when the extension says so.
func LoadBundle(path string) (Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Bundle{}, fmt.Errorf("reading bundle: %w", err)
	}

	var b Bundle
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		err = yaml.Unmarshal(data, &b)
	default:
		err = json.Unmarshal(data, &b)
	}
	if err != nil {
		return Bundle{}, fmt.Errorf("parsing bundle %s: %w", path, err)
	}

	return b, nil
}

// NewReview identifies the review for the bundle, letting the flags fill
// in what the bundle leaves out.
func (b Bundle) NewReview(repo string, pr int) schema.NewReview {
	review := schema.NewReview{
		RepoName:     b.RepoName,
		PRNumber:     b.PRNumber,
		PRURL:        b.PRURL,
		IssueNumbers: b.IssueNumbers,
	}
	if review.RepoName == "" {
		review.RepoName = repo
	}
	if review.PRNumber == 0 {
		review.PRNumber = pr
	}
	if review.PRURL == "" && review.RepoName != "" && review.PRNumber != 0 {
		review.PRURL = fmt.Sprintf("https://github.com/%s/pull/%d", review.RepoName, review.PRNumber)
	}
	return review
}

// Input builds the scoring input. When the bundle carries diff text but no
// static or diff record, those are derived by analyzing the diff.
func (b Bundle) Input(ctx context.Context, analyzer *analysis.Analyzer, clk clock.Clock) (scoring.Input, error) {
	in := scoring.Input{
		Requirement: b.Requirement,
		Security:    b.Security,
		Performance: b.Performance,
		Quality:     b.Quality,
		Static:      b.Static,
		Diff:        schema.DiffMetadataFrom(b.Diff),
	}

	if b.DiffText == "" || (in.Static != nil && in.Diff != nil) {
		return in, nil
	}

	start := clk.Now()
	report, err := analyzer.AnalyzeDiff(ctx, b.DiffText)
	if err != nil {
		return scoring.Input{}, err
	}
	telemetry.RecordDiffAnalysisDuration(ctx, clk.Since(start), len(report.Files))

	if in.Static == nil {
		in.Static = report.Static()
	}
	if in.Diff == nil {
		in.Diff = report.DiffMetadata()
	}

	return in, nil
}
