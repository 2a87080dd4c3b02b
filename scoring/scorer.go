package scoring

import (
	"math"
	"regexp"

	"github.com/riyaa1611/SmartCode-Demo/config"
	"github.com/riyaa1611/SmartCode-Demo/schema"
)

const (
	defaultRequirementScore = 50
	defaultSecurityScore    = 50
	defaultQualityScore     = 70
	defaultPerformanceScore = 75

	unknownTestCoverage = 50
	noTestCoverage      = 30
)

// Input holds the raw upstream records for one change. Any of them may be
// nil or incomplete; missing values fall back to neutral defaults.
type Input struct {
	Requirement schema.Result
	Security    schema.Result
	Performance schema.Result
	Static      schema.Result
	Quality     schema.Result
	Diff        *schema.DiffMetadata
}

// Scorer computes the composite confidence score for a change. It holds
// only immutable configuration and is safe for concurrent use.
type Scorer struct {
	weights    config.DimensionWeights
	thresholds config.VerdictThresholds
	testPath   *regexp.Regexp
}

// NewScorer builds a Scorer from cfg.
func NewScorer(cfg *config.ScoringConfig) (*Scorer, error) {
	testPath, err := cfg.TestPathPattern()
	if err != nil {
		return nil, err
	}

	return &Scorer{
		weights:    cfg.DimensionWeights,
		thresholds: cfg.VerdictThresholds,
		testPath:   testPath,
	}, nil
}

// Score computes the breakdown, composite, verdict, risk flags and
// recommendation. It never fails: the worst case is a composite built
// entirely from defaults.
func (s *Scorer) Score(in Input) schema.Confidence {
	complexity := schema.ComplexityFrom(in.Static)

	breakdown := schema.ScoreBreakdown{
		RequirementAlignment: clampScore(in.Requirement.Int("completeness_score", defaultRequirementScore)),
		SecuritySafety:       clampScore(in.Security.Int("security_score", defaultSecurityScore)),
		CodeQuality:          codeQuality(complexity, in.Performance, in.Quality),
		TestCoverageSignal:   s.testCoverage(in.Diff),
		StaticAnalysisClean:  staticAnalysis(complexity, in.Static),
	}

	composite := s.Composite(breakdown)
	verdict := s.Verdict(composite)
	flags := s.riskFlags(in, complexity, breakdown.TestCoverageSignal)

	return schema.Confidence{
		Score:          composite,
		Verdict:        verdict,
		Breakdown:      breakdown,
		RiskFlags:      flags,
		Recommendation: recommendation(verdict, flags),
	}
}

// Composite is the weighted sum of the breakdown, rounded to one decimal.
func (s *Scorer) Composite(b schema.ScoreBreakdown) float64 {
	w := s.weights
	sum := float64(b.RequirementAlignment)*w.RequirementAlignment +
		float64(b.SecuritySafety)*w.SecuritySafety +
		float64(b.CodeQuality)*w.CodeQuality +
		float64(b.TestCoverageSignal)*w.TestCoverageSignal +
		float64(b.StaticAnalysisClean)*w.StaticAnalysisClean

	return math.Round(sum*10) / 10
}

// Verdict maps a composite score onto its band. Thresholds are checked from
// the highest down and the first match wins.
func (s *Scorer) Verdict(score float64) schema.Verdict {
	switch {
	case score >= s.thresholds.Approve:
		return schema.VerdictApprove
	case score >= s.thresholds.ReviewNeeded:
		return schema.VerdictReviewNeeded
	default:
		return schema.VerdictChangesRequested
	}
}

func codeQuality(complexity schema.ComplexityMetrics, performance, quality schema.Result) int {
	base := quality.Int("quality_score", defaultQualityScore)

	switch cc := complexity.CyclomaticComplexity; {
	case cc > 20:
		base -= 25
	case cc > 10:
		base -= 15
	case cc > 5:
		base -= 5
	}

	perf := performance.Int("performance_score", defaultPerformanceScore)
	blended := math.Round(float64(base)*0.6 + float64(perf)*0.4)

	return clampScore(int(blended))
}

func (s *Scorer) testCoverage(diff *schema.DiffMetadata) int {
	if diff == nil || len(diff.FilesChanged) == 0 {
		return unknownTestCoverage
	}

	tests := 0
	for _, f := range diff.FilesChanged {
		if s.testPath.MatchString(f) {
			tests++
		}
	}

	if tests == 0 {
		return noTestCoverage
	}

	ratio := float64(tests) / float64(len(diff.FilesChanged))
	switch {
	case ratio >= 0.3:
		return 90
	case ratio >= 0.15:
		return 70
	default:
		return 55
	}
}

// staticAnalysis scores an explicit issues list by its length alone, and
// otherwise penalizes complexity and nesting.
func staticAnalysis(complexity schema.ComplexityMetrics, static schema.Result) int {
	if static.HasList("issues") {
		switch n := len(static.List("issues")); {
		case n > 10:
			return 30
		case n > 5:
			return 55
		case n > 0:
			return 75
		default:
			return 95
		}
	}

	score := 100
	switch cc := complexity.CyclomaticComplexity; {
	case cc > 15:
		score -= 30
	case cc > 8:
		score -= 15
	}
	switch nd := complexity.NestingDepth; {
	case nd > 4:
		score -= 20
	case nd > 3:
		score -= 10
	}

	return clampScore(score)
}

func clampScore(n int) int {
	return max(0, min(100, n))
}
