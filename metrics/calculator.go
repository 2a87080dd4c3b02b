package metrics

import (
	"math"

	"github.com/riyaa1611/SmartCode-Demo/config"
	"github.com/riyaa1611/SmartCode-Demo/schema"
)

const (
	bugRiskNormalizer = 100.0
	maxIndex          = 10.0
)

// Health is the one-word verdict of a metrics summary.
type Health string

const (
	HealthHealthy   Health = "healthy"
	HealthCaution   Health = "caution"
	HealthUnhealthy Health = "unhealthy"
)

// BugRisk scores the overall defect risk of a finding set. 100 means no
// risk was found.
type BugRisk struct {
	Score               int     `json:"bug_risk_score"`
	Level               string  `json:"risk_level"`
	FindingCount        int     `json:"finding_count"`
	WeightedSeveritySum float64 `json:"weighted_severity_sum"`
}

// SecurityIndex is the severity density of security findings per changed
// file, on a 0 to 10 scale.
type SecurityIndex struct {
	Index            float64 `json:"security_index"`
	Rating           string  `json:"rating"`
	SecurityFindings int     `json:"security_findings"`
}

// TechDebt blends complexity signals into a 0 to 10 indicator.
type TechDebt struct {
	Indicator float64                  `json:"tech_debt_indicator"`
	Level     string                   `json:"level"`
	Details   schema.ComplexityMetrics `json:"details"`
}

// ReviewConfidence echoes the confidence scorer output in a summary.
type ReviewConfidence struct {
	Score   float64        `json:"score"`
	Verdict schema.Verdict `json:"verdict"`
}

// Summary is the full metrics report for one review.
type Summary struct {
	BugRisk          BugRisk          `json:"bug_risk"`
	SecuritySeverity SecurityIndex    `json:"security_severity"`
	TechDebt         TechDebt         `json:"tech_debt"`
	ReviewConfidence ReviewConfidence `json:"review_confidence"`
	OverallHealth    Health           `json:"overall_health"`
}

// Calculator computes risk metrics from findings and complexity data. Each
// metric is independent and none feed back into the confidence score.
type Calculator struct {
	weights config.SeverityWeights
}

// NewCalculator returns a Calculator using the given severity weights.
func NewCalculator(weights config.SeverityWeights) *Calculator {
	return &Calculator{weights: weights}
}

// BugRisk computes 100 - weighted/max(weighted, 100) * 100, floored at 0.
func (c *Calculator) BugRisk(findings []schema.Finding) BugRisk {
	if len(findings) == 0 {
		return BugRisk{Score: 100, Level: "low"}
	}

	sum := 0.0
	for _, f := range findings {
		sum += c.weight(f.Severity)
	}

	normalizer := math.Max(sum, bugRiskNormalizer)
	score := int(math.Max(0, math.Round(100-(sum/normalizer)*100)))

	return BugRisk{
		Score:               score,
		Level:               bugRiskLevel(score),
		FindingCount:        len(findings),
		WeightedSeveritySum: sum,
	}
}

// SecurityIndex weights the security findings and divides by the number of
// changed files, capped at 10.
func (c *Calculator) SecurityIndex(findings []schema.Finding, filesChanged int) SecurityIndex {
	count := 0
	sum := 0.0
	for _, f := range findings {
		if f.Category != schema.CategorySecurity {
			continue
		}
		count++
		sum += c.weight(f.Severity)
	}

	if count == 0 {
		return SecurityIndex{Index: 0, Rating: "clean"}
	}

	index := round2(math.Min(maxIndex, sum/float64(max(filesChanged, 1))))

	return SecurityIndex{
		Index:            index,
		Rating:           securityRating(index),
		SecurityFindings: count,
	}
}

// TechDebt normalizes cyclomatic complexity (/3), nesting depth (*2) and
// function count (/5) to 0..10 and blends them 0.4/0.3/0.3.
func (c *Calculator) TechDebt(m schema.ComplexityMetrics) TechDebt {
	cc := clampIndex(float64(m.CyclomaticComplexity) / 3.0)
	nd := clampIndex(float64(m.NestingDepth) * 2.0)
	fc := clampIndex(float64(m.FunctionCount) / 5.0)

	indicator := round2(cc*0.4 + nd*0.3 + fc*0.3)

	return TechDebt{
		Indicator: indicator,
		Level:     techDebtLevel(indicator),
		Details:   m,
	}
}

// Summary computes every metric and the overall health label.
func (c *Calculator) Summary(findings []schema.Finding, m schema.ComplexityMetrics, confidence schema.Confidence, filesChanged int) Summary {
	bugRisk := c.BugRisk(findings)
	security := c.SecurityIndex(findings, filesChanged)
	techDebt := c.TechDebt(m)

	return Summary{
		BugRisk:          bugRisk,
		SecuritySeverity: security,
		TechDebt:         techDebt,
		ReviewConfidence: ReviewConfidence{
			Score:   confidence.Score,
			Verdict: confidence.Verdict,
		},
		OverallHealth: OverallHealth(bugRisk.Score, security.Index, techDebt.Indicator, confidence.Score),
	}
}

// OverallHealth labels a review. Healthy needs every signal to be good;
// unhealthy needs only one to be bad. The healthy check runs first.
func OverallHealth(bugRisk int, securityIndex, techDebt, confidence float64) Health {
	if bugRisk >= 80 && securityIndex <= 2.0 && techDebt <= 3.0 && confidence >= 75 {
		return HealthHealthy
	}
	if bugRisk < 50 || securityIndex > 6.0 || techDebt > 7.0 || confidence < 50 {
		return HealthUnhealthy
	}
	return HealthCaution
}

// weight treats unknown severities as low.
func (c *Calculator) weight(s schema.Severity) float64 {
	switch s {
	case schema.SeverityCritical:
		return c.weights.Critical
	case schema.SeverityHigh:
		return c.weights.High
	case schema.SeverityMedium:
		return c.weights.Medium
	case schema.SeverityInfo:
		return c.weights.Info
	default:
		return c.weights.Low
	}
}

func bugRiskLevel(score int) string {
	switch {
	case score >= 80:
		return "low"
	case score >= 50:
		return "medium"
	default:
		return "high"
	}
}

func securityRating(index float64) string {
	switch {
	case index <= 1.0:
		return "low"
	case index <= 4.0:
		return "moderate"
	case index <= 7.0:
		return "high"
	default:
		return "critical"
	}
}

func techDebtLevel(indicator float64) string {
	switch {
	case indicator <= 2.0:
		return "low"
	case indicator <= 5.0:
		return "moderate"
	case indicator <= 7.5:
		return "high"
	default:
		return "severe"
	}
}

func clampIndex(f float64) float64 {
	return math.Max(0, math.Min(maxIndex, f))
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
