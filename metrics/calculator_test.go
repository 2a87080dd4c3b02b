package metrics_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/riyaa1611/SmartCode-Demo/config"
	"github.com/riyaa1611/SmartCode-Demo/metrics"
	"github.com/riyaa1611/SmartCode-Demo/schema"
)

func withSeverities(category schema.Category, severities ...schema.Severity) []schema.Finding {
	findings := make([]schema.Finding, 0, len(severities))
	for _, s := range severities {
		findings = append(findings, schema.Finding{Category: category, Severity: s, Description: "d"})
	}
	return findings
}

var _ = Describe("Calculator", func() {
	var calc *metrics.Calculator

	BeforeEach(func() {
		calc = metrics.NewCalculator(config.DefaultConfig().SeverityWeights)
	})

	Describe("BugRisk", func() {
		It("scores an empty finding set as 100", func() {
			risk := calc.BugRisk(nil)
			Expect(risk.Score).To(Equal(100))
			Expect(risk.Level).To(Equal("low"))
			Expect(risk.FindingCount).To(Equal(0))
		})

		It("weights critical, medium and low findings", func() {
			risk := calc.BugRisk(withSeverities(schema.CategoryCodeQuality,
				schema.SeverityCritical, schema.SeverityMedium, schema.SeverityLow))
			Expect(risk.WeightedSeveritySum).To(Equal(15.0))
			Expect(risk.Score).To(Equal(85))
			Expect(risk.Level).To(Equal("low"))
			Expect(risk.FindingCount).To(Equal(3))
		})

		It("reports medium risk between 50 and 79", func() {
			risk := calc.BugRisk(withSeverities(schema.CategorySecurity,
				schema.SeverityCritical, schema.SeverityCritical, schema.SeverityHigh))
			Expect(risk.Score).To(Equal(73))
			Expect(risk.Level).To(Equal("medium"))
		})

		It("reports high risk below 50", func() {
			risk := calc.BugRisk(withSeverities(schema.CategorySecurity,
				schema.SeverityCritical, schema.SeverityCritical, schema.SeverityCritical,
				schema.SeverityCritical, schema.SeverityCritical, schema.SeverityCritical))
			Expect(risk.Score).To(Equal(40))
			Expect(risk.Level).To(Equal("high"))
		})

		It("bottoms out at 0 once the weighted sum passes 100", func() {
			severities := make([]schema.Severity, 12)
			for i := range severities {
				severities[i] = schema.SeverityCritical
			}
			risk := calc.BugRisk(withSeverities(schema.CategorySecurity, severities...))
			Expect(risk.WeightedSeveritySum).To(Equal(120.0))
			Expect(risk.Score).To(Equal(0))
			Expect(risk.Level).To(Equal("high"))
		})

		It("ignores info findings", func() {
			risk := calc.BugRisk(withSeverities(schema.CategoryCodeQuality, schema.SeverityInfo, schema.SeverityInfo))
			Expect(risk.Score).To(Equal(100))
			Expect(risk.FindingCount).To(Equal(2))
		})

		It("stays within [0,100]", func() {
			for n := 0; n < 30; n++ {
				severities := make([]schema.Severity, n)
				for i := range severities {
					severities[i] = schema.SeverityHigh
				}
				score := calc.BugRisk(withSeverities(schema.CategoryCodeQuality, severities...)).Score
				Expect(score).To(BeNumerically(">=", 0))
				Expect(score).To(BeNumerically("<=", 100))
			}
		})
	})

	Describe("SecurityIndex", func() {
		It("is clean with no security findings", func() {
			idx := calc.SecurityIndex(withSeverities(schema.CategoryPerformance, schema.SeverityCritical), 1)
			Expect(idx.Index).To(Equal(0.0))
			Expect(idx.Rating).To(Equal("clean"))
			Expect(idx.SecurityFindings).To(Equal(0))
		})

		It("divides by the number of changed files", func() {
			idx := calc.SecurityIndex(withSeverities(schema.CategorySecurity, schema.SeverityHigh, schema.SeverityLow), 4)
			Expect(idx.Index).To(Equal(2.0))
			Expect(idx.Rating).To(Equal("moderate"))
			Expect(idx.SecurityFindings).To(Equal(2))
		})

		It("treats zero changed files as one", func() {
			idx := calc.SecurityIndex(withSeverities(schema.CategorySecurity, schema.SeverityLow), 0)
			Expect(idx.Index).To(Equal(1.0))
			Expect(idx.Rating).To(Equal("low"))
		})

		It("caps at 10", func() {
			idx := calc.SecurityIndex(withSeverities(schema.CategorySecurity, schema.SeverityCritical, schema.SeverityCritical), 1)
			Expect(idx.Index).To(Equal(10.0))
			Expect(idx.Rating).To(Equal("critical"))
		})

		It("rounds to two decimals", func() {
			idx := calc.SecurityIndex(withSeverities(schema.CategorySecurity, schema.SeverityHigh), 3)
			Expect(idx.Index).To(Equal(2.33))
		})

		It("rates 4 < index <= 7 as high", func() {
			idx := calc.SecurityIndex(withSeverities(schema.CategorySecurity, schema.SeverityHigh), 1)
			Expect(idx.Index).To(Equal(7.0))
			Expect(idx.Rating).To(Equal("high"))
		})
	})

	Describe("TechDebt", func() {
		It("blends complexity, nesting and function count", func() {
			debt := calc.TechDebt(schema.ComplexityMetrics{CyclomaticComplexity: 12, NestingDepth: 4, FunctionCount: 8})
			Expect(debt.Indicator).To(BeNumerically("~", 4.48, 1e-9))
			Expect(debt.Level).To(Equal("moderate"))
			Expect(debt.Details.CyclomaticComplexity).To(Equal(12))
		})

		It("is zero for empty metrics", func() {
			debt := calc.TechDebt(schema.ComplexityMetrics{})
			Expect(debt.Indicator).To(Equal(0.0))
			Expect(debt.Level).To(Equal("low"))
		})

		It("caps every component at 10", func() {
			debt := calc.TechDebt(schema.ComplexityMetrics{CyclomaticComplexity: 300, NestingDepth: 50, FunctionCount: 500})
			Expect(debt.Indicator).To(BeNumerically("~", 10.0, 1e-9))
			Expect(debt.Level).To(Equal("severe"))
		})

		It("stays within [0,10] for negative input", func() {
			debt := calc.TechDebt(schema.ComplexityMetrics{CyclomaticComplexity: -9, NestingDepth: -1})
			Expect(debt.Indicator).To(Equal(0.0))
		})

		It("reports high debt up to 7.5", func() {
			debt := calc.TechDebt(schema.ComplexityMetrics{CyclomaticComplexity: 30, NestingDepth: 5})
			Expect(debt.Indicator).To(BeNumerically("~", 7.0, 1e-9))
			Expect(debt.Level).To(Equal("high"))
		})
	})

	Describe("Summary", func() {
		It("combines all metrics with the confidence result", func() {
			confidence := schema.Confidence{Score: 88, Verdict: schema.VerdictApprove}
			summary := calc.Summary(nil, schema.ComplexityMetrics{CyclomaticComplexity: 3}, confidence, 2)

			Expect(summary.BugRisk.Score).To(Equal(100))
			Expect(summary.SecuritySeverity.Rating).To(Equal("clean"))
			Expect(summary.TechDebt.Indicator).To(Equal(0.4))
			Expect(summary.ReviewConfidence).To(Equal(metrics.ReviewConfidence{Score: 88, Verdict: schema.VerdictApprove}))
			Expect(summary.OverallHealth).To(Equal(metrics.HealthHealthy))
		})
	})

	Describe("OverallHealth", func() {
		It("is healthy only when every signal is good", func() {
			Expect(metrics.OverallHealth(80, 2.0, 3.0, 75)).To(Equal(metrics.HealthHealthy))
			Expect(metrics.OverallHealth(79, 2.0, 3.0, 75)).To(Equal(metrics.HealthCaution))
			Expect(metrics.OverallHealth(80, 2.1, 3.0, 75)).To(Equal(metrics.HealthCaution))
			Expect(metrics.OverallHealth(80, 2.0, 3.1, 75)).To(Equal(metrics.HealthCaution))
			Expect(metrics.OverallHealth(80, 2.0, 3.0, 74.9)).To(Equal(metrics.HealthCaution))
		})

		It("is unhealthy when any signal is bad", func() {
			Expect(metrics.OverallHealth(49, 0, 0, 100)).To(Equal(metrics.HealthUnhealthy))
			Expect(metrics.OverallHealth(100, 6.1, 0, 100)).To(Equal(metrics.HealthUnhealthy))
			Expect(metrics.OverallHealth(100, 0, 7.1, 100)).To(Equal(metrics.HealthUnhealthy))
			Expect(metrics.OverallHealth(100, 0, 0, 49.9)).To(Equal(metrics.HealthUnhealthy))
		})

		It("is caution at the band edges", func() {
			Expect(metrics.OverallHealth(50, 6.0, 7.0, 50)).To(Equal(metrics.HealthCaution))
		})
	})
})
