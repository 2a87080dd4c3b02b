package scoring

import (
	"fmt"
	"strings"

	"github.com/riyaa1611/SmartCode-Demo/schema"
)

const complexityFlagThreshold = 10

func (s *Scorer) riskFlags(in Input, complexity schema.ComplexityMetrics, testCoverage int) []string {
	flags := []string{}

	if missing := in.Requirement.List("missing_features"); len(missing) > 0 {
		flags = append(flags, fmt.Sprintf("%d requirement(s) not fully implemented", len(missing)))
	}

	severe := 0
	for _, v := range bucketOrFindings(in.Security, "vulnerabilities") {
		rec, ok := schema.AsRecord(v)
		if !ok {
			continue
		}
		if schema.ParseSeverity(rec.String("severity", ""), schema.SeverityInfo).AtLeast(schema.SeverityHigh) {
			severe++
		}
	}
	if severe > 0 {
		flags = append(flags, fmt.Sprintf("%d high/critical security finding(s)", severe))
	}

	if perf := bucketOrFindings(in.Performance, "performance_issues"); len(perf) > 0 {
		flags = append(flags, fmt.Sprintf("%d performance concern(s)", len(perf)))
	}

	if complexity.CyclomaticComplexity > complexityFlagThreshold {
		flags = append(flags, fmt.Sprintf("Cyclomatic complexity %d exceeds threshold (%d)", complexity.CyclomaticComplexity, complexityFlagThreshold))
	}

	if testCoverage <= noTestCoverage {
		flags = append(flags, "No test files added or modified")
	}

	return flags
}

// bucketOrFindings prefers the legacy bucket when the record carries one,
// even an empty one, and otherwise reads the structured findings.
func bucketOrFindings(r schema.Result, legacy string) []any {
	if r.HasList(legacy) {
		return r.List(legacy)
	}
	return r.List("findings")
}

func recommendation(verdict schema.Verdict, flags []string) string {
	concerns := strings.Join(flags, "; ")

	switch verdict {
	case schema.VerdictApprove:
		if len(flags) == 0 {
			return "All dimensions look good. Safe to merge."
		}
		return fmt.Sprintf("Safe to merge with minor notes: %s.", concerns)
	case schema.VerdictReviewNeeded:
		if len(flags) == 0 {
			concerns = "marginal scores across dimensions"
		}
		return fmt.Sprintf("Human review recommended. Key concerns: %s.", concerns)
	default:
		if len(flags) == 0 {
			concerns = "low scores across dimensions"
		}
		return fmt.Sprintf("Significant issues found, do not merge until resolved: %s.", concerns)
	}
}
