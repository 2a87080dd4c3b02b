package normalize

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cast"

	"github.com/riyaa1611/SmartCode-Demo/schema"
)

// Bucket names recognized in a raw results bundle, in processing order.
const (
	BucketFindings          = "findings"
	BucketMissingFeatures   = "missing_features"
	BucketScopeCreep        = "scope_creep"
	BucketVulnerabilities   = "vulnerabilities"
	BucketPerformanceIssues = "performance_issues"
)

// Buckets lists every recognized bucket in the order they are normalized.
var Buckets = []string{
	BucketFindings,
	BucketMissingFeatures,
	BucketScopeCreep,
	BucketVulnerabilities,
	BucketPerformanceIssues,
}

const scopeCreepTitleLimit = 60

// entry is one raw finding object decoded into the variant for its bucket.
type entry interface {
	finding() schema.Finding
}

// structuredEntry is the current LLM output format.
type structuredEntry struct {
	Category        any `mapstructure:"category"`
	Severity        any `mapstructure:"severity"`
	Title           any `mapstructure:"title"`
	Description     any `mapstructure:"description"`
	FilePath        any `mapstructure:"file_path"`
	LineNumber      any `mapstructure:"line_number"`
	ConfidenceScore any `mapstructure:"confidence_score"`
	SuggestedFix    any `mapstructure:"suggested_fix"`
	Suggestion      any `mapstructure:"suggestion"`
	CodeSnippet     any `mapstructure:"code_snippet"`
	References      any `mapstructure:"references"`
}

func (e structuredEntry) finding() schema.Finding {
	category := schema.ParseCategory(text(e.Category, ""), schema.CategoryCodeQuality)
	title := text(e.Title, "")

	loc := parseLocation(text(e.FilePath, ""))
	if line, ok := positiveInt(e.LineNumber); ok {
		loc.Line = line
	}

	confidence, ok := number(e.ConfidenceScore)
	if !ok {
		confidence = defaultConfidence[category]
	}

	fix := text(e.SuggestedFix, "")
	if fix == "" {
		fix = text(e.Suggestion, "")
	}

	return schema.Finding{
		Category:        category,
		Severity:        schema.ParseSeverity(text(e.Severity, ""), schema.SeverityMedium),
		Title:           title,
		Description:     describe(text(e.Description, ""), title, category),
		Location:        loc,
		ConfidenceScore: clampUnit(confidence),
		SuggestedFix:    fix,
		CodeSnippet:     text(e.CodeSnippet, ""),
		References:      strs(e.References),
	}
}

// missingFeatureEntry is a legacy requirement the change did not implement.
type missingFeatureEntry struct {
	Requirement any `mapstructure:"requirement"`
}

func (e missingFeatureEntry) finding() schema.Finding {
	req := text(e.Requirement, "Unknown")
	return schema.Finding{
		Category:        schema.CategoryRequirementDrift,
		Severity:        schema.SeverityHigh,
		Title:           "Missing: " + req,
		Description:     "Missing feature: " + req,
		ConfidenceScore: 0.8,
	}
}

// scopeCreepEntry is a legacy change that goes beyond the linked
// requirements.
type scopeCreepEntry struct {
	Description  any `mapstructure:"description"`
	CodeLocation any `mapstructure:"code_location"`
	FilePath     any `mapstructure:"file_path"`
}

func (e scopeCreepEntry) finding() schema.Finding {
	desc := text(e.Description, "Unspecified")
	where := text(e.CodeLocation, "")
	if where == "" {
		where = text(e.FilePath, "")
	}

	return schema.Finding{
		Category:        schema.CategoryRequirementDrift,
		Severity:        schema.SeverityMedium,
		Title:           "Scope creep: " + truncate(desc, scopeCreepTitleLimit),
		Description:     "Scope creep: " + desc,
		Location:        parseLocation(where),
		ConfidenceScore: 0.7,
	}
}

// vulnerabilityEntry is a legacy security finding.
type vulnerabilityEntry struct {
	Type          any `mapstructure:"type"`
	Severity      any `mapstructure:"severity"`
	Description   any `mapstructure:"description"`
	Location      any `mapstructure:"location"`
	FixSuggestion any `mapstructure:"fix_suggestion"`
}

func (e vulnerabilityEntry) finding() schema.Finding {
	return schema.Finding{
		Category:        schema.CategorySecurity,
		Severity:        schema.ParseSeverity(text(e.Severity, ""), schema.SeverityMedium),
		Title:           "Security: " + text(e.Type, "vulnerability"),
		Description:     nonEmpty(text(e.Description, ""), "Unspecified vulnerability"),
		Location:        parseLocation(text(e.Location, "")),
		ConfidenceScore: 0.9,
		SuggestedFix:    text(e.FixSuggestion, ""),
	}
}

// performanceEntry is a legacy performance finding.
type performanceEntry struct {
	IssueType   any `mapstructure:"issue_type"`
	Description any `mapstructure:"description"`
	Location    any `mapstructure:"location"`
	Fix         any `mapstructure:"fix"`
}

func (e performanceEntry) finding() schema.Finding {
	issueType := text(e.IssueType, "")
	return schema.Finding{
		Category:        schema.CategoryPerformance,
		Severity:        schema.SeverityHigh,
		Title:           "Performance: " + nonEmpty(issueType, "issue"),
		Description:     nonEmpty(text(e.Description, ""), nonEmpty(issueType, "Performance issue")),
		Location:        parseLocation(text(e.Location, "")),
		ConfidenceScore: 0.85,
		SuggestedFix:    text(e.Fix, ""),
	}
}

// defaultConfidence is used for structured findings that carry no
// confidence_score. The legacy constants agree with it per category.
var defaultConfidence = map[schema.Category]float64{
	schema.CategorySecurity:         0.9,
	schema.CategoryPerformance:      0.85,
	schema.CategoryRequirementDrift: 0.8,
	schema.CategoryCodeQuality:      0.7,
	schema.CategoryTestGap:          0.7,
}

// decodeEntry decodes one raw object of the named bucket into its variant.
// Legacy buckets skip objects that carry a title: those are structured
// findings that were already captured under the findings bucket.
func decodeEntry(bucket string, raw schema.Result) (entry, bool, error) {
	var target entry
	switch bucket {
	case BucketFindings:
		target = &structuredEntry{}
	case BucketMissingFeatures:
		target = &missingFeatureEntry{}
	case BucketScopeCreep:
		target = &scopeCreepEntry{}
	case BucketVulnerabilities:
		target = &vulnerabilityEntry{}
	case BucketPerformanceIssues:
		target = &performanceEntry{}
	default:
		return nil, false, fmt.Errorf("unknown bucket %q", bucket)
	}

	if bucket != BucketFindings {
		if _, titled := raw["title"]; titled {
			return nil, false, nil
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result: target,
	})
	if err != nil {
		return nil, false, err
	}
	if err := decoder.Decode(map[string]any(raw)); err != nil {
		return nil, false, fmt.Errorf("decoding %s entry: %w", bucket, err)
	}

	return target, true, nil
}

func text(v any, def string) string {
	if v == nil {
		return def
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return def
	}
	return s
}

func number(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	if _, isBool := v.(bool); isBool {
		return 0, false
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func positiveInt(v any) (int, bool) {
	f, ok := number(v)
	if !ok || f < 1 || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

func strs(v any) []string {
	switch refs := v.(type) {
	case nil:
		return nil
	case string:
		if refs == "" {
			return nil
		}
		return []string{refs}
	case []string:
		return refs
	case []any:
		out := make([]string, 0, len(refs))
		for _, r := range refs {
			if s := text(r, ""); s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

func describe(desc, title string, category schema.Category) string {
	if desc != "" {
		return desc
	}
	if title != "" {
		return title
	}
	return fmt.Sprintf("Unspecified %s finding", strings.ReplaceAll(string(category), "_", " "))
}

func nonEmpty(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}

func clampUnit(f float64) float64 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}
