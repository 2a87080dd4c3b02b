package schema

import (
	"fmt"
	"strings"
)

// Severity represents the impact level of a finding.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
	SeverityInfo     Severity = "info"
)

var severityRanks = map[Severity]int{
	SeverityCritical: 5,
	SeverityHigh:     4,
	SeverityMedium:   3,
	SeverityLow:      2,
	SeverityInfo:     1,
}

// Validate checks that the severity is a known value.
func (s Severity) Validate() error {
	if _, ok := severityRanks[s]; !ok {
		return fmt.Errorf("invalid severity %q: must be one of critical, high, medium, low, info", s)
	}
	return nil
}

// Rank orders severities: critical > high > medium > low > info. Unknown
// severities rank 0.
func (s Severity) Rank() int {
	return severityRanks[s]
}

// AtLeast reports whether s is as severe as other or more.
func (s Severity) AtLeast(other Severity) bool {
	return s.Rank() >= other.Rank()
}

// ParseSeverity maps a raw severity string onto a known Severity, ignoring
// case and surrounding whitespace. Unknown values yield def.
func ParseSeverity(raw string, def Severity) Severity {
	s := Severity(strings.ToLower(strings.TrimSpace(raw)))
	if s.Validate() != nil {
		return def
	}
	return s
}

// Category classifies what kind of concern a finding addresses.
type Category string

const (
	CategoryRequirementDrift Category = "requirement_drift"
	CategorySecurity         Category = "security"
	CategoryPerformance      Category = "performance"
	CategoryCodeQuality      Category = "code_quality"
	CategoryTestGap          Category = "test_gap"
)

var validCategories = map[Category]bool{
	CategoryRequirementDrift: true,
	CategorySecurity:         true,
	CategoryPerformance:      true,
	CategoryCodeQuality:      true,
	CategoryTestGap:          true,
}

// Validate checks that the category is a known value.
func (c Category) Validate() error {
	if !validCategories[c] {
		return fmt.Errorf("invalid category %q: must be one of requirement_drift, security, performance, code_quality, test_gap", c)
	}
	return nil
}

// ParseCategory maps a raw category string onto a known Category, ignoring
// case and surrounding whitespace. Unknown values yield def.
func ParseCategory(raw string, def Category) Category {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	if c.Validate() != nil {
		return def
	}
	return c
}

// Location points at the code a finding refers to. Line is 1-based; 0 means
// the line is unknown.
type Location struct {
	FilePath string `json:"file_path"`
	Line     int    `json:"line_number"`
}

// String renders the location as "path:line", or just the path when the
// line is unknown.
func (l Location) String() string {
	if l.Line > 0 {
		return fmt.Sprintf("%s:%d", l.FilePath, l.Line)
	}
	return l.FilePath
}

// Finding is one normalized issue detected in a reviewed change.
type Finding struct {
	ID              int64    `json:"id,omitempty"`
	ReviewID        int64    `json:"review_id,omitempty"`
	Fingerprint     string   `json:"fingerprint"`
	Category        Category `json:"category"`
	Severity        Severity `json:"severity"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Location        Location `json:"location"`
	ConfidenceScore float64  `json:"confidence_score"`
	SuggestedFix    string   `json:"suggested_fix,omitempty"`
	CodeSnippet     string   `json:"code_snippet,omitempty"`
	References      []string `json:"references,omitempty"`
}

// Validate checks the invariants every persisted finding must hold.
func (f *Finding) Validate() error {
	if err := f.Category.Validate(); err != nil {
		return err
	}
	if err := f.Severity.Validate(); err != nil {
		return err
	}
	if f.Description == "" {
		return fmt.Errorf("finding description is required")
	}
	if f.ConfidenceScore < 0 || f.ConfidenceScore > 1 {
		return fmt.Errorf("finding confidence_score %v out of range [0,1]", f.ConfidenceScore)
	}
	if f.Location.Line < 0 {
		return fmt.Errorf("finding line_number %d must not be negative", f.Location.Line)
	}
	return nil
}

// AssignReview binds the finding to a review. A finding that already
// belongs to a different review cannot be moved.
func (f *Finding) AssignReview(reviewID int64) error {
	if f.ReviewID != 0 && f.ReviewID != reviewID {
		return fmt.Errorf("finding already belongs to review %d", f.ReviewID)
	}
	f.ReviewID = reviewID
	return nil
}
