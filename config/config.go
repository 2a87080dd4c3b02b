package config

import (
	"fmt"
	"math"
	"os"
	"regexp"
	"strings"

	"github.com/goccy/go-yaml"
)

const weightTolerance = 1e-9

// ScoringConfig holds every weight table and threshold used by the scoring
// core. It is loaded once and passed by value into the scorer, the metrics
// calculator and the aggregator.
type ScoringConfig struct {
	Version           string            `yaml:"version"`
	SeverityWeights   SeverityWeights   `yaml:"severity_weights"`
	DimensionWeights  DimensionWeights  `yaml:"dimension_weights"`
	OverallWeights    OverallWeights    `yaml:"overall_weights"`
	VerdictThresholds VerdictThresholds `yaml:"verdict_thresholds"`
	TestPathMarkers   []string          `yaml:"test_path_markers"`
}

// SeverityWeights defines the risk points contributed by one finding of
// each severity.
type SeverityWeights struct {
	Critical float64 `yaml:"critical"`
	High     float64 `yaml:"high"`
	Medium   float64 `yaml:"medium"`
	Low      float64 `yaml:"low"`
	Info     float64 `yaml:"info"`
}

// DimensionWeights weights the five confidence dimensions. They must sum to
// 1.0.
type DimensionWeights struct {
	RequirementAlignment float64 `yaml:"requirement_alignment"`
	SecuritySafety       float64 `yaml:"security_safety"`
	CodeQuality          float64 `yaml:"code_quality"`
	TestCoverageSignal   float64 `yaml:"test_coverage_signal"`
	StaticAnalysisClean  float64 `yaml:"static_analysis_clean"`
}

// Sum returns the total of all dimension weights.
func (w DimensionWeights) Sum() float64 {
	return w.RequirementAlignment + w.SecuritySafety + w.CodeQuality + w.TestCoverageSignal + w.StaticAnalysisClean
}

// OverallWeights weights the four raw LLM scores in the overall score. They
// must sum to 1.0.
type OverallWeights struct {
	Completeness float64 `yaml:"completeness"`
	Security     float64 `yaml:"security"`
	Performance  float64 `yaml:"performance"`
	Quality      float64 `yaml:"quality"`
}

// Sum returns the total of all overall weights.
func (w OverallWeights) Sum() float64 {
	return w.Completeness + w.Security + w.Performance + w.Quality
}

// VerdictThresholds are the lower bounds of the APPROVE and REVIEW_NEEDED
// bands. Anything below ReviewNeeded is CHANGES_REQUESTED.
type VerdictThresholds struct {
	Approve      float64 `yaml:"approve"`
	ReviewNeeded float64 `yaml:"review_needed"`
}

// DefaultConfig returns the default scoring configuration.
func DefaultConfig() *ScoringConfig {
	return &ScoringConfig{
		Version:         "1",
		SeverityWeights: defaultSeverityWeights(),
		DimensionWeights: DimensionWeights{
			RequirementAlignment: 0.30,
			SecuritySafety:       0.25,
			CodeQuality:          0.20,
			TestCoverageSignal:   0.15,
			StaticAnalysisClean:  0.10,
		},
		OverallWeights: OverallWeights{
			Completeness: 0.30,
			Security:     0.25,
			Performance:  0.20,
			Quality:      0.25,
		},
		VerdictThresholds: VerdictThresholds{
			Approve:      80,
			ReviewNeeded: 60,
		},
		TestPathMarkers: []string{
			`test_`, `_test\.`, `tests/`, `spec/`, `__tests__/`, `\.test\.`, `\.spec\.`,
		},
	}
}

func defaultSeverityWeights() SeverityWeights {
	return SeverityWeights{
		Critical: 10,
		High:     7,
		Medium:   4,
		Low:      1,
		Info:     0,
	}
}

// LoadConfig parses a scoring.yml from YAML bytes. Missing fields are filled
// with defaults. Weight tables are replaced as a whole when any of their
// fields is set, so a partial table cannot silently stop summing to 1.0.
func LoadConfig(data []byte) (*ScoringConfig, error) {
	cfg := DefaultConfig()

	if len(data) == 0 {
		return cfg, nil
	}

	var parsed ScoringConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parsing scoring config: %w", err)
	}

	if parsed.Version != "" {
		cfg.Version = parsed.Version
	}
	if parsed.SeverityWeights != (SeverityWeights{}) {
		cfg.SeverityWeights = parsed.SeverityWeights
	}
	if parsed.DimensionWeights != (DimensionWeights{}) {
		cfg.DimensionWeights = parsed.DimensionWeights
	}
	if parsed.OverallWeights != (OverallWeights{}) {
		cfg.OverallWeights = parsed.OverallWeights
	}
	if parsed.VerdictThresholds.Approve != 0 {
		cfg.VerdictThresholds.Approve = parsed.VerdictThresholds.Approve
	}
	if parsed.VerdictThresholds.ReviewNeeded != 0 {
		cfg.VerdictThresholds.ReviewNeeded = parsed.VerdictThresholds.ReviewNeeded
	}
	if parsed.TestPathMarkers != nil {
		cfg.TestPathMarkers = parsed.TestPathMarkers
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFile reads and parses a scoring config from disk. An empty path
// returns the defaults.
func LoadFile(path string) (*ScoringConfig, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scoring config: %w", err)
	}

	return LoadConfig(data)
}

// Validate checks that the weight tables sum to 1.0, the verdict bands are
// ordered and the test path markers compile.
func (cfg *ScoringConfig) Validate() error {
	if sum := cfg.DimensionWeights.Sum(); math.Abs(sum-1.0) > weightTolerance {
		return fmt.Errorf("dimension_weights must sum to 1.0, got %v", sum)
	}
	if sum := cfg.OverallWeights.Sum(); math.Abs(sum-1.0) > weightTolerance {
		return fmt.Errorf("overall_weights must sum to 1.0, got %v", sum)
	}

	w := cfg.SeverityWeights
	for name, v := range map[string]float64{
		"critical": w.Critical, "high": w.High, "medium": w.Medium, "low": w.Low, "info": w.Info,
	} {
		if v < 0 {
			return fmt.Errorf("severity_weights.%s must not be negative, got %v", name, v)
		}
	}

	t := cfg.VerdictThresholds
	if t.ReviewNeeded <= 0 || t.Approve <= t.ReviewNeeded || t.Approve > 100 {
		return fmt.Errorf("verdict_thresholds must satisfy 0 < review_needed < approve <= 100, got %v/%v", t.ReviewNeeded, t.Approve)
	}

	if len(cfg.TestPathMarkers) == 0 {
		return fmt.Errorf("test_path_markers must not be empty")
	}
	if _, err := cfg.TestPathPattern(); err != nil {
		return err
	}

	return nil
}

// TestPathPattern compiles the test path markers into one case-insensitive
// expression.
func (cfg *ScoringConfig) TestPathPattern() (*regexp.Regexp, error) {
	re, err := regexp.Compile("(?i)(" + strings.Join(cfg.TestPathMarkers, "|") + ")")
	if err != nil {
		return nil, fmt.Errorf("compiling test_path_markers: %w", err)
	}
	return re, nil
}

// LoadProfile returns a built-in profile by name.
func LoadProfile(name string) (*ScoringConfig, error) {
	switch name {
	case "default":
		return DefaultConfig(), nil
	case "security":
		cfg := DefaultConfig()
		cfg.DimensionWeights = DimensionWeights{
			RequirementAlignment: 0.25,
			SecuritySafety:       0.35,
			CodeQuality:          0.15,
			TestCoverageSignal:   0.15,
			StaticAnalysisClean:  0.10,
		}
		cfg.SeverityWeights.Critical = 15
		cfg.SeverityWeights.High = 10
		return cfg, nil
	case "strict":
		cfg := DefaultConfig()
		cfg.VerdictThresholds = VerdictThresholds{Approve: 90, ReviewNeeded: 70}
		return cfg, nil
	default:
		return nil, fmt.Errorf("unknown profile %q: must be one of default, security, strict", name)
	}
}
