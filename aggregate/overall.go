package aggregate

import (
	"github.com/riyaa1611/SmartCode-Demo/config"
	"github.com/riyaa1611/SmartCode-Demo/schema"
	"github.com/riyaa1611/SmartCode-Demo/scoring"
)

const (
	defaultCompleteness = 50
	defaultSecurity     = 50
	defaultPerformance  = 50
	defaultQuality      = 70
)

// OverallScore blends the four raw LLM scores with w. It is stored next to
// the confidence composite, unrounded. Missing scores default to 50, except
// quality which defaults to 70; each score is clamped into [0,100].
func OverallScore(in scoring.Input, w config.OverallWeights) float64 {
	return raw(in.Requirement, "completeness_score", defaultCompleteness)*w.Completeness +
		raw(in.Security, "security_score", defaultSecurity)*w.Security +
		raw(in.Performance, "performance_score", defaultPerformance)*w.Performance +
		raw(in.Quality, "quality_score", defaultQuality)*w.Quality
}

func raw(r schema.Result, key string, def int) float64 {
	return float64(max(0, min(100, r.Int(key, def))))
}
