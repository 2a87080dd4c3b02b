package schema

import (
	"math"

	"github.com/spf13/cast"
)

// Result is a JSON-shaped record produced by an upstream collaborator (an
// LLM review pass, the static analyzer, the diff collector). Keys are
// optional and values may have the wrong type; the accessors substitute the
// caller's default instead of failing.
type Result map[string]any

// Has reports whether key is present with a non-nil value.
func (r Result) Has(key string) bool {
	v, ok := r[key]
	return ok && v != nil
}

// Int returns key as an integer, truncating fractional numbers. Values
// beyond the int32 range saturate. Missing or unparseable values yield def.
func (r Result) Int(key string, def int) int {
	v, ok := r[key]
	if !ok || v == nil {
		return def
	}
	if _, isBool := v.(bool); isBool {
		return def
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) {
		return def
	}
	return int(max(math.MinInt32, min(math.MaxInt32, f)))
}

// Float returns key as a float64. Missing or unparseable values yield def.
func (r Result) Float(key string, def float64) float64 {
	v, ok := r[key]
	if !ok || v == nil {
		return def
	}
	if _, isBool := v.(bool); isBool {
		return def
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return def
	}
	return f
}

// String returns key as a string. Missing values and values that are not
// scalars yield def.
func (r Result) String(key string, def string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return def
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return def
	}
	return s
}

// List returns key as a list. Missing keys and non-list values yield nil.
func (r Result) List(key string) []any {
	switch v := r[key].(type) {
	case []any:
		return v
	case []map[string]any:
		out := make([]any, len(v))
		for i, m := range v {
			out[i] = m
		}
		return out
	case []Result:
		out := make([]any, len(v))
		for i, m := range v {
			out[i] = map[string]any(m)
		}
		return out
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out
	default:
		return nil
	}
}

// HasList reports whether key holds a list, even an empty one.
func (r Result) HasList(key string) bool {
	switch r[key].(type) {
	case []any, []map[string]any, []Result, []string:
		return true
	default:
		return false
	}
}

// Nested returns key as a nested record. Missing keys and non-object values
// yield an empty record.
func (r Result) Nested(key string) Result {
	if m, ok := AsRecord(r[key]); ok {
		return m
	}
	return Result{}
}

// AsRecord converts a decoded JSON object into a Result.
func AsRecord(v any) (Result, bool) {
	switch m := v.(type) {
	case Result:
		return m, true
	case map[string]any:
		return Result(m), true
	default:
		return nil, false
	}
}

// ComplexityMetrics is the static-analysis summary used by the scorer and
// the tech-debt indicator.
type ComplexityMetrics struct {
	CyclomaticComplexity int `json:"cyclomatic_complexity"`
	NestingDepth         int `json:"nesting_depth"`
	FunctionCount        int `json:"function_count"`
}

// ComplexityFrom reads complexity metrics from a static-analysis record.
// Top-level keys win over a nested "complexity_metrics" object, and
// "max_nesting_depth" is accepted in place of "nesting_depth".
func ComplexityFrom(r Result) ComplexityMetrics {
	nested := r.Nested("complexity_metrics")

	lookup := func(keys ...string) int {
		for _, src := range []Result{r, nested} {
			for _, k := range keys {
				if src.Has(k) {
					return src.Int(k, 0)
				}
			}
		}
		return 0
	}

	return ComplexityMetrics{
		CyclomaticComplexity: lookup("cyclomatic_complexity"),
		NestingDepth:         lookup("nesting_depth", "max_nesting_depth"),
		FunctionCount:        lookup("function_count"),
	}
}

// Result renders the metrics as a static-analysis record.
func (c ComplexityMetrics) Result() Result {
	return Result{
		"cyclomatic_complexity": c.CyclomaticComplexity,
		"nesting_depth":         c.NestingDepth,
		"function_count":        c.FunctionCount,
	}
}

// DiffMetadata describes the files touched by a change.
type DiffMetadata struct {
	FilesChanged []string `json:"files_changed"`
}

// DiffMetadataFrom reads the changed file list from a collector record. Each
// entry is either a path string or an object with a "filename" field;
// entries of any other shape are kept as empty paths so they still count
// towards the total.
func DiffMetadataFrom(r Result) *DiffMetadata {
	if r == nil {
		return nil
	}

	entries := r.List("files_changed")
	files := make([]string, 0, len(entries))
	for _, e := range entries {
		switch v := e.(type) {
		case string:
			files = append(files, v)
		default:
			if rec, ok := AsRecord(v); ok {
				files = append(files, rec.String("filename", ""))
			} else {
				files = append(files, "")
			}
		}
	}
	return &DiffMetadata{FilesChanged: files}
}

// FileCount is the number of changed files, at least 1 so it can be used as
// a divisor.
func (d *DiffMetadata) FileCount() int {
	if d == nil || len(d.FilesChanged) == 0 {
		return 1
	}
	return len(d.FilesChanged)
}
