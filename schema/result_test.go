package schema_test

import (
	"encoding/json"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/riyaa1611/SmartCode-Demo/schema"
)

var _ = Describe("Result", func() {
	Describe("Int", func() {
		It("reads JSON numbers", func() {
			var r schema.Result
			Expect(json.Unmarshal([]byte(`{"completeness_score": 85}`), &r)).To(Succeed())
			Expect(r.Int("completeness_score", 50)).To(Equal(85))
		})

		It("truncates fractional values", func() {
			Expect(schema.Result{"s": 72.9}.Int("s", 0)).To(Equal(72))
			Expect(schema.Result{"s": "72.9"}.Int("s", 0)).To(Equal(72))
		})

		It("saturates values outside the int32 range", func() {
			r := schema.Result{"big": 1e20, "small": -1e20, "text": "1e20"}
			Expect(r.Int("big", 50)).To(Equal(math.MaxInt32))
			Expect(r.Int("small", 50)).To(Equal(math.MinInt32))
			Expect(r.Int("text", 50)).To(Equal(math.MaxInt32))
		})

		It("parses numeric strings", func() {
			Expect(schema.Result{"s": "64"}.Int("s", 0)).To(Equal(64))
		})

		It("falls back to the default for missing or malformed values", func() {
			r := schema.Result{"a": "high", "b": nil, "c": []any{1}, "d": true}
			Expect(r.Int("a", 50)).To(Equal(50))
			Expect(r.Int("b", 50)).To(Equal(50))
			Expect(r.Int("c", 50)).To(Equal(50))
			Expect(r.Int("d", 50)).To(Equal(50))
			Expect(r.Int("missing", 50)).To(Equal(50))
		})
	})

	Describe("Float", func() {
		It("reads numbers and numeric strings", func() {
			Expect(schema.Result{"c": 0.95}.Float("c", 0.7)).To(Equal(0.95))
			Expect(schema.Result{"c": "0.5"}.Float("c", 0.7)).To(Equal(0.5))
			Expect(schema.Result{"c": "sure"}.Float("c", 0.7)).To(Equal(0.7))
		})
	})

	Describe("String", func() {
		It("stringifies scalars and rejects objects", func() {
			r := schema.Result{"n": 12, "s": "x", "m": map[string]any{"a": 1}}
			Expect(r.String("n", "")).To(Equal("12"))
			Expect(r.String("s", "")).To(Equal("x"))
			Expect(r.String("m", "def")).To(Equal("def"))
		})
	})

	Describe("List", func() {
		It("returns nil for non-lists", func() {
			Expect(schema.Result{"l": "nope"}.List("l")).To(BeNil())
			Expect(schema.Result{}.HasList("l")).To(BeFalse())
		})

		It("accepts typed slices", func() {
			r := schema.Result{"l": []map[string]any{{"a": 1}}, "e": []any{}}
			Expect(r.List("l")).To(HaveLen(1))
			Expect(r.HasList("e")).To(BeTrue())
		})
	})

	Describe("ComplexityFrom", func() {
		It("reads top-level keys", func() {
			c := schema.ComplexityFrom(schema.Result{
				"cyclomatic_complexity": 12,
				"nesting_depth":         4,
				"function_count":        8,
			})
			Expect(c).To(Equal(schema.ComplexityMetrics{CyclomaticComplexity: 12, NestingDepth: 4, FunctionCount: 8}))
		})

		It("accepts max_nesting_depth and nested complexity_metrics", func() {
			c := schema.ComplexityFrom(schema.Result{
				"max_nesting_depth": 3,
				"complexity_metrics": map[string]any{
					"cyclomatic_complexity": 9,
					"function_count":        2,
				},
			})
			Expect(c).To(Equal(schema.ComplexityMetrics{CyclomaticComplexity: 9, NestingDepth: 3, FunctionCount: 2}))
		})

		It("prefers top-level values over nested ones", func() {
			c := schema.ComplexityFrom(schema.Result{
				"cyclomatic_complexity": 4,
				"complexity_metrics":    map[string]any{"cyclomatic_complexity": 30},
			})
			Expect(c.CyclomaticComplexity).To(Equal(4))
		})

		It("round-trips through Result", func() {
			c := schema.ComplexityMetrics{CyclomaticComplexity: 5, NestingDepth: 2, FunctionCount: 1}
			Expect(schema.ComplexityFrom(c.Result())).To(Equal(c))
		})
	})

	Describe("DiffMetadataFrom", func() {
		It("accepts path strings and filename objects", func() {
			d := schema.DiffMetadataFrom(schema.Result{"files_changed": []any{
				"src/app.py",
				map[string]any{"filename": "tests/test_app.py", "patch": "@@"},
				42,
			}})
			Expect(d.FilesChanged).To(Equal([]string{"src/app.py", "tests/test_app.py", ""}))
			Expect(d.FileCount()).To(Equal(3))
		})

		It("returns nil for a nil record", func() {
			Expect(schema.DiffMetadataFrom(nil)).To(BeNil())
		})

		It("never reports fewer than one file", func() {
			var d *schema.DiffMetadata
			Expect(d.FileCount()).To(Equal(1))
			Expect((&schema.DiffMetadata{}).FileCount()).To(Equal(1))
		})
	})
})
