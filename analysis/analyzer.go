package analysis

import (
	"context"
	"fmt"
	"strings"

	"code.cloudfoundry.org/lager/v3"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/sourcegraph/go-diff/diff"

	"github.com/riyaa1611/SmartCode-Demo/schema"
	"github.com/riyaa1611/SmartCode-Demo/tracing"
)

// ChangedFile is one file touched by a diff.
type ChangedFile struct {
	Path         string   `json:"filename"`
	Language     Language `json:"language,omitempty"`
	LinesAdded   int      `json:"lines_added"`
	LinesRemoved int      `json:"lines_removed"`
	Deleted      bool     `json:"deleted,omitempty"`

	added []byte
}

// Report is the static analysis of one diff.
type Report struct {
	Files          []ChangedFile            `json:"files_changed"`
	FunctionsAdded []string                 `json:"functions_added"`
	Complexity     schema.ComplexityMetrics `json:"complexity_metrics"`
}

// DiffMetadata lists the changed paths for test coverage detection.
func (r Report) DiffMetadata() *schema.DiffMetadata {
	paths := make([]string, len(r.Files))
	for i, f := range r.Files {
		paths[i] = f.Path
	}
	return &schema.DiffMetadata{FilesChanged: paths}
}

// Static renders the report as a static-analysis record.
func (r Report) Static() schema.Result {
	static := r.Complexity.Result()
	functions := make([]any, len(r.FunctionsAdded))
	for i, fn := range r.FunctionsAdded {
		functions[i] = fn
	}
	static["functions_added"] = functions
	return static
}

// Analyzer measures the code added by a unified diff.
type Analyzer struct {
	logger lager.Logger
}

// NewAnalyzer returns an Analyzer.
func NewAnalyzer(logger lager.Logger) *Analyzer {
	return &Analyzer{logger: logger}
}

// AnalyzeDiff parses diffText and measures the added code of every file in
// a supported language. Each measured file starts at complexity 1 and adds
// one per branch; function counts sum and nesting depth is the maximum.
// Files that cannot be measured contribute nothing.
func (a *Analyzer) AnalyzeDiff(ctx context.Context, diffText string) (Report, error) {
	ctx, span := tracing.StartSpan(ctx, "analysis.diff", nil)
	report, err := a.analyzeDiff(ctx, diffText)
	tracing.End(span, err)
	return report, err
}

func (a *Analyzer) analyzeDiff(ctx context.Context, diffText string) (Report, error) {
	logger := a.logger.Session("analyze-diff")

	fileDiffs, err := diff.NewMultiFileDiffReader(strings.NewReader(diffText)).ReadAllFiles()
	if err != nil {
		return Report{}, fmt.Errorf("parsing diff: %w", err)
	}

	report := Report{Files: make([]ChangedFile, 0, len(fileDiffs))}

	for _, fd := range fileDiffs {
		if err := ctx.Err(); err != nil {
			return Report{}, err
		}

		file := changedFile(fd)
		report.Files = append(report.Files, file)

		if file.Language == "" || len(file.added) == 0 {
			continue
		}

		m, functions, err := measure(ctx, file.Language, file.added)
		if err != nil {
			if ctx.Err() != nil {
				return Report{}, ctx.Err()
			}
			logger.Debug("failed-to-measure", lager.Data{"file": file.Path, "error": err.Error()})
			continue
		}

		report.Complexity.CyclomaticComplexity += m.CyclomaticComplexity
		report.Complexity.FunctionCount += m.FunctionCount
		report.Complexity.NestingDepth = max(report.Complexity.NestingDepth, m.NestingDepth)
		report.FunctionsAdded = append(report.FunctionsAdded, functions...)
	}

	logger.Debug("analyzed", lager.Data{
		"files":      len(report.Files),
		"complexity": report.Complexity.CyclomaticComplexity,
	})

	return report, nil
}

func changedFile(fd *diff.FileDiff) ChangedFile {
	path := fd.NewName
	deleted := path == "" || path == "/dev/null"
	if deleted {
		path = fd.OrigName
	}
	path = strings.TrimPrefix(strings.TrimPrefix(path, "a/"), "b/")

	file := ChangedFile{
		Path:     path,
		Language: DetectLanguage(path),
		Deleted:  deleted,
	}

	var added []string
	for _, hunk := range fd.Hunks {
		for _, line := range strings.Split(string(hunk.Body), "\n") {
			switch {
			case strings.HasPrefix(line, "+"):
				file.LinesAdded++
				added = append(added, line[1:])
			case strings.HasPrefix(line, "-"):
				file.LinesRemoved++
			}
		}
	}
	if len(added) > 0 {
		file.added = []byte(strings.Join(added, "\n") + "\n")
	}

	return file
}

func measure(ctx context.Context, lang Language, src []byte) (schema.ComplexityMetrics, []string, error) {
	g, ok := grammars[lang]
	if !ok {
		return schema.ComplexityMetrics{}, nil, fmt.Errorf("unsupported language %q", lang)
	}

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(g.language())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return schema.ComplexityMetrics{}, nil, fmt.Errorf("parsing %s: %w", lang, err)
	}
	defer tree.Close()

	w := walker{grammar: g, src: src, metrics: schema.ComplexityMetrics{CyclomaticComplexity: 1}}
	w.walk(tree.RootNode(), 0)

	return w.metrics, w.functions, nil
}

type walker struct {
	grammar   grammar
	src       []byte
	metrics   schema.ComplexityMetrics
	functions []string
}

func (w *walker) walk(n *sitter.Node, depth int) {
	if n == nil {
		return
	}

	switch t := n.Type(); {
	case w.grammar.branches[t]:
		w.metrics.CyclomaticComplexity++
		depth++
		w.metrics.NestingDepth = max(w.metrics.NestingDepth, depth)
	case w.grammar.functions[t]:
		w.metrics.FunctionCount++
		if name := n.ChildByFieldName("name"); name != nil {
			w.functions = append(w.functions, name.Content(w.src))
		}
	}

	for i := 0; i < int(n.NamedChildCount()); i++ {
		w.walk(n.NamedChild(i), depth)
	}
}
