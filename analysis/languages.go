package analysis

import (
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// Language is a source language the analyzer can measure.
type Language string

const (
	LanguageGo         Language = "go"
	LanguagePython     Language = "python"
	LanguageJavaScript Language = "javascript"
	LanguageTypeScript Language = "typescript"
)

type grammar struct {
	language  func() *sitter.Language
	branches  map[string]bool
	functions map[string]bool
}

var grammars = map[Language]grammar{
	LanguagePython: {
		language: python.GetLanguage,
		branches: set(
			"if_statement", "elif_clause", "for_statement", "while_statement", "try_statement",
		),
		functions: set("function_definition"),
	},
	LanguageGo: {
		language: golang.GetLanguage,
		branches: set(
			"if_statement", "for_statement", "expression_switch_statement",
			"type_switch_statement", "select_statement",
		),
		functions: set("function_declaration", "method_declaration", "func_literal"),
	},
	LanguageJavaScript: {
		language:  javascript.GetLanguage,
		branches:  ecmaBranches,
		functions: ecmaFunctions,
	},
	LanguageTypeScript: {
		language:  typescript.GetLanguage,
		branches:  ecmaBranches,
		functions: ecmaFunctions,
	},
}

var (
	ecmaBranches = set(
		"if_statement", "for_statement", "for_in_statement", "while_statement",
		"do_statement", "try_statement", "switch_statement",
	)
	ecmaFunctions = set(
		"function_declaration", "function", "function_expression", "arrow_function",
		"method_definition", "generator_function_declaration",
	)
)

// DetectLanguage maps a file path to a Language by extension. Unsupported
// files return "".
func DetectLanguage(path string) Language {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".go":
		return LanguageGo
	case ".py", ".pyi":
		return LanguagePython
	case ".js", ".jsx", ".mjs", ".cjs":
		return LanguageJavaScript
	case ".ts", ".mts", ".cts":
		return LanguageTypeScript
	default:
		return ""
	}
}

func set(types ...string) map[string]bool {
	m := make(map[string]bool, len(types))
	for _, t := range types {
		m[t] = true
	}
	return m
}
