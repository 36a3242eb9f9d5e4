package structure

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/leapstack-labs/docguard/pkg/lint"
)

func init() {
	lint.Register(MixedPunctuation)
}

var mixedPunctuation = regexp.MustCompile(`[a-zA-Z0-9][，。！？；：]`)

// MixedPunctuation flags ASCII text followed directly by full-width punctuation.
var MixedPunctuation = lint.RuleDef{
	ID:          "DS09",
	Name:        "mixed-punctuation",
	Group:       lint.GroupStructure,
	Description: "ASCII letters or digits must not be followed directly by full-width punctuation.",
	Severity:    lint.SeverityError,
	Check:       checkMixedPunctuation,

	BadExample:  "使用 Rust，构建核心逻辑",
	GoodExample: "使用 Rust 构建核心逻辑",
	Fix:         "Add whitespace after the ASCII text or rephrase the sentence.",
}

// checkMixedPunctuation reports the first offending snippet only.
func checkMixedPunctuation(ctx *lint.Context) []lint.Diagnostic {
	content := ctx.Document.Content
	loc := mixedPunctuation.FindStringIndex(content)
	if loc == nil {
		return nil
	}
	d := ctx.Report("DS09", lint.SeverityError,
		fmt.Sprintf("mixed ASCII and full-width punctuation (e.g. '%s')", content[loc[0]:loc[1]]))
	d.Line = strings.Count(content[:loc[0]], "\n") + 1
	return []lint.Diagnostic{d}
}
