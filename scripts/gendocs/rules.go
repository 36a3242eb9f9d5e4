package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/docguard/internal/markdown"
	"github.com/leapstack-labs/docguard/pkg/lint"
	_ "github.com/leapstack-labs/docguard/pkg/lint/rules"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var groupDescriptions = map[string]string{
	lint.GroupStructure: "Rules about the required layout of the root and module documentation files.",
	lint.GroupDiagram:   "Lightweight syntax checks for Mermaid diagrams embedded in the documentation.",
}

// generateRuleDocs writes an index page and one page per rule group. The page
// names match the links reported by lint.BuildDocURL.
func generateRuleDocs(outDir string) error {
	log.Printf("Generating rule docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	groups := lint.Groups()
	if err := generateRulesIndex(outDir, groups); err != nil {
		return err
	}
	log.Printf("  Generated index.md")

	for _, group := range groups {
		if err := generateGroupPage(outDir, group, lint.GetByGroup(group)); err != nil {
			return err
		}
		log.Printf("  Generated %s.md", group)
	}
	return nil
}

func generateRulesIndex(outDir string, groups []string) error {
	w := markdown.NewWriter()

	w.Frontmatter("Documentation Rules", "Structure and diagram rules checked by docguard")
	w.GeneratedMarker()

	w.Header(1, "Documentation Rules")
	w.Paragraph(fmt.Sprintf("docguard checks documentation against **%d rules** in %d groups.", lint.Count(), len(groups)))

	w.Header(2, "Groups")
	var rows [][]string
	for _, group := range groups {
		link := fmt.Sprintf("[%s](%s.md)", groupTitle(group), group)
		rows = append(rows, []string{link, fmt.Sprintf("%d", len(lint.GetByGroup(group))), groupDescriptions[group]})
	}
	w.Table([]string{"Group", "Rules", "Description"}, rows)

	w.Header(2, "Severity Levels")
	w.Table(
		[]string{"Severity", "Effect"},
		[][]string{
			{markdown.InlineCode("error"), "Fails the check with exit code 1"},
			{markdown.InlineCode("warning"), "Reported, does not fail the check"},
			{markdown.InlineCode("info"), "Reported with the warnings"},
			{markdown.InlineCode("hint"), "Reported with the warnings"},
		},
	)

	w.Header(2, "Configuration")
	w.Paragraph("Rules can be disabled or re-graded in `.docguard.yaml`:")
	w.CodeBlock("yaml", `lint:
  disabled: [DS09]
  severity:
    DG03: error`)

	return os.WriteFile(filepath.Join(outDir, "index.md"), w.Bytes(), 0600)
}

func generateGroupPage(outDir, group string, rules []lint.RuleDef) error {
	w := markdown.NewWriter()
	title := groupTitle(group)

	w.Frontmatter(title, groupDescriptions[group])
	w.GeneratedMarker()

	w.Header(1, title)
	if desc, ok := groupDescriptions[group]; ok {
		w.Paragraph(desc)
	}

	var rows [][]string
	for _, rule := range rules {
		anchor := fmt.Sprintf("[%s](#%s)", rule.ID, strings.ToLower(rule.ID))
		rows = append(rows, []string{anchor, rule.Name, markdown.InlineCode(rule.Severity.String()), rule.Scope.String()})
	}
	w.Table([]string{"ID", "Name", "Severity", "Scope"}, rows)

	for _, rule := range rules {
		writeRuleDoc(w, rule)
	}

	return os.WriteFile(filepath.Join(outDir, group+".md"), w.Bytes(), 0600)
}

func groupTitle(group string) string {
	return cases.Title(language.English).String(group) + " Rules"
}

// writeRuleDoc writes detailed documentation for a single rule.
func writeRuleDoc(w *markdown.Writer, rule lint.RuleDef) {
	// ### DG04 - undefined-node {#dg04}
	w.Line(fmt.Sprintf("### %s - %s {#%s}", rule.ID, rule.Name, strings.ToLower(rule.ID)))
	w.Newline()

	w.Line(fmt.Sprintf("**Severity:** %s | **Scope:** %s",
		markdown.InlineCode(rule.Severity.String()), rule.Scope.String()))
	w.Newline()

	if rule.Description != "" {
		w.Paragraph(strings.TrimSpace(rule.Description))
	}
	if rule.Rationale != "" {
		w.Header(4, "Why This Matters")
		w.Paragraph(strings.TrimSpace(rule.Rationale))
	}
	if rule.BadExample != "" {
		w.Header(4, "Bad")
		w.CodeBlock("markdown", rule.BadExample)
	}
	if rule.GoodExample != "" {
		w.Header(4, "Good")
		w.CodeBlock("markdown", rule.GoodExample)
	}
	if rule.Fix != "" {
		w.Header(4, "How to Fix")
		w.Paragraph(strings.TrimSpace(rule.Fix))
	}

	w.Line("---")
	w.Newline()
}
