package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/docguard/internal/cli"
	"github.com/leapstack-labs/docguard/internal/markdown"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// generateCLIDocs generates CLI documentation from Cobra commands.
func generateCLIDocs(outDir string) error {
	log.Printf("Generating CLI docs to %s", outDir)

	// Create output directory
	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	// Get root command
	rootCmd := cli.NewRootCmd()

	// Generate index page
	if err := generateCLIIndex(rootCmd, outDir); err != nil {
		return fmt.Errorf("failed to generate index: %w", err)
	}
	log.Printf("  Generated index.md")

	// Generate page for each command
	for _, cmd := range rootCmd.Commands() {
		if cmd.Hidden || cmd.Name() == "help" || cmd.Name() == "__complete" {
			continue
		}
		if err := generateCommandPage(cmd, outDir); err != nil {
			return fmt.Errorf("failed to generate page for %s: %w", cmd.Name(), err)
		}
		log.Printf("  Generated %s.md", cmd.Name())
	}

	return nil
}

// generateCLIIndex generates the CLI overview page.
func generateCLIIndex(rootCmd *cobra.Command, outDir string) error {
	w := markdown.NewWriter()

	// Frontmatter
	w.Frontmatter("CLI Reference", "Command-line interface reference for docguard")
	w.GeneratedMarker()

	// Title and intro
	w.Header(1, "CLI Reference")
	w.Paragraph("docguard validates per-module documentation files, checks their Mermaid diagrams and reports which documents are stale after source changes.")

	// Installation
	w.Header(2, "Installation")
	w.CodeBlock("bash", "go install github.com/leapstack-labs/docguard/cmd/docguard@latest")

	// Basic usage
	w.Header(2, "Basic Usage")
	w.CodeBlock("bash", "docguard <command> [options]")

	// Commands table
	w.Header(2, "Commands")

	headers := []string{"Command", "Description"}
	var rows [][]string

	for _, cmd := range rootCmd.Commands() {
		if cmd.Hidden || cmd.Name() == "help" || cmd.Name() == "__complete" {
			continue
		}
		link := fmt.Sprintf("[%s](/cli/%s)", markdown.InlineCode(cmd.Name()), cmd.Name())
		rows = append(rows, []string{link, markdown.CleanDescription(cmd.Short)})
	}

	w.Table(headers, rows)

	// Global flags
	w.Header(2, "Global Options")
	w.Paragraph("These flags are available for all commands:")
	writeFlagsTable(w, rootCmd.PersistentFlags())

	// Environment variables
	w.Header(2, "Environment Variables")
	w.Paragraph("Every configuration key can be set with a DOCGUARD_ variable; a double underscore separates nested keys:")

	envHeaders := []string{"Variable", "Description"}
	envRows := [][]string{
		{markdown.InlineCode("DOCGUARD_ROOT"), "Repository root"},
		{markdown.InlineCode("DOCGUARD_FORMAT"), "Output format"},
		{markdown.InlineCode("DOCGUARD_DOCS__FILE_NAME"), "Documentation file name"},
		{markdown.InlineCode("DOCGUARD_DOCS__MODULES"), "Comma-separated module directories"},
		{markdown.InlineCode("DOCGUARD_SYNC__LOOKBACK_DAYS"), "Default sync lookback in days"},
		{markdown.InlineCode("DOCGUARD_SYNC__GIT_TIMEOUT"), "Timeout for git invocations"},
	}
	w.Table(envHeaders, envRows)

	w.Paragraph("Command-line flags take precedence over environment variables, which take precedence over .docguard.yaml.")

	// Exit codes
	w.Header(2, "Exit Codes")
	exitHeaders := []string{"Code", "Meaning"}
	exitRows := [][]string{
		{markdown.InlineCode("0"), "Success"},
		{markdown.InlineCode("1"), "Checks failed, documentation is stale, or an error occurred"},
	}
	w.Table(exitHeaders, exitRows)

	// Getting help
	w.Header(2, "Getting Help")
	w.CodeBlock("bash", `# General help
docguard help
docguard --help

# Command-specific help
docguard sync --help`)

	// Write file
	filename := filepath.Join(outDir, "index.md")
	return os.WriteFile(filename, w.Bytes(), 0600)
}

// generateCommandPage generates documentation for a single command.
func generateCommandPage(cmd *cobra.Command, outDir string) error {
	w := markdown.NewWriter()

	// Frontmatter
	w.Frontmatter(cmd.Name(), cmd.Short)
	w.GeneratedMarker()

	// Title and long description
	w.Header(1, cmd.Name())
	if cmd.Long != "" {
		w.Paragraph(cmd.Long)
	} else {
		w.Paragraph(cmd.Short)
	}

	// Usage
	w.Header(2, "Usage")
	useLine := cmd.UseLine()
	if cmd.HasSubCommands() {
		useLine = fmt.Sprintf("docguard %s <subcommand> [options]", cmd.Name())
	} else if !strings.HasPrefix(useLine, "docguard") {
		useLine = "docguard " + useLine
	}
	w.CodeBlock("bash", useLine)

	// Aliases
	if len(cmd.Aliases) > 0 {
		w.Header(2, "Aliases")
		var aliases []string
		for _, alias := range cmd.Aliases {
			aliases = append(aliases, markdown.InlineCode(alias))
		}
		w.BulletList(aliases)
	}

	// Subcommands
	if cmd.HasSubCommands() {
		w.Header(2, "Subcommands")
		headers := []string{"Subcommand", "Description"}
		var rows [][]string
		for _, sub := range cmd.Commands() {
			if sub.Hidden {
				continue
			}
			rows = append(rows, []string{markdown.InlineCode(sub.Name()), markdown.CleanDescription(sub.Short)})
		}
		w.Table(headers, rows)
	}

	// Local flags
	if cmd.HasLocalFlags() {
		w.Header(2, "Options")
		writeFlagsTable(w, cmd.LocalFlags())
	}

	// Inherited flags from parent
	if cmd.HasInheritedFlags() {
		w.Header(2, "Global Options")
		writeFlagsTable(w, cmd.InheritedFlags())
	}

	// Examples
	if cmd.Example != "" {
		w.Header(2, "Examples")
		// Clean up example - remove common leading whitespace
		example := cleanExample(cmd.Example)
		w.CodeBlock("bash", example)
	}

	// Write file
	filename := filepath.Join(outDir, cmd.Name()+".md")
	return os.WriteFile(filename, w.Bytes(), 0600)
}

// writeFlagsTable writes a table of flags.
func writeFlagsTable(w *markdown.Writer, flags *pflag.FlagSet) {
	headers := []string{"Option", "Short", "Default", "Description"}
	var rows [][]string

	flags.VisitAll(func(f *pflag.Flag) {
		// Skip hidden flags
		if f.Hidden {
			return
		}

		option := "--" + f.Name
		short := ""
		if f.Shorthand != "" {
			short = "-" + f.Shorthand
		}

		defVal := f.DefValue
		switch {
		case defVal == "":
			// Keep empty
		case defVal == "false" || defVal == "true":
			// Keep as-is for booleans
		case f.Value.Type() == "string" && defVal != "":
			defVal = markdown.InlineCode(defVal)
		}

		desc := markdown.CleanDescription(f.Usage)

		rows = append(rows, []string{
			markdown.InlineCode(option),
			short,
			defVal,
			desc,
		})
	})

	w.Table(headers, rows)
}

// cleanExample removes common leading whitespace from example text.
func cleanExample(example string) string {
	lines := strings.Split(example, "\n")
	if len(lines) == 0 {
		return example
	}

	// Find minimum indentation (ignoring empty lines)
	minIndent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := len(line) - len(strings.TrimLeft(line, " \t"))
		if minIndent == -1 || indent < minIndent {
			minIndent = indent
		}
	}

	if minIndent <= 0 {
		return strings.TrimSpace(example)
	}

	// Remove common indentation
	var result []string
	for _, line := range lines {
		if len(line) >= minIndent {
			result = append(result, line[minIndent:])
		} else {
			result = append(result, strings.TrimLeft(line, " \t"))
		}
	}

	return strings.TrimSpace(strings.Join(result, "\n"))
}
