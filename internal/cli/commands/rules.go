package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/docguard/internal/cli/output"
	"github.com/leapstack-labs/docguard/pkg/lint"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Group   string // Filter by group
	Verbose bool   // Show full documentation
}

// RulesJSONOutput is the JSON output structure for rules listing.
type RulesJSONOutput struct {
	Rules []lint.RuleInfo `json:"rules"`
	Count map[string]int  `json:"count"`
	Total int             `json:"total"`
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [rule-id]",
		Short: "List available documentation rules",
		Long: `List all documentation rules with their documentation.

Rules are organized by group (structure, diagram). Disabled rules and
severity overrides from .docguard.yaml are reflected in the listing.
Use --verbose to see descriptions and rationale.`,
		Example: `  # List all rules
  docguard rules

  # Show details for a specific rule
  docguard rules DG04

  # List diagram rules only
  docguard rules --group diagram

  # Output as JSON
  docguard rules --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showRule(cmd, args[0])
			}
			return listRules(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "Filter by group: structure, diagram")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "V", false, "Show full documentation")

	return cmd
}

func ruleInfos(c *CommandContext, group string) ([]lint.RuleInfo, error) {
	cfg, err := c.Cfg.LintRules()
	if err != nil {
		return nil, err
	}
	var rules []lint.RuleDef
	if group != "" {
		rules = lint.GetByGroup(group)
		if len(rules) == 0 {
			return nil, fmt.Errorf("unknown rule group %q (available: %s)", group, strings.Join(lint.Groups(), ", "))
		}
	} else {
		rules = lint.GetAll()
	}

	infos := make([]lint.RuleInfo, 0, len(rules))
	for _, rule := range rules {
		infos = append(infos, lint.Info(rule, cfg))
	}
	return infos, nil
}

func listRules(cmd *cobra.Command, opts *RulesOptions) error {
	c := NewCommandContext(cmd)
	r := c.Renderer

	infos, err := ruleInfos(c, opts.Group)
	if err != nil {
		return err
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		out := RulesJSONOutput{Rules: infos, Count: map[string]int{}, Total: len(infos)}
		for _, info := range infos {
			out.Count[info.Group]++
		}
		return r.JSON(out)
	case output.ModeMarkdown:
		listRulesMarkdown(r, infos, opts.Verbose)
	default:
		listRulesText(r, infos, opts.Verbose)
	}
	return nil
}

// groupTitle turns "structure" into "Structure Rules".
func groupTitle(group string) string {
	return cases.Title(language.English).String(group) + " Rules"
}

// rulesTable builds one table per group.
func rulesTable(infos []lint.RuleInfo, verbose bool) table.Writer {
	t := table.NewWriter()
	header := table.Row{"ID", "Name", "Severity", "Scope", "Enabled"}
	if verbose {
		header = append(header, "Description")
	}
	t.AppendHeader(header)
	for _, info := range infos {
		enabled := "yes"
		if !info.Enabled {
			enabled = "no"
		}
		row := table.Row{info.ID, info.Name, info.Severity, info.Scope, enabled}
		if verbose {
			row = append(row, info.Description)
		}
		t.AppendRow(row)
	}
	return t
}

// byGroup splits rules into their groups, keeping order.
func byGroup(infos []lint.RuleInfo) ([]string, map[string][]lint.RuleInfo) {
	var groups []string
	grouped := make(map[string][]lint.RuleInfo)
	for _, info := range infos {
		if _, seen := grouped[info.Group]; !seen {
			groups = append(groups, info.Group)
		}
		grouped[info.Group] = append(grouped[info.Group], info)
	}
	return groups, grouped
}

// listRulesText outputs rules as styled tables.
func listRulesText(r *output.Renderer, infos []lint.RuleInfo, verbose bool) {
	styles := r.Styles()
	groups, grouped := byGroup(infos)

	r.Println(styles.Header1.Render(fmt.Sprintf("Documentation Rules (%d)", len(infos))))
	for _, group := range groups {
		r.Println()
		r.Println(styles.Header2.Render(groupTitle(group)))
		t := rulesTable(grouped[group], verbose)
		t.SetStyle(table.StyleLight)
		r.Println(t.Render())
	}
	r.Println()
	r.Println(styles.Muted.Render("Use 'docguard rules <rule-id>' for detailed documentation"))
}

// listRulesMarkdown outputs rules as Markdown tables.
func listRulesMarkdown(r *output.Renderer, infos []lint.RuleInfo, verbose bool) {
	groups, grouped := byGroup(infos)

	r.Println("# Documentation Rules")
	for _, group := range groups {
		r.Println()
		r.Println("## " + groupTitle(group))
		r.Println()
		r.Println(rulesTable(grouped[group], verbose).RenderMarkdown())
	}
}

func showRule(cmd *cobra.Command, ruleID string) error {
	c := NewCommandContext(cmd)
	r := c.Renderer

	rule, ok := lint.GetByID(strings.ToUpper(ruleID))
	if !ok {
		return fmt.Errorf("rule %q not found", ruleID)
	}
	cfg, err := c.Cfg.LintRules()
	if err != nil {
		return err
	}
	info := lint.Info(rule, cfg)

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(info)
	case output.ModeMarkdown:
		showRuleMarkdown(r, rule, info)
	default:
		showRuleText(r, rule, info)
	}
	return nil
}

// showRuleText displays detailed rule info in text format.
func showRuleText(r *output.Renderer, rule lint.RuleDef, info lint.RuleInfo) {
	styles := r.Styles()

	r.Println(styles.Header1.Render(fmt.Sprintf("%s - %s", info.ID, info.Name)))
	r.Println()
	r.Printf("  %s: %s\n", styles.Bold.Render("Group"), info.Group)
	r.Printf("  %s: %s\n", styles.Bold.Render("Scope"), info.Scope)
	r.Printf("  %s: %s\n", styles.Bold.Render("Severity"), severityStyle(styles, info.Severity).Render(info.Severity))
	if !info.Enabled {
		r.Printf("  %s: %s\n", styles.Bold.Render("Enabled"), "no")
	}
	r.Println()

	r.Println(styles.Bold.Render("Description"))
	r.Println("  " + info.Description)
	r.Println()

	if rule.Rationale != "" {
		r.Println(styles.Bold.Render("Why This Matters"))
		r.Println("  " + rule.Rationale)
		r.Println()
	}
	if rule.BadExample != "" {
		r.Println(styles.Bold.Render("Bad Example"))
		for _, line := range strings.Split(rule.BadExample, "\n") {
			r.Println(styles.Muted.Render("  " + line))
		}
		r.Println()
	}
	if rule.GoodExample != "" {
		r.Println(styles.Bold.Render("Good Example"))
		for _, line := range strings.Split(rule.GoodExample, "\n") {
			r.Println(styles.Success.Render("  " + line))
		}
		r.Println()
	}
	if rule.Fix != "" {
		r.Println(styles.Bold.Render("How to Fix"))
		r.Println("  " + rule.Fix)
	}
}

// showRuleMarkdown displays detailed rule info in markdown format.
func showRuleMarkdown(r *output.Renderer, rule lint.RuleDef, info lint.RuleInfo) {
	r.Printf("# %s - %s\n\n", info.ID, info.Name)
	r.Printf("**Group:** %s | **Scope:** %s | **Severity:** `%s`\n\n", info.Group, info.Scope, info.Severity)
	r.Println(info.Description)
	r.Println()

	if rule.Rationale != "" {
		r.Println("## Why This Matters")
		r.Println()
		r.Println(rule.Rationale)
		r.Println()
	}
	if rule.BadExample != "" {
		r.Println("## Bad Example")
		r.Println()
		r.Println("````markdown")
		r.Println(rule.BadExample)
		r.Println("````")
		r.Println()
	}
	if rule.GoodExample != "" {
		r.Println("## Good Example")
		r.Println()
		r.Println("````markdown")
		r.Println(rule.GoodExample)
		r.Println("````")
		r.Println()
	}
	if rule.Fix != "" {
		r.Println("## How to Fix")
		r.Println()
		r.Println(rule.Fix)
	}
}

func severityStyle(styles *output.Styles, sev string) lipgloss.Style {
	switch sev {
	case lint.SeverityError.String():
		return styles.Error
	case lint.SeverityWarning.String():
		return styles.Warning
	case lint.SeverityInfo.String():
		return styles.Info
	default:
		return styles.Muted
	}
}
