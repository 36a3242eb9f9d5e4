// Package cli provides the command-line interface for docguard.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/leapstack-labs/docguard/internal/cli/commands"
	"github.com/leapstack-labs/docguard/internal/cli/config"
	"github.com/leapstack-labs/docguard/internal/cli/output"
	"github.com/spf13/cobra"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "docguard",
		Short: "docguard - documentation maintenance checks",
		Long: `docguard keeps per-module documentation honest.

It validates the structure of the documentation files, checks the syntax of
embedded Mermaid diagrams, and detects which documents are stale after
recent source changes.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.LoadConfig(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			logger := config.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
			cmd.SetContext(config.WithLogger(cmd.Context(), logger))

			if configFile := config.GetConfigFileUsed(); configFile != "" {
				logger.Debug("using config file", "path", configFile)
			}
			logger.Debug("repository root", "path", cfg.Root)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: <root>/.docguard.yaml)")
	rootCmd.PersistentFlags().String("root", "", "Repository root (default: current directory)")
	rootCmd.PersistentFlags().String("format", "", "Output format (auto|text|markdown|json)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")

	_ = rootCmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return output.Modes(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.MarkPersistentFlagDirname("root")

	rootCmd.AddCommand(commands.NewCheckStructureCommand())
	rootCmd.AddCommand(commands.NewCheckDiagramsCommand())
	rootCmd.AddCommand(commands.NewCheckCommand())
	rootCmd.AddCommand(commands.NewSyncCommand())
	rootCmd.AddCommand(commands.NewRulesCommand())
	rootCmd.AddCommand(commands.NewModulesCommand())
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(commands.NewVersionCommand(Version, GitCommit, BuildDate))
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	rootCmd := NewRootCmd()
	err := rootCmd.Execute()
	if err != nil {
		var exitErr *commands.ExitError
		if !errors.As(err, &exitErr) || !exitErr.Silent {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
	return ExitCode(err)
}

// ExitCode maps a command error to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *commands.ExitError
	if errors.As(err, &exitErr) && exitErr.Code != 0 {
		return exitErr.Code
	}
	return 1
}

// NewCompletionCommand creates the completion command.
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for docguard.

To load completions:

Bash:
  $ source <(docguard completion bash)

Zsh:
  $ docguard completion zsh > "${fpath[1]}/_docguard"

Fish:
  $ docguard completion fish | source

PowerShell:
  PS> docguard completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
	return cmd
}
