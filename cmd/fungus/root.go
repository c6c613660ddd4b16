package main

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/phR0ze/fungus-sub000/pkg/cobrax/topics"
	"github.com/phR0ze/fungus-sub000/pkg/config"
	"github.com/phR0ze/fungus-sub000/pkg/logging"
	"github.com/phR0ze/fungus-sub000/pkg/output"
	"github.com/phR0ze/fungus-sub000/pkg/path"
	"github.com/phR0ze/fungus-sub000/pkg/sys"
)

//go:embed docs/*.md
var docsFS embed.FS

// Populated by PersistentPreRunE for every command
var (
	cfg      *config.Config
	resolver path.System
	renderer *output.Renderer
)

// NewRootCmd builds the fungus command tree. Commands are constructed
// fresh on every call so no flag state leaks between executions.
func NewRootCmd() *cobra.Command {
	var (
		verbosity  int
		noColor    bool
		configFile string
	)

	rootCmd := &cobra.Command{
		Use:   "fungus",
		Short: "A lexical path resolution toolkit",
		Long: `fungus resolves, cleans, expands and relativizes filesystem paths
without touching the filesystem. Symlinks are never followed and paths
need not exist; resolution is purely lexical.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.LoadFrom(configFile)
			if err != nil {
				return err
			}

			// The flag wins over the configured verbosity
			effective := verbosity
			if effective == 0 {
				effective = cfg.Logging.Verbosity
			}
			logging.SetupLogger(effective)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			resolver = sys.WithVars(sys.OS{}, cfg.Expand.Vars)

			colorMode := cfg.Output.Color
			if noColor {
				colorMode = "never"
			}
			renderer = output.NewRenderer(cmd.OutOrStdout(),
				!output.UseColor(colorMode, os.Stdout))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default is $HOME/.config/fungus/fungus.toml)")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd(rootCmd))
	addResolutionCommands(rootCmd)

	// Topic help rendered with glamour
	docs, err := fs.Sub(docsFS, "docs")
	if err == nil {
		err = topics.InitializeWithOptions(rootCmd, docs, topics.Options{
			Renderer: topics.NewGlamourRenderer(),
		})
	}
	if err != nil {
		// Help topics are non-essential, command help still works
		fmt.Fprintln(os.Stderr, "warning: help topics unavailable:", err)
	}

	return rootCmd
}

// Execute runs the command tree. This is called by main.main().
func Execute() error {
	if err := NewRootCmd().Execute(); err != nil {
		errRenderer := output.NewRenderer(os.Stderr, !output.UseColor("auto", os.Stderr))
		_ = errRenderer.RenderError(err)
		return err
	}
	return nil
}

func init() {
	initTemplateFormatting()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print version information for fungus`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "fungus version %s\n", version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", commit)
			fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `To load completions:

Bash:
  $ source <(fungus completion bash)
  # To load completions for each session, execute once:
  # Linux:
  $ fungus completion bash > /etc/bash_completion.d/fungus
  # macOS:
  $ fungus completion bash > /usr/local/etc/bash_completion.d/fungus

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it.  You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc
  # To load completions for each session, execute once:
  $ fungus completion zsh > "${fpath[1]}/_fungus"
  # You will need to start a new shell for this setup to take effect.

Fish:
  $ fungus completion fish | source
  # To load completions for each session, execute once:
  $ fungus completion fish > ~/.config/fish/completions/fungus.fish

PowerShell:
  PS> fungus completion powershell | Out-String | Invoke-Expression
  # To load completions for every new session, run:
  PS> fungus completion powershell > fungus.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Run: func(cmd *cobra.Command, args []string) {
			switch args[0] {
			case "bash":
				if err := cmd.Root().GenBashCompletion(cmd.OutOrStdout()); err != nil {
					log.Error().Err(err).Msg("Failed to generate bash completion")
				}
			case "zsh":
				if err := cmd.Root().GenZshCompletion(cmd.OutOrStdout()); err != nil {
					log.Error().Err(err).Msg("Failed to generate zsh completion")
				}
			case "fish":
				if err := cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true); err != nil {
					log.Error().Err(err).Msg("Failed to generate fish completion")
				}
			case "powershell":
				if err := cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout()); err != nil {
					log.Error().Err(err).Msg("Failed to generate powershell completion")
				}
			}
		},
	}
}

func newManCmd(rootCmd *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:   "man",
		Short: "Generate man page",
		Long:  `Generate man page for fungus`,
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "FUNGUS",
				Section: "1",
			}
			return doc.GenManTree(rootCmd, header, "/tmp")
		},
	}
}
