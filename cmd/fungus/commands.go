package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phR0ze/fungus-sub000/pkg/config"
	"github.com/phR0ze/fungus-sub000/pkg/logging"
	"github.com/phR0ze/fungus-sub000/pkg/path"
)

func addResolutionCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(newAbsCmd())
	rootCmd.AddCommand(newCleanCmd())
	rootCmd.AddCommand(newExpandCmd())
	rootCmd.AddCommand(newRelCmd())
	rootCmd.AddCommand(newAbsfromCmd())
	rootCmd.AddCommand(newMashCmd())
	rootCmd.AddCommand(newTrimCmd())
	rootCmd.AddCommand(newFirstCmd())
	rootCmd.AddCommand(newLastCmd())
	rootCmd.AddCommand(newInfoCmd())
	rootCmd.AddCommand(newGenconfigCmd())
}

func newAbsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "abs PATH",
		Short: "Resolve a path to its absolute form",
		Long: `Resolve a path to its absolute, cleaned form. Tilde and $VAR
references are expanded, protocol prefixes like file:// are dropped and
relative paths are anchored at the current working directory. The path
does not need to exist.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.abs")
			logger.Debug().Str("path", args[0]).Msg("Resolving path")

			abs, err := path.Abs(args[0], resolver)
			if err != nil {
				return err
			}
			return renderer.RenderPath(abs)
		},
	}
}

func newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean PATH",
		Short: "Normalize a path lexically",
		Long: `Normalize a path by collapsing duplicate separators, dropping
unneeded current-dir components and cancelling parent-dir references
against named segments. Leading parent-dir chains on relative paths are
preserved.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderer.RenderPath(path.Clean(args[0]))
		},
	}
}

func newExpandCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "expand PATH",
		Short: "Expand tilde and variable references",
		Long: `Expand a leading ~ to the home directory and $NAME or ${NAME}
segments to their values. Variables configured under [expand.vars] are
consulted before the process environment. Expansion is a single pass;
values are substituted verbatim.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expanded, err := path.Expand(args[0], resolver)
			if err != nil {
				return err
			}
			return renderer.RenderPath(expanded)
		},
	}
}

func newRelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rel PATH BASE",
		Short: "Express a path relative to a base",
		Long: `Express PATH relative to BASE. Both are resolved to absolute form
first, then the shared prefix is stripped and parent-dir hops are
emitted for the remainder of BASE.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rel, err := path.RelativeFrom(args[0], args[1], resolver)
			if err != nil {
				return err
			}
			return renderer.RenderPath(rel)
		},
	}
}

func newAbsfromCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "absfrom PATH BASE",
		Short: "Resolve a path against a base file",
		Long: `Resolve PATH against BASE, treating BASE's final component as a
filename. A relative PATH lands beside that file; leading parent-dir
references climb out of its directory first.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			abs, err := path.AbsFrom(args[0], args[1], resolver)
			if err != nil {
				return err
			}
			return renderer.RenderPath(abs)
		},
	}
}

func newMashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mash DIR PATH",
		Short: "Join two paths",
		Long: `Join DIR and PATH into one path. PATH's root marker is dropped so
an absolute PATH extends DIR instead of replacing it. Parent-dir
references are kept as-is, never cancelled.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderer.RenderPath(path.Mash(args[0], args[1]))
		},
	}
}

func newTrimCmd() *cobra.Command {
	var (
		trimFirst    bool
		trimLast     bool
		trimExt      bool
		trimProtocol bool
		trimPrefix   string
		trimSuffix   string
	)

	cmd := &cobra.Command{
		Use:   "trim PATH",
		Short: "Trim pieces off a path",
		Long: `Trim pieces off a path: the first or last component, a literal
prefix or suffix, the final extension or a protocol prefix such as
file://. Flags apply in the order listed and may be combined.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := args[0]
			if trimProtocol {
				s = path.TrimProtocol(s)
			}
			if trimPrefix != "" {
				s = path.TrimPrefix(s, trimPrefix)
			}
			if trimSuffix != "" {
				s = path.TrimSuffix(s, trimSuffix)
			}
			if trimFirst {
				s = path.TrimFirst(s)
			}
			if trimLast {
				s = path.TrimLast(s)
			}
			if trimExt {
				s = path.TrimExt(s)
			}
			return renderer.RenderPath(s)
		},
	}

	cmd.Flags().BoolVar(&trimFirst, "first", false, "Drop the first component")
	cmd.Flags().BoolVar(&trimLast, "last", false, "Drop the last component")
	cmd.Flags().BoolVar(&trimExt, "ext", false, "Drop the final extension")
	cmd.Flags().BoolVar(&trimProtocol, "protocol", false, "Drop a protocol prefix like file://")
	cmd.Flags().StringVar(&trimPrefix, "prefix", "", "Drop the given literal prefix")
	cmd.Flags().StringVar(&trimSuffix, "suffix", "", "Drop the given literal suffix")

	return cmd
}

func newFirstCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "first PATH",
		Short: "Print the first path component",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			comp, err := path.First(args[0])
			if err != nil {
				return err
			}
			return renderer.RenderValue(comp.String())
		},
	}
}

func newLastCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "last PATH",
		Short: "Print the last path component",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			comp, err := path.Last(args[0])
			if err != nil {
				return err
			}
			return renderer.RenderValue(comp.String())
		},
	}
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info PATH",
		Short: "Show the parts of a path",
		Long: `Show the parts of a path: its absolute form, directory, filename,
name without extension and extension. Parts that do not apply are shown
as "-".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			abs, err := path.Abs(args[0], resolver)
			if err != nil {
				return err
			}

			part := func(val string, err error) string {
				if err != nil {
					return "-"
				}
				return val
			}

			dir, derr := path.Dir(abs)
			base, berr := path.Base(abs)
			name, nerr := path.Name(abs)
			ext, eerr := path.Ext(abs)

			return renderer.RenderPairs([][2]string{
				{"abs", abs},
				{"dir", part(dir, derr)},
				{"base", part(base, berr)},
				{"name", part(name, nerr)},
				{"ext", part(ext, eerr)},
			})
		},
	}
}

func newGenconfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "genconfig",
		Short: "Print the current configuration as TOML",
		Long: `Print the merged configuration as TOML, suitable for seeding
~/.config/fungus/fungus.toml. Defaults, the user config file and
FUNGUS_* environment overrides are all reflected.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rendered, err := config.Generate(cfg)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}
}
