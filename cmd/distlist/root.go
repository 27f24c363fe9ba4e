package main

import (
	"fmt"
	"os"

	"distlist/internal/config"
	"distlist/internal/lister"
	"distlist/internal/logger"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	root       string
	strip      string
	verbose    bool
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "distlist",
		Short: "Print every file under dist/ as a quoted list entry",
		Long: `Walks the dist directory and prints each file path, with backslashes turned
into forward slashes and the first "dist/" removed, as 'path', so the output can
be pasted straight into a list literal.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New(cmd.ErrOrStderr(), opts.verbose)

			cfg, err := config.Load(fs, opts.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("root") {
				cfg.Root = opts.root
			}
			if cmd.Flags().Changed("strip") {
				cfg.Strip = opts.strip
			}

			l := lister.New(fs, cfg, log)
			if _, err := l.Run(cmd.Context(), cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("failed to list files: %w", err)
			}
			return nil
		},
	}

	def := config.Default()
	cmd.Flags().StringVar(&opts.configPath, "config", config.DefaultFile, "Optional TOML config file")
	cmd.Flags().StringVar(&opts.root, "root", def.Root, "Directory to walk")
	cmd.Flags().StringVar(&opts.strip, "strip", def.Strip, "Substring removed once from each path")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug output to stderr")
	return cmd
}

// Execute runs the CLI
func Execute() {
	if err := newRootCmd(afero.NewOsFs()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
