// Package main implements a CLI tool that derives a semantic version from
// the current git checkout and optionally cuts a release.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	grelly "github.com/maotv/grelly/pkg"
)

func newRootCmd() *cobra.Command {
	var (
		gitPath string
		release bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "grelly",
		Short: "Derive a semantic version from the branch name and commit history",
		Long: `grelly derives a deterministic semantic version for the current git
checkout from two signals: the branch name and the commit history since the
last release point (a "release: x.y.z" commit or a version tag).

By default it prints the derived version, e.g. "1.4.3" on main three commits
after the 1.4.0 release, or "1.4.3-login" on feature/login. With --release it
bumps the minor version, commits a changelog stub as "release: x.y.0", and
tags the new commit.`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []grelly.Option
			if verbose {
				opts = append(opts, grelly.WithTracer(func(format string, traceArgs ...any) {
					fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", traceArgs...)
				}))
			}

			repo, err := grelly.Open(gitPath, opts...)
			if err != nil {
				return err
			}

			if release {
				_, err := repo.Release()
				return err
			}

			v, err := repo.Version()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}

	cmd.Flags().StringVarP(&gitPath, "git", "g", ".", "Path to the git repository")
	cmd.Flags().BoolVarP(&release, "release", "r", false, "Cut a release: bump the minor version, commit a changelog stub, and tag it")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print diagnostic trace lines to stderr")

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
