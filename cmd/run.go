package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"gorel/internal/security"
	"gorel/pkg/procutil"
	"gorel/pkg/timing"
)

var (
	runDir    string
	runShell  string
	runDryRun bool
	runTimed  bool
	runUnsafe bool
)

var runCmd = &cobra.Command{
	Use:   "run <command>...",
	Short: "Run a shell command through the release executor",
	Long: "Run a command the way bump runs git: sanitized, validated, and through the " +
		"configured shell. Useful for trying out commands a release hook will run",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		command := procutil.Sanitize(strings.Join(args, " "))
		if err := procutil.ValidateCommand(command); err != nil {
			return err
		}
		if !runUnsafe {
			if err := security.CheckAllowed(command); err != nil {
				return fmt.Errorf("%w (use --unsafe to run anyway)", err)
			}
		}

		exec := &procutil.Executor{DryRun: runDryRun, Verbose: runDryRun, Shell: runShell}
		if runTimed {
			defer timing.Measure("run")()
		}
		return exec.Execute(cmd.Context(), command, runDir, os.Stdout, os.Stderr)
	},
}

func init() {
	runCmd.Flags().StringVarP(&runDir, "dir", "C", "", "working directory for the command")
	runCmd.Flags().StringVar(&runShell, "shell", "", "shell to run the command with")
	runCmd.Flags().BoolVar(&runDryRun, "dry-run", false, "print the command instead of running it")
	runCmd.Flags().BoolVar(&runTimed, "time", false, "report how long the command took")
	runCmd.Flags().BoolVar(&runUnsafe, "unsafe", false, "skip the destructive-command check")
	rootCmd.AddCommand(runCmd)
}
