package cmd

import (
	"fmt"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"gorel/internal/config"
	"gorel/internal/db"
	"gorel/internal/git"
	"gorel/internal/release"
	"gorel/internal/utils"
	"gorel/pkg/procutil"
)

var (
	bumpDryRun     bool
	bumpAllowDirty bool
	bumpNoTag      bool
	bumpForce      bool
	bumpMessage    string
	bumpNotes      string
	bumpDir        string
)

var bumpCmd = &cobra.Command{
	Use:   "bump <major|minor|patch|version>",
	Short: "Bump the project version, commit, and tag",
	Long: "Bump rewrites the version in every file listed in .gorel.yaml, commits the change, " +
		"and creates an annotated tag whose name matches the new version",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := config.LoadManifest(bumpDir)
		if err != nil {
			return err
		}
		engine := release.NewEngine(m)
		plan, err := engine.Plan(args[0], bumpForce)
		if err != nil {
			return err
		}

		if bumpDryRun {
			printPlan(plan)
			return nil
		}

		if semver.MustParse(plan.Next).LessThan(semver.MustParse(plan.Current)) {
			if !utils.Confirm(fmt.Sprintf("downgrade %s to %s?", plan.Current, plan.Next)) {
				return fmt.Errorf("aborted")
			}
		}

		ctx := cmd.Context()
		repo := git.New(procutil.New(false, false), m.Dir)

		if !bumpAllowDirty {
			clean, err := repo.IsClean(ctx)
			if err != nil {
				return err
			}
			if !clean {
				return fmt.Errorf("working tree is dirty (use --allow-dirty to bump anyway)")
			}
		}
		if !bumpNoTag {
			exists, err := repo.TagExists(ctx, plan.Tag)
			if err != nil {
				return err
			}
			if exists {
				return fmt.Errorf("tag %s already exists", plan.Tag)
			}
		}

		sp := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
		sp.Suffix = fmt.Sprintf(" Releasing %s...", plan.Next)
		sp.Start()
		defer sp.Stop()

		if err := engine.Apply(plan); err != nil {
			return err
		}

		paths := make([]string, 0, len(plan.Files))
		for _, fv := range plan.Files {
			paths = append(paths, fv.File.Path)
		}
		if err := repo.Add(ctx, paths...); err != nil {
			return err
		}
		message := plan.CommitMessage
		if bumpMessage != "" {
			message = m.RenderMessage(bumpMessage, plan.Next)
		}
		if err := repo.Commit(ctx, message); err != nil {
			return err
		}
		if !bumpNoTag {
			if err := repo.TagAnnotated(ctx, plan.Tag, plan.TagMessage); err != nil {
				return err
			}
		}
		head, err := repo.Head(ctx)
		if err != nil {
			return err
		}

		dbConn, err := db.InitDB()
		if err != nil {
			return err
		}
		defer func() { _ = dbConn.Close() }()
		if _, err := release.NewHistory(dbConn).Record(plan.Next, plan.Tag, head, bumpNotes); err != nil {
			return err
		}

		sp.Stop()
		fmt.Printf("released %s (%s -> %s)\n", plan.Tag, plan.Current, plan.Next)
		return nil
	},
}

func printPlan(p *release.Plan) {
	fmt.Printf("current: %s\n", p.Current)
	fmt.Printf("next:    %s\n", p.Next)
	fmt.Printf("tag:     %s\n", p.Tag)
	fmt.Printf("commit:  %s\n", p.CommitMessage)
	for _, fv := range p.Files {
		fmt.Printf("file:    %s (%s)\n", fv.File.Path, fv.Version)
	}
}

func init() {
	bumpCmd.Flags().BoolVar(&bumpDryRun, "dry-run", false, "print the plan without touching files or git")
	bumpCmd.Flags().BoolVar(&bumpAllowDirty, "allow-dirty", false, "bump even when the working tree has changes")
	bumpCmd.Flags().BoolVar(&bumpNoTag, "no-tag", false, "commit the bump but skip tag creation")
	bumpCmd.Flags().BoolVar(&bumpForce, "force", false, "allow an explicit version that is not greater than the current one")
	bumpCmd.Flags().StringVarP(&bumpMessage, "message", "m", "", "override the commit message ({version} and {tag} expand)")
	bumpCmd.Flags().StringVar(&bumpNotes, "notes", "", "notes to store in the release history")
	bumpCmd.Flags().StringVarP(&bumpDir, "dir", "C", ".", "project directory containing .gorel.yaml")
	rootCmd.AddCommand(bumpCmd)
}
