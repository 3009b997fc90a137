package cmd

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"gorel/internal/db"
	"gorel/internal/exporter"
	"gorel/internal/importer"
	"gorel/internal/release"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past releases",
	Long:  "Show past releases recorded by bump: version, tag, commit, and when they happened",
	RunE: func(_ *cobra.Command, args []string) error {
		dbConn, err := db.InitDB()
		if err != nil {
			return err
		}
		defer func() { _ = dbConn.Close() }()

		recs, err := release.NewHistory(dbConn).List(historyLimit)
		if err != nil {
			return err
		}
		if len(recs) == 0 {
			fmt.Println("no releases recorded")
			return nil
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Version", "Tag", "Commit", "When", "Notes"})
		for _, r := range recs {
			commit := r.CommitHash
			if len(commit) > 8 {
				commit = commit[:8]
			}
			when := ""
			if !r.CreatedAt.IsZero() {
				when = humanize.Time(r.CreatedAt)
			}
			t.AppendRow(table.Row{r.Version, r.Tag, commit, when, r.Notes})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
		return nil
	},
}

var historyExportCmd = &cobra.Command{
	Use:   "export <path>",
	Short: "Export release history to a standalone SQLite file",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		dbConn, err := db.InitDB()
		if err != nil {
			return err
		}
		defer func() { _ = dbConn.Close() }()

		if err := exporter.ExportReleases(dbConn, args[0]); err != nil {
			return err
		}
		fmt.Printf("exported release history to %s\n", args[0])
		return nil
	},
}

var historyImportCmd = &cobra.Command{
	Use:   "import <path>",
	Short: "Merge release history from an exported SQLite file",
	Long:  "Merge release history from an exported SQLite file. Releases whose tag is already recorded are skipped",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		dbConn, err := db.InitDB()
		if err != nil {
			return err
		}
		defer func() { _ = dbConn.Close() }()

		added, err := importer.ImportReleases(dbConn, args[0])
		if err != nil {
			return err
		}
		fmt.Printf("imported %d release(s) from %s\n", added, args[0])
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "show at most this many releases (0 for all)")
	historyCmd.AddCommand(historyExportCmd, historyImportCmd)
	rootCmd.AddCommand(historyCmd)
}
