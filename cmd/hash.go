package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gorel/pkg/hashutil"
)

var hashCmd = &cobra.Command{
	Use:   "hash <path>...",
	Short: "Print the MD5 digest of files or directories",
	Long: "Print the MD5 digest of each path. Directories are hashed recursively: " +
		"entry names and file contents both feed the digest, so a rename changes it",
	Args: cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		for _, path := range args {
			info, err := os.Stat(path)
			if err != nil {
				return err
			}
			var sum string
			if info.IsDir() {
				sum, err = hashutil.MD5Dir(path)
			} else {
				sum, err = hashutil.MD5File(path)
			}
			if err != nil {
				return err
			}
			fmt.Printf("%s  %s\n", sum, path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(hashCmd)
}
