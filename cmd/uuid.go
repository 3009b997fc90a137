package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"gorel/pkg/randutil"
)

var uuidCount int

var uuidCmd = &cobra.Command{
	Use:   "uuid",
	Short: "Print random UUIDs",
	Run: func(_ *cobra.Command, args []string) {
		for i := 0; i < uuidCount; i++ {
			fmt.Println(randutil.SafeUUID())
		}
	},
}

func init() {
	uuidCmd.Flags().IntVarP(&uuidCount, "count", "n", 1, "how many UUIDs to print")
	rootCmd.AddCommand(uuidCmd)
}
