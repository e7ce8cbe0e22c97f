package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gosteel/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gosteel",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gosteel v%s\n", version.Version)
		fmt.Println("Steel Member Verification Tool")
		fmt.Println("Based on SP 16.13330.2017 (Steel structures)")
		if version.GitCommit != "unknown" {
			fmt.Printf("commit %s, built %s\n", version.GitCommit, version.BuildTime)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
