package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gosteel/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gosteel",
	Short: "Steel Member Verification Tool",
	Long: `gosteel - Go Steel Member Verifier

A CLI tool for the verification of steel structural members
based on SP 16.13330.2017 "Steel structures".

This tool helps structural engineers perform:
  - Strength checks (axial, bending, combined)
  - Flexural buckling of compression members
  - Lateral-torsional buckling of bending members
  - Local stability of plate elements
  - Web shear checks

Sections come from the GOST rolled-shape catalogs or from
explicit plate dimensions.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gosteel v%-47s║\n", version.Version)
		fmt.Println("  ║   Go Steel Member Verifier                                ║")
		fmt.Printf("  ║   Alexius S. Academia ©  %-33s║\n", version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the verification of steel structural members")
		fmt.Println("  per SP 16.13330.2017 \"Steel structures\".")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Strength, buckling, shear and local-stability checks")
		fmt.Println("    • GOST 8239 / 8240 / 8509 rolled-shape catalogs")
		fmt.Println("    • Eight load-case types, each with its bound check set")
		fmt.Println("    • Buckling-curve charts and utilization diagrams")
		fmt.Println()
		fmt.Println("  Use 'gosteel --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
