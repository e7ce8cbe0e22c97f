package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosteel/internal/code"
)

var gradesCmd = &cobra.Command{
	Use:   "grades",
	Short: "List the steel grades and their strength brackets",
	Long: `Print the table B.7 steel grades with their normative strengths
per thickness bracket and the material reliability factor γm.

Design strength is Ry = Ryn/γm; the bracket is selected by the
governing plate thickness (flange thickness for rolled shapes).`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("STEEL GRADES PER GOST 27772 (SP 16.13330.2017, table B.7):")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "  Grade\tt ≤ (mm)\tRyn (MPa)\tRun (MPa)\tRy (MPa)")
		for _, g := range code.Grades() {
			brackets, err := code.GradeBrackets(g)
			if err != nil {
				continue
			}
			st, _ := code.ResolveStrength(g, 1)
			for i, b := range brackets {
				name := ""
				if i == 0 {
					name = g
				}
				fmt.Fprintf(w, "  %s\t%.0f\t%.0f\t%.0f\t%.1f\n",
					name, b.MaxThickness, b.Ryn, b.Run, b.Ryn/st.GammaM)
			}
		}
		w.Flush()
		fmt.Println()
		fmt.Println("  Ry = Ryn/γm (γm = 1.025, C390: 1.05); Rs = 0.58·Ry.")
		fmt.Println()
	},
}

func init() {
	rootCmd.AddCommand(gradesCmd)
}
