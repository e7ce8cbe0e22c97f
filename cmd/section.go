package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosteel/internal/profile"
)

var (
	sectionShape       string
	sectionDesignation string
	sectionHeight      float64
	sectionWidth       float64
	sectionTw          float64
	sectionTf          float64
	sectionThk         float64
	sectionDia         float64
	sectionJSON        bool
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Compute geometric properties of a section",
	Long: `Resolve a section to its geometric properties: area, moments of
inertia, section moduli, radii of gyration and torsion constants.

Catalog designations take precedence over explicit dimensions.

Examples:
  # GOST 8239 rolled I-beam
  gosteel section --shape ibeam --designation I-30

  # Welded I-section from plate dimensions
  gosteel section --shape ibeam --height 400 --width 200 --tw 8 --tf 12

  # Circular hollow section
  gosteel section --shape circ_tube --dia 219 --thk 8`,
	RunE: runSection,
}

var sectionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the catalog designations of a shape",
	RunE: func(cmd *cobra.Command, args []string) error {
		shape, err := parseShape(sectionShape)
		if err != nil {
			return err
		}
		names := profile.Designations(shape)
		if len(names) == 0 {
			return fmt.Errorf("shape %q has no standard catalog", shape)
		}
		for _, n := range names {
			fmt.Println(n)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sectionCmd)
	sectionCmd.AddCommand(sectionListCmd)

	sectionCmd.PersistentFlags().StringVar(&sectionShape, "shape", "ibeam", "Section shape: ibeam, channel, angle, rect_tube, circ_tube, rectangle")
	sectionCmd.Flags().StringVarP(&sectionDesignation, "designation", "D", "", "GOST catalog designation")
	sectionCmd.Flags().Float64Var(&sectionHeight, "height", 0, "Overall depth h (mm)")
	sectionCmd.Flags().Float64Var(&sectionWidth, "width", 0, "Flange width / leg / overall width b (mm)")
	sectionCmd.Flags().Float64Var(&sectionTw, "tw", 0, "Web thickness (mm)")
	sectionCmd.Flags().Float64Var(&sectionTf, "tf", 0, "Flange thickness (mm)")
	sectionCmd.Flags().Float64Var(&sectionThk, "thk", 0, "Wall/leg thickness t (mm)")
	sectionCmd.Flags().Float64Var(&sectionDia, "dia", 0, "Outer diameter (mm, circular tubes)")
	sectionCmd.Flags().BoolVar(&sectionJSON, "json", false, "Emit the properties as JSON")
}

func runSection(cmd *cobra.Command, args []string) error {
	shape, err := parseShape(sectionShape)
	if err != nil {
		return err
	}
	prof := &profile.SectionProfile{
		Shape:       shape,
		Designation: sectionDesignation,
		H:           sectionHeight,
		B:           sectionWidth,
		Tw:          sectionTw,
		Tf:          sectionTf,
		T:           sectionThk,
		D:           sectionDia,
	}
	props, err := profile.Resolve(prof)
	if err != nil {
		return err
	}

	if sectionJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(props)
	}

	fmt.Println()
	fmt.Println("SECTION PROPERTIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Shape:\t%s\n", prof.Shape)
	if prof.Designation != "" {
		fmt.Fprintf(w, "  Designation:\t%s (catalog)\n", prof.Designation)
	}
	fmt.Fprintf(w, "  Area (A):\t%.1f mm²\n", props.A)
	fmt.Fprintf(w, "  Ix:\t%.4e mm⁴\n", props.Ix)
	fmt.Fprintf(w, "  Iy:\t%.4e mm⁴\n", props.Iy)
	fmt.Fprintf(w, "  Wx:\t%.4e mm³\n", props.Wx)
	fmt.Fprintf(w, "  Wy:\t%.4e mm³\n", props.Wy)
	fmt.Fprintf(w, "  Sx:\t%.4e mm³\n", props.Sx)
	fmt.Fprintf(w, "  ix:\t%.2f mm\n", props.Rx)
	fmt.Fprintf(w, "  iy:\t%.2f mm\n", props.Ry)
	fmt.Fprintf(w, "  i_min:\t%.2f mm\n", props.RMin)
	fmt.Fprintf(w, "  It:\t%.4e mm⁴\n", props.It)
	if props.Iw > 0 {
		fmt.Fprintf(w, "  Iw:\t%.4e mm⁶\n", props.Iw)
	}
	fmt.Fprintf(w, "  Af / Aw:\t%.1f / %.1f mm²\n", props.Af, props.Aw)
	w.Flush()
	if props.TorsionApprox {
		fmt.Println()
		fmt.Println("  Note: It is a thin-walled approximation (Σb·t³/3).")
	}
	fmt.Println()
	return nil
}
