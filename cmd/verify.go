package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosteel/internal/check"
	"github.com/alexiusacademia/gosteel/internal/code"
	"github.com/alexiusacademia/gosteel/internal/diagram"
	"github.com/alexiusacademia/gosteel/internal/load"
	"github.com/alexiusacademia/gosteel/internal/profile"
	"github.com/alexiusacademia/gosteel/internal/report"
)

var (
	// Section inputs
	verifyShape       string
	verifyDesignation string
	verifyHeight      float64
	verifyWidth       float64
	verifyTw          float64
	verifyTf          float64
	verifyThk         float64
	verifyDia         float64

	// Material inputs
	verifyGrade  string
	verifyGammaC float64

	// Load inputs
	verifyLoad    string
	verifyN       float64
	verifyMx      float64
	verifyMy      float64
	verifyQ       float64
	verifyEx      float64
	verifyEy      float64
	verifyLength  float64
	verifySupport string
	verifyMuX     float64
	verifyMuY     float64

	// Output options
	verifyJSON  bool
	verifyChart string
	verifyCurve bool
)

var (
	passBadge = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#04B575")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#04B575")).
			Padding(0, 3)
	failBadge = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF5F56")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#FF5F56")).
			Padding(0, 3)
	eventStyle = lipgloss.NewStyle().Faint(true)
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify a steel member against SP 16.13330.2017",
	Long: `Run the full verification of a steel member: the load-case type
selects the applicable check set (strength, shear, flexural buckling,
lateral-torsional buckling, local stability, interaction).

Sections come from a GOST catalog designation or explicit dimensions.

Examples:
  # Catalog I-beam column, 500 kN over 1.0 m pinned-pinned
  gosteel verify --shape ibeam --designation I-20 --grade C245 \
    --load compression --n 500 --length 1.0 --support pinned

  # Welded I-section beam, strong-axis moment with shear
  gosteel verify --shape ibeam --height 400 --width 200 --tw 8 --tf 12 \
    --grade C255 --load bending --mx 120 --q 80 --length 4 --support pinned

  # Eccentric compression on a channel
  gosteel verify --shape channel --designation C-20 --grade C245 \
    --load eccentric-compression --n 150 --ey 50 --length 3 --support fixed`,
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	// Section flags
	verifyCmd.Flags().StringVar(&verifyShape, "shape", "ibeam", "Section shape: ibeam, channel, angle, rect_tube, circ_tube, rectangle")
	verifyCmd.Flags().StringVarP(&verifyDesignation, "designation", "D", "", "GOST catalog designation (e.g. I-20, C-14, L63x5)")
	verifyCmd.Flags().Float64Var(&verifyHeight, "height", 0, "Overall depth h (mm)")
	verifyCmd.Flags().Float64Var(&verifyWidth, "width", 0, "Flange width / leg / overall width b (mm)")
	verifyCmd.Flags().Float64Var(&verifyTw, "tw", 0, "Web thickness (mm)")
	verifyCmd.Flags().Float64Var(&verifyTf, "tf", 0, "Flange thickness (mm)")
	verifyCmd.Flags().Float64Var(&verifyThk, "thk", 0, "Wall/leg thickness t (mm)")
	verifyCmd.Flags().Float64Var(&verifyDia, "dia", 0, "Outer diameter (mm, circular tubes)")

	// Material flags
	verifyCmd.Flags().StringVar(&verifyGrade, "grade", "C245", "Steel grade per GOST 27772")
	verifyCmd.Flags().Float64Var(&verifyGammaC, "gamma-c", 1.0, "Service factor γc")

	// Load flags
	verifyCmd.Flags().StringVar(&verifyLoad, "load", "", "Load type: compression, tension, bending, biaxial-bending, eccentric-compression, eccentric-tension, shear, combined [required]")
	verifyCmd.Flags().Float64Var(&verifyN, "n", 0, "Axial force N (kN)")
	verifyCmd.Flags().Float64Var(&verifyMx, "mx", 0, "Strong-axis moment Mx (kN·m)")
	verifyCmd.Flags().Float64Var(&verifyMy, "my", 0, "Weak-axis moment My (kN·m)")
	verifyCmd.Flags().Float64Var(&verifyQ, "q", 0, "Shear force Q (kN)")
	verifyCmd.Flags().Float64Var(&verifyEx, "ex", 0, "Eccentricity along x (mm, adds to My)")
	verifyCmd.Flags().Float64Var(&verifyEy, "ey", 0, "Eccentricity along y (mm, adds to Mx)")
	verifyCmd.Flags().Float64VarP(&verifyLength, "length", "l", 0, "Member geometric length (m)")
	verifyCmd.Flags().StringVar(&verifySupport, "support", "pinned", "Support condition: cantilever, pinned, fixed, fixed-pinned")
	verifyCmd.Flags().Float64Var(&verifyMuX, "mux", 0, "Explicit effective-length factor, x axis (overrides support)")
	verifyCmd.Flags().Float64Var(&verifyMuY, "muy", 0, "Explicit effective-length factor, y axis (overrides support)")

	// Output flags
	verifyCmd.Flags().BoolVar(&verifyJSON, "json", false, "Emit the full report as JSON")
	verifyCmd.Flags().StringVar(&verifyChart, "chart", "", "Export a chart image (buckling curve or utilization) to this file")
	verifyCmd.Flags().BoolVar(&verifyCurve, "curve", false, "Print the buckling curve as an ASCII sparkline")

	verifyCmd.MarkFlagRequired("load")
}

func parseShape(s string) (profile.Shape, error) {
	for _, sh := range profile.Shapes() {
		if s == string(sh) {
			return sh, nil
		}
	}
	return "", fmt.Errorf("unknown section shape %q", s)
}

func buildProfile() (*profile.SectionProfile, error) {
	shape, err := parseShape(verifyShape)
	if err != nil {
		return nil, err
	}
	return &profile.SectionProfile{
		Shape:       shape,
		Designation: verifyDesignation,
		H:           verifyHeight,
		B:           verifyWidth,
		Tw:          verifyTw,
		Tf:          verifyTf,
		T:           verifyThk,
		D:           verifyDia,
	}, nil
}

func buildRawLoad() (load.Raw, error) {
	loadType, err := load.ParseType(verifyLoad)
	if err != nil {
		return load.Raw{}, err
	}
	support, err := load.ParseSupport(verifySupport)
	if err != nil {
		return load.Raw{}, err
	}
	return load.Raw{
		Type:    loadType,
		N:       verifyN,
		Mx:      verifyMx,
		My:      verifyMy,
		Q:       verifyQ,
		Ex:      verifyEx,
		Ey:      verifyEy,
		Length:  verifyLength,
		Support: support,
		MuX:     verifyMuX,
		MuY:     verifyMuY,
	}, nil
}

func runVerify(cmd *cobra.Command, args []string) error {
	prof, err := buildProfile()
	if err != nil {
		return err
	}
	raw, err := buildRawLoad()
	if err != nil {
		return err
	}

	eng := check.New(code.DefaultEdition())
	eng.GammaC = verifyGammaC

	v, err := eng.Verify(prof, verifyGrade, raw)
	if err != nil {
		return err
	}

	if verifyJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	printVerification(v)

	if verifyCurve && v.Buckling != nil {
		curve, letter := eng.Edition.CurveFor(prof.Shape)
		fmt.Printf("BUCKLING CURVE %q:\n", letter)
		fmt.Println(diagram.CurveSparkline(curve, v.Strength.Ry, v.Strength.E))
		fmt.Println()
	}

	if verifyChart != "" {
		if v.Buckling != nil {
			curve, letter := eng.Edition.CurveFor(prof.Shape)
			err = diagram.ExportBucklingCurve(curve, letter, v.Strength.Ry, v.Strength.E, v.Buckling, verifyChart)
		} else {
			err = diagram.ExportUtilization(v.Results, verifyChart)
		}
		if err != nil {
			return fmt.Errorf("chart export: %w", err)
		}
		fmt.Printf("  Chart written to %s\n\n", verifyChart)
	}
	return nil
}

func printVerification(v *report.Verification) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     STEEL MEMBER VERIFICATION - SP 16.13330.2017")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("SECTION:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Shape:\t%s\n", v.Profile.Shape)
	if v.Profile.Designation != "" {
		fmt.Fprintf(w, "  Designation:\t%s (catalog)\n", v.Profile.Designation)
	}
	fmt.Fprintf(w, "  Area (A):\t%.0f mm²\n", v.Props.A)
	fmt.Fprintf(w, "  Ix / Iy:\t%.3e / %.3e mm⁴\n", v.Props.Ix, v.Props.Iy)
	fmt.Fprintf(w, "  Wx / Wy:\t%.3e / %.3e mm³\n", v.Props.Wx, v.Props.Wy)
	fmt.Fprintf(w, "  ix / iy:\t%.1f / %.1f mm\n", v.Props.Rx, v.Props.Ry)
	w.Flush()
	fmt.Println()

	fmt.Println("MATERIAL:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Grade:\t%s\n", v.Strength.Grade)
	fmt.Fprintf(w, "  Ryn:\t%.0f MPa\n", v.Strength.Ryn)
	fmt.Fprintf(w, "  Ry = Ryn/γm:\t%.1f MPa (γm = %.3f)\n", v.Strength.Ry, v.Strength.GammaM)
	fmt.Fprintf(w, "  Rs:\t%.1f MPa\n", v.Strength.Rs)
	w.Flush()
	fmt.Println()

	fmt.Println("LOAD CASE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Type:\t%s\n", v.Case.Type)
	if v.Case.N > 0 {
		fmt.Fprintf(w, "  N:\t%.1f kN\n", v.Case.N/1e3)
	}
	if v.Case.Mx > 0 {
		fmt.Fprintf(w, "  Mx:\t%.1f kN·m\n", v.Case.Mx/1e6)
	}
	if v.Case.My > 0 {
		fmt.Fprintf(w, "  My:\t%.1f kN·m\n", v.Case.My/1e6)
	}
	if v.Case.Q > 0 {
		fmt.Fprintf(w, "  Q:\t%.1f kN\n", v.Case.Q/1e3)
	}
	if v.Case.Length > 0 {
		fmt.Fprintf(w, "  Length:\t%.2f m (μx = %.2f, μy = %.2f)\n", v.Case.Length/1e3, v.Case.MuX, v.Case.MuY)
	}
	w.Flush()
	fmt.Println()

	if v.Buckling != nil {
		fmt.Println("FLEXURAL BUCKLING:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  λx / λy:\t%.1f / %.1f\n", v.Buckling.LambdaX, v.Buckling.LambdaY)
		fmt.Fprintf(w, "  Governing axis:\t%s\n", v.Buckling.Axis)
		fmt.Fprintf(w, "  λ̄:\t%.3f\n", v.Buckling.LambdaBar)
		fmt.Fprintf(w, "  φ (curve %s):\t%.4f\n", v.Buckling.Curve, v.Buckling.Phi)
		w.Flush()
		fmt.Println()
	}

	fmt.Println("CHECK RESULTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, res := range v.Results {
		status := "✓"
		if !res.Pass {
			status = "✗"
		}
		fmt.Fprintf(w, "  %s %s:\tratio %.3f\t%s\n", status, res.Name, res.Ratio, res.Detail)
	}
	w.Flush()
	fmt.Println()
	fmt.Print(diagram.UtilizationBars(v.Results))
	fmt.Println()

	if len(v.Events) > 0 {
		fmt.Println("NOTES:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		for _, ev := range v.Events {
			fmt.Println(eventStyle.Render(fmt.Sprintf("  [%s] %s", ev.Code, ev.Detail)))
		}
		fmt.Println()
	}

	badge := passBadge
	verdict := fmt.Sprintf("PASS — governing check %q, ratio %.3f", v.Governing.Name, v.Governing.Ratio)
	if !v.Pass {
		badge = failBadge
		verdict = fmt.Sprintf("FAIL — governing check %q, ratio %.3f", v.Governing.Name, v.Governing.Ratio)
	}
	fmt.Println(badge.Render(verdict))
	fmt.Println()
}
