package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sena-ops/payguard/internal/gate"
	"github.com/Sena-ops/payguard/internal/logging"
	"github.com/Sena-ops/payguard/internal/model"
	"github.com/Sena-ops/payguard/internal/report"
	"github.com/Sena-ops/payguard/internal/ui"
)

var gateDir string
var gateConfig string

var gateCmd = &cobra.Command{
	Use:   "gate",
	Short: "Avalia o relatório de segurança contra a política e decide o build",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		logging.InitLogger(debugMode)
		fmt.Println("🚪 Running Security Gate Checks...")
		fmt.Println("============================================================")

		rep, err := report.LoadReport(envOutputDir(gateDir))
		if err != nil {
			// gate sem dados nunca passa
			fmt.Println(ui.FailStyle.Render("❌ SECURITY GATE FAILED: Cannot load security report"))
			logging.Logger.Errorw("relatório ausente", "erro", err)
			os.Exit(1)
		}

		pol, err := gate.LoadPolicy(gateConfig)
		if err != nil {
			logging.Logger.Errorw("política inválida", "erro", err)
			os.Exit(1)
		}

		verdict := gate.Evaluate(rep, pol)
		printVerdict(verdict)

		if !verdict.Pass {
			os.Exit(1)
		}
	},
}

func init() {
	gateCmd.Flags().StringVarP(&gateDir, "dir", "d", "", "Diretório com o relatório de segurança")
	gateCmd.Flags().StringVarP(&gateConfig, "config", "c", "", "Arquivo de política (JSON ou YAML)")
	rootCmd.AddCommand(gateCmd)
}

func printVerdict(v model.Verdict) {
	fmt.Println(ui.HeaderStyle.Render("📊 Security Gate Results:"))
	fmt.Printf("  ✅ Passed Checks: %d\n", len(v.PassedChecks))
	fmt.Printf("  ❌ Violations: %d\n", len(v.Violations))
	fmt.Printf("  ⚠️  Warnings: %d\n", len(v.Warnings))

	if len(v.PassedChecks) > 0 {
		fmt.Println("\n✅ PASSED CHECKS:")
		for _, check := range v.PassedChecks {
			fmt.Println(ui.PassStyle.Render("  " + check))
		}
	}
	if len(v.Violations) > 0 {
		fmt.Println("\n❌ VIOLATIONS:")
		for _, violation := range v.Violations {
			fmt.Println(ui.FailStyle.Render("  " + violation))
		}
	}
	if len(v.Warnings) > 0 {
		fmt.Println("\n⚠️  WARNINGS:")
		for _, warning := range v.Warnings {
			fmt.Println(ui.WarnStyle.Render("  " + warning))
		}
	}

	if v.Pass {
		fmt.Println("\n" + ui.PassStyle.Render("✅ SECURITY GATE PASSED"))
		fmt.Println("All security requirements met.")
	} else {
		fmt.Println("\n" + ui.FailStyle.Render("❌ SECURITY GATE FAILED"))
		fmt.Println("The following violations must be addressed:")
		for _, violation := range v.Violations {
			fmt.Printf("  %s\n", violation)
		}
	}
}
