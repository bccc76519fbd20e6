package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sena-ops/payguard/internal/logging"
	"github.com/Sena-ops/payguard/internal/model"
	"github.com/Sena-ops/payguard/internal/report"
)

var reportDir string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Agrega os artefatos de scan num relatório normalizado",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		logging.InitLogger(debugMode)
		if err := runReport(envOutputDir(reportDir)); err != nil {
			logging.Logger.Errorw("agregação falhou", "erro", err)
			os.Exit(1)
		}
	},
}

func init() {
	reportCmd.Flags().StringVarP(&reportDir, "dir", "d", "", "Diretório com os artefatos de scan")
	rootCmd.AddCommand(reportCmd)
}

func runReport(dir string) error {
	agg := report.NewAggregator(dir, logging.Logger)
	rep, err := agg.Aggregate()
	if err != nil {
		return err
	}

	jsonPath, err := agg.WriteReport(rep)
	if err != nil {
		return err
	}
	mdPath, err := agg.WriteMarkdown(rep)
	if err != nil {
		return err
	}

	printReportSummary(rep)
	fmt.Println("📄 Reports generated:")
	fmt.Printf("  - %s\n", jsonPath)
	fmt.Printf("  - %s\n", mdPath)
	return nil
}

func printReportSummary(rep *model.Report) {
	s := rep.Summary
	fmt.Println("\n============================================================")
	fmt.Println("🔒 SECURITY SCAN SUMMARY")
	fmt.Println("============================================================")
	fmt.Printf("📊 Total Issues: %d\n", s.TotalIssues)
	fmt.Printf("🚨 Critical: %d\n", s.CriticalCount)
	fmt.Printf("⚠️  High: %d\n", s.HighCount)
	fmt.Printf("📋 Medium: %d\n", s.MediumCount)
	fmt.Printf("ℹ️  Low: %d\n", s.LowCount)
	fmt.Printf("💡 Info: %d\n", s.InfoCount)
	if len(rep.Recommendations) > 0 {
		fmt.Printf("\n🎯 %d recommendations generated\n", len(rep.Recommendations))
	}
	fmt.Println("============================================================")
}
