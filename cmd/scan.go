package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Sena-ops/payguard/internal/catalog"
	"github.com/Sena-ops/payguard/internal/logging"
	"github.com/Sena-ops/payguard/internal/model"
	"github.com/Sena-ops/payguard/internal/parser"
	"github.com/Sena-ops/payguard/internal/report"
	"github.com/Sena-ops/payguard/internal/scanner"
)

var scanOutDir string
var scanWorkers int

var scanCmd = &cobra.Command{
	Use:   "scan [caminho]",
	Short: "Roda o scan de conformidade sobre uma árvore de código",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logging.InitLogger(debugMode)
		result, err := runScan(args[0], envOutputDir(scanOutDir))
		if err != nil {
			logging.Logger.Errorw("scan falhou", "erro", err)
			os.Exit(1)
		}

		printScanSummary(result)

		// Comportamento de gate rápido: issues altas quebram o scan direto.
		if result.HighSeverityCount > 0 {
			fmt.Println("❌ High severity issues found. Please address before proceeding.")
			os.Exit(1)
		}
		fmt.Println("✅ No high severity compliance issues found.")
	},
}

func init() {
	scanCmd.Flags().StringVarP(&scanOutDir, "out", "o", "", "Diretório de saída dos artefatos")
	scanCmd.Flags().IntVarP(&scanWorkers, "workers", "w", 0, "Workers de scan em paralelo")
	rootCmd.AddCommand(scanCmd)
}

// runScan executa o passe completo e grava o artefato. Compartilhado entre
// os comandos scan e watch.
func runScan(path, outDir string) (*model.ScanResult, error) {
	logger := logging.Logger
	logger.Infof("🔍 Escaneando diretório: %s", path)

	files, err := parser.DetectScanFiles(path)
	if err != nil {
		return nil, fmt.Errorf("detectar arquivos: %w", err)
	}
	logger.Infof("📁 %d arquivo(s) candidatos ao scan", len(files))

	coord := scanner.New(catalog.Default(), logger, envWorkers(scanWorkers))
	result := coord.Run(files)
	coord.MergeNPMAudit(result, filepath.Join(outDir, report.NPMAuditFile))

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("criar diretório de saída: %w", err)
	}
	artifact := filepath.Join(outDir, report.ComplianceFile)
	if err := scanner.WriteResult(result, artifact); err != nil {
		return nil, err
	}
	logger.Infow("Resultado salvo", "arquivo", artifact)
	return result, nil
}

func printScanSummary(result *model.ScanResult) {
	fmt.Println("\n============================================================")
	fmt.Println("🔒 PAYGUARD COMPLIANCE SCAN RESULTS")
	fmt.Println("============================================================")
	fmt.Printf("📊 Files Scanned: %d\n", result.ScannedFiles)
	fmt.Printf("🔑 Secrets Found: %d\n", len(result.SecretsFound))
	fmt.Printf("💳 Payment Issues: %d\n", len(result.PaymentIssues))
	fmt.Printf("📦 Dependency Issues: %d\n", len(result.DependencyIssues))
	fmt.Printf("🚨 High Severity: %d\n", result.HighSeverityCount)
	fmt.Printf("⚠️  Medium Severity: %d\n", result.MediumSeverityCount)
	fmt.Printf("ℹ️  Low Severity: %d\n", result.LowSeverityCount)

	if len(result.SecretsFound) > 0 {
		fmt.Println("\n🔑 SECRETS FOUND:")
		for _, f := range result.SecretsFound {
			fmt.Printf("  - %s in %s:%d\n", f.Type, f.File, f.Line)
		}
	}
	if len(result.PaymentIssues) > 0 {
		fmt.Println("\n💳 PAYMENT ISSUES:")
		for _, f := range result.PaymentIssues {
			fmt.Printf("  - %s in %s:%d\n", f.Type, f.File, f.Line)
		}
	}
	if len(result.DependencyIssues) > 0 {
		fmt.Println("\n📦 DEPENDENCY ISSUES:")
		for _, f := range result.DependencyIssues {
			fmt.Printf("  - %s: %s - %s\n", f.Severity, f.Package, f.Message)
		}
	}
	fmt.Println("============================================================")
}
