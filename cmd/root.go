package cmd

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var debugMode bool

var rootCmd = &cobra.Command{
	Use:   "payguard",
	Short: "PayGuard - Scanner de Conformidade & Security Gate",
}

func Execute() {
	// .env opcional para overrides locais (PAYGUARD_OUTPUT_DIR, PAYGUARD_WORKERS)
	_ = godotenv.Load()
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Habilita logs em nível debug")
}

func envOutputDir(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if dir := os.Getenv("PAYGUARD_OUTPUT_DIR"); dir != "" {
		return dir
	}
	return "."
}

func envWorkers(flagValue int) int {
	if flagValue > 0 {
		return flagValue
	}
	if raw := os.Getenv("PAYGUARD_WORKERS"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n
		}
	}
	return 0 // coordinator aplica o default
}
