package cmd

import (
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/Sena-ops/payguard/internal/logging"
	"github.com/Sena-ops/payguard/internal/report"
)

var watchOutDir string

var watchCmd = &cobra.Command{
	Use:   "watch [caminho]",
	Short: "Re-escaneia e re-agrega a cada mudança na árvore",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logging.InitLogger(debugMode)
		if err := runWatch(args[0], envOutputDir(watchOutDir)); err != nil {
			logging.Logger.Errorw("watch falhou", "erro", err)
			os.Exit(1)
		}
	},
}

func init() {
	watchCmd.Flags().StringVarP(&watchOutDir, "out", "o", "", "Diretório de saída dos artefatos")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(root, outDir string) error {
	logger := logging.Logger

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := addWatchRecursive(watcher, root); err != nil {
		return err
	}
	logger.Infof("👀 Observando %s (debounce 300ms)", root)

	trigger := func() {
		if _, err := runScan(root, outDir); err != nil {
			logger.Errorw("scan falhou", "erro", err)
			return
		}
		if err := runReport(outDir); err != nil {
			logger.Errorw("agregação falhou", "erro", err)
		}
	}
	trigger()

	artifacts := artifactPaths(outDir)
	var timer *time.Timer
	debounce := 300 * time.Millisecond

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// ignora os próprios artefatos para não entrar em loop
			if isArtifactEvent(ev.Name, artifacts) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, trigger)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Errorw("erro do watcher", "erro", err)
		}
	}
}

func addWatchRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			name := d.Name()
			if name == "node_modules" || name == ".git" || name == "dist" || name == "build" || name == "coverage" {
				return filepath.SkipDir
			}
			return w.Add(path)
		}
		return nil
	})
}

// artifactPaths resolve os caminhos dos artefatos no diretório de saída.
func artifactPaths(outDir string) map[string]struct{} {
	out := filepath.Clean(outDir)
	names := []string{
		report.ComplianceFile,
		report.NPMAuditFile,
		report.AuditCIFile,
		report.ESLintFile,
		report.DetailedReportFile,
		report.SummaryMarkdownFile,
	}
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[filepath.Join(out, name)] = struct{}{}
	}
	return set
}

func isArtifactEvent(name string, artifacts map[string]struct{}) bool {
	_, ok := artifacts[filepath.Clean(name)]
	return ok
}
