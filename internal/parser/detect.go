package parser

import (
	"io/fs"
	"path/filepath"
	"strings"
)

var sourceExtensions = map[string]bool{
	".ts":  true,
	".tsx": true,
	".js":  true,
	".jsx": true,
}

var manifestNames = map[string]bool{
	"package.json":      true,
	"package-lock.json": true,
	"yarn.lock":         true,
}

// Diretórios e sufixos excluídos do scan: saída de build, cache de
// dependências e arquivos de teste (fixtures de teste costumam conter
// segredos de exemplo).
var excludedDirs = map[string]bool{
	"node_modules": true,
	"dist":         true,
	"build":        true,
	"coverage":     true,
	".git":         true,
}

// DetectScanFiles percorre a árvore a partir de root e devolve os arquivos
// candidatos ao scan (fontes TS/JS e manifestos), já filtrados pela lista de
// exclusão. A ordem de travessia do WalkDir é lexicográfica e determinística.
func DetectScanFiles(root string) ([]ScanFile, error) {
	var files []ScanFile

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// entrada ilegível não aborta a travessia
			return nil
		}
		if d.IsDir() {
			if excludedDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		name := d.Name()
		if manifestNames[name] {
			files = append(files, ScanFile{Kind: Manifest, Path: path})
			return nil
		}
		if IsExcluded(name) {
			return nil
		}
		if sourceExtensions[filepath.Ext(name)] {
			files = append(files, ScanFile{Kind: Source, Path: path})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// IsExcluded verifica os sufixos de teste/spec no nome do arquivo.
func IsExcluded(name string) bool {
	return strings.Contains(name, ".test.") || strings.Contains(name, ".spec.")
}
