package deps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sena-ops/payguard/internal/catalog"
	"github.com/Sena-ops/payguard/internal/model"
)

func depRules() []catalog.Rule {
	return catalog.Default().RulesFor(catalog.CategoryDependency)
}

func TestScanManifestVulnerableLodash(t *testing.T) {
	manifest := `{ "dependencies": { "lodash": "2.4.1" } }`

	findings := ScanManifest(manifest, "package.json", depRules())

	require.Len(t, findings, 1)
	assert.Equal(t, "vulnerable_dependency", findings[0].Type)
	assert.Equal(t, "lodash", findings[0].Package)
	assert.Equal(t, model.SevMedium, findings[0].Severity)
	assert.Equal(t, "package.json", findings[0].File)
	assert.Equal(t, "Potentially vulnerable package: lodash", findings[0].Message)
}

func TestScanManifestModernLodashIsClean(t *testing.T) {
	manifest := `{ "dependencies": { "lodash": "4.17.21" } }`
	assert.Empty(t, ScanManifest(manifest, "package.json", depRules()))
}

func TestScanManifestDeprecatedPackages(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
		pkg      string
	}{
		{"moment", `{ "dependencies": { "moment": "2.29.0" } }`, "moment"},
		{"node_uuid", `{ "dependencies": { "node-uuid": "1.4.8" } }`, "node-uuid"},
		{"request", `{ "dependencies": { "request": "2.88.2" } }`, "request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := ScanManifest(tt.manifest, "package.json", depRules())
			require.Len(t, findings, 1)
			assert.Equal(t, tt.pkg, findings[0].Package)
		})
	}
}

func TestScanManifestRepeatedPackageCountsOnce(t *testing.T) {
	lockfile := `{
		"dependencies": {
			"lodash": "2.4.1",
			"some-lib": {
				"requires": { "lodash": "2.4.1" }
			}
		}
	}`

	findings := ScanManifest(lockfile, "package-lock.json", depRules())

	require.Len(t, findings, 1)
	assert.Equal(t, "lodash", findings[0].Package)
}

func TestScanManifestMultiplePackages(t *testing.T) {
	manifest := `{
		"dependencies": {
			"lodash": "2.4.1",
			"moment": "2.29.0",
			"express": "4.18.0"
		}
	}`

	findings := ScanManifest(manifest, "package.json", depRules())

	require.Len(t, findings, 2)
	// ordem de declaração do catálogo
	assert.Equal(t, "lodash", findings[0].Package)
	assert.Equal(t, "moment", findings[1].Package)
}
