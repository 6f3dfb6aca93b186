package recommend

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog_Complete(t *testing.T) {
	catalog := DefaultCatalog()
	for _, code := range []string{"ELAP", "MDL", "PBL", "ICT", "AI Workshop", "LMS"} {
		p, ok := catalog[code]
		require.True(t, ok, "missing %s", code)
		assert.NotEmpty(t, p.Name, code)
		assert.NotEmpty(t, p.Description, code)
		assert.NotEmpty(t, p.Pricing, code)
	}
}

func TestLoadCatalog_MergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `products:
  ELAP:
    name: ELAP Revised
    description: Updated lab program
    pricing: "₹999 per student"
  NEWPROD:
    name: New Product
    description: Something new
    pricing: "₹5,000"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	catalog, err := LoadCatalog(path)
	require.NoError(t, err)

	assert.Equal(t, "ELAP Revised", catalog["ELAP"].Name)
	assert.Equal(t, "New Product", catalog["NEWPROD"].Name)
	// untouched defaults survive
	assert.Equal(t, DefaultCatalog()["MDL"], catalog["MDL"])
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadCatalog_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("products: [not a map"), 0o644))
	_, err := LoadCatalog(path)
	assert.Error(t, err)
}
