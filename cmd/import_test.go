package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "leads.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadRecordsCSV(t *testing.T) {
	path := writeCSV(t, `name,email,budget,product_interested,email_opened,tags
Sunrise Academy,info@sunrise.edu,250000,"ELAP, MDL",3,"priority, education"
City Hospital,contact@cityhospital.in,,,0,
`)

	records, err := readRecordsCSV(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Sunrise Academy", records[0].Name)
	assert.Equal(t, "info@sunrise.edu", records[0].Email)
	assert.Equal(t, "250000", records[0].Budget)
	assert.Equal(t, "ELAP, MDL", records[0].ProductInterested)
	assert.Equal(t, 3, records[0].EmailOpened)
	assert.Equal(t, []string{"priority", "education"}, records[0].Tags)

	assert.Equal(t, "City Hospital", records[1].Name)
	assert.Equal(t, "", records[1].Budget)
	assert.Nil(t, records[1].Tags)
}

func TestReadRecordsCSV_UnknownColumnsIgnored(t *testing.T) {
	path := writeCSV(t, `name,shoe_size
X,42
`)
	records, err := readRecordsCSV(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "X", records[0].Name)
}

func TestReadRecordsCSV_HeaderCaseInsensitive(t *testing.T) {
	path := writeCSV(t, `Name,EMAIL
X,x@example.com
`)
	records, err := readRecordsCSV(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "x@example.com", records[0].Email)
}

func TestReadRecordsCSV_MissingFile(t *testing.T) {
	_, err := readRecordsCSV(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestSplitAndTrim(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitAndTrim(" a , b ,"))
	assert.Nil(t, splitAndTrim(" , "))
}
